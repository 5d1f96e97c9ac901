package plan

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

// ErrExecuted indicates a plan builder whose Execute was already called.
var ErrExecuted = errors.New("plan already executed")

// ErrNoStore indicates Execute was called without a store session.
var ErrNoStore = errors.New("no store session attached")

// DependencyError indicates that validation found dependencies that neither
// the registry nor the plan itself can satisfy. No task has been applied
// when this error is returned.
type DependencyError struct {
	// ID is the package whose dependencies cannot be satisfied.
	ID pkgid.ID

	// Unresolved lists the unsatisfiable dependencies in declaration order.
	Unresolved []pkgid.Dependency
}

// Error implements the error interface.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("unsatisfied dependencies of %s: %s", e.ID, pkgid.DependenciesToString(e.Unresolved))
}

// CycleError indicates a dependency cycle among the tasks of one plan. No
// task has been applied when this error is returned.
type CycleError struct {
	// Cycle lists the package ids forming the cycle, in edge order.
	Cycle []pkgid.ID
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", pkgid.IDsToString(e.Cycle))
}
