package registry

import (
	"fmt"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

// PackageExistsError indicates a register collision: the derived id is
// already present and replace was not requested.
type PackageExistsError struct {
	// ID is the colliding package id.
	ID pkgid.ID
}

// Error implements the error interface.
func (e *PackageExistsError) Error() string {
	return fmt.Sprintf("package already exists: %s", e.ID)
}

// NoSuchPackageError indicates an operation targeting an unregistered id.
type NoSuchPackageError struct {
	// ID is the missing package id.
	ID pkgid.ID
}

// Error implements the error interface.
func (e *NoSuchPackageError) Error() string {
	return fmt.Sprintf("no such package: %s", e.ID)
}
