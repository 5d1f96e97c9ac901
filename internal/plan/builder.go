package plan

import (
	"context"

	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/pkgid"
	"github.com/danieljhkim/packstore/internal/registry"
	"github.com/danieljhkim/packstore/internal/scope"
)

// Builder collects a batch of tasks and executes them as one plan.
// Task order is not caller-controlled; Execute computes it from the
// dependency graph.
type Builder struct {
	reg      registry.Installer
	store    content.Store
	listener content.ProgressListener
	handler  *scope.Handler
	tasks    []*Task
	executed bool
}

// NewBuilder creates a builder bound to a registry.
func NewBuilder(reg registry.Installer) *Builder {
	return &Builder{reg: reg}
}

// AddTask appends a pending task for the given package.
func (b *Builder) AddTask(id pkgid.ID, typ TaskType) *Builder {
	b.tasks = append(b.tasks, &Task{ID: id, Type: typ, State: TaskNew})
	return b
}

// SetScope restricts what install tasks may write. The returned handler
// reports packages that declared content outside the granted scope after
// the plan has executed. The default scope is Mixed (unrestricted).
func (b *Builder) SetScope(t pkgid.PackageType) *scope.Handler {
	b.handler = scope.NewHandler(t)
	return b.handler
}

// WithStore attaches the target store session tasks execute against.
func (b *Builder) WithStore(s content.Store) *Builder {
	b.store = s
	return b
}

// WithListener attaches the progress listener passed to each task.
func (b *Builder) WithListener(l content.ProgressListener) *Builder {
	b.listener = l
	return b
}

// Execute validates, orders, and runs the collected tasks. Validation
// failures (unknown package, unsatisfiable dependency, dependency cycle)
// abort before any store mutation. Once execution starts, a task failure
// is recorded on the plan and the remaining tasks still run.
func (b *Builder) Execute(ctx context.Context) (*Plan, error) {
	if b.executed {
		return nil, ErrExecuted
	}
	if b.store == nil {
		return nil, ErrNoStore
	}
	b.executed = true

	packages, err := b.validate()
	if err != nil {
		return nil, err
	}

	ordered, err := b.order(packages)
	if err != nil {
		return nil, err
	}

	p := &Plan{tasks: ordered}
	b.run(ctx, p, packages)
	p.executed = true
	return p, nil
}

// validate checks that every task target is registered and that every
// dependency of every install task is satisfied by an installed package or
// by another install task in this plan. Returns the opened package records
// keyed by id string.
func (b *Builder) validate() (map[string]*registry.StoredPackage, error) {
	packages := make(map[string]*registry.StoredPackage, len(b.tasks))
	for _, t := range b.tasks {
		pkg := b.reg.Open(t.ID)
		if pkg == nil {
			return nil, &registry.NoSuchPackageError{ID: t.ID}
		}
		packages[t.ID.String()] = pkg
	}

	for _, t := range b.tasks {
		if t.Type != Install {
			continue
		}
		report, err := b.reg.AnalyzeDependencies(t.ID, true)
		if err != nil {
			return nil, err
		}

		var unsatisfied []pkgid.Dependency
		for _, dep := range report.Unresolved {
			if b.coveredByPlan(dep, Install) == -1 {
				unsatisfied = append(unsatisfied, dep)
			}
		}
		if len(unsatisfied) > 0 {
			return nil, &DependencyError{ID: t.ID, Unresolved: unsatisfied}
		}
	}
	return packages, nil
}

// coveredByPlan returns the index of a task of the given type in this plan
// whose target satisfies the dependency, or -1.
func (b *Builder) coveredByPlan(dep pkgid.Dependency, typ TaskType) int {
	for i, t := range b.tasks {
		if t.Type == typ && dep.Matches(t.ID) {
			return i
		}
	}
	return -1
}

// order computes the dependency-safe execution order. Install tasks run
// after the install tasks of their in-plan dependencies; uninstall tasks
// run along the reversed edges, so a package is removed only after its
// in-plan dependents.
func (b *Builder) order(packages map[string]*registry.StoredPackage) ([]*Task, error) {
	g := newGraph(len(b.tasks))
	for i, t := range b.tasks {
		pkg := packages[t.ID.String()]
		for _, dep := range pkg.Dependencies() {
			j := b.coveredByPlan(dep, t.Type)
			if j == -1 || j == i {
				continue
			}
			switch t.Type {
			case Install:
				// Dependency installs first.
				g.addEdge(j, i)
			case Uninstall:
				// Dependent uninstalls first.
				g.addEdge(i, j)
			}
		}
	}

	if cycle := g.findCycle(); cycle != nil {
		ids := make([]pkgid.ID, len(cycle))
		for i, n := range cycle {
			ids[i] = b.tasks[n].ID
		}
		return nil, &CycleError{Cycle: ids}
	}

	ordered := make([]*Task, 0, len(b.tasks))
	for _, n := range g.sort() {
		ordered = append(ordered, b.tasks[n])
	}
	return ordered, nil
}

// run executes the ordered tasks, recording per-task outcomes.
func (b *Builder) run(ctx context.Context, p *Plan, packages map[string]*registry.StoredPackage) {
	for _, t := range p.tasks {
		pkg := packages[t.ID.String()]
		opts := content.Options{Filter: pkg.Filter(), Listener: b.listener}
		if t.Type == Install && b.handler != nil {
			opts = b.handler.Decorate(opts, pkg.ID(), pkg.Filter())
		}

		t.State = TaskRunning
		var err error
		switch t.Type {
		case Install:
			err = b.reg.InstallPackage(ctx, b.store, t.ID, opts)
		case Uninstall:
			err = b.reg.UninstallPackage(ctx, b.store, t.ID, opts)
		}

		if err != nil {
			t.State = TaskError
			t.Err = err
			p.hasErrors = true
			continue
		}
		t.State = TaskCompleted
	}
}
