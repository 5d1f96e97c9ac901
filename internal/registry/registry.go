package registry

import (
	"context"
	"io"
	"time"

	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// Registry is the public package registry contract.
type Registry interface {
	// Register reads a package archive, derives its id from the embedded
	// manifest, and stores it. Fails with *PackageExistsError if the id is
	// already present and replace is false.
	Register(r io.Reader, replace bool) (pkgid.ID, error)

	// Contains reports whether the id is registered.
	Contains(id pkgid.ID) bool

	// Open returns the stored package record, or nil if the id is not
	// registered. Absence is not an error.
	Open(id pkgid.ID) *StoredPackage

	// Remove deletes a registered package and invalidates open handles.
	// Fails with *NoSuchPackageError if the id is not registered.
	Remove(id pkgid.ID) error

	// Packages returns all registered ids in ascending id order.
	Packages() []pkgid.ID

	// AnalyzeDependencies partitions the declared dependencies of id into
	// resolved and unresolved against the registered set. With
	// onlyInstalled, only installed packages count as matches. Fails with
	// *NoSuchPackageError if id is not registered.
	AnalyzeDependencies(id pkgid.ID, onlyInstalled bool) (*DependencyReport, error)

	// Usage returns every registered package declaring a dependency that
	// matches id, in registration order.
	Usage(id pkgid.ID) []pkgid.ID
}

// Installer extends Registry with the task-level operations the execution
// plan drives. Install and uninstall mutate the target store first and the
// registry's installed state second; a store failure leaves the installed
// flag unchanged.
type Installer interface {
	Registry

	// InstallPackage installs id into the store and marks it installed.
	InstallPackage(ctx context.Context, store content.Store, id pkgid.ID, opts content.Options) error

	// UninstallPackage removes id's content from the store and clears the
	// installed flag.
	UninstallPackage(ctx context.Context, store content.Store, id pkgid.ID, opts content.Options) error
}

// DependencyReport partitions the declared dependencies of one package:
// every declared dependency lands in exactly one of the two lists,
// preserving declaration order.
type DependencyReport struct {
	// ID is the analyzed package.
	ID pkgid.ID

	// Resolved holds the chosen match per resolvable dependency.
	Resolved []pkgid.ID

	// Unresolved holds the declared dependencies with no match.
	Unresolved []pkgid.Dependency
}

// StoredPackage is the registry's record for one package id. Records are
// snapshots: Remove invalidates the content handle but not the metadata
// already read.
type StoredPackage struct {
	id           pkgid.ID
	pkgType      pkgid.PackageType
	filter       content.PathFilter
	dependencies []pkgid.Dependency
	installed    bool
	registeredAt time.Time
	installedAt  time.Time
	size         int64
	blobKey      string

	// entries loads the package content from the backing registry. Fails
	// with *NoSuchPackageError once the package has been removed.
	entries func(ctx context.Context) ([]content.Entry, error)
}

// ID returns the package identity.
func (p *StoredPackage) ID() pkgid.ID {
	return p.id
}

// Type returns the declared package type.
func (p *StoredPackage) Type() pkgid.PackageType {
	return p.pkgType
}

// Filter returns the declared write filter.
func (p *StoredPackage) Filter() content.PathFilter {
	return p.filter
}

// Dependencies returns the declared dependencies in declaration order.
func (p *StoredPackage) Dependencies() []pkgid.Dependency {
	return p.dependencies
}

// IsInstalled reports whether the package was installed at the time this
// record was opened.
func (p *StoredPackage) IsInstalled() bool {
	return p.installed
}

// RegisteredAt returns the registration time.
func (p *StoredPackage) RegisteredAt() time.Time {
	return p.registeredAt
}

// InstalledAt returns the time of the last successful install, or the zero
// time if the package was never installed.
func (p *StoredPackage) InstalledAt() time.Time {
	return p.installedAt
}

// Size returns the archive size in bytes.
func (p *StoredPackage) Size() int64 {
	return p.size
}

// Entries loads the package content entries from the backing archive.
func (p *StoredPackage) Entries(ctx context.Context) ([]content.Entry, error) {
	return p.entries(ctx)
}
