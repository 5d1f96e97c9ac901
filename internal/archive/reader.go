package archive

import (
	"fmt"

	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// PackageError is a generic package-level failure: malformed archive,
// missing or unreadable metadata.
type PackageError struct {
	// Reason describes the failure.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *PackageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid package: %s: %v", e.Reason, e.Cause)
	}
	return "invalid package: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *PackageError) Unwrap() error {
	return e.Cause
}

// Manifest is the declared metadata of a package archive.
type Manifest struct {
	// ID is the package identity.
	ID pkgid.ID

	// Type declares which store region the package writes.
	Type pkgid.PackageType

	// Filter lists the path prefixes the package is allowed to write.
	Filter content.PathFilter

	// Dependencies lists the declared dependencies in declaration order.
	Dependencies []pkgid.Dependency
}

// Package is the parsed form of one archive: its manifest plus content
// entries in archive order.
type Package struct {
	// Manifest is the declared metadata.
	Manifest Manifest

	// Entries are the content entries in archive order.
	Entries []content.Entry
}

// Reader parses raw archive bytes into a Package.
type Reader interface {
	// Read parses the archive available from the source. Returns a
	// *PackageError for malformed archives.
	Read(src *Source) (*Package, error)
}
