package pkgid

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// MalformedVersionError indicates a version or range string that could not
// be parsed.
type MalformedVersionError struct {
	// Input is the offending string.
	Input string

	// Cause is the underlying parse error, if any.
	Cause error
}

// Error implements the error interface.
func (e *MalformedVersionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed version %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("malformed version %q", e.Input)
}

// Unwrap returns the underlying parse error.
func (e *MalformedVersionError) Unwrap() error {
	return e.Cause
}

// Version is a package version. Comparison is numeric per dot-separated
// component, so "2.0" sorts after "1.9". The zero Version is the empty
// version and sorts before every non-empty version.
type Version struct {
	raw string
	sv  *semver.Version
}

// ParseVersion parses a version string such as "1.0", "1.2.3", or
// "1.0-SNAPSHOT". Returns a MalformedVersionError if the string cannot be
// parsed. The empty string parses to the zero Version.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, nil
	}
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, &MalformedVersionError{Input: s, Cause: err}
	}
	return Version{raw: s, sv: sv}, nil
}

// MustVersion parses a version string and panics on failure. Intended for
// constants and tests.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsEmpty reports whether v is the zero (empty) version.
func (v Version) IsEmpty() bool {
	return v.sv == nil
}

// String returns the version exactly as it was parsed.
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0, or 1 depending on whether v sorts before, equal
// to, or after o. The empty version sorts first.
func (v Version) Compare(o Version) int {
	switch {
	case v.sv == nil && o.sv == nil:
		return 0
	case v.sv == nil:
		return -1
	case o.sv == nil:
		return 1
	}
	return v.sv.Compare(o.sv)
}

// Equal reports whether v and o denote the same version.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// semantic returns the parsed semver value, or nil for the empty version.
func (v Version) semantic() *semver.Version {
	return v.sv
}
