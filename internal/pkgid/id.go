package pkgid

import (
	"fmt"
	"strings"
)

// ID uniquely identifies a package by group, name, and version.
// IDs order by group, then name (lexicographic), then version (numeric).
type ID struct {
	// Group is the package group (namespace).
	Group string

	// Name is the package name within the group.
	Name string

	// Version is the package version.
	Version Version
}

// NewID constructs an ID from its parts.
func NewID(group, name string, version Version) ID {
	return ID{Group: group, Name: name, Version: version}
}

// ParseID parses an ID of the form "group:name:version" or "group:name".
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return ID{}, fmt.Errorf("invalid package id: %q", s)
	}
	id := ID{Group: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		v, err := ParseVersion(parts[2])
		if err != nil {
			return ID{}, fmt.Errorf("invalid package id %q: %w", s, err)
		}
		id.Version = v
	}
	return id, nil
}

// String returns "group:name:version", omitting the trailing colon when the
// version is empty. This form is the registry key and the wire form used in
// manifests.
func (id ID) String() string {
	if id.Version.IsEmpty() {
		return id.Group + ":" + id.Name
	}
	return id.Group + ":" + id.Name + ":" + id.Version.String()
}

// Compare returns -1, 0, or 1 ordering ids by group, name, then version.
func (id ID) Compare(o ID) int {
	if c := strings.Compare(id.Group, o.Group); c != 0 {
		return c
	}
	if c := strings.Compare(id.Name, o.Name); c != 0 {
		return c
	}
	return id.Version.Compare(o.Version)
}

// Equal reports whether two ids denote the same package.
func (id ID) Equal(o ID) bool {
	return id.Compare(o) == 0
}

// IDsToString renders a sequence of ids as a comma-separated string.
func IDsToString(ids []ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}
