package pkgid

import (
	"fmt"
	"strings"
)

// Dependency references packages of a group and name whose version falls
// within a range.
type Dependency struct {
	// Group is the group of the referenced package.
	Group string

	// Name is the name of the referenced package.
	Name string

	// Range constrains the acceptable versions. The zero Range accepts any.
	Range Range
}

// NewDependency constructs a Dependency from its parts.
func NewDependency(group, name string, r Range) Dependency {
	return Dependency{Group: group, Name: name, Range: r}
}

// ParseDependency parses "group:name", "group:name:version", or
// "group:name:[a,b)".
func ParseDependency(s string) (Dependency, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Dependency{}, fmt.Errorf("invalid dependency: %q", s)
	}
	d := Dependency{Group: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		r, err := ParseRange(parts[2])
		if err != nil {
			return Dependency{}, fmt.Errorf("invalid dependency %q: %w", s, err)
		}
		d.Range = r
	}
	return d, nil
}

// Matches reports whether the given id satisfies this dependency: group and
// name must match and the id's version must fall within the range.
func (d Dependency) Matches(id ID) bool {
	return d.Group == id.Group && d.Name == id.Name && d.Range.Contains(id.Version)
}

// String returns "group:name:range", omitting the range when it accepts any
// version.
func (d Dependency) String() string {
	if d.Range.IsAny() {
		return d.Group + ":" + d.Name
	}
	return d.Group + ":" + d.Name + ":" + d.Range.String()
}

// DependenciesToString renders a sequence of dependencies as a
// comma-separated string.
func DependenciesToString(deps []Dependency) string {
	parts := make([]string, len(deps))
	for i, d := range deps {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
