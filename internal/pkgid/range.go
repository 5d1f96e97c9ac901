package pkgid

import (
	"strings"
)

// Range is a version range constraint. Supported forms:
//
//	""        any version
//	"1.0"     exactly version 1.0
//	"[1.0,2.0)"  1.0 <= v < 2.0
//	"[1.0,2.0]"  1.0 <= v <= 2.0
//	"(1.0,2.0]"  1.0 < v <= 2.0
//	"[1.0,)"     1.0 <= v, unbounded above
//	"(,2.0]"     v <= 2.0, unbounded below
//
// The zero Range matches any version.
type Range struct {
	raw string

	low, high       Version
	lowInc, highInc bool

	// exact holds the version for the bare-version form.
	exact Version
	isExact bool
}

// AnyRange matches every version.
var AnyRange = Range{}

// ParseRange parses a version range string. Returns a MalformedVersionError
// if the string is not a valid range.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return AnyRange, nil
	}

	open := strings.HasPrefix(s, "[") || strings.HasPrefix(s, "(")
	if !open {
		// Bare version: exact match.
		v, err := ParseVersion(s)
		if err != nil {
			return Range{}, err
		}
		return Range{raw: s, exact: v, isExact: true}, nil
	}

	if !strings.HasSuffix(s, "]") && !strings.HasSuffix(s, ")") {
		return Range{}, &MalformedVersionError{Input: s}
	}

	inner := s[1 : len(s)-1]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return Range{}, &MalformedVersionError{Input: s}
	}

	low, err := ParseVersion(strings.TrimSpace(parts[0]))
	if err != nil {
		return Range{}, &MalformedVersionError{Input: s, Cause: err}
	}
	high, err := ParseVersion(strings.TrimSpace(parts[1]))
	if err != nil {
		return Range{}, &MalformedVersionError{Input: s, Cause: err}
	}

	return Range{
		raw:     s,
		low:     low,
		high:    high,
		lowInc:  strings.HasPrefix(s, "["),
		highInc: strings.HasSuffix(s, "]"),
	}, nil
}

// MustRange parses a range string and panics on failure. Intended for tests.
func MustRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsAny reports whether the range matches every version.
func (r Range) IsAny() bool {
	return !r.isExact && r.low.IsEmpty() && r.high.IsEmpty()
}

// Contains reports whether the version satisfies the range. The empty
// version only satisfies the any-range.
func (r Range) Contains(v Version) bool {
	if r.IsAny() {
		return true
	}
	if v.IsEmpty() {
		return false
	}
	if r.isExact {
		return v.Equal(r.exact)
	}
	if !r.low.IsEmpty() {
		c := v.Compare(r.low)
		if c < 0 || (c == 0 && !r.lowInc) {
			return false
		}
	}
	if !r.high.IsEmpty() {
		c := v.Compare(r.high)
		if c > 0 || (c == 0 && !r.highInc) {
			return false
		}
	}
	return true
}

// String returns the range exactly as it was parsed. The any-range renders
// as the empty string.
func (r Range) String() string {
	return r.raw
}
