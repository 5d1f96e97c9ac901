package content

import (
	"strings"
)

// PathFilter is an ordered set of store path prefixes (roots) a package is
// allowed to write. Store paths are absolute and slash-separated, e.g.
// "/libs/foo". A filter with no roots covers nothing.
type PathFilter struct {
	roots []string
}

// NewPathFilter creates a filter from the given roots, preserving order.
// Roots are normalized to a leading slash and no trailing slash.
func NewPathFilter(roots ...string) PathFilter {
	normalized := make([]string, 0, len(roots))
	for _, r := range roots {
		n := NormalizePath(r)
		if n == "" {
			continue
		}
		normalized = append(normalized, n)
	}
	return PathFilter{roots: normalized}
}

// NormalizePath normalizes a store path to "/a/b" form. Returns "" for
// empty input.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

// Roots returns the filter roots in declaration order. The returned slice
// must not be modified.
func (f PathFilter) Roots() []string {
	return f.roots
}

// IsEmpty reports whether the filter has no roots.
func (f PathFilter) IsEmpty() bool {
	return len(f.roots) == 0
}

// Covers reports whether the given store path equals or lies below any
// filter root.
func (f PathFilter) Covers(path string) bool {
	path = NormalizePath(path)
	for _, root := range f.roots {
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}
