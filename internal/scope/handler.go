package scope

import (
	"strings"

	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// applicationRoots is the canonical set of store roots holding application
// content. Everything below these roots is application scope; everything
// else is content scope.
var applicationRoots = []string{"/apps", "/libs"}

// IsApplicationPath reports whether a store path lies below one of the
// application roots.
func IsApplicationPath(path string) bool {
	path = content.NormalizePath(path)
	for _, root := range applicationRoots {
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}

// Handler applies an operator-granted scope to install tasks and collects
// the per-package trackers for one plan.
type Handler struct {
	scope    pkgid.PackageType
	trackers []*Tracker
	ids      []pkgid.ID
}

// NewHandler creates a handler for the granted scope. Mixed and Container
// scopes perform no narrowing.
func NewHandler(scope pkgid.PackageType) *Handler {
	return &Handler{scope: scope}
}

// Scope returns the granted scope.
func (h *Handler) Scope() pkgid.PackageType {
	return h.scope
}

// Decorate returns task options narrowed to the granted scope. For the
// application and content scopes the package's declared filter is reduced
// to the roots inside the granted region, and the listener is wrapped in a
// tracker observing out-of-scope paths. Narrowing only ever removes roots;
// it never adds write permission the declared filter did not have.
func (h *Handler) Decorate(opts content.Options, id pkgid.ID, declared content.PathFilter) content.Options {
	if h.scope != pkgid.Application && h.scope != pkgid.Content {
		return opts
	}

	wantApp := h.scope == pkgid.Application
	var kept []string
	for _, root := range declared.Roots() {
		if IsApplicationPath(root) == wantApp {
			kept = append(kept, root)
		}
	}

	tracker := newTracker(opts.Listener, wantApp)
	h.trackers = append(h.trackers, tracker)
	h.ids = append(h.ids, id)

	return opts.
		WithFilter(content.NewPathFilter(kept...)).
		WithListener(tracker)
}

// PackagesLeavingScope returns every tracked package that reported at
// least one path outside the granted scope, in tracker-creation order.
// This is advisory output; it is not a failure condition.
func (h *Handler) PackagesLeavingScope() []pkgid.ID {
	var out []pkgid.ID
	for i, t := range h.trackers {
		if t.Misses() > 0 {
			out = append(out, h.ids[i])
		}
	}
	return out
}
