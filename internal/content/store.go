package content

import (
	"context"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

// Entry is a single piece of package content addressed by a store path.
type Entry struct {
	// Path is the absolute, slash-separated store path.
	Path string

	// Data is the entry content. Nil for directory entries.
	Data []byte

	// IsDir marks a directory entry.
	IsDir bool
}

// PackageContent is the handle a store receives for the package being
// installed or uninstalled. The planner obtains it from the registry; the
// store never interprets the backing archive format.
type PackageContent interface {
	// ID returns the package identity.
	ID() pkgid.ID

	// Entries returns the package content entries in archive order.
	Entries(ctx context.Context) ([]Entry, error)
}

// Options are the immutable per-task install options. A fresh Options value
// is constructed for every task; tasks never share mutable option state.
type Options struct {
	// Filter is the effective write filter for the task.
	Filter PathFilter

	// Listener receives progress events. Nil means no reporting.
	Listener ProgressListener
}

// WithFilter returns a copy of the options with the given filter.
func (o Options) WithFilter(f PathFilter) Options {
	o.Filter = f
	return o
}

// WithListener returns a copy of the options with the given listener.
func (o Options) WithListener(l ProgressListener) Options {
	o.Listener = l
	return o
}

// listener returns the configured listener, or a NopListener.
func (o Options) listener() ProgressListener {
	if o.Listener == nil {
		return NopListener{}
	}
	return o.Listener
}

// Store is the target content store collaborator. Implementations are not
// safe for concurrent mutation; each execution plan must be bound to its
// own store session.
type Store interface {
	// Install writes the entries of pkg that pass opts.Filter. Entries
	// excluded by the filter are reported to the listener with
	// ActionIgnored and not written.
	Install(ctx context.Context, pkg PackageContent, opts Options) error

	// Uninstall removes the entries of pkg that pass opts.Filter.
	Uninstall(ctx context.Context, pkg PackageContent, opts Options) error
}
