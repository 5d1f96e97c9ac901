// Package content defines the boundary to the target content store.
//
// The planner and registry treat the store as an opaque collaborator: tasks
// hand it a package content handle plus immutable per-task options, and the
// store reports progress through a listener. The package also ships FSStore,
// a filesystem-backed store used by the CLI.
//
// Key components:
//   - Store: install/uninstall operations against the target store
//   - PathFilter: ordered set of path prefixes a package may write
//   - Options: immutable per-task install options (filter + listener)
//   - ProgressListener: passive sink for progress and error events
//   - FSStore: content store backed by a directory tree
package content
