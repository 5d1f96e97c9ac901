// Package registry implements the persistent package registry.
//
// The registry is the keyed store of packages: registering an archive
// derives its identity from the embedded manifest, persists the archive
// bytes through a blob store, and records the package metadata in a JSON
// index. The registry also answers dependency questions against the
// currently registered set.
//
// Key components:
//   - Registry: the public registry contract
//   - FileRegistry: filesystem-backed implementation with an in-memory index
//   - StoredPackage: the registry's record for one package id
//   - DependencyReport: resolved/unresolved partition of declared dependencies
//   - BlobStore: content-addressed persistence for archive bytes
//
// Reads (Contains, Open, Packages, AnalyzeDependencies, Usage) are safe for
// concurrent use; Register and Remove serialize against each other. No
// cross-process coordination is provided: two processes mutating the same
// backing directory is undefined behavior.
package registry
