// Package pkgid defines the identity model for content packages.
//
// A package is identified by its group, name, and version. Dependencies
// reference other packages by group and name plus a version range. All
// types in this package are immutable values with total ordering, so they
// are safe to use as map keys and sort keys.
//
// Key components:
//   - ID: unique package identity (group:name:version)
//   - Version: numeric, component-wise comparable version
//   - Range: version range constraint ([a,b), [a,b], (a,b], exact, any)
//   - Dependency: a group/name reference constrained by a Range
//   - PackageType: declared content scope of a package
package pkgid
