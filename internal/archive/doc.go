// Package archive reads package metadata and content out of raw archive
// bytes.
//
// The registry treats archives as a black box behind the Reader interface:
// given a byte source it yields the package identity, type, write filter,
// ordered dependency list, and content entries. The shipped implementation
// reads zip archives carrying a meta/manifest.json descriptor and content
// entries below content/.
package archive
