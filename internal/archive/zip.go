package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// Archive layout constants.
const (
	// ManifestPath is the archive entry holding the package descriptor.
	ManifestPath = "meta/manifest.json"

	// ContentPrefix is the archive directory holding store content.
	// "content/libs/foo/x.txt" maps to store path "/libs/foo/x.txt".
	ContentPrefix = "content/"
)

// manifestJSON is the wire form of meta/manifest.json.
type manifestJSON struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Filter       []string `json:"filter"`
	Dependencies []string `json:"dependencies"`
}

// ZipReader reads zip package archives.
type ZipReader struct{}

// NewZipReader creates a new ZipReader.
func NewZipReader() *ZipReader {
	return &ZipReader{}
}

// Read parses a zip archive from the source.
func (r *ZipReader) Read(src *Source) (*Package, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, &PackageError{Reason: "unreadable archive", Cause: err}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &PackageError{Reason: "not a zip archive", Cause: err}
	}

	var pkg Package
	sawManifest := false
	for _, f := range zr.File {
		switch {
		case f.Name == ManifestPath:
			manifest, err := readManifest(f)
			if err != nil {
				return nil, err
			}
			pkg.Manifest = *manifest
			sawManifest = true

		case strings.HasPrefix(f.Name, ContentPrefix) && f.Name != ContentPrefix:
			entry, err := readEntry(f)
			if err != nil {
				return nil, err
			}
			pkg.Entries = append(pkg.Entries, entry)
		}
	}

	if !sawManifest {
		return nil, &PackageError{Reason: "missing " + ManifestPath}
	}
	return &pkg, nil
}

// readManifest parses the package descriptor entry.
func readManifest(f *zip.File) (*Manifest, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, &PackageError{Reason: "unreadable manifest", Cause: err}
	}
	defer func() {
		_ = rc.Close()
	}()

	var raw manifestJSON
	if err := json.NewDecoder(rc).Decode(&raw); err != nil {
		return nil, &PackageError{Reason: "malformed manifest", Cause: err}
	}

	id, err := pkgid.ParseID(raw.ID)
	if err != nil {
		return nil, &PackageError{Reason: "malformed manifest id", Cause: err}
	}
	if id.Version.IsEmpty() {
		return nil, &PackageError{Reason: "manifest id has no version"}
	}

	pkgType, err := pkgid.ParsePackageType(raw.Type)
	if err != nil {
		return nil, &PackageError{Reason: "malformed manifest type", Cause: err}
	}

	deps := make([]pkgid.Dependency, 0, len(raw.Dependencies))
	for _, s := range raw.Dependencies {
		dep, err := pkgid.ParseDependency(s)
		if err != nil {
			return nil, &PackageError{Reason: "malformed manifest dependency", Cause: err}
		}
		deps = append(deps, dep)
	}

	return &Manifest{
		ID:           id,
		Type:         pkgType,
		Filter:       content.NewPathFilter(raw.Filter...),
		Dependencies: deps,
	}, nil
}

// readEntry converts a content/ zip entry to a store content entry.
func readEntry(f *zip.File) (content.Entry, error) {
	storePath := "/" + strings.TrimSuffix(strings.TrimPrefix(f.Name, ContentPrefix), "/")

	if f.FileInfo().IsDir() {
		return content.Entry{Path: storePath, IsDir: true}, nil
	}

	rc, err := f.Open()
	if err != nil {
		return content.Entry{}, &PackageError{Reason: "unreadable entry " + f.Name, Cause: err}
	}
	defer func() {
		_ = rc.Close()
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return content.Entry{}, &PackageError{Reason: "unreadable entry " + f.Name, Cause: err}
	}
	return content.Entry{Path: storePath, Data: data}, nil
}
