package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/danieljhkim/packstore/internal/archive"
	"github.com/danieljhkim/packstore/internal/clock"
	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/fsops"
	"github.com/danieljhkim/packstore/internal/hash"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// entryRecord is the persisted JSON form of one registry entry.
type entryRecord struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Filter       []string   `json:"filter"`
	Dependencies []string   `json:"dependencies"`
	Installed    bool       `json:"installed"`
	RegisteredAt time.Time  `json:"registeredAt"`
	InstalledAt  *time.Time `json:"installedAt,omitempty"`
	BlobKey      string     `json:"blobKey"`
	Size         int64      `json:"size"`
	Seq          int64      `json:"seq"`
}

// entry is the in-memory registry record.
type entry struct {
	id           pkgid.ID
	pkgType      pkgid.PackageType
	filter       content.PathFilter
	dependencies []pkgid.Dependency
	installed    bool
	registeredAt time.Time
	installedAt  time.Time
	blobKey      string
	size         int64
	seq          int64
}

// FileRegistry implements Installer with an in-memory index persisted as
// one JSON file per package plus a blob store for archive bytes.
type FileRegistry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string // id strings in registration order
	nextSeq int64

	fs       fsops.FS
	reader   archive.Reader
	blobs    BlobStore
	hasher   hash.Hasher
	clock    clock.Clock
	indexDir string
	logger   *slog.Logger
}

// NewFileRegistry creates a registry over the given index directory,
// loading any entries already present.
func NewFileRegistry(
	fs fsops.FS,
	reader archive.Reader,
	blobs BlobStore,
	hasher hash.Hasher,
	clk clock.Clock,
	indexDir string,
	logger *slog.Logger,
) (*FileRegistry, error) {
	r := &FileRegistry{
		entries:  make(map[string]*entry),
		fs:       fs,
		reader:   reader,
		blobs:    blobs,
		hasher:   hasher,
		clock:    clk,
		indexDir: indexDir,
		logger:   logger,
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// load reads all persisted entries into the in-memory index.
func (r *FileRegistry) load() error {
	exists, err := r.fs.Exists(r.indexDir)
	if err != nil {
		return fmt.Errorf("failed to check index directory: %w", err)
	}
	if !exists {
		return nil
	}

	dirEntries, err := r.fs.ReadDir(r.indexDir)
	if err != nil {
		return fmt.Errorf("failed to read index directory: %w", err)
	}

	var loaded []*entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		data, err := r.fs.ReadFile(filepath.Join(r.indexDir, de.Name()))
		if err != nil {
			return fmt.Errorf("failed to read index entry %s: %w", de.Name(), err)
		}
		e, err := decodeEntry(data)
		if err != nil {
			return fmt.Errorf("failed to decode index entry %s: %w", de.Name(), err)
		}
		loaded = append(loaded, e)
	}

	// Restore registration order.
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].seq < loaded[j].seq })
	for _, e := range loaded {
		key := e.id.String()
		r.entries[key] = e
		r.order = append(r.order, key)
		if e.seq >= r.nextSeq {
			r.nextSeq = e.seq + 1
		}
	}
	return nil
}

// Register reads a package archive and stores it.
func (r *FileRegistry) Register(rd io.Reader, replace bool) (pkgid.ID, error) {
	src := archive.NewSource(rd)
	if err := src.Mark(); err != nil {
		return pkgid.ID{}, err
	}

	pkg, err := r.reader.Read(src)
	if err != nil {
		return pkgid.ID{}, err
	}
	id := pkg.Manifest.ID

	// Second pass over the same bytes for hashing and persistence.
	if err := src.Reset(); err != nil {
		return pkgid.ID{}, err
	}
	data, err := src.Bytes()
	if err != nil {
		return pkgid.ID{}, &archive.PackageError{Reason: "unreadable archive", Cause: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	prev, exists := r.entries[key]
	if exists && !replace {
		return pkgid.ID{}, &PackageExistsError{ID: id}
	}

	blobKey := r.hasher.HashBytes(data)
	if err := r.blobs.Put(blobKey, data); err != nil {
		return pkgid.ID{}, fmt.Errorf("failed to persist archive: %w", err)
	}

	e := &entry{
		id:           id,
		pkgType:      pkg.Manifest.Type,
		filter:       pkg.Manifest.Filter,
		dependencies: pkg.Manifest.Dependencies,
		registeredAt: r.clock.Now(),
		blobKey:      blobKey,
		size:         int64(len(data)),
		seq:          r.nextSeq,
	}
	r.nextSeq++

	if err := r.persist(e); err != nil {
		return pkgid.ID{}, err
	}

	if exists {
		// Replacement counts as the latest registration.
		r.removeFromOrder(key)
		if prev.blobKey != blobKey && !r.blobReferenced(prev.blobKey, key) {
			_ = r.blobs.Delete(prev.blobKey)
		}
	}
	r.entries[key] = e
	r.order = append(r.order, key)

	if r.logger != nil {
		r.logger.Info("registered package", "package", key, "replace", exists)
	}
	return id, nil
}

// Contains reports whether the id is registered.
func (r *FileRegistry) Contains(id pkgid.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id.String()]
	return ok
}

// Open returns a snapshot record for the id, or nil if absent.
func (r *FileRegistry) Open(id pkgid.ID) *StoredPackage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id.String()]
	if !ok {
		return nil
	}
	return r.snapshot(e)
}

// snapshot builds a StoredPackage view of an entry. Callers must hold at
// least a read lock.
func (r *FileRegistry) snapshot(e *entry) *StoredPackage {
	id := e.id
	return &StoredPackage{
		id:           id,
		pkgType:      e.pkgType,
		filter:       e.filter,
		dependencies: e.dependencies,
		installed:    e.installed,
		registeredAt: e.registeredAt,
		installedAt:  e.installedAt,
		size:         e.size,
		blobKey:      e.blobKey,
		entries: func(ctx context.Context) ([]content.Entry, error) {
			return r.loadContent(ctx, id)
		},
	}
}

// loadContent re-reads the package archive from the blob store. Fails with
// *NoSuchPackageError once the package has been removed.
func (r *FileRegistry) loadContent(ctx context.Context, id pkgid.ID) ([]content.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	e, ok := r.entries[id.String()]
	var blobKey string
	if ok {
		blobKey = e.blobKey
	}
	r.mu.RUnlock()

	if !ok {
		return nil, &NoSuchPackageError{ID: id}
	}

	data, err := r.blobs.Get(blobKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load archive for %s: %w", id, err)
	}
	pkg, err := r.reader.Read(archive.NewBytesSource(data))
	if err != nil {
		return nil, err
	}
	return pkg.Entries, nil
}

// Remove deletes a registered package.
func (r *FileRegistry) Remove(id pkgid.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	e, ok := r.entries[key]
	if !ok {
		return &NoSuchPackageError{ID: id}
	}

	if err := r.fs.Remove(r.entryPath(key)); err != nil {
		return fmt.Errorf("failed to delete index entry: %w", err)
	}
	delete(r.entries, key)
	r.removeFromOrder(key)
	if !r.blobReferenced(e.blobKey, "") {
		_ = r.blobs.Delete(e.blobKey)
	}

	if r.logger != nil {
		r.logger.Info("removed package", "package", key)
	}
	return nil
}

// Packages returns all registered ids in ascending id order.
func (r *FileRegistry) Packages() []pkgid.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]pkgid.ID, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
	return ids
}

// AnalyzeDependencies partitions the declared dependencies of id against
// the registered set.
func (r *FileRegistry) AnalyzeDependencies(id pkgid.ID, onlyInstalled bool) (*DependencyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id.String()]
	if !ok {
		return nil, &NoSuchPackageError{ID: id}
	}

	report := &DependencyReport{ID: e.id}
	for _, dep := range e.dependencies {
		if match, ok := r.resolve(dep, onlyInstalled); ok {
			report.Resolved = append(report.Resolved, match)
		} else {
			report.Unresolved = append(report.Unresolved, dep)
		}
	}
	return report, nil
}

// resolve picks the best registered match for a dependency: the highest
// satisfying version, ties broken by latest registration. Callers must
// hold at least a read lock.
func (r *FileRegistry) resolve(dep pkgid.Dependency, onlyInstalled bool) (pkgid.ID, bool) {
	var best pkgid.ID
	found := false
	for _, key := range r.order {
		cand := r.entries[key]
		if onlyInstalled && !cand.installed {
			continue
		}
		if !dep.Matches(cand.id) {
			continue
		}
		// Later registrations win version ties because order is
		// registration order.
		if !found || cand.id.Version.Compare(best.Version) >= 0 {
			best = cand.id
			found = true
		}
	}
	return best, found
}

// Usage returns every registered package declaring a dependency matching
// id, in registration order.
func (r *FileRegistry) Usage(id pkgid.ID) []pkgid.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []pkgid.ID
	for _, key := range r.order {
		e := r.entries[key]
		for _, dep := range e.dependencies {
			if dep.Matches(id) {
				users = append(users, e.id)
				break
			}
		}
	}
	return users
}

// InstallPackage installs id into the store and marks it installed. The
// store mutation runs outside the registry lock; the installed flag only
// flips after the store reports success.
func (r *FileRegistry) InstallPackage(ctx context.Context, store content.Store, id pkgid.ID, opts content.Options) error {
	pkg := r.Open(id)
	if pkg == nil {
		return &NoSuchPackageError{ID: id}
	}

	if err := store.Install(ctx, pkg, opts); err != nil {
		return err
	}
	return r.setInstalled(id, true)
}

// UninstallPackage removes id's content from the store and clears the
// installed flag.
func (r *FileRegistry) UninstallPackage(ctx context.Context, store content.Store, id pkgid.ID, opts content.Options) error {
	pkg := r.Open(id)
	if pkg == nil {
		return &NoSuchPackageError{ID: id}
	}

	if err := store.Uninstall(ctx, pkg, opts); err != nil {
		return err
	}
	return r.setInstalled(id, false)
}

// setInstalled updates and persists the installed flag.
func (r *FileRegistry) setInstalled(id pkgid.ID, installed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id.String()]
	if !ok {
		return &NoSuchPackageError{ID: id}
	}
	e.installed = installed
	if installed {
		e.installedAt = r.clock.Now()
	} else {
		e.installedAt = time.Time{}
	}
	return r.persist(e)
}

// persist writes an entry's JSON record atomically. Callers must hold the
// write lock.
func (r *FileRegistry) persist(e *entry) error {
	rec := entryRecord{
		ID:           e.id.String(),
		Type:         string(e.pkgType),
		Filter:       e.filter.Roots(),
		Dependencies: make([]string, len(e.dependencies)),
		Installed:    e.installed,
		RegisteredAt: e.registeredAt,
		BlobKey:      e.blobKey,
		Size:         e.size,
		Seq:          e.seq,
	}
	for i, d := range e.dependencies {
		rec.Dependencies[i] = d.String()
	}
	if !e.installedAt.IsZero() {
		t := e.installedAt
		rec.InstalledAt = &t
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index entry: %w", err)
	}
	if err := r.fs.AtomicWrite(r.entryPath(e.id.String()), data, 0644); err != nil {
		return fmt.Errorf("failed to write index entry: %w", err)
	}
	return nil
}

// decodeEntry parses a persisted entryRecord.
func decodeEntry(data []byte) (*entry, error) {
	var rec entryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	id, err := pkgid.ParseID(rec.ID)
	if err != nil {
		return nil, err
	}
	pkgType, err := pkgid.ParsePackageType(rec.Type)
	if err != nil {
		return nil, err
	}
	deps := make([]pkgid.Dependency, 0, len(rec.Dependencies))
	for _, s := range rec.Dependencies {
		dep, err := pkgid.ParseDependency(s)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}

	e := &entry{
		id:           id,
		pkgType:      pkgType,
		filter:       content.NewPathFilter(rec.Filter...),
		dependencies: deps,
		installed:    rec.Installed,
		registeredAt: rec.RegisteredAt,
		blobKey:      rec.BlobKey,
		size:         rec.Size,
		seq:          rec.Seq,
	}
	if rec.InstalledAt != nil {
		e.installedAt = *rec.InstalledAt
	}
	return e, nil
}

// entryPath maps an id string to its index file.
func (r *FileRegistry) entryPath(key string) string {
	return filepath.Join(r.indexDir, url.QueryEscape(key)+".json")
}

// removeFromOrder drops a key from the registration order slice.
func (r *FileRegistry) removeFromOrder(key string) {
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// blobReferenced reports whether any entry other than skipKey references
// the blob. Callers must hold the write lock.
func (r *FileRegistry) blobReferenced(blobKey, skipKey string) bool {
	for key, e := range r.entries {
		if key == skipKey {
			continue
		}
		if e.blobKey == blobKey {
			return true
		}
	}
	return false
}
