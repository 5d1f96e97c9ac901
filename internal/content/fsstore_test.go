package content

import (
	"context"
	"testing"

	"github.com/danieljhkim/packstore/internal/fsops"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// fakeContent implements PackageContent with fixed entries.
type fakeContent struct {
	id      pkgid.ID
	entries []Entry
}

func (c *fakeContent) ID() pkgid.ID { return c.id }

func (c *fakeContent) Entries(context.Context) ([]Entry, error) {
	return c.entries, nil
}

// recordListener captures all reported events.
type recordListener struct {
	events []string
}

func (l *recordListener) OnMessage(mode Mode, action, path string) {
	l.events = append(l.events, action+" "+path)
}

func (l *recordListener) OnError(mode Mode, path string, err error) {
	l.events = append(l.events, "E "+path)
}

func testPackage() *fakeContent {
	return &fakeContent{
		id: pkgid.NewID("my_packages", "mixed", pkgid.MustVersion("1.0")),
		entries: []Entry{
			{Path: "/libs/foo", IsDir: true},
			{Path: "/libs/foo/app.txt", Data: []byte("app")},
			{Path: "/tmp/foo", IsDir: true},
			{Path: "/tmp/foo/content.txt", Data: []byte("content")},
		},
	}
}

func TestFSStoreInstallFullFilter(t *testing.T) {
	store := NewFSStore(fsops.NewRealFS(), t.TempDir(), nil)
	pkg := testPackage()
	listener := &recordListener{}

	opts := Options{Filter: NewPathFilter("/libs/foo", "/tmp/foo"), Listener: listener}
	if err := store.Install(context.Background(), pkg, opts); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	for _, path := range []string{"/libs/foo/app.txt", "/tmp/foo/content.txt"} {
		exists, err := store.Exists(path)
		if err != nil {
			t.Fatalf("Exists(%q) failed: %v", path, err)
		}
		if !exists {
			t.Errorf("%s missing after install", path)
		}
	}
	if len(listener.events) != 4 {
		t.Errorf("events = %v, want 4 adds", listener.events)
	}
}

func TestFSStoreInstallNarrowedFilter(t *testing.T) {
	store := NewFSStore(fsops.NewRealFS(), t.TempDir(), nil)
	pkg := testPackage()
	listener := &recordListener{}

	// Only the application region is allowed.
	opts := Options{Filter: NewPathFilter("/libs/foo"), Listener: listener}
	if err := store.Install(context.Background(), pkg, opts); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	exists, _ := store.Exists("/libs/foo/app.txt")
	if !exists {
		t.Error("/libs/foo/app.txt missing after install")
	}
	exists, _ = store.Exists("/tmp/foo/content.txt")
	if exists {
		t.Error("/tmp/foo/content.txt written despite narrowed filter")
	}

	// Excluded entries must still be reported, as ignored.
	var ignored int
	for _, ev := range listener.events {
		if ev == "- /tmp/foo" || ev == "- /tmp/foo/content.txt" {
			ignored++
		}
	}
	if ignored != 2 {
		t.Errorf("ignored events = %v, want 2 in %v", ignored, listener.events)
	}
}

func TestFSStoreUninstall(t *testing.T) {
	store := NewFSStore(fsops.NewRealFS(), t.TempDir(), nil)
	pkg := testPackage()
	opts := Options{Filter: NewPathFilter("/libs/foo", "/tmp/foo")}

	if err := store.Install(context.Background(), pkg, opts); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if err := store.Uninstall(context.Background(), pkg, opts); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}

	for _, path := range []string{"/libs/foo/app.txt", "/tmp/foo/content.txt", "/libs/foo"} {
		exists, _ := store.Exists(path)
		if exists {
			t.Errorf("%s still present after uninstall", path)
		}
	}
}

func TestFSStoreUninstallMissingContentIsQuiet(t *testing.T) {
	store := NewFSStore(fsops.NewRealFS(), t.TempDir(), nil)
	pkg := testPackage()
	opts := Options{Filter: NewPathFilter("/libs/foo", "/tmp/foo")}

	// Nothing was installed; uninstall must not fail.
	if err := store.Uninstall(context.Background(), pkg, opts); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}
}
