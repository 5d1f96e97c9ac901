package scope

import (
	"testing"

	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/pkgid"
)

func TestIsApplicationPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/libs/foo", true},
		{"/apps/x/y", true},
		{"/libs", true},
		{"/libsfoo", false},
		{"/tmp/foo", false},
		{"/content", false},
	}
	for _, tt := range tests {
		if got := IsApplicationPath(tt.path); got != tt.want {
			t.Errorf("IsApplicationPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDecorateApplicationScope(t *testing.T) {
	h := NewHandler(pkgid.Application)
	id := pkgid.NewID("my_packages", "mixed", pkgid.MustVersion("1.0"))
	declared := content.NewPathFilter("/libs/foo", "/tmp/foo")

	opts := h.Decorate(content.Options{Filter: declared}, id, declared)

	if !opts.Filter.Covers("/libs/foo/x") {
		t.Error("application root dropped from narrowed filter")
	}
	if opts.Filter.Covers("/tmp/foo/x") {
		t.Error("content root kept in application-scoped filter")
	}
}

func TestDecorateContentScope(t *testing.T) {
	h := NewHandler(pkgid.Content)
	id := pkgid.NewID("my_packages", "mixed", pkgid.MustVersion("1.0"))
	declared := content.NewPathFilter("/libs/foo", "/tmp/foo")

	opts := h.Decorate(content.Options{Filter: declared}, id, declared)

	if opts.Filter.Covers("/libs/foo/x") {
		t.Error("application root kept in content-scoped filter")
	}
	if !opts.Filter.Covers("/tmp/foo/x") {
		t.Error("content root dropped from narrowed filter")
	}
}

func TestDecorateMixedScopeIsUntouched(t *testing.T) {
	for _, s := range []pkgid.PackageType{pkgid.Mixed, pkgid.Container} {
		h := NewHandler(s)
		id := pkgid.NewID("g", "n", pkgid.MustVersion("1.0"))
		declared := content.NewPathFilter("/libs/foo", "/tmp/foo")

		opts := h.Decorate(content.Options{Filter: declared}, id, declared)

		if !opts.Filter.Covers("/libs/foo") || !opts.Filter.Covers("/tmp/foo") {
			t.Errorf("scope %s narrowed the filter", s)
		}
		if len(h.PackagesLeavingScope()) != 0 {
			t.Errorf("scope %s created trackers", s)
		}
	}
}

func TestDecorateNeverWidens(t *testing.T) {
	h := NewHandler(pkgid.Application)
	id := pkgid.NewID("g", "n", pkgid.MustVersion("1.0"))
	// Declared filter covers only a content root; application scope
	// must not grant any application path.
	declared := content.NewPathFilter("/tmp/foo")

	opts := h.Decorate(content.Options{Filter: declared}, id, declared)

	if opts.Filter.Covers("/libs/anything") {
		t.Error("narrowing added write permission beyond the declared filter")
	}
	if !opts.Filter.IsEmpty() {
		t.Errorf("narrowed filter = %v, want empty", opts.Filter.Roots())
	}
}

func TestTrackerCountsMisses(t *testing.T) {
	h := NewHandler(pkgid.Application)
	id := pkgid.NewID("my_packages", "mixed", pkgid.MustVersion("1.0"))
	declared := content.NewPathFilter("/libs/foo", "/tmp/foo")

	opts := h.Decorate(content.Options{Filter: declared}, id, declared)

	opts.Listener.OnMessage(content.ModePaths, content.ActionAdded, "/libs/foo/in.txt")
	opts.Listener.OnMessage(content.ModePaths, content.ActionIgnored, "/tmp/foo/out.txt")
	// Text events carry no path and never count.
	opts.Listener.OnMessage(content.ModeText, "msg", "installing")

	leaving := h.PackagesLeavingScope()
	if len(leaving) != 1 || !leaving[0].Equal(id) {
		t.Errorf("PackagesLeavingScope = %v, want [%s]", leaving, id)
	}
}

func TestTrackerForwardsEvents(t *testing.T) {
	var got []string
	next := listenerFunc(func(action, path string) {
		got = append(got, action+" "+path)
	})

	h := NewHandler(pkgid.Content)
	id := pkgid.NewID("g", "n", pkgid.MustVersion("1.0"))
	declared := content.NewPathFilter("/tmp/foo")

	opts := h.Decorate(content.Options{Filter: declared, Listener: next}, id, declared)
	opts.Listener.OnMessage(content.ModePaths, content.ActionAdded, "/tmp/foo/a")

	if len(got) != 1 || got[0] != "A /tmp/foo/a" {
		t.Errorf("forwarded events = %v", got)
	}
	if len(h.PackagesLeavingScope()) != 0 {
		t.Error("in-scope path counted as miss")
	}
}

func TestPackagesLeavingScopeOrder(t *testing.T) {
	h := NewHandler(pkgid.Application)
	declared := content.NewPathFilter("/tmp/foo")

	first := pkgid.NewID("g", "a", pkgid.MustVersion("1.0"))
	second := pkgid.NewID("g", "b", pkgid.MustVersion("1.0"))

	optsA := h.Decorate(content.Options{}, first, declared)
	optsB := h.Decorate(content.Options{}, second, declared)

	// Both miss, in reverse call order.
	optsB.Listener.OnMessage(content.ModePaths, content.ActionIgnored, "/tmp/foo/b")
	optsA.Listener.OnMessage(content.ModePaths, content.ActionIgnored, "/tmp/foo/a")

	leaving := h.PackagesLeavingScope()
	if len(leaving) != 2 || !leaving[0].Equal(first) || !leaving[1].Equal(second) {
		t.Errorf("PackagesLeavingScope = %v, want tracker-creation order", leaving)
	}
}

// listenerFunc adapts a function to the ProgressListener interface.
type listenerFunc func(action, path string)

func (f listenerFunc) OnMessage(mode content.Mode, action, path string) {
	f(action, path)
}

func (f listenerFunc) OnError(content.Mode, string, error) {}
