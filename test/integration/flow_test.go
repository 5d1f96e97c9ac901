package integration

import (
	"context"
	"testing"

	"github.com/danieljhkim/packstore/internal/pkgid"
	"github.com/danieljhkim/packstore/internal/plan"
)

// TestFullLifecycle registers a dependency chain through real zip archives,
// installs it with one plan, and uninstalls it with another.
func TestFullLifecycle(t *testing.T) {
	e := newEnv(t)

	e.register(t, manifest{
		ID:           "platform:app:2.0",
		Type:         "application",
		Filter:       []string{"/libs/app"},
		Dependencies: []string{"platform:base:[1.0,2.0)"},
	}, map[string]string{
		"/libs/app/main.txt": "app",
	})
	e.register(t, manifest{
		ID:     "platform:base:1.5",
		Type:   "application",
		Filter: []string{"/libs/base"},
	}, map[string]string{
		"/libs/base/lib.txt": "base",
	})

	appID := pkgid.NewID("platform", "app", pkgid.MustVersion("2.0"))
	baseID := pkgid.NewID("platform", "base", pkgid.MustVersion("1.5"))

	p, err := plan.NewBuilder(e.registry).
		AddTask(appID, plan.Install).
		AddTask(baseID, plan.Install).
		WithStore(e.store).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("install plan failed: %v", err)
	}
	if p.HasErrors() {
		t.Fatal("install plan reported errors")
	}

	// The dependency installs first.
	tasks := p.Tasks()
	if !tasks[0].ID.Equal(baseID) || !tasks[1].ID.Equal(appID) {
		t.Errorf("task order = [%s %s], want base before app", tasks[0].ID, tasks[1].ID)
	}
	if !e.exists(t, "/libs/app/main.txt") || !e.exists(t, "/libs/base/lib.txt") {
		t.Error("installed content missing from store")
	}
	for _, id := range []pkgid.ID{appID, baseID} {
		if !e.registry.Open(id).IsInstalled() {
			t.Errorf("%s not marked installed", id)
		}
	}

	p, err = plan.NewBuilder(e.registry).
		AddTask(baseID, plan.Uninstall).
		AddTask(appID, plan.Uninstall).
		WithStore(e.store).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("uninstall plan failed: %v", err)
	}
	if p.HasErrors() {
		t.Fatal("uninstall plan reported errors")
	}

	// Dependents uninstall before their dependencies.
	tasks = p.Tasks()
	if !tasks[0].ID.Equal(appID) || !tasks[1].ID.Equal(baseID) {
		t.Errorf("task order = [%s %s], want app before base", tasks[0].ID, tasks[1].ID)
	}
	if e.exists(t, "/libs/app/main.txt") || e.exists(t, "/libs/base/lib.txt") {
		t.Error("content still present after uninstall")
	}
	for _, id := range []pkgid.ID{appID, baseID} {
		if e.registry.Open(id).IsInstalled() {
			t.Errorf("%s still marked installed", id)
		}
	}
}

// TestScopedPlanAcrossPackages installs an application package and a content
// package under an application scope in one plan.
func TestScopedPlanAcrossPackages(t *testing.T) {
	e := newEnv(t)

	e.register(t, manifest{
		ID:     "platform:code:1.0",
		Type:   "application",
		Filter: []string{"/apps/site"},
	}, map[string]string{
		"/apps/site/component.txt": "code",
	})
	e.register(t, manifest{
		ID:     "platform:data:1.0",
		Type:   "content",
		Filter: []string{"/content/site"},
	}, map[string]string{
		"/content/site/page.txt": "data",
	})

	codeID := pkgid.NewID("platform", "code", pkgid.MustVersion("1.0"))
	dataID := pkgid.NewID("platform", "data", pkgid.MustVersion("1.0"))

	b := plan.NewBuilder(e.registry).
		AddTask(codeID, plan.Install).
		AddTask(dataID, plan.Install).
		WithStore(e.store)
	handler := b.SetScope(pkgid.Application)

	p, err := b.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if p.HasErrors() {
		t.Fatal("plan reported errors")
	}

	if !e.exists(t, "/apps/site/component.txt") {
		t.Error("application content missing")
	}
	if e.exists(t, "/content/site/page.txt") {
		t.Error("content package written under application scope")
	}

	left := handler.PackagesLeavingScope()
	if len(left) != 1 || !left[0].Equal(dataID) {
		t.Errorf("PackagesLeavingScope = %v, want [%s]", left, dataID)
	}
}
