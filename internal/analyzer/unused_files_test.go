package analyzer

import (
	"testing"

	"github.com/scantree/scantree/domain"
)

func newGraphWithOrphan() *domain.ModuleGraph {
	g := domain.NewModuleGraph()
	g.EntryPoints = []string{"/proj/src/entry.ts"}
	g.Modules["/proj/src/entry.ts"] = &domain.Module{Path: "/proj/src/entry.ts"}
	g.Modules["/proj/src/orphan.ts"] = &domain.Module{Path: "/proj/src/orphan.ts"}
	g.Modules["/proj/src/orphan.test.ts"] = &domain.Module{Path: "/proj/src/orphan.test.ts"}
	return g
}

func TestFindUnusedFiles(t *testing.T) {
	g := newGraphWithOrphan()
	unused := FindUnusedFiles(g, "/proj", nil)

	if len(unused) != 1 {
		t.Fatalf("len(unused) = %d, want 1: %+v", len(unused), unused)
	}
	if unused[0].Path != "/proj/src/orphan.ts" {
		t.Errorf("unused[0].Path = %q, want /proj/src/orphan.ts", unused[0].Path)
	}
}

func TestFindUnusedFiles_IgnoresTestFiles(t *testing.T) {
	g := domain.NewModuleGraph()
	g.Modules["/proj/src/foo.test.ts"] = &domain.Module{Path: "/proj/src/foo.test.ts"}
	g.Modules["/proj/src/__tests__/bar.ts"] = &domain.Module{Path: "/proj/src/__tests__/bar.ts"}

	unused := FindUnusedFiles(g, "/proj", nil)
	if len(unused) != 0 {
		t.Errorf("expected test files to be excluded, got %+v", unused)
	}
}

func TestFindUnusedFiles_RespectsIgnorePatterns(t *testing.T) {
	g := newGraphWithOrphan()
	unused := FindUnusedFiles(g, "/proj", []string{"src/orphan.ts"})
	if len(unused) != 0 {
		t.Errorf("expected orphan.ts to be ignored, got %+v", unused)
	}
}

func TestRelativeTo(t *testing.T) {
	if got := relativeTo("/proj", "/proj/src/foo.ts"); got != "src/foo.ts" {
		t.Errorf("relativeTo = %q, want src/foo.ts", got)
	}
	if got := relativeTo("/proj", "/other/src/foo.ts"); got != "/other/src/foo.ts" {
		t.Errorf("relativeTo for non-prefixed path = %q, want unchanged", got)
	}
}
