package analyzer

import (
	"testing"

	"github.com/scantree/scantree/domain"
)

func strPtr(s string) *string { return &s }

func entryLibGraph() *domain.ModuleGraph {
	g := domain.NewModuleGraph()
	g.EntryPoints = []string{"/proj/entry.ts"}

	g.Modules["/proj/entry.ts"] = &domain.Module{
		Path: "/proj/entry.ts",
		Imports: []domain.ResolvedImport{
			{
				Original:     domain.Import{Specifier: "./lib", ImportedNames: []domain.ImportedName{{Name: "used"}}},
				ResolvedPath: strPtr("/proj/lib.ts"),
			},
		},
		Exports: []domain.Export{
			{Name: "default", Kind: domain.ExportKindFunction, IsDefault: true},
		},
	}

	g.Modules["/proj/lib.ts"] = &domain.Module{
		Path: "/proj/lib.ts",
		Exports: []domain.Export{
			{Name: "used", Kind: domain.ExportKindFunction},
			{Name: "unused", Kind: domain.ExportKindFunction},
			{Name: "UnusedType", Kind: domain.ExportKindInterface, IsType: true},
		},
	}

	return g
}

func TestFindUnusedExports_Basic(t *testing.T) {
	g := entryLibGraph()
	cfg := &domain.ResolvedConfig{Root: "/proj"}

	exports, types := FindUnusedExports(g, cfg)

	if len(exports) != 1 || exports[0].Name != "unused" {
		t.Fatalf("exports = %+v, want just 'unused'", exports)
	}
	if len(types) != 1 || types[0].Name != "UnusedType" {
		t.Fatalf("types = %+v, want just 'UnusedType'", types)
	}
}

func TestFindUnusedExports_EntryDefaultSuppressedByDefault(t *testing.T) {
	g := entryLibGraph()
	cfg := &domain.ResolvedConfig{Root: "/proj"}

	exports, _ := FindUnusedExports(g, cfg)
	for _, e := range exports {
		if e.Path == "/proj/entry.ts" {
			t.Errorf("entry point's default export should be suppressed, got %+v", e)
		}
	}
}

func TestFindUnusedExports_IncludeEntryExports(t *testing.T) {
	g := entryLibGraph()
	cfg := &domain.ResolvedConfig{Root: "/proj", IncludeEntryExports: true}

	exports, _ := FindUnusedExports(g, cfg)
	found := false
	for _, e := range exports {
		if e.Path == "/proj/entry.ts" && e.Name == "default" {
			found = true
		}
	}
	if !found {
		t.Error("expected entry point's default export to be reported when IncludeEntryExports is set")
	}
}

func TestFindUnusedExports_IgnoreExportsByPattern(t *testing.T) {
	g := entryLibGraph()
	cfg := &domain.ResolvedConfig{
		Root:          "/proj",
		IgnoreExports: map[string][]string{"lib.ts": {"unused"}},
	}

	exports, _ := FindUnusedExports(g, cfg)
	if len(exports) != 0 {
		t.Errorf("expected 'unused' to be ignored via IgnoreExports, got %+v", exports)
	}
}

func TestFindUnusedExports_IgnoreExportsWildcard(t *testing.T) {
	g := entryLibGraph()
	cfg := &domain.ResolvedConfig{
		Root:          "/proj",
		IgnoreExports: map[string][]string{"lib.ts": {"*"}},
	}

	exports, types := FindUnusedExports(g, cfg)
	if len(exports) != 0 || len(types) != 0 {
		t.Errorf("expected every export in lib.ts to be ignored, got exports=%+v types=%+v", exports, types)
	}
}

func TestFindUnusedExports_UnreachableModuleSkipped(t *testing.T) {
	g := domain.NewModuleGraph()
	g.Modules["/proj/orphan.ts"] = &domain.Module{
		Path:    "/proj/orphan.ts",
		Exports: []domain.Export{{Name: "anything", Kind: domain.ExportKindFunction}},
	}
	cfg := &domain.ResolvedConfig{Root: "/proj"}

	exports, types := FindUnusedExports(g, cfg)
	if len(exports) != 0 || len(types) != 0 {
		t.Errorf("expected unreachable module's exports to be skipped entirely, got exports=%+v types=%+v", exports, types)
	}
}
