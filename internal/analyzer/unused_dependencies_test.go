package analyzer

import (
	"testing"

	"github.com/scantree/scantree/domain"
)

func TestFindUnusedDependencies(t *testing.T) {
	g := domain.NewModuleGraph()
	g.ExternalImports = map[string][]string{"lodash": {"/proj/a.ts"}}
	cfg := &domain.ResolvedConfig{
		PackageJSON: &domain.PackageJSON{
			Dependencies:    map[string]string{"lodash": "^4.0.0", "left-pad": "^1.0.0", "typescript": "^5.0.0"},
			DevDependencies: map[string]string{"eslint": "^9.0.0", "some-unused-tool": "^1.0.0"},
		},
	}

	unused := FindUnusedDependencies(g, cfg)

	names := make(map[string]bool)
	for _, d := range unused {
		names[d.Name] = true
	}

	if names["lodash"] {
		t.Error("lodash is imported, should not be reported unused")
	}
	if !names["left-pad"] {
		t.Error("left-pad is never imported, should be reported unused")
	}
	if names["typescript"] {
		t.Error("typescript is an implicit dependency, should never be reported unused")
	}
	if names["eslint"] {
		t.Error("eslint is a known dev tool, should never be reported unused")
	}
	if !names["some-unused-tool"] {
		t.Error("some-unused-tool is an unrecognized, unimported devDependency, should be reported unused")
	}
}

func TestFindUnusedDependencies_ProductionSkipsDev(t *testing.T) {
	g := domain.NewModuleGraph()
	cfg := &domain.ResolvedConfig{
		Production: true,
		PackageJSON: &domain.PackageJSON{
			DevDependencies: map[string]string{"some-unused-tool": "^1.0.0"},
		},
	}

	if unused := FindUnusedDependencies(g, cfg); len(unused) != 0 {
		t.Errorf("production mode should skip devDependencies entirely, got %+v", unused)
	}
}

func TestFindUnusedDependencies_IgnoreList(t *testing.T) {
	g := domain.NewModuleGraph()
	cfg := &domain.ResolvedConfig{
		IgnoreDependencies: []string{"left-pad"},
		PackageJSON: &domain.PackageJSON{
			Dependencies: map[string]string{"left-pad": "^1.0.0"},
		},
	}

	if unused := FindUnusedDependencies(g, cfg); len(unused) != 0 {
		t.Errorf("expected left-pad to be suppressed via IgnoreDependencies, got %+v", unused)
	}
}

func TestFindUnusedDependencies_NoPackageJSON(t *testing.T) {
	g := domain.NewModuleGraph()
	cfg := &domain.ResolvedConfig{}

	if unused := FindUnusedDependencies(g, cfg); unused != nil {
		t.Errorf("expected nil without a package.json, got %+v", unused)
	}
}
