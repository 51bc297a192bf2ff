package analyzer

import (
	"testing"

	"github.com/scantree/scantree/domain"
)

func TestFindUnlistedBinaries(t *testing.T) {
	cfg := &domain.ResolvedConfig{
		PackageJSON: &domain.PackageJSON{
			Scripts: map[string]string{
				"build": "tsc -p . && webpack --mode production",
				"clean": "rimraf dist",
				"test":  "CI=true jest --runInBand",
			},
			DevDependencies: map[string]string{"typescript": "^5.0.0", "jest": "^29.0.0", "rimraf": "^5.0.0"},
		},
	}

	unlisted := FindUnlistedBinaries(cfg)

	names := make(map[string]bool)
	for _, b := range unlisted {
		names[b.Name] = true
	}

	if !names["tsc"] {
		t.Error("tsc matches no declared dependency name (only typescript is declared), should be reported unlisted")
	}
	if names["jest"] {
		t.Error("jest is declared directly and invoked after an env assignment, should not be reported")
	}
	if names["rimraf"] {
		t.Error("rimraf is declared as a devDependency, should not be reported")
	}
	if !names["webpack"] {
		t.Error("webpack has no declared dependency providing it, should be reported unlisted")
	}
}

func TestFindUnlistedBinaries_IgnoreList(t *testing.T) {
	cfg := &domain.ResolvedConfig{
		IgnoreBinaries: []string{"webpack"},
		PackageJSON: &domain.PackageJSON{
			Scripts: map[string]string{"build": "webpack"},
		},
	}

	if unlisted := FindUnlistedBinaries(cfg); len(unlisted) != 0 {
		t.Errorf("expected webpack to be suppressed via IgnoreBinaries, got %+v", unlisted)
	}
}

func TestFindUnlistedBinaries_NpxPrefixResolvesToInvokedBinary(t *testing.T) {
	cfg := &domain.ResolvedConfig{
		PackageJSON: &domain.PackageJSON{
			Scripts: map[string]string{"format": "npx prettier --write ."},
		},
	}

	unlisted := FindUnlistedBinaries(cfg)
	if len(unlisted) != 1 || unlisted[0].Name != "prettier" {
		t.Fatalf("unlisted = %+v, want just 'prettier' (npx prefix stripped)", unlisted)
	}
}

func TestFindUnlistedBinaries_NoScripts(t *testing.T) {
	cfg := &domain.ResolvedConfig{PackageJSON: &domain.PackageJSON{}}

	if unlisted := FindUnlistedBinaries(cfg); unlisted != nil {
		t.Errorf("expected nil with no scripts, got %+v", unlisted)
	}
}
