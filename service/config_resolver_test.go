package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scantree/scantree/domain"
)

func writeProjectFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveConfig_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := ResolveConfig(dir, domain.AnalysisRequest{})
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.PackageJSON != nil {
		t.Errorf("expected nil PackageJSON without a package.json, got %+v", cfg.PackageJSON)
	}
	if !filepath.IsAbs(cfg.Root) {
		t.Errorf("Root = %q, want an absolute path", cfg.Root)
	}
}

func TestResolveConfig_MergesPackageJSONAndTSConfig(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, filepath.Join(dir, "package.json"), `{"name": "proj", "dependencies": {"lodash": "^4.0.0"}}`)
	writeProjectFile(t, filepath.Join(dir, "tsconfig.json"), `{"compilerOptions": {"baseUrl": "./src"}}`)

	cfg, err := ResolveConfig(dir, domain.AnalysisRequest{})
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.PackageJSON == nil || cfg.PackageJSON.Dependencies["lodash"] != "^4.0.0" {
		t.Errorf("PackageJSON = %+v", cfg.PackageJSON)
	}
	if cfg.BaseURL != "./src" {
		t.Errorf("BaseURL = %q, want './src'", cfg.BaseURL)
	}
}

func TestResolveConfig_CLIFlagOverridesTSConfigBaseURL(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, filepath.Join(dir, "tsconfig.json"), `{"compilerOptions": {"baseUrl": "./src"}}`)

	cfg, err := ResolveConfig(dir, domain.AnalysisRequest{BaseURL: "./app"})
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if cfg.BaseURL != "./app" {
		t.Errorf("BaseURL = %q, want the CLI-supplied './app' to win", cfg.BaseURL)
	}
}

func TestResolveConfig_ProjectFileSuppliesIgnoreDependencies(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, filepath.Join(dir, "scantree.yaml"), "ignoreDependencies:\n  - left-pad\n")

	cfg, err := ResolveConfig(dir, domain.AnalysisRequest{})
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	if len(cfg.IgnoreDependencies) != 1 || cfg.IgnoreDependencies[0] != "left-pad" {
		t.Errorf("IgnoreDependencies = %+v", cfg.IgnoreDependencies)
	}
}
