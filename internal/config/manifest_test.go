package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadPackageJSON_Missing(t *testing.T) {
	pkg, err := LoadPackageJSON(t.TempDir())
	if err != nil {
		t.Fatalf("LoadPackageJSON: %v", err)
	}
	if pkg != nil {
		t.Errorf("expected nil for a missing package.json, got %+v", pkg)
	}
}

func TestLoadPackageJSON_BinAsString(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"name": "@scope/my-cli",
		"dependencies": {"left-pad": "^1.0.0"},
		"bin": "./bin/cli.js"
	}`)

	pkg, err := LoadPackageJSON(dir)
	if err != nil {
		t.Fatalf("LoadPackageJSON: %v", err)
	}
	if pkg.Bin["my-cli"] != "./bin/cli.js" {
		t.Errorf("Bin = %+v, want scoped package name stripped to 'my-cli'", pkg.Bin)
	}
}

func TestLoadPackageJSON_BinAsMap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"name": "tool",
		"bin": {"tool": "./bin/tool.js", "tool-debug": "./bin/debug.js"}
	}`)

	pkg, err := LoadPackageJSON(dir)
	if err != nil {
		t.Fatalf("LoadPackageJSON: %v", err)
	}
	if len(pkg.Bin) != 2 || pkg.Bin["tool-debug"] != "./bin/debug.js" {
		t.Errorf("Bin = %+v", pkg.Bin)
	}
}

func TestLoadTSConfig_Missing(t *testing.T) {
	baseURL, paths, err := LoadTSConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadTSConfig: %v", err)
	}
	if baseURL != "" || paths != nil {
		t.Errorf("expected zero values without a tsconfig, got baseURL=%q paths=%+v", baseURL, paths)
	}
}

func TestLoadTSConfig_WithCommentsAndPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tsconfig.json"), `{
		// baseUrl anchors non-relative specifiers
		"compilerOptions": {
			"baseUrl": "./src",
			"paths": {
				"@app/*": ["app/*"]
			}
		}
	}`)

	baseURL, paths, err := LoadTSConfig(dir)
	if err != nil {
		t.Fatalf("LoadTSConfig: %v", err)
	}
	if baseURL != "./src" {
		t.Errorf("baseURL = %q, want './src'", baseURL)
	}
	if len(paths["@app/*"]) != 1 || paths["@app/*"][0] != "app/*" {
		t.Errorf("paths = %+v", paths)
	}
}

func TestLoadTSConfig_ExtendsRelativeParent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tsconfig.base.json"), `{
		"compilerOptions": {"baseUrl": "./src"}
	}`)
	writeFile(t, filepath.Join(dir, "tsconfig.json"), `{
		"extends": "./tsconfig.base.json",
		"compilerOptions": {}
	}`)

	baseURL, _, err := LoadTSConfig(dir)
	if err != nil {
		t.Fatalf("LoadTSConfig: %v", err)
	}
	if baseURL != "./src" {
		t.Errorf("baseURL = %q, want inherited './src'", baseURL)
	}
}
