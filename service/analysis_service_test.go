package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/scantree/scantree/domain"
)

func writeFixtureFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestAnalysisServiceImpl_Analyze(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, filepath.Join(dir, "package.json"), `{"name": "fixture", "main": "src/index.ts"}`)
	writeFixtureFile(t, filepath.Join(dir, "src/index.ts"), `
import { used } from "./lib";
console.log(used());
`)
	writeFixtureFile(t, filepath.Join(dir, "src/lib.ts"), `
export function used() { return 1; }
export function unused() { return 2; }
`)
	writeFixtureFile(t, filepath.Join(dir, "src/orphan.ts"), `
export function neverImported() { return 3; }
`)

	svc := NewAnalysisService()
	result, err := svc.Analyze(context.Background(), domain.AnalysisRequest{TargetPath: dir})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	foundOrphan := false
	for _, f := range result.Issues.UnusedFiles {
		if filepath.Base(f.Path) == "orphan.ts" {
			foundOrphan = true
		}
	}
	if !foundOrphan {
		t.Errorf("expected orphan.ts to be reported unused, got %+v", result.Issues.UnusedFiles)
	}

	foundUnusedExport := false
	for _, e := range result.Issues.UnusedExports {
		if e.Name == "unused" {
			foundUnusedExport = true
		}
	}
	if !foundUnusedExport {
		t.Errorf("expected 'unused' export to be reported, got %+v", result.Issues.UnusedExports)
	}
}

func TestAnalysisServiceImpl_Analyze_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewAnalysisService()
	if _, err := svc.Analyze(ctx, domain.AnalysisRequest{TargetPath: t.TempDir()}); err == nil {
		t.Error("expected a canceled context to short-circuit with an error")
	}
}

func TestAnalysisServiceImpl_Analyze_DefaultsTargetPathToCWD(t *testing.T) {
	dir := t.TempDir()
	original, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(original)

	writeFixtureFile(t, filepath.Join(dir, "src/index.ts"), "export const a = 1;\n")
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	svc := NewAnalysisService()
	if _, err := svc.Analyze(context.Background(), domain.AnalysisRequest{}); err != nil {
		t.Fatalf("Analyze with empty TargetPath should default to '.': %v", err)
	}
}
