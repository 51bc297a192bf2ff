package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCmdFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// captureStdout redirects os.Stdout for the duration of fn and returns what
// was written to it — analyze/check write straight to os.Stdout rather than
// the cobra command's own writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	w.Close()
	buf := make([]byte, 64*1024)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func TestAnalyzeCmd_ReportsUnusedFile(t *testing.T) {
	dir := t.TempDir()
	writeCmdFixture(t, filepath.Join(dir, "src/index.ts"), "export const used = 1;\n")
	writeCmdFixture(t, filepath.Join(dir, "src/orphan.ts"), "export const neverImported = 1;\n")

	cmd := analyzeCmd()
	cmd.SetArgs([]string{dir})

	output := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})

	if output == "" {
		t.Error("expected analyze to write output to stdout")
	}
}

func TestAnalyzeCmd_RejectsTooManyArgs(t *testing.T) {
	cmd := analyzeCmd()
	cmd.SetArgs([]string{"a", "b"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for more than one positional argument")
	}
}
