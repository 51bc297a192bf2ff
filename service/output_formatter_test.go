package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scantree/scantree/domain"
)

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Issues: domain.Issues{
			UnusedFiles: []domain.UnusedFile{{Path: "src/orphan.ts"}},
			UnusedExports: []domain.UnusedExport{
				{Path: "src/lib.ts", Name: "helper", Kind: domain.ExportKindFunction, Location: domain.SourceLocation{Line: 4, Col: 1}},
			},
			UnlistedDependencies: []domain.UnlistedDependency{
				{Name: "lodash", UsedIn: []string{"src/a.ts"}},
			},
		},
		Counters:    domain.Counters{Files: 1, Exports: 1, UnlistedDependencies: 1},
		Stats:       domain.Stats{FilesAnalyzed: 3},
		GeneratedAt: "2026-01-01T00:00:00Z",
		Version:     "test",
	}
}

func TestOutputFormatterImpl_FormatText(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResult(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "src/orphan.ts") || !strings.Contains(out, "helper") || !strings.Contains(out, "lodash") {
		t.Errorf("text output missing expected content:\n%s", out)
	}
}

func TestOutputFormatterImpl_FormatText_Clean(t *testing.T) {
	formatter := NewOutputFormatter()
	result := &domain.AnalysisResult{}

	out, err := formatter.Format(result, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "No unused code or dependency issues found") {
		t.Errorf("expected the clean-result message, got %q", out)
	}
}

func TestOutputFormatterImpl_FormatJSON(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResult(), domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, `"path": "src/orphan.ts"`) {
		t.Errorf("JSON output missing expected field:\n%s", out)
	}
}

func TestOutputFormatterImpl_FormatCSV(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResult(), domain.OutputFormatCSV)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "category,path,name,line,col" {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	if len(lines) != 4 {
		t.Errorf("expected a header row plus 3 data rows, got %d lines:\n%s", len(lines), out)
	}
}

func TestOutputFormatterImpl_UnsupportedFormat(t *testing.T) {
	formatter := NewOutputFormatter()

	if _, err := formatter.Format(sampleResult(), domain.OutputFormat("xml")); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestOutputFormatterImpl_Write(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	if err := formatter.Write(sampleResult(), domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected Write to produce output")
	}
}
