package domain

import (
	"errors"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := DomainError{Code: "TEST_ERROR", Message: "test message"}
	if got, want := err.Error(), "[TEST_ERROR] test message"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("underlying error")
	errWithCause := DomainError{Code: "TEST_ERROR", Message: "test message", Cause: cause}
	if got, want := errWithCause.Error(), "[TEST_ERROR] test message: underlying error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := DomainError{Code: "TEST_ERROR", Message: "test message", Cause: cause}
	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Error("Unwrap should return the cause")
	}

	errNoCause := DomainError{Code: "TEST_ERROR", Message: "test message"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"NewDomainError", NewDomainError("CODE", "message", cause), "CODE"},
		{"NewInvalidInputError", NewInvalidInputError("bad input", cause), ErrCodeInvalidInput},
		{"NewFileNotFoundError", NewFileNotFoundError("/path/to/file", nil), ErrCodeFileNotFound},
		{"NewParseError", NewParseError("test.js", cause), ErrCodeParseError},
		{"NewAnalysisError", NewAnalysisError("analysis failed", nil), ErrCodeAnalysisError},
		{"NewConfigError", NewConfigError("invalid config", nil), ErrCodeConfigError},
		{"NewOutputError", NewOutputError("write failed", nil), ErrCodeOutputError},
		{"NewUnsupportedFormatError", NewUnsupportedFormatError("xml"), ErrCodeUnsupportedFormat},
		{"NewValidationError", NewValidationError("validation failed"), ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr, ok := tt.err.(DomainError)
			if !ok {
				t.Fatalf("expected DomainError, got %T", tt.err)
			}
			if domainErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", domainErr.Code, tt.wantCode)
			}
		})
	}
}

func TestNewFileNotFoundError_Message(t *testing.T) {
	err := NewFileNotFoundError("/path/to/file", nil).(DomainError)
	if want := "file not found: /path/to/file"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestNewUnsupportedFormatError_Message(t *testing.T) {
	err := NewUnsupportedFormatError("xml").(DomainError)
	if want := "unsupported format: xml"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestOutputFormat_Constants(t *testing.T) {
	formats := map[OutputFormat]string{
		OutputFormatText: "text",
		OutputFormatJSON: "json",
		OutputFormatYAML: "yaml",
		OutputFormatCSV:  "csv",
	}
	for format, expected := range formats {
		if string(format) != expected {
			t.Errorf("OutputFormat %s should equal %q", format, expected)
		}
	}
}

func TestExportKind_IsTypeKind(t *testing.T) {
	typeKinds := []ExportKind{ExportKindType, ExportKindInterface, ExportKindEnum, ExportKindNamespace}
	for _, k := range typeKinds {
		if !k.IsTypeKind() {
			t.Errorf("%s.IsTypeKind() = false, want true", k)
		}
	}

	valueKinds := []ExportKind{ExportKindFunction, ExportKindClass, ExportKindVariable, ExportKindConst, ExportKindLet, ExportKindDefault}
	for _, k := range valueKinds {
		if k.IsTypeKind() {
			t.Errorf("%s.IsTypeKind() = true, want false", k)
		}
	}
}

func TestCounters_Total(t *testing.T) {
	c := Counters{
		Files:                1,
		Exports:              2,
		Types:                3,
		Dependencies:         4,
		UnlistedDependencies: 5,
		UnresolvedImports:    6,
		DuplicateExports:     7,
		EnumMembers:          8,
		ClassMembers:         9,
		Binaries:             10,
	}
	if got, want := c.Total(), 55; got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}

	if got := (Counters{}).Total(); got != 0 {
		t.Errorf("Total() of zero value = %d, want 0", got)
	}
}

func TestNewCheckResult(t *testing.T) {
	clean := NewCheckResult(AnalysisResult{}, "v0.1.0")
	if !clean.Passed || clean.ExitCode != ExitCodeClean {
		t.Errorf("clean result: Passed=%v ExitCode=%d, want true/%d", clean.Passed, clean.ExitCode, ExitCodeClean)
	}

	dirty := NewCheckResult(AnalysisResult{
		Issues:   Issues{UnusedFiles: []UnusedFile{{Path: "a.ts"}}},
		Counters: Counters{Files: 1},
	}, "v0.1.0")
	if dirty.Passed || dirty.ExitCode != ExitCodeFound {
		t.Errorf("dirty result: Passed=%v ExitCode=%d, want false/%d", dirty.Passed, dirty.ExitCode, ExitCodeFound)
	}
}

func TestCheckExitError(t *testing.T) {
	cause := errors.New("boom")
	err := NewCheckExitError(cause)
	if err.Code != ExitCodeFatal {
		t.Errorf("Code = %d, want %d", err.Code, ExitCodeFatal)
	}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) should be true via Unwrap")
	}
}
