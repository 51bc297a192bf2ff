package main

import (
	"path/filepath"
	"testing"

	"github.com/scantree/scantree/domain"
)

func TestCheckCmd_CleanProjectExitsZero(t *testing.T) {
	dir := t.TempDir()
	writeCmdFixture(t, filepath.Join(dir, "src/index.ts"), `
import { used } from "./lib";
console.log(used());
`)
	writeCmdFixture(t, filepath.Join(dir, "src/lib.ts"), "export function used() { return 1; }\n")

	cmd := checkCmd()
	cmd.SetArgs([]string{dir})

	var execErr error
	captureStdout(t, func() {
		execErr = cmd.Execute()
	})

	if execErr != nil {
		t.Fatalf("expected a clean project to exit without error, got %v", execErr)
	}
}

func TestCheckCmd_DirtyProjectReturnsCheckExitError(t *testing.T) {
	dir := t.TempDir()
	writeCmdFixture(t, filepath.Join(dir, "src/index.ts"), "export const used = 1;\n")
	writeCmdFixture(t, filepath.Join(dir, "src/orphan.ts"), "export const neverImported = 1;\n")

	cmd := checkCmd()
	cmd.SetArgs([]string{dir})

	var execErr error
	captureStdout(t, func() {
		execErr = cmd.Execute()
	})

	exitErr, ok := execErr.(*domain.CheckExitError)
	if !ok {
		t.Fatalf("expected a *domain.CheckExitError, got %T: %v", execErr, execErr)
	}
	if exitErr.Code != domain.ExitCodeFound {
		t.Errorf("exit code = %d, want domain.ExitCodeFound", exitErr.Code)
	}
}
