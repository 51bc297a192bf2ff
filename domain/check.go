package domain

// Exit codes for the CLI's check-mode contract: 0 when the project is clean,
// 1 when diagnostics were found but the run itself completed, 2 when the run
// could not complete (bad config, unreadable paths, fatal analysis error).
const (
	ExitCodeClean = 0
	ExitCodeFound = 1
	ExitCodeFatal = 2
)

// CheckResult wraps an AnalysisResult with the pass/fail verdict and exit
// code the CLI's `check` command reports to the shell.
type CheckResult struct {
	Passed      bool           `json:"passed"`
	ExitCode    int            `json:"exit_code"`
	Result      AnalysisResult `json:"result"`
	GeneratedAt string         `json:"generated_at"`
	Version     string         `json:"version"`
}

// NewCheckResult derives pass/fail and exit code from an AnalysisResult's
// counters: any diagnostic at all fails the check.
func NewCheckResult(result AnalysisResult, version string) CheckResult {
	total := result.Counters.Total()
	return CheckResult{
		Passed:      total == 0,
		ExitCode:    exitCodeFor(total),
		Result:      result,
		GeneratedAt: result.GeneratedAt,
		Version:     version,
	}
}

func exitCodeFor(totalIssues int) int {
	if totalIssues == 0 {
		return ExitCodeClean
	}
	return ExitCodeFound
}

// CheckExitError carries a terminal exit code out of the app/service layers
// to the CLI's main, distinguishing "ran fine, found issues" (1) from "could
// not run" (2) without the caller inspecting error strings.
type CheckExitError struct {
	Code int
	Err  error
}

func (e *CheckExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "check failed"
}

func (e *CheckExitError) Unwrap() error {
	return e.Err
}

// NewCheckExitError wraps err as a fatal (exit code 2) check failure.
func NewCheckExitError(err error) *CheckExitError {
	return &CheckExitError{Code: ExitCodeFatal, Err: err}
}
