package domain

import "fmt"

// Status is the threshold-evaluated outcome of a single test report.
type Status int

const (
	// StatusOK indicates the report is within every configured threshold.
	StatusOK Status = iota
	// StatusUnstable indicates an unstable threshold was crossed.
	StatusUnstable
	// StatusFailure indicates a failure threshold was crossed.
	StatusFailure
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusUnstable:
		return "UNSTABLE"
	case StatusFailure:
		return "FAILURE"
	default:
		return "OK"
	}
}

// Verdict is the process-level outcome of a whole run.
type Verdict int

const (
	// VerdictSuccess indicates every scheduled task built and stayed within thresholds.
	VerdictSuccess Verdict = iota
	// VerdictUnstable indicates at least one report crossed an unstable threshold.
	VerdictUnstable
	// VerdictFailure indicates a build failure or a crossed failure threshold.
	VerdictFailure
)

// String returns the human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictUnstable:
		return "UNSTABLE"
	case VerdictFailure:
		return "FAILURE"
	default:
		return "SUCCESS"
	}
}

// ExitCode maps the verdict to the process exit status.
func (v Verdict) ExitCode() int {
	switch v {
	case VerdictFailure:
		return 1
	case VerdictUnstable:
		return 2
	default:
		return 0
	}
}

// TestReportSummary is the per-configuration aggregate parsed from a test report.
type TestReportSummary struct {
	ConfigName string
	Tests      int
	Errors     int
	Failures   int
	Skips      int
}

// HasProblems reports whether the summary contains erroring or failing tests.
func (s TestReportSummary) HasProblems() bool {
	return s.Errors > 0 || s.Failures > 0
}

// Markdown renders the summary as one block of the run message.
func (s TestReportSummary) Markdown() string {
	return fmt.Sprintf(
		"### %s\n- total tests: %d\n- errors: %d\n- failures: %d\n- skipped: %d\n",
		s.ConfigName, s.Tests, s.Errors, s.Failures, s.Skips,
	)
}

// RunResult accumulates the outcome of one run across all scheduled configurations.
// It is constructed fresh per run and never shared across runs.
type RunResult struct {
	Problems  bool
	Message   string
	PerConfig map[string]TestReportSummary
	Verdict   Verdict
}

// NewRunResult returns an empty result accumulator.
func NewRunResult() *RunResult {
	return &RunResult{PerConfig: make(map[string]TestReportSummary)}
}
