package report

import "go.trai.ch/matrix/internal/core/domain"

// Evaluator implements ports.ThresholdEvaluator.
//
// Failure thresholds are checked before unstable ones so a report crossing
// both yields FAILURE. A nil threshold imposes no limit.
type Evaluator struct{}

// NewEvaluator creates a new threshold Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the status of a summary under the given thresholds.
func (Evaluator) Evaluate(summary domain.TestReportSummary, thresholds domain.Thresholds) domain.Status {
	failed := summary.Errors + summary.Failures

	switch {
	case exceeds(thresholds.FailedFailure, failed), exceeds(thresholds.SkippedFailure, summary.Skips):
		return domain.StatusFailure
	case exceeds(thresholds.FailedUnstable, failed), exceeds(thresholds.SkippedUnstable, summary.Skips):
		return domain.StatusUnstable
	default:
		return domain.StatusOK
	}
}

func exceeds(limit *int, count int) bool {
	return limit != nil && count > *limit
}
