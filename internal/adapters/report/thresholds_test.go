package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/matrix/internal/adapters/report"
	"go.trai.ch/matrix/internal/core/domain"
)

func intp(v int) *int { return &v }

func TestEvaluator_Evaluate(t *testing.T) {
	e := report.NewEvaluator()

	tests := []struct {
		name       string
		summary    domain.TestReportSummary
		thresholds domain.Thresholds
		want       domain.Status
	}{
		{
			name:    "no thresholds means OK whatever the counts",
			summary: domain.TestReportSummary{Errors: 50, Failures: 50, Skips: 50},
			want:    domain.StatusOK,
		},
		{
			name:       "count at the limit stays OK",
			summary:    domain.TestReportSummary{Failures: 3},
			thresholds: domain.Thresholds{FailedUnstable: intp(3)},
			want:       domain.StatusOK,
		},
		{
			name:       "count above unstable limit",
			summary:    domain.TestReportSummary{Failures: 4},
			thresholds: domain.Thresholds{FailedUnstable: intp(3)},
			want:       domain.StatusUnstable,
		},
		{
			name:       "errors and failures count together",
			summary:    domain.TestReportSummary{Errors: 2, Failures: 2},
			thresholds: domain.Thresholds{FailedUnstable: intp(3)},
			want:       domain.StatusUnstable,
		},
		{
			name:       "failure limit wins over unstable limit",
			summary:    domain.TestReportSummary{Failures: 10},
			thresholds: domain.Thresholds{FailedUnstable: intp(0), FailedFailure: intp(5)},
			want:       domain.StatusFailure,
		},
		{
			name:       "skipped unstable limit",
			summary:    domain.TestReportSummary{Skips: 2},
			thresholds: domain.Thresholds{SkippedUnstable: intp(1)},
			want:       domain.StatusUnstable,
		},
		{
			name:       "skipped failure limit",
			summary:    domain.TestReportSummary{Skips: 9},
			thresholds: domain.Thresholds{SkippedUnstable: intp(1), SkippedFailure: intp(5)},
			want:       domain.StatusFailure,
		},
		{
			name:       "zero limit crossed by a single failure",
			summary:    domain.TestReportSummary{Failures: 1},
			thresholds: domain.Thresholds{FailedUnstable: intp(0)},
			want:       domain.StatusUnstable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.summary, tt.thresholds))
		})
	}
}
