package ports

import (
	"context"

	"go.trai.ch/matrix/internal/core/domain"
)

// ReportCollector locates and parses the test report produced by a task.
//
//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportCollector interface {
	// Collect looks for a report at the well-known path inside workspace,
	// tags it with the configuration name and returns its summary.
	//
	// A missing report is not an error: Collect returns (nil, nil) and the
	// aggregation phase treats the configuration as "no data".
	Collect(ctx context.Context, workspace, configName string) (*domain.TestReportSummary, error)
}

// ThresholdEvaluator turns a test report summary into a status using the
// originating configuration's thresholds. Absent thresholds impose no limit.
type ThresholdEvaluator interface {
	Evaluate(summary domain.TestReportSummary, thresholds domain.Thresholds) domain.Status
}
