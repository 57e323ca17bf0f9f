package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for recording task progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start creates a new span for a unit of work.
	Start(ctx context.Context, name string) (context.Context, Span)
	// EmitPlan signals that a set of tasks is planned for execution.
	EmitPlan(ctx context.Context, taskKeys []string)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one recorded unit of work. Command output may be streamed
// into it via the io.Writer.
type Span interface {
	io.Writer
	// End completes the span successfully.
	End()
	// RecordError completes the span with an error.
	RecordError(err error)
}
