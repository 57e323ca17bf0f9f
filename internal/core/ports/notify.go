package ports

import "context"

// Notifier posts the aggregated run summary to an external surface.
// Failures are best-effort side effects and must never fail the run.
//
//go:generate go run go.uber.org/mock/mockgen -source=notify.go -destination=mocks/mock_notify.go -package=mocks
type Notifier interface {
	PostSummary(ctx context.Context, repo, subject, body string) error
}

// Publisher uploads artifacts matching a glob pattern to a destination
// repository. Like notification, publication is best-effort.
type Publisher interface {
	Publish(ctx context.Context, glob, destination string) error
}
