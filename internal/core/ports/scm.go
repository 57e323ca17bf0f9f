package ports

import "context"

// SourceControl provides access to the source tree under build.
//
//go:generate go run go.uber.org/mock/mockgen -source=scm.go -destination=mocks/mock_scm.go -package=mocks
type SourceControl interface {
	// HeadMessage returns the message of the latest commit.
	HeadMessage(ctx context.Context) (string, error)

	// Stage makes the source tree available inside the given workspace.
	Stage(ctx context.Context, workspace string) error
}
