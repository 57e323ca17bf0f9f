// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandRunner executes shell commands against a worker environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes the command with the given environment ("KEY=VALUE"
	// entries, later entries win) in the given working directory.
	//
	// It returns the command's exit code and captured stdout. A non-zero
	// exit code is reported through the return value, not through err;
	// err is reserved for failures to start or observe the process.
	Run(ctx context.Context, command string, env []string, dir string) (int, string, error)

	// Expand evaluates a value containing shell substitution markers
	// against the given environment and returns the expanded string.
	Expand(ctx context.Context, value string, env []string) (string, error)
}
