// Package shell provides the shell command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec and /bin/sh.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command through "sh -c" with the given environment and
// working directory. Stdout is captured for the caller and streamed to the
// logger together with stderr.
//
// A non-zero exit code is returned through the first result, not as an error;
// the error result is reserved for failures to start or observe the process.
func (r *Runner) Run(ctx context.Context, command string, env []string, dir string) (int, string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Env = env

	var stdout bytes.Buffer
	cmd.Stdout = io.MultiWriter(&stdout, &logWriter{logger: r.logger, level: "info"})
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), stdout.String(), nil
		}
		return -1, stdout.String(), zerr.With(zerr.Wrap(err, "failed to run command"), "command", command)
	}

	return 0, stdout.String(), nil
}

// Expand evaluates shell substitution markers in value against env by letting
// the shell print the double-quoted value. This is the only point where
// environment resolution shells out.
func (r *Runner) Expand(ctx context.Context, value string, env []string) (string, error) {
	//nolint:gosec // value comes from a validated configuration
	cmd := exec.CommandContext(ctx, "sh", "-c", `printf '%s' "`+value+`"`)
	cmd.Env = env

	out, err := cmd.Output()
	if err != nil {
		expErr := zerr.Wrap(err, "failed to expand value")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			expErr = zerr.With(expErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", zerr.With(expErr, "value", value)
	}

	return string(out), nil
}

// logWriter forwards process output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
