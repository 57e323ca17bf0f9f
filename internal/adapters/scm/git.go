// Package scm provides source-control access via the git CLI.
package scm

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// Git implements ports.SourceControl against a local git checkout.
type Git struct {
	repoDir string
}

// NewGit creates a Git adapter rooted at repoDir.
func NewGit(repoDir string) *Git {
	return &Git{repoDir: repoDir}
}

// HeadMessage returns the full message of the latest commit.
func (g *Git) HeadMessage(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", g.repoDir, "log", "-1", "--pretty=%B")

	out, err := cmd.Output()
	if err != nil {
		headErr := zerr.Wrap(err, "failed to read head commit message")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			headErr = zerr.With(headErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", headErr
	}

	return strings.TrimSpace(string(out)), nil
}

// Stage copies the committed source tree into the given workspace.
func (g *Git) Stage(ctx context.Context, workspace string) error {
	// git archive | tar keeps the staging free of repository metadata.
	pipeline := "git -C " + shellQuote(g.repoDir) + " archive HEAD | tar -xf - -C " + shellQuote(workspace)

	cmd := exec.CommandContext(ctx, "sh", "-c", pipeline) //nolint:gosec // paths are quoted
	out, err := cmd.CombinedOutput()
	if err != nil {
		stageErr := zerr.Wrap(err, "failed to stage source tree")
		stageErr = zerr.With(stageErr, "workspace", workspace)
		return zerr.With(stageErr, "output", strings.TrimSpace(string(out)))
	}

	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
