// Package notify implements the summary notifier and artifact publisher.
//
// Both adapters are local stand-ins for external surfaces (issue tracker,
// artifact repository): the notifier drops the rendered summary next to the
// run, the publisher copies matched artifacts into a destination directory.
// The transport behind either is intentionally out of scope.
package notify

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/zerr"
)

// SummaryWriter implements ports.Notifier by writing the summary to a file.
type SummaryWriter struct {
	logger ports.Logger
	dir    string
}

// NewSummaryWriter creates a notifier writing summaries into dir.
func NewSummaryWriter(logger ports.Logger, dir string) *SummaryWriter {
	return &SummaryWriter{logger: logger, dir: dir}
}

// PostSummary renders the run summary to <dir>/summary.md.
func (n *SummaryWriter) PostSummary(_ context.Context, repo, subject, body string) error {
	if err := os.MkdirAll(n.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create summary directory")
	}

	content := "# " + subject + "\n\nrepository: " + repo + "\n\n" + body
	path := filepath.Join(n.dir, "summary.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // report, not a secret
		return zerr.Wrap(err, "failed to write summary")
	}

	n.logger.Info("posted run summary to " + path)
	return nil
}

// FilePublisher implements ports.Publisher by copying matched files.
type FilePublisher struct {
	logger ports.Logger
}

// NewFilePublisher creates a new FilePublisher.
func NewFilePublisher(logger ports.Logger) *FilePublisher {
	return &FilePublisher{logger: logger}
}

// Publish copies every file matching glob into the destination directory.
func (p *FilePublisher) Publish(_ context.Context, glob, destination string) error {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "bad artifact pattern"), "pattern", glob)
	}
	if len(matches) == 0 {
		p.logger.Warn("no artifacts matched pattern " + glob)
		return nil
	}

	if err := os.MkdirAll(destination, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}

	for _, match := range matches {
		data, err := os.ReadFile(match) //nolint:gosec // matched by caller-provided pattern
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read artifact"), "artifact", match)
		}
		dest := filepath.Join(destination, filepath.Base(match))
		if err := os.WriteFile(dest, data, 0o644); err != nil { //nolint:gosec // published artifact
			return zerr.With(zerr.Wrap(err, "failed to publish artifact"), "artifact", match)
		}
		p.logger.Info("published " + match + " to " + dest)
	}

	return nil
}
