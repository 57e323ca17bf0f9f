// Package app implements the application layer for matrix.
package app

import (
	"context"
	"strings"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/matrix/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// SkipDirective is the commit-message marker that asks CI to skip the run.
const SkipDirective = "[skip ci]"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	scm          ports.SourceControl
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	scm ports.SourceControl,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		scm:          scm,
		logger:       logger,
	}
}

// Run executes the matrix described by the configuration file and returns the
// run verdict. The error is reserved for configuration errors; task-level
// failures are folded into the verdict.
func (a *App) Run(ctx context.Context, configPath string, concurrent bool) (domain.Verdict, error) {
	req, err := a.configLoader.Load(configPath)
	if err != nil {
		return domain.VerdictFailure, zerr.Wrap(err, "failed to load configuration")
	}

	result, err := a.scheduler.Run(ctx, req, concurrent)
	if err != nil {
		return domain.VerdictFailure, zerr.Wrap(err, "matrix execution failed")
	}

	a.logger.Info("run finished: " + result.Verdict.String())
	return result.Verdict, nil
}

// ShouldSkip reports whether the latest commit message carries the skip
// directive. Callers are expected to halt the run themselves on true.
func (a *App) ShouldSkip(ctx context.Context) (bool, error) {
	message, err := a.scm.HeadMessage(ctx)
	if err != nil {
		return false, zerr.Wrap(err, "failed to inspect head commit")
	}
	return strings.Contains(message, SkipDirective), nil
}
