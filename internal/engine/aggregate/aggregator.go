// Package aggregate merges per-configuration test reports into a run verdict.
package aggregate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports"
)

// Aggregator collects test-report summaries, evaluates thresholds and decides
// whether to notify and publish.
type Aggregator struct {
	evaluator ports.ThresholdEvaluator
	notifier  ports.Notifier
	publisher ports.Publisher
	logger    ports.Logger

	// repo identifies the repository under build, matched against the
	// publication filter.
	repo string
	// workRoot is where task workspaces (and their package snapshots) live.
	workRoot string
	// artifactDest is the destination repository for published snapshots.
	artifactDest string
}

// New creates a new Aggregator.
func New(
	evaluator ports.ThresholdEvaluator,
	notifier ports.Notifier,
	publisher ports.Publisher,
	logger ports.Logger,
	repo, workRoot, artifactDest string,
) *Aggregator {
	return &Aggregator{
		evaluator:    evaluator,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
		repo:         repo,
		workRoot:     workRoot,
		artifactDest: artifactDest,
	}
}

// Aggregate merges the summaries of the scheduled configurations into a
// single result, fires the summary notification at most once per run and
// gates package-list publication on the job policy.
//
// Only configurations that were actually scheduled participate; buildFailed
// reports whether any task's build phase failed, which forces the FAILURE
// verdict regardless of thresholds.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	scheduled []*domain.BuildConfig,
	summaries []domain.TestReportSummary,
	policy domain.JobConfig,
	buildFailed bool,
) *domain.RunResult {
	res := domain.NewRunResult()

	thresholds := make(map[string]domain.Thresholds, len(scheduled))
	for _, cfg := range scheduled {
		thresholds[cfg.Name] = cfg.Thresholds
	}

	worst := domain.StatusOK
	var blocks strings.Builder
	for _, summary := range summaries {
		res.PerConfig[summary.ConfigName] = summary

		if summary.HasProblems() {
			res.Problems = true
			blocks.WriteString(summary.Markdown())
			blocks.WriteString("\n")
		}

		if status := a.evaluator.Evaluate(summary, thresholds[summary.ConfigName]); status > worst {
			worst = status
		}
	}
	res.Message = blocks.String()

	switch {
	case buildFailed || worst == domain.StatusFailure:
		res.Verdict = domain.VerdictFailure
	case worst == domain.StatusUnstable:
		res.Verdict = domain.VerdictUnstable
	default:
		res.Verdict = domain.VerdictSuccess
	}

	a.notify(ctx, res, policy)
	a.publish(ctx, res, policy)

	return res
}

// notify posts the summary at most once per run, and only when the run has
// problems and the policy asks for it. Notification failures never fail the
// run: the verdict is already determined.
func (a *Aggregator) notify(ctx context.Context, res *domain.RunResult, policy domain.JobConfig) {
	if !res.Problems || !policy.PostTestSummary {
		return
	}

	subject := fmt.Sprintf("test failures in %d configuration(s)", strings.Count(res.Message, "### "))
	if err := a.notifier.PostSummary(ctx, a.repo, subject, res.Message); err != nil {
		a.logger.Error(err)
	}
}

// publish uploads the per-configuration package snapshots when the policy
// enables publication and either the run is clean or the policy allows
// publishing regardless of outcome. Publication failures never fail the run.
func (a *Aggregator) publish(ctx context.Context, res *domain.RunResult, policy domain.JobConfig) {
	if !policy.EnableEnvPublication {
		return
	}
	if res.Problems && policy.PublishOnSuccessOnly {
		a.logger.Info("skipping environment publication: run had problems")
		return
	}

	switch {
	case policy.PublishEnvFilter != "":
		if !strings.Contains(a.repo, policy.PublishEnvFilter) {
			a.logger.Info("skipping environment publication: repository does not match filter")
			return
		}
	case !policy.PublishEnvOverride:
		a.logger.Warn("skipping environment publication: no filter set and no explicit override")
		return
	}

	glob := filepath.Join(a.workRoot, "*", "conda_packages_*.txt")
	if err := a.publisher.Publish(ctx, glob, a.artifactDest); err != nil {
		a.logger.Error(err)
	}
}
