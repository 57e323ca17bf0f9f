package aggregate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports/mocks"
	"go.trai.ch/matrix/internal/engine/aggregate"
	"go.uber.org/mock/gomock"
)

type aggregatorTestMocks struct {
	evaluator *mocks.MockThresholdEvaluator
	notifier  *mocks.MockNotifier
	publisher *mocks.MockPublisher
	logger    *mocks.MockLogger
}

func setupAggregatorTest(t *testing.T, repo string) (*aggregate.Aggregator, aggregatorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := aggregatorTestMocks{
		evaluator: mocks.NewMockThresholdEvaluator(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := aggregate.New(m.evaluator, m.notifier, m.publisher, m.logger, repo, "work", "artifacts/envs")
	return a, m
}

func namedConfig(name string) *domain.BuildConfig {
	return &domain.BuildConfig{Name: name, NodeType: "linux", BuildCmds: []string{"make"}}
}

func TestAggregator_Aggregate_CleanRun(t *testing.T) {
	a, m := setupAggregatorTest(t, "astro/pipeline")
	configs := []*domain.BuildConfig{namedConfig("a"), namedConfig("b")}
	summaries := []domain.TestReportSummary{
		{ConfigName: "a", Tests: 10},
		{ConfigName: "b", Tests: 7},
	}

	m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK).Times(2)

	res := a.Aggregate(context.Background(), configs, summaries, domain.JobConfig{PostTestSummary: true}, false)

	assert.False(t, res.Problems)
	assert.Empty(t, res.Message)
	assert.Equal(t, domain.VerdictSuccess, res.Verdict)
	assert.Len(t, res.PerConfig, 2)
}

func TestAggregator_Aggregate_ProblemsProduceOneBlockPerFailingConfig(t *testing.T) {
	a, m := setupAggregatorTest(t, "astro/pipeline")
	configs := []*domain.BuildConfig{namedConfig("a"), namedConfig("b")}
	summaries := []domain.TestReportSummary{
		{ConfigName: "a", Tests: 10},
		{ConfigName: "b", Tests: 7, Failures: 2},
	}

	m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK).Times(2)

	var body string
	m.notifier.EXPECT().PostSummary(gomock.Any(), "astro/pipeline", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, subject, b string) error {
			assert.Equal(t, "test failures in 1 configuration(s)", subject)
			body = b
			return nil
		},
	).Times(1)

	res := a.Aggregate(context.Background(), configs, summaries, domain.JobConfig{PostTestSummary: true}, false)

	assert.True(t, res.Problems)
	assert.Equal(t, 1, strings.Count(body, "### "))
	assert.Contains(t, body, "### b")
	assert.NotContains(t, body, "### a")
}

func TestAggregator_Aggregate_NotificationGates(t *testing.T) {
	t.Run("disabled policy posts nothing", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "repo")
		summaries := []domain.TestReportSummary{{ConfigName: "a", Failures: 1}}
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)

		res := a.Aggregate(context.Background(), []*domain.BuildConfig{namedConfig("a")}, summaries,
			domain.JobConfig{PostTestSummary: false}, false)
		assert.True(t, res.Problems)
	})

	t.Run("notifier error never fails the run", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "repo")
		summaries := []domain.TestReportSummary{{ConfigName: "a", Failures: 1}}
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)
		m.notifier.EXPECT().PostSummary(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.logger.EXPECT().Error(assert.AnError)

		res := a.Aggregate(context.Background(), []*domain.BuildConfig{namedConfig("a")}, summaries,
			domain.JobConfig{PostTestSummary: true}, false)
		assert.Equal(t, domain.VerdictSuccess, res.Verdict)
	})
}

func TestAggregator_Aggregate_Verdict(t *testing.T) {
	policy := domain.JobConfig{}
	configs := []*domain.BuildConfig{namedConfig("a")}
	summaries := []domain.TestReportSummary{{ConfigName: "a", Tests: 3}}

	t.Run("build failure forces FAILURE", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "repo")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)

		res := a.Aggregate(context.Background(), configs, summaries, policy, true)
		assert.Equal(t, domain.VerdictFailure, res.Verdict)
	})

	t.Run("unstable threshold yields UNSTABLE", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "repo")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusUnstable)

		res := a.Aggregate(context.Background(), configs, summaries, policy, false)
		assert.Equal(t, domain.VerdictUnstable, res.Verdict)
	})

	t.Run("worst status wins across configs", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "repo")
		two := []domain.TestReportSummary{{ConfigName: "a"}, {ConfigName: "b"}}
		cfgs := []*domain.BuildConfig{namedConfig("a"), namedConfig("b")}
		gomock.InOrder(
			m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusFailure),
			m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK),
		)

		res := a.Aggregate(context.Background(), cfgs, two, policy, false)
		assert.Equal(t, domain.VerdictFailure, res.Verdict)
	})
}

func TestAggregator_Aggregate_PublicationGates(t *testing.T) {
	clean := []domain.TestReportSummary{{ConfigName: "a", Tests: 3}}
	configs := []*domain.BuildConfig{namedConfig("a")}

	t.Run("publication disabled", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)

		a.Aggregate(context.Background(), configs, clean, domain.JobConfig{}, false)
	})

	t.Run("success-only policy skips publication on problems", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		failing := []domain.TestReportSummary{{ConfigName: "a", Failures: 1}}
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)

		a.Aggregate(context.Background(), configs, failing, domain.JobConfig{
			EnableEnvPublication: true,
			PublishEnvOverride:   true,
			PublishOnSuccessOnly: true,
		}, false)
	})

	t.Run("matching filter publishes", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)
		m.publisher.EXPECT().
			Publish(gomock.Any(), "work/*/conda_packages_*.txt", "artifacts/envs").
			Return(nil)

		a.Aggregate(context.Background(), configs, clean, domain.JobConfig{
			EnableEnvPublication: true,
			PublishEnvFilter:     "pipeline",
		}, false)
	})

	t.Run("non-matching filter skips", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)

		a.Aggregate(context.Background(), configs, clean, domain.JobConfig{
			EnableEnvPublication: true,
			PublishEnvFilter:     "other-repo",
		}, false)
	})

	t.Run("no filter requires explicit override", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)

		a.Aggregate(context.Background(), configs, clean, domain.JobConfig{
			EnableEnvPublication: true,
		}, false)
	})

	t.Run("override without filter publishes", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		a.Aggregate(context.Background(), configs, clean, domain.JobConfig{
			EnableEnvPublication: true,
			PublishEnvOverride:   true,
		}, false)
	})

	t.Run("publisher error never fails the run", func(t *testing.T) {
		a, m := setupAggregatorTest(t, "astro/pipeline")
		m.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.StatusOK)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.logger.EXPECT().Error(assert.AnError)

		res := a.Aggregate(context.Background(), configs, clean, domain.JobConfig{
			EnableEnvPublication: true,
			PublishEnvOverride:   true,
		}, false)
		require.Equal(t, domain.VerdictSuccess, res.Verdict)
	})
}
