package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/matrix/internal/core/domain"
)

func validConfig() *domain.BuildConfig {
	return &domain.BuildConfig{
		Name:      "py37",
		NodeType:  "linux",
		BuildCmds: []string{"make build"},
	}
}

func TestBuildConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Name = ""
		require.ErrorIs(t, cfg.Validate(), domain.ErrMissingName)
	})

	t.Run("missing node type", func(t *testing.T) {
		cfg := validConfig()
		cfg.NodeType = ""
		require.ErrorIs(t, cfg.Validate(), domain.ErrMissingNodeType)
	})

	t.Run("no build commands", func(t *testing.T) {
		cfg := validConfig()
		cfg.BuildCmds = nil
		require.ErrorIs(t, cfg.Validate(), domain.ErrNoBuildCommands)
	})

	t.Run("unnamed env var", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = []domain.EnvVar{{Name: "", Value: "x"}}
		require.ErrorIs(t, cfg.Validate(), domain.ErrUnnamedEnvVar)
	})

	t.Run("interpolation marker without late expansion", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = []domain.EnvVar{{Name: "PREFIX", Value: "${HOME}/opt"}}
		require.ErrorIs(t, cfg.Validate(), domain.ErrEagerInterpolation)
	})

	t.Run("interpolation marker with late expansion passes", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = []domain.EnvVar{{Name: "PREFIX", Value: "${HOME}/opt", LateExpand: true}}
		require.NoError(t, cfg.Validate())
	})

	t.Run("plain dollar without braces passes", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = []domain.EnvVar{{Name: "COST", Value: "5$"}}
		require.NoError(t, cfg.Validate())
	})
}

func TestBuildConfig_EligibleOn(t *testing.T) {
	t.Run("empty day list means every day", func(t *testing.T) {
		cfg := validConfig()
		for day := time.Sunday; day <= time.Saturday; day++ {
			assert.True(t, cfg.EligibleOn(day), day.String())
		}
	})

	t.Run("restricted list matches only listed days", func(t *testing.T) {
		cfg := validConfig()
		cfg.RunOnDays = []time.Weekday{time.Wednesday}
		for day := time.Sunday; day <= time.Saturday; day++ {
			assert.Equal(t, day == time.Wednesday, cfg.EligibleOn(day), day.String())
		}
	})
}

func TestBuildConfig_Clone(t *testing.T) {
	limit := 3
	cfg := validConfig()
	cfg.Env = []domain.EnvVar{{Name: "A", Value: "1"}}
	cfg.TestCmds = []string{"make test"}
	cfg.Packages = []string{"numpy>=1.15"}
	cfg.Thresholds = domain.Thresholds{FailedFailure: &limit}

	clone := cfg.Clone()
	clone.Env[0].Value = "changed"
	clone.BuildCmds[0] = "changed"
	*clone.Thresholds.FailedFailure = 99

	assert.Equal(t, "1", cfg.Env[0].Value)
	assert.Equal(t, "make build", cfg.BuildCmds[0])
	assert.Equal(t, 3, *cfg.Thresholds.FailedFailure)
}

func TestBuildConfig_TaskKey(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "linux/py37", cfg.TaskKey())
}

func TestCredentialRef_EnvVarName(t *testing.T) {
	assert.Equal(t, "GH_TOKEN", domain.BareCredential("GH_TOKEN").EnvVarName())
	assert.Equal(t, "TOKEN", domain.NamedCredential("github-token", "TOKEN").EnvVarName())
}

func TestRunRequest_Validate(t *testing.T) {
	t.Run("no configs", func(t *testing.T) {
		req := &domain.RunRequest{}
		require.ErrorIs(t, req.Validate(), domain.ErrNoConfigs)
	})

	t.Run("invalid config surfaces", func(t *testing.T) {
		bad := validConfig()
		bad.BuildCmds = nil
		req := &domain.RunRequest{Configs: []*domain.BuildConfig{validConfig(), bad}}
		require.ErrorIs(t, req.Validate(), domain.ErrNoBuildCommands)
	})

	t.Run("default policy applied when absent", func(t *testing.T) {
		req := &domain.RunRequest{Configs: []*domain.BuildConfig{validConfig()}}
		require.NoError(t, req.Validate())
		require.NotNil(t, req.Policy)
		assert.True(t, req.Policy.PublishOnSuccessOnly)
		assert.False(t, req.Policy.PostTestSummary)
	})

	t.Run("supplied policy untouched", func(t *testing.T) {
		policy := &domain.JobConfig{PostTestSummary: true}
		req := &domain.RunRequest{Policy: policy, Configs: []*domain.BuildConfig{validConfig()}}
		require.NoError(t, req.Validate())
		assert.Same(t, policy, req.Policy)
	})
}
