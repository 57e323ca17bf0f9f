package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/matrix/cmd/matrix/commands"
	"go.trai.ch/matrix/internal/build"
	"go.trai.ch/matrix/internal/core/domain"
)

type mockApp struct {
	runFunc  func(ctx context.Context, configPath string, concurrent bool) (domain.Verdict, error)
	skipFunc func(ctx context.Context) (bool, error)
}

func (m *mockApp) Run(ctx context.Context, configPath string, concurrent bool) (domain.Verdict, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, configPath, concurrent)
	}
	return domain.VerdictSuccess, nil
}

func (m *mockApp) ShouldSkip(ctx context.Context) (bool, error) {
	if m.skipFunc != nil {
		return m.skipFunc(ctx)
	}
	return false, nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedPath string
		var capturedConcurrent bool

		mock := &mockApp{
			runFunc: func(_ context.Context, configPath string, concurrent bool) (domain.Verdict, error) {
				capturedPath = configPath
				capturedConcurrent = concurrent
				return domain.VerdictSuccess, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--config", "custom.yaml", "--serial"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "custom.yaml", capturedPath)
		assert.False(t, capturedConcurrent)
		assert.Equal(t, 0, cli.ExitCode())
	})

	t.Run("defaults to concurrent execution and matrix.yaml", func(t *testing.T) {
		var capturedPath string
		var capturedConcurrent bool

		mock := &mockApp{
			runFunc: func(_ context.Context, configPath string, concurrent bool) (domain.Verdict, error) {
				capturedPath = configPath
				capturedConcurrent = concurrent
				return domain.VerdictSuccess, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "matrix.yaml", capturedPath)
		assert.True(t, capturedConcurrent)
	})

	t.Run("verdict maps to exit code", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ bool) (domain.Verdict, error) {
				return domain.VerdictUnstable, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 2, cli.ExitCode())
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ bool) (domain.Verdict, error) {
				return domain.VerdictFailure, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_SkipCheck(t *testing.T) {
	t.Run("skip directive sets exit code", func(t *testing.T) {
		mock := &mockApp{
			skipFunc: func(_ context.Context) (bool, error) { return true, nil },
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"skip-check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 1, cli.ExitCode())
		assert.Contains(t, buf.String(), "skip directive found")
	})

	t.Run("no directive exits zero", func(t *testing.T) {
		mock := &mockApp{
			skipFunc: func(_ context.Context) (bool, error) { return false, nil },
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"skip-check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 0, cli.ExitCode())
	})
}

func TestCommands_Condense(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"condense", "py3.7_np>=1.15.0"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "py37_npGE1150")
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
