// Package conda implements the package environment provisioner using the conda CLI.
package conda

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/zerr"
)

// candidateExecutables are the package-manager binaries probed on the worker,
// in preference order.
var candidateExecutables = []string{"conda", "mamba", "micromamba"}

// Provisioner implements ports.EnvProvisioner using a conda-compatible CLI.
type Provisioner struct {
	logger ports.Logger
}

// NewProvisioner creates a new conda Provisioner.
func NewProvisioner(logger ports.Logger) *Provisioner {
	return &Provisioner{logger: logger}
}

// EnsureInstalled locates a conda-compatible executable, either on PATH or
// under a previous task-local installation in dir. A missing executable is
// reported through the found flag, not as an error: provisioning is optional
// and callers degrade to the worker's base environment.
func (p *Provisioner) EnsureInstalled(_ context.Context, dir string) (string, bool, error) {
	for _, name := range candidateExecutables {
		if exe, err := exec.LookPath(name); err == nil {
			return exe, true, nil
		}
	}

	// Task-local install from a prior run.
	local := filepath.Join(dir, "miniconda3", "bin", "conda")
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return local, true, nil
	}

	p.logger.Warn("no conda executable found; package provisioning will be skipped")
	return "", false, nil
}

// CreateEnv creates an isolated environment under the workspace and returns
// its prefix directory. Channels are passed in priority order; the override
// flag disables the default channel set entirely.
func (p *Provisioner) CreateEnv(ctx context.Context, exe string, spec ports.EnvSpec) (string, error) {
	prefix := filepath.Join(os.TempDir(), "matrix-envs", spec.Name)

	args := []string{"create", "--yes", "--quiet", "--prefix", prefix}
	if spec.OverrideChannels {
		args = append(args, "--override-channels")
	}
	for _, channel := range spec.Channels {
		args = append(args, "--channel", channel)
	}
	args = append(args, spec.Packages...)

	//nolint:gosec // exe is a located executable, args come from a validated configuration
	cmd := exec.CommandContext(ctx, exe, args...)
	if _, err := cmd.Output(); err != nil {
		createErr := zerr.Wrap(err, "failed to create conda environment")
		createErr = zerr.With(createErr, "prefix", prefix)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			createErr = zerr.With(createErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", createErr
	}

	return prefix, nil
}

// Snapshot writes the resolved package list of the environment at prefix to
// outFile so it can be published after the run.
func (p *Provisioner) Snapshot(ctx context.Context, exe, prefix, outFile string) error {
	//nolint:gosec // exe and prefix are produced by this adapter
	cmd := exec.CommandContext(ctx, exe, "list", "--prefix", prefix)

	out, err := cmd.Output()
	if err != nil {
		listErr := zerr.Wrap(err, "failed to list conda environment")
		return zerr.With(listErr, "prefix", prefix)
	}

	if err := os.WriteFile(outFile, out, 0o644); err != nil { //nolint:gosec // report file, not a secret
		return zerr.Wrap(err, "failed to write package snapshot")
	}

	return nil
}
