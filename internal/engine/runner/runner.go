// Package runner implements per-task execution of build and test phases.
package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/matrix/internal/engine/environ"
	"go.trai.ch/zerr"
)

// Runner executes one task against its worker workspace.
type Runner struct {
	shell       ports.CommandRunner
	scm         ports.SourceControl
	provisioner ports.EnvProvisioner
	collector   ports.ReportCollector
	logger      ports.Logger

	// workRoot is the directory under which task workspaces are created.
	workRoot string
}

// New creates a new Runner rooted at workRoot.
func New(
	shell ports.CommandRunner,
	scm ports.SourceControl,
	provisioner ports.EnvProvisioner,
	collector ports.ReportCollector,
	logger ports.Logger,
	workRoot string,
) *Runner {
	return &Runner{
		shell:       shell,
		scm:         scm,
		provisioner: provisioner,
		collector:   collector,
		logger:      logger,
		workRoot:    workRoot,
	}
}

// RunTask stages the source, provisions packages, resolves the environment and
// runs the configuration's build and test phases.
//
// Build failures are fatal to the task. Test commands run to completion with
// their exit status ignored: the outcome is read from the report file alone,
// because common test runners exit non-zero on any failing test. A missing
// report yields (nil, nil) and the aggregation phase treats the configuration
// as "no data".
func (r *Runner) RunTask(ctx context.Context, cfg *domain.BuildConfig, creds []domain.CredentialRef) (*domain.TestReportSummary, error) {
	workspace := filepath.Join(r.workRoot, cfg.NodeType+"-"+cfg.Name)
	if err := os.MkdirAll(workspace, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create task workspace")
	}

	if err := r.scm.Stage(ctx, workspace); err != nil {
		return nil, err
	}

	base := os.Environ()
	for _, cred := range creds {
		base = append(base, cred.EnvVarName()+"="+os.Getenv(cred.ID))
	}

	exe, prefix, err := r.provision(ctx, cfg, workspace)
	if err != nil {
		return nil, err
	}
	provisioned := prefix != ""
	if provisioned {
		base = prependPath(base, filepath.Join(prefix, "bin"))
		base = append(base,
			"CONDA_PREFIX="+prefix,
			"CONDA_DEFAULT_ENV="+filepath.Base(prefix),
		)
	}

	env, err := environ.NewResolver(workspace, r.shell).Resolve(ctx, base, cfg.Env)
	if err != nil {
		return nil, err
	}

	if err := r.buildPhase(ctx, cfg, env, workspace); err != nil {
		return nil, err
	}

	var summary *domain.TestReportSummary
	if len(cfg.TestCmds) > 0 {
		r.testPhase(ctx, cfg, env, workspace)

		summary, err = r.collector.Collect(ctx, workspace, cfg.Name)
		if err != nil {
			return nil, err
		}
	}

	if provisioned {
		outFile := filepath.Join(workspace, "conda_packages_"+cfg.Name+".txt")
		if err := r.provisioner.Snapshot(ctx, exe, prefix, outFile); err != nil {
			r.logger.Warn("failed to snapshot package list for " + cfg.Name + ": " + err.Error())
		}
	}

	return summary, nil
}

// provision creates the isolated package environment when the configuration
// requests packages. A missing package manager is a warning, not a failure:
// the task falls back to the worker's base environment.
func (r *Runner) provision(ctx context.Context, cfg *domain.BuildConfig, workspace string) (exe, prefix string, err error) {
	if len(cfg.Packages) == 0 {
		return "", "", nil
	}

	exe, found, err := r.provisioner.EnsureInstalled(ctx, workspace)
	if err != nil {
		return "", "", err
	}
	if !found {
		r.logger.Warn("skipping package provisioning for " + cfg.Name + ": no package manager available")
		return "", "", nil
	}

	spec := ports.EnvSpec{
		Name:             "env-" + domain.EnvID(cfg.Packages, cfg.Channels),
		Packages:         cfg.Packages,
		Channels:         cfg.Channels,
		OverrideChannels: cfg.OverrideChannels,
	}
	prefix, err = r.provisioner.CreateEnv(ctx, exe, spec)
	if err != nil {
		return "", "", err
	}
	return exe, prefix, nil
}

// buildPhase runs every build command in order. Any non-zero exit aborts the
// task immediately.
func (r *Runner) buildPhase(ctx context.Context, cfg *domain.BuildConfig, env []string, workspace string) error {
	for _, command := range cfg.BuildCmds {
		code, _, err := r.shell.Run(ctx, command, env, workspace)
		if err != nil {
			return err
		}
		if code != 0 {
			buildErr := zerr.With(domain.ErrBuildFailed, "config", cfg.Name)
			buildErr = zerr.With(buildErr, "command", command)
			return zerr.With(buildErr, "exit_code", code)
		}
	}
	return nil
}

// testPhase runs every test command in order, ignoring exit status.
func (r *Runner) testPhase(ctx context.Context, cfg *domain.BuildConfig, env []string, workspace string) {
	for _, command := range cfg.TestCmds {
		code, _, err := r.shell.Run(ctx, command, env, workspace)
		if err != nil {
			r.logger.Warn("test command did not run for " + cfg.Name + ": " + err.Error())
			continue
		}
		if code != 0 {
			r.logger.Warn("test command exited non-zero for " + cfg.Name + "; result read from report")
		}
	}
}

// prependPath prepends dir to the PATH entry of env, adding one if missing.
func prependPath(env []string, dir string) []string {
	for i, entry := range env {
		if strings.HasPrefix(entry, "PATH=") {
			env[i] = "PATH=" + dir + string(os.PathListSeparator) + strings.TrimPrefix(entry, "PATH=")
			return env
		}
	}
	return append(env, "PATH="+dir)
}
