// Package environ implements ordered environment variable resolution for tasks.
package environ

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver turns a configuration's declared variable list into a fully
// expanded, ordered environment.
//
// Entries are resolved strictly in list order. Each entry is evaluated
// against the base environment plus every already-resolved entry preceding
// it, so variables may reference earlier ones in the same list but never
// later ones.
type Resolver struct {
	workspace string
	shell     ports.CommandRunner
}

// NewResolver creates a Resolver rooted at the given workspace directory.
// The shell runner is the only external collaborator and is invoked solely
// for late-expanded values.
func NewResolver(workspace string, shell ports.CommandRunner) *Resolver {
	return &Resolver{workspace: workspace, shell: shell}
}

// Resolve expands the declared variables on top of the base environment and
// returns the combined "KEY=VALUE" list. A synthesized HOME entry pointing at
// the workspace root is always appended last, overriding any earlier HOME.
func (r *Resolver) Resolve(ctx context.Context, base []string, vars []domain.EnvVar) ([]string, error) {
	env := slices.Clone(base)

	for _, v := range vars {
		value := v.Value

		if v.LateExpand && strings.Contains(value, "$") {
			expanded, err := r.shell.Expand(ctx, value, env)
			if err != nil {
				err = zerr.Wrap(err, "failed to expand environment variable")
				return nil, zerr.With(err, "variable", v.Name)
			}
			value = expanded
		}

		env = append(env, v.Name+"="+r.normalizePath(value))
	}

	env = append(env, "HOME="+r.workspace)
	return env, nil
}

// normalizePath rewrites relative path notation in a resolved value so that
// commands always see workspace-rooted paths regardless of their own working
// directory.
func (r *Resolver) normalizePath(value string) string {
	switch {
	case value == "." || value == "./":
		return r.workspace
	case strings.HasPrefix(value, "./"):
		value = r.workspace + "/" + value[2:]
	}

	// PATH-style entries: a lone dot between separators means the workspace.
	if strings.Contains(value, ":.") {
		parts := strings.Split(value, ":")
		for i, p := range parts {
			if p == "." {
				parts[i] = r.workspace
			}
		}
		value = strings.Join(parts, ":")
	}

	// Collapse parent references against the current working directory.
	if strings.Contains(value, "..") {
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
	}

	return value
}
