// Package domain contains the core domain models for the build matrix.
package domain

import (
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// EnvVar is one declared environment variable of a build configuration.
//
// Value is adopted literally unless LateExpand is set, in which case any
// substitution markers it contains are evaluated by the shell at resolution
// time against the accumulating environment.
type EnvVar struct {
	Name       string
	Value      string
	LateExpand bool
}

// Thresholds holds the optional pass/fail limits applied to a test report.
// A nil field imposes no limit.
type Thresholds struct {
	FailedUnstable  *int
	FailedFailure   *int
	SkippedUnstable *int
	SkippedFailure  *int
}

func cloneThreshold(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns an independent copy of the thresholds.
func (t Thresholds) Clone() Thresholds {
	return Thresholds{
		FailedUnstable:  cloneThreshold(t.FailedUnstable),
		FailedFailure:   cloneThreshold(t.FailedFailure),
		SkippedUnstable: cloneThreshold(t.SkippedUnstable),
		SkippedFailure:  cloneThreshold(t.SkippedFailure),
	}
}

// BuildConfig describes one schedulable build+test unit of the matrix.
type BuildConfig struct {
	Name     string
	NodeType string

	// RunOnDays restricts scheduling to the listed weekdays.
	// Empty means the configuration is eligible every day.
	RunOnDays []time.Weekday

	Env       []EnvVar
	BuildCmds []string
	TestCmds  []string

	// Conda provisioning. Packages empty means no isolated environment is
	// created for this configuration.
	Packages         []string
	Channels         []string
	OverrideChannels bool

	Thresholds Thresholds
}

// Validate checks the structural invariants of the configuration.
// It must be called before scheduling so that configuration errors fail the
// whole run without partial execution.
func (c *BuildConfig) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if c.NodeType == "" {
		return zerr.With(ErrMissingNodeType, "config", c.Name)
	}
	if len(c.BuildCmds) == 0 {
		return zerr.With(ErrNoBuildCommands, "config", c.Name)
	}
	for _, v := range c.Env {
		if v.Name == "" {
			return zerr.With(ErrUnnamedEnvVar, "config", c.Name)
		}
		// A non-late value carrying an interpolation marker means the author
		// expected substitution that will never happen. Reject it up front
		// rather than letting a half-expanded string reach the shell.
		if !v.LateExpand && strings.Contains(v.Value, "${") {
			err := zerr.With(ErrEagerInterpolation, "config", c.Name)
			err = zerr.With(err, "variable", v.Name)
			return zerr.With(err, "hint", "use late_expand: true or a literal value")
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration. Task execution mutates the
// per-task environment list, so every task must operate on its own copy.
func (c *BuildConfig) Clone() *BuildConfig {
	cp := *c
	cp.RunOnDays = slices.Clone(c.RunOnDays)
	cp.Env = slices.Clone(c.Env)
	cp.BuildCmds = slices.Clone(c.BuildCmds)
	cp.TestCmds = slices.Clone(c.TestCmds)
	cp.Packages = slices.Clone(c.Packages)
	cp.Channels = slices.Clone(c.Channels)
	cp.Thresholds = c.Thresholds.Clone()
	return &cp
}

// TaskKey identifies the worker task built from this configuration.
// Keys are not required to be unique across a run.
func (c *BuildConfig) TaskKey() string {
	return c.NodeType + "/" + c.Name
}

// EligibleOn reports whether the configuration may be scheduled on the given
// weekday.
func (c *BuildConfig) EligibleOn(day time.Weekday) bool {
	if len(c.RunOnDays) == 0 {
		return true
	}
	return slices.Contains(c.RunOnDays, day)
}

// CredentialRef references a credential to expose to build commands.
// A bare reference uses the credential ID as the environment variable name;
// a named reference carries its own variable name.
type CredentialRef struct {
	ID      string
	EnvName string
}

// BareCredential builds a reference whose env var name equals the ID.
func BareCredential(id string) CredentialRef {
	return CredentialRef{ID: id}
}

// NamedCredential builds a reference with an explicit env var name.
func NamedCredential(id, envName string) CredentialRef {
	return CredentialRef{ID: id, EnvName: envName}
}

// EnvVarName returns the environment variable name the credential binds to.
func (r CredentialRef) EnvVarName() string {
	if r.EnvName != "" {
		return r.EnvName
	}
	return r.ID
}

// JobConfig holds run-wide policy applied across all configurations.
type JobConfig struct {
	PostTestSummary      bool
	EnableEnvPublication bool
	// PublishEnvFilter restricts environment publication to repositories
	// matching the pattern. An empty filter publishes anywhere but only when
	// PublishEnvOverride is set explicitly.
	PublishEnvFilter     string
	PublishEnvOverride   bool
	PublishOnSuccessOnly bool
	Credentials          []CredentialRef
}

// DefaultJobConfig returns the policy applied when no job block is supplied.
func DefaultJobConfig() *JobConfig {
	return &JobConfig{PublishOnSuccessOnly: true}
}

// RunRequest is the input of one orchestration run: an optional job-wide
// policy plus the ordered list of build configurations.
type RunRequest struct {
	Policy  *JobConfig
	Configs []*BuildConfig
}

// Validate validates every configuration and applies the default policy when
// none was supplied.
func (r *RunRequest) Validate() error {
	if len(r.Configs) == 0 {
		return ErrNoConfigs
	}
	for _, c := range r.Configs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if r.Policy == nil {
		r.Policy = DefaultJobConfig()
	}
	return nil
}
