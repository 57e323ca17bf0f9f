package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingName is returned when a build configuration has no name.
	ErrMissingName = zerr.New("build configuration has no name")

	// ErrMissingNodeType is returned when a build configuration has no node type.
	ErrMissingNodeType = zerr.New("build configuration has no node type")

	// ErrNoBuildCommands is returned when a build configuration declares no build commands.
	ErrNoBuildCommands = zerr.New("build configuration has no build commands")

	// ErrUnnamedEnvVar is returned when a declared environment variable has no name.
	ErrUnnamedEnvVar = zerr.New("environment variable has no name")

	// ErrEagerInterpolation is returned when a non-late environment variable value
	// contains an unresolved interpolation marker.
	ErrEagerInterpolation = zerr.New("eagerly interpolated value in environment variable")

	// ErrMultiplePolicies is returned when more than one job policy is supplied for a run.
	ErrMultiplePolicies = zerr.New("multiple job policy blocks supplied")

	// ErrNoConfigs is returned when a run request contains no build configurations.
	ErrNoConfigs = zerr.New("no build configurations supplied")

	// ErrBuildFailed is returned when a build-phase command exits non-zero.
	ErrBuildFailed = zerr.New("build command failed")

	// ErrRunFailed is the terminal error of a run whose verdict is FAILURE.
	ErrRunFailed = zerr.New("matrix run failed")
)
