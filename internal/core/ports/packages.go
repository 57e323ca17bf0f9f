package ports

import "context"

// EnvSpec describes one isolated package environment to provision.
type EnvSpec struct {
	// Name is the environment identifier, unique per package/channel set.
	Name string
	// Packages are the version-specified packages to install.
	Packages []string
	// Channels is the channel priority list, highest first.
	Channels []string
	// OverrideChannels disables the default channels entirely.
	OverrideChannels bool
}

// EnvProvisioner prepares isolated package environments for task execution.
//
// A missing package manager on the worker is not an error: EnsureInstalled
// reports it through the found flag, and callers skip provisioning with a
// warning.
//
//go:generate go run go.uber.org/mock/mockgen -source=packages.go -destination=mocks/mock_packages.go -package=mocks
type EnvProvisioner interface {
	// EnsureInstalled locates the package-manager executable, installing it
	// into dir if possible. It returns the executable path and whether an
	// executable is available at all.
	EnsureInstalled(ctx context.Context, dir string) (exe string, found bool, err error)

	// CreateEnv creates an isolated environment per the spec and returns its
	// prefix directory.
	CreateEnv(ctx context.Context, exe string, spec EnvSpec) (prefix string, err error)

	// Snapshot writes the resolved package list of the environment at prefix
	// to outFile for later publication.
	Snapshot(ctx context.Context, exe, prefix, outFile string) error
}
