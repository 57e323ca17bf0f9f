// Package commands implements the CLI commands for the matrix orchestrator.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/matrix/internal/build"
	"go.trai.ch/matrix/internal/core/domain"
)

// CLI represents the command line interface for matrix.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	// exitCode carries non-error process statuses (UNSTABLE runs, skip
	// checks) from commands back to main.
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, configPath string, concurrent bool) (domain.Verdict, error)
	ShouldSkip(ctx context.Context) (bool, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "matrix",
		Short:         "A build-matrix orchestrator for CI jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "matrix.yaml", "Path to configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newSkipCheckCmd())
	rootCmd.AddCommand(c.newCondenseCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the process exit status chosen by the executed command.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
