package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSkipCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip-check",
		Short: "Exit 1 when the latest commit asks CI to skip the run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skip, err := c.app.ShouldSkip(cmd.Context())
			if err != nil {
				return err
			}

			if skip {
				cmd.Println("skip directive found; skipping run")
				c.exitCode = 1
			}
			return nil
		},
	}
}
