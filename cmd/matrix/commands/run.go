package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the build matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serial, err := cmd.Flags().GetBool("serial")
			if err != nil {
				return err
			}

			verdict, err := c.app.Run(cmd.Context(), c.configPath(cmd), !serial)
			if err != nil {
				return err
			}

			c.exitCode = verdict.ExitCode()
			return nil
		},
	}

	cmd.Flags().Bool("serial", false, "Run configurations one at a time, aborting on first failure")
	return cmd
}
