package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/matrix/internal/core/domain"
)

func (c *CLI) newCondenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "condense <specifier>",
		Short: "Condense a version-specifier string into a name-safe form",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(domain.CondenseSpecifiers(args[0]))
		},
	}
}
