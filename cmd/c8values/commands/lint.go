package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/c8values/cmd/c8values/handlers"
)

// Lint returns the command for checking a values file for empty leaves.
func Lint() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <values.yaml>",
		Short: "Check a values file for empty settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Lint(cmd.Context(), args[0])
		},
	}
}
