package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/c8values/cmd/c8values/handlers"
)

// Schema returns the command for printing the wizard's steps and questions.
func Schema() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the wizard steps and question ids",
		Long: `Print the wizard steps, questions and visibility conditions as YAML.

With --answers only the steps and questions visible for those answers
are printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Schema(cmd.Context(), answersPath)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "f", "", "Answers file to resolve visibility against")

	return cmd
}
