// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/imamik/c8values/internal/logging"
)

// Root returns the root command for the c8values CLI.
//
// The root command owns the --verbose flag and puts a logger into the
// command context before any subcommand runs.
func Root() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:           "c8values",
		Short:         "Generate Helm values for Camunda 8",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logging.New(os.Stderr, verbosity)
			cmd.SetContext(logging.IntoContext(cmd.Context(), log))
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Generate())
	cmd.AddCommand(Lint())
	cmd.AddCommand(Render())
	cmd.AddCommand(Schema())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
