package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/c8values/cmd/c8values/handlers"
)

// Init returns the command for interactively creating a values file.
//
// Flags:
//
//	--output, -o: Path to output file (default "values.yaml")
//	--answers, -f: Answers file used as starting values
//	--accessible: Use line-based prompts instead of the full-screen forms
//	--no-preview: Write without showing the preview first
func Init() *cobra.Command {
	var opts handlers.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a Camunda 8 values file",
		Long: `Interactively create a Camunda 8 Helm values file.

The wizard starts by asking which components you deploy and only shows
the steps those components need:

  - Search database (Elasticsearch or OpenSearch) for Operate,
    Tasklist and Optimize, optionally shared by Operate and Tasklist
  - Web Modeler database connection
  - Extra environment variables per component

Use Back to revise an earlier step. Changing the component selection
returns to the first step; answers to steps that disappear are kept
in case they come back.

Use --answers to start from an answers file (YAML or .env).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "values.yaml", "Output file path")
	cmd.Flags().StringVarP(&opts.AnswersPath, "answers", "f", "", "Answers file to start from")
	cmd.Flags().BoolVar(&opts.Accessible, "accessible", false, "Use line-based accessible prompts")
	cmd.Flags().BoolVar(&opts.NoPreview, "no-preview", false, "Skip the preview before writing")

	return cmd
}
