package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/c8values/cmd/c8values/handlers"
)

// Generate returns the command for rendering values from an answers file.
func Generate() *cobra.Command {
	var (
		answersPath string
		outputPath  string
		format      string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate values from an answers file",
		Long: `Generate a Camunda 8 Helm values file from an answers file without
prompting.

Answers files map question ids to answers. YAML files take lists for
multi-choice questions and {name, value} lists for environment
variables; .env files take comma-separated products.

Run "c8values schema" to list the question ids.`,
		Example: `  c8values generate -f answers.yaml
  c8values generate -f .env -o values.yaml
  c8values generate -f answers.yaml --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Generate(cmd.Context(), answersPath, outputPath, format, force)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "f", "", "Answers file (YAML or .env)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file path, - for stdout")
	cmd.Flags().StringVar(&format, "format", handlers.FormatYAML, "Output format: yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}
