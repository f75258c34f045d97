package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/c8values/cmd/c8values/handlers"
)

// Render returns the command for templating the chart with a values file.
//
// Flags:
//
//	--values, -f: Values files to render with, later files win (required)
//	--show-values: Print the merged values instead of manifests
//	--chart: Local chart directory or archive instead of the repository chart
//	--chart-version: camunda-platform chart version
//	--release, --namespace: Release name and namespace used in templates
func Render() *cobra.Command {
	var opts handlers.RenderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the camunda-platform chart with a values file",
		Long: `Render the camunda-platform chart with a values file and print the
resulting manifests.

The chart is downloaded from https://helm.camunda.io and cached under
$XDG_CACHE_HOME/c8values/charts. Use --chart to render a local chart.
Several -f files are deep-merged in order, as helm install does.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.ValuesPaths, "values", "f", nil, "Values files, later ones take precedence (repeatable)")
	cmd.Flags().BoolVar(&opts.ShowValues, "show-values", false, "Print the merged values instead of rendering")
	cmd.Flags().StringVar(&opts.ChartPath, "chart", "", "Local chart path")
	cmd.Flags().StringVar(&opts.ChartVersion, "chart-version", "", "Chart version (default: pinned version)")
	cmd.Flags().StringVar(&opts.Release, "release", "camunda", "Release name")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "camunda", "Release namespace")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}
