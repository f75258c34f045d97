package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/c8values/internal/helm"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the version command. It also reports the chart version
// generated values are written for.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "c8values %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
			fmt.Fprintf(out, "  chart:  %s %s\n", helm.CamundaPlatform.Name, helm.CamundaPlatform.Version)
		},
	}
}
