// Package main is the entry point for the c8values CLI.
//
// c8values walks through a conditional wizard about a Camunda 8
// deployment (components, search database, Web Modeler database and extra
// environment variables) and writes the matching Helm values for the
// camunda-platform chart.
//
// Commands: init, generate, lint, render, schema.
//
// For detailed usage information, run:
//
//	c8values --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/c8values/cmd/c8values/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
