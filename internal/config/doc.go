// Package config reads answers files and writes generated values files.
//
// Answers come from YAML documents keyed by question id, or from dotenv
// files whose keys are upper-cased question ids. Values files are written
// with a header naming the answers source and how to install the chart.
package config
