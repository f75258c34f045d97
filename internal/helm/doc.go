// Package helm checks generated values against the camunda-platform chart.
//
// It parses values files the way Helm does, reports empty leaves, and
// renders a chart release locally with the Helm engine. Charts are loaded
// from a directory or archive, or downloaded from their repository and
// cached under the user cache directory.
package helm
