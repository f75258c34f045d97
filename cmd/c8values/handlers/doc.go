// Package handlers implements the business logic for CLI commands.
//
// Each handler loads its inputs, calls into the internal packages and prints
// user-facing output. Dependencies are package-level function variables so
// tests can replace them.
package handlers
