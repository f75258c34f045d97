package handlers

import "errors"

var (
	errUnknownFormat = errors.New("unknown output format (expected yaml or json)")
	errOutputExists  = errors.New("output file already exists (use --force to overwrite)")
	errLintFindings  = errors.New("values have lint findings")
)
