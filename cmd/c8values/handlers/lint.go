package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/c8values/internal/helm"
	"github.com/imamik/c8values/internal/logging"
)

// Lint parses a values file the way Helm does and reports empty leaves.
// It fails when there are findings.
func Lint(ctx context.Context, path string) error {
	data, err := readFile(path)
	if err != nil {
		return fmt.Errorf("failed to read values file: %w", err)
	}

	report, err := helm.Lint(data)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).V(1).Info("linted", "path", path, "leaves", report.Leaves, "findings", len(report.Findings))

	if report.Empty {
		fmt.Printf("%s: nothing generated\n", path)
		return nil
	}
	if len(report.Findings) == 0 {
		fmt.Printf("%s: %d values, no findings\n", path, report.Leaves)
		return nil
	}

	fmt.Printf("%s: %d values\n", path, report.Leaves)
	for _, f := range report.Findings {
		fmt.Printf("  - %s\n", f)
	}
	return fmt.Errorf("%w: %d in %s", errLintFindings, len(report.Findings), path)
}
