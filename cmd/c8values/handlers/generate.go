package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/imamik/c8values/internal/logging"
	"github.com/imamik/c8values/internal/values"
)

// Output formats of the generate command.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Generate renders values for an answers file without prompting. An output
// path of "-" prints to stdout.
func Generate(ctx context.Context, answersPath, outputPath, format string, force bool) error {
	log := logging.FromContext(ctx).WithName("generate")

	if format != FormatYAML && format != FormatJSON {
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	session := newSession(ctx)
	answers, err := loadAnswers(answersPath, session.Schema())
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}
	prefill(session, answers)

	content := session.Generate()
	if values.IsPlaceholder(content) {
		log.Info("no values generated", "answers", answersPath)
	}

	out, err := formatValues(content, format)
	if err != nil {
		return err
	}

	if outputPath == "" || outputPath == "-" {
		fmt.Print(out)
		return nil
	}

	if fileExists(outputPath) && !force {
		return fmt.Errorf("%w: %s", errOutputExists, outputPath)
	}

	if format == FormatJSON {
		if err := os.WriteFile(outputPath, []byte(out), 0600); err != nil {
			return fmt.Errorf("failed to write values: %w", err)
		}
	} else if err := writeValues(out, outputPath, answersPath); err != nil {
		return fmt.Errorf("failed to write values: %w", err)
	}

	log.V(1).Info("values written", "path", outputPath, "format", format)
	fmt.Printf("Values written to %s\n", outputPath)
	return nil
}

// formatValues converts the generated document to the requested format.
func formatValues(content, format string) (string, error) {
	if format == FormatYAML {
		return content, nil
	}
	if values.IsPlaceholder(content) {
		return "{}\n", nil
	}

	raw, err := yaml.YAMLToJSON([]byte(content))
	if err != nil {
		return "", fmt.Errorf("failed to convert values to JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	buf.WriteString("\n")
	return buf.String(), nil
}
