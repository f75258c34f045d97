package handlers

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/imamik/c8values/internal/camunda"
	"github.com/imamik/c8values/internal/wizard"
)

// Schema prints the step catalogue as YAML. With an answers file only the
// steps and questions visible for those answers are printed.
func Schema(_ context.Context, answersPath string) error {
	schema := camunda.Schema()

	if answersPath == "" {
		data, err := schema.ToYAML()
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	answers, err := loadAnswers(answersPath, schema)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	data, err := yaml.Marshal(wizard.Resolve(schema, answers))
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
