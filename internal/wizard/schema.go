package wizard

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Kind is the input type of a question.
type Kind string

// Question kinds.
const (
	SingleChoice Kind = "single_choice"
	MultiChoice  Kind = "multi_choice"
	ShortText    Kind = "short_text"
	Secret       Kind = "secret"
	FieldList    Kind = "field_list"
)

// IsChoice reports whether answers of this kind are picked from options.
func (k Kind) IsChoice() bool {
	return k == SingleChoice || k == MultiChoice
}

// Question is one input prompt.
type Question struct {
	ID          string     `yaml:"id"`
	Kind        Kind       `yaml:"kind"`
	Prompt      string     `yaml:"prompt"`
	Description string     `yaml:"description,omitempty"`
	Options     []string   `yaml:"options,omitempty"`
	Placeholder string     `yaml:"placeholder,omitempty"`
	When        *Condition `yaml:"when,omitempty"`
}

// Step is one page of the wizard. Ordinal records authoring order only;
// display numbering comes from the resolved sequence.
type Step struct {
	Ordinal   int        `yaml:"ordinal"`
	Title     string     `yaml:"title"`
	When      *Condition `yaml:"when,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Schema is the static, ordered step catalogue. Selector names the question
// whose answer decides which steps exist; changing it re-anchors navigation.
type Schema struct {
	Selector string `yaml:"selector"`
	Steps    []Step `yaml:"steps"`
}

// Question looks up a question by id across all steps.
func (s Schema) Question(id string) (Question, bool) {
	for _, step := range s.Steps {
		for _, q := range step.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// Validate checks the schema invariants and returns every violation found.
func (s Schema) Validate() error {
	var errs []error
	seen := make(map[string]bool)

	for _, step := range s.Steps {
		if err := step.When.check(); err != nil {
			errs = append(errs, fmt.Errorf("step %q: %w", step.Title, err))
		}
		for _, q := range step.Questions {
			if seen[q.ID] {
				errs = append(errs, fmt.Errorf("question %q: %w", q.ID, errDuplicateQuestion))
			}
			seen[q.ID] = true

			switch {
			case !slices.Contains([]Kind{SingleChoice, MultiChoice, ShortText, Secret, FieldList}, q.Kind):
				errs = append(errs, fmt.Errorf("question %q: %w: %q", q.ID, errUnknownKind, q.Kind))
			case q.Kind.IsChoice() && len(q.Options) == 0:
				errs = append(errs, fmt.Errorf("question %q: %w", q.ID, errMissingOptions))
			case !q.Kind.IsChoice() && len(q.Options) > 0:
				errs = append(errs, fmt.Errorf("question %q: %w", q.ID, errUnexpectedOptions))
			}

			if slices.Contains(q.When.Fields(), q.ID) {
				errs = append(errs, fmt.Errorf("question %q: %w", q.ID, errSelfReference))
			}
			if err := q.When.check(); err != nil {
				errs = append(errs, fmt.Errorf("question %q: %w", q.ID, err))
			}
		}
	}

	if s.Selector != "" && !seen[s.Selector] {
		errs = append(errs, fmt.Errorf("%w: %q", errUnknownSelector, s.Selector))
	}

	return errors.Join(errs...)
}

// ToYAML dumps the schema, conditions included.
func (s Schema) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return out, nil
}

// SchemaFromYAML parses a schema dumped with ToYAML.
func SchemaFromYAML(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("failed to parse schema: %w", err)
	}
	return s, nil
}
