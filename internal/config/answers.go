package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/imamik/c8values/internal/wizard"
)

// LoadAnswers reads an answers file for schema. Files named *.env or .env*
// are parsed as dotenv, everything else as YAML.
func LoadAnswers(path string, schema wizard.Schema) (wizard.Answers, error) {
	if isEnvFile(path) {
		env, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read answers file: %w", err)
		}
		return answersFromEnv(env, schema)
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	return ParseAnswersYAML(data, schema)
}

// ParseAnswersYAML decodes a YAML mapping of question ids to answers.
// Multi-choice answers are sequences or comma-separated strings, field
// lists are sequences of {name, value} mappings, everything else is a
// scalar.
func ParseAnswersYAML(data []byte, schema wizard.Schema) (wizard.Answers, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	answers := make(wizard.Answers, len(raw))
	var errs []error
	for _, id := range sortedKeys(raw) {
		node := raw[id]
		q, ok := schema.Question(id)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", errUnknownQuestion, id))
			continue
		}
		v, err := decodeNode(q, &node)
		if err != nil {
			errs = append(errs, fmt.Errorf("question %q: %w", id, err))
			continue
		}
		answers[id] = v
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return answers, nil
}

// ParseAnswersEnv decodes dotenv content. Keys are matched to question ids
// case-insensitively.
func ParseAnswersEnv(data []byte, schema wizard.Schema) (wizard.Answers, error) {
	env, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dotenv: %w", err)
	}
	return answersFromEnv(env, schema)
}

func answersFromEnv(env map[string]string, schema wizard.Schema) (wizard.Answers, error) {
	answers := make(wizard.Answers, len(env))
	var errs []error
	for _, key := range sortedKeys(env) {
		id := strings.ToLower(key)
		q, ok := schema.Question(id)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", errUnknownQuestion, key))
			continue
		}

		var v wizard.Value
		switch q.Kind {
		case wizard.FieldList:
			errs = append(errs, fmt.Errorf("question %q: %w", id, errFieldListInEnv))
			continue
		case wizard.MultiChoice:
			v = wizard.Choices(splitList(env[key]))
		default:
			v = wizard.Text(env[key])
		}
		if err := checkOptions(q, v); err != nil {
			errs = append(errs, fmt.Errorf("question %q: %w", id, err))
			continue
		}
		answers[id] = v
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return answers, nil
}

func decodeNode(q wizard.Question, node *yaml.Node) (wizard.Value, error) {
	var v wizard.Value
	switch q.Kind {
	case wizard.MultiChoice:
		if node.Kind == yaml.ScalarNode {
			v = wizard.Choices(splitList(node.Value))
			break
		}
		var items []string
		if err := node.Decode(&items); err != nil {
			return nil, fmt.Errorf("%w: %w", errWrongShape, err)
		}
		v = wizard.Choices(items)
	case wizard.FieldList:
		var fields []wizard.Field
		if err := node.Decode(&fields); err != nil {
			return nil, fmt.Errorf("%w: %w", errWrongShape, err)
		}
		if fields == nil {
			fields = []wizard.Field{}
		}
		v = wizard.Fields(fields)
	default:
		if node.Kind != yaml.ScalarNode {
			return nil, errWrongShape
		}
		v = wizard.Text(node.Value)
	}
	return v, checkOptions(q, v)
}

// checkOptions rejects choice answers outside the question's options.
func checkOptions(q wizard.Question, v wizard.Value) error {
	if !q.Kind.IsChoice() {
		return nil
	}
	var picked []string
	switch val := v.(type) {
	case wizard.Text:
		picked = []string{string(val)}
	case wizard.Choices:
		picked = val
	}
	for _, p := range picked {
		if !slices.Contains(q.Options, p) {
			return fmt.Errorf("%w: %q", errInvalidOption, p)
		}
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isEnvFile(path string) bool {
	base := filepath.Base(path)
	return filepath.Ext(base) == ".env" || strings.HasPrefix(base, ".env")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
