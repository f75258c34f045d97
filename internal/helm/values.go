package helm

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Values represents helm chart values as a map.
type Values map[string]any

// DeepMerge merges nested maps recursively, later maps taking precedence.
// Slices and scalars are replaced, not merged.
func DeepMerge(valueMaps ...Values) Values {
	result := make(Values)
	for _, m := range valueMaps {
		for k, v := range m {
			src := asMap(v)
			dst := asMap(result[k])
			if src != nil && dst != nil {
				result[k] = DeepMerge(dst, src)
				continue
			}
			result[k] = v
		}
	}
	return result
}

// ToMap converts nested Values into plain map[string]any, as Helm expects.
func (v Values) ToMap() map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = toPlain(val)
	}
	return out
}

// ToYAML converts values to YAML bytes.
func (v Values) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(v.ToMap()); err != nil {
		return nil, fmt.Errorf("failed to encode values to YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses YAML bytes into Values. An empty or comment-only
// document yields empty Values.
func FromYAML(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse YAML values: %w", err)
	}
	if values == nil {
		values = Values{}
	}
	return values, nil
}

func asMap(v any) Values {
	switch m := v.(type) {
	case Values:
		return m
	case map[string]any:
		return Values(m)
	default:
		return nil
	}
}

func toPlain(v any) any {
	switch val := v.(type) {
	case Values:
		return val.ToMap()
	case map[string]any:
		return Values(val).ToMap()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toPlain(item)
		}
		return out
	case []Values:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item.ToMap()
		}
		return out
	default:
		return v
	}
}
