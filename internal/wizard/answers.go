package wizard

import "slices"

// Value is an answer stored under a question id.
// It is one of Text, Choices or Fields.
type Value interface {
	clone() Value
}

// Text is the answer of a SingleChoice, ShortText or Secret question.
type Text string

// Choices is the answer of a MultiChoice question, in selection order.
type Choices []string

// Fields is the answer of a FieldList question.
type Fields []Field

// Field is one name/value entry of a FieldList answer.
type Field struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func (t Text) clone() Value    { return t }
func (c Choices) clone() Value { return Choices(slices.Clone(c)) }
func (f Fields) clone() Value  { return Fields(slices.Clone(f)) }

// Answers maps question ids to answers. Readers return the neutral value of
// the requested type when a key is absent or holds a different variant.
type Answers map[string]Value

// Text returns the string answer for id, or "" when absent.
func (a Answers) Text(id string) string {
	if t, ok := a[id].(Text); ok {
		return string(t)
	}
	return ""
}

// Choices returns a copy of the multi-choice answer for id, or nil.
func (a Answers) Choices(id string) []string {
	if c, ok := a[id].(Choices); ok {
		return slices.Clone([]string(c))
	}
	return nil
}

// Fields returns a copy of the field list answer for id, or nil.
func (a Answers) Fields(id string) []Field {
	if f, ok := a[id].(Fields); ok {
		return slices.Clone([]Field(f))
	}
	return nil
}

// Includes reports whether the answer for id contains v. A Text answer
// includes v only when it equals v.
func (a Answers) Includes(id, v string) bool {
	switch val := a[id].(type) {
	case Choices:
		return slices.Contains(val, v)
	case Text:
		return string(val) == v
	default:
		return false
	}
}

// Has reports whether an answer was ever stored under id.
func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// Clone returns a deep copy of the store.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		if v != nil {
			out[k] = v.clone()
		}
	}
	return out
}

// env flattens the answers into plain Go values for expression evaluation.
func (a Answers) env() map[string]any {
	env := make(map[string]any, len(a))
	for k, v := range a {
		switch val := v.(type) {
		case Text:
			env[k] = string(val)
		case Choices:
			items := make([]any, len(val))
			for i, c := range val {
				items[i] = c
			}
			env[k] = items
		case Fields:
			items := make([]any, len(val))
			for i, f := range val {
				items[i] = map[string]any{"name": f.Name, "value": f.Value}
			}
			env[k] = items
		}
	}
	return env
}
