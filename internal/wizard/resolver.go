package wizard

// ResolvedStep is a visible step carrying only its visible questions.
type ResolvedStep struct {
	Ordinal   int        `yaml:"ordinal"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Resolve computes the live, ordered subset of steps and questions for the
// given answers. It does not modify answers and keeps authoring order.
func Resolve(schema Schema, answers Answers) []ResolvedStep {
	var steps []ResolvedStep
	for _, step := range schema.Steps {
		if !step.When.Eval(answers) {
			continue
		}
		resolved := ResolvedStep{
			Ordinal:   step.Ordinal,
			Title:     step.Title,
			Questions: []Question{},
		}
		for _, q := range step.Questions {
			if q.When.Eval(answers) {
				resolved.Questions = append(resolved.Questions, q)
			}
		}
		steps = append(steps, resolved)
	}
	return steps
}
