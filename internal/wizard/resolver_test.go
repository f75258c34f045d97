package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(steps []ResolvedStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Title
	}
	return out
}

func questionIDs(step ResolvedStep) []string {
	out := make([]string, len(step.Questions))
	for i, q := range step.Questions {
		out[i] = q.ID
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		answers    Answers
		wantSteps  []string
		wantSearch []string
	}{
		{
			name:      "empty store shows unconditional steps",
			answers:   Answers{},
			wantSteps: []string{"Features", "Environment"},
		},
		{
			name:       "selector gates step",
			answers:    Answers{"features": Choices{"search"}},
			wantSteps:  []string{"Features", "Search", "Environment"},
			wantSearch: []string{"engine"},
		},
		{
			name:       "follow-up question appears",
			answers:    Answers{"features": Choices{"search"}, "engine": Text("B")},
			wantSteps:  []string{"Features", "Search", "Environment"},
			wantSearch: []string{"engine", "b_url"},
		},
		{
			name:      "authoring order kept regardless of selection order",
			answers:   Answers{"features": Choices{"storage", "search"}},
			wantSteps: []string{"Features", "Search", "Storage", "Environment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Resolve(testSchema(), tt.answers)
			assert.Equal(t, tt.wantSteps, titles(steps))
			if tt.wantSearch != nil {
				require.GreaterOrEqual(t, len(steps), 2)
				assert.Equal(t, tt.wantSearch, questionIDs(steps[1]))
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	answers := Answers{"features": Choices{"search", "storage"}, "engine": Text("A")}

	first := Resolve(testSchema(), answers)
	second := Resolve(testSchema(), answers)

	assert.Equal(t, first, second)
}

func TestResolve_DoesNotMutateAnswers(t *testing.T) {
	answers := Answers{"features": Choices{"search"}, "engine": Text("A")}
	before := answers.Clone()

	Resolve(testSchema(), answers)

	assert.Equal(t, before, answers)
}

func TestResolve_StepWithNoVisibleQuestions(t *testing.T) {
	s := Schema{Steps: []Step{{
		Ordinal:   1,
		Title:     "Only hidden",
		Questions: []Question{{ID: "x", Kind: ShortText, When: Equals("y", "z")}},
	}}}

	steps := Resolve(s, Answers{})
	require.Len(t, steps, 1)
	assert.Empty(t, steps[0].Questions)
}
