package wizard

// testSchema is a small catalogue exercising every visibility rule:
// a selector, a step gated on the selector, an in-step follow-up gated on
// a sibling answer, and a trailing unconditional step.
func testSchema() Schema {
	return Schema{
		Selector: "features",
		Steps: []Step{
			{
				Ordinal: 1,
				Title:   "Features",
				Questions: []Question{
					{ID: "features", Kind: MultiChoice, Prompt: "Features", Options: []string{"search", "storage"}},
				},
			},
			{
				Ordinal: 2,
				Title:   "Search",
				When:    Includes("features", "search"),
				Questions: []Question{
					{ID: "engine", Kind: SingleChoice, Prompt: "Engine", Options: []string{"A", "B"}},
					{ID: "a_url", Kind: ShortText, Prompt: "A URL", When: Equals("engine", "A")},
					{ID: "b_url", Kind: ShortText, Prompt: "B URL", When: Equals("engine", "B")},
				},
			},
			{
				Ordinal: 3,
				Title:   "Storage",
				When:    Includes("features", "storage"),
				Questions: []Question{
					{ID: "bucket", Kind: ShortText, Prompt: "Bucket"},
					{ID: "secret", Kind: Secret, Prompt: "Secret"},
				},
			},
			{
				Ordinal: 4,
				Title:   "Environment",
				Questions: []Question{
					{ID: "env", Kind: FieldList, Prompt: "Environment"},
				},
			},
		},
	}
}
