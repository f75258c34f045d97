package camunda

import (
	"slices"

	"github.com/imamik/c8values/internal/wizard"
)

// SharedSearch holds when Operate and Tasklist are both selected and the
// user chose to point them at one search database.
var SharedSearch = wizard.All(
	wizard.Includes(QProducts, Operate),
	wizard.Includes(QProducts, Tasklist),
	wizard.Equals(QShareSearchDatabase, Yes),
)

// searchProducts holds when a product that needs a search database is
// selected.
var searchProducts = wizard.Any(
	wizard.Includes(QProducts, Operate),
	wizard.Includes(QProducts, Tasklist),
	wizard.Includes(QProducts, Optimize),
)

// ElasticsearchDeclined holds when Elasticsearch is the search database but
// the user turned it off. No search connection is configured then.
var ElasticsearchDeclined = wizard.All(
	searchProducts,
	wizard.Equals(QSearchDatabase, Elasticsearch),
	wizard.Equals(QElasticsearchOn, No),
)

// IsElasticsearchDeclined evaluates ElasticsearchDeclined against answers.
func IsElasticsearchDeclined(answers wizard.Answers) bool {
	return ElasticsearchDeclined.Eval(answers)
}

// IsShared evaluates SharedSearch against answers.
func IsShared(answers wizard.Answers) bool {
	return SharedSearch.Eval(answers)
}

// SearchVariant returns the selected search database, defaulting to
// Elasticsearch when unanswered.
func SearchVariant(answers wizard.Answers) string {
	if answers.Text(QSearchDatabase) == OpenSearch {
		return OpenSearch
	}
	return Elasticsearch
}

// Schema returns the Camunda 8 question catalogue. Steps and questions are
// fresh on every call; conditions are shared and must not be modified.
func Schema() wizard.Schema {
	notDeclined := wizard.Not(ElasticsearchDeclined)
	notShared := wizard.All(wizard.Not(SharedSearch), notDeclined)

	return wizard.Schema{
		Selector: QProducts,
		Steps: []wizard.Step{
			{
				Ordinal: 1,
				Title:   "Products",
				Questions: []wizard.Question{{
					ID:          QProducts,
					Kind:        wizard.MultiChoice,
					Prompt:      "Which Camunda 8 components do you want to deploy?",
					Description: "Later steps depend on this selection",
					Options:     slices.Clone(Products),
				}},
			},
			{
				Ordinal: 2,
				Title:   "Search Database",
				When:    searchProducts,
				Questions: []wizard.Question{
					{
						ID:      QSearchDatabase,
						Kind:    wizard.SingleChoice,
						Prompt:  "Which search database do you use?",
						Options: []string{Elasticsearch, OpenSearch},
					},
					{
						ID:          QElasticsearchOn,
						Kind:        wizard.SingleChoice,
						Prompt:      "Do you want Elasticsearch enabled?",
						Description: "No writes global.elasticsearch.enabled: false and skips the connection questions",
						Options:     []string{Yes, No},
						When:        wizard.Equals(QSearchDatabase, Elasticsearch),
					},
					{
						ID:          QShareSearchDatabase,
						Kind:        wizard.SingleChoice,
						Prompt:      "Should Operate and Tasklist share one search database?",
						Description: "When shared, a single connection is configured globally",
						Options:     []string{Yes, No},
						When: wizard.All(
							wizard.Includes(QProducts, Operate),
							wizard.Includes(QProducts, Tasklist),
							notDeclined,
						),
					},
				},
			},
			sharedSearchStep(3, "Shared Elasticsearch", Elasticsearch, "https://elasticsearch.example.com:9200", notDeclined),
			sharedSearchStep(4, "Shared OpenSearch", OpenSearch, "https://opensearch.example.com:9200", notDeclined),
			{
				Ordinal: 5,
				Title:   "Operate",
				When:    wizard.Includes(QProducts, Operate),
				Questions: append(
					searchQuestions("Operate", OperateSearchFields, notShared),
					envQuestion(QOperateEnv, "Operate environment variables"),
				),
			},
			{
				Ordinal: 6,
				Title:   "Tasklist",
				When:    wizard.Includes(QProducts, Tasklist),
				Questions: append(
					searchQuestions("Tasklist", TasklistSearchFields, notShared),
					envQuestion(QTasklistEnv, "Tasklist environment variables"),
				),
			},
			{
				Ordinal: 7,
				Title:   "Optimize",
				When:    wizard.Includes(QProducts, Optimize),
				Questions: append(
					searchQuestions("Optimize", OptimizeSearchFields, notDeclined),
					envQuestion(QOptimizeEnv, "Optimize environment variables"),
				),
			},
			{
				Ordinal:   8,
				Title:     "Zeebe",
				When:      wizard.Includes(QProducts, Zeebe),
				Questions: []wizard.Question{envQuestion(QZeebeEnv, "Zeebe environment variables")},
			},
			{
				Ordinal:   9,
				Title:     "Identity",
				When:      wizard.Includes(QProducts, Identity),
				Questions: []wizard.Question{envQuestion(QIdentityEnv, "Identity environment variables")},
			},
			{
				Ordinal:   10,
				Title:     "Connectors",
				When:      wizard.Includes(QProducts, Connectors),
				Questions: []wizard.Question{envQuestion(QConnectorsEnv, "Connectors environment variables")},
			},
			{
				Ordinal: 11,
				Title:   "Web Modeler",
				When:    wizard.Includes(QProducts, WebModeler),
				Questions: []wizard.Question{
					{
						ID:      QWebModelerDatabase,
						Kind:    wizard.SingleChoice,
						Prompt:  "Which database should Web Modeler use?",
						Options: []string{PostgreSQL, Oracle, MSSQL},
					},
					webModelerDBQuestion(QWebModelerDBURL, wizard.ShortText, "Database address", "db.example.com"),
					webModelerDBQuestion(QWebModelerDBHost, wizard.ShortText, "Database host", "db.example.com"),
					webModelerDBQuestion(QWebModelerDBUser, wizard.ShortText, "Database user", "web-modeler"),
					webModelerDBQuestion(QWebModelerDBPassword, wizard.Secret, "Database password", ""),
				},
			},
			{
				Ordinal: 12,
				Title:   "Web Modeler Environment",
				When:    wizard.Includes(QProducts, WebModeler),
				Questions: []wizard.Question{
					envQuestion(QWebModelerRestAPIEnv, "REST API environment variables"),
					envQuestion(QWebModelerWebAppEnv, "Web app environment variables"),
					envQuestion(QWebModelerWebSocketsEnv, "WebSockets environment variables"),
				},
			},
		},
	}
}

func sharedSearchStep(ordinal int, title, variant, placeholder string, enabled *wizard.Condition) wizard.Step {
	fields := SharedSearchFields(variant)
	return wizard.Step{
		Ordinal: ordinal,
		Title:   title,
		When:    wizard.All(SharedSearch, wizard.Equals(QSearchDatabase, variant), enabled),
		Questions: []wizard.Question{
			{ID: fields.URL, Kind: wizard.ShortText, Prompt: variant + " URL", Placeholder: placeholder},
			{ID: fields.Username, Kind: wizard.ShortText, Prompt: "Username", Description: "Leave empty to disable authentication"},
			{ID: fields.Password, Kind: wizard.Secret, Prompt: "Password"},
		},
	}
}

func searchQuestions(product string, fields SearchFields, when *wizard.Condition) []wizard.Question {
	return []wizard.Question{
		{ID: fields.URL, Kind: wizard.ShortText, Prompt: product + " search database URL", Placeholder: "https://search.example.com:9200", When: when},
		{ID: fields.Username, Kind: wizard.ShortText, Prompt: product + " search database username", When: when},
		{ID: fields.Password, Kind: wizard.Secret, Prompt: product + " search database password", When: when},
	}
}

func envQuestion(id, prompt string) wizard.Question {
	return wizard.Question{
		ID:          id,
		Kind:        wizard.FieldList,
		Prompt:      prompt,
		Description: "Optional name/value pairs passed to the container",
	}
}

func webModelerDBQuestion(id string, kind wizard.Kind, prompt, placeholder string) wizard.Question {
	return wizard.Question{
		ID:          id,
		Kind:        kind,
		Prompt:      prompt,
		Placeholder: placeholder,
		When:        wizard.Equals(QWebModelerDatabase, PostgreSQL),
	}
}
