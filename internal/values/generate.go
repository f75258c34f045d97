package values

import (
	"strings"

	"github.com/imamik/c8values/internal/camunda"
	"github.com/imamik/c8values/internal/wizard"
)

// Placeholder is returned when no section produced output. It is a YAML
// comment, so the result still parses as an empty values file.
const Placeholder = "# No values generated. Select products and fill in their connection details.\n"

// Web Modeler's bundled PostgreSQL replacement.
const (
	webModelerDBPort = "5432"
	webModelerDBName = "web-modeler"
)

type envSection struct {
	product  string
	path     string
	question string
}

// envSections is the fixed emission order of the free-form lists.
var envSections = []envSection{
	{camunda.Zeebe, "zeebe.env", camunda.QZeebeEnv},
	{camunda.Operate, "operate.env", camunda.QOperateEnv},
	{camunda.Tasklist, "tasklist.env", camunda.QTasklistEnv},
	{camunda.Optimize, "optimize.env", camunda.QOptimizeEnv},
	{camunda.Identity, "identity.env", camunda.QIdentityEnv},
	{camunda.Connectors, "connectors.env", camunda.QConnectorsEnv},
	{camunda.WebModeler, "webModeler.restapi.env", camunda.QWebModelerRestAPIEnv},
	{camunda.WebModeler, "webModeler.webapp.env", camunda.QWebModelerWebAppEnv},
	{camunda.WebModeler, "webModeler.websockets.env", camunda.QWebModelerWebSocketsEnv},
}

// Generate renders answers into a camunda-platform values document, or
// Placeholder when nothing qualifies. It never modifies answers.
func Generate(answers wizard.Answers) string {
	doc := Build(answers)
	if doc.Empty() {
		return Placeholder
	}
	return doc.String()
}

// Build assembles the document tree section by section. The section order
// fixes the order of top-level keys in the output.
func Build(answers wizard.Answers) *Document {
	doc := NewDocument()
	a := newAliases(answers)

	writeSharedSearch(doc, answers, a)
	writeFeatureSearch(doc, answers, a)
	writeWebModelerDatabase(doc, answers)
	writeEnv(doc, answers)

	return doc
}

// IsPlaceholder reports whether out is the empty-result sentinel.
func IsPlaceholder(out string) bool {
	return strings.TrimSpace(out) == strings.TrimSpace(Placeholder)
}

func writeSharedSearch(doc *Document, answers wizard.Answers, a aliases) {
	if camunda.IsElasticsearchDeclined(answers) {
		doc.Set("global.elasticsearch.enabled", "false")
		return
	}
	if !a.shared {
		return
	}
	conn := a.connection(answers, camunda.OperateSearchFields)
	if conn.url == "" {
		return
	}

	prefix := "global." + variantKey(a.variant)
	doc.Set(prefix+".enabled", "true")
	if a.variant == camunda.Elasticsearch {
		doc.Set(prefix+".external", "true")
	}
	doc.Set(prefix+".url", conn.url)
	writeAuth(doc, prefix+".auth", conn)

	// Bundled subchart stays off when an external store is configured.
	doc.Set("elasticsearch.enabled", "false")
}

func writeFeatureSearch(doc *Document, answers wizard.Answers, a aliases) {
	if camunda.IsElasticsearchDeclined(answers) {
		return
	}
	variant := variantKey(a.variant)
	if !a.shared {
		for _, f := range []struct {
			product string
			key     string
			fields  camunda.SearchFields
		}{
			{camunda.Operate, "operate", camunda.OperateSearchFields},
			{camunda.Tasklist, "tasklist", camunda.TasklistSearchFields},
		} {
			if !answers.Includes(camunda.QProducts, f.product) {
				continue
			}
			writeConnection(doc, f.key+"."+variant, a.connection(answers, f.fields))
		}
	}

	if answers.Includes(camunda.QProducts, camunda.Optimize) {
		writeConnection(doc, "optimize."+variant, a.connection(answers, camunda.OptimizeSearchFields))
	}
}

func writeConnection(doc *Document, prefix string, conn connection) {
	if conn.url == "" {
		return
	}
	doc.Set(prefix+".url", conn.url)
	setIfAnswered(doc, prefix+".username", conn.username)
	setIfAnswered(doc, prefix+".password", conn.password)
}

func writeAuth(doc *Document, prefix string, conn connection) {
	setIfAnswered(doc, prefix+".username", conn.username)
	setIfAnswered(doc, prefix+".password", conn.password)
}

func writeWebModelerDatabase(doc *Document, answers wizard.Answers) {
	if !answers.Includes(camunda.QProducts, camunda.WebModeler) ||
		answers.Text(camunda.QWebModelerDatabase) != camunda.PostgreSQL {
		return
	}

	const prefix = "webModeler.restapi.externalDatabase"
	doc.Set(prefix+".url", "jdbc:postgresql://"+answers.Text(camunda.QWebModelerDBURL)+":"+webModelerDBPort+"/"+webModelerDBName)
	setIfAnswered(doc, prefix+".host", answers.Text(camunda.QWebModelerDBHost))
	doc.Set(prefix+".port", webModelerDBPort)
	doc.Set(prefix+".database", webModelerDBName)
	setIfAnswered(doc, prefix+".user", answers.Text(camunda.QWebModelerDBUser))
	setIfAnswered(doc, prefix+".password", answers.Text(camunda.QWebModelerDBPassword))
	doc.Set("webModelerPostgresql.enabled", "false")
}

// setIfAnswered skips empty values, which would render as YAML null.
func setIfAnswered(doc *Document, path, value string) {
	if value != "" {
		doc.Set(path, value)
	}
}

func writeEnv(doc *Document, answers wizard.Answers) {
	for _, s := range envSections {
		if !answers.Includes(camunda.QProducts, s.product) {
			continue
		}
		entries := answers.Fields(s.question)
		if len(entries) == 0 {
			continue
		}
		doc.SetList(s.path, entries)
	}
}

func variantKey(variant string) string {
	if variant == camunda.OpenSearch {
		return "opensearch"
	}
	return "elasticsearch"
}
