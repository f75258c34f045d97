package values

import (
	"github.com/imamik/c8values/internal/camunda"
	"github.com/imamik/c8values/internal/wizard"
)

// aliases maps feature-specific search questions to the question whose
// answer is actually used. It is built once per generation so Operate,
// Tasklist and the shared block always read the same fields.
type aliases struct {
	shared  bool
	variant string
	ids     map[string]string
}

// resolve picks the shared question when sharing is active, otherwise the
// feature's own question.
func resolve(shared bool, sharedID, specificID string) string {
	if shared {
		return sharedID
	}
	return specificID
}

func newAliases(answers wizard.Answers) aliases {
	a := aliases{
		shared:  camunda.IsShared(answers),
		variant: camunda.SearchVariant(answers),
		ids:     make(map[string]string),
	}
	common := camunda.SharedSearchFields(a.variant)

	for _, f := range []camunda.SearchFields{camunda.OperateSearchFields, camunda.TasklistSearchFields} {
		a.ids[f.URL] = resolve(a.shared, common.URL, f.URL)
		a.ids[f.Username] = resolve(a.shared, common.Username, f.Username)
		a.ids[f.Password] = resolve(a.shared, common.Password, f.Password)
	}
	return a
}

// connection reads a feature's search connection through the alias table.
func (a aliases) connection(answers wizard.Answers, f camunda.SearchFields) connection {
	return connection{
		url:      answers.Text(a.id(f.URL)),
		username: answers.Text(a.id(f.Username)),
		password: answers.Text(a.id(f.Password)),
	}
}

func (a aliases) id(question string) string {
	if target, ok := a.ids[question]; ok {
		return target
	}
	return question
}

type connection struct {
	url      string
	username string
	password string
}
