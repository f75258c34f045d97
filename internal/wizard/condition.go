package wizard

import (
	"fmt"
	"slices"
)

// Match names a question and the option it is compared with.
type Match struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Condition is a serializable visibility predicate over the answer store.
// Every populated clause must hold; an empty Condition always holds and a
// nil *Condition means "always visible".
type Condition struct {
	Equals   *Match       `yaml:"equals,omitempty"`
	Includes *Match       `yaml:"includes,omitempty"`
	All      []*Condition `yaml:"all,omitempty"`
	Any      []*Condition `yaml:"any,omitempty"`
	Not      *Condition   `yaml:"not,omitempty"`
	Expr     string       `yaml:"expr,omitempty"`
}

// Equals holds when the Text answer of field is exactly value.
func Equals(field, value string) *Condition {
	return &Condition{Equals: &Match{Field: field, Value: value}}
}

// Includes holds when the answer of field contains value.
func Includes(field, value string) *Condition {
	return &Condition{Includes: &Match{Field: field, Value: value}}
}

// All holds when every condition holds.
func All(conds ...*Condition) *Condition {
	return &Condition{All: conds}
}

// Any holds when at least one condition holds.
func Any(conds ...*Condition) *Condition {
	return &Condition{Any: conds}
}

// Not negates c.
func Not(c *Condition) *Condition {
	return &Condition{Not: c}
}

// Expr holds when the expr-lang expression evaluates to true with answers
// bound by question id. Undefined ids are nil; errors evaluate to false.
func Expr(expression string) *Condition {
	return &Condition{Expr: expression}
}

// Eval evaluates c against answers. It never fails: absent answers simply
// do not match.
func (c *Condition) Eval(answers Answers) bool {
	if c == nil {
		return true
	}
	if c.Equals != nil {
		if t, ok := answers[c.Equals.Field].(Text); !ok || string(t) != c.Equals.Value {
			return false
		}
	}
	if c.Includes != nil && !answers.Includes(c.Includes.Field, c.Includes.Value) {
		return false
	}
	for _, sub := range c.All {
		if !sub.Eval(answers) {
			return false
		}
	}
	if len(c.Any) > 0 && !slices.ContainsFunc(c.Any, func(sub *Condition) bool { return sub.Eval(answers) }) {
		return false
	}
	if c.Not != nil && c.Not.Eval(answers) {
		return false
	}
	if c.Expr != "" && !evalExpr(c.Expr, answers) {
		return false
	}
	return true
}

// Fields returns the question ids c reads, in first-seen order.
func (c *Condition) Fields() []string {
	var out []string
	c.collect(&out)
	return out
}

func (c *Condition) collect(out *[]string) {
	if c == nil {
		return
	}
	add := func(id string) {
		if !slices.Contains(*out, id) {
			*out = append(*out, id)
		}
	}
	if c.Equals != nil {
		add(c.Equals.Field)
	}
	if c.Includes != nil {
		add(c.Includes.Field)
	}
	for _, sub := range c.All {
		sub.collect(out)
	}
	for _, sub := range c.Any {
		sub.collect(out)
	}
	c.Not.collect(out)
	if c.Expr != "" {
		for _, id := range exprIdentifiers(c.Expr) {
			add(id)
		}
	}
}

// check reports malformed clauses: empty match fields and expressions that
// do not compile.
func (c *Condition) check() error {
	if c == nil {
		return nil
	}
	for _, m := range []*Match{c.Equals, c.Includes} {
		if m != nil && m.Field == "" {
			return errEmptyMatchField
		}
	}
	if c.Expr != "" {
		if _, err := compileExpr(c.Expr); err != nil {
			return fmt.Errorf("expression %q: %w", c.Expr, err)
		}
	}
	subs := append(slices.Clone(c.All), c.Any...)
	subs = append(subs, c.Not)
	for _, sub := range subs {
		if err := sub.check(); err != nil {
			return err
		}
	}
	return nil
}
