package wizard

import (
	"sync"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	exprvm "github.com/expr-lang/expr/vm"
)

type compiledExpr struct {
	program *exprvm.Program
	err     error
}

// programs caches compiled expressions by source text. Compilation depends
// only on the text, never on answers, so entries stay valid across mutations.
var programs sync.Map

func compileExpr(expression string) (*exprvm.Program, error) {
	if cached, ok := programs.Load(expression); ok {
		c := cached.(compiledExpr)
		return c.program, c.err
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	programs.Store(expression, compiledExpr{program: program, err: err})
	return program, err
}

func evalExpr(expression string, answers Answers) bool {
	program, err := compileExpr(expression)
	if err != nil {
		return false
	}
	out, err := exprlang.Run(program, answers.env())
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

type identVisitor struct {
	names []string
}

func (v *identVisitor) Visit(node *ast.Node) {
	if id, ok := (*node).(*ast.IdentifierNode); ok {
		v.names = append(v.names, id.Value)
	}
}

// exprIdentifiers returns the identifiers an expression refers to, or nil
// when it does not parse.
func exprIdentifiers(expression string) []string {
	tree, err := parser.Parse(expression)
	if err != nil {
		return nil
	}
	v := &identVisitor{}
	ast.Walk(&tree.Node, v)
	return v.names
}
