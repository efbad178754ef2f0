// Package enumvalidator reports string literals assigned to the CRM's
// string-backed enum types, where a declared constant must be used instead.
package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that enum fields only use defined constants, not string literals",
	Run:  run,
}

var enumTypes = map[string]bool{
	"QuestionType":       true,
	"PageType":           true,
	"Role":               true,
	"Requirement":        true,
	"SubscriptionStatus": true,
	"TaskType":           true,
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				for i, lhs := range node.Lhs {
					if i >= len(node.Rhs) {
						continue
					}
					sel, ok := lhs.(*ast.SelectorExpr)
					if !ok || !isEnum(pass.TypesInfo.TypeOf(sel)) || !isStringLiteral(node.Rhs[i]) {
						continue
					}
					pass.Reportf(node.Pos(),
						"enum field %s assigned string literal; use defined constant instead",
						sel.Sel.Name)
				}
			case *ast.KeyValueExpr:
				key, ok := node.Key.(*ast.Ident)
				if !ok || !isStringLiteral(node.Value) {
					return true
				}
				if _, isField := pass.TypesInfo.Uses[key].(*types.Var); !isField {
					return true
				}
				if isEnum(pass.TypesInfo.TypeOf(key)) {
					pass.Reportf(node.Pos(),
						"enum field %s assigned string literal; use defined constant instead",
						key.Name)
				}
			}
			return true
		})
	}
	return nil, nil
}

func isEnum(t types.Type) bool {
	if t == nil {
		return false
	}
	named, ok := t.(*types.Named)
	return ok && enumTypes[named.Obj().Name()]
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
