// Package enumvalidator reports string literals written into enum typed
// fields. An enum is a named string type with a Valid() bool method, the
// convention used by internal/model.
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

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				checkAssign(pass, node)
			case *ast.CompositeLit:
				checkCompositeLit(pass, node)
			}
			return true
		})
	}
	return nil, nil
}

func checkAssign(pass *analysis.Pass, assign *ast.AssignStmt) {
	if len(assign.Lhs) != len(assign.Rhs) {
		return
	}
	for i, lhs := range assign.Lhs {
		sel, ok := lhs.(*ast.SelectorExpr)
		if !ok || !isStringLiteral(assign.Rhs[i]) {
			continue
		}
		if name, ok := enumName(pass.TypesInfo.TypeOf(sel)); ok {
			pass.Reportf(assign.Pos(),
				"enum field %s assigned string literal; use a %s constant instead",
				sel.Sel.Name, name)
		}
	}
}

func checkCompositeLit(pass *analysis.Pass, lit *ast.CompositeLit) {
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok || !isStringLiteral(kv.Value) {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		if name, ok := enumName(pass.TypesInfo.TypeOf(kv.Key)); ok {
			pass.Reportf(kv.Pos(),
				"enum field %s set to string literal; use a %s constant instead",
				key.Name, name)
		}
	}
}

// enumName reports whether t is a named string type that has a Valid method.
func enumName(t types.Type) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Kind() != types.String {
		return "", false
	}
	for i := 0; i < named.NumMethods(); i++ {
		if named.Method(i).Name() == "Valid" {
			return named.Obj().Name(), true
		}
	}
	return "", false
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
