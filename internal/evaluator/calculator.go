package evaluator

import (
	"github.com/funvibe/boolang/internal/ast"
)

// Calculate computes the value of expr under one concrete assignment of
// its owning declaration's parameters.
func Calculate(expr ast.Expression, paramValues []bool) bool {
	switch node := expr.(type) {
	case *ast.Literal:
		return node.Value

	case *ast.ParamRef:
		return paramValues[node.Index]

	case *ast.Operation:
		values := make([]bool, node.ChildCount())
		for index, child := range node.Children {
			values[index] = Calculate(child, paramValues)
		}
		return PerformOperation(node.Op, values)
	}

	return false
}
