package evaluator

import (
	"github.com/samber/lo"
	"github.com/funvibe/boolang/internal/ast"
)

// Simplify folds every subtree whose leaves are all literals into a
// single literal, bottom-up, and returns the (possibly replaced) root.
// Subtrees containing a ParamRef are left intact except that concrete
// children are replaced by literal nodes in place.
func Simplify(expr ast.Expression) ast.Expression {
	value, raw := simplify(expr)
	if value != valueNone && !raw {
		return ast.NewLiteral(value == valueTrue)
	}
	return expr
}

type foldValue int8

const (
	valueNone foldValue = iota - 1
	valueFalse
	valueTrue
)

func toFoldValue(b bool) foldValue {
	if b {
		return valueTrue
	}
	return valueFalse
}

// simplify returns the concrete value of expr (valueNone when the
// subtree is not constant) and whether that value comes from a raw
// literal node rather than folding.
func simplify(expr ast.Expression) (foldValue, bool) {
	switch node := expr.(type) {
	case *ast.Literal:
		return toFoldValue(node.Value), true

	case *ast.ParamRef:
		return valueNone, false

	case *ast.Operation:
		values := make([]foldValue, node.ChildCount())
		raws := make([]bool, node.ChildCount())
		for index, child := range node.Children {
			values[index], raws[index] = simplify(child)
		}

		if lo.EveryBy(values, func(v foldValue) bool { return v != valueNone }) {
			folded := PerformOperation(node.Op, lo.Map(values, func(v foldValue, _ int) bool {
				return v == valueTrue
			}))
			return toFoldValue(folded), false
		}

		// Partially concrete: pin down the children that folded.
		for index, value := range values {
			if value != valueNone && !raws[index] {
				node.Children[index] = ast.NewLiteral(value == valueTrue)
			}
		}
		return valueNone, false
	}

	return valueNone, false
}
