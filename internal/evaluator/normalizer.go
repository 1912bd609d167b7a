package evaluator

import (
	"github.com/funvibe/boolang/internal/ast"
	"github.com/funvibe/boolang/internal/token"
)

// Normalize flattens nested operations of the same operator, bottom-up.
// Commutative-and-associative operators are flattened at every child
// position. Implication is left-to-right only, so just its first child
// may be spliced. Negation is never flattened; double negation is the
// evaluator's business.
func Normalize(expr ast.Expression) {
	operation, ok := expr.(*ast.Operation)
	if !ok {
		return
	}

	if operation.Op == token.OpNegation {
		Normalize(operation.Children[0])
		return
	}

	movable := operation.Op.Movable()

	for index := operation.ChildCount() - 1; index >= 0; index-- {
		child := operation.Children[index]

		// Children must be flat before being spliced up.
		Normalize(child)

		if (movable || index == 0) && ast.OpOf(child) == operation.Op {
			grandchildren := child.(*ast.Operation).Children
			operation.RemoveChild(index)
			operation.InsertChildren(index, grandchildren)
		}
	}
}
