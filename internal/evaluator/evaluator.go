package evaluator

import (
	"github.com/samber/lo"
	"github.com/funvibe/boolang/internal/ast"
	"github.com/funvibe/boolang/internal/token"
)

// Evaluate applies boolean-algebra identities bottom-up and returns the
// (possibly replaced) root. It expects an already normalized tree:
// same-operator chains are flat, so each rule works on one child list.
//
// Rules per operator:
//
//	!        double negation cancellation
//	&        false absorbs; true and duplicate children drop
//	|        true absorbs; false and duplicate children drop
//	->       left-to-right: true tail-drop, false head-drop, and the
//	         pair identities (x -> x), (!x -> x), (x -> !x), (!x -> 0)
//	         applied to the first two children only
//	=        true children drop, equal pairs cancel, negation pairs
//	         unwrap, odd negation absorbs a false child
//	+        dual of = with the literal roles swapped
//
// Any non-negation node left with a single child is replaced by it.
func Evaluate(expr ast.Expression) ast.Expression {
	operation, ok := expr.(*ast.Operation)
	if !ok {
		return expr
	}

	for index, child := range operation.Children {
		operation.Children[index] = Evaluate(child)
	}

	var evaluated ast.Expression
	switch operation.Op {
	case token.OpNegation:
		evaluated = evaluateNegation(operation)
	case token.OpConjunction:
		evaluated = evaluateJunction(operation, false)
	case token.OpDisjunction:
		evaluated = evaluateJunction(operation, true)
	case token.OpImplication:
		evaluated = evaluateImplication(operation)
	case token.OpEquality:
		evaluated = evaluateParity(operation, true)
	case token.OpPlus:
		evaluated = evaluateParity(operation, false)
	}

	if evaluated != nil {
		return evaluated
	}
	if operation.Op != token.OpNegation && operation.ChildCount() == 1 {
		return operation.Children[0]
	}
	return operation
}

func evaluateNegation(operation *ast.Operation) ast.Expression {
	if inner, ok := operation.Children[0].(*ast.Operation); ok && inner.Op == token.OpNegation {
		return inner.Children[0]
	}
	return nil
}

// evaluateJunction covers conjunction and disjunction, which differ
// only in which literal absorbs the node. For conjunction absorbing is
// false and true is the identity; for disjunction the roles swap.
func evaluateJunction(operation *ast.Operation, absorbing bool) ast.Expression {
	if lo.SomeBy(operation.Children, func(child ast.Expression) bool {
		return ast.IsLiteral(child, absorbing)
	}) {
		return ast.NewLiteral(absorbing)
	}

	operation.Children = lo.Filter(operation.Children, func(child ast.Expression, _ int) bool {
		return !ast.IsLiteral(child, !absorbing)
	})
	if operation.ChildCount() == 0 {
		return ast.NewLiteral(!absorbing)
	}

	removeDuplicates(operation)
	return nil
}

// removeDuplicates drops children structurally equal to an earlier one.
func removeDuplicates(operation *ast.Operation) {
	for i := 0; i < operation.ChildCount()-1; i++ {
		for j := i + 1; j < operation.ChildCount(); {
			if operation.Children[i].Equal(operation.Children[j]) {
				operation.RemoveChild(j)
			} else {
				j++
			}
		}
	}
}

func evaluateImplication(operation *ast.Operation) ast.Expression {
	// x -> 1 -> y reads (x -> 1) -> y = 1 -> y = y: a true child drops
	// everything up to and including itself, so only the rightmost one
	// matters.
	for index := operation.ChildCount() - 1; index >= 0; index-- {
		if ast.IsLiteral(operation.Children[index], true) {
			if index == operation.ChildCount()-1 {
				return ast.NewLiteral(true)
			}
			operation.RemoveChildren(0, index+1)
			break
		}
	}

	// Head identities, applied while the leading pair keeps matching.
	for operation.ChildCount() >= 2 {
		first := operation.Children[0]
		second := operation.Children[1]

		switch {
		case ast.IsLiteral(first, false):
			// 0 -> x -> rest = 1 -> rest = rest
			operation.RemoveChildren(0, 2)

		case first.Equal(second):
			// x -> x -> rest = 1 -> rest = rest
			operation.RemoveChildren(0, 2)

		case isNegationOf(first, second) || isNegationOf(second, first):
			// !x -> x = x and x -> !x = !x: the second operand wins.
			operation.RemoveChild(0)

		case ast.OpOf(first) == token.OpNegation && ast.IsLiteral(second, false):
			// !x -> 0 = x
			unwrapped := first.(*ast.Operation).Children[0]
			operation.RemoveChildren(0, 2)
			operation.InsertChildren(0, []ast.Expression{unwrapped})

		default:
			return nil
		}

		if operation.ChildCount() == 0 {
			return ast.NewLiteral(true)
		}
	}

	return nil
}

// isNegationOf reports whether e is exactly !of.
func isNegationOf(e, of ast.Expression) bool {
	operation, ok := e.(*ast.Operation)
	return ok && operation.Op == token.OpNegation && operation.Children[0].Equal(of)
}

// evaluateParity covers equality and plus. Equality folds with true as
// the identity literal; plus with false. Equal children cancel
// pairwise, negation children unwrap pairwise, and a leftover negation
// absorbs a non-identity literal child.
func evaluateParity(operation *ast.Operation, identity bool) ast.Expression {
	operation.Children = lo.Filter(operation.Children, func(child ast.Expression, _ int) bool {
		return !ast.IsLiteral(child, identity)
	})
	if operation.ChildCount() == 0 {
		return ast.NewLiteral(identity)
	}

	if absorbDuplicatePairs(operation) {
		return ast.NewLiteral(identity)
	}

	absorbNegations(operation, !identity)

	if absorbDuplicatePairs(operation) {
		return ast.NewLiteral(identity)
	}

	return nil
}

// absorbDuplicatePairs removes children in equal pairs and reports
// whether the child list was emptied entirely.
func absorbDuplicatePairs(operation *ast.Operation) bool {
	for i := 0; i < operation.ChildCount()-1; {
		cancelled := false
		for j := i + 1; j < operation.ChildCount(); j++ {
			if operation.Children[i].Equal(operation.Children[j]) {
				operation.RemoveChild(j)
				operation.RemoveChild(i)
				cancelled = true
				break
			}
		}
		if !cancelled {
			i++
		}
	}
	return operation.ChildCount() == 0
}

// absorbNegations unwraps negation children in pairs; a single leftover
// negation absorbs one literal child with the given value, if present.
func absorbNegations(operation *ast.Operation, literal bool) {
	prevNegation := -1
	for index, child := range operation.Children {
		if ast.OpOf(child) != token.OpNegation {
			continue
		}
		if prevNegation == -1 {
			prevNegation = index
			continue
		}
		operation.Children[prevNegation] = operation.Children[prevNegation].(*ast.Operation).Children[0]
		operation.Children[index] = child.(*ast.Operation).Children[0]
		prevNegation = -1
	}

	if prevNegation == -1 {
		return
	}
	for index, child := range operation.Children {
		if ast.IsLiteral(child, literal) {
			operation.Children[prevNegation] = operation.Children[prevNegation].(*ast.Operation).Children[0]
			operation.RemoveChild(index)
			return
		}
	}
}
