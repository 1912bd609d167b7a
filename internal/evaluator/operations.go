package evaluator

import (
	"github.com/funvibe/boolang/internal/token"
)

// Binary truth functions. Multi-operand semantics of every operator is
// the left fold of its binary function, which matches how the parser
// groups chains.
func conjunction(a, b bool) bool { return a && b }
func disjunction(a, b bool) bool { return a || b }
func implication(a, b bool) bool { return !a || b }
func equality(a, b bool) bool    { return a == b }
func plus(a, b bool) bool        { return a != b }

var opFuncs = map[token.Op]func(bool, bool) bool{
	token.OpConjunction: conjunction,
	token.OpDisjunction: disjunction,
	token.OpImplication: implication,
	token.OpEquality:    equality,
	token.OpPlus:        plus,
}

// PerformOperation applies op to the operand values. Negation takes
// exactly one value; every other operator left-folds over two or more.
func PerformOperation(op token.Op, values []bool) bool {
	if op == token.OpNegation {
		return !values[0]
	}

	fn := opFuncs[op]
	result := values[0]
	for _, value := range values[1:] {
		result = fn(result, value)
	}
	return result
}
