package functions

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/funvibe/boolang/internal/evaluator"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/symbols"
	"github.com/funvibe/boolang/internal/token"
)

// compare reports whether two variables compute the same truth table.
// Assignments are enumerated in canonical order and the first mismatch
// is reported.
func compareFunc(store *symbols.Store, args []lexer.Cursor) (*Output, error) {
	first, err := checkVariableArg(store, "compare", args[0], true)
	if err != nil {
		return nil, err
	}
	second, err := checkVariableArg(store, "compare", args[1], true)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("Variables '%s' and '%s' are ", first.Name, second.Name)

	if first.ParamCount() != second.ParamCount() {
		return NewOutput(prefix + "not equal. Different number of parameters."), nil
	}

	generator := evaluator.NewCombinationGenerator(first.ParamCount())
	for values := generator.First(); values != nil; values = generator.Next() {
		if evaluator.Calculate(first.Body, values) != evaluator.Calculate(second.Body, values) {
			return NewOutput(fmt.Sprintf(
				"%snot equal. Different results on parameter combination (%s).",
				prefix, formatCombination(values))), nil
		}
	}

	return NewOutput(prefix + "equal."), nil
}

func formatCombination(values []bool) string {
	return strings.Join(lo.Map(values, func(value bool, _ int) string {
		return token.LiteralString(value)
	}), ", ")
}
