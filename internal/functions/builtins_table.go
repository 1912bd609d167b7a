package functions

import (
	"fmt"
	"strings"

	"github.com/funvibe/boolang/internal/evaluator"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/symbols"
	"github.com/funvibe/boolang/internal/token"
)

const (
	charVertLine = "|"
	charHorzLine = "-"
	charFiller   = " "
)

// table renders the full truth table of one variable. Parameter 0 is
// the most significant bit of the assignment counter, so it varies
// slowest down the rows.
func tableFunc(store *symbols.Store, args []lexer.Cursor) (*Output, error) {
	variable, err := checkVariableArg(store, "table", args[0], true)
	if err != nil {
		return nil, err
	}

	header := constructHeader(variable)
	horizontalLine := strings.Repeat(charHorzLine, len(header))

	output := NewOutput(horizontalLine, header, horizontalLine)

	generator := evaluator.NewCombinationGenerator(variable.ParamCount())
	for values := generator.First(); values != nil; values = generator.Next() {
		result := evaluator.Calculate(variable.Body, values)
		output.AddLine(constructRow(variable, values, result))
	}

	output.AddLine(horizontalLine)
	return output, nil
}

func constructHeader(variable *symbols.Variable) string {
	var sb strings.Builder

	for _, param := range variable.Params {
		sb.WriteString(charVertLine)
		sb.WriteString(charFiller)
		sb.WriteString(param)
		sb.WriteString(charFiller)
	}

	sb.WriteString(charVertLine)
	sb.WriteString(charVertLine)
	sb.WriteString(charFiller)
	sb.WriteString(variable.Name)
	sb.WriteString(charFiller)
	sb.WriteString(charVertLine)

	return sb.String()
}

// constructRow right-aligns each value in a field as wide as its
// column's name, so rows line up with the header exactly.
func constructRow(variable *symbols.Variable, values []bool, result bool) string {
	var sb strings.Builder

	for index, param := range variable.Params {
		sb.WriteString(charVertLine)
		sb.WriteString(charFiller)
		sb.WriteString(fmt.Sprintf("%*s", len(param), token.LiteralString(values[index])))
		sb.WriteString(charFiller)
	}

	sb.WriteString(charVertLine)
	sb.WriteString(charVertLine)
	sb.WriteString(charFiller)
	sb.WriteString(fmt.Sprintf("%*s", len(variable.Name), token.LiteralString(result)))
	sb.WriteString(charFiller)
	sb.WriteString(charVertLine)

	return sb.String()
}
