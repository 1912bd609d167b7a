package functions

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/funvibe/boolang/internal/diagnostics"
	"github.com/funvibe/boolang/internal/evaluator"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/symbols"
)

// print echoes each argument as its own line.
func printFunc(_ *symbols.Store, args []lexer.Cursor) (*Output, error) {
	return NewOutput(lo.Map(args, func(arg lexer.Cursor, _ int) string {
		return arg.String()
	})...), nil
}

// display emits the canonical string of each named variable.
func displayFunc(store *symbols.Store, args []lexer.Cursor) (*Output, error) {
	if len(args) == 0 {
		return nil, diagnostics.NewSemanticError(diagnostics.ErrS010, "display")
	}

	variables := make([]*symbols.Variable, len(args))
	for i, arg := range args {
		variable, err := checkVariableArg(store, "display", arg, true)
		if err != nil {
			return nil, err
		}
		variables[i] = variable
	}

	return NewOutput(lo.Map(variables, func(v *symbols.Variable, _ int) string {
		return v.String()
	})...), nil
}

// display_all emits every stored variable in insertion order.
func displayAllFunc(store *symbols.Store, _ []lexer.Cursor) (*Output, error) {
	output := NewOutput()
	for _, variable := range store.All() {
		output.AddLine(variable.String())
	}
	return output, nil
}

// eval rewrites a stored variable's body in place with the algebraic
// evaluator and emits the updated variable.
func evalFunc(store *symbols.Store, args []lexer.Cursor) (*Output, error) {
	variable, err := checkVariableArg(store, "eval", args[0], true)
	if err != nil {
		return nil, err
	}

	evaluator.Normalize(variable.Body)
	variable.Body = evaluator.Evaluate(variable.Body)

	return NewOutput(variable.String()), nil
}

// copy inserts a fresh-named deep copy of an existing variable.
func copyFunc(store *symbols.Store, args []lexer.Cursor) (*Output, error) {
	if _, err := checkVariableArg(store, "copy", args[0], false); err != nil {
		return nil, err
	}
	source, err := checkVariableArg(store, "copy", args[1], true)
	if err != nil {
		return nil, err
	}

	copied := source.Copy(args[0].String())
	if err := store.Insert(copied); err != nil {
		return nil, err
	}

	return NewOutput(copied.String()), nil
}

func removeFunc(store *symbols.Store, args []lexer.Cursor) (*Output, error) {
	if err := lexer.CheckQualifier(args[0], "Variable name"); err != nil {
		return nil, err
	}
	// The store reports absence itself; no lookup needed here.
	if err := store.Remove(args[0].String()); err != nil {
		return nil, err
	}
	return NewOutput(fmt.Sprintf("Variable '%s' was removed.", args[0].String())), nil
}

func removeAllFunc(store *symbols.Store, _ []lexer.Cursor) (*Output, error) {
	store.RemoveAll()
	return NewOutput("All variables were removed."), nil
}
