package functions

import (
	"github.com/funvibe/boolang/internal/diagnostics"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/symbols"
)

// AnyArity marks a function accepting any number of arguments.
const AnyArity = -1

// Handler implements one builtin. Arguments arrive as trimmed cursors;
// the handler decides whether they name variables or are plain text.
type Handler func(store *symbols.Store, args []lexer.Cursor) (*Output, error)

// Function is one entry of the builtin registry.
type Function struct {
	Name    string
	Arity   int
	Handler Handler
}

// Registry maps builtin names to implementations. It is built once at
// engine construction and read-only afterwards.
type Registry struct {
	functions map[string]*Function
}

// NewRegistry builds the full builtin table.
func NewRegistry() *Registry {
	r := &Registry{functions: make(map[string]*Function)}
	r.add("print", AnyArity, printFunc)
	r.add("display", AnyArity, displayFunc)
	r.add("display_all", 0, displayAllFunc)
	r.add("eval", 1, evalFunc)
	r.add("compare", 2, compareFunc)
	r.add("table", 1, tableFunc)
	r.add("copy", 2, copyFunc)
	r.add("remove", 1, removeFunc)
	r.add("remove_all", 0, removeAllFunc)
	return r
}

func (r *Registry) add(name string, arity int, handler Handler) {
	r.functions[name] = &Function{Name: name, Arity: arity, Handler: handler}
}

func (r *Registry) Find(name string) *Function {
	return r.functions[name]
}

// Names returns the registered builtin names, for logs and tests.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	return names
}

// ParseAndCall handles a `call NAME(arg1, ...)` line, with the call
// keyword already verified by the caller.
func (r *Registry) ParseAndCall(store *symbols.Store, cur lexer.Cursor) (*Output, error) {
	cur = lexer.TrimFunctionCall(cur)

	if err := lexer.CheckBracketBalance(cur); err != nil {
		return nil, err
	}

	var content lexer.BracketsContent
	name, err := content.Parse(cur)
	if err != nil {
		return nil, err
	}

	name = name.Trim()
	if err := lexer.CheckQualifier(name, "Function name"); err != nil {
		return nil, err
	}

	function := r.Find(name.String())
	if function == nil {
		return nil, diagnostics.NewSemanticError(diagnostics.ErrS006, name.String())
	}

	var args []lexer.Cursor
	for {
		part, ok := content.NextPart()
		if !ok {
			break
		}
		args = append(args, part.Trim())
	}

	if function.Arity != AnyArity && len(args) != function.Arity {
		return nil, diagnostics.NewSemanticError(
			diagnostics.ErrS007, function.Name, function.Arity, len(args))
	}

	return function.Handler(store, args)
}

// checkVariableArg validates arg as a qualifier and resolves it in the
// store. With mustExist false the arg must NOT name a stored variable.
func checkVariableArg(store *symbols.Store, fn string, arg lexer.Cursor, mustExist bool) (*symbols.Variable, error) {
	if err := lexer.CheckQualifier(arg, "Variable name"); err != nil {
		return nil, err
	}

	variable := store.Find(arg.String())
	if mustExist && variable == nil {
		return nil, diagnostics.NewSemanticError(diagnostics.ErrS008, arg.String(), fn)
	}
	if !mustExist && variable != nil {
		return nil, diagnostics.NewSemanticError(diagnostics.ErrS009, arg.String(), fn)
	}

	return variable, nil
}
