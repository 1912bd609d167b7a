package functions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/funvibe/boolang/internal/functions"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/parser"
	"github.com/funvibe/boolang/internal/symbols"
)

// newStore seeds a store through the parser so bodies look exactly the
// way the engine would build them.
func newStore(t *testing.T, lines ...string) *symbols.Store {
	t.Helper()
	store := symbols.NewStore()
	for _, line := range lines {
		variable, err := parser.New(store).Parse(lexer.New(line))
		require.NoError(t, err, "line %q", line)
		require.NoError(t, store.Insert(variable))
	}
	return store
}

// call runs one `call ...` line through the registry.
func call(t *testing.T, store *symbols.Store, line string) (string, error) {
	t.Helper()
	registry := functions.NewRegistry()
	require.True(t, lexer.IsFunctionCall(lexer.New(line)), "line %q", line)
	output, err := registry.ParseAndCall(store, lexer.New(line))
	if err != nil {
		return "", err
	}
	return output.String(), nil
}

func TestRegistryContents(t *testing.T) {
	registry := functions.NewRegistry()

	for _, name := range []string{
		"print", "display", "display_all", "eval", "compare",
		"table", "copy", "remove", "remove_all",
	} {
		assert.NotNil(t, registry.Find(name), "builtin %q", name)
	}
	assert.Nil(t, registry.Find("nope"))
	assert.Len(t, registry.Names(), 9)
}

func TestPrint(t *testing.T) {
	store := symbols.NewStore()

	out, err := call(t, store, "call print(hello, world)")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", out)

	out, err = call(t, store, "call print()")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDisplay(t *testing.T) {
	store := newStore(t, "x := 1", "and2(a, b) := a & b")

	out, err := call(t, store, "call display(and2, x)")
	require.NoError(t, err)
	assert.Equal(t, "and2(a, b) := (a & b)\nx := 1", out)

	_, err = call(t, store, "call display(ghost)")
	require.EqualError(t, err, "Parameter 'ghost' of function 'display' must be an existing variable name.")

	_, err = call(t, store, "call display()")
	require.EqualError(t, err, "Function 'display' can't have empty list of parameters.")
}

func TestDisplayAll(t *testing.T) {
	store := newStore(t, "x := 1", "and2(a, b) := a & b")

	out, err := call(t, store, "call display_all()")
	require.NoError(t, err)
	assert.Equal(t, "x := 1\nand2(a, b) := (a & b)", out)

	// No parentheses is a zero-argument call too.
	out, err = call(t, store, "call display_all")
	require.NoError(t, err)
	assert.Equal(t, "x := 1\nand2(a, b) := (a & b)", out)

	out, err = call(t, symbols.NewStore(), "call display_all()")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestEval(t *testing.T) {
	// The parser alone leaves the body unreduced; eval rewrites it in
	// place.
	store := symbols.NewStore()
	variable, err := parser.New(store).Parse(lexer.New("f(a, b) := a & b & a"))
	require.NoError(t, err)
	require.NoError(t, store.Insert(variable))

	out, err := call(t, store, "call eval(f)")
	require.NoError(t, err)
	assert.Equal(t, "f(a, b) := (a & b)", out)
	assert.Equal(t, "(a & b)", store.Find("f").Body.String())

	// eval is idempotent on its own output.
	out, err = call(t, store, "call eval(f)")
	require.NoError(t, err)
	assert.Equal(t, "f(a, b) := (a & b)", out)
}

func TestCompare(t *testing.T) {
	store := newStore(t,
		"f1(a, b) := a & b",
		"f2(a, b) := b & a",
		"g1(a, b) := a | b",
		"one := 1",
	)

	out, err := call(t, store, "call compare(f1, f2)")
	require.NoError(t, err)
	assert.Equal(t, "Variables 'f1' and 'f2' are equal.", out)

	out, err = call(t, store, "call compare(f1, g1)")
	require.NoError(t, err)
	assert.Equal(t,
		"Variables 'f1' and 'g1' are not equal. Different results on parameter combination (0, 1).",
		out)

	out, err = call(t, store, "call compare(f1, one)")
	require.NoError(t, err)
	assert.Equal(t, "Variables 'f1' and 'one' are not equal. Different number of parameters.", out)

	_, err = call(t, store, "call compare(f1)")
	require.EqualError(t, err,
		"Incorrect amount of parameters during call of function 'compare'. Expected amount - 2, actual amount - 1.")
}

func TestTable(t *testing.T) {
	store := newStore(t, "and2(a, b) := a & b")

	out, err := call(t, store, "call table(and2)")
	require.NoError(t, err)

	want := strings.Join([]string{
		"-----------------",
		"| a | b || and2 |",
		"-----------------",
		"| 0 | 0 ||    0 |",
		"| 0 | 1 ||    0 |",
		"| 1 | 0 ||    0 |",
		"| 1 | 1 ||    1 |",
		"-----------------",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestTableZeroParams(t *testing.T) {
	store := newStore(t, "x := 1")

	out, err := call(t, store, "call table(x)")
	require.NoError(t, err)

	want := strings.Join([]string{
		"------",
		"|| x |",
		"------",
		"|| 1 |",
		"------",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestTableWideName(t *testing.T) {
	store := newStore(t, "result(flag) := !flag")

	out, err := call(t, store, "call table(result)")
	require.NoError(t, err)

	want := strings.Join([]string{
		"------------------",
		"| flag || result |",
		"------------------",
		"|    0 ||      1 |",
		"|    1 ||      0 |",
		"------------------",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestCopy(t *testing.T) {
	store := newStore(t, "and2(a, b) := a & b")

	out, err := call(t, store, "call copy(c2, and2)")
	require.NoError(t, err)
	assert.Equal(t, "c2(a, b) := (a & b)", out)

	copied := store.Find("c2")
	source := store.Find("and2")
	require.NotNil(t, copied)
	assert.NotEqual(t, source.ID, copied.ID)

	_, err = call(t, store, "call copy(c2, and2)")
	require.EqualError(t, err, "Parameter 'c2' of function 'copy' must not be an existing variable name.")

	_, err = call(t, store, "call copy(c3, ghost)")
	require.EqualError(t, err, "Parameter 'ghost' of function 'copy' must be an existing variable name.")
}

func TestRemove(t *testing.T) {
	store := newStore(t, "x := 1", "y := 0")

	out, err := call(t, store, "call remove(x)")
	require.NoError(t, err)
	assert.Equal(t, "Variable 'x' was removed.", out)
	assert.Nil(t, store.Find("x"))
	assert.NotNil(t, store.Find("y"))

	_, err = call(t, store, "call remove(x)")
	require.EqualError(t, err, "Usage of undefined variable 'x'.")

	out, err = call(t, store, "call remove_all()")
	require.NoError(t, err)
	assert.Equal(t, "All variables were removed.", out)
	assert.Zero(t, store.Len())
}

func TestCallErrors(t *testing.T) {
	store := newStore(t, "x := 1")

	testCases := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"unknown_function", "call nope(x)", "Call of undefined function 'nope'."},
		{"reserved_function_name", "call true(x)", "Function name 'true' can't be reserved word."},
		{"arity_table", "call table(x, x)", "Incorrect amount of parameters during call of function 'table'. Expected amount - 1, actual amount - 2."},
		{"arity_remove_all", "call remove_all(x)", "Incorrect amount of parameters during call of function 'remove_all'. Expected amount - 0, actual amount - 1."},
		{"unbalanced", "call table(x", "Closing bracket is missing."},
		{"garbage_after", "call table(x) y", "Extra characters are detected after closing bracket."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := call(t, store, tc.line)
			require.EqualError(t, err, tc.wantErr)
		})
	}
}
