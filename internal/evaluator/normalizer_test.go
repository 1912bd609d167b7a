package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/funvibe/boolang/internal/evaluator"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/parser"
	"github.com/funvibe/boolang/internal/symbols"
)

// parseBody parses one declaration line without running any rewrite
// stage, so tests control exactly which pass is exercised.
func parseBody(t *testing.T, line string) *symbols.Variable {
	t.Helper()
	variable, err := parser.New(symbols.NewStore()).Parse(lexer.New(line))
	require.NoError(t, err)
	return variable
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"flat_stays", "f(a, b) := a & b", "(a & b)"},
		{"conjunction_splices", "f(a, b, c) := a & (b & c)", "(a & b & c)"},
		{"deep_splice", "f(a, b, c, d) := (a & (b & c)) & d", "(a & b & c & d)"},
		{"mixed_ops_kept", "f(a, b, c) := a & (b | c)", "(a & (b | c))"},
		{"disjunction_splices", "f(a, b, c) := (a | b) | c", "(a | b | c)"},
		{"equality_splices", "f(a, b, c) := a = (b = c)", "(a = b = c)"},
		{"plus_splices", "f(a, b, c) := (a + b) + (c + a)", "(a + b + c + a)"},
		{"implication_first_child", "f(a, b, c) := (a -> b) -> c", "(a -> b -> c)"},
		{"implication_later_child_kept", "f(a, b, c) := a -> (b -> c)", "(a -> (b -> c))"},
		{"negation_never_spliced", "f(a, b) := !(a & b) & a", "(!((a & b)) & a)"},
		{"inside_negation", "f(a, b, c) := !(a & (b & c))", "!((a & b & c))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			variable := parseBody(t, tc.input)
			evaluator.Normalize(variable.Body)
			require.Equal(t, tc.want, variable.Body.String())
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"f(a, b, c) := a & (b & c)",
		"f(a, b, c) := (a -> b) -> (c -> a)",
		"f(a, b, c, d) := ((a | b) | (c | d)) | a",
		"f(a, b) := !(!(a & (a & b)))",
	}

	for _, input := range inputs {
		variable := parseBody(t, input)
		evaluator.Normalize(variable.Body)
		once := variable.Body.String()
		evaluator.Normalize(variable.Body)
		require.Equal(t, once, variable.Body.String(), "input %q", input)
	}
}
