package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/funvibe/boolang/internal/lexer"
)

func TestCursorTrim(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"  a & b  ", "a & b"},
		{"\t x \t", "x"},
		{"", ""},
		{"   ", ""},
		{"x", "x"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, lexer.New(tc.input).Trim().String(), "input %q", tc.input)
	}
}

func TestCursorStripComment(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"x := 1 # comment", "x := 1 "},
		{"# whole line", ""},
		{"no comment", "no comment"},
		{"a # b # c", "a "},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, lexer.New(tc.input).StripComment().String(), "input %q", tc.input)
	}
}

func TestCursorIsBlank(t *testing.T) {
	assert.True(t, lexer.New("").IsBlank())
	assert.True(t, lexer.New(" \t ").IsBlank())
	assert.False(t, lexer.New(" x ").IsBlank())
}

func TestCursorSlicing(t *testing.T) {
	cur := lexer.New("abcdef")

	assert.Equal(t, "abc", cur.Left(3).String())
	assert.Equal(t, "def", cur.Right(3).String())
	assert.Equal(t, "cdef", cur.RemoveLeft(2).String())
	assert.Equal(t, "abcd", cur.RemoveRight(2).String())
	assert.Equal(t, byte('c'), cur.At(2))
	assert.Equal(t, 6, cur.Len())
}

func TestIsFunctionCall(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"call f(x)", true},
		{"  call f(x)", true},
		{"call", true},
		{"call\tdisplay_all", true},
		{"caller := 1", false},
		{"x := call", false},
		{"recall f(x)", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, lexer.IsFunctionCall(lexer.New(tc.input)), "input %q", tc.input)
	}
}

func TestTrimFunctionCall(t *testing.T) {
	assert.Equal(t, "f(x)", lexer.TrimFunctionCall(lexer.New("  call   f(x)")).String())
	assert.Equal(t, "", lexer.TrimFunctionCall(lexer.New("call")).String())
}

func TestCheckQualifier(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "and2", ""},
		{"empty", "", "Variable name can't be empty."},
		{"not_qualifier", "a b", "Variable name 'a b' is not a qualifier."},
		{"digit_first", "1a", "Variable name '1a' is not a qualifier."},
		{"reserved", "false", "Variable name 'false' can't be reserved word."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := lexer.CheckQualifier(lexer.New(tc.input), "Variable name")
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr)
			}
		})
	}
}
