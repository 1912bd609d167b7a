package lexer

import (
	"github.com/funvibe/boolang/internal/diagnostics"
	"github.com/funvibe/boolang/internal/token"
)

// CheckQualifier validates a name cursor. what names the role of the
// qualifier in error messages ("Variable name", "Parameter name", ...).
func CheckQualifier(c Cursor, what string) error {
	if c.Len() == 0 {
		return diagnostics.NewParserError(diagnostics.ErrP002, what)
	}
	if !token.IsQualifier(c.String()) {
		return diagnostics.NewParserError(diagnostics.ErrP003, what, c.String())
	}
	if token.IsReserved(c.String()) {
		return diagnostics.NewParserError(diagnostics.ErrP004, what, c.String())
	}
	return nil
}

// IsFunctionCall reports whether the line is a `call ...` invocation:
// the call keyword followed by end of line or whitespace.
func IsFunctionCall(c Cursor) bool {
	c = c.TrimLeft()
	if !c.StartsWith(token.KeywordCall) {
		return false
	}
	rest := c.RemoveLeft(len(token.KeywordCall))
	return rest.Len() == 0 || isSpace(rest.At(0))
}

// TrimFunctionCall strips the call keyword. Callers must have checked
// IsFunctionCall first.
func TrimFunctionCall(c Cursor) Cursor {
	c = c.TrimLeft()
	return c.RemoveLeft(len(token.KeywordCall)).TrimLeft()
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
