package pipeline

import (
	"github.com/google/uuid"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/symbols"
)

// LineContext holds all the data passed between pipeline stages while
// one input line is processed.
type LineContext struct {
	// TraceID tags log records produced for this line.
	TraceID uuid.UUID

	// Cursor is the comment-stripped input.
	Cursor lexer.Cursor

	// Variable is filled by the parser stage and rewritten in place by
	// the normalize/simplify/evaluate stages.
	Variable *symbols.Variable

	// Err is the first failure; later stages are skipped once set.
	Err error
}

// NewLineContext creates a context for one input line.
func NewLineContext(cursor lexer.Cursor) *LineContext {
	return &LineContext{
		TraceID: uuid.New(),
		Cursor:  cursor,
	}
}
