package parser

import (
	"github.com/funvibe/boolang/internal/pipeline"
	"github.com/funvibe/boolang/internal/symbols"
)

// Processor is the pipeline stage turning the line cursor into a parsed
// variable.
type Processor struct {
	store *symbols.Store
}

func NewProcessor(store *symbols.Store) *Processor {
	return &Processor{store: store}
}

func (pp *Processor) Process(ctx *pipeline.LineContext) *pipeline.LineContext {
	variable, err := New(pp.store).Parse(ctx.Cursor)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Variable = variable
	return ctx
}
