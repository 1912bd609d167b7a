package evaluator

import (
	"github.com/funvibe/boolang/internal/pipeline"
)

// Pipeline stages rewriting the parsed variable's body in place. Each
// assumes the parser stage has populated ctx.Variable.

type NormalizeProcessor struct{}

func (NormalizeProcessor) Process(ctx *pipeline.LineContext) *pipeline.LineContext {
	Normalize(ctx.Variable.Body)
	return ctx
}

type SimplifyProcessor struct{}

func (SimplifyProcessor) Process(ctx *pipeline.LineContext) *pipeline.LineContext {
	ctx.Variable.Body = Simplify(ctx.Variable.Body)
	return ctx
}

type EvaluateProcessor struct{}

func (EvaluateProcessor) Process(ctx *pipeline.LineContext) *pipeline.LineContext {
	ctx.Variable.Body = Evaluate(ctx.Variable.Body)
	return ctx
}
