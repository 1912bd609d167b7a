package engine

import (
	"context"
	"log/slog"

	"github.com/funvibe/boolang/internal/evaluator"
	"github.com/funvibe/boolang/internal/functions"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/parser"
	"github.com/funvibe/boolang/internal/pipeline"
	"github.com/funvibe/boolang/internal/prettyprinter"
	"github.com/funvibe/boolang/internal/symbols"
)

// Engine processes one input line at a time: declarations and bare
// expressions run through the rewrite pipeline, `call` lines go to the
// builtin registry. A failed line leaves the store untouched; the
// engine stays usable for the next line.
type Engine struct {
	store    *symbols.Store
	registry *functions.Registry
	line     *pipeline.Pipeline
	log      *slog.Logger
}

func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}

	store := symbols.NewStore()

	return &Engine{
		store:    store,
		registry: functions.NewRegistry(),
		line: pipeline.New(
			parser.NewProcessor(store),
			evaluator.NormalizeProcessor{},
			evaluator.SimplifyProcessor{},
			evaluator.EvaluateProcessor{},
		),
		log: log,
	}
}

// Store exposes the variable store, mainly for tests and embedders.
func (e *Engine) Store() *symbols.Store {
	return e.store
}

// Process handles one line and returns its output. Blank and
// comment-only lines produce empty output. On error nothing is stored.
func (e *Engine) Process(line string) (string, error) {
	cur := lexer.New(line).StripComment()

	if cur.IsBlank() {
		return "", nil
	}

	if lexer.IsFunctionCall(cur) {
		return e.processCall(cur)
	}

	return e.processDeclaration(cur)
}

func (e *Engine) processCall(cur lexer.Cursor) (string, error) {
	output, err := e.registry.ParseAndCall(e.store, cur)
	if err != nil {
		return "", err
	}
	return output.String(), nil
}

func (e *Engine) processDeclaration(cur lexer.Cursor) (string, error) {
	ctx := e.line.Run(pipeline.NewLineContext(cur))
	if ctx.Err != nil {
		return "", ctx.Err
	}

	variable := ctx.Variable
	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		printer := prettyprinter.NewTreePrinter()
		printer.PrintVariable(variable)
		e.log.Debug("rewritten tree",
			"trace_id", ctx.TraceID, "tree", printer.String())
	}

	if variable.Name == "" {
		e.log.Debug("anonymous expression",
			"trace_id", ctx.TraceID, "body", variable.Body.String())
		return variable.String(), nil
	}

	if err := e.store.Insert(variable); err != nil {
		return "", err
	}

	e.log.Debug("variable declared",
		"trace_id", ctx.TraceID, "variable_id", variable.ID,
		"name", variable.Name, "params", variable.ParamCount())

	return variable.String(), nil
}
