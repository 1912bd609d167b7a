package pipeline

// Pipeline represents a sequence of processing stages applied to one
// input line.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Once a stage sets ctx.Err the remaining
// stages are not called and the context is returned as is, so the
// first error wins and the line is abandoned as a whole.
func (p *Pipeline) Run(initialCtx *LineContext) *LineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.Err != nil {
			return ctx
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
