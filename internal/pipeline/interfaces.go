package pipeline

// Processor is any component that can process a LineContext and return
// a modified context.
type Processor interface {
	Process(ctx *LineContext) *LineContext
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx *LineContext) *LineContext

func (f ProcessorFunc) Process(ctx *LineContext) *LineContext {
	return f(ctx)
}
