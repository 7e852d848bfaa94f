package pipeline

import (
	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/symbols"
	"github.com/EthanDenny/flip/internal/token"
)

// Processor is a single stage of the compiler.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the state threaded through every stage.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// RuntimeHeader is the header named by the generated #include line.
	RuntimeHeader string

	TokenStream []token.Token
	AstRoot     *ast.Program

	// SymbolTable is the global scope: builtins followed by every
	// declared function, in declaration order.
	SymbolTable *symbols.SymbolTable

	// Output is the generated host-language translation unit.
	Output string

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}

// Fail records err, attaching the file path if it has none.
func (ctx *PipelineContext) Fail(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}

// Report records any error, converting foreign errors to internal
// diagnostics.
func (ctx *PipelineContext) Report(err error) {
	ctx.Fail(diagnostics.From(err, token.Token{}))
}

// Err returns the first recorded error, or nil.
func (ctx *PipelineContext) Err() error {
	if len(ctx.Errors) == 0 {
		return nil
	}
	return ctx.Errors[0]
}
