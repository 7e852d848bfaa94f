package parser

import (
	"github.com/EthanDenny/flip/internal/pipeline"
	"github.com/EthanDenny/flip/internal/symbols"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.SymbolTable == nil {
		ctx.SymbolTable = symbols.NewGlobalSymbolTable()
	}

	program, err := New(ctx.TokenStream, ctx.SymbolTable).ParseProgram()
	if err != nil {
		ctx.Report(err)
		return ctx
	}
	program.File = ctx.FilePath
	ctx.AstRoot = program
	return ctx
}
