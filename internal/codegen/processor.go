package codegen

import (
	"github.com/EthanDenny/flip/internal/pipeline"
)

type CodegenProcessor struct{}

func (cp *CodegenProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	output, err := New(ctx.SymbolTable, ctx.RuntimeHeader).Generate(ctx.AstRoot)
	if err != nil {
		ctx.Report(err)
		return ctx
	}
	ctx.Output = output
	return ctx
}
