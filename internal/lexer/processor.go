package lexer

import (
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/pipeline"
	"github.com/EthanDenny/flip/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens := New(ctx.SourceCode).Tokenize()

	last := tokens[len(tokens)-1]
	if last.Type == token.ILLEGAL {
		ctx.Fail(diagnostics.NewErrorf(diagnostics.ErrL001, last, "illegal token %q", last.Lexeme))
		return ctx
	}

	ctx.TokenStream = tokens
	return ctx
}
