package parser

import (
	"strconv"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/symbols"
	"github.com/EthanDenny/flip/internal/token"
)

func (p *Parser) parseExpression(scope *symbols.SymbolTable) (ast.Node, error) {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.TRUE, token.FALSE:
		lit := &ast.BoolLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
		p.nextToken()
		return lit, nil
	case token.IDENT:
		return p.parseIdentifier(scope)
	}
	return nil, p.syntaxError("expression", p.curToken)
}

func (p *Parser) parseIntegerLiteral() (ast.Node, error) {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Lexeme, 10, 32)
	if err != nil {
		return nil, diagnostics.NewErrorf(diagnostics.ErrP001, tok,
			"integer literal %s does not fit in 32 bits", tok.Lexeme)
	}
	p.nextToken()
	return &ast.IntLiteral{Token: tok, Value: int32(value)}, nil
}

// parseIdentifier resolves an identifier against scope. Function names
// start a call; anything else is a variable reference.
func (p *Parser) parseIdentifier(scope *symbols.SymbolTable) (ast.Node, error) {
	tok := p.curToken
	sym, ok := scope.Find(tok.Lexeme)
	if !ok {
		return nil, diagnostics.NewErrorf(diagnostics.ErrP002, tok, "unknown symbol %q", tok.Lexeme)
	}
	p.nextToken()

	if !sym.IsFunction() {
		return &ast.VarRef{Token: tok, Symbol: sym}, nil
	}

	args, err := p.parseCallArguments(scope)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Token: tok, Name: tok.Lexeme, Args: args}, nil
}

func (p *Parser) parseCallArguments(scope *symbols.SymbolTable) ([]ast.Node, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	args := []ast.Node{}
	for !p.curTokenIs(token.RPAREN) {
		arg, err := p.parseExpression(scope)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.curTokenIs(token.RPAREN) {
			return nil, p.syntaxError("',' or ')'", p.curToken)
		}
	}
	p.nextToken()
	return args, nil
}
