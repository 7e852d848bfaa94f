package parser

import (
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/token"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// parseType parses a TypeName. Names other than the builtin types are
// generic placeholders.
func (p *Parser) parseType() (typesystem.Type, error) {
	if p.curTokenIs(token.LBRACKET) {
		p.nextToken()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return typesystem.List(elem), nil
	}

	tok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, p.syntaxError("type name", tok)
	}
	switch tok.Lexeme {
	case config.IntTypeName:
		return typesystem.Int, nil
	case config.BoolTypeName:
		return typesystem.Bool, nil
	case config.NoneTypeName:
		return typesystem.None, nil
	case config.FnTypeName:
		return typesystem.Func(typesystem.Int), nil
	}
	return typesystem.Generic(tok.Lexeme), nil
}
