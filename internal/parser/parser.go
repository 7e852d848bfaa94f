// Package parser builds the syntax tree of a flip program. Parsing is
// syntax-directed: every declaration registers its symbols while it is
// read, and each function body is checked against its declared return
// type as soon as the body is complete.
package parser

import (
	"fmt"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/symbols"
	"github.com/EthanDenny/flip/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int

	curToken token.Token

	// globals is the scope function declarations are registered in.
	globals *symbols.SymbolTable
}

// New creates a parser over tokens. globals must already hold the builtin
// operator signatures; see symbols.NewGlobalSymbolTable.
func New(tokens []token.Token, globals *symbols.SymbolTable) *Parser {
	p := &Parser{tokens: tokens, globals: globals, pos: -1}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.pos++
	p.curToken = p.at(p.pos)
}

func (p *Parser) at(i int) token.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		return token.Token{Type: token.EOF, Line: last.Line, Column: last.Column}
	}
	return token.Token{Type: token.EOF, Line: 1}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// expect consumes the current token if it has type t.
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	tok := p.curToken
	if tok.Type != t {
		return tok, p.syntaxError(describe(t), tok)
	}
	p.nextToken()
	return tok, nil
}

func (p *Parser) syntaxError(expected string, got token.Token) error {
	return diagnostics.NewErrorf(diagnostics.ErrP001, got, "expected %s, got %s", expected, got)
}

func describe(t token.TokenType) string {
	switch t {
	case token.IDENT:
		return "identifier"
	case token.INT:
		return "integer"
	case token.EOF:
		return "end of file"
	}
	return fmt.Sprintf("'%s'", t)
}

// ParseProgram parses function declarations until the end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		fn, err := p.parseFunctionDecl(p.globals)
		if err != nil {
			return nil, err
		}
		program.Functions = append(program.Functions, fn)
	}
	return program, nil
}
