package parser

import (
	"errors"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/symbols"
	"github.com/EthanDenny/flip/internal/token"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// parseFunctionDecl parses
//
//	name(a: T, b: U) -> R { stmt* }
//
// The function's symbol is defined in scope before its body is parsed, so
// the body may call itself.
func (p *Parser) parseFunctionDecl(scope *symbols.SymbolTable) (*ast.FunctionDecl, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionDecl{Token: nameTok, Name: nameTok.Lexeme}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	fn.Params, err = p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	fn.ReturnType = typesystem.None
	if p.curTokenIs(token.ARROW) {
		p.nextToken()
		fn.ReturnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	paramTypes := make([]typesystem.Type, len(fn.Params))
	for i, param := range fn.Params {
		paramTypes[i] = param.Type
	}
	fn.Symbol = ast.NewFuncSymbol(fn.Name, paramTypes, typesystem.Func(fn.ReturnType))
	fn.Symbol.Overload = scope.CountUserFunctions(fn.Name)
	scope.Define(fn.Symbol)

	body := symbols.NewEnclosedSymbolTable(scope, symbols.ScopeFunction)
	for _, param := range fn.Params {
		body.Define(param)
	}

	fn.Body, err = p.parseBlock(body)
	if err != nil {
		return nil, err
	}

	if err := checkReturnType(fn, body); err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *Parser) parseParams() ([]ast.Symbol, error) {
	params := []ast.Symbol{}
	for !p.curTokenIs(token.RPAREN) {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.NewVarSymbol(nameTok.Lexeme, t))

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.curTokenIs(token.RPAREN) {
			return nil, p.syntaxError("',' or ')'", p.curToken)
		}
	}
	return params, nil
}

// parseBlock parses the brace-delimited statements of a body. Let-bindings
// are defined in scope as they are read.
func (p *Parser) parseBlock(scope *symbols.SymbolTable) ([]ast.Node, error) {
	open, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	var stmts []ast.Node
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, p.syntaxError("'}'", p.curToken)
		}

		var stmt ast.Node
		if p.curTokenIs(token.LET) {
			stmt, err = p.parseLet(scope)
		} else {
			stmt, err = p.parseExpression(scope)
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.nextToken()

	if len(stmts) == 0 {
		return nil, diagnostics.NewError(diagnostics.ErrP001, open, "function body is empty")
	}
	return stmts, nil
}

// parseLet parses let(name: T, value).
func (p *Parser) parseLet(scope *symbols.SymbolTable) (*ast.LetBinding, error) {
	letTok := p.curToken
	p.nextToken()

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if err := checkLetType(nameTok.Lexeme, t, value, scope); err != nil {
		return nil, err
	}

	sym := ast.NewVarSymbol(nameTok.Lexeme, t)
	scope.Define(sym)
	return &ast.LetBinding{Token: letTok, Symbol: sym, Value: value}, nil
}

// checkLetType compares the type of a let value with its annotation. A
// call whose arguments resolve but whose result keeps an unbound generic,
// such as empty(), takes the annotated type.
func checkLetType(name string, declared typesystem.Type, value ast.Node, scope *symbols.SymbolTable) error {
	got, err := scope.NodeType(value)
	if err != nil {
		var de *diagnostics.DiagnosticError
		if call, ok := value.(*ast.Call); ok && errors.As(err, &de) && de.Code == diagnostics.ErrA002 {
			if _, argErr := scope.ArgTypes(call.Args); argErr == nil {
				return nil
			}
		}
		return err
	}
	got = typesystem.UnwrapFn(got)
	if typesystem.Equal(got, typesystem.UnwrapFn(declared)) {
		return nil
	}
	return diagnostics.NewErrorf(diagnostics.ErrA001, value.GetToken(),
		"let-binding %q declared as %s, got %s", name, declared, got)
}

// checkReturnType compares the type of the last body statement with the
// declared return type. main is also accepted when its body is an Int.
func checkReturnType(fn *ast.FunctionDecl, scope *symbols.SymbolTable) error {
	last := fn.Body[len(fn.Body)-1]
	got, err := scope.NodeType(last)
	if err != nil {
		return err
	}
	got = typesystem.UnwrapFn(got)

	if typesystem.Equal(got, typesystem.UnwrapFn(fn.ReturnType)) {
		return nil
	}
	if fn.Name == config.MainFuncName && typesystem.Equal(got, typesystem.Int) {
		return nil
	}
	return diagnostics.NewErrorf(diagnostics.ErrA001, fn.Token,
		"expected function %q to return %s, got %s", fn.Name, fn.ReturnType, got)
}
