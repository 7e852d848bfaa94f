// Package diagnostics defines the compiler's error taxonomy. Every failure,
// from the lexer to the code generator, is reported as a DiagnosticError
// carrying a stable code and the offending token's position.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/EthanDenny/flip/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character or malformed literal

	// Parser
	ErrP001 ErrorCode = "P001" // syntax error: missing or unexpected token
	ErrP002 ErrorCode = "P002" // unknown symbol

	// Analysis
	ErrA001 ErrorCode = "A001" // type mismatch
	ErrA002 ErrorCode = "A002" // unresolved generic in return type
	ErrA003 ErrorCode = "A003" // let-binding used as a value

	// Codegen
	ErrC001 ErrorCode = "C001" // unrecognized function
	ErrC002 ErrorCode = "C002" // program has no main

	ErrI001 ErrorCode = "I001" // internal compiler error
)

var codeNames = map[ErrorCode]string{
	ErrL001: "IllegalTokenError",
	ErrP001: "SyntaxError",
	ErrP002: "UnknownSymbolError",
	ErrA001: "TypeMismatchError",
	ErrA002: "UnresolvedGenericError",
	ErrA003: "LetBindingValueError",
	ErrC001: "UnrecognizedFunctionError",
	ErrC002: "MissingMainError",
	ErrI001: "InternalError",
}

// Name returns the human readable class of the code (e.g. "SyntaxError").
func (c ErrorCode) Name() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return string(c)
}

type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func NewErrorf(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	return NewError(code, tok, fmt.Sprintf(format, args...))
}

// From converts err to a DiagnosticError, wrapping foreign errors as
// internal errors at tok.
func From(err error, tok token.Token) *DiagnosticError {
	var de *DiagnosticError
	if errors.As(err, &de) {
		return de
	}
	return NewError(ErrI001, tok, err.Error())
}

// Line returns the source line of the error, or 0 when it has none.
func (e *DiagnosticError) Line() int {
	return e.Token.Line
}

func (e *DiagnosticError) location() string {
	switch {
	case e.File != "" && e.Token.Line > 0:
		return fmt.Sprintf("%s:%d: ", e.File, e.Token.Line)
	case e.File != "":
		return e.File + ": "
	case e.Token.Line > 0:
		return fmt.Sprintf("line %d: ", e.Token.Line)
	}
	return ""
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%serror[%s]: %s: %s", e.location(), e.Code, e.Code.Name(), e.Message)
}
