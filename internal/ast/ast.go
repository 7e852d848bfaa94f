package ast

import (
	"strconv"
	"strings"

	"github.com/EthanDenny/flip/internal/token"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// Node is the closed set of syntax tree nodes: FunctionDecl, Call,
// LetBinding, VarRef, IntLiteral and BoolLiteral. Nodes are immutable once
// the parser has built them.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	String() string
	node()
}

// Program is the ordered list of function declarations in a source file.
type Program struct {
	File      string
	Functions []*FunctionDecl
}

func (p *Program) String() string {
	var out strings.Builder
	for i, fn := range p.Functions {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(fn.String())
	}
	return out.String()
}

// Main returns the program's entry declaration, or nil.
func (p *Program) Main(name string) *FunctionDecl {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// FunctionDecl: name(params) -> ReturnType { body }
type FunctionDecl struct {
	Token      token.Token // the name token
	Name       string
	Params     []Symbol
	ReturnType typesystem.Type
	Body       []Node

	// Symbol is the function's own entry in the enclosing scope.
	Symbol Symbol
}

// Call: name(args)
type Call struct {
	Token token.Token
	Name  string
	Args  []Node
}

// LetBinding: let(name: Type, value)
type LetBinding struct {
	Token  token.Token // the 'let' token
	Symbol Symbol
	Value  Node
}

type VarRef struct {
	Token  token.Token
	Symbol Symbol
}

type IntLiteral struct {
	Token token.Token
	Value int32
}

type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (*FunctionDecl) node() {}
func (*Call) node()         {}
func (*LetBinding) node()   {}
func (*VarRef) node()       {}
func (*IntLiteral) node()   {}
func (*BoolLiteral) node()  {}

func (n *FunctionDecl) TokenLiteral() string { return n.Token.Lexeme }
func (n *Call) TokenLiteral() string         { return n.Token.Lexeme }
func (n *LetBinding) TokenLiteral() string   { return n.Token.Lexeme }
func (n *VarRef) TokenLiteral() string       { return n.Token.Lexeme }
func (n *IntLiteral) TokenLiteral() string   { return n.Token.Lexeme }
func (n *BoolLiteral) TokenLiteral() string  { return n.Token.Lexeme }

func (n *FunctionDecl) GetToken() token.Token { return n.Token }
func (n *Call) GetToken() token.Token         { return n.Token }
func (n *LetBinding) GetToken() token.Token   { return n.Token }
func (n *VarRef) GetToken() token.Token       { return n.Token }
func (n *IntLiteral) GetToken() token.Token   { return n.Token }
func (n *BoolLiteral) GetToken() token.Token  { return n.Token }

func (n *FunctionDecl) String() string {
	var out strings.Builder
	out.WriteString(n.Name)
	out.WriteString("(")
	for i, p := range n.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Name + ": " + p.Type.String())
	}
	out.WriteString(") -> ")
	out.WriteString(n.ReturnType.String())
	out.WriteString(" {")
	for _, stmt := range n.Body {
		out.WriteString(" ")
		out.WriteString(stmt.String())
	}
	out.WriteString(" }")
	return out.String()
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n *LetBinding) String() string {
	return "let(" + n.Symbol.Name + ": " + n.Symbol.Type.String() + ", " + n.Value.String() + ")"
}

func (n *VarRef) String() string      { return n.Symbol.Name }
func (n *IntLiteral) String() string  { return strconv.Itoa(int(n.Value)) }
func (n *BoolLiteral) String() string { return strconv.FormatBool(n.Value) }
