package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/builtins"
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// compileNode returns the C expression for node. The result is always an
// identifier, a literal, or fully parenthesized.
func (g *Generator) compileNode(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return strconv.Itoa(int(n.Value)), nil
	case *ast.BoolLiteral:
		return boolLiteral(n.Value), nil
	case *ast.VarRef:
		return identifier(n.Symbol.Name), nil
	case *ast.Call:
		return g.compileCall(n)
	case *ast.LetBinding:
		return "", diagnostics.NewErrorf(diagnostics.ErrA003, n.Token,
			"let-binding of %q cannot be used as a value", n.Symbol.Name)
	}
	return "", diagnostics.NewErrorf(diagnostics.ErrI001, node.GetToken(), "cannot compile %T", node)
}

// compileCall expands primitive operators inline and turns every other
// call into a closure invocation.
func (g *Generator) compileCall(call *ast.Call) (string, error) {
	argTypes, err := g.scope.ArgTypes(call.Args)
	if err != nil {
		return "", err
	}

	if b, ok := builtins.Match(call.Name, argTypes); ok {
		return g.compileInline(b, call, argTypes)
	}

	sym, ok := g.scope.FindFunction(call.Name, argTypes)
	if !ok || sym.Builtin {
		return "", diagnostics.NewErrorf(diagnostics.ErrC001, call.Token,
			"unrecognized function %s(%s)", call.Name, strings.Join(typesystem.Names(argTypes), ", "))
	}
	if sym.Name == config.MainFuncName && sym.Overload == 0 {
		return "", diagnostics.NewErrorf(diagnostics.ErrC001, call.Token,
			"%q is the entry point and cannot be called", sym.Name)
	}

	_, result, err := g.scope.ResolveCall(call)
	if err != nil {
		return "", err
	}

	args, err := g.compileArgs(call.Args)
	if err != nil {
		return "", err
	}
	for i := range args {
		args[i] = convert(args[i], argTypes[i], sym.ParamTypes[i])
	}

	return fmt.Sprintf("(eval(%s(%s)).%s)", factoryName(sym), strings.Join(args, ", "), accessor(result)), nil
}

func (g *Generator) compileArgs(nodes []ast.Node) ([]string, error) {
	codes := make([]string, len(nodes))
	for i, node := range nodes {
		code, err := g.compileNode(node)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}

var binaryOperators = map[builtins.Op]string{
	builtins.OpAdd: "+",
	builtins.OpSub: "-",
	builtins.OpMul: "*",
	builtins.OpDiv: "/",
	builtins.OpMod: "%",
	builtins.OpEq:  "==",
	builtins.OpNeq: "!=",
	builtins.OpGt:  ">",
	builtins.OpLt:  "<",
	builtins.OpGte: ">=",
	builtins.OpLte: "<=",
	builtins.OpAnd: "&&",
	builtins.OpOr:  "||",
}

// compileInline splices the operands of a primitive call into its C
// pattern. Conditionals with a literal condition keep only the taken
// branch.
func (g *Generator) compileInline(b builtins.Builtin, call *ast.Call, argTypes []typesystem.Type) (string, error) {
	switch b.Op {
	case builtins.OpIf:
		if cond, ok := call.Args[0].(*ast.BoolLiteral); ok {
			if cond.Value {
				return g.compileNode(call.Args[1])
			}
			return g.compileNode(call.Args[2])
		}
	case builtins.OpNot:
		if operand, ok := call.Args[0].(*ast.BoolLiteral); ok {
			return boolLiteral(!operand.Value), nil
		}
	}

	args, err := g.compileArgs(call.Args)
	if err != nil {
		return "", err
	}

	switch b.Op {
	case builtins.OpAdd, builtins.OpSub, builtins.OpMul, builtins.OpDiv, builtins.OpMod,
		builtins.OpEq, builtins.OpNeq, builtins.OpGt, builtins.OpLt, builtins.OpGte, builtins.OpLte,
		builtins.OpAnd, builtins.OpOr:
		return fmt.Sprintf("(%s %s %s)", args[0], binaryOperators[b.Op], args[1]), nil
	case builtins.OpNot:
		return fmt.Sprintf("(%s ? 0 : 1)", args[0]), nil
	case builtins.OpIf:
		return fmt.Sprintf("(%s ? %s : %s)", args[0], args[1], args[2]), nil
	case builtins.OpEmpty:
		return "NULL", nil
	case builtins.OpLen:
		return fmt.Sprintf("(len(%s))", args[0]), nil
	case builtins.OpHead:
		if typesystem.IsList(elemType(argTypes[0])) {
			return fmt.Sprintf("((list)(%s->head))", args[0]), nil
		}
		return fmt.Sprintf("(%s->head)", args[0]), nil
	case builtins.OpTail:
		return fmt.Sprintf("(%s->tail)", args[0]), nil
	case builtins.OpCons:
		return fmt.Sprintf("(push(%s, (long)%s))", args[1], args[0]), nil
	case builtins.OpIsNull:
		return fmt.Sprintf("(%s == NULL)", args[0]), nil
	}
	return "", diagnostics.NewErrorf(diagnostics.ErrI001, call.Token, "no inline expansion for %q", b.Name)
}

// elemType returns the element type of a list type, or nil.
func elemType(t typesystem.Type) typesystem.Type {
	if l, ok := typesystem.UnwrapFn(t).(typesystem.TList); ok {
		return l.Elem
	}
	return nil
}

func boolLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
