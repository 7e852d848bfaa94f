package symbols

import (
	"fmt"
	"strings"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// NodeType resolves the concrete type of node.
func (s *SymbolTable) NodeType(node ast.Node) (typesystem.Type, error) {
	switch n := node.(type) {
	case *ast.FunctionDecl:
		return typesystem.Func(n.ReturnType), nil
	case *ast.LetBinding:
		return nil, diagnostics.NewErrorf(diagnostics.ErrA003, n.Token,
			"let-binding of %q cannot be used as a value", n.Symbol.Name)
	case *ast.Call:
		_, t, err := s.ResolveCall(n)
		return t, err
	case *ast.VarRef:
		return n.Symbol.Type, nil
	case *ast.IntLiteral:
		return typesystem.Int, nil
	case *ast.BoolLiteral:
		return typesystem.Bool, nil
	}
	return nil, fmt.Errorf("unknown node %T", node)
}

// ArgTypes resolves the type of every argument of a call.
func (s *SymbolTable) ArgTypes(args []ast.Node) ([]typesystem.Type, error) {
	types := make([]typesystem.Type, len(args))
	for i, arg := range args {
		t, err := s.NodeType(arg)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

// CompareTypes reports whether args unify pairwise with goalTypes under a
// fresh substitution.
func (s *SymbolTable) CompareTypes(args []ast.Node, goalTypes []typesystem.Type) (bool, error) {
	if len(args) != len(goalTypes) {
		return false, nil
	}
	argTypes, err := s.ArgTypes(args)
	if err != nil {
		return false, err
	}
	_, ok := typesystem.UnifyAll(argTypes, goalTypes)
	return ok, nil
}

// FindFunction returns the first function symbol named name whose
// parameters unify with argTypes. Table order breaks ties.
func (s *SymbolTable) FindFunction(name string, argTypes []typesystem.Type) (Symbol, bool) {
	for _, sym := range s.Functions(name) {
		if _, ok := typesystem.UnifyAll(argTypes, sym.ParamTypes); ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// ResolveCall picks the overload a call dispatches to and computes its
// concrete result type.
func (s *SymbolTable) ResolveCall(call *ast.Call) (Symbol, typesystem.Type, error) {
	argTypes, err := s.ArgTypes(call.Args)
	if err != nil {
		return Symbol{}, nil, err
	}

	sym, ok := s.FindFunction(call.Name, argTypes)
	if !ok {
		return Symbol{}, nil, diagnostics.NewErrorf(diagnostics.ErrA001, call.Token,
			"no overload of %q accepts (%s)", call.Name, strings.Join(typesystem.Names(argTypes), ", "))
	}

	subst := typesystem.BindPositional(sym.ParamTypes, argTypes)
	t, err := typesystem.Substitute(sym.Type, subst)
	if err != nil {
		return Symbol{}, nil, diagnostics.NewErrorf(diagnostics.ErrA002, call.Token,
			"call to %q: %s", call.Name, err)
	}
	return sym, t, nil
}
