// Package builtins holds the static table of primitive operators. The
// parser seeds the global scope from it and the code generator expands
// matching calls inline.
package builtins

import (
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// Op identifies a primitive operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpGt
	OpLt
	OpGte
	OpLte
	OpAnd
	OpOr
	OpNot
	OpIf
	OpEmpty
	OpLen
	OpHead
	OpTail
	OpCons
	OpIsNull
)

// Builtin is one entry of the operator table.
type Builtin struct {
	Op     Op
	Name   string
	Params []typesystem.Type
	Return typesystem.Type
}

var (
	tInt  = typesystem.Int
	tBool = typesystem.Bool
	tT    = typesystem.Generic("T")
	tList = typesystem.List(tT)
)

func sig(params ...typesystem.Type) []typesystem.Type {
	return append([]typesystem.Type{}, params...)
}

// table is built once; its order is the inline match order.
var table = []Builtin{
	{OpAdd, config.AddFuncName, sig(tInt, tInt), tInt},
	{OpSub, config.SubFuncName, sig(tInt, tInt), tInt},
	{OpMul, config.MulFuncName, sig(tInt, tInt), tInt},
	{OpDiv, config.DivFuncName, sig(tInt, tInt), tInt},
	{OpMod, config.ModFuncName, sig(tInt, tInt), tInt},

	{OpEq, config.EqFuncName, sig(tT, tT), tBool},
	{OpNeq, config.NeqFuncName, sig(tT, tT), tBool},
	{OpGt, config.GtFuncName, sig(tT, tT), tBool},
	{OpLt, config.LtFuncName, sig(tT, tT), tBool},
	{OpGte, config.GteFuncName, sig(tT, tT), tBool},
	{OpLte, config.LteFuncName, sig(tT, tT), tBool},

	{OpAnd, config.AndFuncName, sig(tBool, tBool), tBool},
	{OpOr, config.OrFuncName, sig(tBool, tBool), tBool},
	{OpNot, config.NotFuncName, sig(tBool), tBool},

	{OpIf, config.IfFuncName, sig(tBool, tT, tT), tT},

	{OpEmpty, config.EmptyFuncName, sig(), tList},
	{OpLen, config.LenFuncName, sig(tList), tInt},
	{OpHead, config.HeadFuncName, sig(tList), tT},
	{OpTail, config.TailFuncName, sig(tList), tList},
	{OpCons, config.ConsFuncName, sig(tT, tList), tList},
	{OpIsNull, config.IsNullFuncName, sig(tList), tBool},
}

// All returns the operator table in match order.
func All() []Builtin {
	return table
}

// Match returns the first operator named name whose parameter types unify
// with argTypes.
func Match(name string, argTypes []typesystem.Type) (Builtin, bool) {
	for _, b := range table {
		if b.Name != name {
			continue
		}
		if _, ok := typesystem.UnifyAll(argTypes, b.Params); ok {
			return b, true
		}
	}
	return Builtin{}, false
}
