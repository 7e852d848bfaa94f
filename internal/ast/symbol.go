package ast

import (
	"github.com/EthanDenny/flip/internal/typesystem"
)

// Symbol is a named, typed entity visible in a scope. ParamTypes is non-nil
// exactly for function symbols; several function symbols may share a name.
type Symbol struct {
	Name       string
	Type       typesystem.Type
	ParamTypes []typesystem.Type

	// Overload is the declaration index among user functions sharing Name
	// (0 for the first). It keeps generated names distinct.
	Overload int

	// Builtin marks symbols seeded from the primitive operator table.
	Builtin bool
}

func NewVarSymbol(name string, t typesystem.Type) Symbol {
	return Symbol{Name: name, Type: t}
}

func NewFuncSymbol(name string, params []typesystem.Type, t typesystem.Type) Symbol {
	if params == nil {
		params = []typesystem.Type{}
	}
	return Symbol{Name: name, Type: t, ParamTypes: params}
}

// IsFunction reports whether s names a function (possibly overloaded).
func (s Symbol) IsFunction() bool {
	return s.ParamTypes != nil
}
