package symbols

import (
	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/builtins"
)

// NewPrelude returns a scope holding one function symbol per builtin
// operator, in table order.
func NewPrelude() *SymbolTable {
	st := &SymbolTable{scopeType: ScopePrelude}
	for _, b := range builtins.All() {
		sym := ast.NewFuncSymbol(b.Name, b.Params, b.Return)
		sym.Builtin = true
		st.Define(sym)
	}
	return st
}

// NewGlobalSymbolTable returns the scope user functions are declared in.
func NewGlobalSymbolTable() *SymbolTable {
	return NewEnclosedSymbolTable(NewPrelude(), ScopeGlobal)
}
