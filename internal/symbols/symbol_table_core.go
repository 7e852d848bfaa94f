package symbols

import (
	"github.com/EthanDenny/flip/internal/ast"
)

type ScopeType int

const (
	ScopePrelude  ScopeType = iota // Built-in operators
	ScopeGlobal                    // Function declarations
	ScopeFunction                  // Parameters and let-bindings of one body
)

// Symbol is re-exported from ast so callers need only this package.
type Symbol = ast.Symbol

// SymbolTable is one lexical scope: an append-only, ordered list of
// symbols plus a link to the enclosing scope. A nested scope shares its
// outer scopes instead of copying them.
//
// Lookups scan from the outermost scope inward and, within a scope, in
// insertion order, returning the first match. An inner declaration that
// reuses an outer name is therefore found after the outer one: outer
// bindings win.
type SymbolTable struct {
	symbols   []Symbol
	outer     *SymbolTable
	scopeType ScopeType
}

func (s *SymbolTable) ScopeType() ScopeType {
	return s.scopeType
}

// Outer returns the enclosing scope, or nil for the prelude.
func (s *SymbolTable) Outer() *SymbolTable {
	return s.outer
}
