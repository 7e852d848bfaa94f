package symbols

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	return &SymbolTable{outer: outer, scopeType: scopeType}
}

// Define appends sym to this scope.
func (s *SymbolTable) Define(sym Symbol) {
	s.symbols = append(s.symbols, sym)
}

// Each calls fn for every visible symbol in scan order until fn returns
// false.
func (s *SymbolTable) Each(fn func(Symbol) bool) {
	s.each(fn)
}

func (s *SymbolTable) each(fn func(Symbol) bool) bool {
	if s.outer != nil && !s.outer.each(fn) {
		return false
	}
	for _, sym := range s.symbols {
		if !fn(sym) {
			return false
		}
	}
	return true
}

// Find returns the first visible symbol named name.
func (s *SymbolTable) Find(name string) (Symbol, bool) {
	var found Symbol
	ok := false
	s.Each(func(sym Symbol) bool {
		if sym.Name == name {
			found, ok = sym, true
			return false
		}
		return true
	})
	return found, ok
}

// Functions returns the visible function symbols named name, in scan order.
func (s *SymbolTable) Functions(name string) []Symbol {
	var fns []Symbol
	s.Each(func(sym Symbol) bool {
		if sym.Name == name && sym.IsFunction() {
			fns = append(fns, sym)
		}
		return true
	})
	return fns
}

// CountUserFunctions returns how many non-builtin functions named name are
// visible. The parser uses it as the overload index of the next one.
func (s *SymbolTable) CountUserFunctions(name string) int {
	n := 0
	for _, sym := range s.Functions(name) {
		if !sym.Builtin {
			n++
		}
	}
	return n
}
