// symbols/symbol_table.go - Scope table entry point
//
// The scope table is split into focused files:
// - symbol_table_core.go: SymbolTable struct and scope kinds
// - symbol_table_init.go: prelude seeded from the builtin operator table
// - symbol_table_operations.go: define, lookup and iteration
// - symbol_table_resolution.go: node typing and overload resolution

package symbols
