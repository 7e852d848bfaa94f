package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/typesystem"
)

// reserved holds C keywords and the names generated code and the runtime
// header define.
var reserved = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"args": true, "cursor": true, "main": true, "printf": true, "malloc": true, "NULL": true,
	"fn": true, "list": true, "list_node": true, "lambda": true, "lambda_t": true,
	"return_t": true, "eval": true, "len": true, "push": true,
}

// generatedPrefixes start every name the generator or runtime introduces.
var generatedPrefixes = []string{config.FactoryPrefix, config.EvalPrefix, "flip_", "v_"}

// identifier maps a flip variable name to a C identifier. Names that are
// not valid C, are reserved, or start with a generated prefix become v_
// followed by the escaped name.
func identifier(name string) string {
	if isCIdent(name) && !reserved[name] && !hasGeneratedPrefix(name) {
		return name
	}
	return "v_" + mangle(name)
}

func hasGeneratedPrefix(name string) bool {
	for _, prefix := range generatedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func factoryName(sym ast.Symbol) string {
	return functionName(config.FactoryPrefix, sym)
}

func evalName(sym ast.Symbol) string {
	return functionName(config.EvalPrefix, sym)
}

// functionName gives the n-th overload of a name the suffix _n.
func functionName(prefix string, sym ast.Symbol) string {
	name := prefix + mangle(sym.Name)
	if sym.Overload > 0 {
		name += "_" + strconv.Itoa(sym.Overload)
	}
	return name
}

// mangle escapes every character outside [A-Za-z0-9] as a fixed-width
// _xNN (ASCII), _uNNNN or _UNNNNNNNN. Escaping _ too means every _ in the
// result comes from an escape or an overload suffix, so distinct names
// never mangle alike.
func mangle(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r != '_' && isIdentRune(r) {
			sb.WriteRune(r)
			continue
		}
		switch {
		case r < 0x80:
			fmt.Fprintf(&sb, "_x%02x", r)
		case r < 0x10000:
			fmt.Fprintf(&sb, "_u%04x", r)
		default:
			fmt.Fprintf(&sb, "_U%08x", r)
		}
	}
	return sb.String()
}

func isCIdent(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return false
	}
	for _, r := range name {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// hostType is the C type values of t are stored in. Every non-list value,
// including list elements and generics, travels as a long.
func hostType(t typesystem.Type) string {
	if typesystem.IsList(t) {
		return "list"
	}
	return "long"
}

func zeroValue(t typesystem.Type) string {
	if typesystem.IsList(t) {
		return "NULL"
	}
	return "0"
}

// accessor selects the return_t field holding a value of type t.
func accessor(t typesystem.Type) string {
	if typesystem.IsList(t) {
		return "as_l"
	}
	return "as_i"
}

// convert casts code from the host type of from to the host type of to.
func convert(code string, from, to typesystem.Type) string {
	if hostType(from) == hostType(to) {
		return code
	}
	return "(" + hostType(to) + ")" + code
}

func paramList(params []ast.Symbol) string {
	if len(params) == 0 {
		return "void"
	}
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = hostType(param.Type) + " " + identifier(param.Name)
	}
	return strings.Join(parts, ", ")
}
