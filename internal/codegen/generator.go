// Package codegen translates a checked flip program into a single C
// translation unit. Primitive operators are expanded inline; every other
// function becomes a closure factory paired with an eval function that
// unpacks the closure's argument buffer.
package codegen

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/EthanDenny/flip/internal/ast"
	"github.com/EthanDenny/flip/internal/config"
	"github.com/EthanDenny/flip/internal/diagnostics"
	"github.com/EthanDenny/flip/internal/symbols"
	"github.com/EthanDenny/flip/internal/token"
	"github.com/EthanDenny/flip/internal/typesystem"
)

const indent = "    "

const preludeTemplate = `// Code generated by flip{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

#include <stdio.h>
#include <stdlib.h>
#include "{{.Header}}"
`

var prelude = template.Must(template.New("prelude").Parse(preludeTemplate))

// Generator emits C for one program. It is not safe for concurrent use.
type Generator struct {
	// scope is the global table the program was parsed into.
	scope  *symbols.SymbolTable
	header string
	buf    strings.Builder
}

func New(scope *symbols.SymbolTable, header string) *Generator {
	if header == "" {
		header = config.DefaultRuntimeHeader
	}
	return &Generator{scope: scope, header: header}
}

// Generate returns the translation unit for program. Functions are emitted
// in declaration order and the entry point last.
func (g *Generator) Generate(program *ast.Program) (string, error) {
	g.buf.Reset()

	entry := program.Main(config.MainFuncName)
	if entry == nil {
		return "", diagnostics.NewErrorf(diagnostics.ErrC002, token.Token{},
			"program has no %q function", config.MainFuncName)
	}

	source := ""
	if program.File != "" {
		source = filepath.Base(program.File)
	}
	err := prelude.Execute(&g.buf, struct{ Source, Header string }{source, g.header})
	if err != nil {
		return "", fmt.Errorf("executing prelude template: %w", err)
	}

	var closures []*ast.FunctionDecl
	for _, fn := range program.Functions {
		if fn != entry {
			closures = append(closures, fn)
		}
	}

	if len(closures) > 0 {
		g.buf.WriteString("\n")
		for _, fn := range closures {
			fmt.Fprintf(&g.buf, "return_t %s(char* args);\n", evalName(fn.Symbol))
			fmt.Fprintf(&g.buf, "fn %s(%s);\n", factoryName(fn.Symbol), paramList(fn.Params))
		}
	}

	for _, fn := range closures {
		g.buf.WriteString("\n")
		if err := g.emitEval(fn); err != nil {
			return "", err
		}
		g.buf.WriteString("\n")
		g.emitFactory(fn)
	}

	g.buf.WriteString("\n")
	if err := g.emitEntry(entry); err != nil {
		return "", err
	}
	return g.buf.String(), nil
}

// emitEval writes eval_<name>, which reads the parameters back out of the
// argument buffer in declaration order and returns the body's value.
func (g *Generator) emitEval(fn *ast.FunctionDecl) error {
	fmt.Fprintf(&g.buf, "return_t %s(char* args) {\n", evalName(fn.Symbol))
	if len(fn.Params) == 0 {
		g.buf.WriteString(indent + "(void)args;\n")
	}
	for _, param := range fn.Params {
		host := hostType(param.Type)
		fmt.Fprintf(&g.buf, "%s%s %s = get_arg(args, %s);\n", indent, host, identifier(param.Name), host)
	}

	result, err := g.emitBody(fn.Body)
	if err != nil {
		return err
	}
	fmt.Fprintf(&g.buf, "%sreturn (return_t){ .%s = %s };\n", indent, accessor(fn.ReturnType), result)
	g.buf.WriteString("}\n")
	return nil
}

// emitFactory writes fn_<name>, which packs its arguments into a fresh
// buffer in declaration order and pairs it with eval_<name>.
func (g *Generator) emitFactory(fn *ast.FunctionDecl) {
	fmt.Fprintf(&g.buf, "fn %s(%s) {\n", factoryName(fn.Symbol), paramList(fn.Params))
	if len(fn.Params) == 0 {
		fmt.Fprintf(&g.buf, "%sreturn lambda(%s, NULL);\n", indent, evalName(fn.Symbol))
		g.buf.WriteString("}\n")
		return
	}

	sizes := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		sizes[i] = "sizeof(" + hostType(param.Type) + ")"
	}
	fmt.Fprintf(&g.buf, "%schar* args = malloc(%s);\n", indent, strings.Join(sizes, " + "))
	g.buf.WriteString(indent + "char* cursor = args;\n")
	for _, param := range fn.Params {
		fmt.Fprintf(&g.buf, "%sadd_arg(cursor, %s);\n", indent, identifier(param.Name))
	}
	fmt.Fprintf(&g.buf, "%sreturn lambda(%s, args);\n", indent, evalName(fn.Symbol))
	g.buf.WriteString("}\n")
}

// emitEntry writes the C main function. Parameters of main start out
// zeroed. The value of the last statement is printed: scalars on one line,
// lists one element per line.
func (g *Generator) emitEntry(fn *ast.FunctionDecl) error {
	g.buf.WriteString("int main(void) {\n")
	for _, param := range fn.Params {
		fmt.Fprintf(&g.buf, "%s%s %s = %s;\n", indent, hostType(param.Type), identifier(param.Name), zeroValue(param.Type))
	}

	result, err := g.emitBody(fn.Body)
	if err != nil {
		return err
	}
	t, err := g.scope.NodeType(fn.Body[len(fn.Body)-1])
	if err != nil {
		return err
	}

	switch t := typesystem.UnwrapFn(t); {
	case typesystem.IsList(t):
		fmt.Fprintf(&g.buf, "%sfor (list flip_it = %s; flip_it != NULL; flip_it = flip_it->tail) {\n", indent, result)
		fmt.Fprintf(&g.buf, "%s%sprintf(\"%%ld\\n\", flip_it->head);\n", indent, indent)
		g.buf.WriteString(indent + "}\n")
	case typesystem.Equal(t, typesystem.None):
		fmt.Fprintf(&g.buf, "%s(void)%s;\n", indent, result)
	default:
		fmt.Fprintf(&g.buf, "%sprintf(\"%%ld\\n\", (long)%s);\n", indent, result)
	}

	g.buf.WriteString(indent + "return 0;\n")
	g.buf.WriteString("}\n")
	return nil
}

// emitBody writes every statement but the last and returns the compiled
// last expression.
func (g *Generator) emitBody(body []ast.Node) (string, error) {
	for _, stmt := range body[:len(body)-1] {
		if let, ok := stmt.(*ast.LetBinding); ok {
			if err := g.emitLet(let); err != nil {
				return "", err
			}
			continue
		}
		code, err := g.compileNode(stmt)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&g.buf, "%s(void)%s;\n", indent, code)
	}
	return g.compileNode(body[len(body)-1])
}

func (g *Generator) emitLet(let *ast.LetBinding) error {
	code, err := g.compileNode(let.Value)
	if err != nil {
		return err
	}
	fmt.Fprintf(&g.buf, "%s%s %s = %s;\n", indent, hostType(let.Symbol.Type), identifier(let.Symbol.Name), code)
	return nil
}
