// Package glsl translates a resolved AST into a GLSL 330 core translation
// unit (§4.7), delegating every operator and intrinsic's text to the
// built-in registry's GLSL template so the same table that drives the VM
// also drives this backend.
package glsl

import (
	"fmt"
	"strings"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/types"
)

// Emit renders prog (already resolved, with data its ProgramData) as one
// GLSL 330 core source file. The user's "main" function becomes
// "__impl_main"; a synthesized "void main()" calls it and assigns the
// result to a declared "out" named out_0.
func Emit(prog *ast.Program, data *sym.Program) string {
	e := &emitter{data: data}
	e.line("#version 330 core")
	e.line("")

	e.structDecls(prog)
	e.inputs(prog)
	e.line("")

	for _, fn := range prog.Funcs {
		e.funcDecl(fn)
		e.line("")
	}

	e.mainWrapper(prog)
	return e.b.String()
}

type emitter struct {
	b     strings.Builder
	data  *sym.Program
	depth int
}

func (e *emitter) line(s string) {
	if s != "" {
		e.b.WriteString(strings.Repeat("    ", e.depth))
		e.b.WriteString(s)
	}
	e.b.WriteByte('\n')
}

// glslType implements the §4.7 type-mapping table.
func glslType(t types.Type) string {
	switch t.Kind {
	case types.Void:
		return "void"
	case types.I32:
		return "int"
	case types.F32:
		return "float"
	case types.Vector:
		return fmt.Sprintf("vec%d", t.Rows)
	case types.Matrix:
		if t.Rows == t.Cols {
			return fmt.Sprintf("mat%d", t.Rows)
		}
		return fmt.Sprintf("mat%dx%d", t.Rows, t.Cols)
	case types.Struct:
		return t.Name
	default:
		return "<invalid>"
	}
}

// structDecls emits every user struct, in declared-member order, ahead of
// the prelude — the same order the resolver used to fix bytecode field
// offsets, so both backends agree on layout.
func (e *emitter) structDecls(prog *ast.Program) {
	for _, d := range prog.Structs {
		decl := e.data.Structs.Get(d.ID)
		e.line(fmt.Sprintf("struct %s {", d.Name))
		e.depth++
		for _, m := range decl.Members {
			e.line(fmt.Sprintf("%s %s;", glslType(m.Type), m.Name))
		}
		e.depth--
		e.line("};")
		e.line("")
	}
}

func (e *emitter) inputs(prog *ast.Program) {
	for _, in := range prog.Inputs {
		kw := "in"
		if in.IsUniform {
			kw = "uniform"
		}
		e.line(fmt.Sprintf("%s %s %s;", kw, glslType(in.Resolved.Type), in.Name))
	}
}

func (e *emitter) funcDecl(fn *ast.FuncDecl) {
	name := fn.Name
	if name == "main" {
		name = "__impl_main"
	}

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", glslType(p.Resolved.Type), p.Name)
	}
	e.line(fmt.Sprintf("%s %s(%s) {", glslType(fn.Meta.ReturnType), name, strings.Join(params, ", ")))
	e.depth++
	for _, s := range fn.Body {
		e.stmt(s)
	}
	e.depth--
	e.line("}")
}

// mainWrapper synthesizes the "void main()" GLSL entry point required by
// §4.7: it calls the user's renamed main and assigns the result to out_0.
func (e *emitter) mainWrapper(prog *ast.Program) {
	user := prog.FuncByName("main")
	if user == nil {
		return
	}
	e.line(fmt.Sprintf("out %s out_0;", glslType(user.Meta.ReturnType)))
	e.line("")
	e.line("void main() {")
	e.depth++
	e.line("out_0 = __impl_main();")
	e.depth--
	e.line("}")
}
