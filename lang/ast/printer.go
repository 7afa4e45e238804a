package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented dump of prog to w, for the CLI's
// "dump" command.
func Print(w io.Writer, prog *Program) {
	p := &printer{w: w}
	p.program(prog)
}

type printer struct {
	w     io.Writer
	depth int
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}

func (p *printer) indent(f func()) {
	p.depth++
	f()
	p.depth--
}

func (p *printer) program(prog *Program) {
	p.line("program")
	p.indent(func() {
		for _, s := range prog.Structs {
			p.structDecl(s)
		}
		for _, in := range prog.Inputs {
			p.inParam(in)
		}
		for _, fn := range prog.Funcs {
			p.funcDecl(fn)
		}
	})
}

func (p *printer) structDecl(d *StructDecl) {
	p.line("struct %s", d.Name)
	p.indent(func() {
		for _, m := range d.Members {
			p.line("%s %s", m.Type.Name, m.Name)
		}
	})
}

func (p *printer) inParam(d *InParamDecl) {
	kw := "in"
	if d.IsUniform {
		kw = "uniform"
	}
	p.line("%s %s %s", kw, d.Type.Name, d.Name)
}

func (p *printer) funcDecl(d *FuncDecl) {
	params := make([]string, len(d.Params))
	for i, pa := range d.Params {
		params[i] = fmt.Sprintf("%s %s", pa.Type.Name, pa.Name)
	}
	p.line("func %s %s(%s)", d.ReturnType.Name, d.Name, strings.Join(params, ", "))
	p.indent(func() {
		for _, s := range d.Body {
			p.stmt(s)
		}
	})
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *VarDeclStmt:
		mut := ""
		if s.IsMut {
			mut = "mut "
		}
		p.line("let %s%s =", mut, s.Name)
		p.indent(func() { p.expr(s.Init) })
	case *AssignStmt:
		p.line("assign %s =", s.Name)
		p.indent(func() { p.expr(s.Rhs) })
	case *ReturnStmt:
		p.line("return")
		if s.Expr != nil {
			p.indent(func() { p.expr(s.Expr) })
		}
	case *CondStmt:
		if s.Cond != nil {
			p.line("if")
			p.indent(func() { p.expr(s.Cond) })
		} else {
			p.line("else")
		}
		p.indent(func() {
			for _, st := range s.Body {
				p.stmt(st)
			}
		})
		if s.Alt != nil {
			p.stmt(s.Alt)
		}
	case *LoopStmt:
		p.line("for %s =", s.IndexName)
		p.indent(func() {
			p.expr(s.From)
			p.expr(s.To)
			for _, st := range s.Body {
				p.stmt(st)
			}
		})
	default:
		p.line("<unknown stmt %T>", s)
	}
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case *LiteralExpr:
		if e.IsFloat {
			p.line("float %v", e.FloatVal)
		} else {
			p.line("int %v", e.IntVal)
		}
	case *IdentExpr:
		p.line("ident %s", e.Name)
	case *CallExpr:
		p.line("call %s", e.Callee)
		p.indent(func() {
			for _, a := range e.Args {
				p.expr(a)
			}
		})
	case *FieldExpr:
		p.line("field .%s", e.Field)
		p.indent(func() { p.expr(e.Base) })
	case *StructLitExpr:
		p.line("struct-lit %s", e.TypeName)
		p.indent(func() {
			for _, f := range e.Fields {
				p.line("%s:", f.Name)
				p.indent(func() { p.expr(f.Expr) })
			}
		})
	case *ParenExpr:
		p.line("paren")
		p.indent(func() { p.expr(e.Inner) })
	default:
		p.line("<unknown expr %T>", e)
	}
}
