package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Nyrox/motokigo/lang/ast"
)

// expr renders e as GLSL source text. Every operator and intrinsic call
// delegates its surface syntax to the built-in registry's GLSLTemplate via
// CallExpr.Builtin.Generate, so the same table drives both the VM and this
// backend (§4.7).
func (e *emitter) expr(x ast.Expr) string {
	switch n := x.(type) {
	case *ast.LiteralExpr:
		return literal(n)
	case *ast.IdentExpr:
		return n.Name
	case *ast.ParenExpr:
		return "(" + e.expr(n.Inner) + ")"
	case *ast.CallExpr:
		return e.call(n)
	case *ast.FieldExpr:
		return e.expr(n.Base) + "." + n.Field
	case *ast.StructLitExpr:
		return e.structLit(n)
	default:
		return "/* unsupported expression */"
	}
}

func literal(n *ast.LiteralExpr) string {
	if n.IsFloat {
		s := strconv.FormatFloat(n.FloatVal, 'g', -1, 32)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatInt(n.IntVal, 10)
}

func (e *emitter) call(n *ast.CallExpr) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.expr(a)
	}
	if n.Builtin != nil {
		return n.Builtin.Generate(args)
	}
	name := n.Callee
	if name == "main" {
		name = "__impl_main"
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (e *emitter) structLit(n *ast.StructLitExpr) string {
	decl := e.data.Structs.Get(n.Type.ID)
	byName := make(map[string]ast.Expr, len(n.Fields))
	for _, f := range n.Fields {
		byName[f.Name] = f.Expr
	}
	args := make([]string, len(decl.Members))
	for i, m := range decl.Members {
		args[i] = e.expr(byName[m.Name])
	}
	return fmt.Sprintf("%s(%s)", n.TypeName, strings.Join(args, ", "))
}
