package glsl

import "github.com/Nyrox/motokigo/lang/ast"

func (e *emitter) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		e.varDecl(n)
	case *ast.AssignStmt:
		e.line(n.Name + " = " + e.expr(n.Rhs) + ";")
	case *ast.ReturnStmt:
		e.returnStmt(n)
	case *ast.CondStmt:
		e.cond(n, true)
	case *ast.LoopStmt:
		e.loop(n)
	}
}

func (e *emitter) varDecl(n *ast.VarDeclStmt) {
	t := glslType(n.Resolved.Type)
	e.line(t + " " + n.Name + " = " + e.expr(n.Init) + ";")
}

func (e *emitter) returnStmt(n *ast.ReturnStmt) {
	if n.Expr == nil {
		e.line("return;")
		return
	}
	e.line("return " + e.expr(n.Expr) + ";")
}

// cond renders the if/else-if/else chain of §4.7: "if (bool(<cond>)) { ...
// } else { ... }".
func (e *emitter) cond(n *ast.CondStmt, head bool) {
	switch {
	case n.Cond != nil && head:
		e.line("if (bool(" + e.expr(n.Cond) + ")) {")
	case n.Cond != nil:
		e.line("} else if (bool(" + e.expr(n.Cond) + ")) {")
	default:
		e.line("} else {")
	}
	e.depth++
	for _, s := range n.Body {
		e.stmt(s)
	}
	e.depth--
	if n.Alt != nil {
		e.cond(n.Alt, false)
	} else {
		e.line("}")
	}
}

// loop renders the C-style "for (int i=<from>; i<<to>; i++) { ... }".
func (e *emitter) loop(n *ast.LoopStmt) {
	header := "for (int " + n.IndexName + " = " + e.expr(n.From) +
		"; " + n.IndexName + " < " + e.expr(n.To) + "; " + n.IndexName + "++) {"
	e.line(header)
	e.depth++
	for _, s := range n.Body {
		e.stmt(s)
	}
	e.depth--
	e.line("}")
}
