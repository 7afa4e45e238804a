package resolver

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/types"
)

// resolveFunc implements §4.4 step 5 for one function: it establishes the
// parameter scope and walks the body.
func (r *resolver) resolveFunc(fn *ast.FuncDecl) {
	r.fn = fn.Meta
	r.scope = newScope(fn.Meta)
	r.resolveBlock(fn.Body)
	r.fn = nil
	r.scope = nil
}

// resolveBlock resolves a statement list in a child scope: declarations
// made inside do not leak to the caller's scope.
func (r *resolver) resolveBlock(body []ast.Stmt) {
	saved := r.scope
	child := make(map[string]*sym.Symbol, len(saved))
	for k, v := range saved {
		child[k] = v
	}
	r.scope = child
	for _, s := range body {
		r.resolveStmt(s)
	}
	r.scope = saved
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		r.resolveVarDecl(n)
	case *ast.AssignStmt:
		r.resolveAssign(n)
	case *ast.ReturnStmt:
		r.resolveReturn(n)
	case *ast.CondStmt:
		r.resolveCond(n)
	case *ast.LoopStmt:
		r.resolveLoop(n)
	default:
		fail(TypeError, s.Span().From, "unsupported statement")
	}
}

func (r *resolver) resolveVarDecl(n *ast.VarDeclStmt) {
	t := r.resolveExpr(n.Init)
	if t.IsVoid() {
		fail(TypeError, n.Let, "cannot declare %q with a void value", n.Name)
	}
	local := &sym.Symbol{
		Name: n.Name, Type: t, Offset: r.fn.FrameSize, IsMutable: n.IsMut,
	}
	r.fn.FrameSize += t.Size(r.data.Structs)
	r.fn.Declare(local)
	r.scope[n.Name] = local
	n.Resolved = local
}

func (r *resolver) resolveAssign(n *ast.AssignStmt) {
	target, ok := r.scope[n.Name]
	if !ok {
		target, ok = r.data.Globals[n.Name]
	}
	if !ok {
		fail(UnknownSymbol, n.NamePos, "undefined symbol %q", n.Name)
	}
	if !target.IsMutable {
		fail(AssignmentToImmutable, n.NamePos, "cannot assign to immutable %q", n.Name)
	}
	rt := r.resolveExpr(n.Rhs)
	if !types.Equal(rt, target.Type) {
		fail(TypeError, n.NamePos, "cannot assign %s to %q of type %s", rt, n.Name, target.Type)
	}
	n.Target = target
}

func (r *resolver) resolveReturn(n *ast.ReturnStmt) {
	want := r.fn.ReturnType
	if n.Expr == nil {
		if !want.IsVoid() {
			fail(TypeError, n.Keyword, "missing return value for function returning %s", want)
		}
		return
	}
	got := r.resolveExpr(n.Expr)
	if !types.Equal(got, want) {
		fail(TypeError, n.Keyword, "return type mismatch: expected %s, got %s", want, got)
	}
}

// resolveCond implements the if/else-if/else chain (§3 Statement::Conditional).
// A condition may be Int or Float; nonzero is true (§4.4 Conditional, no
// dedicated boolean type).
func (r *resolver) resolveCond(n *ast.CondStmt) {
	if n.Cond != nil {
		ct := r.resolveExpr(n.Cond)
		if ct.Kind != types.I32 && ct.Kind != types.F32 {
			fail(TypeError, n.If, "if condition must be Int or Float, got %s", ct)
		}
	}
	r.resolveBlock(n.Body)
	if n.Alt != nil {
		r.resolveCond(n.Alt)
	}
}

// resolveLoop implements the half-open numeric loop (§3 Statement::Loop):
// `for index = from to to { body }`. The index symbol is pre-inserted,
// immutable, before the body is resolved.
func (r *resolver) resolveLoop(n *ast.LoopStmt) {
	fromT := r.resolveExpr(n.From)
	toT := r.resolveExpr(n.To)
	if fromT.Kind != types.I32 {
		fail(TypeError, n.ForPos, "loop bound 'from' must be Int, got %s", fromT)
	}
	if toT.Kind != types.I32 {
		fail(TypeError, n.ForPos, "loop bound 'to' must be Int, got %s", toT)
	}

	saved := r.scope
	child := make(map[string]*sym.Symbol, len(saved)+1)
	for k, v := range saved {
		child[k] = v
	}
	idxSym := &sym.Symbol{
		Name: n.IndexName, Type: types.IntType, Offset: r.fn.FrameSize, IsMutable: false,
	}
	r.fn.FrameSize += types.IntType.Size(r.data.Structs)
	r.fn.Declare(idxSym)
	child[n.IndexName] = idxSym
	n.IndexSym = idxSym

	r.scope = child
	for _, st := range n.Body {
		r.resolveStmt(st)
	}
	r.scope = saved
}
