package compiler

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/builtin"
	"github.com/Nyrox/motokigo/lang/types"
)

func (c *compiler) compileStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		c.compileVarDecl(n)
	case *ast.AssignStmt:
		c.compileAssign(n)
	case *ast.ReturnStmt:
		c.compileReturn(n)
	case *ast.CondStmt:
		c.compileCond(n)
	case *ast.LoopStmt:
		c.compileLoop(n)
	default:
		fail("unsupported statement %T", s)
	}
}

// compileVarDecl never emits a store: the initializer's value stays on the
// stack exactly where it was pushed, addressed from then on by the local's
// offset (§4.5 "VariableDeclaration").
func (c *compiler) compileVarDecl(n *ast.VarDeclStmt) {
	c.compileExpr(n.Init)
}

// compileAssign implements "Assignment": emit the RHS, then store it word
// by word in descending offset order so the last word popped (the value's
// lowest word) lands at the symbol's base offset.
func (c *compiler) compileAssign(n *ast.AssignStmt) {
	c.compileExpr(n.Rhs)
	emitStore(c, n.Target.Type, n.Target.Offset, n.Target.IsStatic)
}

func emitStore(c *compiler, t types.Type, base int, static bool) {
	n := t.Size(c.data.Structs) / 4
	op := Mov4
	if static {
		op = Mov4Global
	}
	for i := n - 1; i >= 0; i-- {
		c.emit(op, int32(base+i*4))
	}
}

func emitLoad(c *compiler, t types.Type, base int, static bool) {
	n := t.Size(c.data.Structs) / 4
	op := Load4
	if static {
		op = Load4Global
	}
	for i := 0; i < n; i++ {
		c.emit(op, int32(base+i*4))
	}
}

// compileReturn implements "Return": emit expression, StmtMarker, Ret(size).
func (c *compiler) compileReturn(n *ast.ReturnStmt) {
	size := 0
	if n.Expr != nil {
		c.compileExpr(n.Expr)
		size = n.Expr.ResolvedType().Size(c.data.Structs)
	}
	c.emit(StmtMarker, int32(n.Keyword.Line()))
	c.emit(Ret, int32(size))
}

// compileCond implements the if/else-if/else chain lowering.
func (c *compiler) compileCond(n *ast.CondStmt) {
	if n.Cond == nil {
		// Tail "else" arm: body inline, no branch.
		for _, s := range n.Body {
			c.compileStmt(s)
		}
		return
	}

	c.compileExpr(n.Cond)
	placeholder := c.emit(JmpZero, 0)
	for _, s := range n.Body {
		c.compileStmt(s)
	}
	if n.Alt != nil {
		skipElse := c.emit(Jmp, 0)
		c.patch(placeholder)
		c.compileCond(n.Alt)
		c.patch(skipElse)
	} else {
		c.patch(placeholder)
	}
}

// compileLoop implements the half-open numeric loop lowering.
func (c *compiler) compileLoop(n *ast.LoopStmt) {
	c.compileExpr(n.From)
	// The index local occupies the offset the resolver assigned it; the
	// pushed "from" value already sits there, so no store is needed — this
	// mirrors VariableDeclaration's "value stays where it was pushed" rule.
	idx := n.IndexSym

	condAddr := c.here()
	c.emit(Load4, int32(idx.Offset))
	c.compileExpr(n.To)
	lessEntry, _, ok := builtin.Lookup("__op_binary_less", []types.Type{types.IntType, types.IntType})
	if !ok {
		fail("missing built-in __op_binary_less(Int,Int)")
	}
	c.emit(CallBuiltIn, int32(builtin.IndexOf(lessEntry)))
	c.emit(StmtMarker, int32(n.ForPos.Line()))
	exitPlaceholder := c.emit(JmpZero, 0)

	for _, s := range n.Body {
		c.compileStmt(s)
	}

	c.emitWide(Const4, 0, 1)
	c.emit(Load4, int32(idx.Offset))
	addEntry, _, ok := builtin.Lookup("__op_binary_add", []types.Type{types.IntType, types.IntType})
	if !ok {
		fail("missing built-in __op_binary_add(Int,Int)")
	}
	c.emit(CallBuiltIn, int32(builtin.IndexOf(addEntry)))
	c.emit(Mov4, int32(idx.Offset))
	c.emit(Jmp, int32(condAddr))
	c.patch(exitPlaceholder)
}
