package compiler

import (
	"math"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/builtin"
	"github.com/Nyrox/motokigo/lang/types"
)

// compileExpr lowers e post-order: by the time this returns, e's value sits
// on top of the stack occupying exactly e.ResolvedType().Size() bytes.
func (c *compiler) compileExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		c.compileLiteral(n)
	case *ast.IdentExpr:
		c.compileIdent(n)
	case *ast.ParenExpr:
		c.compileExpr(n.Inner)
	case *ast.CallExpr:
		c.compileCall(n)
	case *ast.FieldExpr:
		c.compileField(n)
	case *ast.StructLitExpr:
		c.compileStructLit(n)
	default:
		fail("unsupported expression %T", e)
	}
}

func (c *compiler) compileLiteral(n *ast.LiteralExpr) {
	var bits int32
	if n.IsFloat {
		bits = int32(math.Float32bits(float32(n.FloatVal)))
	} else {
		bits = int32(int32(n.IntVal))
	}
	c.emitWide(Const4, 0, bits)
}

func (c *compiler) compileIdent(n *ast.IdentExpr) {
	emitLoad(c, n.Sym.Type, n.Sym.Offset, n.Sym.IsStatic)
}

// compileCall implements "Expression lowering" for FuncCall: arguments
// left-to-right, then the call itself.
func (c *compiler) compileCall(n *ast.CallExpr) {
	for _, a := range n.Args {
		c.compileExpr(a)
	}
	switch {
	case n.Builtin != nil:
		c.emit(CallBuiltIn, int32(builtin.IndexOf(n.Builtin)))
	case n.Func != nil:
		argBytes := 0
		for _, a := range n.Args {
			argBytes += a.ResolvedType().Size(c.data.Structs)
		}
		c.emitWide(Call, int32(addressOf(n.Func)), int32(argBytes))
	default:
		fail("call %q resolved to neither a built-in nor a user function", n.Callee)
	}
}

// addressOf returns fn's entry address. Compile lowers every function
// twice, so on the final pass this is set even for a function declared
// after the call site.
func addressOf(fn *ast.FuncDecl) int { return fn.Meta.Address }

// compileStructLit pushes each member's value in declared order, regardless
// of the order the literal's "name: expr" pairs were written in source —
// the struct's byte layout is fixed by declaration order, not literal order.
func (c *compiler) compileStructLit(n *ast.StructLitExpr) {
	decl := c.data.Structs.Get(n.Type.ID)
	byName := make(map[string]ast.Expr, len(n.Fields))
	for _, f := range n.Fields {
		byName[f.Name] = f.Expr
	}
	for _, m := range decl.Members {
		c.compileExpr(byName[m.Name])
	}
}

// compileField implements "Field access": a struct member is `base_offset +
// field_offset`, size/4 successive Load4s. A vector swizzle lowers the same
// way when it is a single contiguous ascending run of components; a
// reordering or repeating swizzle (recorded by the resolver as Offset==-1)
// is rejected here exactly as specified.
func (c *compiler) compileField(n *ast.FieldExpr) {
	if n.IsSwizzle && n.Offset < 0 {
		fail("swizzle %q reorders or repeats components; only contiguous ascending swizzles are supported", n.Field)
	}
	c.compileFieldLoad(n.Base, n.Offset, n.Type)
}

// compileFieldLoad loads fieldType's words starting at base's address plus
// fieldOffset. It supports a base that is itself a local/global symbol
// (common case) and, recursively, a nested field access.
func (c *compiler) compileFieldLoad(base ast.Expr, fieldOffset int, fieldType types.Type) {
	switch b := ast.Unwrap(base).(type) {
	case *ast.IdentExpr:
		emitLoad(c, fieldType, b.Sym.Offset+fieldOffset, b.Sym.IsStatic)
	case *ast.FieldExpr:
		innerOffset := b.Offset
		if innerOffset < 0 {
			fail("swizzle %q reorders or repeats components; only contiguous ascending swizzles are supported", b.Field)
		}
		c.compileFieldLoad(b.Base, innerOffset+fieldOffset, fieldType)
	default:
		// Field access requires an addressable base (a symbol or a chain of
		// field accesses rooted in one) so its bytes can be located by
		// offset without a stack-drop opcode; this matches every example in
		// the language (struct-member and swizzle chains off a named value).
		fail("field access base must be a variable or field chain, not %T", base)
	}
}
