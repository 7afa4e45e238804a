package ast

import (
	"github.com/Nyrox/motokigo/lang/builtin"
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/token"
	"github.com/Nyrox/motokigo/lang/types"
)

// LiteralExpr is an integer or float literal.
type LiteralExpr struct {
	IsFloat  bool
	IntVal   int64
	FloatVal float64
	Pos      token.Pos
	Raw      string

	Type types.Type // I32 or F32, filled in by the resolver
}

func (e *LiteralExpr) Span() token.Span      { return token.MakeSpan(e.Pos, e.Pos+token.Pos(len(e.Raw))) }
func (e *LiteralExpr) Walk(v Visitor)        { v.VisitLiteral(e) }
func (e *LiteralExpr) isExpr()               {}
func (e *LiteralExpr) ResolvedType() types.Type { return e.Type }

// IdentExpr is a bare identifier read as a variable (§3 Expr::Symbol). Sym
// is nil until the resolver binds it to a local or global symbol.
type IdentExpr struct {
	Name string
	Pos  token.Pos

	Sym *sym.Symbol
}

func (e *IdentExpr) Span() token.Span { return token.MakeSpan(e.Pos, e.Pos+token.Pos(len(e.Name))) }
func (e *IdentExpr) Walk(v Visitor)   { v.VisitIdent(e) }
func (e *IdentExpr) isExpr()          {}
func (e *IdentExpr) ResolvedType() types.Type {
	if e.Sym == nil {
		return types.VoidType
	}
	return e.Sym.Type
}

// CallExpr is a function call, covering both user functions and every
// primitive operator the parser lowers to a synthesized name such as
// "__op_binary_add" (§3 Expr::FuncCall).
type CallExpr struct {
	Callee    string
	CalleePos token.Pos
	Args      []Expr
	Lparen    token.Pos
	Rparen    token.Pos

	// Exactly one of Builtin or Func is set once the resolver selects an
	// overload (§4.4 step 5, FuncCall).
	Builtin *builtin.Entry
	Func    *FuncDecl

	Type types.Type
}

func (e *CallExpr) Span() token.Span { return token.MakeSpan(e.CalleePos, e.Rparen+1) }
func (e *CallExpr) Walk(v Visitor) {
	for _, a := range e.Args {
		Walk(v, a)
	}
}
func (e *CallExpr) isExpr()                  {}
func (e *CallExpr) ResolvedType() types.Type { return e.Type }

// ArgTypes returns the resolved type of every argument, in order.
func (e *CallExpr) ArgTypes() []types.Type {
	out := make([]types.Type, len(e.Args))
	for i, a := range e.Args {
		out[i] = a.ResolvedType()
	}
	return out
}

// FieldExpr is struct member access or vector swizzle (§3
// Expr::FieldAccess).
type FieldExpr struct {
	Base  Expr
	Field string
	Dot   token.Pos
	End   token.Pos

	Type types.Type

	// IsSwizzle is true when Base resolves to a Vector and Field is composed
	// of 1-4 "x/y/z/w" or "r/g/b/a" component letters.
	IsSwizzle bool
	// SwizzleIdx holds the 0-based component index of each letter in Field,
	// only valid when IsSwizzle.
	SwizzleIdx []int

	// Offset is the byte offset of the field from the start of Base's value,
	// valid for struct member access and for a contiguous (single-run,
	// ascending) swizzle. It is -1 when the compiler cannot address the
	// field as one contiguous run (§9 open question 1).
	Offset int
}

func (e *FieldExpr) Span() token.Span { return token.MakeSpan(e.Dot, e.End) }
func (e *FieldExpr) Walk(v Visitor)   { Walk(v, e.Base) }
func (e *FieldExpr) isExpr()          {}
func (e *FieldExpr) ResolvedType() types.Type { return e.Type }

// FieldInit is one "name: expr" pair inside a StructLitExpr.
type FieldInit struct {
	Name string
	Pos  token.Pos
	Expr Expr
}

// StructLitExpr is a struct construction expression, e.g. Foo{x: 1.0} (§3
// Expr::StructConstruction).
type StructLitExpr struct {
	TypeName string
	Lbrace   token.Pos
	Fields   []FieldInit
	Rbrace   token.Pos

	Type   types.Type
	Struct *StructDecl
}

func (e *StructLitExpr) Span() token.Span { return token.MakeSpan(e.Lbrace, e.Rbrace+1) }
func (e *StructLitExpr) Walk(v Visitor) {
	for _, f := range e.Fields {
		Walk(v, f.Expr)
	}
}
func (e *StructLitExpr) isExpr()                  {}
func (e *StructLitExpr) ResolvedType() types.Type { return e.Type }

// ParenExpr is a parenthesized expression, preserved so the GLSL emitter can
// reproduce the grouping (§3 Expr::Grouped).
type ParenExpr struct {
	Lparen token.Pos
	Inner  Expr
	Rparen token.Pos
}

func (e *ParenExpr) Span() token.Span { return token.MakeSpan(e.Lparen, e.Rparen+1) }
func (e *ParenExpr) Walk(v Visitor)   { Walk(v, e.Inner) }
func (e *ParenExpr) isExpr()          {}
func (e *ParenExpr) ResolvedType() types.Type { return e.Inner.ResolvedType() }

// Unwrap strips any number of enclosing ParenExpr, returning the first
// non-paren expression.
func Unwrap(e Expr) Expr {
	for {
		pe, ok := e.(*ParenExpr)
		if !ok {
			return e
		}
		e = pe.Inner
	}
}
