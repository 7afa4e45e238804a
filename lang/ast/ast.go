// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the resolver: struct, input and function
// declarations, and the statement and expression trees of function bodies.
package ast

import (
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/token"
	"github.com/Nyrox/motokigo/lang/types"
)

// Node is any node of the AST.
type Node interface {
	// Span reports the source range covered by the node.
	Span() token.Span

	// Walk calls v's method for the node itself where Visitor has one
	// (declarations, literals, identifiers); for any other node it walks
	// the node's direct children, in source order.
	Walk(v Visitor)
}

// Expr is any expression node. Every Expr type also carries the type it
// resolves to (valid only after the resolver runs), reported by ResolvedType.
type Expr interface {
	Node
	isExpr()
	// ResolvedType returns the type this expression evaluates to. It is the
	// zero Type (Void) until the resolver annotates the node.
	ResolvedType() types.Type
}

// Stmt is any statement node.
type Stmt interface {
	Node
	isStmt()
}

// TypeExpr is the syntax for a type reference as written by the user: a bare
// identifier such as "Int", "Vec3", "Mat2x3" or a struct name. The resolver
// turns it into a types.Type (§4.4 step 4).
type TypeExpr struct {
	Name string
	Pos  token.Pos
}

func (t TypeExpr) Span() token.Span { return token.MakeSpan(t.Pos, t.Pos+token.Pos(len(t.Name))) }

// Param is one parameter of a FuncDecl.
type Param struct {
	Type TypeExpr
	Name string
	Pos  token.Pos

	// Resolved is filled in by the resolver's function pre-pass.
	Resolved *sym.Symbol
}

// StructMember is one field of a StructDecl as written in source.
type StructMember struct {
	Type TypeExpr
	Name string
	Pos  token.Pos
}

// StructDecl represents a `struct Name { ... }` declaration.
type StructDecl struct {
	Name    string
	NamePos token.Pos
	Members []StructMember
	From    token.Pos
	To      token.Pos

	// ID is filled in by the resolver once the struct is published into the
	// program's struct table.
	ID types.StructID
}

func (d *StructDecl) Span() token.Span        { return token.MakeSpan(d.From, d.To) }
func (d *StructDecl) Walk(v Visitor)          { v.VisitStructDecl(d) }

// InParamDecl represents an `in`/`uniform` top-level input declaration.
type InParamDecl struct {
	Type      TypeExpr
	Name      string
	IsUniform bool
	From      token.Pos
	To        token.Pos

	// Resolved is filled in by the resolver.
	Resolved *sym.Symbol
}

func (d *InParamDecl) Span() token.Span { return token.MakeSpan(d.From, d.To) }
func (d *InParamDecl) Walk(v Visitor)   { v.VisitInParamDecl(d) }

// FuncDecl represents a top-level function declaration.
type FuncDecl struct {
	ReturnType TypeExpr
	Name       string
	NamePos    token.Pos
	Params     []Param
	Body       []Stmt
	From       token.Pos
	To         token.Pos

	// Meta is filled in by the resolver's function pre-pass and completed by
	// the bytecode compiler (Address).
	Meta *sym.FuncMeta
}

func (d *FuncDecl) Span() token.Span { return token.MakeSpan(d.From, d.To) }
func (d *FuncDecl) Walk(v Visitor) {
	v.VisitFuncDecl(d)
}

// Program is the root node: every struct, input and function declaration of
// one Motokigo source file, in declaration order.
type Program struct {
	Structs []*StructDecl
	Inputs  []*InParamDecl
	Funcs   []*FuncDecl
	From    token.Pos
	To      token.Pos
}

func (p *Program) Span() token.Span { return token.MakeSpan(p.From, p.To) }
func (p *Program) Walk(v Visitor) {
	for _, s := range p.Structs {
		Walk(v, s)
	}
	for _, i := range p.Inputs {
		Walk(v, i)
	}
	for _, f := range p.Funcs {
		Walk(v, f)
	}
}

// FuncByName returns the function declared name, or nil.
func (p *Program) FuncByName(name string) *FuncDecl {
	for _, f := range p.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// StructByName returns the struct declared name, or nil.
func (p *Program) StructByName(name string) *StructDecl {
	for _, s := range p.Structs {
		if s.Name == name {
			return s
		}
	}
	return nil
}
