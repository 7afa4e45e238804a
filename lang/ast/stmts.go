package ast

import (
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/token"
)

// VarDeclStmt declares a local, with its type inferred from Init (§3
// Statement::VariableDeclaration).
type VarDeclStmt struct {
	IsMut bool
	Name  string
	Init  Expr
	Let   token.Pos
	End   token.Pos

	Resolved *sym.Symbol
}

func (s *VarDeclStmt) Span() token.Span { return token.MakeSpan(s.Let, s.End) }
func (s *VarDeclStmt) Walk(v Visitor)   { Walk(v, s.Init) }
func (s *VarDeclStmt) isStmt()          {}

// AssignStmt assigns to an existing mutable local (§3 Statement::Assignment).
type AssignStmt struct {
	Name    string
	NamePos token.Pos
	Rhs     Expr
	End     token.Pos

	Target *sym.Symbol
}

func (s *AssignStmt) Span() token.Span { return token.MakeSpan(s.NamePos, s.End) }
func (s *AssignStmt) Walk(v Visitor)   { Walk(v, s.Rhs) }
func (s *AssignStmt) isStmt()          {}

// ReturnStmt returns a value (or none, for a Void function) from the
// enclosing function (§3 Statement::Return).
type ReturnStmt struct {
	Expr    Expr // nil for a Void return
	Keyword token.Pos
	End     token.Pos
}

func (s *ReturnStmt) Span() token.Span { return token.MakeSpan(s.Keyword, s.End) }
func (s *ReturnStmt) Walk(v Visitor) {
	if s.Expr != nil {
		Walk(v, s.Expr)
	}
}
func (s *ReturnStmt) isStmt() {}

// CondStmt represents one link of an if/else-if/else chain (§3
// Statement::Conditional). Cond is nil only for the tail "else" arm; Alt
// chains to the next "else if"/"else", or nil if there is none.
type CondStmt struct {
	Cond Expr
	Body []Stmt
	Alt  *CondStmt

	If  token.Pos
	End token.Pos
}

func (s *CondStmt) Span() token.Span { return token.MakeSpan(s.If, s.End) }
func (s *CondStmt) Walk(v Visitor) {
	if s.Cond != nil {
		Walk(v, s.Cond)
	}
	for _, st := range s.Body {
		Walk(v, st)
	}
	if s.Alt != nil {
		Walk(v, s.Alt)
	}
}
func (s *CondStmt) isStmt() {}

// LoopStmt is a half-open numeric loop over I32 bounds (§3
// Statement::Loop): `for index = from to to { body }`.
type LoopStmt struct {
	IndexName string
	From      Expr
	To        Expr
	Body      []Stmt

	ForPos token.Pos
	End    token.Pos

	// IndexSym is the loop index's symbol, pre-inserted before the body is
	// resolved so it can be referenced inside (§4.4 step 5, Loop).
	IndexSym *sym.Symbol
}

func (s *LoopStmt) Span() token.Span { return token.MakeSpan(s.ForPos, s.End) }
func (s *LoopStmt) Walk(v Visitor) {
	Walk(v, s.From)
	Walk(v, s.To)
	for _, st := range s.Body {
		Walk(v, st)
	}
}
func (s *LoopStmt) isStmt() {}
