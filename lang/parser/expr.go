package parser

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/token"
)

// infixOp describes one binary operator's Pratt binding powers and the
// builtin-registry name the parser synthesizes for it (§4.2).
type infixOp struct {
	lbp, rbp int
	name     string
}

var infixTable = map[token.Token]infixOp{
	token.LT:  {0, 1, "__op_binary_less"},
	token.LE:  {0, 1, "__op_binary_less_equal"},
	token.GT:  {0, 1, "__op_binary_greater"},
	token.GE:  {0, 1, "__op_binary_greater_equal"},
	token.EQL: {0, 1, "__op_binary_equality"},
	token.PLUS:  {1, 2, "__op_binary_add"},
	token.MINUS: {1, 2, "__op_binary_sub"},
	token.STAR:  {3, 4, "__op_binary_mul"},
	token.SLASH: {3, 4, "__op_binary_div"},
}

// unaryMinusRBP is the binding power unary "-" parses its operand at
// (§4.2: unary "-" is ((), 5)).
const unaryMinusRBP = 5

// parseExprBP implements parse_expr_bp(min_bp): a standard precedence climb
// over the table above, seeded by a prefix ("nud") parse.
func (p *parser) parseExprBP(minBP int) ast.Expr {
	lhs := p.parsePrefix()

	for {
		op, ok := infixTable[p.cur()]
		if !ok || op.lbp < minBP {
			break
		}
		pos := p.curPos()
		p.advance()
		rhs := p.parseExprBP(op.rbp)
		lhs = &ast.CallExpr{
			Callee: op.name, CalleePos: pos,
			Args: []ast.Expr{lhs, rhs},
			Lparen: lhs.Span().From, Rparen: rhs.Span().To,
		}
	}
	return lhs
}

// parsePrefix handles unary "-" and otherwise falls through to an atom
// with its postfix chain ("." field access).
func (p *parser) parsePrefix() ast.Expr {
	if p.at(token.MINUS) {
		pos := p.curPos()
		p.advance()
		operand := p.parseExprBP(unaryMinusRBP)
		return &ast.CallExpr{
			Callee: "__op_unary_neg", CalleePos: pos,
			Args: []ast.Expr{operand}, Lparen: pos, Rparen: operand.Span().To,
		}
	}
	return p.parsePostfix(p.parseAtom())
}

// parsePostfix consumes a chain of ".field" accesses following an atom.
func (p *parser) parsePostfix(e ast.Expr) ast.Expr {
	for p.at(token.DOT) {
		dot := p.curPos()
		p.advance()
		field := p.expect(token.IDENT)
		e = &ast.FieldExpr{Base: e, Field: field.Raw, Dot: dot, End: p.curPos(), Offset: -1}
	}
	return e
}

// parseAtom parses a literal, identifier (symbol, call, or struct
// construction), or a parenthesized expression.
func (p *parser) parseAtom() ast.Expr {
	pos := p.curPos()

	switch p.cur() {
	case token.INT:
		v := p.advance()
		return &ast.LiteralExpr{IsFloat: false, IntVal: v.Int, Pos: v.Pos, Raw: v.Raw}
	case token.FLOAT:
		v := p.advance()
		return &ast.LiteralExpr{IsFloat: true, FloatVal: v.Float, Pos: v.Pos, Raw: v.Raw}
	case token.LPAREN:
		p.advance()
		inner := p.parseExprBP(0)
		rparen := p.expect(token.RPAREN).Pos
		return &ast.ParenExpr{Lparen: pos, Inner: inner, Rparen: rparen}
	case token.IDENT:
		name := p.advance()
		switch {
		case p.at(token.LPAREN):
			return p.parseCallArgs(name)
		case p.at(token.LBRACE) && p.looksLikeStructLit():
			return p.parseStructLit(name)
		default:
			return &ast.IdentExpr{Name: name.Raw, Pos: name.Pos}
		}
	}

	p.errs.Addf(pos, "unexpected token %s, expected an expression", p.cur())
	p.advance()
	return &ast.IdentExpr{Name: "", Pos: pos}
}

// looksLikeStructLit implements the 2-token lookahead ("ident :") that
// distinguishes a struct construction from a bare symbol followed by an
// unrelated "{" (e.g. an "if" condition's block) (§4.2).
func (p *parser) looksLikeStructLit() bool {
	if p.pos+2 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1] == token.IDENT && p.toks[p.pos+2] == token.COLON
}

func (p *parser) parseCallArgs(name token.Value) ast.Expr {
	lparen := p.curPos()
	p.advance() // '('
	var args []ast.Expr
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		args = append(args, p.parseExprBP(0))
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	rparen := p.expect(token.RPAREN).Pos
	return &ast.CallExpr{Callee: name.Raw, CalleePos: name.Pos, Args: args, Lparen: lparen, Rparen: rparen}
}

func (p *parser) parseStructLit(name token.Value) ast.Expr {
	lbrace := p.curPos()
	p.advance() // '{'
	var fields []ast.FieldInit
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		fpos := p.curPos()
		fname := p.expect(token.IDENT)
		p.expect(token.COLON)
		fexpr := p.parseExprBP(0)
		fields = append(fields, ast.FieldInit{Name: fname.Raw, Pos: fpos, Expr: fexpr})
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	rbrace := p.expect(token.RBRACE).Pos
	return &ast.StructLitExpr{TypeName: name.Raw, Lbrace: lbrace, Fields: fields, Rbrace: rbrace}
}
