package parser

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/token"
)

// parseStatements consumes statements until the matching "}" (not
// consumed) or EOF.
func (p *parser) parseStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		start := p.pos
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == start {
			p.errs.Addf(p.curPos(), "unexpected token %s in statement position", p.cur())
			p.sync()
		}
	}
	return stmts
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.cur() {
	case token.RETURN:
		return p.parseReturn()
	case token.LET:
		return p.parseVarDecl()
	case token.IF:
		return p.parseCond()
	case token.FOR:
		return p.parseLoop()
	case token.IDENT:
		if p.toks[p.pos+1] == token.EQ {
			return p.parseAssign()
		}
	}
	p.errs.Addf(p.curPos(), "unexpected token %s, expected a statement", p.cur())
	return nil
}

func (p *parser) parseReturn() ast.Stmt {
	kw := p.curPos()
	p.advance() // 'return'
	if p.at(token.RBRACE) {
		return &ast.ReturnStmt{Expr: nil, Keyword: kw, End: p.curPos()}
	}
	e := p.parseExprBP(0)
	return &ast.ReturnStmt{Expr: e, Keyword: kw, End: p.curPos()}
}

func (p *parser) parseVarDecl() ast.Stmt {
	let := p.curPos()
	p.advance() // 'let'
	isMut := false
	if p.at(token.MUT) {
		isMut = true
		p.advance()
	}
	name := p.expect(token.IDENT)
	p.expect(token.EQ)
	init := p.parseExprBP(0)
	return &ast.VarDeclStmt{IsMut: isMut, Name: name.Raw, Init: init, Let: let, End: p.curPos()}
}

func (p *parser) parseAssign() ast.Stmt {
	name := p.advance() // ident
	p.expect(token.EQ)
	rhs := p.parseExprBP(0)
	return &ast.AssignStmt{Name: name.Raw, NamePos: name.Pos, Rhs: rhs, End: p.curPos()}
}

// parseCond parses the if/else-if/else chain as a linked CondStmt list.
func (p *parser) parseCond() *ast.CondStmt {
	ifPos := p.curPos()
	p.advance() // 'if'
	cond := p.parseExprBP(0)
	p.expect(token.LBRACE)
	body := p.parseStatements()
	p.expect(token.RBRACE)

	node := &ast.CondStmt{Cond: cond, Body: body, If: ifPos, End: p.curPos()}

	if p.at(token.ELSE) {
		p.advance()
		if p.at(token.IF) {
			node.Alt = p.parseCond()
		} else {
			elsePos := p.curPos()
			p.expect(token.LBRACE)
			elseBody := p.parseStatements()
			p.expect(token.RBRACE)
			node.Alt = &ast.CondStmt{Cond: nil, Body: elseBody, If: elsePos, End: p.curPos()}
		}
	}
	return node
}

// parseLoop parses `for ident = expr to expr { body }`.
func (p *parser) parseLoop() ast.Stmt {
	forPos := p.curPos()
	p.advance() // 'for'
	name := p.expect(token.IDENT)
	p.expect(token.EQ)
	from := p.parseExprBP(0)
	p.expect(token.TO)
	to := p.parseExprBP(0)
	p.expect(token.LBRACE)
	body := p.parseStatements()
	p.expect(token.RBRACE)

	return &ast.LoopStmt{
		IndexName: name.Raw, From: from, To: to, Body: body,
		ForPos: forPos, End: p.curPos(),
	}
}
