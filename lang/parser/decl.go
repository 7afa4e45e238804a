package parser

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/token"
)

// parseProgram implements "parse_program": while tokens remain, branch on
// the leading token to decide whether this is an input, a struct, or a
// function declaration.
func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{From: p.curPos()}

	for !p.at(token.EOF) {
		start := p.pos
		switch p.cur() {
		case token.IN, token.UNIFORM:
			if d := p.parseInParamDecl(); d != nil {
				prog.Inputs = append(prog.Inputs, d)
			}
		case token.STRUCT:
			if d := p.parseStructDecl(); d != nil {
				prog.Structs = append(prog.Structs, d)
			}
		default:
			if d := p.parseFuncDecl(); d != nil {
				prog.Funcs = append(prog.Funcs, d)
			}
		}
		if p.pos == start {
			// Parsing made no progress (a leading token nothing above
			// recognized): record it and force forward movement so Parse
			// terminates.
			p.errs.Addf(p.curPos(), "unexpected token %s at top level", p.cur())
			p.advance()
		}
	}

	prog.To = p.curPos()
	return prog
}

// parseTypeExpr parses a bare type identifier: Int, Float, void, Vec{N},
// Mat{M}[x{N}], or a struct name.
func (p *parser) parseTypeExpr() ast.TypeExpr {
	pos := p.curPos()
	if p.at(token.VOID) {
		p.advance()
		return ast.TypeExpr{Name: "void", Pos: pos}
	}
	v := p.expect(token.IDENT)
	return ast.TypeExpr{Name: v.Raw, Pos: pos}
}

// parseInParamDecl parses `in`/`uniform` TypeExpr ident.
func (p *parser) parseInParamDecl() *ast.InParamDecl {
	from := p.curPos()
	isUniform := p.at(token.UNIFORM)
	p.advance() // 'in' or 'uniform'

	te := p.parseTypeExpr()
	name := p.expect(token.IDENT)

	return &ast.InParamDecl{
		Type: te, Name: name.Raw, IsUniform: isUniform,
		From: from, To: p.curPos(),
	}
}

// parseStructDecl parses `struct` name `{` (TypeExpr ident `,`?)* `}`.
func (p *parser) parseStructDecl() *ast.StructDecl {
	from := p.curPos()
	p.advance() // 'struct'
	nameVal := p.expect(token.IDENT)

	p.expect(token.LBRACE)
	var members []ast.StructMember
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		mpos := p.curPos()
		te := p.parseTypeExpr()
		mname := p.expect(token.IDENT)
		members = append(members, ast.StructMember{Type: te, Name: mname.Raw, Pos: mpos})
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE)

	return &ast.StructDecl{
		Name: nameVal.Raw, NamePos: nameVal.Pos, Members: members,
		From: from, To: p.curPos(),
	}
}

// parseFuncDecl parses TypeExpr ident `(` params `)` `{` statements `}`.
func (p *parser) parseFuncDecl() *ast.FuncDecl {
	from := p.curPos()
	retType := p.parseTypeExpr()
	nameVal := p.expect(token.IDENT)

	p.expect(token.LPAREN)
	var params []ast.Param
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		ppos := p.curPos()
		te := p.parseTypeExpr()
		pname := p.expect(token.IDENT)
		params = append(params, ast.Param{Type: te, Name: pname.Raw, Pos: ppos})
		if p.at(token.COMMA) {
			p.advance()
			if p.at(token.RPAREN) {
				p.errs.Addf(p.curPos(), "trailing comma before %s", token.RPAREN)
			}
		} else {
			break
		}
	}
	p.expect(token.RPAREN)

	p.expect(token.LBRACE)
	body := p.parseStatements()
	p.expect(token.RBRACE)

	return &ast.FuncDecl{
		ReturnType: retType, Name: nameVal.Raw, NamePos: nameVal.Pos,
		Params: params, Body: body, From: from, To: p.curPos(),
	}
}
