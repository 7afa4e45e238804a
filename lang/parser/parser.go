// Package parser builds an AST from a Motokigo token stream using a
// single-pass recursive descent for declarations and statements and a
// Pratt-style precedence climb for expressions (§4.2).
package parser

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/diag"
	"github.com/Nyrox/motokigo/lang/scanner"
	"github.com/Nyrox/motokigo/lang/token"
)

type parser struct {
	toks []token.Token
	vals []token.Value
	pos  int

	errs diag.ErrorList
}

// Parse scans and parses src into a Program. Parse errors are collected
// rather than aborting on the first failure, synchronizing at the next
// "}" or top-level keyword so one invocation can report more than one
// syntax mistake (§4.2 "Errors").
func Parse(src []byte) (*ast.Program, error) {
	var sc scanner.Scanner
	var lexErrs diag.ErrorList
	sc.Init(src, lexErrs.Add)

	p := &parser{}
	for {
		var v token.Value
		tok := sc.Scan(&v)
		p.toks = append(p.toks, tok)
		p.vals = append(p.vals, v)
		if tok == token.EOF {
			break
		}
	}
	lexErrs.Sort()
	if err := lexErrs.Err(); err != nil {
		return nil, err
	}

	prog := p.parseProgram()
	p.errs.Sort()
	return prog, p.errs.Err()
}

func (p *parser) cur() token.Token      { return p.toks[p.pos] }
func (p *parser) curVal() token.Value   { return p.vals[p.pos] }
func (p *parser) curPos() token.Pos     { return p.vals[p.pos].Pos }
func (p *parser) at(tok token.Token) bool { return p.cur() == tok }

func (p *parser) advance() token.Value {
	v := p.vals[p.pos]
	if p.toks[p.pos] != token.EOF {
		p.pos++
	}
	return v
}

// expect consumes the current token if it matches tok, else records an
// UnexpectedToken diagnostic and does not advance.
func (p *parser) expect(tok token.Token) token.Value {
	if p.cur() == tok {
		return p.advance()
	}
	p.unexpected(tok)
	return p.curVal()
}

func (p *parser) unexpected(want token.Token) {
	if p.cur() == token.EOF {
		p.errs.Addf(p.curPos(), "unexpected end of input, expected %s", want)
		return
	}
	p.errs.Addf(p.curPos(), "unexpected token %s, expected %s", p.cur(), want)
}

// sync advances past tokens until the next "}" (consumed) or a top-level
// keyword/EOF (not consumed), the recovery point after a declaration-level
// parse error.
func (p *parser) sync() {
	for {
		switch p.cur() {
		case token.EOF, token.IN, token.UNIFORM, token.STRUCT:
			return
		case token.RBRACE:
			p.advance()
			return
		}
		p.advance()
	}
}
