// The overall structure of Scanner (an advance/peek rune cursor driving a
// switch-based Scan, with BOM skipping at Init) follows Go's own
// go/scanner package and this repository's scanner for the donor language.

package scanner

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/Nyrox/motokigo/lang/diag"
	"github.com/Nyrox/motokigo/lang/token"
)

// Scanner tokenizes Motokigo source into a stream of (Token, Value) pairs.
type Scanner struct {
	src []byte
	err func(pos token.Pos, msg string)

	cur      rune // current character, -1 at EOF
	off      int  // byte offset of cur
	roff     int  // byte offset just past cur
	line, col int
}

var bom = [3]byte{0xEF, 0xBB, 0xBF}

// Init prepares s to scan src, reporting lexical errors through errHandler.
func (s *Scanner) Init(src []byte, errHandler func(pos token.Pos, msg string)) {
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.line = 1
	s.col = 0

	if len(src) >= len(bom) && bytes.Equal(src[:len(bom)], bom[:]) {
		s.roff += len(bom)
	}
	s.advance()
}

// ScanAll tokenizes the entire source, returning one token stream and any
// lexical diagnostics collected along the way.
func ScanAll(src []byte) ([]token.Token, []token.Value, error) {
	var (
		s   Scanner
		el  diag.ErrorList
		toks []token.Token
		vals []token.Value
	)
	s.Init(src, el.Add)
	for {
		var v token.Value
		tok := s.Scan(&v)
		toks = append(toks, tok)
		vals = append(vals, v)
		if tok == token.EOF {
			break
		}
	}
	el.Sort()
	return toks, vals, el.Err()
}

func (s *Scanner) pos() token.Pos { return token.MakePos(s.line, s.col) }

func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}

	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.pos(), "illegal UTF-8 encoding")
		}
	}
	s.roff += w
	s.cur = r
	s.col++
}

func (s *Scanner) error(pos token.Pos, msg string) {
	if s.err != nil {
		s.err(pos, msg)
	}
}

func (s *Scanner) errorf(pos token.Pos, format string, args ...any) {
	s.error(pos, fmt.Sprintf(format, args...))
}

// advanceIf advances and returns true if the current character is b.
func (s *Scanner) advanceIf(b byte) bool {
	if s.cur == rune(b) {
		s.advance()
		return true
	}
	return false
}

// Scan returns the next token, filling in its literal value.
func (s *Scanner) Scan(val *token.Value) token.Token {
	s.skipWhitespaceAndComments()

	pos := s.pos()

	switch cur := s.cur; {
	case isLetter(cur):
		lit := s.ident()
		tok := token.IDENT
		if kw, ok := token.LookupKeyword(lowerASCII(lit)); ok {
			tok = kw
		}
		*val = token.Value{Raw: lit, Pos: pos}
		return tok

	case isDigit(cur):
		tok, lit := s.number()
		*val = token.Value{Raw: lit, Pos: pos}
		switch tok {
		case token.INT:
			n, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				s.error(pos, "integer literal out of range")
			}
			val.Int = n
		case token.FLOAT:
			f, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				s.error(pos, "float literal out of range")
			}
			val.Float = f
		}
		return tok
	}

	cur := s.cur
	s.advance()
	switch cur {
	case '+':
		*val = token.Value{Raw: "+", Pos: pos}
		return token.PLUS
	case '-':
		*val = token.Value{Raw: "-", Pos: pos}
		return token.MINUS
	case '*':
		*val = token.Value{Raw: "*", Pos: pos}
		return token.STAR
	case '/':
		if s.advanceIf('/') {
			s.skipLineComment()
			return s.Scan(val)
		}
		*val = token.Value{Raw: "/", Pos: pos}
		return token.SLASH
	case '.':
		*val = token.Value{Raw: ".", Pos: pos}
		return token.DOT
	case ',':
		*val = token.Value{Raw: ",", Pos: pos}
		return token.COMMA
	case ':':
		*val = token.Value{Raw: ":", Pos: pos}
		return token.COLON
	case '(':
		*val = token.Value{Raw: "(", Pos: pos}
		return token.LPAREN
	case ')':
		*val = token.Value{Raw: ")", Pos: pos}
		return token.RPAREN
	case '{':
		*val = token.Value{Raw: "{", Pos: pos}
		return token.LBRACE
	case '}':
		*val = token.Value{Raw: "}", Pos: pos}
		return token.RBRACE
	case '=':
		if s.advanceIf('=') {
			*val = token.Value{Raw: "==", Pos: pos}
			return token.EQL
		}
		*val = token.Value{Raw: "=", Pos: pos}
		return token.EQ
	case '<':
		if s.advanceIf('=') {
			*val = token.Value{Raw: "<=", Pos: pos}
			return token.LE
		}
		*val = token.Value{Raw: "<", Pos: pos}
		return token.LT
	case '>':
		if s.advanceIf('=') {
			*val = token.Value{Raw: ">=", Pos: pos}
			return token.GE
		}
		*val = token.Value{Raw: ">", Pos: pos}
		return token.GT
	case -1:
		*val = token.Value{Raw: "", Pos: pos}
		return token.EOF
	default:
		s.errorf(pos, "unexpected character %q", cur)
		*val = token.Value{Raw: string(cur), Pos: pos}
		return token.ILLEGAL
	}
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// number scans [0-9]+ optionally followed by '.' [0-9]+, matching §4.1: no
// hex/octal/binary prefixes, no digit separators, no exponents.
func (s *Scanner) number() (token.Token, string) {
	start := s.off
	tok := token.INT
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peek())) {
		tok = token.FLOAT
		s.advance() // consume '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}
	return tok, string(s.src[start:s.off])
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		for isWhitespace(s.cur) {
			s.advance()
		}
		if s.cur == '/' && s.peek() == '/' {
			s.advance()
			s.advance()
			s.skipLineComment()
			continue
		}
		return
	}
}

func (s *Scanner) skipLineComment() {
	for s.cur != '\n' && s.cur != -1 {
		s.advance()
	}
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r'
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_' ||
		rn >= utf8.RuneSelf && unicode.IsLetter(rn)
}

func isDigit(rn rune) bool {
	return '0' <= rn && rn <= '9'
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
