package scanner_test

import (
	"testing"

	"github.com/Nyrox/motokigo/lang/scanner"
	"github.com/Nyrox/motokigo/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAll(t *testing.T) {
	toks, vals, err := scanner.ScanAll([]byte("in Float ux\nuniform Vec3 light\nFloat main() {\n  let mut a = 0.0\n  for i=0 to 10 { a = a + 10.0 / float(i+1) }\n  return a\n}\n"))
	require.NoError(t, err)
	require.Equal(t, len(toks), len(vals))

	want := []token.Token{
		token.IN, token.IDENT, token.IDENT,
		token.UNIFORM, token.IDENT, token.IDENT,
		token.IDENT, token.IDENT, token.LPAREN, token.RPAREN, token.LBRACE,
		token.LET, token.MUT, token.IDENT, token.EQ, token.FLOAT,
		token.FOR, token.IDENT, token.EQ, token.INT, token.TO, token.INT, token.LBRACE,
		token.IDENT, token.EQ, token.IDENT, token.PLUS, token.FLOAT, token.SLASH, token.IDENT, token.LPAREN, token.IDENT, token.PLUS, token.INT, token.RPAREN,
		token.RBRACE,
		token.RETURN, token.IDENT,
		token.RBRACE,
		token.EOF,
	}
	assert.Equal(t, want, toks)
}

func TestScanNumbers(t *testing.T) {
	toks, vals, err := scanner.ScanAll([]byte("10 10.5 0.25"))
	require.NoError(t, err)
	require.Equal(t, []token.Token{token.INT, token.FLOAT, token.FLOAT, token.EOF}, toks)
	assert.Equal(t, int64(10), vals[0].Int)
	assert.Equal(t, 10.5, vals[1].Float)
	assert.Equal(t, 0.25, vals[2].Float)
}

func TestScanKeywordsCaseInsensitive(t *testing.T) {
	toks, _, err := scanner.ScanAll([]byte("IF Else FOR"))
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.IF, token.ELSE, token.FOR, token.EOF}, toks)
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, _, err := scanner.ScanAll([]byte("== <= >= < > ="))
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.EQL, token.LE, token.GE, token.LT, token.GT, token.EQ, token.EOF}, toks)
}

func TestScanLineComment(t *testing.T) {
	toks, _, err := scanner.ScanAll([]byte("let a = 1 // trailing comment\nlet b = 2"))
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		token.LET, token.IDENT, token.EQ, token.INT,
		token.LET, token.IDENT, token.EQ, token.INT,
		token.EOF,
	}, toks)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, _, err := scanner.ScanAll([]byte("let a = @"))
	require.Error(t, err)
}

func TestScanBOMSkipped(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let a = 1")...)
	toks, _, err := scanner.ScanAll(src)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.LET, token.IDENT, token.EQ, token.INT, token.EOF}, toks)
}
