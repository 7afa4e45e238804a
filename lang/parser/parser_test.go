package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/diag"
	"github.com/Nyrox/motokigo/lang/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParseMinimalFunction(t *testing.T) {
	prog := mustParse(t, "Float main() { return 1.0 }")
	require.Len(t, prog.Funcs, 1)
	fn := prog.Funcs[0]
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, "Float", fn.ReturnType.Name)
	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	lit, ok := ret.Expr.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.True(t, lit.IsFloat)
	assert.Equal(t, 1.0, lit.FloatVal)
}

func TestParseBareReturn(t *testing.T) {
	prog := mustParse(t, "void nop() { return }")
	fn := prog.Funcs[0]
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Expr)
}

func TestParseInAndUniformDecls(t *testing.T) {
	prog := mustParse(t, "in Float ux\nuniform Vec3 light\nFloat main() { return ux }")
	require.Len(t, prog.Inputs, 2)
	assert.False(t, prog.Inputs[0].IsUniform)
	assert.Equal(t, "ux", prog.Inputs[0].Name)
	assert.True(t, prog.Inputs[1].IsUniform)
	assert.Equal(t, "light", prog.Inputs[1].Name)
	assert.Equal(t, "Vec3", prog.Inputs[1].Type.Name)
}

func TestParseStructDecl(t *testing.T) {
	prog := mustParse(t, "struct Foo { Float x, Float y }\nFloat main() { return 0.0 }")
	require.Len(t, prog.Structs, 1)
	s := prog.Structs[0]
	assert.Equal(t, "Foo", s.Name)
	require.Len(t, s.Members, 2)
	assert.Equal(t, "x", s.Members[0].Name)
	assert.Equal(t, "y", s.Members[1].Name)
}

func TestParseOperatorPrecedence(t *testing.T) {
	// "-a * b" should parse as "(-a) * b": unary minus binds tighter than *.
	prog := mustParse(t, "Float main() { return -1.0 * 2.0 }")
	ret := prog.Funcs[0].Body[0].(*ast.ReturnStmt)
	mul := ret.Expr.(*ast.CallExpr)
	assert.Equal(t, "__op_binary_mul", mul.Callee)
	neg := mul.Args[0].(*ast.CallExpr)
	assert.Equal(t, "__op_unary_neg", neg.Callee)
}

func TestParseAddBeforeCompare(t *testing.T) {
	// "1.0 + 2.0 < 3.0" should parse as "(1.0 + 2.0) < 3.0".
	prog := mustParse(t, "Float main() { if 1.0 + 2.0 < 3.0 { return 1.0 } return 0.0 }")
	cond := prog.Funcs[0].Body[0].(*ast.CondStmt)
	lt := cond.Cond.(*ast.CallExpr)
	assert.Equal(t, "__op_binary_less", lt.Callee)
	_, ok := lt.Args[0].(*ast.CallExpr)
	require.True(t, ok, "left operand of < must be the + call")
}

func TestParseFieldChain(t *testing.T) {
	prog := mustParse(t, "Float main() { return a.b.c }")
	ret := prog.Funcs[0].Body[0].(*ast.ReturnStmt)
	outer := ret.Expr.(*ast.FieldExpr)
	assert.Equal(t, "c", outer.Field)
	inner := outer.Base.(*ast.FieldExpr)
	assert.Equal(t, "b", inner.Field)
	_, ok := inner.Base.(*ast.IdentExpr)
	require.True(t, ok)
}

func TestParseStructLitVsBlock(t *testing.T) {
	// "if cond { }" must not be mistaken for a struct literal: the 2-token
	// lookahead requires "ident :" immediately inside the brace.
	prog := mustParse(t, "Float main(Float x) { if 1.0 < x { return 1.0 } return 0.0 }")
	cond := prog.Funcs[0].Body[0].(*ast.CondStmt)
	require.Len(t, cond.Body, 1)
}

func TestParseStructLit(t *testing.T) {
	prog := mustParse(t, "Float main() { let v = Foo{x: 1.0, y: 2.0} return v.x }")
	decl := prog.Funcs[0].Body[0].(*ast.VarDeclStmt)
	lit := decl.Init.(*ast.StructLitExpr)
	assert.Equal(t, "Foo", lit.TypeName)
	require.Len(t, lit.Fields, 2)
	assert.Equal(t, "x", lit.Fields[0].Name)
	assert.Equal(t, "y", lit.Fields[1].Name)
}

func TestParseLoop(t *testing.T) {
	prog := mustParse(t, "Float main() { for i=0 to 10 { } return 0.0 }")
	loop := prog.Funcs[0].Body[0].(*ast.LoopStmt)
	assert.Equal(t, "i", loop.IndexName)
}

func TestParseErrorRecoveryCollectsMultiple(t *testing.T) {
	_, err := parser.Parse([]byte("Float main() { let = } Float other() { let = }"))
	require.Error(t, err)
	var list diag.ErrorList
	require.ErrorAs(t, err, &list)
	assert.Greater(t, len(list), 1)
}

func TestParseTrailingCommaInParams(t *testing.T) {
	_, err := parser.Parse([]byte("Float main(Float a,) { return a }"))
	require.Error(t, err)
}
