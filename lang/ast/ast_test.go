package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/parser"
)

func TestPrintProducesIndentedDump(t *testing.T) {
	prog, err := parser.Parse([]byte("struct Foo { Float x }\nin Float ux\nFloat main() { let a = 1.0 return a }"))
	require.NoError(t, err)

	var sb strings.Builder
	ast.Print(&sb, prog)
	out := sb.String()

	assert.Contains(t, out, "struct Foo")
	assert.Contains(t, out, "in Float ux")
	assert.Contains(t, out, "func Float main()")
	assert.Contains(t, out, "let a =")
	assert.Contains(t, out, "return")
}

func TestFuncByNameAndStructByName(t *testing.T) {
	prog, err := parser.Parse([]byte("struct Foo { Float x }\nFloat main() { return 0.0 }"))
	require.NoError(t, err)

	assert.NotNil(t, prog.FuncByName("main"))
	assert.Nil(t, prog.FuncByName("nope"))
	assert.NotNil(t, prog.StructByName("Foo"))
	assert.Nil(t, prog.StructByName("nope"))
}

// countingVisitor counts how many of each declaration kind Walk visits, to
// exercise the double-dispatch Visitor interface directly.
type countingVisitor struct {
	structs, inputs, funcs, literals, idents int
}

func (v *countingVisitor) VisitStructDecl(*ast.StructDecl)     { v.structs++ }
func (v *countingVisitor) VisitInParamDecl(*ast.InParamDecl)   { v.inputs++ }
func (v *countingVisitor) VisitFuncDecl(d *ast.FuncDecl) {
	v.funcs++
	for _, s := range d.Body {
		ast.Walk(v, s)
	}
}
func (v *countingVisitor) VisitLiteral(*ast.LiteralExpr) { v.literals++ }
func (v *countingVisitor) VisitIdent(*ast.IdentExpr)     { v.idents++ }

func TestWalkVisitsTopLevelDecls(t *testing.T) {
	prog, err := parser.Parse([]byte("struct Foo { Float x }\nin Float ux\nFloat main() { return ux }"))
	require.NoError(t, err)

	v := &countingVisitor{}
	ast.Walk(v, prog)

	assert.Equal(t, 1, v.structs)
	assert.Equal(t, 1, v.inputs)
	assert.Equal(t, 1, v.funcs)
}
