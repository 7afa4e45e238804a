package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/parser"
	"github.com/Nyrox/motokigo/lang/resolver"
	"github.com/Nyrox/motokigo/lang/types"
)

func TestResolveSimpleFunction(t *testing.T) {
	prog, err := parser.Parse([]byte("Float main() { return 1.0 + 2.0 }"))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)

	fn := prog.FuncByName("main")
	require.NotNil(t, fn)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, types.Equal(ret.Expr.ResolvedType(), types.FloatType))
	assert.Contains(t, data.Funcs, "main")
}

func TestResolveStructOffsets(t *testing.T) {
	prog, err := parser.Parse([]byte("struct Foo { Float x, Float y }\nFloat main() { let v = Foo{x: 1.0, y: 2.0} return v.y }"))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)

	id, ok := data.Structs.Lookup("Foo")
	require.True(t, ok)
	decl := data.Structs.Get(id)
	require.Len(t, decl.Members, 2)
	assert.Equal(t, 0, decl.Members[0].Offset)
	assert.Equal(t, 4, decl.Members[1].Offset)
	assert.Equal(t, 8, decl.Size)

	fn := prog.FuncByName("main")
	ret := fn.Body[1].(*ast.ReturnStmt)
	field := ret.Expr.(*ast.FieldExpr)
	assert.False(t, field.IsSwizzle)
	assert.Equal(t, 4, field.Offset)
}

func TestResolveContiguousSwizzleOffset(t *testing.T) {
	prog, err := parser.Parse([]byte("Vec3 main() { let v = Vec3(1.0, 2.0, 3.0) return Vec3(v.xy, v.z) }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.NoError(t, err)

	fn := prog.FuncByName("main")
	ret := fn.Body[1].(*ast.ReturnStmt)
	call := ret.Expr.(*ast.CallExpr)
	xy := call.Args[0].(*ast.FieldExpr)
	assert.True(t, xy.IsSwizzle)
	assert.Equal(t, 0, xy.Offset)
	z := call.Args[1].(*ast.FieldExpr)
	assert.True(t, z.IsSwizzle)
	assert.Equal(t, 8, z.Offset)
}

func TestResolveReorderedSwizzleIsNotContiguous(t *testing.T) {
	prog, err := parser.Parse([]byte("Vec2 main() { let v = Vec3(1.0, 2.0, 3.0) return v.yx }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.NoError(t, err)

	fn := prog.FuncByName("main")
	ret := fn.Body[1].(*ast.ReturnStmt)
	yx := ret.Expr.(*ast.FieldExpr)
	assert.True(t, yx.IsSwizzle)
	assert.Equal(t, -1, yx.Offset)
}

func TestResolveMixedSwizzleAlphabetFails(t *testing.T) {
	prog, err := parser.Parse([]byte("Vec2 main() { let v = Vec3(1.0, 2.0, 3.0) return v.xg }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
}

func TestResolveAssignToImmutableFails(t *testing.T) {
	prog, err := parser.Parse([]byte("Float main() { let a = 1.0 a = 2.0 return a }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
}

func TestResolveWrongReturnTypeFails(t *testing.T) {
	prog, err := parser.Parse([]byte("Float main() { return 1 }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
}

func TestResolveUnknownFunctionFails(t *testing.T) {
	prog, err := parser.Parse([]byte("Float main() { return doesNotExist(1.0) }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
}

func TestResolveLoopRequiresIntBounds(t *testing.T) {
	prog, err := parser.Parse([]byte("Float main() { for i=0.0 to 10 { } return 0.0 }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
}

func TestResolveCondRequiresNumericCondition(t *testing.T) {
	prog, err := parser.Parse([]byte("struct Foo { Float x }\nFloat main() { if Foo{x: 1.0} { return 1.0 } return 0.0 }"))
	require.NoError(t, err)
	_, err = resolver.Resolve(prog)
	require.Error(t, err)
}

func TestResolveInputsStaticOffsets(t *testing.T) {
	prog, err := parser.Parse([]byte("in Float a\nin Vec3 b\nFloat main() { return a }"))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)

	assert.Equal(t, 0, data.Globals["a"].Offset)
	assert.Equal(t, 4, data.Globals["b"].Offset)
	assert.Equal(t, 16, data.StaticSize)
	assert.True(t, data.Globals["a"].IsStatic)
	assert.False(t, data.Globals["a"].IsMutable)
}
