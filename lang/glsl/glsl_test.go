package glsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/glsl"
	"github.com/Nyrox/motokigo/lang/parser"
	"github.com/Nyrox/motokigo/lang/resolver"
)

func emit(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)
	return glsl.Emit(prog, data)
}

func TestEmitVersionDirective(t *testing.T) {
	out := emit(t, "Float main() { return 1.0 }")
	assert.Contains(t, out, "#version 330 core")
}

func TestEmitRenamesMainAndWrapsIt(t *testing.T) {
	out := emit(t, "Vec3 main() { return Vec3(1.0, 0.0, 0.0) }")
	assert.Contains(t, out, "vec3 __impl_main()")
	assert.Contains(t, out, "out vec3 out_0;")
	assert.Contains(t, out, "out_0 = __impl_main();")
}

func TestEmitVec3Construction(t *testing.T) {
	out := emit(t, "Vec3 main() { return Vec3(1.0, 2.0, 3.0) }")
	assert.Contains(t, out, "vec3(1.0, 2.0, 3.0)")
}

func TestEmitInputsAndUniforms(t *testing.T) {
	out := emit(t, "in Float ux\nuniform Vec3 light\nFloat main() { return ux }")
	assert.Contains(t, out, "in float ux;")
	assert.Contains(t, out, "uniform vec3 light;")
}

func TestEmitStructDeclInDeclaredOrder(t *testing.T) {
	out := emit(t, "struct Foo { Float x, Float y }\nFloat main() { let v = Foo{y: 2.0, x: 1.0} return v.x }")
	assert.Contains(t, out, "struct Foo {")
	xi := indexOf(out, "float x;")
	yi := indexOf(out, "float y;")
	require.Greater(t, yi, xi)
}

func TestEmitStructLitUsesDeclaredOrderNotSyntaxOrder(t *testing.T) {
	out := emit(t, "struct Foo { Float x, Float y }\nFloat main() { let v = Foo{y: 2.0, x: 1.0} return v.x }")
	assert.Contains(t, out, "Foo(1.0, 2.0)")
}

func TestEmitCondAsIfElse(t *testing.T) {
	out := emit(t, `Float main() {
		let x = 1.0
		if x < 2.0 { return 1.0 }
		else { return 2.0 }
	}`)
	assert.Contains(t, out, "if (bool(")
	assert.Contains(t, out, "else {")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
