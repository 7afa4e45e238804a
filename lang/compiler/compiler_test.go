package compiler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/compiler"
	"github.com/Nyrox/motokigo/lang/machine"
	"github.com/Nyrox/motokigo/lang/parser"
	"github.com/Nyrox/motokigo/lang/resolver"
)

func compileSrc(t *testing.T, src string) *compiler.VMProgram {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)
	vmProg, err := compiler.Compile(prog, data)
	require.NoError(t, err)
	return vmProg
}

func runMain(t *testing.T, vmProg *compiler.VMProgram) []byte {
	t.Helper()
	vm := machine.New(vmProg, 100000)
	state, err := vm.RunFn("main", nil)
	require.NoError(t, err)
	require.Equal(t, machine.Finished, state)
	size := vmProg.Data.Funcs["main"].ReturnType.Size(vmProg.Data.Structs)
	return vm.Stack[len(vm.Stack)-size:]
}

func TestCompileFloatArithmetic(t *testing.T) {
	vmProg := compileSrc(t, "Float main() { return 1.0 + 2.0 * 3.0 }")
	ret := runMain(t, vmProg)
	assert.Equal(t, float32ToBytes(7.0), ret)
}

func TestCompileForLoopSumsIndex(t *testing.T) {
	vmProg := compileSrc(t, `Float main() {
		let mut a = 0.0
		for i=0 to 4 { a = a + float(i) }
		return a
	}`)
	// i takes 0,1,2,3: sum is 6.0.
	ret := runMain(t, vmProg)
	assert.Equal(t, float32ToBytes(6.0), ret)
}

func TestCompileIfElseChain(t *testing.T) {
	src := `Float main() {
		let x = 5.0
		if x < 2.0 { return 1.0 }
		else if x < 10.0 { return 2.0 }
		else { return 3.0 }
	}`
	ret := runMain(t, compileSrc(t, src))
	assert.Equal(t, float32ToBytes(2.0), ret)
}

func TestCompileIfNoElseFallsThrough(t *testing.T) {
	src := `Float main() {
		if 1.0 < 0.0 { return 1.0 }
		return 9.0
	}`
	ret := runMain(t, compileSrc(t, src))
	assert.Equal(t, float32ToBytes(9.0), ret)
}

func TestCompileStructFieldAccess(t *testing.T) {
	src := `struct Foo { Float x, Float y }
	Float main() {
		let v = Foo{x: 1.0, y: 2.0}
		return v.y
	}`
	ret := runMain(t, compileSrc(t, src))
	assert.Equal(t, float32ToBytes(2.0), ret)
}

func TestCompileContiguousSwizzleLoadsSameAsField(t *testing.T) {
	src := `Float main() {
		let v = Vec3(1.0, 2.0, 3.0)
		return v.z
	}`
	ret := runMain(t, compileSrc(t, src))
	assert.Equal(t, float32ToBytes(3.0), ret)
}

func TestCompileReorderedSwizzleRejected(t *testing.T) {
	prog, err := parser.Parse([]byte("Vec2 main() { let v = Vec3(1.0, 2.0, 3.0) return v.yx }"))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)
	_, err = compiler.Compile(prog, data)
	require.Error(t, err)
}

func TestCompileIntegerXorIsRuntimeInternalError(t *testing.T) {
	vmProg := compileSrc(t, "Int main() { return xor(1, 2) }")
	vm := machine.New(vmProg, 1000)
	_, err := vm.RunFn("main", nil)
	require.Error(t, err)
}

func TestCompileStepLimitExceeded(t *testing.T) {
	vmProg := compileSrc(t, `Float main() {
		let mut a = 0.0
		for i=0 to 1000 { a = a + 1.0 }
		return a
	}`)
	vm := machine.New(vmProg, 5)
	_, err := vm.RunFn("main", nil)
	require.Error(t, err)
	_, ok := err.(*machine.StepLimitExceeded)
	assert.True(t, ok)
}

func float32ToBytes(f float32) []byte {
	bits := math.Float32bits(f)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}
