package machine_test

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

func build(t *testing.T, src string) *compiler.VMProgram {
	t.Helper()
	prog, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	data, err := resolver.Resolve(prog)
	require.NoError(t, err)
	vmProg, err := compiler.Compile(prog, data)
	require.NoError(t, err)
	return vmProg
}

func f32(b []byte) float32 {
	return math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func bytesOf(f float32) []byte {
	bits := math.Float32bits(f)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func TestSetGlobalGetGlobalRoundTrip(t *testing.T) {
	vmProg := build(t, "in Float ux\nFloat main() { return ux }")
	vm := machine.New(vmProg, 0)
	require.NoError(t, vm.SetGlobal("ux", bytesOf(3.5)))

	got, err := vm.GetGlobal("ux")
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f32(got))

	state, err := vm.RunFn("main", nil)
	require.NoError(t, err)
	assert.Equal(t, machine.Finished, state)
	assert.Equal(t, float32(3.5), f32(vm.Stack[len(vm.Stack)-4:]))
}

func TestSetGlobalWrongSizeFails(t *testing.T) {
	vmProg := build(t, "in Float ux\nFloat main() { return ux }")
	vm := machine.New(vmProg, 0)
	err := vm.SetGlobal("ux", []byte{0, 0, 0})
	require.Error(t, err)
}

func TestSetGlobalUnknownNameFails(t *testing.T) {
	vmProg := build(t, "in Float ux\nFloat main() { return ux }")
	vm := machine.New(vmProg, 0)
	err := vm.SetGlobal("nope", bytesOf(1))
	require.Error(t, err)
}

func TestRunFnUnknownFunctionFails(t *testing.T) {
	vmProg := build(t, "Float main() { return 1.0 }")
	vm := machine.New(vmProg, 0)
	_, err := vm.RunFn("doesNotExist", nil)
	require.Error(t, err)
}

func TestBreakpointSuspendsAtReturnLineAndResumeFinishes(t *testing.T) {
	src := "Float main() {\n  let a = 1.0\n  return a\n}\n"
	vmProg := build(t, src)
	vm := machine.New(vmProg, 0)

	state, err := vm.RunFn("main", []int{3})
	require.NoError(t, err)
	require.Equal(t, machine.Suspended, state)

	view := vm.View()
	assert.Equal(t, "main", view.FuncName)
	require.Len(t, view.Locals, 1)
	assert.Equal(t, "a", view.Locals[0].Name)
	assert.Equal(t, float32(1.0), f32(view.Locals[0].Bytes))

	state, err = vm.Resume()
	require.NoError(t, err)
	assert.Equal(t, machine.Finished, state)
	assert.Equal(t, float32(1.0), f32(vm.Stack[len(vm.Stack)-4:]))
}

func TestResumeWithoutSuspendFails(t *testing.T) {
	vmProg := build(t, "Float main() { return 1.0 }")
	vm := machine.New(vmProg, 0)
	_, err := vm.Resume()
	require.Error(t, err)
}

func TestCallDepthLimitExceeded(t *testing.T) {
	vmProg := build(t, "Float recurse(Float n) {\n  return recurse(n)\n}\nFloat main() {\n  return recurse(1.0)\n}\n")
	vm := machine.New(vmProg, 0)
	vm.SetCallDepthLimit(4)

	_, err := vm.RunFn("main", nil)
	require.Error(t, err)
	var depthErr *machine.CallDepthExceeded
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, uint64(4), depthErr.Limit)
}

func TestCallDepthLimitZeroDisablesCheck(t *testing.T) {
	vmProg := build(t, "Float main() { return 1.0 }")
	vm := machine.New(vmProg, 0)
	vm.SetCallDepthLimit(0)

	state, err := vm.RunFn("main", nil)
	require.NoError(t, err)
	assert.Equal(t, machine.Finished, state)
}

func TestRunStateString(t *testing.T) {
	assert.Equal(t, "Ready", machine.Ready.String())
	assert.Equal(t, "Running", machine.Running.String())
	assert.Equal(t, "Suspended", machine.Suspended.String())
	assert.Equal(t, "Finished", machine.Finished.String())
}
