package builtin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/builtin"
	"github.com/Nyrox/motokigo/lang/types"
)

// fakeStack is a minimal stackio.Stack backed by a plain slice, letting a
// test drive one Entry's VM function directly without a full machine.VM.
type fakeStack []uint32

func (s *fakeStack) PushWord(w uint32) { *s = append(*s, w) }
func (s *fakeStack) PopWord() uint32 {
	n := len(*s)
	w := (*s)[n-1]
	*s = (*s)[:n-1]
	return w
}

func pushFloat(s *fakeStack, f float32) { s.PushWord(math.Float32bits(f)) }
func popFloat(s *fakeStack) float32     { return math.Float32frombits(s.PopWord()) }

func TestLookupFindsExactOverload(t *testing.T) {
	e, idx, ok := builtin.Lookup("__op_binary_add", []types.Type{types.FloatType, types.FloatType})
	require.True(t, ok)
	assert.Equal(t, "__op_binary_add", e.Name)
	assert.Same(t, e, builtin.ByIndex(idx))
	assert.Equal(t, idx, builtin.IndexOf(e))
}

func TestLookupMissReportsNotFound(t *testing.T) {
	_, _, ok := builtin.Lookup("__op_binary_add", []types.Type{types.IntType, types.FloatType})
	assert.False(t, ok)
}

func TestLookupDistinguishesOverloadsBySignature(t *testing.T) {
	addInt, _, ok := builtin.Lookup("__op_binary_add", []types.Type{types.IntType, types.IntType})
	require.True(t, ok)
	addFloat, _, ok := builtin.Lookup("__op_binary_add", []types.Type{types.FloatType, types.FloatType})
	require.True(t, ok)
	assert.NotSame(t, addInt, addFloat)
}

func TestXorHasNoVMImplementation(t *testing.T) {
	e, _, ok := builtin.Lookup("xor", []types.Type{types.IntType, types.IntType})
	require.True(t, ok)
	assert.Nil(t, e.VM)
}

func TestLognComputesLogBaseX(t *testing.T) {
	e, _, ok := builtin.Lookup("logn", []types.Type{types.FloatType, types.FloatType})
	require.True(t, ok)

	var s fakeStack
	pushFloat(&s, 2.0)  // base
	pushFloat(&s, 8.0)  // x
	e.VM(&s)
	got := popFloat(&s)
	assert.InDelta(t, 3.0, got, 1e-5)
}

func TestLognGLSLTemplateSwapsOperandOrder(t *testing.T) {
	e, _, ok := builtin.Lookup("logn", []types.Type{types.FloatType, types.FloatType})
	require.True(t, ok)
	assert.Equal(t, "(log(x) / log(base))", e.Generate([]string{"base", "x"}))
}

func TestIntMinMax(t *testing.T) {
	min, _, ok := builtin.Lookup("min", []types.Type{types.IntType, types.IntType})
	require.True(t, ok)
	var s fakeStack
	s.PushWord(uint32(int32(7)))
	s.PushWord(uint32(int32(3)))
	min.VM(&s)
	assert.Equal(t, int32(3), int32(s.PopWord()))

	max, _, ok := builtin.Lookup("max", []types.Type{types.IntType, types.IntType})
	require.True(t, ok)
	s.PushWord(uint32(int32(7)))
	s.PushWord(uint32(int32(3)))
	max.VM(&s)
	assert.Equal(t, int32(7), int32(s.PopWord()))
}

func TestRegistryIndexIsStableAcrossLookups(t *testing.T) {
	for i, e := range builtin.Table() {
		assert.Equal(t, i, builtin.IndexOf(e))
		assert.Same(t, e, builtin.ByIndex(i))
	}
}
