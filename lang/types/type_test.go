package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/types"
)

func TestSizeOfScalarsAndVectors(t *testing.T) {
	assert.Equal(t, 0, types.VoidType.Size(nil))
	assert.Equal(t, 4, types.IntType.Size(nil))
	assert.Equal(t, 4, types.FloatType.Size(nil))
	assert.Equal(t, 12, types.MakeVector(types.FloatType, 3).Size(nil))
	assert.Equal(t, 32, types.MakeMatrix(types.FloatType, 2, 4).Size(nil))
}

func TestSizeOfStructUsesTable(t *testing.T) {
	table := types.NewTable()
	id := table.Declare("Foo")
	decl := table.Get(id)
	decl.Members = []types.Member{
		{Name: "x", Type: types.FloatType, Offset: 0},
		{Name: "y", Type: types.FloatType, Offset: 4},
	}
	decl.Size = 8

	st := types.MakeStruct("Foo", id)
	assert.Equal(t, 8, st.Size(table))
}

func TestEqualStructuralVectorAndMatrix(t *testing.T) {
	assert.True(t, types.Equal(types.MakeVector(types.FloatType, 3), types.MakeVector(types.FloatType, 3)))
	assert.False(t, types.Equal(types.MakeVector(types.FloatType, 3), types.MakeVector(types.FloatType, 2)))
	assert.True(t, types.Equal(types.MakeMatrix(types.FloatType, 2, 3), types.MakeMatrix(types.FloatType, 2, 3)))
	assert.False(t, types.Equal(types.MakeMatrix(types.FloatType, 2, 3), types.MakeMatrix(types.FloatType, 3, 2)))
}

func TestEqualStructByName(t *testing.T) {
	a := types.MakeStruct("Foo", 0)
	b := types.MakeStruct("Foo", 1) // same name, different arena id
	assert.True(t, types.Equal(a, b))
	assert.False(t, types.Equal(a, types.MakeStruct("Bar", 0)))
}

func TestEqualSlice(t *testing.T) {
	a := []types.Type{types.IntType, types.FloatType}
	b := []types.Type{types.IntType, types.FloatType}
	c := []types.Type{types.FloatType, types.IntType}
	assert.True(t, types.EqualSlice(a, b))
	assert.False(t, types.EqualSlice(a, c))
	assert.False(t, types.EqualSlice(a, a[:1]))
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "Int", types.IntType.String())
	assert.Equal(t, "Float", types.FloatType.String())
	assert.Equal(t, "Vec4", types.MakeVector(types.FloatType, 4).String())
	assert.Equal(t, "Mat3", types.MakeMatrix(types.FloatType, 3, 3).String())
	assert.Equal(t, "Mat2x4", types.MakeMatrix(types.FloatType, 2, 4).String())
}

func TestMemberByName(t *testing.T) {
	decl := &types.StructDecl{
		Name: "Foo",
		Members: []types.Member{
			{Name: "x", Type: types.FloatType},
			{Name: "y", Type: types.FloatType},
		},
	}
	m, ok := decl.MemberByName("y")
	require.True(t, ok)
	assert.Equal(t, types.FloatType, m.Type)

	_, ok = decl.MemberByName("z")
	assert.False(t, ok)
}

func TestTableDeclareLookupGet(t *testing.T) {
	table := types.NewTable()
	id := table.Declare("Foo")
	assert.Equal(t, 1, table.Len())

	got, ok := table.Lookup("Foo")
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, "Foo", table.Get(id).Name)

	_, ok = table.Lookup("Bar")
	assert.False(t, ok)
}
