package sym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/types"
)

func TestNewFuncMetaStartsEmpty(t *testing.T) {
	f := sym.NewFuncMeta("main")
	assert.Equal(t, "main", f.Name)
	assert.Empty(t, f.Locals)
	assert.Empty(t, f.ParamNames)
}

func TestFuncMetaDeclare(t *testing.T) {
	f := sym.NewFuncMeta("main")
	f.Declare(&sym.Symbol{Name: "a", Type: types.FloatType, Offset: 0, IsMutable: true})
	require.Contains(t, f.Locals, "a")
	assert.True(t, f.Locals["a"].IsMutable)
}

func TestNewProgramStartsEmpty(t *testing.T) {
	p := sym.NewProgram()
	assert.Empty(t, p.Funcs)
	assert.Empty(t, p.Globals)
	assert.Equal(t, 0, p.Structs.Len())
	assert.Equal(t, 0, p.StaticSize)
}
