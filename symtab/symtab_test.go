package symtab_test

import (
	"testing"

	"github.com/katalvlaran/wfst/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSymbolIsIdempotent(t *testing.T) {
	st := symtab.New("t")
	a1 := st.AddSymbol("a")
	a2 := st.AddSymbol("a")
	assert.Equal(t, a1, a2)

	sym, ok := st.Find(a1)
	require.True(t, ok)
	assert.Equal(t, "a", sym)
}

func TestCompatibleSameContentDifferentOrder(t *testing.T) {
	a := symtab.New("t")
	a.AddSymbol("x")
	a.AddSymbol("y")

	b := symtab.New("t")
	b.AddSymbol("y")
	b.AddSymbol("x")

	assert.True(t, symtab.Compatible(a, b))
}

func TestIncompatibleDifferentContent(t *testing.T) {
	a := symtab.New("t")
	a.AddSymbol("x")
	b := symtab.New("t")
	b.AddSymbol("z")

	assert.False(t, symtab.Compatible(a, b))
}

func TestCompatibleWithNil(t *testing.T) {
	a := symtab.New("t")
	a.AddSymbol("x")
	assert.True(t, symtab.Compatible(a, nil))
	assert.True(t, symtab.Compatible(nil, nil))
}

func TestYAMLRoundTrip(t *testing.T) {
	st := symtab.New("t")
	st.AddSymbol("hello")
	st.AddSymbol("world")

	data, err := st.DumpYAML()
	require.NoError(t, err)

	loaded, err := symtab.LoadYAML(data)
	require.NoError(t, err)
	assert.Equal(t, st.Checksum(), loaded.Checksum())
}
