package fstfile_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstfile"
	"github.com/katalvlaran/wfst/script"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	entry, err := script.Lookup(script.Standard)
	require.NoError(t, err)

	f := fst.New(semiring.TropicalZero)
	s0, s1 := f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalWeight(1.5), NextState: s1})
	f.SetFinal(s1, semiring.TropicalWeight(0))
	f.SetProperties(fst.Acyclic, fst.Acyclic|fst.Cyclic)

	var buf bytes.Buffer
	hdr := fstfile.NewHeader(script.Standard, "vector", f.Properties(), f.NumStates())
	require.NoError(t, fstfile.Write(&buf, f, hdr, entry.Codec))

	got, gotHdr, err := fstfile.Read(&buf, entry.Codec, semiring.TropicalZero)
	require.NoError(t, err)

	assert.Equal(t, script.Standard, gotHdr.ArcType)
	assert.EqualValues(t, 2, got.NumStates())
	assert.Equal(t, s0, got.Start())

	arcs := fst.Arcs(got, s0)
	require.Len(t, arcs, 1)
	assert.Equal(t, semiring.TropicalWeight(1.5), arcs[0].Weight)
	assert.Equal(t, semiring.TropicalWeight(0), got.Final(s1))
	assert.True(t, got.Properties().KnownTrue(fst.Acyclic))
}

func TestReadRejectsCorruptData(t *testing.T) {
	entry, err := script.Lookup(script.Standard)
	require.NoError(t, err)

	_, _, err = fstfile.Read(bytes.NewReader([]byte("not cbor")), entry.Codec, semiring.TropicalZero)
	assert.ErrorIs(t, err, fstfile.ErrIOCorrupt)
}
