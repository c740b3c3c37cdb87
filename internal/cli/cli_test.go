package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFst() *fst.VectorFst {
	f := fst.New(semiring.TropicalZero)
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.TropicalWeight(0.4), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(0.6), NextState: s2})
	f.SetFinal(s2, semiring.TropicalWeight(0))
	return f
}

func TestReadWriteFstRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.fst")

	require.NoError(t, writeFst(path, "standard", sampleFst()))

	got, err := readFst(path, "standard")
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.NumStates())
}

func TestReadFstUnknownArcType(t *testing.T) {
	_, err := readFst("/does/not/matter", "nonsense")
	assert.Error(t, err)
}

func TestLoadConfigDefaultsWithNoPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wfst.toml")
	require.NoError(t, os.WriteFile(path, []byte("delta = 0.001\ncompress_archives = true\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg.Delta)
	assert.True(t, cfg.Compress)
	assert.Equal(t, "standard", cfg.DefaultArcs, "fields absent from the file keep their default")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig("/nonexistent/wfst.toml")
	assert.Error(t, err)
}

func TestConfigFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, defaultConfig(), configFromContext(context.Background()))
}

func TestRmEpsilonCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fst")
	out := filepath.Join(dir, "out.fst")
	require.NoError(t, writeFst(in, "standard", sampleFst()))

	cmd := newRmEpsilonCmd()
	cmd.SetArgs([]string{in, out, "--connect"})
	cmd.SetContext(withConfig(withLogger(context.Background(), newLogger(bytes.NewBuffer(nil), charmlog.InfoLevel)), defaultConfig()))
	require.NoError(t, cmd.Execute())

	got, err := readFst(out, "standard")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.NumStates())
}

func TestConcatCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fst")
	b := filepath.Join(dir, "b.fst")
	out := filepath.Join(dir, "out.fst")
	require.NoError(t, writeFst(a, "standard", sampleFst()))
	require.NoError(t, writeFst(b, "standard", sampleFst()))

	cmd := newConcatCmd()
	cmd.SetArgs([]string{a, b, out})
	cmd.SetContext(withConfig(withLogger(context.Background(), newLogger(bytes.NewBuffer(nil), charmlog.InfoLevel)), defaultConfig()))
	require.NoError(t, cmd.Execute())

	got, err := readFst(out, "standard")
	require.NoError(t, err)
	assert.EqualValues(t, 6, got.NumStates())
}
