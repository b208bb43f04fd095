package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/scaledex/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSpellCommand(t *testing.T) {
	out, err := run(t, "spell", "G")
	require.NoError(t, err)
	assert.Equal(t, "notes:     G A B C D E F#\nintervals: 1 2 3 4 5 6 7\n", out)
}

func TestSpellCommandWithFormulaAndChords(t *testing.T) {
	out, err := run(t, "spell", "C", "--formula", "2,2,1,2,2,2,1", "--type", "major", "--chords")
	require.NoError(t, err)
	assert.Contains(t, out, "notes:     C D E F G A B\n")
	assert.Contains(t, out, "chords:    C Dm Em F G Am Bdim\n")
}

func TestSpellCommandNormalizes(t *testing.T) {
	out, err := run(t, "spell", "C#", "--type", "harmonic-minor")
	require.NoError(t, err)
	assert.Contains(t, out, "notes:     C# D# E F# G# A C\n")
}

func TestSpellCommandErrors(t *testing.T) {
	_, err := run(t, "spell", "H")
	assert.Error(t, err)

	_, err = run(t, "spell", "C", "--type", "no-such-scale")
	assert.Error(t, err)

	_, err = run(t, "spell", "C", "--formula", "2,0,1")
	assert.Error(t, err)
}

func TestIntervalsCommand(t *testing.T) {
	out, err := run(t, "intervals", "Gb", "Gb", "Ab", "Bbb", "Cb")
	require.NoError(t, err)
	assert.Equal(t, "1 2 4\n", out)
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "* harmonic-minor     2,1,2,2,1,3,1")
	assert.Contains(t, lines, "  major              2,2,1,2,2,2,1")
}

func TestExportToStdout(t *testing.T) {
	out, err := run(t, "export", "C", "--out", "-", "--octave", "3")
	require.NoError(t, err)

	notes, err := midi.ReadNotes(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []uint8{48, 50, 52, 53, 55, 57, 59}, notes)
}

func TestExportToOutDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "A", "--type", "natural-minor", "--out-dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	_, err = uuid.Parse(strings.TrimSuffix(filepath.Base(path), ".mid"))
	assert.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	notes, err := midi.ReadNotes(f)
	require.NoError(t, err)
	assert.Equal(t, []uint8{57, 59, 60, 62, 64, 65, 67}, notes)
}

func TestExportReadsEnv(t *testing.T) {
	t.Setenv("SCALEDEX_OCTAVE", "5")
	out, err := run(t, "export", "C", "--out", "-")
	require.NoError(t, err)

	notes, err := midi.ReadNotes(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, uint8(72), notes[0])
}

func TestExportRejectsBadOctave(t *testing.T) {
	_, err := run(t, "export", "C", "--out", "-", "--octave", "11")
	assert.Error(t, err)
}
