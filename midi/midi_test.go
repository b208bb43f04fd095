package midi

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jsphweid/scaledex/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToBytes(t *testing.T, root, scaleType string, opts Options) []byte {
	t.Helper()
	s, err := scale.SpellType(root, scaleType)
	require.NoError(t, err)

	mf, err := Render(s, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, mf))
	return buf.Bytes()
}

func TestRenderScaleRoundTrips(t *testing.T) {
	data := renderToBytes(t, "C", "major", DefaultOptions())

	notes, err := ReadNotes(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []uint8{60, 62, 64, 65, 67, 69, 71}, notes)
}

func TestRenderRespectsOctave(t *testing.T) {
	opts := DefaultOptions()
	opts.Octave = 2
	data := renderToBytes(t, "A", "natural-minor", opts)

	notes, err := ReadNotes(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []uint8{45, 47, 48, 50, 52, 53, 55}, notes)
}

func TestRenderAppendsTriads(t *testing.T) {
	opts := DefaultOptions()
	opts.Triads = true
	data := renderToBytes(t, "C", "major", opts)

	notes, err := ReadNotes(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, notes, 7+7*3)
	assert.Equal(t, []uint8{60, 64, 67}, notes[7:10])
	assert.Equal(t, []uint8{71, 74, 77}, notes[len(notes)-3:])
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := Render(nil, DefaultOptions())
	assert.True(t, errors.Is(err, ErrEmptyScale))

	s, err := scale.SpellType("C", "major")
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Tempo = 0
	_, err = Render(s, opts)
	assert.Error(t, err)
}

func TestReadNotesRejectsGarbage(t *testing.T) {
	_, err := ReadNotes(strings.NewReader("definitely not a midi file"))
	assert.Error(t, err)
}
