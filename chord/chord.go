package chord

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/util"
)

type intervalPair struct {
	third, fifth int
}

var qualities = map[intervalPair]string{
	{4, 7}: "",
	{3, 7}: "m",
	{3, 6}: "dim",
	{4, 8}: "aug",
}

func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, strconv.Itoa(int(note)))
	}
	return strings.Join(parts, "-")
}

// Triads stacks thirds on every degree of s, wrapping past the last degree.
func Triads(s model.Scale) []model.Triad {
	if len(s) < 5 {
		return nil
	}

	res := make([]model.Triad, 0, len(s))
	for i := range s {
		notes := [3]model.NoteName{s[i], s[(i+2)%len(s)], s[(i+4)%len(s)]}
		quality := getQuality(notes)
		res = append(res, model.Triad{
			Root:    s[i],
			Notes:   notes,
			Quality: quality,
			Name:    s[i].String() + quality,
		})
	}
	return res
}

func getQuality(notes [3]model.NoteName) string {
	root := notes[0].PitchClass()
	p := intervalPair{
		third: util.Mod(notes[1].PitchClass()-root, 12),
		fifth: util.Mod(notes[2].PitchClass()-root, 12),
	}
	if q, ok := qualities[p]; ok {
		return q
	}
	return "?"
}

// Keys places notes in ascending order starting from the first note in the
// given octave (C4 = 60). Keys past 127 are clamped.
func Keys(notes []model.NoteName, octave int) []uint8 {
	res := make([]uint8, 0, len(notes))
	if len(notes) == 0 {
		return res
	}

	key := (octave+1)*12 + notes[0].PitchClass()
	prevPc := notes[0].PitchClass()
	for i, n := range notes {
		if i > 0 {
			key += util.Mod(n.PitchClass()-prevPc, 12)
			prevPc = n.PitchClass()
		}
		res = append(res, uint8(util.Min(util.Max(key, 0), 127)))
	}
	return res
}

func Voicing(t model.Triad, octave int) []uint8 {
	return Keys(t.Notes[:], octave)
}
