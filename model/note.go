package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNoteName = errors.New("invalid note name")

// NoteName is a spelled note: a natural letter plus accidentals.
// Positive Accidentals are sharps, negative are flats.
type NoteName struct {
	Letter      byte
	Accidentals int
}

type Scale = []NoteName

type IntervalLabel = string

type Formula = []int

type ScaleType = string

var letterPitchClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

func ParseNoteName(s string) (NoteName, error) {
	if len(s) == 0 || len(s) > 3 {
		return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	letter := s[0]
	if _, ok := letterPitchClass[letter]; !ok {
		return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}

	rest := s[1:]
	switch {
	case rest == "":
		return NoteName{Letter: letter}, nil
	case strings.Trim(rest, "#") == "":
		return NoteName{Letter: letter, Accidentals: len(rest)}, nil
	case strings.Trim(rest, "b") == "":
		return NoteName{Letter: letter, Accidentals: -len(rest)}, nil
	}
	return NoteName{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
}

func (n NoteName) String() string {
	if n.Accidentals >= 0 {
		return string(n.Letter) + strings.Repeat("#", n.Accidentals)
	}
	return string(n.Letter) + strings.Repeat("b", -n.Accidentals)
}

// PitchClass works for any number of accidentals, unlike the flat-biased
// lookup table in the pitch package.
func (n NoteName) PitchClass() int {
	return ((letterPitchClass[n.Letter]+n.Accidentals)%12 + 12) % 12
}

func (n NoteName) IsDoubleAccidental() bool {
	return n.Accidentals >= 2 || n.Accidentals <= -2
}

func ScaleStrings(s Scale) []string {
	res := make([]string, 0, len(s))
	for _, n := range s {
		res = append(res, n.String())
	}
	return res
}
