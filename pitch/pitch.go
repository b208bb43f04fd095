// Package pitch holds the static pitch-class reference tables shared by the
// speller and the interval namer.
package pitch

import "github.com/jsphweid/scaledex/util"

// Chromatic is flat-biased and indexed by pitch class.
var Chromatic = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var Letters = [7]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

var LetterPitchClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Enharmonics maps spellings missing from Chromatic onto one that is present.
var Enharmonics = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
	"B#": "C",
	"E#": "F",
	"Cb": "B",
	"Fb": "E",
}

var chromaticIndex = func() map[string]int {
	m := make(map[string]int, len(Chromatic))
	for i, name := range Chromatic {
		m[name] = i
	}
	return m
}()

// Lookup resolves a spelling to its pitch class. Double accidentals and
// anything else outside the two tables are not resolved.
func Lookup(name string) (int, bool) {
	if pc, ok := chromaticIndex[name]; ok {
		return pc, true
	}
	if alias, ok := Enharmonics[name]; ok {
		pc, ok := chromaticIndex[alias]
		return pc, ok
	}
	return 0, false
}

func Spelling(pc int) string {
	return Chromatic[util.Mod(pc, 12)]
}

// LetterIndex returns the position of letter in Letters, or -1.
func LetterIndex(letter byte) int {
	for i, l := range Letters {
		if l == letter {
			return i
		}
	}
	return -1
}
