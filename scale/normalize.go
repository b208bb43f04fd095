package scale

import "github.com/jsphweid/scaledex/model"

// NormalizedTypes are the scale types whose spellings get simplified after the
// letter walk. Adding a type here is all it takes to normalize it.
var NormalizedTypes = map[model.ScaleType]struct{}{
	"harmonic-minor":    {},
	"melodic-minor":     {},
	"harmonic-major":    {},
	"phrygian-dominant": {},
	"lydian-augmented":  {},
	"altered":           {},
	"hungarian-minor":   {},
	"double-harmonic":   {},
	"whole-tone":        {},
	"major-pentatonic":  {},
}

var doubleSharps = map[string]string{
	"C##": "D",
	"D##": "E",
	"E##": "F#",
	"F##": "G",
	"G##": "A",
	"A##": "B",
	"B##": "C#",
}

var doubleFlats = map[string]string{
	"Cbb": "Bb",
	"Dbb": "C",
	"Ebb": "D",
	"Fbb": "Eb",
	"Gbb": "F",
	"Abb": "G",
	"Bbb": "A",
}

var whiteKeyAccidentals = map[string]string{
	"B#": "C",
	"E#": "F",
	"Cb": "B",
	"Fb": "E",
}

// normalize rewrites every degree after the root in place.
func normalize(s model.Scale) {
	for i := 1; i < len(s); i++ {
		s[i] = simplify(s[i])
	}
}

func simplify(n model.NoteName) model.NoteName {
	name := n.String()
	for _, table := range []map[string]string{doubleSharps, doubleFlats, whiteKeyAccidentals} {
		if replacement, ok := table[name]; ok {
			simplified, err := model.ParseNoteName(replacement)
			if err != nil {
				return n
			}
			return simplified
		}
	}
	return n
}
