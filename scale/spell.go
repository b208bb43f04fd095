// Package scale spells scales from interval formulas and names the interval
// degrees of a spelled scale.
package scale

import (
	"fmt"

	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/util"
)

// Spell walks the formula one step per degree, giving every degree the next
// natural letter and whatever accidental makes that letter hit the degree's
// pitch class. The last formula entry closes the octave and does not produce a
// degree, so the result has len(formula) notes.
func Spell(root string, formula model.Formula, scaleType model.ScaleType) (model.Scale, error) {
	rootPc, ok := pitch.Lookup(root)
	if !ok {
		return nil, &UnknownRootError{Root: root}
	}
	rootName, err := model.ParseNoteName(root)
	if err != nil {
		return nil, &UnknownRootError{Root: root}
	}
	if err := validateFormula(formula); err != nil {
		return nil, err
	}

	res := make(model.Scale, 0, len(formula))
	res = append(res, rootName)

	currPc := rootPc
	currLetter := pitch.LetterIndex(rootName.Letter)
	for _, step := range formula[:len(formula)-1] {
		currPc = util.Mod(currPc+step, 12)
		targetLetter := util.Mod(currLetter+1, len(pitch.Letters))
		res = append(res, spellDegree(currPc, pitch.Letters[targetLetter]))
		currLetter = targetLetter
	}

	if util.Contains(NormalizedTypes, scaleType) {
		normalize(res)
	}
	return res, nil
}

// SpellType spells a scale whose formula comes from the Catalog.
func SpellType(root string, scaleType model.ScaleType) (model.Scale, error) {
	formula, ok := Catalog[scaleType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScaleType, scaleType)
	}
	return Spell(root, formula, scaleType)
}

func validateFormula(formula model.Formula) error {
	if len(formula) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidFormula)
	}
	for i, step := range formula {
		if step <= 0 {
			return fmt.Errorf("%w: step %d is %d", ErrInvalidFormula, i, step)
		}
	}
	return nil
}

func spellDegree(pc int, letter byte) model.NoteName {
	diff := pc - pitch.LetterPitchClass[letter]
	switch diff {
	case 0:
		return model.NoteName{Letter: letter}
	case 1, -11:
		return model.NoteName{Letter: letter, Accidentals: 1}
	case -1, 11:
		return model.NoteName{Letter: letter, Accidentals: -1}
	case 2, -10:
		return model.NoteName{Letter: letter, Accidentals: 2}
	case -2, 10:
		return model.NoteName{Letter: letter, Accidentals: -2}
	}

	// Too far from the letter for two accidentals: give up on the letter
	// sequence for this degree and use the plain chromatic spelling.
	n, _ := model.ParseNoteName(pitch.Spelling(pc))
	return n
}
