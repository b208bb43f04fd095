package scale

import (
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/util"
)

// IntervalLabels is indexed by semitones above the root.
var IntervalLabels = [12]model.IntervalLabel{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// NameIntervals labels each note by its distance from root. Notes the pitch
// table cannot resolve (double accidentals, typos) are dropped, so a result
// shorter than notes means something in notes was unspellable.
func NameIntervals(notes []string, root string) ([]model.IntervalLabel, error) {
	rootPc, ok := pitch.Lookup(root)
	if !ok {
		return nil, &UnknownRootError{Root: root}
	}

	res := make([]model.IntervalLabel, 0, len(notes))
	for _, note := range notes {
		pc, ok := pitch.Lookup(note)
		if !ok {
			continue
		}
		res = append(res, IntervalLabels[util.Mod(pc-rootPc, 12)])
	}
	return res, nil
}
