package scale

import (
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/util"
)

// Catalog formulas include the closing step back to the octave.
var Catalog = map[model.ScaleType]model.Formula{
	"major":             {2, 2, 1, 2, 2, 2, 1},
	"natural-minor":     {2, 1, 2, 2, 1, 2, 2},
	"dorian":            {2, 1, 2, 2, 2, 1, 2},
	"phrygian":          {1, 2, 2, 2, 1, 2, 2},
	"lydian":            {2, 2, 2, 1, 2, 2, 1},
	"mixolydian":        {2, 2, 1, 2, 2, 1, 2},
	"locrian":           {1, 2, 2, 1, 2, 2, 2},
	"harmonic-minor":    {2, 1, 2, 2, 1, 3, 1},
	"melodic-minor":     {2, 1, 2, 2, 2, 2, 1},
	"harmonic-major":    {2, 2, 1, 2, 1, 3, 1},
	"phrygian-dominant": {1, 3, 1, 2, 1, 2, 2},
	"lydian-dominant":   {2, 2, 2, 1, 2, 1, 2},
	"lydian-augmented":  {2, 2, 2, 2, 1, 2, 1},
	"altered":           {1, 2, 1, 2, 2, 2, 2},
	"locrian-natural-2": {2, 1, 2, 1, 2, 2, 2},
	"dorian-b2":         {1, 2, 2, 2, 2, 1, 2},
	"mixolydian-b6":     {2, 2, 1, 2, 1, 2, 2},
	"hungarian-minor":   {2, 1, 3, 1, 1, 3, 1},
	"double-harmonic":   {1, 3, 1, 2, 1, 3, 1},
	"whole-tone":        {2, 2, 2, 2, 2, 2},
	"major-pentatonic":  {2, 2, 3, 2, 3},
}

func ScaleTypes() []model.ScaleType {
	return util.GetSortedKeys(Catalog)
}
