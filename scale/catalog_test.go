package scale

import (
	"testing"

	"github.com/jsphweid/scaledex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFormulasSpanAnOctave(t *testing.T) {
	for scaleType, formula := range Catalog {
		var total int
		for _, step := range formula {
			total += step
		}
		assert.Equal(t, 12, total, scaleType)
	}
}

func TestCatalogScalesHaveOneNotePerStep(t *testing.T) {
	for scaleType, formula := range Catalog {
		for _, root := range pitch.Chromatic {
			s, err := Spell(root, formula, scaleType)
			require.NoError(t, err)
			assert.Len(t, s, len(formula), "%v %v", root, scaleType)
		}
	}
}

func TestNormalizedTypesAreCataloged(t *testing.T) {
	for scaleType := range NormalizedTypes {
		_, ok := Catalog[scaleType]
		assert.True(t, ok, scaleType)
	}
}

func TestScaleTypesSorted(t *testing.T) {
	types := ScaleTypes()
	assert := assert.New(t)
	assert.Len(types, len(Catalog))
	assert.Equal("altered", types[0])
	assert.Equal("whole-tone", types[len(types)-1])
}
