package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesWellKnownPitches(t *testing.T) {
	cases := []struct {
		midi int
		name string
	}{
		{60, "C4"},
		{69, "A4"},
		{0, "C-1"},
		{127, "G9"},
		{40, "E2"},
		{64, "E4"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("midi %v", c.midi), func(t *testing.T) {
			assert.Equal(t, c.name, Name(c.midi))
		})
	}
}

func TestNameIsTotalOverOutOfRangeInputs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("B-2", Name(-1))
	assert.Equal("C9", Name(120))
	assert.Equal("C10", Name(132))
}

func TestFromStringFret(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(55, FromStringFret(3, 0, StandardTuning))
	assert.Equal(60, FromStringFret(3, 5, StandardTuning))
	assert.Equal(64, FromStringFret(1, 0, StandardTuning))
	assert.Equal(40, FromStringFret(6, 0, StandardTuning))
	assert.Equal(45, FromStringFret(6, 5, StandardTuning))
}
