package midi

import (
	"testing"

	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/tab"
	"github.com/stretchr/testify/assert"
)

func TestEnrichAttachesKnownPitchesAndLeavesOthersNull(t *testing.T) {
	pm := tab.PitchMap{
		60: {String: 3, Fret: 5},
	}
	notes := []model.Note{
		{Midi: 60, Name: "C4"},
		{Midi: 61, Name: "C#4"},
	}

	Enrich(notes, pm)

	assert := assert.New(t)
	assert.Equal(3, *notes[0].String)
	assert.Equal(5, *notes[0].Fret)
	assert.Nil(notes[1].String)
	assert.Nil(notes[1].Fret)
}
