package midi

import (
	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/tab"
)

// Enrich attaches string/fret positions from the tablature pitch map to
// MIDI-derived notes in place. Pitches absent from the map keep null
// string/fret; no nearest-pitch fallback is applied.
func Enrich(notes []model.Note, pm tab.PitchMap) {
	for i := range notes {
		pos, ok := pm[notes[i].Midi]
		if !ok {
			continue
		}
		stringNumber := pos.String
		fret := pos.Fret
		notes[i].String = &stringNumber
		notes[i].Fret = &fret
	}
}
