package tab

import (
	"github.com/jsphweid/fretcast/diag"
	"github.com/jsphweid/fretcast/gp5"
	"github.com/jsphweid/fretcast/pitch"
)

type Position struct {
	String int
	Fret   int
}

// PitchMap maps a MIDI pitch to the single string/fret position it was
// played at in the tablature. When the same pitch appears at two positions
// the first one wins, so the map is lossy for songs that genuinely play one
// pitch in multiple places.
type PitchMap map[int]Position

// BuildPitchMap walks the song the same way ExtractTracks does, ignoring
// timing. A conflicting second mapping for a pitch is reported to the sink
// and discarded.
func BuildPitchMap(song *gp5.Song, sink diag.Sink) PitchMap {
	pm := make(PitchMap)
	for _, tr := range song.Tracks {
		if tr.IsPercussion {
			continue
		}
		for _, measure := range tr.Measures {
			for _, voice := range measure.Voices {
				for _, beat := range voice.Beats {
					for _, note := range beat.Notes {
						midi := pitch.FromStringFret(note.String, note.Fret, pitch.StandardTuning)
						pos := Position{String: note.String, Fret: note.Fret}
						if prev, ok := pm[midi]; ok {
							if prev != pos {
								sink.Warnf("pitch %d (%s) already mapped to string %d fret %d, ignoring string %d fret %d",
									midi, pitch.Name(midi), prev.String, prev.Fret, pos.String, pos.Fret)
							}
							continue
						}
						pm[midi] = pos
					}
				}
			}
		}
	}
	return pm
}
