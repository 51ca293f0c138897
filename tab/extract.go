// Package tab turns the gp5 object graph into note events: timing
// conversion, note extraction for the tablature-only pipeline and the
// pitch map used to enrich MIDI-derived notes.
package tab

import (
	"github.com/jsphweid/fretcast/gp5"
	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/pitch"
)

// ExtractTracks walks tracks > measures > voices > beats > notes in file
// order and emits one model.Track per non-percussion track. Notes keep file
// order, which is not necessarily chronological. A single song-level tempo
// is used throughout; per-measure tempo changes are not honored.
func ExtractTracks(song *gp5.Song) []model.Track {
	var tracks []model.Track
	for _, tr := range song.Tracks {
		if tr.IsPercussion {
			continue
		}
		out := model.Track{Name: tr.Name, Notes: []model.Note{}}
		for _, measure := range tr.Measures {
			ts := measure.Header.TimeSignature
			ticksPerBeat := float64(measure.Header.Length) / float64(ts.Numerator)
			for _, voice := range measure.Voices {
				for _, beat := range voice.Beats {
					absTicks := measure.Header.Start + beat.Start
					start := TicksToSeconds(float64(absTicks), ticksPerBeat, float64(song.Tempo), ts.Denominator)
					// duration converted in the same measure's timing
					// context, an approximation when a beat nominally
					// crosses a signature boundary
					duration := TicksToSeconds(float64(beat.Duration), ticksPerBeat, float64(song.Tempo), ts.Denominator)
					for _, note := range beat.Notes {
						midi := pitch.FromStringFret(note.String, note.Fret, pitch.StandardTuning)
						id := len(out.Notes)
						stringNumber := note.String
						fret := note.Fret
						out.Notes = append(out.Notes, model.Note{
							ID:       &id,
							Duration: duration,
							Midi:     midi,
							Name:     pitch.Name(midi),
							Time:     start,
							Velocity: float64(note.Velocity) / 127.0,
							String:   &stringNumber,
							Fret:     &fret,
						})
					}
				}
			}
		}
		tracks = append(tracks, out)
	}
	return tracks
}
