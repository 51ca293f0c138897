// Package convert wires the pipelines together: tablature file in, JSON
// note events out, optionally reconciled with a companion MIDI file.
package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/fretcast/diag"
	"github.com/jsphweid/fretcast/gp5"
	"github.com/jsphweid/fretcast/midi"
	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/pitch"
	"github.com/jsphweid/fretcast/tab"
	"github.com/jsphweid/fretcast/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Tab converts a Guitar Pro file on its own. Tempo and time signature in
// the output meta are the song tempo and the first measure's signature,
// snapshot metadata even when later measures differ.
func Tab(gp5Path string, sink diag.Sink) (*model.Song, error) {
	song, err := gp5.ReadFile(gp5Path)
	if err != nil {
		return nil, err
	}

	meta := model.Meta{
		Title:  song.Title,
		Tempo:  float64(song.Tempo),
		Tuning: pitch.StandardTuning,
	}
	if meta.Title == "" {
		meta.Title = util.Stem(gp5Path)
	}
	if len(song.MeasureHeaders) > 0 {
		ts := song.MeasureHeaders[0].TimeSignature
		meta.TimeSignature = [2]int{ts.Numerator, ts.Denominator}
	}

	return &model.Song{Meta: meta, Tracks: tab.ExtractTracks(song)}, nil
}

// Pair converts a Guitar Pro file together with its exported MIDI file.
// Note timing comes from the MIDI stream, string/fret positions from the
// tablature via the pitch map. Tracks that produce no notes (tempo-map-only
// tracks, pure percussion tracks) are omitted.
func Pair(gp5Path, midPath string, sink diag.Sink) (*model.Song, error) {
	tabSong, err := gp5.ReadFile(gp5Path)
	if err != nil {
		return nil, err
	}
	pitchMap := tab.BuildPitchMap(tabSong, sink)

	mf, err := midi.ReadFile(midPath)
	if err != nil {
		return nil, err
	}
	ticks, ok := mf.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported midi time format %v", mf.TimeFormat)
	}

	matcher := midi.NewMatcher(ticks, sink)
	var tracks []model.Track
	for _, track := range mf.Tracks {
		name, notes := matcher.MatchTrack(track)
		if len(notes) == 0 {
			continue
		}
		midi.Enrich(notes, pitchMap)
		tracks = append(tracks, model.Track{Name: name, Notes: notes})
	}

	meta := model.Meta{
		Title:         tabSong.Title,
		Tempo:         matcher.Tempo(),
		TimeSignature: matcher.TimeSignature(),
		Tuning:        pitch.StandardTuning,
	}
	if meta.Title == "" {
		meta.Title = util.Stem(gp5Path)
	}

	return &model.Song{Meta: meta, Tracks: tracks}, nil
}

// WriteJSON writes the song as indented JSON, creating parent directories
// as needed. The bytes go to a temp file first and are renamed into place
// so readers never see a partial document.
func WriteJSON(song *model.Song, path string) error {
	data, err := json.MarshalIndent(song, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding song: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	tmp := filepath.Join(dir, uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %v: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %v: %w", tmp, err)
	}
	return nil
}
