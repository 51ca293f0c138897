package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/pitch"
	"github.com/stretchr/testify/assert"
)

func sampleSong() *model.Song {
	id := 0
	stringNumber := 3
	fret := 5
	ticks := 960
	durationTicks := 480
	return &model.Song{
		Meta: model.Meta{
			Title:         "Test Song",
			Tempo:         120,
			TimeSignature: [2]int{4, 4},
			Tuning:        pitch.StandardTuning,
		},
		Tracks: []model.Track{
			{
				Name: "Guitar",
				Notes: []model.Note{
					{ID: &id, Duration: 0.5, Midi: 60, Name: "C4", Time: 0.5, Velocity: 0.75, String: &stringNumber, Fret: &fret},
					{Duration: 0.25, DurationTicks: &durationTicks, Midi: 64, Name: "E4", Ticks: &ticks, Time: 0.5, Velocity: 0.5},
				},
			},
		},
	}
}

func TestWriteJSONIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	song := sampleSong()

	path1 := filepath.Join(dir, "a.json")
	path2 := filepath.Join(dir, "b.json")
	assert := assert.New(t)
	assert.NoError(WriteJSON(song, path1))
	assert.NoError(WriteJSON(song, path2))

	data1, err := os.ReadFile(path1)
	assert.NoError(err)
	data2, err := os.ReadFile(path2)
	assert.NoError(err)
	assert.Equal(data1, data2)
}

func TestWriteJSONCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "song.json")

	assert := assert.New(t)
	assert.NoError(WriteJSON(sampleSong(), path))
	_, err := os.Stat(path)
	assert.NoError(err)
}

func TestWriteJSONLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	assert := assert.New(t)
	assert.NoError(WriteJSON(sampleSong(), filepath.Join(dir, "song.json")))

	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Len(entries, 1)
}

func TestNoteJSONShape(t *testing.T) {
	data, err := json.Marshal(sampleSong())
	assert := assert.New(t)
	assert.NoError(err)

	var doc struct {
		Meta struct {
			Title         string `json:"title"`
			TimeSignature []int  `json:"timeSignature"`
			Tuning        []int  `json:"tuning"`
		} `json:"meta"`
		Tracks []struct {
			Notes []map[string]any `json:"notes"`
		} `json:"tracks"`
	}
	assert.NoError(json.Unmarshal(data, &doc))

	assert.Equal("Test Song", doc.Meta.Title)
	assert.Equal([]int{4, 4}, doc.Meta.TimeSignature)
	assert.Len(doc.Meta.Tuning, 6)

	tabNote := doc.Tracks[0].Notes[0]
	assert.Contains(tabNote, "id")
	assert.NotContains(tabNote, "ticks")
	assert.Equal(3.0, tabNote["string"])

	mergedNote := doc.Tracks[0].Notes[1]
	assert.NotContains(mergedNote, "id")
	assert.Contains(mergedNote, "ticks")
	assert.Contains(mergedNote, "durationTicks")
	// unmapped pitches keep explicit nulls
	assert.Contains(mergedNote, "string")
	assert.Nil(mergedNote["string"])
	assert.Nil(mergedNote["fret"])
}
