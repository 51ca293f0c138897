// Package midi reads standard MIDI files and pairs note on/off events into
// timed notes using per-pitch FIFO queues: the earliest unmatched onset of a
// pitch closes on the next offset of that pitch. True matching against the
// tablature by timing plus pitch would be more robust, but is not attempted.
package midi

import (
	"sort"

	"github.com/jsphweid/fretcast/constants"
	"github.com/jsphweid/fretcast/diag"
	"github.com/jsphweid/fretcast/model"
	"github.com/jsphweid/fretcast/pitch"
	"github.com/jsphweid/fretcast/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

const defaultBPM = 120 // 500000 microseconds per quarter note

type pendingOnset struct {
	seconds  float64
	ticks    int
	velocity uint8
	channel  uint8
}

// Matcher converts SMF tracks to note lists. The running tempo carries
// across tracks in file order, since format-1 files keep the tempo map in
// track 0; all other state is per track.
type Matcher struct {
	sink       diag.Sink
	resolution float64
	bpm        float64

	metaBPM     float64
	metaTimeSig [2]int
	haveTimeSig bool
}

func NewMatcher(ticks smf.MetricTicks, sink diag.Sink) *Matcher {
	resolution := float64(ticks)
	if resolution == 0 {
		resolution = 960
	}
	return &Matcher{
		sink:       sink,
		resolution: resolution,
		bpm:        defaultBPM,
		metaBPM:    defaultBPM,
	}
}

// Tempo reports the song tempo metadata: the last set_tempo event seen so
// far, not necessarily the initial one. Downstream consumers depend on this.
func (m *Matcher) Tempo() float64 {
	return m.metaBPM
}

// TimeSignature reports the last time_signature event seen, or 4/4.
func (m *Matcher) TimeSignature() [2]int {
	if !m.haveTimeSig {
		return [2]int{4, 4}
	}
	return m.metaTimeSig
}

// MatchTrack runs a single pass over one track's events and returns the
// track name meta text (if any) and the completed notes sorted by onset
// time. Notes whose onset was on the percussion channel are dropped, as are
// offsets with no queued onset and onsets still queued at track end; none
// of those are fatal.
func (m *Matcher) MatchTrack(track smf.Track) (string, []model.Note) {
	var name string
	var absTicks int
	var absSeconds float64
	pending := make(map[uint8][]pendingOnset)
	notes := []model.Note{}

	for _, event := range track {
		// the delta elapses under the tempo in effect before this event
		absTicks += int(event.Delta)
		absSeconds += float64(event.Delta) * 60.0 / (m.bpm * m.resolution)

		var channel uint8
		var key uint8
		var velocity uint8
		var bpm float64
		var num, denom, clocks, dsq uint8
		var text string
		switch {
		case event.Message.GetMetaTempo(&bpm):
			m.bpm = bpm
			m.metaBPM = bpm
		case event.Message.GetMetaTimeSig(&num, &denom, &clocks, &dsq):
			m.metaTimeSig = [2]int{int(num), int(denom)}
			m.haveTimeSig = true
		case event.Message.GetMetaTrackName(&text):
			name = text
		case event.Message.GetNoteStart(&channel, &key, &velocity):
			pending[key] = append(pending[key], pendingOnset{
				seconds:  absSeconds,
				ticks:    absTicks,
				velocity: velocity,
				channel:  channel,
			})
		case event.Message.GetNoteEnd(&channel, &key):
			queue := pending[key]
			if len(queue) == 0 {
				m.sink.Warnf("note off for pitch %d (%s) with no matching note on", key, pitch.Name(int(key)))
				continue
			}
			onset := queue[0]
			pending[key] = queue[1:]
			if onset.channel == constants.PercussionChannel {
				continue
			}
			ticks := onset.ticks
			durationTicks := absTicks - onset.ticks
			notes = append(notes, model.Note{
				Duration:      absSeconds - onset.seconds,
				DurationTicks: &durationTicks,
				Midi:          int(key),
				Name:          pitch.Name(int(key)),
				Ticks:         &ticks,
				Time:          onset.seconds,
				Velocity:      float64(onset.velocity) / 127.0,
			})
		}
	}

	for _, key := range util.SortedKeys(pending) {
		for range pending[key] {
			m.sink.Warnf("note on for pitch %d (%s) never closed, dropping", key, pitch.Name(int(key)))
		}
	}

	// drum filtering and multi-channel interleaving can complete notes out
	// of order
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	return name, notes
}
