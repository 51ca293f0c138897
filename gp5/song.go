// Package gp5 reads Guitar Pro 5 files (v5.00 and v5.10) into a plain
// track/measure/voice/beat/note object graph. Only the data needed for
// note-event extraction is modeled; effect payloads are consumed to keep
// the stream in sync but not retained.
package gp5

type Song struct {
	Version      string
	Title        string
	Subtitle     string
	Artist       string
	Album        string
	Words        string
	Music        string
	Copyright    string
	Tab          string
	Instructions string
	Notices      []string

	TempoName string
	Tempo     int
	Key       int

	MeasureHeaders []*MeasureHeader
	Tracks         []*Track
}

type TimeSignature struct {
	Numerator   int
	Denominator int
}

// MeasureHeader describes one measure, shared by every track. Start and
// Length are in ticks; Start of the first measure is one quarter note in,
// which is where Guitar Pro places the time origin.
type MeasureHeader struct {
	Number        int
	Start         int
	Length        int
	TimeSignature TimeSignature
	RepeatOpen    bool
	RepeatClose   int
	Marker        string
	TripletFeel   int
}

type Track struct {
	Name          string
	IsPercussion  bool
	Strings       []int // tuning per string, string 1 (highest pitched) first
	Port          int
	Channel       int
	EffectChannel int
	Instrument    int
	Frets         int
	Capo          int
	Measures      []*Measure
}

type Measure struct {
	Header *MeasureHeader
	Voices [2]*Voice
}

type Voice struct {
	Beats []*Beat
}

// Beat groups the notes struck together at one position. Start is in ticks
// relative to the start of the measure.
type Beat struct {
	Start    int
	Duration int
	IsRest   bool
	Text     string
	Notes    []*Note
}

const (
	NoteNormal = 1
	NoteTied   = 2
	NoteDead   = 3
)

type Note struct {
	String   int // 1-based, 1 = highest pitched string
	Fret     int
	Velocity int
	Type     int
}
