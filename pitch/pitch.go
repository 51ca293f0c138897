package pitch

import "strconv"

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// StandardTuning holds the open-string MIDI pitches of a guitar in standard
// tuning, low E to high E.
var StandardTuning = []int{40, 45, 50, 55, 59, 64}

// Name converts a MIDI pitch to its note name with octave, e.g. 60 -> "C4".
// Total over all integers; values outside 0-127 yield syntactically valid
// but musically meaningless names.
func Name(midi int) string {
	i := midi % 12
	if i < 0 {
		i += 12
	}
	octave := (midi-i)/12 - 1
	return names[i] + strconv.Itoa(octave)
}

// FromStringFret computes the MIDI pitch of a fretted note. String numbers
// are 1-based from the highest string (string 1 = high E), tuning is indexed
// low to high. No bounds checks; out-of-range inputs propagate.
func FromStringFret(stringNumber, fret int, tuning []int) int {
	return tuning[6-stringNumber] + fret
}
