package tab

// TicksToSeconds converts a tick offset within a measure to seconds.
// ticksPerBeat is the measure length divided by the time-signature numerator;
// tempo is the song tempo in quarter notes per minute. The denominator scales
// a beat back to quarter notes so compound meters like 6/8 time correctly.
func TicksToSeconds(ticks, ticksPerBeat, tempo float64, denominator int) float64 {
	quarterPerUnit := 4.0 / float64(denominator)
	ticksPerQuarter := ticksPerBeat / quarterPerUnit
	secondsPerQuarter := 60.0 / tempo
	return ticks / ticksPerQuarter * secondsPerQuarter
}
