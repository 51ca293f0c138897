package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneBeatAt120BPMIsHalfASecond(t *testing.T) {
	assert.InDelta(t, 0.5, TicksToSeconds(480, 480, 120, 4), 1e-9)
}

func TestDenominatorScalesBeatsToQuarterNotes(t *testing.T) {
	assert := assert.New(t)
	// one eighth-note beat in 6/8 is half a quarter note
	assert.InDelta(0.25, TicksToSeconds(480, 480, 120, 8), 1e-9)
	// a half-note beat in 2/2 is two quarter notes
	assert.InDelta(1.0, TicksToSeconds(480, 480, 120, 2), 1e-9)
}

func TestTempoScalesLinearly(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(1.0, TicksToSeconds(480, 480, 60, 4), 1e-9)
	assert.InDelta(0.25, TicksToSeconds(480, 480, 240, 4), 1e-9)
}

func TestZeroTicksIsZeroSeconds(t *testing.T) {
	assert.Equal(t, 0.0, TicksToSeconds(0, 480, 120, 4))
}
