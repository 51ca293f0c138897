package gp5

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newReader(data []byte) *reader {
	return &reader{r: bytes.NewReader(data)}
}

func TestByteSizeStringConsumesWholeBlock(t *testing.T) {
	r := newReader([]byte{3, 'a', 'b', 'c', 'x', 'x', 0x7f})

	assert := assert.New(t)
	assert.Equal("abc", r.byteSizeString(5))
	// the two padding bytes were consumed along with the block
	assert.Equal(byte(0x7f), r.byte8())
	assert.NoError(r.err)
}

func TestIntByteSizeString(t *testing.T) {
	r := newReader([]byte{4, 0, 0, 0, 3, 'a', 'b', 'c'})

	assert := assert.New(t)
	assert.Equal("abc", r.intByteSizeString())
	assert.NoError(r.err)
}

func TestIntSizeString(t *testing.T) {
	r := newReader([]byte{3, 0, 0, 0, 'h', 'e', 'y'})

	assert := assert.New(t)
	assert.Equal("hey", r.intSizeString())
	assert.NoError(r.err)
}

func TestTruncatedStringIsAnError(t *testing.T) {
	r := newReader([]byte{9, 0, 0, 0, 8, 'a'})

	r.intByteSizeString()

	assert.Error(t, r.err)
}

func TestReadDuration(t *testing.T) {
	assert := assert.New(t)

	// quarter note
	r := newReader([]byte{0x00})
	assert.Equal(960, r.readDuration(0))

	// dotted eighth
	r = newReader([]byte{0x01})
	assert.Equal(720, r.readDuration(0x01))

	// eighth-note triplet: three in the time of two
	r = newReader([]byte{0x01, 0x03, 0x00, 0x00, 0x00})
	assert.Equal(320, r.readDuration(0x20))

	// whole note
	r = newReader([]byte{0xfe})
	assert.Equal(3840, r.readDuration(0))
}

func TestBeatTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(960, beatTicks(4))
	assert.Equal(480, beatTicks(8))
	assert.Equal(1920, beatTicks(2))
}

func TestParseRejectsUnknownVersions(t *testing.T) {
	data := make([]byte, 64)
	data[0] = 9
	copy(data[1:], "NOT A GP5")

	_, err := Parse(data)

	assert.Error(t, err)
}

func TestParseRejectsTruncatedFiles(t *testing.T) {
	_, err := Parse([]byte{2, 'h', 'i'})

	assert.Error(t, err)
}
