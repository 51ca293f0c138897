package gp5

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/fretcast/constants"
)

const versionPrefix = "FICHIER GUITAR PRO v5"

// tuplet "enters" to the duration they fit into, e.g. a triplet plays 3 in
// the time of 2.
var tupletTimes = map[int]int{
	3: 2, 5: 4, 6: 4, 7: 4, 9: 8, 10: 8, 11: 8, 12: 8, 13: 8,
}

func ReadFile(path string) (*Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tablature file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Song, error) {
	r := &reader{r: bytes.NewReader(data)}

	song := &Song{}
	song.Version = r.byteSizeString(30)
	if !strings.HasPrefix(song.Version, versionPrefix) {
		return nil, fmt.Errorf("unsupported version %q", song.Version)
	}
	r.v510 = strings.Contains(song.Version, "v5.1")

	r.readInfo(song)
	r.readLyrics()
	r.readMasterEffect()
	r.readPageSetup()

	song.TempoName = r.intByteSizeString()
	song.Tempo = r.int32()
	if r.v510 {
		r.bool8()
	}
	song.Key = int(r.signedByte())
	r.int32() // octave

	channels := r.readMidiChannels()
	r.skip(38) // directions, 19 shorts
	r.int32()  // master reverb

	measureCount := r.int32()
	trackCount := r.int32()
	if r.err == nil && (measureCount < 0 || measureCount > 4096 || trackCount < 0 || trackCount > 64) {
		return nil, fmt.Errorf("implausible counts: %d measures, %d tracks", measureCount, trackCount)
	}

	r.readMeasureHeaders(song, measureCount)
	r.readTracks(song, trackCount, channels)
	if r.v510 {
		r.skip(1)
	} else {
		r.skip(2)
	}
	r.readMeasures(song)

	if r.err != nil {
		return nil, fmt.Errorf("parsing gp5 data: %w", r.err)
	}
	return song, nil
}

func (r *reader) readInfo(song *Song) {
	song.Title = r.intByteSizeString()
	song.Subtitle = r.intByteSizeString()
	song.Artist = r.intByteSizeString()
	song.Album = r.intByteSizeString()
	song.Words = r.intByteSizeString()
	song.Music = r.intByteSizeString()
	song.Copyright = r.intByteSizeString()
	song.Tab = r.intByteSizeString()
	song.Instructions = r.intByteSizeString()
	notices := r.int32()
	for i := 0; i < notices && r.err == nil; i++ {
		song.Notices = append(song.Notices, r.intByteSizeString())
	}
}

func (r *reader) readLyrics() {
	r.int32() // lyrics track
	for i := 0; i < 5; i++ {
		r.int32() // starting measure
		r.intSizeString()
	}
}

func (r *reader) readMasterEffect() {
	if r.v510 {
		r.int32()  // master volume
		r.skip(4)  // unknown
		r.skip(11) // equalizer bands
	}
}

func (r *reader) readPageSetup() {
	r.skip(28) // page size, margins, score size proportion: 7 ints
	r.skip(2)  // header/footer flags
	for i := 0; i < 10; i++ {
		r.intByteSizeString() // header/footer templates
	}
}

type midiChannel struct {
	instrument int
}

func (r *reader) readMidiChannels() []midiChannel {
	channels := make([]midiChannel, 64)
	for i := range channels {
		channels[i].instrument = r.int32()
		r.skip(6) // volume, balance, chorus, reverb, phaser, tremolo
		r.skip(2) // blank
	}
	return channels
}

func (r *reader) readMeasureHeaders(song *Song, count int) {
	start := constants.QuarterTicks
	var prev *MeasureHeader
	for i := 0; i < count && r.err == nil; i++ {
		if i > 0 {
			r.skip(1)
		}
		h := &MeasureHeader{Number: i + 1, Start: start}
		if prev != nil {
			h.TimeSignature = prev.TimeSignature
		} else {
			h.TimeSignature = TimeSignature{Numerator: 4, Denominator: 4}
		}

		flags := r.byte8()
		if flags&0x01 != 0 {
			h.TimeSignature.Numerator = int(r.byte8())
		}
		if flags&0x02 != 0 {
			h.TimeSignature.Denominator = int(r.byte8())
		}
		h.RepeatOpen = flags&0x04 != 0
		if flags&0x08 != 0 {
			h.RepeatClose = int(r.byte8()) - 1
		}
		if flags&0x20 != 0 {
			h.Marker = r.intByteSizeString()
			r.skip(4) // marker color
		}
		if flags&0x10 != 0 {
			r.byte8() // alternate ending
		}
		if flags&0x40 != 0 {
			r.signedByte() // key signature root
			r.byte8()      // key signature type
		}
		if flags&0x03 != 0 {
			r.skip(4) // eighth-note beaming
		}
		if flags&0x10 == 0 {
			r.skip(1)
		}
		h.TripletFeel = int(r.byte8())

		h.Length = h.TimeSignature.Numerator * beatTicks(h.TimeSignature.Denominator)
		start += h.Length
		song.MeasureHeaders = append(song.MeasureHeaders, h)
		prev = h
	}
}

// beatTicks is the tick length of one beat unit of the given time-signature
// denominator, e.g. denominator 4 -> 960, denominator 8 -> 480.
func beatTicks(denominator int) int {
	if denominator <= 0 {
		return constants.QuarterTicks
	}
	return constants.QuarterTicks * 4 / denominator
}

func (r *reader) readTracks(song *Song, count int, channels []midiChannel) {
	for i := 0; i < count && r.err == nil; i++ {
		track := r.readTrack(i)
		if track.Channel >= 0 && track.Channel < len(channels) {
			track.Instrument = channels[track.Channel].instrument
		}
		song.Tracks = append(song.Tracks, track)
	}
}

func (r *reader) readTrack(number int) *Track {
	if number == 0 || !r.v510 {
		r.skip(1)
	}
	t := &Track{}
	flags := r.byte8()
	t.IsPercussion = flags&0x01 != 0
	t.Name = r.byteSizeString(40)

	stringCount := r.int32()
	for i := 0; i < 7; i++ {
		tuning := r.int32()
		if i < stringCount {
			t.Strings = append(t.Strings, tuning)
		}
	}
	t.Port = r.int32()
	t.Channel = r.int32() - 1
	t.EffectChannel = r.int32() - 1
	if t.Channel == constants.PercussionChannel {
		t.IsPercussion = true
	}
	t.Frets = r.int32()
	t.Capo = r.int32()
	r.skip(4) // color

	r.skip(2)  // display flags
	r.skip(3)  // auto accentuation, bank, humanize
	r.skip(24) // unused playback values
	r.readRSEInstrument()
	if r.v510 {
		r.skip(8) // unknown + equalizer bands
		r.intByteSizeString()
		r.intByteSizeString()
	}
	return t
}

func (r *reader) readRSEInstrument() {
	r.int32() // instrument
	r.int32() // unknown
	r.int32() // sound bank
	if r.v510 {
		r.int32() // effect number
	} else {
		r.int16()
		r.skip(1)
	}
}

func (r *reader) readMeasures(song *Song) {
	for _, h := range song.MeasureHeaders {
		for _, t := range song.Tracks {
			if r.err != nil {
				return
			}
			m := &Measure{Header: h}
			for v := 0; v < 2; v++ {
				m.Voices[v] = r.readVoice()
			}
			r.skip(1) // line break
			t.Measures = append(t.Measures, m)
		}
	}
}

func (r *reader) readVoice() *Voice {
	voice := &Voice{}
	beatCount := r.int32()
	if r.err == nil && (beatCount < 0 || beatCount > 256) {
		r.fail(fmt.Errorf("implausible beat count %d", beatCount))
		return voice
	}
	start := 0
	for i := 0; i < beatCount && r.err == nil; i++ {
		beat := r.readBeat()
		beat.Start = start
		start += beat.Duration
		voice.Beats = append(voice.Beats, beat)
	}
	return voice
}

func (r *reader) readBeat() *Beat {
	beat := &Beat{}
	flags := r.byte8()
	if flags&0x40 != 0 {
		beat.IsRest = r.byte8() == 0x02
	}
	beat.Duration = r.readDuration(flags)
	if flags&0x02 != 0 {
		r.readChord()
	}
	if flags&0x04 != 0 {
		beat.Text = r.intByteSizeString()
	}
	if flags&0x08 != 0 {
		r.readBeatEffects()
	}
	if flags&0x10 != 0 {
		r.readMixTableChange()
	}

	stringFlags := r.byte8()
	for i := 6; i >= 0; i-- {
		if stringFlags&(1<<i) != 0 {
			beat.Notes = append(beat.Notes, r.readNote(7-i))
		}
	}

	r.skip(1)
	flags2 := r.byte8()
	if flags2&0x08 != 0 {
		r.byte8()
	}
	return beat
}

func (r *reader) readDuration(beatFlags byte) int {
	value := int(r.signedByte())
	shift := value + 2
	if shift < 0 || shift > 8 {
		r.fail(fmt.Errorf("implausible duration value %d", value))
		return 0
	}
	ticks := constants.QuarterTicks * 4 / (1 << shift)
	if beatFlags&0x20 != 0 {
		enters := r.int32()
		if times, ok := tupletTimes[enters]; ok {
			ticks = ticks * times / enters
		}
	}
	if beatFlags&0x01 != 0 {
		ticks = ticks * 3 / 2
	}
	return ticks
}

func (r *reader) readChord() {
	r.skip(17)
	r.byteSizeString(21) // chord name
	r.skip(4)
	r.int32() // first fret
	for i := 0; i < 7; i++ {
		r.int32() // fret per string
	}
	r.skip(32)
}

func (r *reader) readBeatEffects() {
	flags1 := r.byte8()
	flags2 := r.byte8()
	if flags1&0x20 != 0 {
		r.signedByte() // tap/slap/pop
	}
	if flags2&0x04 != 0 {
		r.readBend() // tremolo bar
	}
	if flags1&0x40 != 0 {
		r.signedByte() // stroke down
		r.signedByte() // stroke up
	}
	if flags2&0x02 != 0 {
		r.signedByte() // pick stroke
	}
}

func (r *reader) readBend() {
	r.signedByte() // type
	r.int32()      // value
	points := r.int32()
	if r.err == nil && (points < 0 || points > 64) {
		r.fail(fmt.Errorf("implausible bend point count %d", points))
		return
	}
	for i := 0; i < points; i++ {
		r.int32() // position
		r.int32() // value
		r.bool8() // vibrato
	}
}

func (r *reader) readMixTableChange() {
	r.signedByte() // instrument
	r.readRSEInstrument()
	volume := r.signedByte()
	balance := r.signedByte()
	chorus := r.signedByte()
	reverb := r.signedByte()
	phaser := r.signedByte()
	tremolo := r.signedByte()
	r.intByteSizeString() // tempo name
	tempo := r.int32()

	for _, v := range []int8{volume, balance, chorus, reverb, phaser, tremolo} {
		if v >= 0 {
			r.signedByte() // transition duration
		}
	}
	if tempo >= 0 {
		r.signedByte() // transition duration
		if r.v510 {
			r.bool8() // hide tempo
		}
	}
	r.byte8()      // apply-to-all-tracks flags
	r.signedByte() // wah
	if r.v510 {
		r.intByteSizeString()
		r.intByteSizeString()
	}
}

func (r *reader) readNote(stringNumber int) *Note {
	n := &Note{String: stringNumber, Type: NoteNormal, Velocity: 95}
	flags := r.byte8()
	if flags&0x20 != 0 {
		n.Type = int(r.byte8())
	}
	if flags&0x10 != 0 {
		dyn := int(r.signedByte())
		n.Velocity = 15 + 16*dyn - 16
	}
	if flags&0x20 != 0 {
		n.Fret = int(r.signedByte())
	}
	if flags&0x80 != 0 {
		r.skip(2) // fingering
	}
	if flags&0x01 != 0 {
		r.skip(8) // duration percent
	}
	r.skip(1)
	if flags&0x08 != 0 {
		r.readNoteEffects()
	}
	return n
}

func (r *reader) readNoteEffects() {
	flags1 := r.byte8()
	flags2 := r.byte8()
	if flags1&0x01 != 0 {
		r.readBend()
	}
	if flags1&0x10 != 0 {
		r.skip(5) // grace note: fret, dynamic, transition, duration, flags
	}
	if flags2&0x04 != 0 {
		r.signedByte() // tremolo picking speed
	}
	if flags2&0x08 != 0 {
		r.signedByte() // slide type
	}
	if flags2&0x10 != 0 {
		kind := r.signedByte() // harmonic type
		switch kind {
		case 2:
			r.skip(3) // artificial: semitone, accidental, octave
		case 3:
			r.skip(1) // tapped: fret
		}
	}
	if flags2&0x20 != 0 {
		r.signedByte() // trill fret
		r.signedByte() // trill period
	}
}

// reader wraps the byte stream with a sticky error so parsing code reads
// straight through and checks once.
type reader struct {
	r    *bytes.Reader
	v510 bool
	err  error
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) byte8() byte {
	if r.err != nil {
		return 0
	}
	b, err := r.r.ReadByte()
	if err != nil {
		r.fail(unexpectedEOF(err))
		return 0
	}
	return b
}

func (r *reader) signedByte() int8 {
	return int8(r.byte8())
}

func (r *reader) bool8() bool {
	return r.byte8() != 0
}

func (r *reader) int32() int {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		r.fail(unexpectedEOF(err))
		return 0
	}
	return int(int32(binary.LittleEndian.Uint32(buf[:])))
}

func (r *reader) int16() int {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		r.fail(unexpectedEOF(err))
		return 0
	}
	return int(int16(binary.LittleEndian.Uint16(buf[:])))
}

func (r *reader) skip(n int) {
	if r.err != nil {
		return
	}
	if _, err := r.r.Seek(int64(n), io.SeekCurrent); err != nil {
		r.fail(err)
	}
}

func (r *reader) read(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.fail(fmt.Errorf("negative string length %d", n))
		return nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		r.fail(unexpectedEOF(err))
		return nil
	}
	return buf
}

// byteSizeString reads a length byte followed by a fixed-size block and
// returns the first length bytes of the block.
func (r *reader) byteSizeString(size int) string {
	length := int(r.byte8())
	buf := r.read(size)
	if buf == nil || length > len(buf) {
		return ""
	}
	return string(buf[:length])
}

// intSizeString reads an int32 length followed by that many bytes.
func (r *reader) intSizeString() string {
	return string(r.read(r.int32()))
}

// intByteSizeString reads an int32 block size covering a length byte plus a
// block of size-1 bytes, of which the first length bytes are the string.
func (r *reader) intByteSizeString() string {
	size := r.int32()
	if r.err != nil {
		return ""
	}
	if size < 1 {
		r.fail(fmt.Errorf("implausible string block size %d", size))
		return ""
	}
	return r.byteSizeString(size - 1)
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
