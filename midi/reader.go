package midi

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a standard MIDI file. gomidi panics on some malformed
// inputs (https://github.com/gomidi/midi/issues/20), so the panic is turned
// back into an error here and treated like any other parse failure.
func ReadFile(path string) (parsed *smf.SMF, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	parsed, err = smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return parsed, nil
}
