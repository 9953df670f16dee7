package tab

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

var (
	ErrStringOutOfRange = errors.New("string out of range")
	ErrFretOutOfRange   = errors.New("fret out of range")
	ErrPitchOutOfRange  = errors.New("pitch out of MIDI range")
)

// MaxKey is the highest MIDI key.
const MaxKey = 127

// Instrument describes a fretted instrument. Tuning holds the MIDI key of
// each open string, lowest string first.
type Instrument struct {
	Name   string
	Tuning []uint8
	Frets  uint8
}

var (
	Bass4   = Instrument{Name: "bass", Tuning: []uint8{28, 33, 38, 43}, Frets: 24}
	Bass5   = Instrument{Name: "bass5", Tuning: []uint8{23, 28, 33, 38, 43}, Frets: 24}
	Guitar  = Instrument{Name: "guitar", Tuning: []uint8{40, 45, 50, 55, 59, 64}, Frets: 24}
	Guitar7 = Instrument{Name: "guitar7", Tuning: []uint8{35, 40, 45, 50, 55, 59, 64}, Frets: 24}
)

// InstrumentForStrings picks the preset with the given string count.
func InstrumentForStrings(n int) (Instrument, error) {
	for _, inst := range []Instrument{Bass4, Bass5, Guitar, Guitar7} {
		if len(inst.Tuning) == n {
			return inst, nil
		}
	}
	return Instrument{}, fmt.Errorf("no instrument with %d strings", n)
}

// Strings is the number of strings.
func (inst Instrument) Strings() int { return len(inst.Tuning) }

// Check reports whether inst has strings and every fret on every string
// stays within the MIDI key range.
func (inst Instrument) Check() error {
	if len(inst.Tuning) == 0 {
		return fmt.Errorf("instrument %q has no strings", inst.Name)
	}
	for s, open := range inst.Tuning {
		if top := int(open) + int(inst.Frets); top > MaxKey {
			return fmt.Errorf("%w: string %d of %s reaches key %d", ErrPitchOutOfRange, s, inst.Name, top)
		}
	}
	return nil
}

// Validate reports whether the note can be played on inst.
func (inst Instrument) Validate(n Note) error {
	if int(n.str) >= len(inst.Tuning) {
		return fmt.Errorf("%w: string %d on a %d-string %s", ErrStringOutOfRange, n.str, len(inst.Tuning), inst.Name)
	}
	if n.fret > inst.Frets {
		return fmt.Errorf("%w: fret %d above %d", ErrFretOutOfRange, n.fret, inst.Frets)
	}
	return nil
}

// Pitch returns the sounding key of a note. The note must be valid for inst.
func (inst Instrument) Pitch(n Note) (midi.Note, error) {
	if err := inst.Validate(n); err != nil {
		return 0, err
	}
	key := int(inst.Tuning[n.str]) + int(n.fret)
	if key > MaxKey {
		return 0, fmt.Errorf("%w: key %d", ErrPitchOutOfRange, key)
	}
	return midi.Note(key), nil
}

// StringName names an open string, e.g. "E2".
func (inst Instrument) StringName(str int) string {
	if str < 0 || str >= len(inst.Tuning) {
		return "?"
	}
	return midi.Note(inst.Tuning[str]).String()
}
