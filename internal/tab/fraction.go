package tab

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

var (
	ErrZeroNumerator            = errors.New("numerator cannot be zero")
	ErrZeroDenominator          = errors.New("denominator cannot be zero")
	ErrDenominatorNotPowerOfTwo = errors.New("denominator must be a power of two")
)

// TimeSignature is the beat structure of a measure, e.g. 3/4 or 6/8.
type TimeSignature struct {
	numerator   uint8
	denominator uint8
}

// NewTimeSignature validates and builds a time signature. The denominator
// must be a power of two.
func NewTimeSignature(numerator, denominator uint8) (TimeSignature, error) {
	if numerator == 0 {
		return TimeSignature{}, ErrZeroNumerator
	}
	if denominator == 0 {
		return TimeSignature{}, ErrZeroDenominator
	}
	if bits.OnesCount8(denominator) != 1 {
		return TimeSignature{}, ErrDenominatorNotPowerOfTwo
	}
	return TimeSignature{numerator: numerator, denominator: denominator}, nil
}

// CommonTime is 4/4.
var CommonTime = TimeSignature{numerator: 4, denominator: 4}

// ParseTimeSignature reads the "N/D" form used on the command line.
func ParseTimeSignature(s string) (TimeSignature, error) {
	n, d, err := parseFraction(s)
	if err != nil {
		return TimeSignature{}, err
	}
	ts, err := NewTimeSignature(n, d)
	if err != nil {
		return TimeSignature{}, fmt.Errorf("time signature %q: %w", s, err)
	}
	return ts, nil
}

func (ts TimeSignature) Numerator() uint8   { return ts.numerator }
func (ts TimeSignature) Denominator() uint8 { return ts.denominator }

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.numerator, ts.denominator)
}

// Duration is a rhythmic length as a fraction of a whole note. Unlike a
// time signature the denominator may be any positive number, so tuplets
// such as 1/12 are representable.
type Duration struct {
	numerator   uint8
	denominator uint8
}

func NewDuration(numerator, denominator uint8) (Duration, error) {
	if numerator == 0 {
		return Duration{}, ErrZeroNumerator
	}
	if denominator == 0 {
		return Duration{}, ErrZeroDenominator
	}
	return Duration{numerator: numerator, denominator: denominator}, nil
}

// ParseDuration reads the "N/D" form.
func ParseDuration(s string) (Duration, error) {
	n, d, err := parseFraction(s)
	if err != nil {
		return Duration{}, err
	}
	dur, err := NewDuration(n, d)
	if err != nil {
		return Duration{}, fmt.Errorf("duration %q: %w", s, err)
	}
	return dur, nil
}

func (d Duration) Numerator() uint8   { return d.numerator }
func (d Duration) Denominator() uint8 { return d.denominator }

func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.numerator, d.denominator)
}

func parseFraction(s string) (uint8, uint8, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not of the form N/D", s)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad numerator in %q: %w", s, err)
	}
	d, err := strconv.ParseUint(strings.TrimSpace(den), 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad denominator in %q: %w", s, err)
	}
	return uint8(n), uint8(d), nil
}
