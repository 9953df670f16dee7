package tab

// Direction of a slide into or out of a note.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Note is a single fretted string. Build one with NewNote and refine it with
// the chained setters; each setter returns a modified copy.
//
//	n := tab.NewNote(0, quarter).Fret(5).SlideIn(tab.Up).Tie(true)
type Note struct {
	str      uint8
	duration Duration
	fret     uint8
	slideIn  *Direction
	slideOut *Direction
	tap      bool
	tie      bool
}

// NewNote returns an open-string note on the given 0-based string.
func NewNote(str uint8, duration Duration) Note {
	return Note{str: str, duration: duration}
}

func (n Note) Fret(fret uint8) Note {
	n.fret = fret
	return n
}

func (n Note) SlideIn(d Direction) Note {
	n.slideIn = &d
	return n
}

func (n Note) SlideOut(d Direction) Note {
	n.slideOut = &d
	return n
}

func (n Note) Tap(tap bool) Note {
	n.tap = tap
	return n
}

func (n Note) Tie(tie bool) Note {
	n.tie = tie
	return n
}

// StringIndex is the 0-based string, counted from the lowest-pitched one.
func (n Note) StringIndex() uint8 { return n.str }
func (n Note) Duration() Duration { return n.duration }
func (n Note) FretNumber() uint8  { return n.fret }
func (n Note) IsTapped() bool     { return n.tap }
func (n Note) IsTied() bool       { return n.tie }

// SlideInDirection reports the slide into the note, if any.
func (n Note) SlideInDirection() (Direction, bool) {
	if n.slideIn == nil {
		return Up, false
	}
	return *n.slideIn, true
}

// SlideOutDirection reports the slide out of the note, if any.
func (n Note) SlideOutDirection() (Direction, bool) {
	if n.slideOut == nil {
		return Up, false
	}
	return *n.slideOut, true
}

// Rest is a silent rhythm slot.
type Rest struct {
	duration Duration
}

func NewRest(duration Duration) Rest {
	return Rest{duration: duration}
}

func (r Rest) Duration() Duration { return r.duration }

// RhythmKind discriminates the two variants of a RhythmValue.
type RhythmKind int

// The zero RhythmKind marks an unset RhythmValue, which is neither variant.
const (
	ChordKind RhythmKind = iota + 1
	RestKind
)

// RhythmValue is one time slot of a measure: either a chord of one or more
// notes, or a single rest. It is never both.
type RhythmValue struct {
	kind  RhythmKind
	notes []Note
	rest  Rest
}

// NewChord builds a chord slot holding first and then more, in order.
func NewChord(first Note, more ...Note) RhythmValue {
	notes := make([]Note, 0, len(more)+1)
	notes = append(notes, first)
	return RhythmValue{kind: ChordKind, notes: append(notes, more...)}
}

// NewRestValue builds a rest slot.
func NewRestValue(rest Rest) RhythmValue {
	return RhythmValue{kind: RestKind, rest: rest}
}

func (v RhythmValue) Kind() RhythmKind { return v.kind }

// IsZero reports whether v was never built by NewChord or NewRestValue.
func (v RhythmValue) IsZero() bool { return v.kind == 0 }

// Notes returns the chord's notes in insertion order, or nil for a rest.
func (v RhythmValue) Notes() []Note {
	switch v.kind {
	case ChordKind:
		return append([]Note(nil), v.notes...)
	case RestKind:
		return nil
	}
	return nil
}

// Rest returns the rest held by the slot. ok is false for a chord.
func (v RhythmValue) Rest() (Rest, bool) {
	switch v.kind {
	case RestKind:
		return v.rest, true
	case ChordKind:
		return Rest{}, false
	}
	return Rest{}, false
}

// AddNote appends to a chord. A rest is replaced wholesale by a one-note
// chord; the rest's duration is dropped, not reconciled with the note's.
// An unset value becomes a one-note chord.
func (v *RhythmValue) AddNote(n Note) {
	switch v.kind {
	case ChordKind:
		v.notes = append(v.notes, n)
	default:
		*v = NewChord(n)
	}
}
