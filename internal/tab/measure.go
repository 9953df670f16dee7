package tab

// Measure is an ordered run of rhythm slots under one time signature. The
// contents are not checked against the signature; that is left to callers.
type Measure struct {
	timeSignature TimeSignature
	contents      []RhythmValue
}

func NewMeasure(ts TimeSignature) *Measure {
	return &Measure{timeSignature: ts}
}

func (m *Measure) TimeSignature() TimeSignature { return m.timeSignature }

// SetTimeSignature replaces the signature in place without revalidating the
// existing contents.
func (m *Measure) SetTimeSignature(ts TimeSignature) {
	m.timeSignature = ts
}

// Append adds a rhythm slot to the end of the measure. An unset value is
// ignored.
func (m *Measure) Append(v RhythmValue) {
	if v.IsZero() {
		return
	}
	m.contents = append(m.contents, v)
}

// Contents returns the measure's slots in order. The slice is a copy.
func (m *Measure) Contents() []RhythmValue {
	return append([]RhythmValue(nil), m.contents...)
}

// Len is the number of rhythm slots.
func (m *Measure) Len() int { return len(m.contents) }

// At returns the slot at index i for in-place edits such as AddNote.
func (m *Measure) At(i int) *RhythmValue {
	if i < 0 || i >= len(m.contents) {
		return nil
	}
	return &m.contents[i]
}

// ClearContent drops every slot.
func (m *Measure) ClearContent() {
	m.contents = nil
}

// Tab is a whole tablature document.
type Tab struct {
	instrument Instrument
	measures   []*Measure
}

// New returns an empty document for a six-string guitar.
func New() *Tab {
	return &Tab{instrument: Guitar}
}

// NewFor returns an empty document for the given instrument.
func NewFor(inst Instrument) *Tab {
	return &Tab{instrument: inst}
}

func (t *Tab) Instrument() Instrument { return t.instrument }

// AppendMeasure adds m to the end of the document, which takes ownership.
func (t *Tab) AppendMeasure(m *Measure) {
	t.measures = append(t.measures, m)
}

func (t *Tab) Measures() []*Measure {
	return append([]*Measure(nil), t.measures...)
}

func (t *Tab) Len() int { return len(t.measures) }
