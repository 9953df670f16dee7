package storage

import (
	"fmt"

	"github.com/schollz/termtab/internal/tab"
)

func encode(doc *tab.Tab) documentData {
	inst := doc.Instrument()
	data := documentData{
		Instrument: &instrumentData{Name: inst.Name, Tuning: inst.Tuning, Frets: inst.Frets},
		Measures:   []measureData{},
	}
	for _, m := range doc.Measures() {
		md := measureData{TimeSignature: m.TimeSignature().String(), Contents: []slotData{}}
		for _, v := range m.Contents() {
			md.Contents = append(md.Contents, encodeSlot(v))
		}
		data.Measures = append(data.Measures, md)
	}
	return data
}

func encodeSlot(v tab.RhythmValue) slotData {
	switch v.Kind() {
	case tab.RestKind:
		r, _ := v.Rest()
		return slotData{Rest: r.Duration().String()}
	case tab.ChordKind:
		var s slotData
		for _, n := range v.Notes() {
			s.Notes = append(s.Notes, encodeNote(n))
		}
		return s
	}
	return slotData{}
}

func encodeNote(n tab.Note) noteData {
	nd := noteData{
		String:   n.StringIndex(),
		Duration: n.Duration().String(),
		Fret:     n.FretNumber(),
		Tap:      n.IsTapped(),
		Tie:      n.IsTied(),
	}
	if d, ok := n.SlideInDirection(); ok {
		nd.SlideIn = d.String()
	}
	if d, ok := n.SlideOutDirection(); ok {
		nd.SlideOut = d.String()
	}
	return nd
}

func decode(data documentData) (*tab.Tab, error) {
	inst := tab.Guitar
	if data.Instrument != nil {
		inst = tab.Instrument{Name: data.Instrument.Name, Tuning: data.Instrument.Tuning, Frets: data.Instrument.Frets}
		if err := inst.Check(); err != nil {
			return nil, err
		}
	}

	doc := tab.NewFor(inst)
	for i, md := range data.Measures {
		ts, err := tab.ParseTimeSignature(md.TimeSignature)
		if err != nil {
			return nil, fmt.Errorf("measure %d: %w", i+1, err)
		}
		m := tab.NewMeasure(ts)
		for j, s := range md.Contents {
			v, err := decodeSlot(inst, s)
			if err != nil {
				return nil, fmt.Errorf("measure %d slot %d: %w", i+1, j+1, err)
			}
			m.Append(v)
		}
		doc.AppendMeasure(m)
	}
	return doc, nil
}

func decodeSlot(inst tab.Instrument, s slotData) (tab.RhythmValue, error) {
	switch {
	case s.Rest != "" && len(s.Notes) > 0:
		return tab.RhythmValue{}, fmt.Errorf("slot has both a rest and notes")
	case s.Rest != "":
		d, err := tab.ParseDuration(s.Rest)
		if err != nil {
			return tab.RhythmValue{}, err
		}
		return tab.NewRestValue(tab.NewRest(d)), nil
	case len(s.Notes) == 0:
		return tab.RhythmValue{}, fmt.Errorf("slot is empty")
	}

	notes := make([]tab.Note, 0, len(s.Notes))
	for _, nd := range s.Notes {
		n, err := decodeNote(nd)
		if err != nil {
			return tab.RhythmValue{}, err
		}
		if err := inst.Validate(n); err != nil {
			return tab.RhythmValue{}, err
		}
		notes = append(notes, n)
	}
	return tab.NewChord(notes[0], notes[1:]...), nil
}

func decodeNote(nd noteData) (tab.Note, error) {
	d, err := tab.ParseDuration(nd.Duration)
	if err != nil {
		return tab.Note{}, err
	}
	n := tab.NewNote(nd.String, d).Fret(nd.Fret).Tap(nd.Tap).Tie(nd.Tie)
	if nd.SlideIn != "" {
		dir, err := parseDirection(nd.SlideIn)
		if err != nil {
			return tab.Note{}, err
		}
		n = n.SlideIn(dir)
	}
	if nd.SlideOut != "" {
		dir, err := parseDirection(nd.SlideOut)
		if err != nil {
			return tab.Note{}, err
		}
		n = n.SlideOut(dir)
	}
	return n, nil
}

func parseDirection(s string) (tab.Direction, error) {
	switch s {
	case "up":
		return tab.Up, nil
	case "down":
		return tab.Down, nil
	}
	return tab.Up, fmt.Errorf("unknown slide direction %q", s)
}
