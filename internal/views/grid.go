package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schollz/termtab/internal/tab"
	"github.com/schollz/termtab/internal/types"
)

const cellWidth = 3

// RenderGrid lays doc out as plain tablature text no wider than width. Each
// system is a time signature row followed by one row per string, highest
// string on top; systems wrap when the next measure does not fit.
func RenderGrid(doc *tab.Tab, width int) []string {
	return layoutGrid(doc, width).lines
}

// gridLayout is the rendered grid plus the note drawn in each cell, keyed
// by column and grid line.
type gridLayout struct {
	lines []string
	notes map[types.Position]tab.Note
}

func (g gridLayout) noteAt(p types.Position) (tab.Note, bool) {
	n, ok := g.notes[p]
	return n, ok
}

// noteSpan places a note cell inside a measure block.
type noteSpan struct {
	row   int
	col   int
	width int
	note  tab.Note
}

func layoutGrid(doc *tab.Tab, width int) gridLayout {
	g := gridLayout{notes: make(map[types.Position]tab.Note)}
	inst := doc.Instrument()
	strs := inst.Strings()
	if strs == 0 || width <= 0 {
		return g
	}

	gutter := 0
	for s := 0; s < strs; s++ {
		if n := len(inst.StringName(s)); n > gutter {
			gutter = n
		}
	}

	var sig strings.Builder
	rows := make([]strings.Builder, strs)
	var pending []noteSpan

	startSystem := func() {
		sig.Reset()
		sig.WriteString(strings.Repeat(" ", gutter+1))
		for i := range rows {
			s := strs - 1 - i
			rows[i].Reset()
			rows[i].WriteString(fmt.Sprintf("%-*s|", gutter, inst.StringName(s)))
		}
	}
	flush := func() {
		base := len(g.lines)
		for _, sp := range pending {
			for c := 0; c < sp.width; c++ {
				g.notes[types.Position{X: sp.col + c, Y: base + sp.row}] = sp.note
			}
		}
		pending = pending[:0]

		g.lines = append(g.lines, sig.String())
		for i := range rows {
			g.lines = append(g.lines, rows[i].String())
		}
		g.lines = append(g.lines, "")
	}

	startSystem()
	empty := true
	for _, m := range doc.Measures() {
		block, spans := measureBlock(m, strs)
		if !empty && rows[0].Len()+len(block[1]) > width {
			flush()
			startSystem()
			empty = true
		}
		offset := rows[0].Len()
		for _, sp := range spans {
			sp.col += offset
			pending = append(pending, sp)
		}
		sig.WriteString(block[0])
		for i := range rows {
			rows[i].WriteString(block[i+1])
		}
		empty = false
	}
	if !empty {
		flush()
	}
	return g
}

// measureBlock renders one measure: the signature cell followed by one
// cell per string row, each closed by a bar line. A slot is as wide as its
// widest note plus a dash, never narrower than cellWidth.
func measureBlock(m *tab.Measure, strs int) ([]string, []noteSpan) {
	slots := m.Contents()
	strRows := make([]strings.Builder, strs)
	var spans []noteSpan
	body := 0

	for _, v := range slots {
		column := make([]string, strs)
		held := make([]tab.Note, strs)
		switch v.Kind() {
		case tab.ChordKind:
			for _, n := range v.Notes() {
				s := int(n.StringIndex())
				if s < strs {
					column[s] = noteCell(n)
					held[s] = n
				}
			}
		case tab.RestKind:
		}

		w := cellWidth
		for _, c := range column {
			if len(c)+1 > w {
				w = len(c) + 1
			}
		}
		for s, c := range column {
			if c != "" {
				spans = append(spans, noteSpan{row: strs - s, col: body, width: len(c), note: held[s]})
			}
			strRows[s].WriteString(c + strings.Repeat("-", w-len(c)))
		}
		body += w
	}

	sig := m.TimeSignature().String()
	if body == 0 {
		body = cellWidth + 1
	}
	if body < len(sig) {
		body = len(sig)
	}
	block := make([]string, strs+1)
	block[0] = fmt.Sprintf("%-*s", body+1, sig)
	for i := 0; i < strs; i++ {
		s := strs - 1 - i
		line := strRows[s].String()
		line += strings.Repeat("-", body-len(line))
		block[i+1] = line + "|"
	}
	return block, spans
}

// noteCell is the text of a note without padding: slide-in, tie and tap
// marks, the fret, then the slide-out mark.
func noteCell(n tab.Note) string {
	var b strings.Builder
	if d, ok := n.SlideInDirection(); ok {
		b.WriteString(slideMark(d))
	}
	if n.IsTied() {
		b.WriteByte('(')
	}
	if n.IsTapped() {
		b.WriteByte('t')
	}
	b.WriteString(strconv.Itoa(int(n.FretNumber())))
	if d, ok := n.SlideOutDirection(); ok {
		b.WriteString(slideMark(d))
	}
	return b.String()
}

func slideMark(d tab.Direction) string {
	if d == tab.Up {
		return "/"
	}
	return "\\"
}
