package model

import (
	"log"

	"github.com/schollz/termtab/internal/types"
)

// SetTermSize records the terminal dimensions for the next frame and pulls
// the cursor back inside them.
func (m *Model) SetTermSize(width, height int) {
	if width == m.TermWidth && height == m.TermHeight {
		return
	}
	log.Printf("terminal resized to %dx%d", width, height)
	m.TermWidth = width
	m.TermHeight = height
	if m.Mode == types.CommandMode {
		m.Cursor.Y = m.statusRow()
		return
	}
	m.Cursor.X = clamp(m.Cursor.X, m.TermWidth)
	m.Cursor.Y = clamp(m.Cursor.Y, m.TermHeight)
}

func (m *Model) MoveLeft() {
	m.Cursor.X = clamp(m.Cursor.X-1, m.TermWidth)
}

func (m *Model) MoveRight() {
	m.Cursor.X = clamp(m.Cursor.X+1, m.TermWidth)
}

func (m *Model) MoveUp() {
	m.Cursor.Y = clamp(m.Cursor.Y-1, m.TermHeight)
}

func (m *Model) MoveDown() {
	m.Cursor.Y = clamp(m.Cursor.Y+1, m.TermHeight)
}

// MoveLineStart jumps to column 0.
func (m *Model) MoveLineStart() {
	m.Cursor.X = 0
}

// SaveCursor snapshots the cursor. Only one snapshot is kept.
func (m *Model) SaveCursor() {
	saved := m.Cursor
	m.SavedCursor = &saved
}

// RestoreCursor writes back the snapshot, or the origin if there is none,
// and forgets it.
func (m *Model) RestoreCursor() {
	if m.SavedCursor == nil {
		m.Cursor = types.Position{}
		return
	}
	m.Cursor = *m.SavedCursor
	m.SavedCursor = nil
	m.Cursor.X = clamp(m.Cursor.X, m.TermWidth)
	m.Cursor.Y = clamp(m.Cursor.Y, m.TermHeight)
}

// clamp keeps v in [0, limit).
func clamp(v, limit int) int {
	if v >= limit {
		v = limit - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
