package model

import (
	"log"

	"github.com/schollz/termtab/internal/tab"
	"github.com/schollz/termtab/internal/types"
)

const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
)

// Model holds all editor state. It is owned by the event loop and mutated
// only through key handling.
type Model struct {
	Mode   types.Mode
	Status types.Status

	// Cursor is the on-screen cursor. In Command mode it sits on the status
	// row at the command line's column.
	Cursor types.Position
	// SavedCursor is the position to return to when Command mode ends.
	SavedCursor *types.Position

	Command       CommandLine
	StatusMessage string

	TermWidth  int
	TermHeight int

	Tab  *tab.Tab
	Path string
}

// NewModel returns a model in Normal mode editing doc, which was read from
// path. The terminal size defaults to 80x24 until the first resize.
func NewModel(path string, doc *tab.Tab) *Model {
	if doc == nil {
		doc = tab.New()
	}
	return &Model{
		Mode:       types.NormalMode,
		Status:     types.Running,
		TermWidth:  defaultTermWidth,
		TermHeight: defaultTermHeight,
		Tab:        doc,
		Path:       path,
	}
}

// Quit asks the event loop to stop after the current iteration.
func (m *Model) Quit() {
	m.Status = types.Done
}

func (m *Model) Done() bool {
	return m.Status == types.Done
}

// EnterInsert switches from Normal to Insert mode.
func (m *Model) EnterInsert() {
	if m.Mode != types.NormalMode {
		return
	}
	m.Mode = types.InsertMode
	log.Printf("mode: %s -> %s", types.NormalMode, types.InsertMode)
}

// ExitInsert returns from Insert to Normal mode.
func (m *Model) ExitInsert() {
	if m.Mode != types.InsertMode {
		return
	}
	m.Mode = types.NormalMode
	log.Printf("mode: %s -> %s", types.InsertMode, types.NormalMode)
}

// EnterCommand saves the cursor and seeds the command line with ":". The
// mode itself changes in SyncMode.
func (m *Model) EnterCommand() {
	if m.Mode != types.NormalMode {
		return
	}
	m.SaveCursor()
	m.StatusMessage = ""
	m.Command.Start()
}

// SyncMode derives Command mode from the command line: a non-empty line
// means Command mode, and an emptied line drops back to Normal with the
// saved cursor restored. Call it after every key.
func (m *Model) SyncMode() {
	if m.Command.Empty() {
		if m.Mode == types.CommandMode {
			m.Mode = types.NormalMode
			m.RestoreCursor()
			log.Printf("mode: %s -> %s, cursor %v", types.CommandMode, types.NormalMode, m.Cursor)
		}
		return
	}
	if m.Mode != types.CommandMode {
		log.Printf("mode: %s -> %s", m.Mode, types.CommandMode)
		m.Mode = types.CommandMode
	}
	m.Cursor = types.Position{X: m.Command.Col(), Y: m.statusRow()}
}

func (m *Model) statusRow() int {
	if m.TermHeight <= 0 {
		return 0
	}
	return m.TermHeight - 1
}
