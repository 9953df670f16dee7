package input

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/termtab/internal/model"
	"github.com/schollz/termtab/internal/types"
)

// HandleKeyInput is the single entry point for key presses. It routes the
// key to the current mode, then re-derives Command mode from the command
// line so the two can never disagree.
func HandleKeyInput(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	// Typed runes can arrive batched in one message; route them one by one.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		if msg.Paste && m.Mode != types.CommandMode {
			log.Printf("ignoring paste of %d runes in %s mode", len(msg.Runes), m.Mode)
			return nil
		}
		var cmds []tea.Cmd
		for _, r := range msg.Runes {
			single := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
			cmds = append(cmds, HandleKeyInput(m, single))
			if m.Done() {
				break
			}
		}
		return tea.Batch(cmds...)
	}

	switch m.Mode {
	case types.NormalMode:
		handleNormal(m, msg)
	case types.InsertMode:
		handleInsert(m, msg)
	case types.CommandMode:
		handleCommand(m, msg)
	}
	m.SyncMode()

	if m.Done() {
		return tea.Quit
	}
	return nil
}
