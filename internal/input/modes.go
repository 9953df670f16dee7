package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/termtab/internal/model"
)

func handleNormal(m *model.Model, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, normalKeys.Insert):
		m.EnterInsert()
	case key.Matches(msg, normalKeys.Command):
		m.EnterCommand()
	case key.Matches(msg, normalKeys.Left):
		m.MoveLeft()
	case key.Matches(msg, normalKeys.Down):
		m.MoveDown()
	case key.Matches(msg, normalKeys.Up):
		m.MoveUp()
	case key.Matches(msg, normalKeys.Right):
		m.MoveRight()
	case key.Matches(msg, normalKeys.LineStart):
		m.MoveLineStart()
	}
}

func handleInsert(m *model.Model, msg tea.KeyMsg) {
	if key.Matches(msg, insertKeys.Normal) {
		m.ExitInsert()
	}
}

func handleCommand(m *model.Model, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, commandKeys.Abort):
		m.Command.Clear()
	case key.Matches(msg, commandKeys.Backspace):
		m.Command.Backspace()
	case key.Matches(msg, commandKeys.Left):
		m.Command.MoveLeft()
	case key.Matches(msg, commandKeys.Right):
		m.Command.MoveRight()
	case key.Matches(msg, commandKeys.Execute):
		ExecuteCommand(m)
	case msg.Type == tea.KeySpace:
		m.Command.Insert(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.Command.Insert(r)
		}
	}
}
