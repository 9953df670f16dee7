package types

import "fmt"

// Mode is the input-handling state of the editor.
type Mode int

const (
	NormalMode Mode = iota
	InsertMode
	CommandMode
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "Normal"
	case InsertMode:
		return "Insert"
	case CommandMode:
		return "Command"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Status tells the event loop whether to keep going.
type Status int

const (
	Running Status = iota
	Done
)

func (s Status) String() string {
	if s == Done {
		return "Done"
	}
	return "Running"
}

// Position is a screen cell, 0-based from the top-left corner.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Y+1, p.X+1)
}
