package input

import "github.com/charmbracelet/bubbles/key"

func binding(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

// NormalKeys are the Normal mode bindings.
type NormalKeys struct {
	Insert    key.Binding
	Command   key.Binding
	Left      key.Binding
	Down      key.Binding
	Up        key.Binding
	Right     key.Binding
	LineStart key.Binding
}

// InsertKeys are the Insert mode bindings.
type InsertKeys struct {
	Normal key.Binding
}

// CommandKeys are the Command mode bindings. Printable runes not listed
// here are typed into the command line.
type CommandKeys struct {
	Abort     key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Execute   key.Binding
}

var normalKeys = NormalKeys{
	Insert:    binding("insert mode", "i"),
	Command:   binding("command line", ":"),
	Left:      binding("left", "h"),
	Down:      binding("down", "j"),
	Up:        binding("up", "k"),
	Right:     binding("right", "l"),
	LineStart: binding("column 0", "0"),
}

var insertKeys = InsertKeys{
	Normal: binding("normal mode", "esc"),
}

var commandKeys = CommandKeys{
	Abort:     binding("abort", "esc"),
	Backspace: binding("delete left", "backspace", "ctrl+h"),
	Left:      binding("left", "left"),
	Right:     binding("right", "right"),
	Execute:   binding("run", "enter"),
}

// ShortHelp lists the Normal mode bindings for the status line.
func (k NormalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Command, k.Left, k.Down, k.Up, k.Right, k.LineStart}
}

// NormalHelp returns the bindings shown while in Normal mode.
func NormalHelp() []key.Binding {
	return normalKeys.ShortHelp()
}
