package input

import (
	"log"

	"github.com/schollz/termtab/internal/model"
)

// NotACommand is shown for anything missing from the command table.
const NotACommand = "Not an editor command"

var commandTable = map[string]func(m *model.Model){
	"quit": (*model.Model).Quit,
	"q":    (*model.Model).Quit,
}

// ExecuteCommand runs the command line and always clears it afterwards.
// The text after ':' must match a table entry exactly; anything else,
// including an empty line, only sets the status message.
func ExecuteCommand(m *model.Model) {
	name := m.Command.Text()
	defer m.Command.Clear()

	run, ok := commandTable[name]
	if !ok {
		log.Printf("unknown command %q", name)
		m.StatusMessage = NotACommand
		return
	}
	log.Printf("executing command %q", name)
	run(m)
}
