package command

import (
	"fmt"

	"github.com/atomicstack/runmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes an activated leaf whose command should be handed back to
// the caller.
type Request struct {
	Label   string
	Command string
}

// SelectedMsg carries the command of an activated leaf back into the program.
type SelectedMsg struct {
	Label   string
	Command string
}

// Bus turns activated leaves into Bubble Tea messages while emitting trace logs.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps req into a Bubble Tea command. Empty commands are dropped.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Label)
	return func() tea.Msg {
		if req.Command == "" {
			events.Command.Skip(req.Label)
			return nil
		}
		msg := SelectedMsg{Label: req.Label, Command: req.Command}
		events.Command.Result(req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
