package ui

import (
	"github.com/atomicstack/runmenu/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds raw key presses to menu actions.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns vim style bindings alongside the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "left"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// navKey maps a key press onto the navigator's key set.
func (k KeyMap) navKey(msg tea.KeyMsg) nav.Key {
	switch {
	case key.Matches(msg, k.Up):
		return nav.KeyMoveUp
	case key.Matches(msg, k.Down):
		return nav.KeyMoveDown
	case key.Matches(msg, k.Activate):
		return nav.KeyActivate
	default:
		return nav.KeyOther
	}
}
