package ui

import (
	"github.com/atomicstack/runmenu/internal/logging/events"
	"github.com/atomicstack/runmenu/internal/nav"
	"github.com/atomicstack/runmenu/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleBackKey()
	}
	k := m.keys.navKey(keyMsg)
	if k == nav.KeyActivate {
		return m.handleActivate()
	}
	m.nav.HandleKey(k)
	m.syncViewport()
	return nil
}

// handleBackKey ascends one level, or quits when already at the root.
func (m *Model) handleBackKey() tea.Cmd {
	if m.nav.AtRoot() {
		return m.quit()
	}
	m.nav.Ascend()
	m.viewportOffset = 0
	return nil
}

func (m *Model) handleActivate() tea.Cmd {
	label := m.nav.Rows()[m.nav.Cursor()].Label
	depth := m.nav.Depth()
	cmd, ok := m.nav.HandleKey(nav.KeyActivate)
	if m.nav.Depth() != depth {
		m.viewportOffset = 0
	}
	m.syncViewport()
	if !ok {
		return nil
	}
	return m.bus.Execute(command.Request{Label: label, Command: cmd})
}

func (m *Model) handleSelectedMsg(msg tea.Msg) tea.Cmd {
	selected, ok := msg.(command.SelectedMsg)
	if !ok {
		return nil
	}
	m.selected = selected.Command
	m.done = true
	events.App.Selected(selected.Command)
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	m.done = true
	events.App.Quit(m.nav.Depth())
	return tea.Quit
}
