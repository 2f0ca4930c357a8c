package ui

import (
	"reflect"

	"github.com/atomicstack/runmenu/internal/menu"
	"github.com/atomicstack/runmenu/internal/nav"
	"github.com/atomicstack/runmenu/internal/theme"
	"github.com/atomicstack/runmenu/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = "→"
	defaultPercent      = 60
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options tune the popup geometry and chrome.
type Options struct {
	WidthPercent  int
	HeightPercent int
	ShowFooter    bool
}

// Model implements the Bubble Tea model for the command menu.
type Model struct {
	nav            *nav.Navigator
	keys           KeyMap
	help           help.Model
	bus            *command.Bus
	width          int
	height         int
	widthPercent   int
	heightPercent  int
	showFooter     bool
	viewportOffset int
	selected       string
	done           bool

	handlers map[reflect.Type]msgHandler
}

// NewModel creates a model positioned at the root of tree.
func NewModel(tree *menu.Tree, opts Options) *Model {
	m := &Model{
		nav:           nav.New(tree),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		bus:           command.New(),
		widthPercent:  clampPercent(opts.WidthPercent),
		heightPercent: clampPercent(opts.HeightPercent),
		showFooter:    opts.ShowFooter,
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Selected returns the command of the activated leaf, if any.
func (m *Model) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// Navigator exposes the navigation state for hosts and tests.
func (m *Model) Navigator() *nav.Navigator {
	return m.nav
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(command.SelectedMsg{}): m.handleSelectedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.syncViewport()
	return nil
}

func clampPercent(p int) int {
	if p <= 0 {
		return defaultPercent
	}
	if p > 100 {
		return 100
	}
	return p
}
