package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/runmenu/internal/format/table"
	"github.com/atomicstack/runmenu/internal/menu"
	"github.com/atomicstack/runmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile      string
	RootMenu      string
	WidthPercent  int
	HeightPercent int
	ShowFooter    bool
}

// UIOutput is the descriptor the menu is drawn on. Stdout stays reserved for
// the selected command so callers can capture it with $(runmenu).
var UIOutput = os.Stderr

// Run shows the menu and returns the command of the activated leaf. An empty
// string means the user quit without choosing anything. opts are applied after
// the defaults, so tests can swap the program's input and output.
func Run(cfg Config, opts ...tea.ProgramOption) (string, error) {
	tree, err := LoadTree(cfg)
	if err != nil {
		return "", err
	}
	model := ui.NewModel(tree, ui.Options{
		WidthPercent:  cfg.WidthPercent,
		HeightPercent: cfg.HeightPercent,
		ShowFooter:    cfg.ShowFooter,
	})
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(UIOutput)}, opts...)
	final, err := tea.NewProgram(model, programOpts...).Run()
	return selection(final, err)
}

// selection extracts the chosen command from the program's final model.
// Being killed or interrupted counts as quitting without a choice.
func selection(final tea.Model, err error) (string, error) {
	if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if m, ok := final.(*ui.Model); ok {
		if cmd, ok := m.Selected(); ok {
			return cmd, nil
		}
	}
	return "", nil
}

// WriteCommand prints command for the caller to run, newline terminated.
func WriteCommand(w io.Writer, command string) error {
	if command == "" {
		return nil
	}
	if !strings.HasSuffix(command, "\n") {
		command += "\n"
	}
	_, err := io.WriteString(w, command)
	return err
}

// LoadTree builds the menu described by cfg, narrowed to RootMenu when set.
func LoadTree(cfg Config) (*menu.Tree, error) {
	tree := menu.Default()
	if cfg.MenuFile != "" {
		loaded, err := menu.LoadFile(cfg.MenuFile)
		if err != nil {
			return nil, fmt.Errorf("load menu: %w", err)
		}
		tree = loaded
	}
	if strings.TrimSpace(cfg.RootMenu) == "" {
		return tree, nil
	}
	id, err := menu.ResolveRoot(tree, cfg.RootMenu)
	if err != nil {
		return nil, err
	}
	return tree.Subtree(id), nil
}

// List writes the menu as an aligned table of path, kind and command.
func List(cfg Config, w io.Writer) error {
	tree, err := LoadTree(cfg)
	if err != nil {
		return err
	}
	rows := [][]string{{"PATH", "KIND", "COMMAND"}}
	tree.Walk(func(id menu.NodeID, path []string) {
		kind := "menu"
		command := ""
		if tree.IsLeaf(id) {
			kind = "leaf"
			command = firstLine(tree.Node(id).Command)
		}
		rows = append(rows, []string{strings.Join(path, "/"), kind, command})
	})
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// firstLine shortens multi-line scripts to their first line of code,
// skipping blank lines and comments such as a shebang.
func firstLine(command string) string {
	lines := strings.Split(strings.TrimSpace(command), "\n")
	if len(lines) == 1 {
		return lines[0]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line + " …"
	}
	return strings.TrimSpace(lines[0])
}
