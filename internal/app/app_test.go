package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/runmenu/internal/menu"
	"github.com/atomicstack/runmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func writeMenu(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const sampleMenu = `
title: Tools
items:
  - name: Disk usage
    command: df -h
  - name: Git
    items:
      - name: Status
        command: git status
      - name: Log
        command: git log --oneline
`

func TestRunKeepsUIOffTheCommandWriter(t *testing.T) {
	var screen, stdout bytes.Buffer
	command, err := Run(Config{},
		tea.WithInput(strings.NewReader("\r")),
		tea.WithOutput(&screen),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, err)
	require.Equal(t, "eza -la", command)
	require.NoError(t, WriteCommand(&stdout, command))

	require.Equal(t, "eza -la\n", stdout.String())
	require.Contains(t, screen.String(), "\x1b[", "menu should be drawn on the UI output")
}

func TestUIOutputIsNotStdout(t *testing.T) {
	require.Same(t, os.Stderr, UIOutput)
	require.NotSame(t, os.Stdout, UIOutput)
}

func TestWriteCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommand(&buf, ""))
	require.Empty(t, buf.String())

	require.NoError(t, WriteCommand(&buf, "#!/bin/sh\nls -la\n"))
	require.Equal(t, "#!/bin/sh\nls -la\n", buf.String())
}

func TestSelectionTreatsInterruptAsQuit(t *testing.T) {
	h := ui.NewHarness(ui.NewModel(menu.Default(), ui.Options{}))
	h.Keys("enter")

	command, err := selection(h.Model(), nil)
	require.NoError(t, err)
	require.Equal(t, "eza -la", command)

	for _, exit := range []error{tea.ErrInterrupted, tea.ErrProgramKilled} {
		command, err = selection(h.Model(), exit)
		require.NoError(t, err, exit.Error())
		require.Empty(t, command, exit.Error())
	}

	boom := errors.New("boom")
	_, err = selection(nil, boom)
	require.ErrorIs(t, err, boom)

	command, err = selection(ui.NewModel(menu.Default(), ui.Options{}), nil)
	require.NoError(t, err)
	require.Empty(t, command)
}

func TestLoadTreeDefaultsToBuiltIn(t *testing.T) {
	tree, err := LoadTree(Config{})
	require.NoError(t, err)
	require.Len(t, tree.Children(tree.Root()), 4)
}

func TestLoadTreeFromFileWithRootOverride(t *testing.T) {
	path := writeMenu(t, sampleMenu)
	tree, err := LoadTree(Config{MenuFile: path, RootMenu: "git"})
	require.NoError(t, err)
	require.Equal(t, "Git", tree.Title())

	first := tree.Child(tree.Root(), 0)
	require.Equal(t, "git status", tree.Node(first).Command)
}

func TestLoadTreeErrors(t *testing.T) {
	path := writeMenu(t, sampleMenu)
	_, err := LoadTree(Config{MenuFile: path, RootMenu: "nothing-like-it"})
	require.ErrorIs(t, err, menu.ErrUnknownRoot)

	bad := writeMenu(t, "items:\n  - name: broken\n")
	_, err = LoadTree(Config{MenuFile: bad})
	require.ErrorIs(t, err, menu.ErrInvalidSpec)
}

func TestListPrintsTable(t *testing.T) {
	path := writeMenu(t, sampleMenu)
	var buf bytes.Buffer
	require.NoError(t, List(Config{MenuFile: path}, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"PATH        KIND  COMMAND",
		"Disk usage  leaf  df -h",
		"Git         menu",
		"Git/Status  leaf  git status",
		"Git/Log     leaf  git log --oneline",
	}, lines)
}

func TestFirstLine(t *testing.T) {
	require.Equal(t, "eza -la", firstLine("eza -la"))
	require.Equal(t, "ls -la …", firstLine("#!/bin/sh\n\nls -la\necho done\n"))
}
