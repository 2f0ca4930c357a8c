package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteReturnsSelectedMsg(t *testing.T) {
	cmd := New().Execute(Request{Label: "Eza", Command: "eza -la"})
	require.NotNil(t, cmd)
	require.Equal(t, SelectedMsg{Label: "Eza", Command: "eza -la"}, cmd())
}

func TestExecuteSkipsEmptyCommand(t *testing.T) {
	cmd := New().Execute(Request{Label: "nothing"})
	require.Nil(t, cmd())
}
