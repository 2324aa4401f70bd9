package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notecal/internal/adapters/driving/tui"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Launch the interactive calendar", tuiCmd.Short)
}

func TestTUICmd_LongDescribesControls(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Add a note")
	assert.Contains(t, tuiCmd.Long, "Quit")
}

func TestTUICmd_MissingServices(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	noteService = nil

	_, err := execute("tui")

	require.Error(t, err)
	assert.ErrorIs(t, err, tui.ErrMissingNoteService)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("tui", "extra")

	assert.Error(t, err)
}
