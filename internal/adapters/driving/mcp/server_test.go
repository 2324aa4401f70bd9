package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil note service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingNoteService)
	})

	t.Run("notes only creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Notes: newMockNoteService()})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})

	t.Run("all ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Notes:   newMockNoteService(),
			Holiday: &mockHolidayService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil note service returns error", func(t *testing.T) {
		ports := &Ports{Holiday: &mockHolidayService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingNoteService)
	})

	t.Run("notes only is valid", func(t *testing.T) {
		ports := &Ports{Notes: newMockNoteService()}
		assert.NoError(t, ports.Validate())
	})
}
