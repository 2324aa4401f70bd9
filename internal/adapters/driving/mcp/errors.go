// Package mcp provides an MCP (Model Context Protocol) server adapter for notecal.
// It lets AI assistants read and manage calendar notes and look up day status.
package mcp

import "errors"

// ErrMissingNoteService is returned when the note service is not provided.
var ErrMissingNoteService = errors.New("mcp: note service is required")

// ErrBlankContent is returned when a note would have no visible text.
var ErrBlankContent = errors.New("mcp: note content must not be blank")
