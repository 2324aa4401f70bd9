package mcp

import (
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notes manages notes attached to dates.
	Notes driving.NoteService

	// Holiday classifies dates. Optional: without it the day_status tool is not offered.
	Holiday driving.HolidayService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Notes == nil {
		return ErrMissingNoteService
	}
	return nil
}
