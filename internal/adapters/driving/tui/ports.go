// Package tui provides an interactive terminal user interface for notecal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notes manages the notes attached to dates.
	Notes driving.NoteService

	// Holiday resolves the status of a date.
	Holiday driving.HolidayService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(notes driving.NoteService, holiday driving.HolidayService) *Ports {
	return &Ports{
		Notes:   notes,
		Holiday: holiday,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Notes == nil {
		return ErrMissingNoteService
	}
	if p.Holiday == nil {
		return ErrMissingHolidayService
	}
	return nil
}
