// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/notecal/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDay shows one calendar day with its status and notes.
	ViewDay ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDay:
		return "day"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// StatusLoaded carries the resolved status of a day.
type StatusLoaded struct {
	Date   domain.Date
	Status domain.DayStatus
}

// NotesLoaded carries the notes of a day.
type NotesLoaded struct {
	Date  domain.Date
	Notes []domain.Note
	Err   error
}

// NoteAdded signals a note was attached to a day.
type NoteAdded struct {
	Date domain.Date
	Note domain.Note
	Err  error
}

// NoteDeleted signals a delete-by-ID finished.
// Deleted is false when the note had already gone.
type NoteDeleted struct {
	ID      string
	Deleted bool
	Err     error
}

// DayCleared signals every note of a day was removed.
type DayCleared struct {
	Date    domain.Date
	Removed int
	Err     error
}
