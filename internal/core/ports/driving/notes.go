package driving

import (
	"context"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// NoteService manages notes attached to calendar dates.
type NoteService interface {
	// Add creates a note with a fresh ID and appends it to the date.
	// Content is stored as given; callers decide whether blank text is acceptable.
	Add(ctx context.Context, date domain.Date, content string) (domain.Note, error)

	// NotesFor returns the notes for a date in insertion order.
	// The result is never nil and is safe for the caller to modify.
	NotesFor(ctx context.Context, date domain.Date) ([]domain.Note, error)

	// DeleteByID removes a note wherever it is stored.
	// Returns false if no note has that ID.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// ClearDay removes every note for the date and returns how many were removed.
	ClearDay(ctx context.Context, date domain.Date) (int, error)

	// Dates returns the dates that have notes, oldest first.
	Dates(ctx context.Context) ([]domain.Date, error)
}
