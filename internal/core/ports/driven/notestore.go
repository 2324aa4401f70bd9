package driven

import (
	"context"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// NoteStore holds notes grouped into per-date buckets.
// A date is present only while its bucket holds at least one note.
type NoteStore interface {
	// Append adds a note to the end of the date's bucket, creating the bucket if needed.
	Append(ctx context.Context, date domain.Date, note domain.Note) error

	// List returns a copy of the date's bucket in insertion order.
	// Returns an empty, non-nil slice when the date has no notes.
	List(ctx context.Context, date domain.Date) ([]domain.Note, error)

	// Delete removes the note with the given ID from whichever bucket holds it.
	// Returns false, without error, if no note has that ID.
	Delete(ctx context.Context, id string) (bool, error)

	// Clear removes every note for the date and returns how many were removed.
	// Clearing an empty date is a no-op that returns 0.
	Clear(ctx context.Context, date domain.Date) (int, error)

	// Dates returns the dates that currently have notes, oldest first.
	Dates(ctx context.Context) ([]domain.Date, error)
}
