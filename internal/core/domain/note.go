package domain

import "time"

// Note is a free-text entry attached to a calendar date.
// Notes are never modified after creation.
type Note struct {
	// ID is unique across the whole store, not only within a date.
	ID string

	// Content is the note text. Empty text is allowed at this level.
	Content string

	// CreatedAt is when the note was added.
	CreatedAt time.Time
}
