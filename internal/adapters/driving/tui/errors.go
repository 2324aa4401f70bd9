package tui

import "errors"

// ErrMissingNoteService is returned when the note service is not provided.
var ErrMissingNoteService = errors.New("tui: note service is required")

// ErrMissingHolidayService is returned when the holiday service is not provided.
var ErrMissingHolidayService = errors.New("tui: holiday service is required")
