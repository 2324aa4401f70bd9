package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
	"github.com/custodia-labs/notecal/internal/logger"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService manages notes attached to calendar dates.
type NoteService struct {
	store driven.NoteStore
	now   func() time.Time
	newID func() string
}

// NewNoteService creates a new note service backed by store.
func NewNoteService(store driven.NoteStore) *NoteService {
	return &NoteService{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Add creates a note with a fresh ID and appends it to the date.
func (s *NoteService) Add(ctx context.Context, date domain.Date, content string) (domain.Note, error) {
	if s.store == nil {
		return domain.Note{}, domain.ErrNotImplemented
	}

	note := domain.Note{
		ID:        s.newID(),
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.store.Append(ctx, date, note); err != nil {
		return domain.Note{}, err
	}

	logger.Infow("note added", "date", date.String(), "id", note.ID)
	return note, nil
}

// NotesFor returns the notes for a date in insertion order.
func (s *NoteService) NotesFor(ctx context.Context, date domain.Date) ([]domain.Note, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	notes, err := s.store.List(ctx, date)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

// DeleteByID removes a note wherever it is stored.
func (s *NoteService) DeleteByID(ctx context.Context, id string) (bool, error) {
	if s.store == nil {
		return false, domain.ErrNotImplemented
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		logger.Infow("note deleted", "id", id)
	} else {
		logger.Debug("delete: no note with id %s", id)
	}
	return deleted, nil
}

// ClearDay removes every note for the date.
func (s *NoteService) ClearDay(ctx context.Context, date domain.Date) (int, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}

	n, err := s.store.Clear(ctx, date)
	if err != nil {
		return 0, err
	}
	logger.Infow("day cleared", "date", date.String(), "removed", n)
	return n, nil
}

// Dates returns the dates that have notes, oldest first.
func (s *NoteService) Dates(ctx context.Context) ([]domain.Date, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Dates(ctx)
}
