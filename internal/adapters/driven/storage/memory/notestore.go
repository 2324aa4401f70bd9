package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
// Each date maps to its bucket of notes in insertion order; empty
// buckets are removed as soon as they become empty.
type NoteStore struct {
	mu      sync.RWMutex
	buckets map[domain.Date][]domain.Note
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		buckets: make(map[domain.Date][]domain.Note),
	}
}

// Append adds a note to the end of the date's bucket.
func (s *NoteStore) Append(_ context.Context, date domain.Date, note domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[date] = append(s.buckets[date], note)
	return nil
}

// List returns a copy of the date's bucket.
func (s *NoteStore) List(_ context.Context, date domain.Date) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.buckets[date]
	result := make([]domain.Note, len(bucket))
	copy(result, bucket)
	return result, nil
}

// Delete removes the note with the given ID.
// Buckets are scanned in no particular order; IDs are unique so at most one matches.
func (s *NoteStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for date, bucket := range s.buckets {
		for i := range bucket {
			if bucket[i].ID != id {
				continue
			}
			if len(bucket) == 1 {
				delete(s.buckets, date)
				return true, nil
			}
			remaining := make([]domain.Note, 0, len(bucket)-1)
			remaining = append(remaining, bucket[:i]...)
			remaining = append(remaining, bucket[i+1:]...)
			s.buckets[date] = remaining
			return true, nil
		}
	}
	return false, nil
}

// Clear removes every note for the date and reports how many were removed.
func (s *NoteStore) Clear(_ context.Context, date domain.Date) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.buckets[date])
	delete(s.buckets, date)
	return n, nil
}

// Dates returns the dates that currently have notes, oldest first.
func (s *NoteStore) Dates(_ context.Context) ([]domain.Date, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Date, 0, len(s.buckets))
	for date := range s.buckets {
		result = append(result, date)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Before(result[j])
	})
	return result, nil
}
