package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
)

var _ driven.DayTypeOracle = (*mockOracle)(nil)

// mockOracle answers day-type lookups from a function and records the dates asked for.
type mockOracle struct {
	mu          sync.Mutex
	DayTypeFunc func(ctx context.Context, date domain.Date) (domain.DayType, error)
	calls       []domain.Date
}

func (m *mockOracle) DayType(ctx context.Context, date domain.Date) (domain.DayType, error) {
	m.mu.Lock()
	m.calls = append(m.calls, date)
	m.mu.Unlock()
	if m.DayTypeFunc != nil {
		return m.DayTypeFunc(ctx, date)
	}
	return domain.DayTypeWorkday, nil
}

func (m *mockOracle) Calls() []domain.Date {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Date(nil), m.calls...)
}

// fixedOracle returns an oracle that always answers with code.
func fixedOracle(code domain.DayType) *mockOracle {
	return &mockOracle{
		DayTypeFunc: func(context.Context, domain.Date) (domain.DayType, error) {
			return code, nil
		},
	}
}

// failingOracle returns an oracle that always fails with err.
func failingOracle(err error) *mockOracle {
	return &mockOracle{
		DayTypeFunc: func(context.Context, domain.Date) (domain.DayType, error) {
			return "", err
		},
	}
}

var _ driven.NoteStore = (*failingNoteStore)(nil)

// failingNoteStore fails every call with err.
type failingNoteStore struct {
	err error
}

func (s *failingNoteStore) Append(context.Context, domain.Date, domain.Note) error { return s.err }

func (s *failingNoteStore) List(context.Context, domain.Date) ([]domain.Note, error) {
	return nil, s.err
}

func (s *failingNoteStore) Delete(context.Context, string) (bool, error) { return false, s.err }

func (s *failingNoteStore) Clear(context.Context, domain.Date) (int, error) { return 0, s.err }

func (s *failingNoteStore) Dates(context.Context) ([]domain.Date, error) { return nil, s.err }
