package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
)

var (
	_ driving.NoteService    = (*mockNoteService)(nil)
	_ driving.HolidayService = (*mockHolidayService)(nil)
)

// mockNoteService is a mock implementation of driving.NoteService.
// It keeps notes in memory so handlers can be exercised end to end.
type mockNoteService struct {
	mu     sync.Mutex
	notes  map[domain.Date][]domain.Note
	nextID  int
	err     error
	listErr error
}

func newMockNoteService() *mockNoteService {
	return &mockNoteService{notes: make(map[domain.Date][]domain.Note)}
}

func (m *mockNoteService) Add(_ context.Context, date domain.Date, content string) (domain.Note, error) {
	if m.err != nil {
		return domain.Note{}, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	note := domain.Note{ID: fmt.Sprintf("note-%d", m.nextID), Content: content}
	m.notes[date] = append(m.notes[date], note)
	return note, nil
}

func (m *mockNoteService) NotesFor(_ context.Context, date domain.Date) ([]domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Note{}, m.notes[date]...), nil
}

func (m *mockNoteService) DeleteByID(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for date, notes := range m.notes {
		for i, n := range notes {
			if n.ID == id {
				m.notes[date] = append(notes[:i:i], notes[i+1:]...)
				if len(m.notes[date]) == 0 {
					delete(m.notes, date)
				}
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *mockNoteService) ClearDay(_ context.Context, date domain.Date) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.notes[date])
	delete(m.notes, date)
	return n, nil
}

func (m *mockNoteService) Dates(_ context.Context) ([]domain.Date, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var dates []domain.Date
	for d := range m.notes {
		dates = append(dates, d)
	}
	for i := 1; i < len(dates); i++ {
		for j := i; j > 0 && dates[j].Before(dates[j-1]); j-- {
			dates[j], dates[j-1] = dates[j-1], dates[j]
		}
	}
	return dates, nil
}

// mockHolidayService is a mock implementation of driving.HolidayService.
type mockHolidayService struct {
	status domain.DayStatus
}

func (m *mockHolidayService) DayStatus(ctx context.Context, date domain.Date) string {
	return m.Resolve(ctx, date).Text
}

func (m *mockHolidayService) Resolve(_ context.Context, date domain.Date) domain.DayStatus {
	s := m.status
	s.Date = date
	return s
}

func (m *mockHolidayService) Range(ctx context.Context, from, to domain.Date) []domain.DayStatus {
	var out []domain.DayStatus
	for d := from; !to.Before(d); d = d.AddDays(1) {
		out = append(out, m.Resolve(ctx, d))
	}
	return out
}

func (m *mockHolidayService) Holidays() domain.HolidayTable {
	return domain.DefaultHolidayTable()
}
