package cli

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
)

// mockHolidayService resolves every date as a workday unless listed.
type mockHolidayService struct {
	mu       sync.Mutex
	statuses map[domain.Date]domain.DayStatus
	table    domain.HolidayTable
	resolved []domain.Date
}

func newMockHolidayService() *mockHolidayService {
	mar8 := domain.NewDate(2024, time.March, 8)
	return &mockHolidayService{
		statuses: map[domain.Date]domain.DayStatus{
			mar8: {
				Date:        mar8,
				Kind:        domain.StatusHoliday,
				Code:        domain.DayTypeDayOff,
				HolidayName: "International Women's Day",
				Text:        "HOLIDAY: International Women's Day",
			},
		},
		table: domain.DefaultHolidayTable(),
	}
}

func (m *mockHolidayService) DayStatus(ctx context.Context, date domain.Date) string {
	return m.Resolve(ctx, date).Text
}

func (m *mockHolidayService) Resolve(_ context.Context, date domain.Date) domain.DayStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved = append(m.resolved, date)
	if st, ok := m.statuses[date]; ok {
		return st
	}
	return domain.DayStatus{Date: date, Kind: domain.StatusWorkday, Code: domain.DayTypeWorkday, Text: "workday"}
}

func (m *mockHolidayService) Range(ctx context.Context, from, to domain.Date) []domain.DayStatus {
	var out []domain.DayStatus
	for d := from; !to.Before(d); d = d.AddDays(1) {
		out = append(out, m.Resolve(ctx, d))
	}
	return out
}

func (m *mockHolidayService) Holidays() domain.HolidayTable {
	return m.table
}

func (m *mockHolidayService) Resolved() []domain.Date {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Date(nil), m.resolved...)
}

// mockSettingsService records Set calls.
type mockSettingsService struct {
	settings domain.Settings
	path     string
	setErr   error
	values   map[string]any
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultSettings(),
		path:     "/home/test/.notecal/config.toml",
		values:   make(map[string]any),
	}
}

func (m *mockSettingsService) Get() domain.Settings {
	return m.settings
}

func (m *mockSettingsService) HolidayTable() (domain.HolidayTable, error) {
	return domain.DefaultHolidayTable(), nil
}

func (m *mockSettingsService) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingsService) ConfigPath() string {
	return m.path
}

// mockNoteService is a minimal note service for wiring checks.
type mockNoteService struct{}

func (mockNoteService) Add(_ context.Context, _ domain.Date, content string) (domain.Note, error) {
	return domain.Note{ID: "note-1", Content: content}, nil
}

func (mockNoteService) NotesFor(context.Context, domain.Date) ([]domain.Note, error) {
	return []domain.Note{}, nil
}

func (mockNoteService) DeleteByID(context.Context, string) (bool, error) { return false, nil }

func (mockNoteService) ClearDay(context.Context, domain.Date) (int, error) { return 0, nil }

func (mockNoteService) Dates(context.Context) ([]domain.Date, error) { return []domain.Date{}, nil }

var (
	_ driving.HolidayService  = (*mockHolidayService)(nil)
	_ driving.SettingsService = (*mockSettingsService)(nil)
	_ driving.NoteService     = mockNoteService{}
)

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	holiday  *mockHolidayService
	settings *mockSettingsService
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous services and resets flag values.
func setupTestServices() (*testServices, func()) {
	oldNotes, oldHoliday, oldSettings := noteService, holidayService, settingsService
	oldTerminal := stdinIsTerminal

	ts := &testServices{
		holiday:  newMockHolidayService(),
		settings: newMockSettingsService(),
	}
	noteService = mockNoteService{}
	holidayService = ts.holiday
	settingsService = ts.settings
	stdinIsTerminal = func() bool { return false }

	return ts, func() {
		noteService, holidayService, settingsService = oldNotes, oldHoliday, oldSettings
		stdinIsTerminal = oldTerminal
		dayFormat = formatText
		monthFormat = formatText
		holidaysFormat = formatText
		configFormat = formatText
		verbose = false
	}
}

// execute runs the root command with args and returns its combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
