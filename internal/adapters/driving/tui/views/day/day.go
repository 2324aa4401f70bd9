// Package day provides the calendar day view for the TUI.
package day

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
)

// HeaderLayout formats the date shown at the top of the view.
const HeaderLayout = "Monday, 02 January 2006"

// Mode is what the keyboard currently drives.
type Mode int

const (
	// ModeBrowse moves between days and notes.
	ModeBrowse Mode = iota
	// ModeAdd types the text of a new note.
	ModeAdd
	// ModeGoTo types a date to jump to.
	ModeGoTo
)

var errNoteServiceUnavailable = errors.New("note service not available")

// View shows one day: its holiday status, its notes and the note input.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TextInput
	list      *list.NoteList
	statusbar *status.Bar

	noteService    driving.NoteService
	holidayService driving.HolidayService
	ctx            context.Context
	today          func() domain.Date

	date   domain.Date
	status *domain.DayStatus
	mode   Mode
	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new day view showing today.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	noteService driving.NoteService,
	holidayService driving.HolidayService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewTextInput(s, "Note"),
		list:           list.NewNoteList(s),
		statusbar:      status.NewBar(s, km),
		noteService:    noteService,
		holidayService: holidayService,
		ctx:            context.Background(),
		today:          domain.Today,
		date:           domain.Today(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithClock replaces the source of "today".
func (v *View) WithClock(today func() domain.Date) *View {
	v.today = today
	v.date = today()
	return v
}

// Init loads the status and notes of the shown day.
func (v *View) Init() tea.Cmd {
	return v.showDate(v.date)
}

// Update handles messages for the day view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.mode != ModeBrowse {
			return v.handleInputKey(msg)
		}
		return v.handleBrowseKey(msg)

	case messages.StatusLoaded:
		if msg.Date != v.date {
			return v, nil
		}
		st := msg.Status
		v.status = &st
		return v, nil

	case messages.NotesLoaded:
		if msg.Date != v.date {
			return v, nil
		}
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.list.SetNotes(msg.Notes)
		v.statusbar.SetNoteCount(len(msg.Notes))
		if v.statusbar.State() == status.StateLoading {
			v.statusbar.SetState(status.StateReady)
		}
		return v, nil

	case messages.NoteAdded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetMessage("Note added")
		return v, v.loadNotes(v.date)

	case messages.NoteDeleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		if msg.Deleted {
			v.statusbar.SetMessage("Note deleted")
		} else {
			v.statusbar.SetMessage("Note was already gone")
		}
		return v, v.loadNotes(v.date)

	case messages.DayCleared:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		if msg.Removed == 1 {
			v.statusbar.SetMessage("Day cleared, 1 note removed")
		} else {
			v.statusbar.SetMessage(fmt.Sprintf("Day cleared, %d notes removed", msg.Removed))
		}
		return v, v.loadNotes(v.date)

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	if v.mode != ModeBrowse {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleBrowseKey handles keys while moving between days and notes.
func (v *View) handleBrowseKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(k, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}

	case keymap.Matches(k, v.keymap.PrevDay):
		return v, v.showDate(v.date.AddDays(-1))

	case keymap.Matches(k, v.keymap.NextDay):
		return v, v.showDate(v.date.AddDays(1))

	case keymap.Matches(k, v.keymap.Today):
		return v, v.showDate(v.today())

	case keymap.Matches(k, v.keymap.GoTo):
		return v, v.openInput(ModeGoTo, "Go to", "YYYY-MM-DD")

	case keymap.Matches(k, v.keymap.Add):
		return v, v.openInput(ModeAdd, "Note", "type a note")

	case keymap.Matches(k, v.keymap.Delete):
		note := v.list.SelectedNote()
		if note == nil {
			return v, nil
		}
		return v, v.deleteNote(note.ID)

	case keymap.Matches(k, v.keymap.Clear):
		if v.list.IsEmpty() {
			return v, nil
		}
		return v, v.clearDay(v.date)

	case keymap.Matches(k, v.keymap.Up):
		v.list.MoveUp()

	case keymap.Matches(k, v.keymap.Down):
		v.list.MoveDown()
	}

	return v, nil
}

// handleInputKey handles keys while the input is open.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Cancel):
		v.closeInput()
		return v, nil

	case keymap.Matches(k, v.keymap.Confirm):
		return v.submitInput()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submitInput acts on the typed value for the current mode.
func (v *View) submitInput() (*View, tea.Cmd) {
	value := v.input.Value()

	switch v.mode {
	case ModeAdd:
		if strings.TrimSpace(value) == "" {
			v.statusbar.SetMessage("Note text cannot be empty")
			return v, nil
		}
		v.closeInput()
		return v, v.addNote(v.date, value)

	case ModeGoTo:
		date, err := domain.ParseDate(strings.TrimSpace(value))
		if err != nil {
			v.statusbar.SetMessage(fmt.Sprintf("Invalid date %q, use YYYY-MM-DD", value))
			return v, nil
		}
		v.closeInput()
		return v, v.showDate(date)

	case ModeBrowse:
	}

	return v, nil
}

// openInput switches to an input mode and focuses the prompt.
func (v *View) openInput(mode Mode, label, placeholder string) tea.Cmd {
	v.mode = mode
	v.statusbar.Clear()
	v.statusbar.SetState(status.StateInput)
	return v.input.Prompt(label, placeholder)
}

// closeInput returns to browsing.
func (v *View) closeInput() {
	v.mode = ModeBrowse
	v.input.Blur()
	v.input.Reset()
	v.statusbar.Clear()
}

// setError records an error and shows it in the status bar.
func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetError(err)
}

// showDate switches to a date and starts loading its status and notes.
func (v *View) showDate(date domain.Date) tea.Cmd {
	v.date = date
	v.status = nil
	v.err = nil
	v.list.SetNotes(nil)
	v.statusbar.Clear()
	v.statusbar.SetNoteCount(0)
	v.statusbar.SetState(status.StateLoading)
	return tea.Batch(v.loadStatus(date), v.loadNotes(date))
}

// loadStatus returns a command that resolves the holiday status of a date.
func (v *View) loadStatus(date domain.Date) tea.Cmd {
	ctx, svc := v.ctx, v.holidayService
	return func() tea.Msg {
		if svc == nil {
			return messages.StatusLoaded{
				Date:   date,
				Status: domain.DayStatus{Date: date, Kind: domain.StatusUnknown, Text: "status unknown"},
			}
		}
		return messages.StatusLoaded{Date: date, Status: svc.Resolve(ctx, date)}
	}
}

// loadNotes returns a command that loads the notes of a date.
func (v *View) loadNotes(date domain.Date) tea.Cmd {
	ctx, svc := v.ctx, v.noteService
	return func() tea.Msg {
		if svc == nil {
			return messages.NotesLoaded{Date: date, Err: errNoteServiceUnavailable}
		}
		notes, err := svc.NotesFor(ctx, date)
		return messages.NotesLoaded{Date: date, Notes: notes, Err: err}
	}
}

// addNote returns a command that attaches a note to a date.
func (v *View) addNote(date domain.Date, content string) tea.Cmd {
	ctx, svc := v.ctx, v.noteService
	return func() tea.Msg {
		if svc == nil {
			return messages.NoteAdded{Date: date, Err: errNoteServiceUnavailable}
		}
		note, err := svc.Add(ctx, date, content)
		return messages.NoteAdded{Date: date, Note: note, Err: err}
	}
}

// deleteNote returns a command that deletes a note by ID.
func (v *View) deleteNote(id string) tea.Cmd {
	ctx, svc := v.ctx, v.noteService
	return func() tea.Msg {
		if svc == nil {
			return messages.NoteDeleted{ID: id, Err: errNoteServiceUnavailable}
		}
		deleted, err := svc.DeleteByID(ctx, id)
		return messages.NoteDeleted{ID: id, Deleted: deleted, Err: err}
	}
}

// clearDay returns a command that removes every note of a date.
func (v *View) clearDay(date domain.Date) tea.Cmd {
	ctx, svc := v.ctx, v.noteService
	return func() tea.Msg {
		if svc == nil {
			return messages.DayCleared{Date: date, Err: errNoteServiceUnavailable}
		}
		removed, err := svc.ClearDay(ctx, date)
		return messages.DayCleared{Date: date, Removed: removed, Err: err}
	}
}

// View renders the day view.
func (v *View) View() string {
	sections := make([]string, 0, 12)

	sections = append(sections,
		v.styles.Title.Render("notecal"),
		v.styles.Subtitle.Render(v.date.Time().Format(HeaderLayout)),
		v.renderStatus(),
		"",
		v.list.View(),
	)

	if v.mode != ModeBrowse {
		sections = append(sections, "", v.input.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus renders the holiday status line.
func (v *View) renderStatus() string {
	if v.status == nil {
		return v.styles.Muted.Render("Checking day status...")
	}
	return v.styles.ForStatus(v.status.Kind).Render(v.status.Text)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, status line, input and bar
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether dimensions have been set.
func (v *View) Ready() bool {
	return v.ready
}

// Date returns the day being shown.
func (v *View) Date() domain.Date {
	return v.date
}

// Status returns the resolved status of the shown day, or nil while loading.
func (v *View) Status() *domain.DayStatus {
	return v.status
}

// Notes returns the notes of the shown day.
func (v *View) Notes() []domain.Note {
	return v.list.Notes()
}

// SelectedNote returns the highlighted note, or nil if none.
func (v *View) SelectedNote() *domain.Note {
	return v.list.SelectedNote()
}

// Mode returns what the keyboard currently drives.
func (v *View) Mode() Mode {
	return v.mode
}

// Message returns the status bar message.
func (v *View) Message() string {
	return v.statusbar.Message()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
