// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notecal/internal/core/domain"
)

// NoteList displays the notes of one day in a navigable list.
type NoteList struct {
	notes    []domain.Note
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewNoteList creates a new note list component.
func NewNoteList(s *styles.Styles) *NoteList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &NoteList{
		notes:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the note list.
func (l *NoteList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *NoteList) Update(msg tea.Msg) (*NoteList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the note list.
func (l *NoteList) View() string {
	if len(l.notes) == 0 {
		return l.styles.Muted.Render("No notes for this day")
	}

	lines := make([]string, 0, len(l.notes)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Notes (%d)", len(l.notes))), "")

	visibleCount := l.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.notes) {
		end = len(l.notes)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderNote(i, &l.notes[i]))
	}

	return strings.Join(lines, "\n")
}

// renderNote formats a single note line: index, creation time and content.
func (l *NoteList) renderNote(index int, note *domain.Note) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	content := strings.ReplaceAll(note.Content, "\n", " ")
	if strings.TrimSpace(content) == "" {
		content = "(empty)"
	}

	maxContentLen := l.width - 16
	if maxContentLen < 10 {
		maxContentLen = 10
	}
	content = ansi.Truncate(content, maxContentLen, "...")

	stamp := "--:--"
	if !note.CreatedAt.IsZero() {
		stamp = note.CreatedAt.Format("15:04")
	}

	prefix := fmt.Sprintf("%s%2d. ", indicator, index+1)
	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%s  %s", prefix, stamp, content))
	}
	return l.styles.Normal.Render(prefix) +
		l.styles.Muted.Render(stamp+"  ") +
		l.styles.Normal.Render(content)
}

// SetNotes replaces the listed notes, keeping the selection in range.
func (l *NoteList) SetNotes(notes []domain.Note) {
	l.notes = notes
	if l.selected >= len(notes) {
		l.selected = len(notes) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Notes returns the current notes.
func (l *NoteList) Notes() []domain.Note {
	return l.notes
}

// Selected returns the index of the selected note.
func (l *NoteList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *NoteList) SetSelected(index int) {
	if index >= 0 && index < len(l.notes) {
		l.selected = index
	}
}

// SelectedNote returns the currently selected note, or nil if none.
func (l *NoteList) SelectedNote() *domain.Note {
	if len(l.notes) == 0 || l.selected < 0 || l.selected >= len(l.notes) {
		return nil
	}
	return &l.notes[l.selected]
}

// MoveUp moves selection up.
func (l *NoteList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *NoteList) MoveDown() {
	if l.selected < len(l.notes)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *NoteList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *NoteList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *NoteList) Height() int {
	return l.height
}

// Count returns the number of notes.
func (l *NoteList) Count() int {
	return len(l.notes)
}

// IsEmpty returns whether the list is empty.
func (l *NoteList) IsEmpty() bool {
	return len(l.notes) == 0
}
