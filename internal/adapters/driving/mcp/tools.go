package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// DateInput identifies a single calendar day.
type DateInput struct {
	Date string `json:"date,omitempty" jsonschema:"the day in YYYY-MM-DD format (default today)"`
}

// AddNoteInput is the input schema for the add_note tool.
type AddNoteInput struct {
	Date    string `json:"date,omitempty" jsonschema:"the day in YYYY-MM-DD format (default today)"`
	Content string `json:"content" jsonschema:"the note text"`
}

// DeleteNoteInput is the input schema for the delete_note tool.
type DeleteNoteInput struct {
	ID string `json:"id" jsonschema:"the note ID returned by add_note or list_notes"`
}

// NoteOutput represents a single note.
type NoteOutput struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ListNotesOutput is the output schema for the list_notes tool.
type ListNotesOutput struct {
	Date  string       `json:"date"`
	Notes []NoteOutput `json:"notes"`
	Count int          `json:"count"`
}

// DeleteNoteOutput is the output schema for the delete_note tool.
type DeleteNoteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ClearDayOutput is the output schema for the clear_day tool.
type ClearDayOutput struct {
	Date    string `json:"date"`
	Cleared int    `json:"cleared"`
}

// DayStatusOutput is the output schema for the day_status tool.
type DayStatusOutput struct {
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Code        string `json:"code,omitempty"`
	HolidayName string `json:"holiday_name,omitempty"`
	Status      string `json:"status"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_note",
		Description: "Attach a note to a calendar day",
	}, s.handleAddNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List the notes of a calendar day in the order they were added",
	}, s.handleListNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note by ID",
	}, s.handleDeleteNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_day",
		Description: "Delete every note of a calendar day",
	}, s.handleClearDay)

	if s.ports.Holiday != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "day_status",
			Description: "Report whether a day is a holiday, day off, shortened or regular workday",
		}, s.handleDayStatus)
	}
}

// handleAddNote handles the add_note tool invocation.
func (s *Server) handleAddNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	date, err := parseDateInput(input.Date)
	if err != nil {
		return nil, NoteOutput{}, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, NoteOutput{}, ErrBlankContent
	}

	note, err := s.ports.Notes.Add(ctx, date, input.Content)
	if err != nil {
		return nil, NoteOutput{}, fmt.Errorf("adding note: %w", err)
	}

	return nil, toNoteOutput(date, note), nil
}

// handleListNotes handles the list_notes tool invocation.
func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DateInput,
) (*mcp.CallToolResult, ListNotesOutput, error) {
	date, err := parseDateInput(input.Date)
	if err != nil {
		return nil, ListNotesOutput{}, err
	}

	notes, err := s.ports.Notes.NotesFor(ctx, date)
	if err != nil {
		return nil, ListNotesOutput{}, fmt.Errorf("listing notes: %w", err)
	}

	output := ListNotesOutput{
		Date:  date.String(),
		Notes: make([]NoteOutput, len(notes)),
		Count: len(notes),
	}
	for i := range notes {
		output.Notes[i] = toNoteOutput(date, notes[i])
	}

	return nil, output, nil
}

// handleDeleteNote handles the delete_note tool invocation.
func (s *Server) handleDeleteNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteNoteInput,
) (*mcp.CallToolResult, DeleteNoteOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, DeleteNoteOutput{}, fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}

	deleted, err := s.ports.Notes.DeleteByID(ctx, id)
	if err != nil {
		return nil, DeleteNoteOutput{}, fmt.Errorf("deleting note: %w", err)
	}

	return nil, DeleteNoteOutput{ID: id, Deleted: deleted}, nil
}

// handleClearDay handles the clear_day tool invocation.
func (s *Server) handleClearDay(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DateInput,
) (*mcp.CallToolResult, ClearDayOutput, error) {
	date, err := parseDateInput(input.Date)
	if err != nil {
		return nil, ClearDayOutput{}, err
	}

	cleared, err := s.ports.Notes.ClearDay(ctx, date)
	if err != nil {
		return nil, ClearDayOutput{}, fmt.Errorf("clearing day: %w", err)
	}

	return nil, ClearDayOutput{Date: date.String(), Cleared: cleared}, nil
}

// handleDayStatus handles the day_status tool invocation.
func (s *Server) handleDayStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DateInput,
) (*mcp.CallToolResult, DayStatusOutput, error) {
	date, err := parseDateInput(input.Date)
	if err != nil {
		return nil, DayStatusOutput{}, err
	}

	status := s.ports.Holiday.Resolve(ctx, date)

	return nil, DayStatusOutput{
		Date:        status.Date.String(),
		Kind:        string(status.Kind),
		Code:        string(status.Code),
		HolidayName: status.HolidayName,
		Status:      status.Text,
	}, nil
}

// parseDateInput parses a YYYY-MM-DD date, defaulting to today.
func parseDateInput(s string) (domain.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(s)
}

func toNoteOutput(date domain.Date, note domain.Note) NoteOutput {
	return NoteOutput{
		ID:        note.ID,
		Date:      date.String(),
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
	}
}
