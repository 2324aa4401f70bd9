package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for notecal resources.
	uriScheme = "notecal://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "dates",
		Name:        "dates",
		Description: "Days that currently have notes, with note counts",
		MIMEType:    mimeJSON,
	}, s.handleDatesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "days/{date}/notes",
		Name:        "day-notes",
		Description: "Notes attached to a specific day",
		MIMEType:    mimeJSON,
	}, s.handleDayNotesResource)
}

// handleDatesResource lists the days that have notes.
func (s *Server) handleDatesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	dates, err := s.ports.Notes.Dates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dates: %w", err)
	}

	type dateInfo struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
		URI   string `json:"uri"`
	}

	infos := make([]dateInfo, 0, len(dates))
	for _, d := range dates {
		notes, err := s.ports.Notes.NotesFor(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("listing notes for %s: %w", d, err)
		}
		infos = append(infos, dateInfo{
			Date:  d.String(),
			Count: len(notes),
			URI:   dayNotesURI(d),
		})
	}

	return jsonResult(req.Params.URI, infos)
}

// handleDayNotesResource returns the notes of one day.
func (s *Server) handleDayNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract date from URI: notecal://days/{date}/notes
	raw := extractDate(req.Params.URI)
	if raw == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	notes, err := s.ports.Notes.NotesFor(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	out := make([]NoteOutput, len(notes))
	for i := range notes {
		out[i] = toNoteOutput(date, notes[i])
	}

	return jsonResult(req.Params.URI, out)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

func dayNotesURI(d domain.Date) string {
	return uriScheme + "days/" + d.String() + "/notes"
}

// extractDate extracts the date from a URI like notecal://days/{date}/notes.
func extractDate(uri string) string {
	const prefix = uriScheme + "days/"
	const suffix = "/notes"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
