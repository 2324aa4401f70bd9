package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/notecal/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// timeLayout is how note creation times are stored.
const timeLayout = time.RFC3339Nano

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore keeps notes in an in-memory SQLite database.
// Insertion order within a date follows the autoincrement seq column.
type NoteStore struct {
	db *sql.DB
}

// NewNoteStore opens a fresh in-memory database and applies migrations.
func NewNoteStore() (*NoteStore, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	s := &NoteStore{db: db}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database, discarding every note.
func (s *NoteStore) Close() error {
	return s.db.Close()
}

// migrate runs all pending migrations.
func (s *NoteStore) migrate(fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_notes.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// applyMigration runs one migration and records its version atomically.
func (s *NoteStore) applyMigration(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// Append adds a note to the end of the date's bucket.
func (s *NoteStore) Append(ctx context.Context, date domain.Date, note domain.Note) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, date, content, created_at)
		VALUES (?, ?, ?, ?)
	`, note.ID, date.String(), note.Content, note.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	return nil
}

// List returns the date's notes in insertion order.
func (s *NoteStore) List(ctx context.Context, date domain.Date) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, created_at FROM notes
		WHERE date = ?
		ORDER BY seq
	`, date.String())
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// Delete removes the note with the given ID.
func (s *NoteStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting note: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted rows: %w", err)
	}
	return n > 0, nil
}

// Clear removes every note for the date and reports how many were removed.
func (s *NoteStore) Clear(ctx context.Context, date domain.Date) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE date = ?", date.String())
	if err != nil {
		return 0, fmt.Errorf("clearing notes: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking cleared rows: %w", err)
	}
	return int(n), nil
}

// Dates returns the dates that currently have notes, oldest first.
// YYYY-MM-DD text sorts chronologically.
func (s *NoteStore) Dates(ctx context.Context) ([]domain.Date, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT date FROM notes ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("listing dates: %w", err)
	}
	defer rows.Close()

	dates := []domain.Date{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning date: %w", err)
		}
		d, err := domain.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("stored date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dates: %w", err)
	}
	return dates, nil
}

// scanNote reads one row of id, content, created_at.
func scanNote(rows *sql.Rows) (domain.Note, error) {
	var (
		note      domain.Note
		createdAt string
	)
	if err := rows.Scan(&note.ID, &note.Content, &createdAt); err != nil {
		return domain.Note{}, fmt.Errorf("scanning note: %w", err)
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.Note{}, errors.Join(fmt.Errorf("note %s has a bad timestamp", note.ID), err)
	}
	note.CreatedAt = t
	return note, nil
}
