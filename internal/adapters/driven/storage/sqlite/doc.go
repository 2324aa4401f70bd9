// Package sqlite provides a SQLite-backed implementation of driven.NoteStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// The database lives in memory and is discarded when the store is closed.
// A single connection is kept open, since every SQLite connection to
// ":memory:" would otherwise see its own empty database.
//
// # Thread Safety
//
// All operations are thread-safe. database/sql serialises access to the
// single connection.
package sqlite
