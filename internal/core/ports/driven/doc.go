// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NoteStore: per-date note buckets
//   - DayTypeOracle: remote day-type lookup
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
