// Package domain defines the core business entities for notecal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Date / MonthDay: calendar keys for notes and holidays
//   - Note: a free-text entry attached to a date
//   - DayType / DayStatus: oracle codes and their resolved classification
//   - HolidayTable: the immutable year-independent holiday names
//   - Settings: application configuration values
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
