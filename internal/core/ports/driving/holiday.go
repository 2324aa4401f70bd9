package driving

import (
	"context"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// HolidayService classifies dates as workdays, days off or holidays.
// None of its methods fail: lookup problems are reported inside the status.
type HolidayService interface {
	// DayStatus returns the human-readable status for the date.
	DayStatus(ctx context.Context, date domain.Date) string

	// Resolve returns the structured status for the date.
	Resolve(ctx context.Context, date domain.Date) domain.DayStatus

	// Range resolves every date from..to inclusive, in order.
	Range(ctx context.Context, from, to domain.Date) []domain.DayStatus

	// Holidays returns the holiday table in use.
	Holidays() domain.HolidayTable
}
