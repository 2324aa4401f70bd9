package driven

import (
	"context"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

// DayTypeOracle looks up the official day type of a date from a remote service.
type DayTypeOracle interface {
	// DayType returns the raw code for the date.
	// Transport failures wrap domain.ErrOracleUnavailable and
	// non-success responses wrap domain.ErrOracleRejected.
	DayType(ctx context.Context, date domain.Date) (domain.DayType, error)
}
