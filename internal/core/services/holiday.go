package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
	"github.com/custodia-labs/notecal/internal/logger"
)

// Ensure HolidayService implements the interface.
var _ driving.HolidayService = (*HolidayService)(nil)

// HolidayService combines the remote day-type oracle with the local holiday table.
// Each lookup makes a single oracle call; results are neither cached nor retried.
type HolidayService struct {
	oracle   driven.DayTypeOracle
	holidays domain.HolidayTable
}

// NewHolidayService creates a holiday service.
// The table is fixed for the lifetime of the service.
func NewHolidayService(oracle driven.DayTypeOracle, holidays domain.HolidayTable) *HolidayService {
	return &HolidayService{
		oracle:   oracle,
		holidays: holidays,
	}
}

// DayStatus returns the human-readable status for the date.
func (s *HolidayService) DayStatus(ctx context.Context, date domain.Date) string {
	return s.Resolve(ctx, date).Text
}

// Resolve returns the structured status for the date.
func (s *HolidayService) Resolve(ctx context.Context, date domain.Date) domain.DayStatus {
	status := domain.DayStatus{Date: date}

	if s.oracle == nil {
		status.Kind = domain.StatusNoConnection
		status.Text = domain.TextNoConnection
		return status
	}

	code, err := s.oracle.DayType(ctx, date)
	if err != nil {
		return failureStatus(status, err)
	}
	status.Code = code

	name, hasName := s.holidays.Lookup(date.MonthDay())

	switch code {
	case domain.DayTypeDayOff:
		if hasName {
			status.Kind = domain.StatusHoliday
			status.HolidayName = name
			status.Text = domain.TextHolidayPrefix + name
		} else {
			status.Kind = domain.StatusDayOff
			status.Text = domain.TextDayOff
		}
	case domain.DayTypeShortened:
		status.Kind = domain.StatusShortened
		status.Text = domain.TextShortened
		if hasName {
			status.HolidayName = name
			status.Text += " (" + name + ")"
		}
	case domain.DayTypeSpecial:
		status.Kind = domain.StatusSpecial
		status.Text = domain.TextSpecial
	case domain.DayTypeWorkday:
		status.Kind = domain.StatusWorkday
		status.Text = domain.TextWorkday
	default:
		logger.Debug("oracle returned unrecognised code %q for %s", code, date)
		status.Kind = domain.StatusUnknown
		status.Text = domain.TextUnknown
	}

	return status
}

// Range resolves every date from..to inclusive, in order.
// An inverted range yields no statuses.
func (s *HolidayService) Range(ctx context.Context, from, to domain.Date) []domain.DayStatus {
	var out []domain.DayStatus
	for d := from; !to.Before(d); d = d.AddDays(1) {
		out = append(out, s.Resolve(ctx, d))
	}
	return out
}

// Holidays returns the holiday table in use.
func (s *HolidayService) Holidays() domain.HolidayTable {
	return s.holidays
}

// failureStatus converts an oracle error into a status.
// Rejections carry the adapter's message; everything else counts as no connection.
func failureStatus(status domain.DayStatus, err error) domain.DayStatus {
	if errors.Is(err, domain.ErrOracleRejected) {
		logger.Warnw("day-type oracle returned an error", "date", status.Date.String(), "error", err.Error())
		status.Kind = domain.StatusAPIError
		status.Text = fmt.Sprintf("%s (%s)", domain.TextAPIError, rejectionDetail(err))
		return status
	}

	logger.Warnw("day-type oracle unreachable", "date", status.Date.String(), "error", err.Error())
	status.Kind = domain.StatusNoConnection
	status.Text = domain.TextNoConnection
	return status
}

// statusCoder is implemented by oracle errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

// rejectionDetail describes a rejection as briefly as possible.
// A refusal made during a back-off window carries no HTTP status.
func rejectionDetail(err error) string {
	var sc statusCoder
	if errors.As(err, &sc) {
		return fmt.Sprintf("HTTP %d", sc.HTTPStatus())
	}
	if errors.Is(err, domain.ErrRateLimited) {
		return "rate limited"
	}
	return "rejected"
}
