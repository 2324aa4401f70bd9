package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notecal/internal/adapters/driven/isdayoff"
	"github.com/custodia-labs/notecal/internal/core/domain"
)

// rejection mimics an adapter error carrying an HTTP status.
type rejection struct {
	status int
}

func (e *rejection) Error() string   { return fmt.Sprintf("oracle returned HTTP %d", e.status) }
func (e *rejection) Unwrap() error   { return domain.ErrOracleRejected }
func (e *rejection) HTTPStatus() int { return e.status }

func TestHolidayService_DayStatus(t *testing.T) {
	tests := []struct {
		name   string
		date   domain.Date
		oracle *mockOracle
		want   string
	}{
		{
			name:   "day off with holiday name",
			date:   jan1,
			oracle: fixedOracle(domain.DayTypeDayOff),
			want:   "HOLIDAY: New Year holidays",
		},
		{
			name:   "day off without holiday name",
			date:   mar16,
			oracle: fixedOracle(domain.DayTypeDayOff),
			want:   "day off",
		},
		{
			name:   "shortened workday with holiday name",
			date:   mar8,
			oracle: fixedOracle(domain.DayTypeShortened),
			want:   "shortened workday (International Women's Day)",
		},
		{
			name:   "shortened workday without holiday name",
			date:   mar16,
			oracle: fixedOracle(domain.DayTypeShortened),
			want:   "shortened workday",
		},
		{
			name:   "special non-working day",
			date:   mar16,
			oracle: fixedOracle(domain.DayTypeSpecial),
			want:   "non-working day (special decree)",
		},
		{
			name:   "workday on a holiday date",
			date:   jan1,
			oracle: fixedOracle(domain.DayTypeWorkday),
			want:   "workday",
		},
		{
			name:   "unrecognised code",
			date:   mar16,
			oracle: fixedOracle(domain.DayType("7")),
			want:   "status unknown",
		},
		{
			name:   "rejected with status",
			date:   jan1,
			oracle: failingOracle(&rejection{status: 404}),
			want:   "API error (HTTP 404)",
		},
		{
			name:   "rejected without status",
			date:   jan1,
			oracle: failingOracle(fmt.Errorf("bad answer: %w", domain.ErrOracleRejected)),
			want:   "API error (rejected)",
		},
		{
			name:   "refused while backing off",
			date:   jan1,
			oracle: failingOracle(fmt.Errorf("backing off: %w: %w", domain.ErrOracleRejected, domain.ErrRateLimited)),
			want:   "API error (rate limited)",
		},
		{
			name:   "transport failure",
			date:   jan1,
			oracle: failingOracle(fmt.Errorf("dial: %w", domain.ErrOracleUnavailable)),
			want:   "no connection to server",
		},
		{
			name:   "unclassified error",
			date:   jan1,
			oracle: failingOracle(errors.New("boom")),
			want:   "no connection to server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHolidayService(tt.oracle, domain.DefaultHolidayTable())

			got := service.DayStatus(context.Background(), tt.date)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []domain.Date{tt.date}, tt.oracle.Calls())
		})
	}
}

func TestHolidayService_Resolve_Holiday(t *testing.T) {
	service := NewHolidayService(fixedOracle(domain.DayTypeDayOff), domain.DefaultHolidayTable())

	status := service.Resolve(context.Background(), jan1)

	assert.Equal(t, jan1, status.Date)
	assert.Equal(t, domain.StatusHoliday, status.Kind)
	assert.Equal(t, domain.DayTypeDayOff, status.Code)
	assert.Equal(t, "New Year holidays", status.HolidayName)
	assert.Equal(t, "HOLIDAY: New Year holidays", status.Text)
}

func TestHolidayService_Resolve_Kinds(t *testing.T) {
	tests := []struct {
		code domain.DayType
		date domain.Date
		kind domain.StatusKind
	}{
		{domain.DayTypeDayOff, mar16, domain.StatusDayOff},
		{domain.DayTypeShortened, mar8, domain.StatusShortened},
		{domain.DayTypeSpecial, mar16, domain.StatusSpecial},
		{domain.DayTypeWorkday, mar16, domain.StatusWorkday},
		{domain.DayType("100"), mar16, domain.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			service := NewHolidayService(fixedOracle(tt.code), domain.DefaultHolidayTable())

			status := service.Resolve(context.Background(), tt.date)

			assert.Equal(t, tt.kind, status.Kind)
			assert.Equal(t, tt.code, status.Code)
		})
	}
}

func TestHolidayService_Resolve_Failures(t *testing.T) {
	service := NewHolidayService(failingOracle(&rejection{status: 500}), domain.DefaultHolidayTable())

	status := service.Resolve(context.Background(), jan1)

	assert.Equal(t, domain.StatusAPIError, status.Kind)
	assert.Empty(t, status.Code)
	assert.Empty(t, status.HolidayName)
	assert.True(t, status.Kind.IsFailure())
}

func TestHolidayService_Resolve_NilOracle(t *testing.T) {
	service := NewHolidayService(nil, domain.DefaultHolidayTable())

	status := service.Resolve(context.Background(), jan1)

	assert.Equal(t, domain.StatusNoConnection, status.Kind)
	assert.Equal(t, "no connection to server", status.Text)
}

func TestHolidayService_Resolve_ExtraHoliday(t *testing.T) {
	table := domain.DefaultHolidayTable().Merge(map[domain.MonthDay]string{
		{Month: time.March, Day: 16}: "Local Festival",
	})
	service := NewHolidayService(fixedOracle(domain.DayTypeDayOff), table)

	assert.Equal(t, "HOLIDAY: Local Festival", service.DayStatus(context.Background(), mar16))
}

func TestHolidayService_Resolve_PassesContext(t *testing.T) {
	type ctxKey struct{}
	oracle := &mockOracle{
		DayTypeFunc: func(ctx context.Context, _ domain.Date) (domain.DayType, error) {
			if ctx.Value(ctxKey{}) != "marker" {
				return "", errors.New("context not propagated")
			}
			return domain.DayTypeWorkday, nil
		},
	}
	service := NewHolidayService(oracle, domain.DefaultHolidayTable())

	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")
	assert.Equal(t, "workday", service.DayStatus(ctx, jan1))
}

func TestHolidayService_Range(t *testing.T) {
	oracle := &mockOracle{
		DayTypeFunc: func(_ context.Context, date domain.Date) (domain.DayType, error) {
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				return domain.DayTypeDayOff, nil
			}
			return domain.DayTypeWorkday, nil
		},
	}
	service := NewHolidayService(oracle, domain.DefaultHolidayTable())
	from := domain.NewDate(2025, time.February, 27)
	to := domain.NewDate(2025, time.March, 3)

	statuses := service.Range(context.Background(), from, to)

	require.Len(t, statuses, 5)
	assert.Equal(t, "2025-02-27", statuses[0].Date.String())
	assert.Equal(t, "2025-03-03", statuses[4].Date.String())
	assert.Equal(t, domain.StatusWorkday, statuses[0].Kind)
	assert.Equal(t, domain.StatusDayOff, statuses[2].Kind)
	assert.Equal(t, domain.StatusDayOff, statuses[3].Kind)
	assert.Len(t, oracle.Calls(), 5)
}

func TestHolidayService_Range_SingleDay(t *testing.T) {
	service := NewHolidayService(fixedOracle(domain.DayTypeWorkday), domain.DefaultHolidayTable())

	statuses := service.Range(context.Background(), jan2, jan2)

	require.Len(t, statuses, 1)
	assert.Equal(t, jan2, statuses[0].Date)
}

func TestHolidayService_Range_Inverted(t *testing.T) {
	oracle := fixedOracle(domain.DayTypeWorkday)
	service := NewHolidayService(oracle, domain.DefaultHolidayTable())

	statuses := service.Range(context.Background(), jan2, jan1)

	assert.Empty(t, statuses)
	assert.Empty(t, oracle.Calls())
}

func TestHolidayService_Holidays(t *testing.T) {
	table := domain.DefaultHolidayTable()
	service := NewHolidayService(nil, table)

	assert.Equal(t, table.Len(), service.Holidays().Len())
	name, ok := service.Holidays().Lookup(domain.MonthDay{Month: time.June, Day: 12})
	assert.True(t, ok)
	assert.Equal(t, "Russia Day", name)
}

func TestHolidayService_DayStatus_RateLimitBackoff(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "3600")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("0"))
	}))
	t.Cleanup(server.Close)
	oracle := isdayoff.NewClient(isdayoff.Config{BaseURL: server.URL})
	service := NewHolidayService(oracle, domain.DefaultHolidayTable())

	assert.Equal(t, "API error (HTTP 429)", service.DayStatus(context.Background(), mar16))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	status := service.Resolve(ctx, mar16)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, domain.StatusAPIError, status.Kind)
	assert.Equal(t, "API error (rate limited)", status.Text)
	assert.Equal(t, int32(1), hits.Load())
}
