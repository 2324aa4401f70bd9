package domain

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a Date.
const DateLayout = "2006-01-02"

// compactLayout is the form used in oracle URLs.
const compactLayout = "20060102"

// Date is a calendar date without a time of day or zone.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalised date for year, month and day.
// Out-of-range values roll over the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return DateOf(t), nil
}

// Time returns the date at noon UTC.
// Noon keeps formatting stable regardless of zone offsets.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Compact formats the date as YYYYMMDD.
func (d Date) Compact() string {
	return d.Time().Format(compactLayout)
}

// MonthDay returns the year-independent part of the date.
func (d Date) MonthDay() MonthDay {
	return MonthDay{Month: d.Month, Day: d.Day}
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// MonthDay is a (month, day) pair that recurs every year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses an MM-DD string.
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: month-day %q must be MM-DD", ErrInvalidInput, s)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

// String formats the pair as MM-DD.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// Before reports whether md falls earlier in the year than other.
func (md MonthDay) Before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (md MonthDay) MarshalText() ([]byte, error) {
	return []byte(md.String()), nil
}
