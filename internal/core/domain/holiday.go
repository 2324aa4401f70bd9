package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// HolidayTable maps year-independent dates to holiday names.
// A table is immutable once built; Merge returns a new table.
type HolidayTable struct {
	names map[MonthDay]string
}

// Holiday is a single table entry.
type Holiday struct {
	MonthDay MonthDay `json:"month_day" yaml:"month_day"`
	Name     string   `json:"name" yaml:"name"`
}

// NewHolidayTable builds a table from the given entries.
// The map is copied; later changes to it do not affect the table.
func NewHolidayTable(entries map[MonthDay]string) HolidayTable {
	names := make(map[MonthDay]string, len(entries))
	for md, name := range entries {
		names[md] = name
	}
	return HolidayTable{names: names}
}

// DefaultHolidayTable returns the fixed domestic public holidays.
func DefaultHolidayTable() HolidayTable {
	const newYear = "New Year holidays"

	return NewHolidayTable(map[MonthDay]string{
		{Month: time.January, Day: 1}:   newYear,
		{Month: time.January, Day: 2}:   newYear,
		{Month: time.January, Day: 3}:   newYear,
		{Month: time.January, Day: 4}:   newYear,
		{Month: time.January, Day: 5}:   newYear,
		{Month: time.January, Day: 6}:   newYear,
		{Month: time.January, Day: 7}:   "Orthodox Christmas",
		{Month: time.January, Day: 8}:   newYear,
		{Month: time.February, Day: 23}: "Defender of the Fatherland Day",
		{Month: time.March, Day: 8}:     "International Women's Day",
		{Month: time.May, Day: 1}:       "Spring and Labour Day",
		{Month: time.May, Day: 9}:       "Victory Day",
		{Month: time.June, Day: 12}:     "Russia Day",
		{Month: time.November, Day: 4}:  "National Unity Day",
	})
}

// Lookup returns the holiday name for md.
func (t HolidayTable) Lookup(md MonthDay) (string, bool) {
	name, ok := t.names[md]
	return name, ok
}

// Len returns the number of entries.
func (t HolidayTable) Len() int {
	return len(t.names)
}

// Merge returns a new table with extra layered over t.
// Entries in extra replace entries in t for the same MonthDay.
func (t HolidayTable) Merge(extra map[MonthDay]string) HolidayTable {
	names := make(map[MonthDay]string, len(t.names)+len(extra))
	for md, name := range t.names {
		names[md] = name
	}
	for md, name := range extra {
		names[md] = name
	}
	return HolidayTable{names: names}
}

// Entries returns all entries in calendar order.
func (t HolidayTable) Entries() []Holiday {
	out := make([]Holiday, 0, len(t.names))
	for md, name := range t.names {
		out = append(out, Holiday{MonthDay: md, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MonthDay.Before(out[j].MonthDay)
	})
	return out
}

// ParseHolidayExtra parses an "MM-DD=Name" entry.
func ParseHolidayExtra(entry string) (MonthDay, string, error) {
	key, name, ok := strings.Cut(entry, HolidayExtraSeparator)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return MonthDay{}, "", fmt.Errorf("%w: holiday entry %q must be MM-DD=Name", ErrInvalidInput, entry)
	}
	md, err := ParseMonthDay(strings.TrimSpace(key))
	if err != nil {
		return MonthDay{}, "", err
	}
	return md, name, nil
}
