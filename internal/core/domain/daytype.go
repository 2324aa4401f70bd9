package domain

// DayType is the raw code returned by the day-type oracle.
// Codes outside the known set are kept verbatim so they can be reported.
type DayType string

// Known oracle codes.
const (
	DayTypeWorkday   DayType = "0"
	DayTypeDayOff    DayType = "1"
	DayTypeShortened DayType = "2"
	DayTypeSpecial   DayType = "4"
)

// String returns the raw code.
func (t DayType) String() string {
	return string(t)
}

// StatusKind classifies a resolved day.
type StatusKind string

// Status kinds. The last two describe lookup failures rather than days.
const (
	StatusHoliday      StatusKind = "holiday"
	StatusDayOff       StatusKind = "day_off"
	StatusShortened    StatusKind = "shortened"
	StatusSpecial      StatusKind = "special"
	StatusWorkday      StatusKind = "workday"
	StatusUnknown      StatusKind = "unknown"
	StatusAPIError     StatusKind = "api_error"
	StatusNoConnection StatusKind = "no_connection"
)

// IsFailure returns true if the kind reports a failed oracle lookup.
func (k StatusKind) IsFailure() bool {
	return k == StatusAPIError || k == StatusNoConnection
}

// IsRestDay returns true for kinds where nobody is expected to work.
func (k StatusKind) IsRestDay() bool {
	return k == StatusHoliday || k == StatusDayOff || k == StatusSpecial
}

// Status texts shown to the user.
const (
	TextHolidayPrefix = "HOLIDAY: "
	TextDayOff        = "day off"
	TextShortened     = "shortened workday"
	TextSpecial       = "non-working day (special decree)"
	TextWorkday       = "workday"
	TextUnknown       = "status unknown"
	TextAPIError      = "API error"
	TextNoConnection  = "no connection to server"
)

// DayStatus is the resolved classification of one date.
type DayStatus struct {
	// Date is the date that was resolved.
	Date Date `json:"date" yaml:"date"`

	// Kind is the classification.
	Kind StatusKind `json:"kind" yaml:"kind"`

	// Code is the oracle code; empty when the lookup failed.
	Code DayType `json:"code,omitempty" yaml:"code,omitempty"`

	// HolidayName is the table entry for the date, if any was consulted and found.
	HolidayName string `json:"holiday,omitempty" yaml:"holiday,omitempty"`

	// Text is the human-readable status.
	Text string `json:"status" yaml:"status"`
}

// String returns the human-readable status.
func (s DayStatus) String() string {
	return s.Text
}
