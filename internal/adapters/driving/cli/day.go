package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

var dayFormat string

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD...]",
	Short: "Show the status of one or more dates",
	Long: `Looks up whether each date is a public holiday, a day off, a shortened
workday or a regular workday. Defaults to today.

Lookups that fail are reported in the status text rather than as errors,
for example "no connection to server" or "API error (HTTP 404)".`,
	RunE: runDay,
}

func init() {
	dayCmd.Flags().StringVarP(&dayFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(dayCmd)
}

// dayRecord is the structured form of one resolved date.
type dayRecord struct {
	Date    domain.Date       `json:"date" yaml:"date"`
	Weekday string            `json:"weekday" yaml:"weekday"`
	Kind    domain.StatusKind `json:"kind" yaml:"kind"`
	Code    domain.DayType    `json:"code,omitempty" yaml:"code,omitempty"`
	Holiday string            `json:"holiday,omitempty" yaml:"holiday,omitempty"`
	Status  string            `json:"status" yaml:"status"`
}

func newDayRecord(s domain.DayStatus) dayRecord {
	return dayRecord{
		Date:    s.Date,
		Weekday: s.Date.Weekday().String(),
		Kind:    s.Kind,
		Code:    s.Code,
		Holiday: s.HolidayName,
		Status:  s.Text,
	}
}

func runDay(cmd *cobra.Command, args []string) error {
	if holidayService == nil {
		return errors.New("holiday service not configured")
	}
	if err := validateFormat(dayFormat); err != nil {
		return err
	}

	dates := make([]domain.Date, 0, len(args))
	for _, arg := range args {
		d, err := domain.ParseDate(arg)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", arg, err)
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		dates = append(dates, domain.Today())
	}

	records := make([]dayRecord, 0, len(dates))
	for _, d := range dates {
		records = append(records, newDayRecord(holidayService.Resolve(cmd.Context(), d)))
	}

	return writeDayRecords(cmd, dayFormat, records)
}

// writeDayRecords prints resolved dates in the requested format.
func writeDayRecords(cmd *cobra.Command, format string, records []dayRecord) error {
	if format != formatText {
		return writeStructured(cmd, format, records)
	}
	for _, r := range records {
		cmd.Printf("%s  %-9s  %s\n", r.Date, r.Weekday, r.Status)
	}
	return nil
}
