package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

const monthLayout = "2006-01"

var monthFormat string

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show the status of every day in a month",
	Long: `Looks up every day of the month, in order. Defaults to the current month.

Each day is a separate request to the day-type service, subject to the
configured rate limit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func init() {
	monthCmd.Flags().StringVarP(&monthFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(monthCmd)
}

// monthBounds returns the first and last day of a month.
func monthBounds(year int, month time.Month) (domain.Date, domain.Date) {
	first := domain.NewDate(year, month, 1)
	last := domain.NewDate(year, month+1, 1).AddDays(-1)
	return first, last
}

func runMonth(cmd *cobra.Command, args []string) error {
	if holidayService == nil {
		return errors.New("holiday service not configured")
	}
	if err := validateFormat(monthFormat); err != nil {
		return err
	}

	today := domain.Today()
	year, month := today.Year, today.Month
	if len(args) == 1 {
		t, err := time.Parse(monthLayout, args[0])
		if err != nil {
			return fmt.Errorf("%w: month %q must be YYYY-MM", domain.ErrInvalidInput, args[0])
		}
		year, month = t.Year(), t.Month()
	}

	from, to := monthBounds(year, month)
	statuses := holidayService.Range(cmd.Context(), from, to)

	records := make([]dayRecord, 0, len(statuses))
	for _, s := range statuses {
		records = append(records, newDayRecord(s))
	}

	return writeDayRecords(cmd, monthFormat, records)
}
