package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var holidaysFormat string

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List the holiday table",
	Long: `Lists the fixed public holidays used to name days off, including any
entries added through the holidays.extra setting.`,
	Args: cobra.NoArgs,
	RunE: runHolidays,
}

func init() {
	holidaysCmd.Flags().StringVarP(&holidaysFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(holidaysCmd)
}

func runHolidays(cmd *cobra.Command, _ []string) error {
	if holidayService == nil {
		return errors.New("holiday service not configured")
	}
	if err := validateFormat(holidaysFormat); err != nil {
		return err
	}

	entries := holidayService.Holidays().Entries()
	if holidaysFormat != formatText {
		return writeStructured(cmd, holidaysFormat, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No holidays configured.")
		return nil
	}
	for _, h := range entries {
		cmd.Printf("%s  %s\n", h.MonthDay, h.Name)
	}
	return nil
}
