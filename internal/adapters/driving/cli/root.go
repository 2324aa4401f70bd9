// Package cli provides the notecal command tree.
// It is a driving adapter: commands call the core services through driving ports.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/notecal/internal/core/ports/driving"
	"github.com/custodia-labs/notecal/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services used by the commands, injected by the composition root.
var (
	noteService     driving.NoteService
	holidayService  driving.HolidayService
	settingsService driving.SettingsService
)

// stdinIsTerminal reports whether stdin is an interactive terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "notecal",
	Short: "Calendar notes with public holiday lookup",
	Long: `notecal keeps free-text notes against calendar dates and tells you
whether a date is a public holiday, a weekend or a regular workday.

Run without arguments in a terminal to open the interactive calendar.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.Section(cmd.CommandPath())
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetNoteService sets the note service used by the commands.
func SetNoteService(s driving.NoteService) {
	noteService = s
}

// SetHolidayService sets the holiday service used by the commands.
func SetHolidayService(s driving.HolidayService) {
	holidayService = s
}

// SetSettingsService sets the settings service used by the commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !stdinIsTerminal() {
		return cmd.Help()
	}
	return runTUI(cmd, args)
}
