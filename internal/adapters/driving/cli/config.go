package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit configuration",
	Long: `View and change notecal settings stored in config.toml.

Keys:
  oracle.base_url             day-type service base URL
  oracle.timeout_seconds      request timeout, 0 for none
  oracle.requests_per_second  sustained request rate
  oracle.burst                request burst size
  holidays.extra              extra holidays as MM-DD=Name entries
  storage.backend             note storage: memory or sqlite`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value...>",
	Short: "Set a configuration value",
	Long: `Stores a value and writes the configuration file.

Numbers and booleans are stored as such. holidays.extra takes one or more
MM-DD=Name entries and replaces the whole list, for example:

  notecal config set holidays.extra "12-31=New Year's Eve" "06-01=Children's Day"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConfigSet,
}

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", formatText, "output format: text, json or yaml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// knownSettings lists the keys accepted by config set.
var knownSettings = []string{
	domain.SettingOracleBaseURL,
	domain.SettingOracleTimeout,
	domain.SettingOracleRatePerSec,
	domain.SettingOracleBurst,
	domain.SettingHolidaysExtra,
	domain.SettingStorageBackend,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := validateFormat(configFormat); err != nil {
		return err
	}

	settings := settingsService.Get()
	if configFormat != formatText {
		return writeStructured(cmd, configFormat, settings)
	}

	path := settingsService.ConfigPath()
	if path == "" {
		path = "(not persisted)"
	}
	cmd.Printf("Config file: %s\n\n", path)
	cmd.Printf("%-28s = %s\n", domain.SettingOracleBaseURL, settings.Oracle.BaseURL)
	cmd.Printf("%-28s = %d\n", domain.SettingOracleTimeout, int(settings.Oracle.Timeout.Seconds()))
	cmd.Printf("%-28s = %g\n", domain.SettingOracleRatePerSec, settings.Oracle.RequestsPerSecond)
	cmd.Printf("%-28s = %d\n", domain.SettingOracleBurst, settings.Oracle.Burst)
	if len(settings.HolidayExtras) == 0 {
		cmd.Printf("%-28s = (none)\n", domain.SettingHolidaysExtra)
	} else {
		cmd.Printf("%-28s = %s\n", domain.SettingHolidaysExtra, strings.Join(settings.HolidayExtras, ", "))
	}
	cmd.Printf("%-28s = %s\n", domain.SettingStorageBackend, settings.Storage.Backend)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path := settingsService.ConfigPath()
	if path == "" {
		return errors.New("configuration is not persisted")
	}
	cmd.Println(path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	value, err := parseSettingValue(key, args[1:])
	if err != nil {
		return err
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	cmd.Println("Restart notecal for the change to take effect.")
	return nil
}

// parseSettingValue converts command-line values into the type stored for key.
func parseSettingValue(key string, values []string) (any, error) {
	if !slices.Contains(knownSettings, key) {
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if key == domain.SettingHolidaysExtra {
		for _, v := range values {
			if _, _, err := domain.ParseHolidayExtra(v); err != nil {
				return nil, err
			}
		}
		return values, nil
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("%w: %s takes a single value", domain.ErrInvalidInput, key)
	}
	if key == domain.SettingStorageBackend {
		if !domain.IsStorageBackend(values[0]) {
			return nil, fmt.Errorf("%w: storage backend must be %s or %s",
				domain.ErrInvalidInput, domain.StorageBackendMemory, domain.StorageBackendSQLite)
		}
		return values[0], nil
	}
	return coerceScalar(values[0]), nil
}

// coerceScalar stores numbers and booleans with their TOML types.
func coerceScalar(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
