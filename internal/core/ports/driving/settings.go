package driving

import "github.com/custodia-labs/notecal/internal/core/domain"

// SettingsService exposes application configuration.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() domain.Settings

	// HolidayTable builds the holiday table from defaults and configured extras.
	HolidayTable() (domain.HolidayTable, error)

	// Set stores a raw configuration value and persists it.
	Set(key string, value any) error

	// ConfigPath returns where configuration is persisted, or "" if nowhere.
	ConfigPath() string
}
