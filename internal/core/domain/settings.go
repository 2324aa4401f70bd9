package domain

import "time"

// Configuration keys understood by the settings service.
const (
	SettingOracleBaseURL    = "oracle.base_url"
	SettingOracleTimeout    = "oracle.timeout_seconds"
	SettingOracleRatePerSec = "oracle.requests_per_second"
	SettingOracleBurst      = "oracle.burst"
	SettingHolidaysExtra    = "holidays.extra"
	SettingStorageBackend   = "storage.backend"
)

// Note storage backends.
const (
	StorageBackendMemory = "memory"
	StorageBackendSQLite = "sqlite"
)

// Defaults applied when a key is absent.
const (
	DefaultOracleBaseURL    = "https://isdayoff.ru"
	DefaultOracleRatePerSec = 5
	DefaultOracleBurst      = 10
)

// HolidayExtraSeparator splits a holiday extra entry such as "12-31=New Year's Eve".
const HolidayExtraSeparator = "="

// OracleSettings configures the remote day-type oracle client.
type OracleSettings struct {
	// BaseURL is prefixed to /YYYYMMDD for each lookup.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Timeout bounds a single request. Zero leaves the HTTP client default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// Burst is the token bucket size.
	Burst int `json:"burst" yaml:"burst"`
}

// StorageSettings selects where notes are kept while notecal runs.
// Both backends live in memory and are discarded on exit.
type StorageSettings struct {
	Backend string `json:"backend" yaml:"backend"`
}

// Settings holds the application configuration.
type Settings struct {
	Oracle  OracleSettings  `json:"oracle" yaml:"oracle"`
	Storage StorageSettings `json:"storage" yaml:"storage"`

	// HolidayExtras are "MM-DD=Name" entries layered over the default table.
	HolidayExtras []string `json:"holiday_extras,omitempty" yaml:"holiday_extras,omitempty"`
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		Oracle: OracleSettings{
			BaseURL:           DefaultOracleBaseURL,
			RequestsPerSecond: DefaultOracleRatePerSec,
			Burst:             DefaultOracleBurst,
		},
		Storage: StorageSettings{
			Backend: StorageBackendMemory,
		},
	}
}

// IsStorageBackend reports whether name is a supported note backend.
func IsStorageBackend(name string) bool {
	return name == StorageBackendMemory || name == StorageBackendSQLite
}
