package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
	"github.com/custodia-labs/notecal/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
// A nil config store is allowed; every value then falls back to its default.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	settings.Oracle.BaseURL = s.getString(domain.SettingOracleBaseURL, settings.Oracle.BaseURL)
	settings.Oracle.Timeout = time.Duration(s.getInt(domain.SettingOracleTimeout, 0)) * time.Second
	settings.Oracle.RequestsPerSecond = s.getFloat(domain.SettingOracleRatePerSec, settings.Oracle.RequestsPerSecond)
	settings.Oracle.Burst = s.getInt(domain.SettingOracleBurst, settings.Oracle.Burst)
	settings.HolidayExtras = s.configStore.GetStringSlice(domain.SettingHolidaysExtra)
	if backend := s.configStore.GetString(domain.SettingStorageBackend); domain.IsStorageBackend(backend) {
		settings.Storage.Backend = backend
	}

	return settings
}

// HolidayTable builds the holiday table from defaults and configured extras.
func (s *SettingsService) HolidayTable() (domain.HolidayTable, error) {
	extras := s.Get().HolidayExtras
	table := domain.DefaultHolidayTable()
	if len(extras) == 0 {
		return table, nil
	}

	parsed := make(map[domain.MonthDay]string, len(extras))
	for _, entry := range extras {
		md, name, err := domain.ParseHolidayExtra(entry)
		if err != nil {
			return domain.HolidayTable{}, fmt.Errorf("%s: %w", domain.SettingHolidaysExtra, err)
		}
		parsed[md] = name
	}
	return table.Merge(parsed), nil
}

// Set stores a raw configuration value and persists it.
func (s *SettingsService) Set(key string, value any) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if key == "" {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(key, value)
}

// ConfigPath returns where configuration is persisted.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
