package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation for nested tables, e.g. "oracle.base_url".
type ConfigStore interface {
	// Get retrieves a raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is missing or not an integer.
	GetInt(key string) int

	// GetFloat returns 0 if the key is missing or not numeric.
	// Integers are converted.
	GetFloat(key string) float64

	// GetStringSlice returns nil if the key is missing or not a list.
	GetStringSlice(key string) []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
