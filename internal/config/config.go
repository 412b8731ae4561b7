package config

// Config holds the application configuration.
type Config struct {
	DefaultFormat string `yaml:"default_format"`
	LogLevel      string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultFormat: "curl",
		LogLevel:      "info",
	}
}
