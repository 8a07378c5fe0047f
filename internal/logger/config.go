package logger

// LoggerConfig defines logging configuration
type LoggerConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"` // json or console
	File           string `yaml:"file"`   // empty writes to stderr
	EnableSampling bool   `yaml:"enable_sampling"`
	Development    bool   `yaml:"development"`
}

// DefaultConfig returns the production configuration.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:          "info",
		Format:         "json",
		EnableSampling: true,
	}
}

// DevelopmentConfig returns development configuration
func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
