package logger

import (
	"os"
	"strings"
)

// NewFromEnv applies LANDER_* environment overrides on top of base.
// LANDER_ENV=development switches to the development preset first.
func NewFromEnv(base LoggerConfig) (Logger, error) {
	return NewZapLogger(applyEnv(base))
}

// NewWithComponent builds a logger with a component field pre-set.
func NewWithComponent(base LoggerConfig, component string) (Logger, error) {
	l, err := NewFromEnv(base)
	if err != nil {
		return nil, err
	}
	return l.With(F("component", component)), nil
}

func applyEnv(cfg LoggerConfig) LoggerConfig {
	if strings.EqualFold(os.Getenv("LANDER_ENV"), "development") {
		file := cfg.File
		cfg = DevelopmentConfig()
		cfg.File = file
	}
	if level := os.Getenv("LANDER_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("LANDER_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if file := os.Getenv("LANDER_LOG_FILE"); file != "" {
		cfg.File = file
	}
	return cfg
}
