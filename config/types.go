package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config represents the complete configuration structure
type Config struct {
	Enka    EnkaConfig    `mapstructure:"enka"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// EnkaConfig holds the enka.network connection settings
type EnkaConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	UserAgent   string        `mapstructure:"user_agent"` // empty uses the library default
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
}

// FilterConfig contains named build filter expressions. Names are
// case-insensitive, viper lowercases them on load.
type FilterConfig map[string]string

// Resolve returns the expression registered under name, or name itself
// when it is not a registered filter.
func (f FilterConfig) Resolve(name string) string {
	if expression, ok := f[strings.ToLower(name)]; ok {
		return expression
	}
	return name
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Accepted logging.format values
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// logLevels holds every accepted logging.level value
var logLevels = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// ZerologLevel returns the level named by Level, case-insensitively.
// The bool is false for names validate rejects.
func (c LoggingConfig) ZerologLevel() (zerolog.Level, bool) {
	level, ok := logLevels[strings.ToLower(c.Level)]
	return level, ok
}
