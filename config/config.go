package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/enka/enka"
	"github.com/s0up4200/enka/filter"
)

// EnvPrefix prefixes the environment variables overriding config keys,
// e.g. ENKA_ENKA_TIMEOUT or ENKA_LOGGING_LEVEL.
const EnvPrefix = "ENKA"

// Load loads the configuration from file. Without an explicit path a
// missing config file is not an error and the defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".enka"))
		}
		v.AddConfigPath("/etc/enka/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("enka.base_url", enka.DefaultBaseURL)
	v.SetDefault("enka.user_agent", "")
	v.SetDefault("enka.timeout", "30s")
	v.SetDefault("enka.concurrency", enka.DefaultConcurrency)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", FormatConsole)
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Enka.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enka.base_url must be an absolute URL: %q", cfg.Enka.BaseURL)
	}

	if cfg.Enka.Timeout <= 0 {
		return fmt.Errorf("enka.timeout must be positive: %s", cfg.Enka.Timeout)
	}

	if cfg.Enka.Concurrency < 1 {
		return fmt.Errorf("enka.concurrency must be at least 1: %d", cfg.Enka.Concurrency)
	}

	if _, ok := cfg.Logging.ZerologLevel(); !ok {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	// Named filters are compiled once here so typos surface at startup
	for name, expression := range cfg.Filters {
		if _, err := filter.CompileFilter(expression); err != nil {
			return fmt.Errorf("invalid filter %q: %w", name, err)
		}
	}

	return nil
}
