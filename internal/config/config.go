// Package config loads the settings of the sqlprep command.
//
// Settings are layered, each layer overriding the previous one:
//
//  1. built-in defaults
//  2. an optional YAML file
//  3. SQLPREP_ environment variables (SQLPREP_LOGGING_LEVEL -> logging.level)
//  4. command line flags
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "SQLPREP_"

// DefaultConfigPaths are tried in order when no file is given
//
//nolint:gochecknoglobals
var DefaultConfigPaths = []string{
	"sqlprep.yaml",
	"sqlprep.yml",
}

// Dialects are the names accepted for the dialect setting
//
//nolint:gochecknoglobals
var Dialects = []string{"psql", "mysql", "sqlite"}

var ErrUnknownDialect = errors.New("unknown dialect")

type Config struct {
	// Dialect used to read and write placeholders.
	// If empty it is derived from DSN
	Dialect string  `koanf:"dialect"`
	DSN     string  `koanf:"dsn"`
	Logging Logging `koanf:"logging"`
}

type Logging struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

func defaults() map[string]any {
	return map[string]any{
		"dialect":        "",
		"dsn":            "",
		"logging.level":  "warn",
		"logging.format": "console",
		"logging.caller": false,
	}
}

// Load builds the configuration from every layer.
// path may be empty, in which case the first of DefaultConfigPaths that
// exists is used, if any. overrides are koanf paths set from flags.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SQLPREP_LOGGING_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func findConfigFile() string {
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

func (c *Config) Validate() error {
	if c.Dialect != "" && !slices.Contains(Dialects, c.Dialect) {
		return fmt.Errorf("%w %q, expected one of %s", ErrUnknownDialect, c.Dialect, strings.Join(Dialects, ", "))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	return nil
}

// ResolveDialect returns the configured dialect, deriving it from the DSN when unset
func (c *Config) ResolveDialect() (string, error) {
	if c.Dialect != "" {
		return c.Dialect, nil
	}

	if c.DSN == "" {
		return "", fmt.Errorf("%w: set a dialect or a dsn", ErrUnknownDialect)
	}

	return DialectFromDSN(c.DSN)
}
