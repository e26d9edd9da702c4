// Package config loads executor and CLI settings with koanf.
//
// Sources are layered in increasing priority: built-in defaults, an optional
// YAML file, FASTERSQL_* environment variables and explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/zoobzio/fastersql/resolve"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FASTERSQL_"

// FileNames are the config files Load looks for when no path is given.
var FileNames = []string{"fastersql.yaml", "fastersql.yml"}

// Drivers are the database/sql driver names the executor can open.
var Drivers = []string{"pgx", "mysql", "sqlserver", "sqlite"}

// Config holds the connection and logging settings.
type Config struct {
	// Dialect names the SQL dialect. Empty means resolve it from the connection.
	Dialect  string `koanf:"dialect"`
	Driver   string `koanf:"driver"`
	DSN      string `koanf:"dsn"`
	LogLevel string `koanf:"log_level"`
}

var defaults = map[string]any{
	"dialect":   "",
	"driver":    "sqlite",
	"dsn":       "",
	"log_level": "info",
}

// Load reads the configuration. An explicit path must exist; an empty path
// falls back to the first of FileNames in the working directory, if any.
// Only flags the user changed override other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func findConfigFile() string {
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Validate checks that the configuration can open a connection.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Drivers, c.Driver) {
		errs = append(errs, fmt.Errorf("driver %q is not one of %s", c.Driver, strings.Join(Drivers, ", ")))
	}
	if c.DSN == "" {
		errs = append(errs, errors.New("dsn is required"))
	}
	if c.Dialect != "" {
		if _, err := resolve.ByName(c.Dialect); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel. An empty level is Info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
