// Package config loads hotelref settings from defaults, an optional YAML
// file, a .env file, HOTELREF_* environment variables, and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix        = "HOTELREF"
	defaultConfigDir = ".hotelref"
	defaultDBFile    = "hotels.db"
	defaultLogLevel  = "info"
)

// Config is the resolved configuration.
type Config struct {
	DBPath      string `mapstructure:"db_path"`
	LogLevel    string `mapstructure:"log_level"`
	SeedOnStart bool   `mapstructure:"seed_on_start"`
}

// Options tells Load where to look.
type Options struct {
	// ConfigFile is an explicit YAML file. Empty means none.
	ConfigFile string
	// EnvFile is loaded into the process environment if it exists.
	// Empty means ".env".
	EnvFile string
	// Flags overrides keys whose flag was set. Flag names map to keys by
	// FlagKeys.
	Flags *pflag.FlagSet
}

// FlagKeys maps CLI flag names to config keys.
var FlagKeys = map[string]string{
	"db":            "db_path",
	"log-level":     "log_level",
	"seed-on-start": "seed_on_start",
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("seed_on_start", true)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// EnsureDBDir creates the directory holding DBPath. In-memory paths are
// left alone.
func (c *Config) EnsureDBDir() error {
	if c.DBPath == ":memory:" || strings.HasPrefix(c.DBPath, "file::memory:") {
		return nil
	}
	dir := filepath.Dir(c.DBPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// ParseLevel accepts debug, info, warn or error, in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: want debug, info, warn or error", s)
	}
	return l, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, defaultConfigDir, defaultDBFile)
}
