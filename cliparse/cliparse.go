// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnv names the environment variable holding an optional YAML
// config file path.
const ConfigFileEnv = "RESULTS_CONFIG"

type Config struct {
	Port         int    `koanf:"port"`
	DatabaseURL  string `koanf:"database_url"`
	DatabaseType string `koanf:"database_type"`

	AdminAccessKey string        `koanf:"admin_access_key"`
	AdminPassword  string        `koanf:"admin_password"`
	TokenSecret    string        `koanf:"token_secret"`
	TokenTTL       time.Duration `koanf:"token_ttl"`

	LogLevel   string `koanf:"log_level"`
	CORSOrigin string `koanf:"cors_origin"`
}

// Defaults returns the configuration used before any file, env or flag
// layer is applied.
func Defaults() Config {
	return Config{
		Port:         3318,
		DatabaseType: "sqlite",
		TokenTTL:     12 * time.Hour,
		LogLevel:     "info",
	}
}

// envKeys lists the environment variables read into the config.
var envKeys = map[string]bool{
	"port":             true,
	"database_url":     true,
	"database_type":    true,
	"admin_access_key": true,
	"admin_password":   true,
	"token_secret":     true,
	"token_ttl":        true,
	"log_level":        true,
	"cors_origin":      true,
}

// Load builds a Config by layering, from lowest to highest precedence:
//  1. defaults
//  2. the YAML file named by RESULTS_CONFIG, if set
//  3. environment variables (PORT, DATABASE_URL, TOKEN_SECRET, ...)
//  4. command-line flags
func Load(args []string) (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !envKeys[key] {
			return ""
		}
		return key
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := applyFlags(&cfg, args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags actually present in args, so an
// unset flag never clobbers a value from a lower layer.
func applyFlags(cfg *Config, args []string) error {
	var flags Config

	fs := flag.NewFlagSet("resultboard", flag.ContinueOnError)
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&flags.CORSOrigin, "cors-origin", "", "Allowed CORS origin")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&flags.AdminAccessKey, "admin-key", "", "Admin access key (prefer env)")
	fs.StringVar(&flags.AdminPassword, "admin-password", "", "Admin password (prefer env)")
	fs.StringVar(&flags.TokenSecret, "token-secret", "", "Token signing secret (prefer env)")
	fs.DurationVar(&flags.TokenTTL, "token-ttl", 0, "Admin session lifetime")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = flags.Port
		case "d":
			cfg.DatabaseURL = flags.DatabaseURL
		case "t":
			cfg.DatabaseType = flags.DatabaseType
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "cors-origin":
			cfg.CORSOrigin = flags.CORSOrigin
		case "admin-key":
			cfg.AdminAccessKey = flags.AdminAccessKey
		case "admin-password":
			cfg.AdminPassword = flags.AdminPassword
		case "token-secret":
			cfg.TokenSecret = flags.TokenSecret
		case "token-ttl":
			cfg.TokenTTL = flags.TokenTTL
		}
	})
	return nil
}

// Validate reports the first missing or out-of-range setting.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch c.DatabaseType {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database type %q (want sqlite or postgres)", c.DatabaseType)
	}

	// Secrets - MUST be provided
	if c.AdminAccessKey == "" {
		return errors.New("ADMIN_ACCESS_KEY required")
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD required")
	}
	if c.TokenSecret == "" {
		return errors.New("TOKEN_SECRET required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive, got %s", c.TokenTTL)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
}
