// Package config holds the runtime configuration of the dateguess command
// and its HTTP preview server.
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DATEGUESS_PORT.
const EnvPrefix = "DATEGUESS"

// Keys shared by viper, flags and environment variables.
const (
	KeyMode      = "mode"
	KeyAddr      = "addr"
	KeyPort      = "port"
	KeyLocale    = "locale"
	KeyLogLevel  = "log-level"
	KeyRateLimit = "rate-limit"
	KeyBurst     = "burst"
)

// Config is the configuration to run the command and the server.
type Config struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Locale is used when a request names no locale. Empty means positional
	// month-first ranking.
	Locale string
	// LogLevel is one of debug, info, warn, error
	LogLevel string
	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64
	// Burst is the number of requests a client may make at once
	Burst int
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMode, "dev")
	v.SetDefault(KeyAddr, "")
	v.SetDefault(KeyPort, 8081) //nolint:mnd
	v.SetDefault(KeyLocale, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRateLimit, 10) //nolint:mnd
	v.SetDefault(KeyBurst, 20)     //nolint:mnd

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are named) without overriding variables already set. Missing files are
// not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "failed to load %s", p)
		}
	}
	return nil
}

// Load reads file (when non-empty) into v and returns the validated config.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	cfg := &Config{
		Mode:      v.GetString(KeyMode),
		Addr:      v.GetString(KeyAddr),
		Port:      v.GetInt(KeyPort),
		Locale:    strings.TrimSpace(v.GetString(KeyLocale)),
		LogLevel:  v.GetString(KeyLogLevel),
		RateLimit: v.GetFloat64(KeyRateLimit),
		Burst:     v.GetInt(KeyBurst),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDev reports whether the config runs in development mode.
func (c *Config) IsDev() bool {
	return c.Mode != "prod"
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Mode != "dev" && c.Mode != "prod" {
		return errors.Errorf("invalid mode %q, want dev or prod", c.Mode)
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	if c.RateLimit <= 0 {
		return errors.Errorf("rate limit must be positive, got %v", c.RateLimit)
	}
	if c.Burst < 1 {
		return errors.Errorf("burst must be at least 1, got %d", c.Burst)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// NewLogger returns a text logger in dev mode and a JSON logger in prod.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.IsDev() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
