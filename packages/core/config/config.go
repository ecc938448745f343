package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by minihttp,
// e.g. MINIHTTP_TIMEOUT.
const EnvPrefix = "MINIHTTP"

// Keys double as flag names.
const (
	KeyTimeout      = "timeout"
	KeyMaxRedirects = "max-redirects"
	KeyNoColor      = "no-color"
	KeyStyle        = "style"
	KeyVerbose      = "verbose"
)

// KindConfig tags configuration errors on the error stream.
const KindConfig = "ConfigError"

// Config represents the minihttp configuration
type Config struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRedirects int           `mapstructure:"max-redirects"` // 0 disables following
	NoColor      bool          `mapstructure:"no-color"`
	Style        string        `mapstructure:"style"` // chroma style name
	Verbose      bool          `mapstructure:"verbose"`
}

// Error reports an invalid configuration value.
type Error struct {
	Key    string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Kind() string { return KindConfig }

// NewViper returns a viper instance seeded with defaults that reads
// MINIHTTP_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyMaxRedirects, d.MaxRedirects)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyStyle, d.Style)
	v.SetDefault(KeyVerbose, d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers the configuration flags on fs and binds them to v.
// Flag values take precedence over environment variables.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	d := DefaultConfig()
	fs.Duration(KeyTimeout, d.Timeout, "Request timeout, redirects included (env: MINIHTTP_TIMEOUT)")
	fs.Int(KeyMaxRedirects, d.MaxRedirects, "Maximum redirects to follow, 0 to disable (env: MINIHTTP_MAX_REDIRECTS)")
	fs.Bool(KeyNoColor, d.NoColor, "Disable colored output (env: MINIHTTP_NO_COLOR)")
	fs.String(KeyStyle, d.Style, "Syntax highlighting style (env: MINIHTTP_STYLE)")
	fs.BoolP(KeyVerbose, "v", d.Verbose, "Log request diagnostics to stderr (env: MINIHTTP_VERBOSE)")

	for _, key := range []string{KeyTimeout, KeyMaxRedirects, KeyNoColor, KeyStyle, KeyVerbose} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, &Error{Key: "decode", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return &Error{Key: KeyTimeout, Reason: fmt.Sprintf("must be positive, got %s", c.Timeout)}
	}
	if c.MaxRedirects < 0 {
		return &Error{Key: KeyMaxRedirects, Reason: fmt.Sprintf("must not be negative, got %d", c.MaxRedirects)}
	}
	if strings.TrimSpace(c.Style) == "" {
		return &Error{Key: KeyStyle, Reason: "must not be empty"}
	}
	return nil
}
