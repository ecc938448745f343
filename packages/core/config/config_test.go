package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T) (*pflag.FlagSet, func() (*Config, error)) {
	t.Helper()
	v := NewViper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(v, fs))
	return fs, func() (*Config, error) { return Load(v) }
}

func TestLoad_Defaults(t *testing.T) {
	_, load := newFlagSet(t)

	cfg, err := load()

	require.NoError(t, err)
	assert.True(t, cfg.IsDefault())
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 10, cfg.MaxRedirects)
	assert.Equal(t, "monokai", cfg.Style)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MINIHTTP_TIMEOUT", "5s")
	t.Setenv("MINIHTTP_MAX_REDIRECTS", "0")
	t.Setenv("MINIHTTP_NO_COLOR", "true")
	t.Setenv("MINIHTTP_STYLE", "dracula")
	t.Setenv("MINIHTTP_VERBOSE", "1")

	_, load := newFlagSet(t)
	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.MaxRedirects)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "dracula", cfg.Style)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.IsDefault())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("MINIHTTP_TIMEOUT", "5s")

	fs, load := newFlagSet(t)
	require.NoError(t, fs.Parse([]string{"--timeout", "2s", "--max-redirects", "3", "-v"}))

	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRedirects)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("MINIHTTP_TIMEOUT", "soon")

	_, load := newFlagSet(t)
	_, err := load()

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, KindConfig, cfgErr.Kind())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, KeyTimeout},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, KeyTimeout},
		{"negative redirects", func(c *Config) { c.MaxRedirects = -1 }, KeyMaxRedirects},
		{"empty style", func(c *Config) { c.Style = " " }, KeyStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
