package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "foodie", cfg.Service)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0, cfg.History.CacheSize)
	assert.Nil(t, cfg.Tracing.Probability)
	assert.Equal(t, 1.0, cfg.Tracing.SampleProbability())
	rate, err := cfg.Rate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.2")))
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodie.yaml")
	data := `
service: pizzeria
log:
  level: debug
tracing:
  enabled: true
  probability: 0.5
history:
  cache_size: 16
shipping:
  distance_rate: "1.5"
settings:
  apiUrl: https://api.foodieapp.com
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pizzeria", cfg.Service)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.5, cfg.Tracing.SampleProbability())
	assert.Equal(t, 16, cfg.History.CacheSize)
	rate, err := cfg.Rate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, "https://api.foodieapp.com", cfg.Settings["apiUrl"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to open config file")
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative cache", "history:\n  cache_size: -1\n"},
		{"probability above one", "tracing:\n  probability: 2\n"},
		{"bad rate", "shipping:\n  distance_rate: fast\n"},
		{"negative rate", "shipping:\n  distance_rate: \"-1\"\n"},
		{"probability below zero", "tracing:\n  probability: -0.1\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"not yaml", "service: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseKeepsZeroProbability(t *testing.T) {
	cfg, err := Parse(strings.NewReader("tracing:\n  enabled: true\n  probability: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Tracing.Probability)
	assert.Equal(t, 0.0, cfg.Tracing.SampleProbability())
}

func TestRateOnUnparsedConfig(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{"empty", ""},
		{"not a number", "fast"},
		{"negative", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Shipping: ShippingConfig{DistanceRate: tt.rate}}
			assert.NotPanics(t, func() {
				_, err := cfg.Rate()
				assert.Error(t, err)
			})
		})
	}
}
