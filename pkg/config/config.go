// Package config loads runtime settings for the demonstration binary.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Service  string            `yaml:"service"`
	Log      LogConfig         `yaml:"log"`
	Tracing  TracingConfig     `yaml:"tracing"`
	History  HistoryConfig     `yaml:"history"`
	Shipping ShippingConfig    `yaml:"shipping"`
	Settings map[string]any    `yaml:"settings"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// TracingConfig controls span sampling. A nil Probability means the key was
// absent and every trace is sampled.
type TracingConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Probability *float64 `yaml:"probability"`
}

// SampleProbability returns the configured sampling ratio, 1 when unset.
func (t TracingConfig) SampleProbability() float64 {
	if t.Probability == nil {
		return 1.0
	}
	return *t.Probability
}

// HistoryConfig bounds the order history cache. Zero means unbounded.
type HistoryConfig struct {
	CacheSize int `yaml:"cache_size"`
}

type ShippingConfig struct {
	DistanceRate string `yaml:"distance_rate"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes YAML from r and fills in defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Rate returns the distance shipping multiplier. The field is parsed on every
// call, so a Config built by hand fails here instead of panicking.
func (c *Config) Rate() (decimal.Decimal, error) {
	if c.Shipping.DistanceRate == "" {
		return decimal.Zero, errors.New("shipping.distance_rate is not set")
	}
	return parseRate(c.Shipping.DistanceRate)
}

func parseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("shipping.distance_rate: %w", err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("shipping.distance_rate must not be negative, got %s", rate)
	}
	return rate, nil
}

func (c *Config) applyDefaults() {
	if c.Service == "" {
		c.Service = "foodie"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Shipping.DistanceRate == "" {
		c.Shipping.DistanceRate = "1.2"
	}
}

func (c *Config) validate() error {
	if c.History.CacheSize < 0 {
		return fmt.Errorf("history.cache_size must not be negative, got %d", c.History.CacheSize)
	}
	if p := c.Tracing.SampleProbability(); p < 0 || p > 1 {
		return fmt.Errorf("tracing.probability must be within [0,1], got %v", p)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	_, err := parseRate(c.Shipping.DistanceRate)
	return err
}
