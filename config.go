package ident

import (
	"fmt"

	"github.com/viant/ident/internal/entropy"
	"github.com/viant/ident/internal/mix"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of generator settings. It can be
// populated from YAML or JSON. Empty fields fall back to the defaults.
type Config struct {
	Digest  string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Entropy string `json:"entropy,omitempty" yaml:"entropy,omitempty"`
}

// DefaultConfig returns the settings NewGenerator uses without options.
func DefaultConfig() *Config {
	return &Config{
		Digest:  mix.SHA1,
		Entropy: entropy.System,
	}
}

// ParseConfig decodes a YAML (or JSON) document into a Config with defaults
// applied to omitted fields.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode identifier config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if _, err := mix.Lookup(c.Digest); err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	return nil
}

// Options converts the config into generator options.
func (c *Config) Options() []Option {
	if c == nil {
		return nil
	}
	return []Option{
		WithDigest(c.Digest),
		WithEntropy(entropy.Source(c.Entropy)),
	}
}

// NewGeneratorFromConfig validates cfg and builds a Generator from it. Extra
// options are applied after the config-derived ones.
func NewGeneratorFromConfig(cfg *Config, options ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewGenerator(append(cfg.Options(), options...)...), nil
}
