package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// LoadFile reads a YAML config file over the defaults and validates it.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return Load(f)
}

// Load reads YAML config from r over the defaults and validates it.
// Keys that are absent keep their default values; unknown keys are errors.
func Load(r io.Reader) (*Config, error) {
	cfg := NewConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w: %w", errors.ErrInvalidConfig, err)
	}
	cfg.restoreSections()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// restoreSections puts back the defaults of sections decoded from a null
// value, e.g. "output: ~" or a key whose children are all commented out.
func (c *Config) restoreSections() {
	if c.Output == nil {
		c.Output = NewOutputConfig()
	}
	if c.Rules == nil {
		c.Rules = NewRulesConfig()
	}
	if c.Storage == nil {
		c.Storage = NewStorageConfig()
	}
	if c.Batch == nil {
		c.Batch = NewBatchConfig()
	}
}

// Write encodes cfg as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
