// Package config provides configuration for chess-practice.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// OutputFormat selects how positions are printed.
type OutputFormat int

const (
	Diagram OutputFormat = iota // ASCII board followed by the FEN
	FENOnly                     // One FEN line per position
	JSON                        // JSON document
)

var formatNames = map[OutputFormat]string{
	Diagram: "diagram",
	FENOnly: "fen",
	JSON:    "json",
}

// String returns the name used in config files.
func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a config file name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", name)
}

// UnmarshalYAML reads the format from its name.
func (f *OutputFormat) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseOutputFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML writes the format as its name.
func (f OutputFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// Config holds all program configuration.
type Config struct {
	// Verbosity is 0 for errors only, 1 for info, 2 for debug.
	Verbosity int `yaml:"verbosity"`

	// LogLevel overrides Verbosity when set; any zerolog level name.
	LogLevel string `yaml:"log_level,omitempty"`

	Output  *OutputConfig  `yaml:"output"`
	Rules   *RulesConfig   `yaml:"rules"`
	Storage *StorageConfig `yaml:"storage"`
	Batch   *BatchConfig   `yaml:"batch"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Rules:      NewRulesConfig(),
		Storage:    NewStorageConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the log level: LogLevel if set, otherwise one derived
// from Verbosity.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel != "" {
		level, err := zerolog.ParseLevel(c.LogLevel)
		if err != nil {
			return zerolog.NoLevel, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
		}
		return level, nil
	}
	switch {
	case c.Verbosity <= 0:
		return zerolog.ErrorLevel, nil
	case c.Verbosity == 1:
		return zerolog.InfoLevel, nil
	default:
		return zerolog.DebugLevel, nil
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}
