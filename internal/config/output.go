package config

import (
	"fmt"

	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects diagram, FEN or JSON output.
	Format OutputFormat `yaml:"format"`

	// MaxLineLength wraps move lists; it must be at least 10.
	MaxLineLength uint `yaml:"max_line_length"`

	// ShowMoves lists the destinations of the side to move.
	ShowMoves bool `yaml:"show_moves"`

	// ShowFEN prints the FEN under a diagram.
	ShowFEN bool `yaml:"show_fen"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Diagram,
		MaxLineLength: 80,
		ShowMoves:     true,
		ShowFEN:       true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 10 {
		return fmt.Errorf("max line length (%d) < 10: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
