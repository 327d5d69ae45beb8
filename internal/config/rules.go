package config

import (
	"fmt"

	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// RulesConfig holds settings for move validation.
type RulesConfig struct {
	// Strict drops moves that leave the king in check.
	Strict bool `yaml:"strict"`
}

// NewRulesConfig creates a RulesConfig with default values.
// Moves are pseudo-legal by default.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

// StorageConfig holds settings for the saved position store.
type StorageConfig struct {
	// Dir is the Badger directory. Empty means no store.
	Dir string `yaml:"dir"`

	// InMemory keeps the store in memory; Dir is ignored.
	InMemory bool `yaml:"in_memory"`
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether a store should be opened.
func (s *StorageConfig) Enabled() bool {
	return s.InMemory || s.Dir != ""
}

// BatchConfig holds settings for batch FEN analysis.
type BatchConfig struct {
	// Workers is the number of worker goroutines; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// BufferSize is the work channel buffer size.
	BufferSize int `yaml:"buffer_size"`

	// DuplicateCapacity caps the positions remembered for repeat
	// detection; 0 means unlimited.
	DuplicateCapacity int `yaml:"duplicate_capacity"`
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		BufferSize: 100,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) < 0: %w", b.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) < 1: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
