// Package errors provides sentinel errors and error types for chess-practice.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square reference outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that is not among the generated destinations.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound indicates a saved position does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoKing indicates a position without exactly one king per side.
	ErrNoKing = errors.New("position needs exactly one king per side")
)

// RangeError reports a square reference (index, name or coordinate) that
// does not address one of the 64 board cells.
type RangeError struct {
	Kind  string // "index", "name" or "coordinate"
	Value string // The offending input, formatted
}

// Error returns a formatted error message.
func (e *RangeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%v %s", ErrInvalidSquare, e.Value)
	}
	return fmt.Sprintf("%v %s %s", ErrInvalidSquare, e.Kind, e.Value)
}

// Unwrap returns ErrInvalidSquare so callers can test with errors.Is().
func (e *RangeError) Unwrap() error {
	return ErrInvalidSquare
}

// ParseError represents a FEN parsing error with the field that failed.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // FEN field name ("board", "side", "castling", ...)
	Rank     int    // 1-based rank group within the board field (0 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Rank > 0 {
			loc += fmt.Sprintf(" rank %d", e.Rank)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
