package chess

import (
	"fmt"

	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// Move is a request to move the piece on From to To.
type Move struct {
	From Square
	To   Square
}

// String renders the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a long algebraic move such as "e2e4".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	return Move{From: from, To: to}, nil
}
