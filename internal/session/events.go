package session

import (
	"fmt"

	"github.com/lgbarn/chess-practice-go/internal/chess"
)

// EventKind identifies a board interaction.
type EventKind int

// Board interactions.
const (
	MovePiece EventKind = iota
	GrabPiece
	FocusSquare
	Unfocus
	ClickSquare
)

var eventNames = [...]string{"movePiece", "grabPiece", "focusSquare", "unfocus", "clickSquare"}

// String returns the event name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// Event is an interaction reported by a board front end. Origin and
// Destination are used by MovePiece and GrabPiece; Square by FocusSquare
// and ClickSquare.
type Event struct {
	Kind        EventKind
	Origin      chess.Square
	Destination chess.Square
	Square      chess.Square
}

// Handle applies a board event. Only MovePiece and ClickSquare can fail,
// with an error wrapping errors.ErrIllegalMove.
func (s *Session) Handle(e Event) error {
	s.log.Trace().Str("event", e.Kind.String()).Msg("board event")

	switch e.Kind {
	case MovePiece:
		return s.Move(e.Origin, e.Destination)
	case GrabPiece:
		// A grabbed piece that is not focused yet gets focused.
		if s.focus == nil || s.focus.Origin != e.Origin {
			s.Focus(e.Origin)
		}
	case FocusSquare:
		s.Focus(e.Square)
	case Unfocus:
		s.Unfocus()
	case ClickSquare:
		return s.Click(e.Square)
	default:
		return fmt.Errorf("unknown board event %v", e.Kind)
	}
	return nil
}
