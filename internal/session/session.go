// Package session holds the interactive state of a practice board: the
// current position, the focused square and its valid destinations, the
// highlighted last move, and the move history.
//
// A Session is not safe for concurrent use.
package session

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/engine"
	"github.com/lgbarn/chess-practice-go/internal/errors"
	"github.com/lgbarn/chess-practice-go/internal/legality"
)

// Focus is the focused square and the destinations its piece may reach.
type Focus struct {
	Origin chess.Square
	Valid  []chess.Square
}

// ply is one applied move with the position it was played from.
type ply struct {
	move   chess.Move
	before chess.Position
}

// Session is the state behind a practice board.
type Session struct {
	pos         chess.Position
	focus       *Focus
	highlighted []chess.Square
	history     []ply
	filter      *legality.Filter
	log         zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLegality restricts destinations to moves that keep the king safe.
func WithLegality(f *legality.Filter) Option {
	return func(s *Session) {
		s.filter = f
	}
}

// WithLogger sets the logger used for move and focus events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// New creates a session starting from pos.
func New(pos chess.Position, opts ...Option) *Session {
	s := &Session{
		pos: pos,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Position returns the current position.
func (s *Session) Position() chess.Position {
	return s.pos
}

// Reset replaces the position and clears focus, highlights and history.
func (s *Session) Reset(pos chess.Position) {
	s.pos = pos
	s.focus = nil
	s.highlighted = nil
	s.history = nil
	s.log.Debug().Str("fen", engine.FEN(pos)).Msg("session reset")
}

// Focused returns the current focus, if any.
func (s *Session) Focused() (Focus, bool) {
	if s.focus == nil {
		return Focus{}, false
	}
	return Focus{Origin: s.focus.Origin, Valid: slices.Clone(s.focus.Valid)}, true
}

// Highlighted returns the squares of the last move played.
func (s *Session) Highlighted() []chess.Square {
	return slices.Clone(s.highlighted)
}

// History returns the moves played so far, oldest first.
func (s *Session) History() []chess.Move {
	moves := make([]chess.Move, len(s.history))
	for i, p := range s.history {
		moves[i] = p.move
	}
	return moves
}

// Destinations returns where the piece on from may move. With a legality
// filter the list excludes moves into check; if the filter cannot judge
// the position the pseudo-legal list is used.
func (s *Session) Destinations(from chess.Square) []chess.Square {
	if s.filter != nil {
		valid, err := s.filter.MovesFrom(s.pos, from)
		if err == nil {
			return valid
		}
		s.log.Warn().Err(err).Str("square", from.String()).Msg("legality check unavailable")
	}
	return engine.Destinations(s.pos, from)
}

// Focus focuses sq if it holds a piece of the side to move and reports
// whether it did. Focusing anything else clears the focus.
func (s *Session) Focus(sq chess.Square) bool {
	piece := s.pos.At(sq)
	if piece.IsEmpty() || piece.Colour() != s.pos.ToMove {
		s.Unfocus()
		return false
	}
	s.focus = &Focus{Origin: sq, Valid: s.Destinations(sq)}
	s.log.Debug().
		Str("square", sq.String()).
		Int("valid", len(s.focus.Valid)).
		Msg("focus")
	return true
}

// Unfocus clears the focus.
func (s *Session) Unfocus() {
	s.focus = nil
}

// Click handles a click on sq. With a focus, clicking a valid destination
// moves there and clicking the focused square again clears the focus.
// Clicking a piece of the side to move focuses it; anything else unfocuses.
func (s *Session) Click(sq chess.Square) error {
	if s.focus != nil {
		if slices.Contains(s.focus.Valid, sq) {
			return s.Move(s.focus.Origin, sq)
		}
		if s.focus.Origin == sq {
			s.Unfocus()
			return nil
		}
	}
	s.Focus(sq)
	return nil
}

// Move plays from→to if it is among the destinations of from. Otherwise it
// returns an error wrapping errors.ErrIllegalMove and leaves the session
// unchanged.
func (s *Session) Move(from, to chess.Square) error {
	move := chess.Move{From: from, To: to}
	if !slices.Contains(s.Destinations(from), to) {
		s.log.Debug().Str("move", move.String()).Msg("rejected move")
		return errors.Wrapf(errors.ErrIllegalMove, "%s", move)
	}

	s.history = append(s.history, ply{move: move, before: s.pos})
	s.pos = engine.Apply(s.pos, move)
	s.highlighted = []chess.Square{from, to}
	s.focus = nil

	s.log.Debug().
		Str("move", move.String()).
		Str("fen", engine.FEN(s.pos)).
		Msg("move")
	return nil
}

// Undo takes back the last move and reports whether there was one.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.pos = last.before
	s.focus = nil
	s.highlighted = nil
	if n := len(s.history); n > 0 {
		prev := s.history[n-1].move
		s.highlighted = []chess.Square{prev.From, prev.To}
	}
	s.log.Debug().Str("move", last.move.String()).Msg("undo")
	return true
}
