// Package legality narrows pseudo-legal destinations to moves that do not
// leave the mover's king in check.
//
// Positions are handed to dragontoothmg as FEN; its legal move list is then
// intersected with the engine's own pseudo-legal destinations so that move
// generation order and the engine's castling and en passant rules are kept.
package legality

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/engine"
	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// Filter checks king safety for positions of the practice board.
type Filter struct{}

// New returns a legality filter.
func New() *Filter {
	return &Filter{}
}

// MovesFrom returns the destinations of the piece on from that are both
// pseudo-legal and leave the mover's king safe, in generation order.
func (f *Filter) MovesFrom(pos chess.Position, from chess.Square) ([]chess.Square, error) {
	legal, err := f.legalSet(pos)
	if err != nil {
		return nil, err
	}
	var out []chess.Square
	for to := range engine.MovesFrom(pos, from) {
		if legal[key(from, to)] {
			out = append(out, to)
		}
	}
	return out, nil
}

// LegalMoves returns every legal move of the side to move.
func (f *Filter) LegalMoves(pos chess.Position) ([]chess.Move, error) {
	legal, err := f.legalSet(pos)
	if err != nil {
		return nil, err
	}
	var out []chess.Move
	for m := range engine.PseudoLegalMoves(pos) {
		if legal[key(m.From, m.To)] {
			out = append(out, m)
		}
	}
	return out, nil
}

// IsLegal reports whether move is pseudo-legal and keeps the king safe.
func (f *Filter) IsLegal(pos chess.Position, move chess.Move) (bool, error) {
	if !engine.CanMove(pos, move) {
		return false, nil
	}
	legal, err := f.legalSet(pos)
	if err != nil {
		return false, err
	}
	return legal[key(move.From, move.To)], nil
}

// InCheck reports whether the side to move is in check.
func (f *Filter) InCheck(pos chess.Position) (inCheck bool, err error) {
	board, err := toBoard(pos)
	if err != nil {
		return false, err
	}
	defer func() {
		if r := recover(); r != nil {
			inCheck, err = false, fmt.Errorf("%w: %v", errors.ErrInvalidFEN, r)
		}
	}()
	return board.OurKingInCheck(), nil
}

// moveKey packs a from/to pair of board indices.
type moveKey struct {
	from, to uint8
}

func key(from, to chess.Square) moveKey {
	return moveKey{from: dtIndex(from), to: dtIndex(to)}
}

// dtIndex maps a square to dragontoothmg's numbering, where a1 is 0 and
// h8 is 63.
func dtIndex(sq chess.Square) uint8 {
	return uint8(sq.File + (chess.BoardSize-1-sq.Rank)*chess.BoardSize)
}

// legalSet returns the from/to pairs dragontoothmg considers legal.
// Promotion variants collapse onto one pair.
func (f *Filter) legalSet(pos chess.Position) (set map[moveKey]bool, err error) {
	board, err := toBoard(pos)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			set, err = nil, fmt.Errorf("%w: %v", errors.ErrInvalidFEN, r)
		}
	}()

	moves := board.GenerateLegalMoves()
	set = make(map[moveKey]bool, len(moves))
	for i := range moves {
		set[moveKey{from: moves[i].From(), to: moves[i].To()}] = true
	}
	return set, nil
}

// toBoard converts pos after checking both sides have exactly one king.
func toBoard(pos chess.Position) (board dragontoothmg.Board, err error) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(pos.FindPieces(chess.MakePiece(colour, chess.King))); n != 1 {
			return board, errors.Wrapf(errors.ErrNoKing, "%s has %d kings", colour, n)
		}
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrInvalidFEN, r)
		}
	}()
	return dragontoothmg.ParseFen(engine.FEN(pos)), nil
}
