package engine

import (
	"iter"
	"slices"

	"github.com/lgbarn/chess-practice-go/internal/chess"
)

// MovesFrom returns the pseudo-legal destinations of the piece on from.
// King safety is not considered.
//
// The sequence works on a snapshot of pos taken at call time, so it can be
// ranged over any number of times with the same result. It is empty if the
// square is empty or holds a piece of the side not to move.
//
// Destinations come in a fixed order: pawn push, double push, captures
// toward the a-file then the h-file; knight and king offsets clockwise
// from the north-west; king castling kingside then queenside; rook rays north,
// east, south, west; bishop rays north-east, south-east, south-west,
// north-west; queen rook rays then bishop rays.
func MovesFrom(pos chess.Position, from chess.Square) iter.Seq[chess.Square] {
	return func(yield func(chess.Square) bool) {
		piece := pos.At(from)
		if piece == chess.Empty || piece.Colour() != pos.ToMove {
			return
		}
		colour := piece.Colour()

		switch piece.Kind() {
		case chess.Pawn:
			pawnTargets(&pos, from, colour, yield)
		case chess.Knight:
			stepTargets(&pos, from, colour, knightOffsets, yield)
		case chess.King:
			if !stepTargets(&pos, from, colour, kingOffsets, yield) {
				return
			}
			castleTargets(&pos, from, colour, yield)
		case chess.Rook:
			rayTargets(&pos, from, colour, straightDirs, yield)
		case chess.Bishop:
			rayTargets(&pos, from, colour, diagonalDirs, yield)
		case chess.Queen:
			if !rayTargets(&pos, from, colour, straightDirs, yield) {
				return
			}
			rayTargets(&pos, from, colour, diagonalDirs, yield)
		}
	}
}

// castleTargets yields the king destinations of available castling moves.
func castleTargets(pos *chess.Position, from chess.Square, colour chess.Colour, yield func(chess.Square) bool) bool {
	for _, c := range castles {
		if c.colour != colour || !canCastle(pos, c, from) {
			continue
		}
		if !yield(c.kingTo) {
			return false
		}
	}
	return true
}

// Destinations collects MovesFrom into a slice.
func Destinations(pos chess.Position, from chess.Square) []chess.Square {
	return slices.Collect(MovesFrom(pos, from))
}

// PseudoLegalMoves yields every pseudo-legal move of the side to move,
// origin squares in index order.
func PseudoLegalMoves(pos chess.Position) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		for from := range chess.AllSquares() {
			for to := range MovesFrom(pos, from) {
				if !yield(chess.Move{From: from, To: to}) {
					return
				}
			}
		}
	}
}

// CanMove reports whether move.To is among the destinations of move.From.
func CanMove(pos chess.Position, move chess.Move) bool {
	for to := range MovesFrom(pos, move.From) {
		if to == move.To {
			return true
		}
	}
	return false
}
