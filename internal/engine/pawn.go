package engine

import "github.com/lgbarn/chess-practice-go/internal/chess"

// pawnStartRank returns the rank index pawns of colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// isDoubleStep reports whether a pawn move advances two ranks from the start rank.
func isDoubleStep(colour chess.Colour, move chess.Move) bool {
	return move.From.Rank == pawnStartRank(colour) &&
		move.From.File == move.To.File &&
		move.To.Rank == move.From.Rank+2*colour.Forward()
}

// updateEnPassant records the skipped square after a double step and
// clears the target after any other move.
func updateEnPassant(pos *chess.Position, colour chess.Colour, kind chess.Kind, move chess.Move) {
	pos.EnPassant = false
	pos.EPSquare = chess.Square{}
	if kind != chess.Pawn || !isDoubleStep(colour, move) {
		return
	}
	pos.EnPassant = true
	pos.EPSquare = chess.Square{File: move.From.File, Rank: (move.From.Rank + move.To.Rank) / 2}
}

// captureEnPassant removes the pawn that just double-stepped past the
// target. It sits one rank behind the destination as seen by the mover.
func captureEnPassant(pos *chess.Position, colour chess.Colour, to chess.Square) {
	victim, ok := to.Offset(0, -colour.Forward())
	if !ok {
		return
	}
	if pos.At(victim).Is(colour.Opposite(), chess.Pawn) {
		pos.Set(victim, chess.Empty)
	}
}

// pawnTargets yields pushes, the double push and captures (including en
// passant) for a pawn. It returns false if yield asked to stop.
func pawnTargets(pos *chess.Position, from chess.Square, colour chess.Colour, yield func(chess.Square) bool) bool {
	fwd := colour.Forward()

	if one, ok := from.Offset(0, fwd); ok && pos.At(one) == chess.Empty {
		if !yield(one) {
			return false
		}
		if from.Rank == pawnStartRank(colour) {
			if two, ok := from.Offset(0, 2*fwd); ok && pos.At(two) == chess.Empty {
				if !yield(two) {
					return false
				}
			}
		}
	}

	for _, df := range [...]int{-1, 1} {
		to, ok := from.Offset(df, fwd)
		if !ok {
			continue
		}
		target := pos.At(to)
		enemy := target != chess.Empty && target.Colour() != colour
		if enemy || (pos.EnPassant && to == pos.EPSquare) {
			if !yield(to) {
				return false
			}
		}
	}
	return true
}
