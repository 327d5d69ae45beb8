package engine

import "github.com/lgbarn/chess-practice-go/internal/chess"

// Apply returns the position after moving the piece on move.From to
// move.To. The input position is not modified.
//
// Apply trusts its caller: it does not check that the move is one the
// generator would produce. If move.From is empty the position is returned
// unchanged.
func Apply(pos chess.Position, move chess.Move) chess.Position {
	piece := pos.At(move.From)
	if piece == chess.Empty {
		return pos
	}

	next := pos
	colour := piece.Colour()
	kind := piece.Kind()
	captured := pos.At(move.To)

	if kind == chess.King {
		applyCastleRook(&next, colour, move)
	}
	updateCastlingRights(&next, colour, kind, move.From)

	if kind == chess.Pawn && pos.EnPassant && move.To == pos.EPSquare {
		captureEnPassant(&next, colour, move.To)
	}
	updateEnPassant(&next, colour, kind, move)

	next.Set(move.From, chess.Empty)
	next.Set(move.To, piece)

	next.ToMove = pos.ToMove.Opposite()

	if captured != chess.Empty || kind == chess.Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == chess.Black {
		next.MoveNumber++
	}

	return next
}

// ApplyAll applies moves in order and returns the final position.
func ApplyAll(pos chess.Position, moves ...chess.Move) chess.Position {
	for _, m := range moves {
		pos = Apply(pos, m)
	}
	return pos
}
