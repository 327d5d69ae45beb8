package engine

import "github.com/lgbarn/chess-practice-go/internal/chess"

// castle describes one of the four castling options: where the king and
// rook start and end, and the squares strictly between them.
type castle struct {
	right    chess.CastlingRights
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	between  []chess.Square
}

// castles lists kingside before queenside for each colour.
var castles = []castle{
	{
		right:    chess.WhiteKingside,
		colour:   chess.White,
		kingFrom: chess.MustSquare("e1"),
		kingTo:   chess.MustSquare("g1"),
		rookFrom: chess.MustSquare("h1"),
		rookTo:   chess.MustSquare("f1"),
		between:  squares("f1", "g1"),
	},
	{
		right:    chess.WhiteQueenside,
		colour:   chess.White,
		kingFrom: chess.MustSquare("e1"),
		kingTo:   chess.MustSquare("c1"),
		rookFrom: chess.MustSquare("a1"),
		rookTo:   chess.MustSquare("d1"),
		between:  squares("d1", "c1", "b1"),
	},
	{
		right:    chess.BlackKingside,
		colour:   chess.Black,
		kingFrom: chess.MustSquare("e8"),
		kingTo:   chess.MustSquare("g8"),
		rookFrom: chess.MustSquare("h8"),
		rookTo:   chess.MustSquare("f8"),
		between:  squares("f8", "g8"),
	},
	{
		right:    chess.BlackQueenside,
		colour:   chess.Black,
		kingFrom: chess.MustSquare("e8"),
		kingTo:   chess.MustSquare("c8"),
		rookFrom: chess.MustSquare("a8"),
		rookTo:   chess.MustSquare("d8"),
		between:  squares("d8", "c8", "b8"),
	},
}

func squares(names ...string) []chess.Square {
	out := make([]chess.Square, len(names))
	for i, name := range names {
		out[i] = chess.MustSquare(name)
	}
	return out
}

// findCastle returns the castling option whose king move matches, if any.
func findCastle(colour chess.Colour, from, to chess.Square) (castle, bool) {
	for _, c := range castles {
		if c.colour == colour && c.kingFrom == from && c.kingTo == to {
			return c, true
		}
	}
	return castle{}, false
}

// applyCastleRook moves the rook when a king makes a castling move.
func applyCastleRook(pos *chess.Position, colour chess.Colour, move chess.Move) {
	c, ok := findCastle(colour, move.From, move.To)
	if !ok {
		return
	}
	rook := pos.At(c.rookFrom)
	if rook != chess.MakePiece(colour, chess.Rook) {
		return
	}
	pos.Set(c.rookFrom, chess.Empty)
	pos.Set(c.rookTo, rook)
}

// updateCastlingRights removes rights lost by moving a king, or a rook off
// its home corner. A rook captured on its home corner does not revoke
// the right.
func updateCastlingRights(pos *chess.Position, colour chess.Colour, kind chess.Kind, from chess.Square) {
	switch kind {
	case chess.King:
		pos.Castling = pos.Castling.Without(chess.Rights(colour))
	case chess.Rook:
		for _, c := range castles {
			if c.colour == colour && c.rookFrom == from {
				pos.Castling = pos.Castling.Without(c.right)
			}
		}
	}
}

// canCastle reports whether c is available: the right is held, the king
// stands on its home square and the squares in between are empty.
// Attacks on the king's path are not considered.
func canCastle(pos *chess.Position, c castle, from chess.Square) bool {
	if !pos.Castling.Has(c.right) || from != c.kingFrom {
		return false
	}
	for _, sq := range c.between {
		if pos.At(sq) != chess.Empty {
			return false
		}
	}
	return true
}
