package chess

import "strings"

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingLetters lists the rights in FEN order.
var castlingLetters = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// CastlingRightFromLetter maps K, Q, k or q to its right.
func CastlingRightFromLetter(c byte) (CastlingRights, bool) {
	for _, cl := range castlingLetters {
		if cl.letter == c {
			return cl.right, true
		}
	}
	return NoCastling, false
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns c with the rights in r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the present letters in KQkq order, or "-" if none.
func (c CastlingRights) String() string {
	var sb strings.Builder
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			sb.WriteByte(cl.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Rights returns both castling rights of a colour.
func Rights(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// Position is a complete snapshot of the game: the 64-square population
// plus castling rights, en passant target, side to move and both clocks.
//
// Position is a value type. Assigning or passing it copies the population,
// so a holder never observes a change made through another copy.
type Position struct {
	// Population is indexed by Square.Index(): a8 is 0, h1 is 63.
	Population [NumSquares]Piece

	Castling CastlingRights

	// Is en passant capture possible? If so EPSquare is the square the
	// capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// Who has the next move.
	ToMove Colour

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	MoveNumber uint
}

// NewPosition creates an empty board with White to move at move 1.
func NewPosition() Position {
	return Position{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// At returns the piece on sq.
func (p *Position) At(sq Square) Piece {
	return p.Population[sq.Index()]
}

// Set places a piece on sq. It is meant for constructing positions;
// once a Position is handed out it should be treated as read-only.
func (p *Position) Set(sq Square, piece Piece) {
	p.Population[sq.Index()] = piece
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// Count returns the number of pieces of the given colour.
func (p *Position) Count(colour Colour) int {
	n := 0
	for _, piece := range p.Population {
		if piece != Empty && piece.Colour() == colour {
			n++
		}
	}
	return n
}

// FindPieces returns every square holding piece, in index order.
func (p *Position) FindPieces(piece Piece) []Square {
	var squares []Square
	for sq := range AllSquares() {
		if p.At(sq) == piece {
			squares = append(squares, sq)
		}
	}
	return squares
}
