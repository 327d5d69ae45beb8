// Package chess provides core chess types: squares, pieces and positions.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black.
// White advances toward decreasing rank index, so a forward step in rank
// index is -Direction().
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// Forward returns the rank-index delta of one step toward the opponent.
func (c Colour) Forward() int {
	return -c.Direction()
}

// Kind represents a chess piece type regardless of colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece, or Empty for an unoccupied square.
// The zero value is Empty so a zero Population is an empty board.
type Piece int

// Empty marks an unoccupied square.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind. Empty yields NoKind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether p is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p != Empty && p.Colour() == colour && p.Kind() == kind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// and a space for Empty.
func (p Piece) Letter() byte {
	if p == Empty {
		return ' '
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "" for Empty.
func (p Piece) String() string {
	if p == Empty {
		return ""
	}
	return string(p.Letter())
}

// PieceFromLetter converts a FEN letter (prnbqkPRNBQK) to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty, false
	}
	return MakePiece(colour, kind), true
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
	FileBase   = 'a'
)
