package chess

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// Square identifies one board cell by file (0 = a) and rank index
// (0 = rank 8, the top row as the board is drawn).
// Squares built through the constructors always have both fields in [0,7].
type Square struct {
	File int
	Rank int
}

// SquareFromIndex converts a linear index (file + rank*8) to a Square.
func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i >= NumSquares {
		return Square{}, &errors.RangeError{Kind: "index", Value: strconv.Itoa(i)}
	}
	return Square{File: i % BoardSize, Rank: i / BoardSize}, nil
}

// NewSquare validates a file/rank-index coordinate pair.
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return Square{}, &errors.RangeError{Kind: "coordinate", Value: fmt.Sprintf("(%d,%d)", file, rank)}
	}
	return Square{File: file, Rank: rank}, nil
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, &errors.RangeError{Kind: "name", Value: strconv.Quote(name)}
	}
	file := int(name[0]) - FileBase
	digit := int(name[1]) - '0'
	if file < 0 || file >= BoardSize || digit < 1 || digit > BoardSize {
		return Square{}, &errors.RangeError{Kind: "name", Value: strconv.Quote(name)}
	}
	return Square{File: file, Rank: BoardSize - digit}, nil
}

// MustSquare is like ParseSquare but panics on a malformed name.
// It is meant for constants and tests.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// AllSquares yields every square in linear index order (a8..h1).
func AllSquares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for i := 0; i < NumSquares; i++ {
			if !yield(Square{File: i % BoardSize, Rank: i / BoardSize}) {
				return
			}
		}
	}
}

// Index returns the linear index file + rank*8.
func (s Square) Index() int {
	return s.File + s.Rank*BoardSize
}

// String returns the algebraic name, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(FileBase + s.File), byte('0' + s.Digit())})
}

// Digit returns the conventional rank number 1..8.
func (s Square) Digit() int {
	return BoardSize - s.Rank
}

// IsLight reports whether the square is drawn light ((file+rank) even).
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 0
}

// Equal compares squares by linear index.
func (s Square) Equal(other Square) bool {
	return s.Index() == other.Index()
}

// Offset returns the square df files and dr rank indices away, and false
// if that falls off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File+df, s.Rank+dr
	if !onBoard(f, r) {
		return Square{}, false
	}
	return Square{File: f, Rank: r}, true
}

// onBoard reports whether a file/rank pair lies within the board.
func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}
