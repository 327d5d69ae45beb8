package testutil

import (
	"testing"

	"github.com/lgbarn/chess-practice-go/internal/chess"
)

func TestSquares(t *testing.T) {
	got := Squares(t, "a8", "h1")
	want := []chess.Square{{File: 0, Rank: 0}, {File: 7, Rank: 7}}
	AssertEqual(t, got, want)
}

func TestSquareNames(t *testing.T) {
	squares := []chess.Square{chess.MustSquare("e4"), chess.MustSquare("a3")}
	AssertEqual(t, SquareNames(squares), []string{"e4", "a3"})
	AssertEqual(t, SortedNames(squares), []string{"a3", "e4"})
}

func TestAssertSquares_Success(t *testing.T) {
	AssertSquares(t, Squares(t, "e3", "e4"), []string{"e4", "e3"})
	AssertSquares(t, nil, nil)
	AssertSquares(t, nil, []string{})
}
