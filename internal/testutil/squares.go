package testutil

import (
	"slices"
	"testing"

	"github.com/lgbarn/chess-practice-go/internal/chess"
)

// Squares converts algebraic names to squares, failing the test on a
// malformed name.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square name %q: %v", name, err)
		}
		out = append(out, sq)
	}
	return out
}

// SquareNames returns the algebraic names of squares, in order.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// SortedNames returns the algebraic names of squares sorted alphabetically,
// for comparisons that ignore generation order.
func SortedNames(squares []chess.Square) []string {
	names := SquareNames(squares)
	slices.Sort(names)
	return names
}

// AssertSquares compares squares against names ignoring order.
func AssertSquares(t *testing.T, got []chess.Square, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sortedWant := slices.Clone(want)
	slices.Sort(sortedWant)
	if sortedWant == nil {
		sortedWant = []string{}
	}
	AssertEqual(t, SortedNames(got), sortedWant, msgAndArgs...)
}
