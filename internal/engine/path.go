package engine

import "github.com/lgbarn/chess-practice-go/internal/chess"

// offset is a file/rank-index delta.
type offset struct {
	df, dr int
}

var (
	knightOffsets = []offset{{-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}}
	kingOffsets   = []offset{{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
	straightDirs  = []offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalDirs  = []offset{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// stepTargets yields each offset square that is empty or enemy-occupied.
func stepTargets(pos *chess.Position, from chess.Square, colour chess.Colour, offsets []offset, yield func(chess.Square) bool) bool {
	for _, o := range offsets {
		to, ok := from.Offset(o.df, o.dr)
		if !ok {
			continue
		}
		target := pos.At(to)
		if target != chess.Empty && target.Colour() == colour {
			continue
		}
		if !yield(to) {
			return false
		}
	}
	return true
}

// rayTargets walks each direction until the edge or the first occupied
// square, which is yielded only if it holds an enemy piece.
func rayTargets(pos *chess.Position, from chess.Square, colour chess.Colour, dirs []offset, yield func(chess.Square) bool) bool {
	for _, d := range dirs {
		to, ok := from.Offset(d.df, d.dr)
		for ok {
			target := pos.At(to)
			if target != chess.Empty {
				if target.Colour() != colour && !yield(to) {
					return false
				}
				break
			}
			if !yield(to) {
				return false
			}
			to, ok = to.Offset(d.df, d.dr)
		}
	}
	return true
}
