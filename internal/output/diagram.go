package output

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"github.com/lgbarn/chess-practice-go/internal/chess"
)

// Empty squares are drawn with these marks.
const (
	lightSquare = '.'
	darkSquare  = ':'
	validMove   = '*'
)

// Diagram describes the marks drawn on a board: the last move, the
// focused square and its valid destinations.
type Diagram struct {
	Highlighted []chess.Square
	Focus       *chess.Square
	Valid       []chess.Square
}

// WriteDiagram writes pos as an ASCII board with rank 8 on top, marking
// the highlighted squares.
func WriteDiagram(w io.Writer, pos chess.Position, highlighted []chess.Square) error {
	return Diagram{Highlighted: highlighted}.Write(w, pos)
}

// Write draws pos. Each square takes three columns: the piece letter or
// the empty-square mark, bracketed as [x] when highlighted, <x> when
// focused and (x) when it is a valid destination. An empty valid
// destination shows '*'.
func (d Diagram) Write(w io.Writer, pos chess.Position) error {
	bw := bufio.NewWriter(w)

	writeFiles(bw)
	for rank := 0; rank < chess.BoardSize; rank++ {
		digit := byte('0' + chess.Square{Rank: rank}.Digit())
		var line strings.Builder
		line.WriteByte(digit)
		line.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: file, Rank: rank}
			line.WriteString(d.cell(&pos, sq))
		}
		line.WriteByte(' ')
		line.WriteByte(digit)
		line.WriteByte('\n')
		bw.WriteString(line.String())
	}
	writeFiles(bw)

	return bw.Flush()
}

// cell renders one square.
func (d Diagram) cell(pos *chess.Position, sq chess.Square) string {
	piece := pos.At(sq)
	valid := slices.Contains(d.Valid, sq)

	mark := piece.Letter()
	if piece.IsEmpty() {
		switch {
		case valid:
			mark = validMove
		case sq.IsLight():
			mark = lightSquare
		default:
			mark = darkSquare
		}
	}

	left, right := byte(' '), byte(' ')
	switch {
	case d.Focus != nil && *d.Focus == sq:
		left, right = '<', '>'
	case valid:
		left, right = '(', ')'
	case slices.Contains(d.Highlighted, sq):
		left, right = '[', ']'
	}
	return string([]byte{left, mark, right})
}

// fileLabels is the a-h line above and below the board.
const fileLabels = "   a  b  c  d  e  f  g  h\n"

func writeFiles(bw *bufio.Writer) {
	bw.WriteString(fileLabels)
}
