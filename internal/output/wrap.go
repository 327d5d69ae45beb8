package output

import (
	"io"

	"github.com/lgbarn/chess-practice-go/internal/chess"
)

// LineWriter writes space-separated words, wrapping at a maximum line length.
// The first write error is kept and later writes are skipped.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a word, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

// writeMoveList writes a label followed by the moves, wrapped.
func writeMoveList(w io.Writer, label string, moves []chess.Move, maxLineLength uint) error {
	lw := NewLineWriter(w, int(maxLineLength))
	lw.Write(label)
	if len(moves) == 0 {
		lw.Write("(none)")
	}
	for _, m := range moves {
		lw.Write(m.String())
	}
	lw.NewLine()
	return lw.Err()
}
