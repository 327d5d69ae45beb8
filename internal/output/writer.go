// Package output prints positions as ASCII diagrams, FEN lines or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/config"
	"github.com/lgbarn/chess-practice-go/internal/engine"
)

// View is a position together with the board state to show with it.
type View struct {
	Position    chess.Position
	Highlighted []chess.Square
	Focus       *chess.Square
	Valid       []chess.Square

	// Moves are listed when the output shows moves. Nil means the
	// pseudo-legal moves of Position.
	Moves   []chess.Move
	History []chess.Move
}

func (v View) moves() []chess.Move {
	if v.Moves != nil {
		return v.Moves
	}
	var moves []chess.Move
	for m := range engine.PseudoLegalMoves(v.Position) {
		moves = append(moves, m)
	}
	return moves
}

// PositionWriter is the interface for writing positions to output.
type PositionWriter interface {
	// WritePosition writes a single view to the output.
	WritePosition(v View) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases any resources.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format writing to w.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriter(w, cfg)
	case config.FENOnly:
		return NewFENWriter(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes diagrams followed by the FEN and the move list.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new diagram writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes a view as a diagram.
func (tw *TextWriter) WritePosition(v View) error {
	d := Diagram{Highlighted: v.Highlighted, Focus: v.Focus, Valid: v.Valid}
	if err := d.Write(tw.w, v.Position); err != nil {
		return err
	}
	if tw.cfg.Output.ShowFEN {
		if _, err := fmt.Fprintf(tw.w, "FEN: %s\n", engine.FEN(v.Position)); err != nil {
			return err
		}
	}
	if len(v.History) > 0 {
		if err := writeMoveList(tw.w, "History:", v.History, tw.cfg.Output.MaxLineLength); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowMoves {
		return writeMoveList(tw.w, "Moves:", v.moves(), tw.cfg.Output.MaxLineLength)
	}
	return nil
}

// Flush is a no-op; diagrams are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes the FEN of v.Position.
func (fw *FENWriter) WritePosition(v View) error {
	_, err := fmt.Fprintln(fw.w, engine.FEN(v.Position))
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes each position as one JSON document.
type JSONWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

func (jw *JSONWriter) convert(v View) *JSONPosition {
	jp := PositionToJSON(v.Position)
	if v.Moves != nil {
		jp.SetMoves(v.Moves)
	}
	if !jw.cfg.Output.ShowMoves {
		jp.Moves = nil
	}
	if len(v.Highlighted) > 0 {
		jp.Highlighted = SquareStrings(v.Highlighted)
	}
	if len(v.History) > 0 {
		jp.History = MoveStrings(v.History)
	}
	return jp
}

// WritePosition writes v as a JSON document.
func (jw *JSONWriter) WritePosition(v View) error {
	return WriteJSON(jw.w, jw.convert(v))
}

// Flush is a no-op; documents are written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}
