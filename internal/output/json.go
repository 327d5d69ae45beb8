package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN           string     `json:"fen"`
	Population    [64]string `json:"population"` // "" for an empty square
	Castling      string     `json:"castling"`
	EnPassant     string     `json:"enPassant,omitempty"`
	ToMove        string     `json:"toMove"` // "white" or "black"
	HalfmoveClock uint       `json:"halfmoveClock"`
	MoveNumber    uint       `json:"moveNumber"`
	Moves         []string   `json:"moves"`
	Highlighted   []string   `json:"highlighted,omitempty"`
	History       []string   `json:"history,omitempty"`
}

// PositionToJSON converts a position to JSON format with its pseudo-legal
// moves in long algebraic form.
func PositionToJSON(pos chess.Position) *JSONPosition {
	jp := &JSONPosition{
		FEN:           engine.FEN(pos),
		Castling:      pos.Castling.String(),
		ToMove:        colourName(pos.ToMove),
		HalfmoveClock: pos.HalfmoveClock,
		MoveNumber:    pos.MoveNumber,
		Moves:         []string{},
	}
	for i, piece := range pos.Population {
		jp.Population[i] = piece.String()
	}
	if ep, ok := pos.EnPassantTarget(); ok {
		jp.EnPassant = ep.String()
	}
	for m := range engine.PseudoLegalMoves(pos) {
		jp.Moves = append(jp.Moves, m.String())
	}
	return jp
}

// SetMoves replaces the move list, for callers that filter moves.
func (jp *JSONPosition) SetMoves(moves []chess.Move) {
	jp.Moves = MoveStrings(moves)
}

// MoveStrings renders moves in long algebraic form.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SquareStrings renders square names.
func SquareStrings(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
