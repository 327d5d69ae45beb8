// Package engine parses positions, applies moves and generates pseudo-legal
// destinations.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// ParseFEN creates a position from a FEN string. Every failure is a
// *errors.ParseError wrapping errors.ErrInvalidFEN.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fen",
			Expected: fmt.Sprintf("%d fields", fenFields),
			Got:      strconv.Itoa(len(parts)),
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	return MustParseFEN(InitialFEN)
}

// parsePiecePositions parses the piece placement field. Ranks are listed
// from rank 8 down, which matches rank index 0..7.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "board",
			Expected: "8 ranks",
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	for r, rankText := range ranks {
		var row []chess.Piece
		for i := 0; i < len(rankText); i++ {
			c := rankText[i]
			if c >= '1' && c <= '8' {
				for n := 0; n < int(c-'0'); n++ {
					row = append(row, chess.Empty)
				}
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return &errors.ParseError{
					Err:   errors.ErrInvalidFEN,
					Field: "board",
					Rank:  r + 1,
					Got:   fmt.Sprintf("piece %q in %q", c, rankText),
				}
			}
			row = append(row, piece)
		}
		if len(row) != chess.BoardSize {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "board",
				Rank:     r + 1,
				Expected: "8 squares",
				Got:      fmt.Sprintf("%d in %q", len(row), rankText),
			}
		}
		copy(pos.Population[r*chess.BoardSize:], row)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "side to move",
			Expected: "w or b",
			Got:      strconv.Quote(side),
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, castling string) error {
	pos.Castling = chess.NoCastling
	if castling == "-" {
		return nil
	}
	for i := 0; i < len(castling); i++ {
		right, ok := chess.CastlingRightFromLetter(castling[i])
		if !ok {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "castling",
				Expected: "letters from KQkq or -",
				Got:      strconv.Quote(castling),
			}
		}
		pos.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = false
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.ParseError{
			Err:   fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err),
			Field: "en passant",
		}
	}
	pos.EnPassant = true
	pos.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	h, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "halfmove clock",
			Expected: "non-negative integer",
			Got:      strconv.Quote(halfmove),
		}
	}
	f, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fullmove number",
			Expected: "non-negative integer",
			Got:      strconv.Quote(fullmove),
		}
	}
	pos.HalfmoveClock = uint(h)
	pos.MoveNumber = uint(f)
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, &pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, &pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.At(chess.Square{File: file, Rank: rank})
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if pos.EnPassant {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
