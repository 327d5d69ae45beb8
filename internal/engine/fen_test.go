package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-practice-go/internal/errors"
	"github.com/lgbarn/chess-practice-go/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustSquare("e1")) == chess.W(chess.King) &&
					p.At(chess.MustSquare("e8")) == chess.B(chess.King) &&
					p.At(chess.MustSquare("e2")) == chess.W(chess.Pawn) &&
					p.At(chess.MustSquare("e7")) == chess.B(chess.Pawn) &&
					p.At(chess.MustSquare("a1")) == chess.W(chess.Rook) &&
					p.At(chess.MustSquare("d8")) == chess.B(chess.Queen) &&
					p.ToMove == chess.White
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					p.At(chess.MustSquare("e2")) == chess.Empty &&
					p.ToMove == chess.Black &&
					p.EnPassant &&
					p.EPSquare == chess.MustSquare("e3")
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustSquare("c5")) == chess.B(chess.Pawn) &&
					p.At(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					p.EPSquare == chess.MustSquare("c6") &&
					p.MoveNumber == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.NoCastling
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.WhiteKingside|chess.BlackQueenside &&
					p.HalfmoveClock == 12 &&
					p.MoveNumber == 40 &&
					p.ToMove == chess.Black
			},
		},
		{
			name: "extra whitespace between fields",
			fen:  "8/8/8/8/8/8/8/4K3   w  -  -  0  1",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustSquare("e1")) == chess.W(chess.King) && p.Count(chess.White) == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if !tt.checkFn(&pos) {
				t.Errorf("ParseFEN() position check failed")
			}
		})
	}
}

func TestParseFEN_StartingPosition(t *testing.T) {
	pos, err := ParseFEN(InitialFEN)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(pos.Population), 64)
	testutil.AssertEqual(t, pos.Count(chess.White), 16)
	testutil.AssertEqual(t, pos.Count(chess.Black), 16)
	testutil.AssertEqual(t, pos.Castling, chess.AllCastling)
	testutil.AssertFalse(t, pos.EnPassant, "en passant target")
	testutil.AssertEqual(t, pos.HalfmoveClock, uint(0))
	testutil.AssertEqual(t, pos.MoveNumber, uint(1))
	testutil.AssertEqual(t, pos.ToMove, chess.White)
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		field   string
		isRange bool
	}{
		{"empty string", "", "fen", false},
		{"missing clocks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "fen", false},
		{"too many fields", InitialFEN + " extra", "fen", false},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"nine ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"digits overflow rank", "rnbqkbnr/pppppppp/44p/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"invalid piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"zero digit", "rnbqkbnr/pppppppp/08/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "board", false},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side to move", false},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", "castling", false},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", "en passant", true},
		{"bad halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "halfmove clock", false},
		{"negative fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 -1", "fullmove number", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatal("ParseFEN() error = nil, want error")
			}
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)

			var parseErr *chesserrors.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, parseErr.Field, tt.field)

			if got := errors.Is(err, chesserrors.ErrInvalidSquare); got != tt.isRange {
				t.Errorf("errors.Is(err, ErrInvalidSquare) = %v, want %v", got, tt.isRange)
			}
		})
	}
}

func TestParseFEN_RankInError(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/7/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var parseErr *chesserrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Rank, 6)
	testutil.AssertContains(t, err.Error(), "expected 8 squares")
}

func TestFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"4k3/8/8/8/8/8/8/R3K3 b Q - 17 52",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			testutil.AssertEqual(t, FEN(pos), fen)

			again, err := ParseFEN(FEN(pos))
			if err != nil {
				t.Fatalf("ParseFEN(FEN()) error = %v", err)
			}
			testutil.AssertEqual(t, again, pos)
		})
	}
}

func TestNewInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	testutil.AssertEqual(t, FEN(pos), InitialFEN)
}

func TestMustParseFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseFEN did not panic on invalid input")
		}
	}()
	MustParseFEN("not a fen")
}
