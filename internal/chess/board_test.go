package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-practice-go/internal/errors"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want White", p.ToMove)
		}
		if p.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", p.MoveNumber)
		}
		if p.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if p.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", p.HalfmoveClock)
		}
		if p.Castling != NoCastling {
			t.Errorf("Castling = %v; want -", p.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := range AllSquares() {
			if got := p.At(sq); got != Empty {
				t.Errorf("At(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestPosition_ValueSemantics(t *testing.T) {
	p := NewPosition()
	p.Set(MustSquare("e1"), W(King))

	q := p
	q.Set(MustSquare("e1"), Empty)
	q.Set(MustSquare("e2"), W(King))

	if p.At(MustSquare("e1")) != W(King) {
		t.Error("modifying a copy changed the original population")
	}
	if q.At(MustSquare("e1")) != Empty {
		t.Error("copy was not modified")
	}
}

func TestPosition_CountAndFind(t *testing.T) {
	p := NewPosition()
	p.Set(MustSquare("a1"), W(Rook))
	p.Set(MustSquare("h1"), W(Rook))
	p.Set(MustSquare("e8"), B(King))

	if got := p.Count(White); got != 2 {
		t.Errorf("Count(White) = %d; want 2", got)
	}
	if got := p.Count(Black); got != 1 {
		t.Errorf("Count(Black) = %d; want 1", got)
	}

	rooks := p.FindPieces(W(Rook))
	if len(rooks) != 2 || rooks[0] != MustSquare("a1") || rooks[1] != MustSquare("h1") {
		t.Errorf("FindPieces(R) = %v; want [a1 h1]", rooks)
	}
}

func TestPosition_EnPassantTarget(t *testing.T) {
	p := NewPosition()
	if _, ok := p.EnPassantTarget(); ok {
		t.Error("new position has an en passant target")
	}
	p.EnPassant = true
	p.EPSquare = MustSquare("e3")
	if sq, ok := p.EnPassantTarget(); !ok || sq != MustSquare("e3") {
		t.Errorf("EnPassantTarget() = %v, %v; want e3, true", sq, ok)
	}
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{AllCastling.Without(Rights(White)), "kq"},
		{AllCastling.Without(Rights(Black)), "KQ"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.rights.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}

	for _, c := range []byte("KQkq") {
		r, ok := CastlingRightFromLetter(c)
		if !ok || !AllCastling.Has(r) {
			t.Errorf("CastlingRightFromLetter(%c) = %v, %v", c, r, ok)
		}
	}
	if _, ok := CastlingRightFromLetter('x'); ok {
		t.Error("CastlingRightFromLetter('x') should fail")
	}
}

func TestPieces(t *testing.T) {
	tests := []struct {
		letter byte
		colour Colour
		kind   Kind
	}{
		{'P', White, Pawn}, {'N', White, Knight}, {'B', White, Bishop},
		{'R', White, Rook}, {'Q', White, Queen}, {'K', White, King},
		{'p', Black, Pawn}, {'n', Black, Knight}, {'b', Black, Bishop},
		{'r', Black, Rook}, {'q', Black, Queen}, {'k', Black, King},
	}

	seen := make(map[Piece]bool)
	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			p, ok := PieceFromLetter(tt.letter)
			if !ok {
				t.Fatalf("PieceFromLetter(%c) failed", tt.letter)
			}
			if p == Empty {
				t.Fatal("piece encodes as Empty")
			}
			if p.Colour() != tt.colour || p.Kind() != tt.kind {
				t.Errorf("got %v %v; want %v %v", p.Colour(), p.Kind(), tt.colour, tt.kind)
			}
			if p.Letter() != tt.letter {
				t.Errorf("Letter() = %c; want %c", p.Letter(), tt.letter)
			}
			if seen[p] {
				t.Errorf("duplicate encoding for %c", tt.letter)
			}
			seen[p] = true
		})
	}

	for _, c := range []byte("xX1 /") {
		if _, ok := PieceFromLetter(c); ok {
			t.Errorf("PieceFromLetter(%q) should fail", c)
		}
	}
}

func TestColour(t *testing.T) {
	if White.Direction() != 1 || Black.Direction() != -1 {
		t.Errorf("Direction() = %d/%d; want 1/-1", White.Direction(), Black.Direction())
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d/%d; want -1/1", White.Forward(), Black.Forward())
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is wrong")
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove(e2e4) error = %v", err)
	}
	if m.From != MustSquare("e2") || m.To != MustSquare("e4") {
		t.Errorf("ParseMove(e2e4) = %v", m)
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q; want e2e4", m.String())
	}

	if _, err := ParseMove("e2e"); !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("ParseMove(e2e) error = %v; want ErrIllegalMove", err)
	}
	if _, err := ParseMove("e2e9"); !errors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("ParseMove(e2e9) error = %v; want ErrInvalidSquare", err)
	}
}
