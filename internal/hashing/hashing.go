// Package hashing detects repeated positions with Zobrist keys.
package hashing

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/engine"
)

const pieceCodes = int(chess.NumKinds) << chess.PieceShift

// Zobrist keys for each piece on each square, castling state, en passant
// file and black to move.
var (
	pieceKeys     [pieceCodes][chess.NumSquares]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackKey      uint64
)

func init() {
	// Fixed seed so keys are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE)) //nolint:gosec // not used for security

	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = rnd.Uint64()
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	blackKey = rnd.Uint64()
}

// Zobrist returns the Zobrist key of pos. The clocks are not hashed, so
// the same position reached at different moves has the same key.
func Zobrist(pos chess.Position) uint64 {
	var key uint64
	for i, p := range pos.Population {
		if p != chess.Empty {
			key ^= pieceKeys[p][i]
		}
	}
	if pos.ToMove == chess.Black {
		key ^= blackKey
	}
	key ^= castlingKeys[pos.Castling&chess.AllCastling]
	if pos.EnPassant {
		key ^= enPassantKeys[pos.EPSquare.File]
	}
	return key
}

// PositionKey returns the first four FEN fields of pos: everything
// Zobrist hashes, in comparable form.
func PositionKey(pos chess.Position) string {
	fields := strings.Fields(engine.FEN(pos))
	return strings.Join(fields[:4], " ")
}

// Signature identifies a position seen by a DuplicateDetector.
type Signature struct {
	// Hash is the Zobrist key.
	Hash uint64
	// Key is the PositionKey, compared when hashes collide.
	Key string
	// Index is the caller's label for the first occurrence.
	Index int
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	maxCapacity    int
	uniqueCount    int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means
// unlimited; once full, new positions are no longer remembered.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether pos was seen before and, if so, the index it
// was first added with. Otherwise pos is remembered under index.
func (d *DuplicateDetector) CheckAndAdd(pos chess.Position, index int) (first int, duplicate bool) {
	sig := Signature{Hash: Zobrist(pos), Key: PositionKey(pos), Index: index}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing.Key == sig.Key {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.uniqueCount++
	}
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of remembered positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit is reached. Always false for
// unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.uniqueCount = 0
	d.duplicateCount = 0
}
