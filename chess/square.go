// Package chess provides the coordinate and piece-identity model shared by
// the board, move generation and notation layers: squares, files, ranks,
// directions, pieces and colours, their textual forms, and the string
// primitives used to tokenize FEN, SAN and UCI text.
package chess

import "github.com/lgbarn/chessgen-go/internal/assert"

// File represents a board column, FileA to FileH.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileCount
	NoFile = FileCount
)

// Rank represents a board row, Rank1 to Rank8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankCount
	NoRank = RankCount
)

// Square represents one of the 64 board squares.
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// Board dimensions.
const (
	BoardSize   = 8
	SquareCount = Square(BoardSize * BoardSize)
	NoSquare    = SquareCount
)

// MakeSquare returns the square at file f and rank r.
// Both must be on the board; passing NoFile or NoRank is a caller bug.
func MakeSquare(f File, r Rank) Square {
	assert.That(f <= FileH, "MakeSquare: file %d out of range", f)
	assert.That(r <= Rank8, "MakeSquare: rank %d out of range", r)
	return Square(r)<<3 + Square(f)
}

// SquareFromIndex converts a raw index to a Square without checking it.
// The caller guarantees 0 <= i < 64.
func SquareFromIndex(i int) Square {
	return Square(i)
}

// IndexFromSquare converts a Square to its raw index.
func IndexFromSquare(sq Square) int {
	return int(sq)
}

// FileOf returns the file of sq.
func FileOf(sq Square) File {
	return sq.File()
}

// RankOf returns the rank of sq.
func RankOf(sq Square) Rank {
	return sq.Rank()
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	assert.That(sq <= H8, "Square.File: square %d out of range", sq)
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	assert.That(sq <= H8, "Square.Rank: square %d out of range", sq)
	return Rank(sq >> 3)
}

// Index returns the square as an array index.
func (sq Square) Index() int {
	return int(sq)
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < SquareCount
}

// Next returns the following square. H8.Next() is SquareCount, which
// terminates iteration; stepping beyond it is a caller bug.
func (sq Square) Next() Square {
	assert.That(sq <= H8, "Square.Next: square %d has no successor", sq)
	return sq + 1
}

// Prev returns the preceding square.
func (sq Square) Prev() Square {
	assert.That(sq >= B1 && sq <= SquareCount, "Square.Prev: square %d has no predecessor", sq)
	return sq - 1
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns the rank from a given colour's perspective.
// For White, Rank1 is the first rank; for Black, Rank8 is.
func (sq Square) RelativeRank(c Color) Rank {
	if c == White {
		return sq.Rank()
	}
	return Rank8 - sq.Rank()
}

// Index returns the file as an array index.
func (f File) Index() int {
	return int(f)
}

// IsValid returns true if the file is FileA to FileH.
func (f File) IsValid() bool {
	return f < FileCount
}

// Next returns the file to the right. FileH has none.
func (f File) Next() File {
	assert.That(f < FileH, "File.Next: file %d has no successor", f)
	return f + 1
}

// Prev returns the file to the left. FileA has none; NoFile.Prev() is
// FileH, so reverse iteration may start from the sentinel.
func (f File) Prev() File {
	assert.That(f > FileA && f <= FileCount, "File.Prev: file %d has no predecessor", f)
	return f - 1
}

// Index returns the rank as an array index.
func (r Rank) Index() int {
	return int(r)
}

// IsValid returns true if the rank is Rank1 to Rank8.
func (r Rank) IsValid() bool {
	return r < RankCount
}

// Next returns the rank above. Rank8 has none.
func (r Rank) Next() Rank {
	assert.That(r < Rank8, "Rank.Next: rank %d has no successor", r)
	return r + 1
}

// Prev returns the rank below. Rank1 has none; NoRank.Prev() is Rank8.
func (r Rank) Prev() Rank {
	assert.That(r > Rank1 && r <= RankCount, "Rank.Prev: rank %d has no predecessor", r)
	return r - 1
}
