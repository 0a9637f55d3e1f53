package chess

// Piece represents a chess piece kind, independent of colour.
// Pieces index per-piece arrays directly; size them [PieceCount]T and
// reject NoPiece before the lookup.
type Piece uint8

const (
	Pawn Piece = iota
	Rook
	Knight
	Bishop
	Queen
	King
	PieceCount
	NoPiece = PieceCount
)

// Index returns the piece as an array index.
func (p Piece) Index() int {
	return int(p)
}

// IsValid returns true if the piece is Pawn to King.
func (p Piece) IsValid() bool {
	return p < PieceCount
}

// String returns the piece name.
func (p Piece) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King", "None"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Color represents the colour of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	ColorCount
)

// Index returns the colour as an array index.
func (c Color) Index() int {
	return int(c)
}

// IsValid returns true if the colour is White or Black.
func (c Color) IsValid() bool {
	return c < ColorCount
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	return c ^ 1
}

// String returns the string representation of a colour.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// CastleSide is a set of castling rights for one colour.
type CastleSide uint8

const (
	CastleNone  CastleSide = 0
	CastleKing  CastleSide = 1 << 0
	CastleQueen CastleSide = 1 << 1
	CastleBoth             = CastleKing | CastleQueen
)

// Has reports whether any right in side is present in cs.
func (cs CastleSide) Has(side CastleSide) bool {
	return HasFlag(cs, side)
}
