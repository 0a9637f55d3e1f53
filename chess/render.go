package chess

import "github.com/lgbarn/chessgen-go/internal/errors"

const (
	fileNames    = "abcdefgh"
	rankNames    = "12345678"
	pieceSymbols = "PRNBQK"

	// noneString renders sentinels, matching the FEN "no square" field.
	noneString = "-"
)

// String returns the file letter, 'a' to 'h'.
func (f File) String() string {
	if f >= FileCount {
		return noneString
	}
	return fileNames[f : f+1]
}

// String returns the rank digit, '1' to '8'.
func (r Rank) String() string {
	if r >= RankCount {
		return noneString
	}
	return rankNames[r : r+1]
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= SquareCount {
		return noneString
	}
	return sq.File().String() + sq.Rank().String()
}

// Symbol returns the uppercase letter for the piece (e.g., "Q").
// NoPiece and out-of-range values fail with ErrInvalidPiece.
func (p Piece) Symbol() (string, error) {
	if p >= PieceCount {
		return "", errors.Wrapf(ErrInvalidPiece, "piece %d", uint8(p))
	}
	return pieceSymbols[p : p+1], nil
}

// RenderPiece returns the uppercase letter for p.
func RenderPiece(p Piece) (string, error) {
	return p.Symbol()
}

// ParseFile parses a file letter 'a' to 'h'.
func ParseFile(c byte) (File, error) {
	if c < 'a' || c > 'h' {
		return NoFile, &TokenError{Err: ErrInvalidFile, Kind: "file", Token: string([]byte{c})}
	}
	return File(c - 'a'), nil
}

// ParseRank parses a rank digit '1' to '8'.
func ParseRank(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return NoRank, &TokenError{Err: ErrInvalidRank, Kind: "rank", Token: string([]byte{c})}
	}
	return Rank(c - '1'), nil
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &TokenError{Err: ErrInvalidSquare, Kind: "square", Token: s}
	}
	f, err := ParseFile(s[0])
	if err != nil {
		return NoSquare, &TokenError{Err: ErrInvalidSquare, Kind: "square", Token: s}
	}
	r, err := ParseRank(s[1])
	if err != nil {
		return NoSquare, &TokenError{Err: ErrInvalidSquare, Kind: "square", Token: s}
	}
	return MakeSquare(f, r), nil
}

// ParsePiece parses an uppercase piece letter.
func ParsePiece(c byte) (Piece, error) {
	switch c {
	case 'P':
		return Pawn, nil
	case 'R':
		return Rook, nil
	case 'N':
		return Knight, nil
	case 'B':
		return Bishop, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	default:
		return NoPiece, &TokenError{Err: ErrInvalidPiece, Kind: "piece", Token: string([]byte{c})}
	}
}

// CastlingString renders the FEN castling availability field.
func CastlingString(white, black CastleSide) string {
	var buf [4]byte
	n := 0
	if white.Has(CastleKing) {
		buf[n] = 'K'
		n++
	}
	if white.Has(CastleQueen) {
		buf[n] = 'Q'
		n++
	}
	if black.Has(CastleKing) {
		buf[n] = 'k'
		n++
	}
	if black.Has(CastleQueen) {
		buf[n] = 'q'
		n++
	}
	if n == 0 {
		return noneString
	}
	return string(buf[:n])
}
