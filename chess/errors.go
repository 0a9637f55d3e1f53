package chess

import "github.com/lgbarn/chessgen-go/internal/errors"

// Errors returned by rendering and token parsing. Match them with errors.Is.
var (
	ErrInvalidPiece  = errors.ErrInvalidPiece
	ErrInvalidSquare = errors.ErrInvalidSquare
	ErrInvalidFile   = errors.ErrInvalidFile
	ErrInvalidRank   = errors.ErrInvalidRank
)

// TokenError carries the token that failed to parse. Extract it with errors.As.
type TokenError = errors.TokenError
