// Package errors provides sentinel errors and error types for chessgen.
// It defines the recoverable error conditions of the coordinate and piece
// model and a structured error type that preserves the offending token while
// allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPiece indicates a piece discriminant outside Pawn..King.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidSquare indicates a square token that is not algebraic a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFile indicates a file token outside 'a'..'h'.
	ErrInvalidFile = errors.New("invalid file")

	// ErrInvalidRank indicates a rank token outside '1'..'8'.
	ErrInvalidRank = errors.New("invalid rank")
)

// TokenError wraps an error with the token that caused it. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type TokenError struct {
	Err   error  // The underlying error
	Kind  string // What the token was expected to be ("square", "piece", ...)
	Token string // The offending token, as received
}

// Error returns a formatted error message including the token.
func (e *TokenError) Error() string {
	msg := fmt.Sprintf("%q", e.Token)
	if e.Kind != "" {
		msg = fmt.Sprintf("%s %q", e.Kind, e.Token)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
