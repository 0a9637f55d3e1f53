package chess

import (
	"strings"

	"github.com/lgbarn/chessgen-go/internal/assert"
)

// Split breaks source into the fields separated by delimiter.
//
// With discardEmpty set, empty fields are dropped, so leading, trailing and
// repeated delimiters produce nothing. Otherwise every field is kept,
// including the empty field after a trailing delimiter. The result is never
// nil and its strings do not share memory with source.
func Split(source string, delimiter byte, discardEmpty bool) []string {
	result := make([]string, 0, strings.Count(source, string([]byte{delimiter}))+1)
	for {
		end := strings.IndexByte(source, delimiter)
		if end < 0 {
			break
		}
		if end > 0 || !discardEmpty {
			result = append(result, strings.Clone(source[:end]))
		}
		source = source[end+1:]
	}
	if len(source) > 0 || !discardEmpty {
		result = append(result, strings.Clone(source))
	}
	return result
}

// ContainsByte reports whether c occurs in source.
func ContainsByte(source string, c byte) bool {
	return strings.IndexByte(source, c) >= 0
}

// Contains reports whether substring occurs in source.
func Contains(source, substring string) bool {
	return strings.Contains(source, substring)
}

// HasSuffix reports whether view ends with suffix. A suffix longer than
// view is simply not a suffix.
func HasSuffix(view, suffix string) bool {
	return len(suffix) <= len(view) && view[len(view)-len(suffix):] == suffix
}

// Pop drops the last count bytes of *view in place. The shortened view
// shares memory with the original.
func Pop(view *string, count int) {
	assert.That(count >= 0 && count <= len(*view), "Pop: count %d exceeds length %d", count, len(*view))
	*view = (*view)[:len(*view)-count]
}

// PopBack removes and returns the last byte of *view, which must not be empty.
func PopBack(view *string) byte {
	assert.That(len(*view) > 0, "PopBack: empty view")
	s := *view
	c := s[len(s)-1]
	*view = s[:len(s)-1]
	return c
}

// Flag is satisfied by bit-flag enumerations such as CastleSide.
type Flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// HasFlag reports whether value and flag share any set bit.
func HasFlag[E Flag](value, flag E) bool {
	return value&flag != 0
}
