//go:build !chessgen_release

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = true
