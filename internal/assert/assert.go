// Package assert checks programmer preconditions. A failed check is a bug in
// the caller, so it panics instead of returning an error. Checks compile away
// when the chessgen_release build tag is set.
package assert

import "fmt"

// Violation is the panic value raised by a failed precondition.
type Violation struct {
	Msg string
}

// Error returns the violation message.
func (v *Violation) Error() string {
	return "precondition violated: " + v.Msg
}

// That panics with a *Violation when cond is false.
func That(cond bool, format string, args ...interface{}) {
	if Enabled && !cond {
		panic(&Violation{Msg: fmt.Sprintf(format, args...)})
	}
}
