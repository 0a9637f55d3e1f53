// Package testutil provides shared test utilities for the chessgen-go project.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessgen-go/internal/assert"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, fmt.Sprintf("error %v does not match %v", err, target), msgAndArgs...)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		report(t, "expected true but got false", msgAndArgs...)
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		report(t, "expected false but got true", msgAndArgs...)
	}
}

// AssertViolation fails unless fn panics with a precondition violation.
// Callers must be built without the chessgen_release tag.
func AssertViolation(t testing.TB, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	if r := catchPanic(fn); r == nil {
		report(t, "expected precondition violation but call returned", msgAndArgs...)
	} else if _, ok := r.(*assert.Violation); !ok {
		report(t, fmt.Sprintf("expected precondition violation but got panic %v", r), msgAndArgs...)
	}
}

// AssertNoViolation fails if fn panics.
func AssertNoViolation(t testing.TB, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	if r := catchPanic(fn); r != nil {
		report(t, fmt.Sprintf("unexpected panic: %v", r), msgAndArgs...)
	}
}

// catchPanic runs fn and returns the recovered panic value, if any.
func catchPanic(fn func()) (r interface{}) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}

// report fails the test with problem, prefixed by the optional message.
func report(t testing.TB, problem string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, problem)
	} else {
		t.Error(problem)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
