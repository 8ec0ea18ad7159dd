package dfa

import (
	"errors"
	"fmt"
)

// ErrTooManyStates is returned by Compile when subset construction exceeds
// Config.MaxStates. It is an ordinary compile-time resource-limit error
// (SPEC_FULL §7), not a panic: a caller can retry with a larger MaxStates or
// reject the pattern.
var ErrTooManyStates = errors.New("dfa: too many states during subset construction")

// CompileError wraps a failure encountered while compiling an NDFA into a
// DFA, recording how many states had been discovered when it occurred.
type CompileError struct {
	Err    error
	States int
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("dfa: compile failed after %d states: %v", e.States, e.Err)
}

// Unwrap supports errors.Is/errors.As against the wrapped error, in
// particular errors.Is(err, dfa.ErrTooManyStates).
func (e *CompileError) Unwrap() error {
	return e.Err
}
