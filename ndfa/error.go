package ndfa

import "fmt"

// BuildError reports a malformed NDFA detected by Builder.Validate: a
// transition or link pointing at a state id that was never created.
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("ndfa: build error at state %d: %s", e.State, e.Message)
}
