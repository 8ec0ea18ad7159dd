package rangeset

import "fmt"

// RangeError reports a reversed-range construction attempt (Lo > Hi). This
// is a programmer contract violation, not a runtime matching outcome, so it
// surfaces as a panic (see SPEC_FULL §7).
type RangeError struct {
	Lo, Hi any
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("rangeset: invalid range [%v, %v]: Lo must be <= Hi", e.Lo, e.Hi)
}
