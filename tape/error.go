package tape

import "fmt"

// RewindError reports an attempt to rewind a Tape past the start of its
// currently buffered history (before the last Cut, or before the stream
// began). It is always a programmer error: a caller should never ask to
// rewind further than it itself has advanced since the last Cut.
type RewindError struct {
	Requested int
	Available int
}

func (e *RewindError) Error() string {
	return fmt.Sprintf("tape: cannot rewind %d symbols, only %d available", e.Requested, e.Available)
}
