package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError describes a malformed seed, range pair, or interval.
// Index is the position in the caller's input, or -1 when not applicable.
type InvalidInputError struct {
	Index  int
	Start  int64
	End    int64
	Length int64
	Reason string
}

func (e *InvalidInputError) Error() string {
	var where string
	if e.Index >= 0 {
		where = fmt.Sprintf(" at #%d", e.Index)
	}
	switch {
	case e.Length != 0:
		return fmt.Sprintf("invalid input%s: %s (start=%d length=%d)", where, e.Reason, e.Start, e.Length)
	case e.End != 0 || e.Start != 0:
		return fmt.Sprintf("invalid input%s: %s (start=%d end=%d)", where, e.Reason, e.Start, e.End)
	default:
		return fmt.Sprintf("invalid input%s: %s", where, e.Reason)
	}
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
