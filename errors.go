package sqlprep

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every [*IndexError]
var ErrIndexOutOfRange = errors.New("placeholder index out of range")

// IndexError is returned when a placeholder refers to a value that was not supplied
type IndexError struct {
	// Placeholder is the placeholder text, e.g. "?" or "$3"
	Placeholder string
	// Index is the 1-based position of the missing value
	Index int
	// Count is the number of values supplied
	Count int
	// Offset is the byte offset of the placeholder in the query
	Offset int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf(
		"placeholder %s at offset %d needs value %d but only %d values were given",
		e.Placeholder, e.Offset, e.Index, e.Count,
	)
}

func (e *IndexError) Is(target error) bool {
	if target == ErrIndexOutOfRange {
		return true
	}

	t, ok := target.(*IndexError)
	return ok && *t == *e
}
