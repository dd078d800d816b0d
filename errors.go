package arraylist

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")

	// ErrNoCurrent is returned by Iterator.Remove when Next has not produced
	// an element since the last removal.
	ErrNoCurrent = errors.New("arraylist: iterator has no current element")
)

// IndexError describes an index outside the valid range of an operation.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func newIndexError(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Length: length}
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arraylist: %s: index %d out of range for length %d", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
