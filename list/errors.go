package list

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is returned when an index passed to a list
	// operation is outside of the range that the operation accepts. The list
	// is never modified when this error is returned.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmptyList is returned when an operation expected to find elements in
	// the list but found it empty.
	ErrEmptyList = errors.New("list is empty")

	// ErrInvalidIndex is returned when walking the list failed to reach the
	// node at a position that passed the bounds check. It indicates a
	// corrupted chain.
	ErrInvalidIndex = errors.New("invalid index")
)

func outOfBounds(index, size int) error {
	return fmt.Errorf("%w: index=%d length=%d", ErrIndexOutOfBounds, index, size)
}

func invalidIndex(index int) error {
	return fmt.Errorf("%w: no node found at index=%d", ErrInvalidIndex, index)
}
