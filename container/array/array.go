// Package array contains the implementation of a fixed-length array of values.
//
// Go generics cannot parameterize a type on a constant length, the length of
// an Array is therefore chosen when it is constructed and never changes after.
// All accesses are bounds-checked and report out-of-range indexes to the
// program instead of panicking.
package array

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfBounds is returned when an index is outside of the array.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// Array is a fixed-length sequence of values of type T.
//
// The zero-value is a valid array of length zero.
type Array[T any] struct{ data []T }

// New constructs an array holding a copy of the values passed as arguments.
func New[T any](values ...T) *Array[T] {
	return &Array[T]{data: append(make([]T, 0, len(values)), values...)}
}

// Make constructs an array of length n where all elements are the zero-value
// of T.
func Make[T any](n int) *Array[T] {
	return &Array[T]{data: make([]T, n)}
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int { return len(a.data) }

// IsEmpty returns true if the array has a length of zero.
func (a *Array[T]) IsEmpty() bool { return len(a.data) == 0 }

// Get returns the element at index i, and a boolean indicating whether i was
// in range.
func (a *Array[T]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= len(a.data) {
		return value, false
	}
	return a.data[i], true
}

// Ref returns a pointer to the element at index i, which can be used to modify
// the array in place. The pointer is nil if i was out of range.
func (a *Array[T]) Ref(i int) (*T, bool) {
	if i < 0 || i >= len(a.data) {
		return nil, false
	}
	return &a.data[i], true
}

// Set assigns value to the element at index i.
func (a *Array[T]) Set(i int, value T) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("%w: index=%d length=%d", ErrIndexOutOfBounds, i, len(a.data))
	}
	a.data[i] = value
	return nil
}

// Range calls f for each element of the array, in order. If f returns false,
// the iteration is stopped.
func (a *Array[T]) Range(f func(int, T) bool) {
	for i, v := range a.data {
		if !f(i, v) {
			break
		}
	}
}

// RangeRef is like Range but passes pointers to the elements, allowing f to
// modify them.
func (a *Array[T]) RangeRef(f func(int, *T) bool) {
	for i := range a.data {
		if !f(i, &a.data[i]) {
			break
		}
	}
}

// Clone returns a copy of the array. Elements are copied by assignment.
func (a *Array[T]) Clone() *Array[T] { return New(a.data...) }

func (a *Array[T]) String() string {
	values := make([]string, len(a.data))
	for i, v := range a.data {
		values[i] = fmt.Sprint(v)
	}
	return "Array[" + strings.Join(values, " ") + "]"
}
