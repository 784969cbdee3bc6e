// Package dynarray contains the implementation of a growable array of values.
//
// DynamicArray stores its elements in a contiguous slice which grows by
// amortized doubling as values are pushed or inserted. Unlike slices, all
// indexed accesses are bounds-checked and report out-of-range indexes as
// errors or booleans instead of panicking.
package dynarray

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfBounds is returned when an index is outside of the range
// accepted by an operation.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// DynamicArray is a growable sequence of values of type T.
//
// The zero-value is a valid, empty array.
type DynamicArray[T any] struct{ data []T }

// New constructs a new empty array.
func New[T any]() *DynamicArray[T] { return new(DynamicArray[T]) }

// WithCapacity constructs a new empty array with room for at least n elements
// before its storage needs to grow.
func WithCapacity[T any](n int) *DynamicArray[T] {
	return &DynamicArray[T]{data: make([]T, 0, n)}
}

// Len returns the number of elements in the array.
func (a *DynamicArray[T]) Len() int { return len(a.data) }

// IsEmpty returns true if the array contains no elements.
func (a *DynamicArray[T]) IsEmpty() bool { return len(a.data) == 0 }

// Cap returns the number of elements that the array can hold without growing.
func (a *DynamicArray[T]) Cap() int { return cap(a.data) }

// Push appends value at the end of the array.
//
// Complexity: O(1) amortized
func (a *DynamicArray[T]) Push(value T) { a.data = append(a.data, value) }

// Pop removes the last element of the array and returns it. The boolean is
// false if the array was empty.
func (a *DynamicArray[T]) Pop() (value T, ok bool) {
	n := len(a.data) - 1
	if n < 0 {
		return value, false
	}
	value = a.data[n]
	a.data[n] = zero[T]()
	a.data = a.data[:n]
	return value, true
}

// Get returns the element at index i, and a boolean indicating whether i was
// in range.
func (a *DynamicArray[T]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= len(a.data) {
		return value, false
	}
	return a.data[i], true
}

// Ref returns a pointer to the element at index i. The pointer remains valid
// until the array grows or shrinks its storage.
func (a *DynamicArray[T]) Ref(i int) (*T, bool) {
	if i < 0 || i >= len(a.data) {
		return nil, false
	}
	return &a.data[i], true
}

// Set assigns value to the element at index i.
func (a *DynamicArray[T]) Set(i int, value T) error {
	if i < 0 || i >= len(a.data) {
		return outOfBounds(i, len(a.data))
	}
	a.data[i] = value
	return nil
}

// Insert inserts value at index i, shifting the elements at i and after one
// position toward the end. The index may be equal to Len, in which case the
// value is appended.
//
// Complexity: O(n)
func (a *DynamicArray[T]) Insert(i int, value T) error {
	if i < 0 || i > len(a.data) {
		return outOfBounds(i, len(a.data))
	}
	a.data = append(a.data, value)
	copy(a.data[i+1:], a.data[i:])
	a.data[i] = value
	return nil
}

// Remove removes the element at index i and returns it, shifting the elements
// after i one position toward the front.
//
// Complexity: O(n)
func (a *DynamicArray[T]) Remove(i int) (value T, err error) {
	if i < 0 || i >= len(a.data) {
		return value, outOfBounds(i, len(a.data))
	}
	n := len(a.data) - 1
	value = a.data[i]
	copy(a.data[i:], a.data[i+1:])
	a.data[n] = zero[T]()
	a.data = a.data[:n]
	return value, nil
}

// Clear removes all elements from the array, retaining its capacity.
func (a *DynamicArray[T]) Clear() {
	for i := range a.data {
		a.data[i] = zero[T]()
	}
	a.data = a.data[:0]
}

// Reserve grows the capacity of the array so that at least additional more
// elements can be pushed without reallocating.
func (a *DynamicArray[T]) Reserve(additional int) {
	if need := len(a.data) + additional; need > cap(a.data) {
		data := make([]T, len(a.data), need)
		copy(data, a.data)
		a.data = data
	}
}

// ShrinkToFit reduces the capacity of the array to its length.
func (a *DynamicArray[T]) ShrinkToFit() {
	if cap(a.data) > len(a.data) {
		data := make([]T, len(a.data))
		copy(data, a.data)
		a.data = data
	}
}

// Range calls f for each element of the array, in order. If f returns false,
// the iteration is stopped.
func (a *DynamicArray[T]) Range(f func(int, T) bool) {
	for i, v := range a.data {
		if !f(i, v) {
			break
		}
	}
}

// RangeRef is like Range but passes pointers to the elements, allowing f to
// modify them.
func (a *DynamicArray[T]) RangeRef(f func(int, *T) bool) {
	for i := range a.data {
		if !f(i, &a.data[i]) {
			break
		}
	}
}

// Clone returns a copy of the array with a capacity equal to its length.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &DynamicArray[T]{data: data}
}

func (a *DynamicArray[T]) String() string {
	values := make([]string, len(a.data))
	for i, v := range a.data {
		values[i] = fmt.Sprint(v)
	}
	return "DynamicArray[" + strings.Join(values, " ") + "]"
}

func outOfBounds(i, n int) error {
	return fmt.Errorf("%w: index=%d length=%d", ErrIndexOutOfBounds, i, n)
}

func zero[T any]() (v T) { return v }
