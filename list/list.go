// Package list contains the implementation of a type-safe, singly-linked list.
//
// The list owns a chain of nodes, one per element. Each node is referenced by
// exactly one pointer: the list's head for the first node, or the next field
// of its predecessor for every other node. Nodes are never exposed to the
// program, which guarantees that no operation can leave a node reachable from
// two places, or keep a detached node linked to the rest of the chain.
//
// The zero-value of List is a valid empty list:
//
//	l := list.List[string]{}
//	l.InsertAtTail("B")
//	l.InsertAtHead("A")
//	l.InsertAtTail("C")
//
//	for i := 0; i < l.Len(); i++ {
//		v, _ := l.Get(i)
//		...
//	}
//
// The list does not cache a pointer to its last node, operations on the tail
// or at arbitrary positions walk the chain from the head and run in O(n).
//
// Lists are not safe to use concurrently from multiple goroutines.
package list

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly-linked list of values of type T.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *node[T]
	size int
}

// New constructs a new empty list.
func New[T any]() *List[T] { return new(List[T]) }

// Len returns the number of elements in the list.
//
// Complexity: O(1)
func (list *List[T]) Len() int { return list.size }

// IsEmpty returns true if the list contains no elements.
//
// Complexity: O(1)
func (list *List[T]) IsEmpty() bool { return list.size == 0 }

// InsertAtHead inserts value at the front of the list.
//
// Complexity: O(1)
func (list *List[T]) InsertAtHead(value T) {
	list.head = &node[T]{value: value, next: list.head}
	list.size++
}

// InsertAtTail inserts value at the back of the list.
//
// Complexity: O(n)
func (list *List[T]) InsertAtTail(value T) {
	if list.head == nil {
		list.InsertAtHead(value)
		return
	}
	last := list.head
	for last.next != nil {
		last = last.next
	}
	last.next = &node[T]{value: value}
	list.size++
}

// InsertAtIndex inserts value so that it ends up at the given position in the
// list. The index may be equal to the length of the list, in which case the
// value is appended at the back.
//
// The method returns an error wrapping ErrIndexOutOfBounds if index is not in
// the range [0, Len()], the list is left unchanged in that case.
//
// Complexity: O(n)
func (list *List[T]) InsertAtIndex(index int, value T) error {
	if index < 0 || index > list.size {
		return outOfBounds(index, list.size)
	}
	if index == 0 {
		list.InsertAtHead(value)
		return nil
	}
	prev := list.walk(index - 1)
	if prev == nil {
		return invalidIndex(index)
	}
	prev.next = &node[T]{value: value, next: prev.next}
	list.size++
	return nil
}

// RemoveFromHead removes the element at the front of the list and returns it.
// The boolean is false if the list was empty.
//
// Complexity: O(1)
func (list *List[T]) RemoveFromHead() (value T, found bool) {
	head := list.head
	if head == nil {
		return value, false
	}
	list.head = head.next
	list.size--
	return release(head), true
}

// RemoveFromTail removes the element at the back of the list and returns it.
// The boolean is false if the list was empty.
//
// Complexity: O(n)
func (list *List[T]) RemoveFromTail() (value T, found bool) {
	if list.head == nil {
		return value, false
	}
	if list.head.next == nil {
		return list.RemoveFromHead()
	}
	prev := list.head
	for prev.next.next != nil {
		prev = prev.next
	}
	last := prev.next
	prev.next = nil
	list.size--
	return release(last), true
}

// RemoveFromIndex removes the element at the given position in the list and
// returns it.
//
// The method returns an error wrapping ErrIndexOutOfBounds if index is not in
// the range [0, Len()), the list is left unchanged in that case.
//
// Complexity: O(n)
func (list *List[T]) RemoveFromIndex(index int) (value T, err error) {
	if index < 0 || index >= list.size {
		return value, outOfBounds(index, list.size)
	}
	if index == 0 {
		head, found := list.RemoveFromHead()
		if !found {
			return value, ErrEmptyList
		}
		return head, nil
	}
	prev := list.walk(index - 1)
	if prev == nil || prev.next == nil {
		return value, invalidIndex(index)
	}
	removed := prev.next
	prev.next = removed.next
	list.size--
	return release(removed), nil
}

// Reverse reverses the order of elements in the list. No nodes are allocated
// or released, only the links between them are rewritten.
//
// Complexity: O(n)
func (list *List[T]) Reverse() {
	var prev *node[T]
	curr := list.head
	list.head = nil

	for curr != nil {
		next := curr.next
		curr.next = prev
		prev, curr = curr, next
	}

	list.head = prev
}

// Get returns the element at the given position in the list.
//
// The method returns an error wrapping ErrIndexOutOfBounds if index is not in
// the range [0, Len()).
//
// Complexity: O(n)
func (list *List[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= list.size {
		return value, outOfBounds(index, list.size)
	}
	n := list.walk(index)
	if n == nil {
		return value, invalidIndex(index)
	}
	return n.value, nil
}

// Range calls f for each element of the list, from front to back, passing the
// position and value of the element. If f returns false, the iteration is
// stopped.
//
// The list must not be modified by f.
func (list *List[T]) Range(f func(int, T) bool) {
	for i, n := 0, list.head; n != nil; i, n = i+1, n.next {
		if !f(i, n.value) {
			break
		}
	}
}

// Values returns a slice containing the elements of the list, from front to
// back.
func (list *List[T]) Values() []T {
	values := make([]T, 0, list.size)
	for n := list.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Clear removes all elements from the list.
//
// Complexity: O(n)
func (list *List[T]) Clear() {
	for list.head != nil {
		head := list.head
		list.head = head.next
		release(head)
	}
	list.size = 0
}

// String returns a human-readable representation of the list.
func (list *List[T]) String() string {
	values := make([]string, 0, list.size)
	for n := list.head; n != nil; n = n.next {
		values = append(values, fmt.Sprintf("%v", n.value))
	}
	return "SinglyLinkedList\n" + strings.Join(values, ", ")
}

// walk returns the node at the given position, or nil if the chain ends
// before reaching it.
func (list *List[T]) walk(index int) *node[T] {
	n := list.head
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	return n
}

// release detaches n from the chain it was unlinked from and returns its
// value. n must not be referenced by the list anymore.
func release[T any](n *node[T]) T {
	var zero T
	value := n.value
	n.value = zero
	n.next = nil
	return value
}
