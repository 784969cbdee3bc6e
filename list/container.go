package list

import "github.com/emirpasic/gods/containers"

// Container adapts a List to the containers.Container interface of the
// github.com/emirpasic/gods package, so lists can be passed to code written
// against gods containers (for example containers.GetSortedValues).
//
// The adapter does not copy the list, changes made through either value are
// visible in the other.
type Container[T any] struct{ list *List[T] }

var _ containers.Container = Container[int]{}

// Adapt returns a Container backed by list.
func Adapt[T any](list *List[T]) Container[T] { return Container[T]{list: list} }

// Empty returns true if the list has no elements.
func (c Container[T]) Empty() bool { return c.list.IsEmpty() }

// Size returns the number of elements in the list.
func (c Container[T]) Size() int { return c.list.Len() }

// Clear removes all elements from the list.
func (c Container[T]) Clear() { c.list.Clear() }

// Values returns the elements of the list, from front to back.
func (c Container[T]) Values() []interface{} {
	values := make([]interface{}, 0, c.list.Len())
	c.list.Range(func(_ int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

func (c Container[T]) String() string { return c.list.String() }

// List returns the list that c is backed by.
func (c Container[T]) List() *List[T] { return c.list }
