package list

import (
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func TestContainer(t *testing.T) {
	l := New[int]()
	c := Adapt(l)

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Size())
	assert.Empty(t, c.Values())

	for _, v := range []int{3, 1, 2} {
		l.InsertAtTail(v)
	}

	assert.False(t, c.Empty())
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []interface{}{3, 1, 2}, c.Values())
	assert.Equal(t, []interface{}{1, 2, 3}, containers.GetSortedValues(c, utils.IntComparator))
	assert.Equal(t, "SinglyLinkedList\n3, 1, 2", c.String())
	assert.Same(t, l, c.List())

	c.Clear()
	assert.True(t, l.IsEmpty())
	l.checkInvariants(t)
}
