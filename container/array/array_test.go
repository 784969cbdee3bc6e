package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, *Array[int])
	}{
		{
			scenario: "the length of an array is the number of values it was created with",
			function: testArrayLen,
		},

		{
			scenario: "getting elements reports whether the index is in range",
			function: testArrayGet,
		},

		{
			scenario: "elements can be modified through references",
			function: testArrayRef,
		},

		{
			scenario: "setting elements out of range fails without modifying the array",
			function: testArraySet,
		},

		{
			scenario: "ranging over the array presents elements in order",
			function: testArrayRange,
		},

		{
			scenario: "ranging over references modifies the elements in place",
			function: testArrayRangeRef,
		},

		{
			scenario: "clones are independent copies of the array",
			function: testArrayClone,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			test.function(t, New(1, 2, 3))
		})
	}
}

func testArrayLen(t *testing.T, a *Array[int]) {
	assert.Equal(t, 3, a.Len())
	assert.False(t, a.IsEmpty())

	empty := New[int]()
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.IsEmpty())
}

func testArrayGet(t *testing.T, a *Array[int]) {
	for i, want := range []int{1, 2, 3} {
		v, ok := a.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := a.Get(3)
	assert.False(t, ok)
	_, ok = a.Get(-1)
	assert.False(t, ok)
}

func testArrayRef(t *testing.T, a *Array[int]) {
	p, ok := a.Ref(1)
	require.True(t, ok)
	*p = 42

	v, _ := a.Get(1)
	assert.Equal(t, 42, v)

	p, ok = a.Ref(3)
	assert.False(t, ok)
	assert.Nil(t, p)
}

func testArraySet(t *testing.T, a *Array[int]) {
	require.NoError(t, a.Set(1, 42))
	v, _ := a.Get(1)
	assert.Equal(t, 42, v)

	assert.ErrorIs(t, a.Set(3, 99), ErrIndexOutOfBounds)
	assert.ErrorIs(t, a.Set(-1, 99), ErrIndexOutOfBounds)
	assert.Equal(t, "Array[1 42 3]", a.String())
}

func testArrayRange(t *testing.T, a *Array[int]) {
	var seen []int
	a.Range(func(_ int, v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3}, seen)

	seen = seen[:0]
	a.Range(func(i int, v int) bool {
		seen = append(seen, v)
		return i == 0
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func testArrayRangeRef(t *testing.T, a *Array[int]) {
	a.RangeRef(func(_ int, v *int) bool {
		*v += 10
		return true
	})
	assert.Equal(t, "Array[11 12 13]", a.String())
}

func testArrayClone(t *testing.T, a *Array[int]) {
	c := a.Clone()
	require.NoError(t, a.Set(0, 100))

	v, _ := c.Get(0)
	assert.Equal(t, 1, v)
	assert.Equal(t, "Array[1 2 3]", c.String())
}

func TestArrayMake(t *testing.T) {
	a := Make[int](3)
	assert.Equal(t, "Array[0 0 0]", a.String())

	var zero Array[string]
	assert.True(t, zero.IsEmpty())
	_, ok := zero.Get(0)
	assert.False(t, ok)
}

func TestArrayNewCopiesValues(t *testing.T) {
	values := []int{1, 2, 3}
	a := New(values...)
	values[0] = 100

	v, _ := a.Get(0)
	assert.Equal(t, 1, v)
}
