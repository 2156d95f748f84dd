package channel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBufferWrapAround(t *testing.T) {
	r := NewRingBuffer[int](3)
	require.Equal(t, 3, r.Cap())
	require.Equal(t, 0, r.Len())

	// Fill, drain partially, refill across the wrap boundary a few times.
	next := 0
	expect := 0
	for range 5 {
		for r.Len() < r.Cap() {
			r.Push(next)
			next++
		}
		for range 2 {
			assert.Equal(t, expect, r.Front())
			r.Pop()
			expect++
		}
	}
	require.Equal(t, 1, r.Len())
	assert.Equal(t, expect, r.Front())
}

func TestRingBufferClearsPoppedSlots(t *testing.T) {
	r := NewRingBuffer[*int](2)
	v := new(int)
	r.Push(v)
	r.Pop()
	// The vacated slot must not pin the old referent.
	assert.Nil(t, r.buf[0])
}

func TestListBufferGrowsAndCompacts(t *testing.T) {
	l := &listBuffer[int]{}
	require.Equal(t, math.MaxInt, l.Cap())

	const n = 1000
	for i := range n {
		l.Push(i)
	}
	require.Equal(t, n, l.Len())

	for i := range n {
		require.Equal(t, i, l.Front())
		l.Pop()
	}
	require.Equal(t, 0, l.Len())
	// Compaction must have reclaimed the dead prefix.
	assert.Less(t, l.head, n)
}

func TestListBufferInterleaved(t *testing.T) {
	l := &listBuffer[string]{}
	l.Push("a")
	l.Push("b")
	assert.Equal(t, "a", l.Front())
	l.Pop()
	l.Push("c")
	assert.Equal(t, "b", l.Front())
	l.Pop()
	assert.Equal(t, "c", l.Front())
	l.Pop()
	assert.Equal(t, 0, l.Len())
}
