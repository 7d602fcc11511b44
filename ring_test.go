package cthreadpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing_FIFOOrder(t *testing.T) {
	r := newRing[int](2)
	for i := 0; i < 5; i++ {
		r.push(i)
	}
	require.Equal(t, 5, r.Len())
	for i := 0; i < 5; i++ {
		v, ok := r.pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	_, ok := r.pop()
	require.False(t, ok)
}

func TestRing_GrowsPastCapacityHint(t *testing.T) {
	r := newRing[int](1)
	require.Equal(t, 2, len(r.buf))
	for i := 0; i < 100; i++ {
		r.push(i)
	}
	require.Equal(t, 100, r.Len())
	for i := 0; i < 100; i++ {
		v, ok := r.pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestRing_GrowPreservesOrderAcrossWraparound(t *testing.T) {
	r := newRing[int](4)
	// fill, drain partially, refill so head/tail wrap, then force growth.
	for i := 0; i < 4; i++ {
		r.push(i)
	}
	_, _ = r.pop()
	_, _ = r.pop()
	r.push(4)
	r.push(5)
	r.push(6) // forces growth with a wrapped buffer

	var got []int
	for {
		v, ok := r.pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{2, 3, 4, 5, 6}, got)
}
