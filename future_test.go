package cthreadpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFutureSlab_AllocateReleaseReuse(t *testing.T) {
	s := newFutureSlab(2)
	a := s.allocate()
	b := s.allocate()
	require.NotEqual(t, a, b)

	s.store(a, "result-a")
	g := s.lookup(a)
	g.Wait()
	v := s.resultLocked(a)
	g.Done()
	require.Equal(t, "result-a", v)
	s.release(a)

	// releasing a brings the free stack back to covering every
	// outstanding slot except b, so the next allocate recycles a.
	c := s.allocate()
	require.Equal(t, a, c)
	_ = b
}

func TestFutureSlab_GrowsPastInitialCapacity(t *testing.T) {
	s := newFutureSlab(1)
	indices := make([]int, 10)
	for i := range indices {
		indices[i] = s.allocate()
	}
	seen := make(map[int]bool)
	for _, idx := range indices {
		require.False(t, seen[idx], "duplicate index %d", idx)
		seen[idx] = true
	}
}

func TestFutureSlab_LookupInvalidIndexPanics(t *testing.T) {
	s := newFutureSlab(2)
	require.PanicsWithValue(t, ErrFutureNotFound, func() {
		s.lookup(0)
	})
	require.PanicsWithValue(t, ErrFutureNotFound, func() {
		s.lookup(-1)
	})
	require.PanicsWithValue(t, ErrFutureNotFound, func() {
		s.lookup(999)
	})
}

func TestFutureSlab_CoarseCompactionOnFullRelease(t *testing.T) {
	s := newFutureSlab(2)
	a := s.allocate()
	b := s.allocate()
	s.store(a, 1)
	s.store(b, 2)
	s.release(a)
	s.release(b)
	require.Equal(t, 0, s.highWater)
	require.Equal(t, 0, s.freeTop)
}
