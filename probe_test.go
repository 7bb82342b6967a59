package graveyard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbeFindMissReturnsFalseWithinWindow(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 500; i++ {
		m.Put(i*2, i)
	}
	for i := 0; i < 500; i++ {
		_, ok := m.Get(i*2 + 1)
		require.False(t, ok)
	}
}

func TestProbeFindFirstEmptyWidensSearchDistance(t *testing.T) {
	m := NewMap[int, int](WithSlotsPerBin[int, int](2))
	for i := 0; i < 200; i++ {
		m.Put(i, i)
	}
	// With only 2 slots per bin and 200 entries, some bin's search_distance
	// must have been widened past 1, the value a bin gets when every element
	// preferring it sits in the bin itself.
	widened := false
	for i := 0; i < m.t.physicalBinCount; i++ {
		if m.t.binAt(i).header().distance() > 1 {
			widened = true
			break
		}
	}
	require.True(t, widened)
}

// TestProbeFindFirstEmptyNeverOverlapsNextBin guards against a bin's
// padding lanes (slotsPerBin..groupWidth-1, always empty control bytes)
// being handed out as an insertion target once a bin's real lanes fill up;
// doing so would alias the next bin's slot 0 and silently corrupt it.
func TestProbeFindFirstEmptyNeverOverlapsNextBin(t *testing.T) {
	m := NewMap[int, int](WithSlotsPerBin[int, int](2))
	const n = 3000
	for i := 0; i < n; i++ {
		inserted := m.Put(i, i*1000)
		require.True(t, inserted)
	}
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.True(t, ok, "key %d missing or overwritten", i)
		require.Equal(t, i*1000, v, "key %d corrupted", i)
	}
	require.Equal(t, n, m.Len())
}

func TestBackwardsInsertFuzzStillFindable(t *testing.T) {
	m := NewMap[int, int](WithBackwardsInsertFuzz[int, int]())
	for i := 0; i < 5000; i++ {
		m.Put(i, i*10)
	}
	for i := 0; i < 5000; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i*10, v)
	}
}
