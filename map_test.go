package graveyard

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func (m *Map[K, V]) toBuiltinMap() map[K]V {
	r := make(map[K]V)
	m.Range(func(k K, v V) bool {
		r[k] = v
		return true
	})
	return r
}

func TestMapBasic(t *testing.T) {
	m := NewMap[string, int]()
	require.Equal(t, 0, m.Len())

	inserted := m.Put("a", 1)
	require.True(t, inserted)
	inserted = m.Put("a", 2)
	require.False(t, inserted)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = m.Get("missing")
	require.False(t, ok)

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	require.Equal(t, 0, m.Len())
}

func TestMapEmplaceLeavesExisting(t *testing.T) {
	m := NewMap[string, int]()
	v, inserted := m.Emplace("k", 1)
	require.True(t, inserted)
	require.Equal(t, 1, v)

	v, inserted = m.Emplace("k", 2)
	require.False(t, inserted)
	require.Equal(t, 1, v)
}

func TestMapRandom(t *testing.T) {
	m := NewMap[int, int]()
	want := make(map[int]int)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		k := rng.Intn(5000)
		v := rng.Int()
		switch rng.Intn(4) {
		case 0, 1:
			m.Put(k, v)
			want[k] = v
		default:
			delete(want, k)
			m.Delete(k)
		}

		if got, ok := m.Get(k); ok {
			wv, wok := want[k]
			require.True(t, wok)
			require.Equal(t, wv, got)
		} else {
			_, wok := want[k]
			require.False(t, wok)
		}
	}

	require.Equal(t, len(want), m.Len())
	require.Equal(t, want, m.toBuiltinMap())
}

func TestMapIterationVisitsEveryElement(t *testing.T) {
	m := NewMap[int, int]()
	const n = 5000
	for i := 0; i < n; i++ {
		m.Put(i, i*i)
	}

	seen := make(map[int]bool)
	m.Range(func(k, v int) bool {
		require.Equal(t, k*k, v)
		seen[k] = true
		return true
	})
	require.Len(t, seen, n)
}

func TestMapClearKeepsSmallAllocation(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}
	capBefore := m.Capacity()
	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Equal(t, capBefore, m.Capacity())

	m.Put(1, 1)
	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestMapClearReleasesLargeAllocation(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 10000; i++ {
		m.Put(i, i)
	}
	require.GreaterOrEqual(t, m.Capacity(), clearSmallThreshold)
	m.Clear()
	require.Equal(t, 0, m.Capacity())
	require.Equal(t, 0, m.Len())
}

func TestMapReserveAvoidsRehash(t *testing.T) {
	rec := &Recorder{}
	m := NewMap[int, int](WithTelemetry[int, int](rec))
	m.Reserve(10000)
	// Reserve's own resize is reported; the inserts after it must add none.
	before := rec.RehashCount
	for i := 0; i < 10000; i++ {
		m.Put(i, i)
	}
	require.Equal(t, before, rec.RehashCount)
	require.GreaterOrEqual(t, m.t.growthLeft, 0)
}

func TestMapSwap(t *testing.T) {
	a := NewMap[int, int]()
	a.Put(1, 1)
	b := NewMap[int, int]()
	b.Put(2, 2)

	a.Swap(b)

	_, ok := a.Get(2)
	require.True(t, ok)
	_, ok = b.Get(1)
	require.True(t, ok)
}

func TestMapMerge(t *testing.T) {
	a := NewMap[int, int]()
	b := NewMap[int, int]()
	for i := 0; i < 100; i++ {
		a.Put(i, i)
	}
	for i := 50; i < 150; i++ {
		b.Put(i, i*10)
	}

	a.Merge(b)

	for i := 0; i < 50; i++ {
		v, ok := a.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	for i := 50; i < 150; i++ {
		_, ok := a.Get(i)
		require.True(t, ok)
	}
	require.Equal(t, 150, a.Len())
}

func TestMapExtractAndInsert(t *testing.T) {
	a := NewMap[string, int]()
	a.Put("x", 10)

	n := a.Extract("x")
	require.False(t, n.Empty())
	require.False(t, a.Contains("x"))

	b := NewMap[string, int]()
	ok := b.Insert(n)
	require.True(t, ok)
	v, found := b.Get("x")
	require.True(t, found)
	require.Equal(t, 10, v)
}

func TestMapNodeHandleEmpty(t *testing.T) {
	a := NewMap[string, int]()
	n := a.Extract("does-not-exist")
	require.True(t, n.Empty())
	require.Panics(t, func() { n.Key() })
}

func TestMapDistinctStringKeys(t *testing.T) {
	m := NewMap[string, int]()
	const n = 50000
	for i := 0; i < n; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i += 997 {
		v, ok := m.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMapLoadFactorNeverExceedsOne(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 100000; i++ {
		m.Put(i, i)
		require.LessOrEqual(t, m.LoadFactor(), 1.0)
	}
}

func sortedKeys(m *Map[int, int]) []int {
	var ks []int
	m.Range(func(k, v int) bool {
		ks = append(ks, k)
		return true
	})
	sort.Ints(ks)
	return ks
}

func TestMapEraseAt(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 20; i++ {
		m.Put(i, i*i)
	}

	it := m.Iterator()
	target := it.Key()
	m.EraseAt(it)

	require.Equal(t, 19, m.Len())
	_, ok := m.Get(target)
	require.False(t, ok)

	// Erasing an already-invalid iterator is a no-op, not a panic.
	require.NotPanics(t, func() { m.EraseAt(it) })
}

func TestMapEraseRangeToEnd(t *testing.T) {
	m := NewMap[int, int]()
	const n = 200
	for i := 0; i < n; i++ {
		m.Put(i, i)
	}

	var kept []int
	it := m.Iterator()
	const stopAfter = 50
	for i := 0; i < stopAfter && it.Valid(); i++ {
		kept = append(kept, it.Key())
		it.Next()
	}

	end := m.t.endIterator()
	returned := m.EraseRange(it, end)
	require.False(t, returned.Valid())

	require.Equal(t, len(kept), m.Len())
	for _, k := range kept {
		_, ok := m.Get(k)
		require.True(t, ok)
	}
}

func TestMapEraseRangeEmptyWhenFromEqualsTo(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}
	it := m.Iterator()
	returned := m.EraseRange(it, it)
	require.Equal(t, 10, m.Len())
	require.Equal(t, it.Key(), returned.Key())
}

func TestMapAllKeysSurviveManyRehashes(t *testing.T) {
	m := NewMap[int, int]()
	for round := 0; round < 5; round++ {
		for i := 0; i < 2000; i++ {
			m.Put(round*10000+i, i)
		}
	}
	ks := sortedKeys(m)
	require.Len(t, ks, 10000)
}
