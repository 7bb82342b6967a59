package graveyard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeHandleRoundTrip(t *testing.T) {
	a := NewSet[int]()
	a.Add(7)

	n := a.Extract(7)
	require.False(t, n.Empty())
	require.Equal(t, 7, n.Key())
	require.False(t, a.Contains(7))

	b := NewSet[int]()
	ok := b.Insert(n)
	require.True(t, ok)
	require.True(t, b.Contains(7))
}

func TestNodeHandleInsertIntoTableWithExistingKeyFails(t *testing.T) {
	a := NewMap[int, string]()
	a.Put(1, "a")
	n := a.Extract(1)

	b := NewMap[int, string]()
	b.Put(1, "b")
	ok := b.Insert(n)
	require.False(t, ok)
	v, _ := b.Get(1)
	require.Equal(t, "b", v)
}
