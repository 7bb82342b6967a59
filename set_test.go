package graveyard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasic(t *testing.T) {
	s := NewSet[string]()
	require.True(t, s.Add("a"))
	require.False(t, s.Add("a"))
	require.True(t, s.Contains("a"))
	require.False(t, s.Contains("b"))

	require.True(t, s.Delete("a"))
	require.False(t, s.Contains("a"))
}

func TestSetRange(t *testing.T) {
	s := NewSet[int]()
	for i := 0; i < 1000; i++ {
		s.Add(i)
	}
	count := 0
	s.Range(func(k int) bool {
		count++
		return true
	})
	require.Equal(t, 1000, count)
}

func TestSetMerge(t *testing.T) {
	a := NewSet[int]()
	b := NewSet[int]()
	for i := 0; i < 50; i++ {
		a.Add(i)
	}
	for i := 25; i < 75; i++ {
		b.Add(i)
	}
	a.Merge(b)
	require.Equal(t, 75, a.Len())
}
