package graveyard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBin(t *testing.T, values []ctrl) []ctrl {
	t.Helper()
	c := make([]ctrl, groupWidth)
	for i := range c {
		c[i] = emptyCtrl()
	}
	copy(c, values)
	return c
}

func TestMatchH2(t *testing.T) {
	c := newTestBin(t, []ctrl{
		fullCtrl(5, false),
		fullCtrl(9, false),
		fullCtrl(5, true),
		emptyCtrl(),
	})

	m := matchH2(c, 5)
	require.False(t, m.IsEmpty())
	require.Equal(t, 2, m.Count())
	require.Equal(t, 0, m.Next())
	m = m.Clear(0)
	require.Equal(t, 2, m.Next())

	m = matchH2(c, 9)
	require.Equal(t, 1, m.Count())
	require.Equal(t, 1, m.Next())

	m = matchH2(c, 1)
	require.True(t, m.IsEmpty())
}

func TestMatchEmptyAndFull(t *testing.T) {
	c := newTestBin(t, []ctrl{
		fullCtrl(1, false),
		emptyCtrl(),
		fullCtrl(2, false),
	})

	full := matchFull(c)
	require.Equal(t, 2, full.Count())

	empty := matchEmpty(c)
	require.Equal(t, groupWidth-2, empty.Count())
	require.True(t, empty.Next() == 1 || empty.Next() == 3)
}

func TestBitMaskLastAndClear(t *testing.T) {
	c := newTestBin(t, []ctrl{
		fullCtrl(1, false),
		fullCtrl(1, false),
		emptyCtrl(),
		fullCtrl(1, false),
	})
	m := matchFull(c)
	require.Equal(t, 3, m.Count())
	require.Equal(t, 3, m.Last())
	m = m.Clear(3)
	require.Equal(t, 1, m.Last())
}

func TestCountLeadingEmpty(t *testing.T) {
	allEmpty := newTestBin(t, nil)
	require.Equal(t, groupWidth, countLeadingEmpty(allEmpty))

	c := newTestBin(t, []ctrl{emptyCtrl(), emptyCtrl(), fullCtrl(3, false)})
	require.Equal(t, 2, countLeadingEmpty(c))
}

// maskToBinSize must hide the padding lanes (>= binSize) that exist because
// a bin's control region is always groupWidth bytes wide. Those lanes are
// permanently empty, but they are not real slots: handing one out as an
// insertion target would overlap the next bin's slots.
func TestMaskToBinSizeHidesPaddingLanes(t *testing.T) {
	allEmpty := newTestBin(t, nil)
	m := matchEmpty(allEmpty)
	require.Equal(t, groupWidth, m.Count())

	masked := maskToBinSize(m, 14)
	require.Equal(t, 14, masked.Count())
	for !masked.IsEmpty() {
		lane := masked.Next()
		require.Less(t, lane, 14)
		masked = masked.Clear(lane)
	}

	require.Equal(t, groupWidth, maskToBinSize(m, groupWidth).Count())
	require.Equal(t, 0, maskToBinSize(m, 0).Count())
	require.Equal(t, 8, maskToBinSize(m, 8).Count())
	require.Equal(t, 2, maskToBinSize(m, 2).Count())
}
