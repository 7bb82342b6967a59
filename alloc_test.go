package graveyard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAllocatorProducesCorrectLengths(t *testing.T) {
	var a defaultAllocator[int, string]
	slots := a.AllocSlots(10)
	require.Len(t, slots, 10)
	ctrls := a.AllocControls(16)
	require.Len(t, ctrls, 16)

	a.FreeSlots(slots)
	a.FreeControls(ctrls)
}
