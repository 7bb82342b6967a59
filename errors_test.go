package graveyard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "AllocFailure", AllocFailure.String())
	require.Equal(t, "CapacityExceeded", CapacityExceeded.String())
}

func TestNewCapacityExceededMessage(t *testing.T) {
	err := newCapacityExceeded(1 << 50)
	require.Equal(t, CapacityExceeded, err.Kind)
	require.Contains(t, err.Error(), "CapacityExceeded")
}
