package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.Equal(t, 0, Size(0))
	require.Equal(t, 1, Size(1))
	require.Equal(t, 1, Size(8))
	require.Equal(t, 2, Size(9))
}

func TestSetGet(t *testing.T) {
	b := make([]byte, Size(10))
	require.False(t, Get(b, 3))
	Set(b, 3, true)
	require.True(t, Get(b, 3))
	Set(b, 3, false)
	require.False(t, Get(b, 3))
}

func TestPopCount(t *testing.T) {
	b := make([]byte, Size(16))
	for _, i := range []int{0, 1, 5, 9, 15} {
		Set(b, i, true)
	}
	require.Equal(t, 5, PopCount(b, 16))
	require.Equal(t, 3, PopCount(b, 6))
}

func TestFindFirst(t *testing.T) {
	b := make([]byte, Size(8))
	Set(b, 2, true)
	Set(b, 5, true)

	require.Equal(t, 2, FindFirst(b, 8, 0, true))
	require.Equal(t, 5, FindFirst(b, 8, 3, true))
	require.Equal(t, 8, FindFirst(b, 8, 6, true))

	require.Equal(t, 0, FindFirst(b, 8, 0, false))
	require.Equal(t, 3, FindFirst(b, 8, 3, false))
}
