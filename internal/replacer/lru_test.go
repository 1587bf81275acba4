package replacer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRUReplacer_VictimOrder(t *testing.T) {
	r := NewLRUReplacer()

	r.Pin(1)
	r.Pin(2)
	r.Pin(3)

	r.Unpin(1)
	r.Unpin(2)
	r.Unpin(3)
	require.Equal(t, 3, r.Size())

	// P9: oldest unpinned evictable frame goes first.
	id, ok := r.Victim()
	require.True(t, ok)
	require.Equal(t, 1, id)
	require.Equal(t, 2, r.Size())

	id, ok = r.Victim()
	require.True(t, ok)
	require.Equal(t, 2, id)

	id, ok = r.Victim()
	require.True(t, ok)
	require.Equal(t, 3, id)

	_, ok = r.Victim()
	require.False(t, ok)
}

func TestLRUReplacer_PinnedFrameNeverVictim(t *testing.T) {
	r := NewLRUReplacer()
	r.Pin(1)
	r.Pin(2)
	r.Unpin(2)

	id, ok := r.Victim()
	require.True(t, ok)
	require.Equal(t, 2, id, "frame 1 is still pinned and must not be evicted")

	_, ok = r.Victim()
	require.False(t, ok)
}

func TestLRUReplacer_ReaccessMovesToFront(t *testing.T) {
	r := NewLRUReplacer()
	r.Pin(1)
	r.Pin(2)
	r.Unpin(1)
	r.Unpin(2)

	// Re-pin 1 then unpin again: 1 is now the most recently touched, so 2
	// (seed scenario 1's analog) should be evicted first.
	r.Pin(1)
	r.Unpin(1)

	id, ok := r.Victim()
	require.True(t, ok)
	require.Equal(t, 2, id)
}

func TestLRUReplacer_UnpinUnknownFrameIsNoop(t *testing.T) {
	r := NewLRUReplacer()
	r.Unpin(42)
	require.Equal(t, 0, r.Size())
}

func TestLRUReplacer_RemoveDropsEvictableFrame(t *testing.T) {
	r := NewLRUReplacer()
	r.Pin(1)
	r.Unpin(1)
	require.Equal(t, 1, r.Size())

	r.Remove(1)
	require.Equal(t, 0, r.Size())
	_, ok := r.Victim()
	require.False(t, ok)
}

func TestLRUReplacer_RemoveUnknownFrameIsNoop(t *testing.T) {
	r := NewLRUReplacer()
	r.Remove(7)
	require.Equal(t, 0, r.Size())
}
