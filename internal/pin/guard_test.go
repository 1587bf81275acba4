package pin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novacore/relstore/internal/bufferpool"
	"github.com/novacore/relstore/internal/replacer"
	"github.com/novacore/relstore/internal/storage"
)

type noopDisk struct{}

func (noopDisk) ReadPage(fileID, pageID uint32, dst []byte) error { return nil }
func (noopDisk) WritePage(fileID, pageID uint32, src []byte) error { return nil }
func (noopDisk) GetFileName(fileID uint32) string                  { return "mem" }

var _ storage.DiskManager = noopDisk{}

// P1: pin balance — fetch/unpin pairs net to zero.
func TestGuard_BalancedAfterMatchedFetchUnpin(t *testing.T) {
	bp := bufferpool.New(noopDisk{}, bufferpool.Config{PoolSize: 2, ReplacerKind: replacer.KindLRU})
	g := NewGuard(bp)

	_, err := g.Fetch(0, 1)
	require.NoError(t, err)
	require.False(t, g.Balanced())

	require.True(t, g.Unpin(0, 1, false))
	require.True(t, g.Balanced())
}

func TestGuard_UnbalancedWhileFetchOutstanding(t *testing.T) {
	bp := bufferpool.New(noopDisk{}, bufferpool.Config{PoolSize: 2, ReplacerKind: replacer.KindLRU})
	g := NewGuard(bp)

	_, err := g.Fetch(0, 1)
	require.NoError(t, err)
	_, err = g.Fetch(0, 2)
	require.NoError(t, err)
	require.False(t, g.Balanced())

	require.True(t, g.Unpin(0, 1, false))
	require.False(t, g.Balanced())
	require.True(t, g.Unpin(0, 2, false))
	require.True(t, g.Balanced())
}
