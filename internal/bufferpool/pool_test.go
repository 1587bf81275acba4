package bufferpool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novacore/relstore/internal/replacer"
	"github.com/novacore/relstore/internal/storage"
)

// countingDisk is an in-memory DiskManager that records every
// WritePage call, used to assert write-back behavior (P3, P10) without
// touching a real filesystem.
type countingDisk struct {
	mu      sync.Mutex
	pages   map[[2]uint32][]byte
	writes  map[[2]uint32]int
	fileIDs map[uint32]bool
}

func newCountingDisk() *countingDisk {
	return &countingDisk{
		pages:   make(map[[2]uint32][]byte),
		writes:  make(map[[2]uint32]int),
		fileIDs: make(map[uint32]bool),
	}
}

func (d *countingDisk) key(fileID, pageID uint32) [2]uint32 { return [2]uint32{fileID, pageID} }

func (d *countingDisk) ReadPage(fileID, pageID uint32, dst []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if buf, ok := d.pages[d.key(fileID, pageID)]; ok {
		copy(dst, buf)
		return nil
	}
	for i := range dst {
		dst[i] = 0
	}
	return nil
}

func (d *countingDisk) WritePage(fileID, pageID uint32, src []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	buf := make([]byte, len(src))
	copy(buf, src)
	d.pages[d.key(fileID, pageID)] = buf
	d.writes[d.key(fileID, pageID)]++
	return nil
}

func (d *countingDisk) GetFileName(fileID uint32) string { return "mem" }

func (d *countingDisk) writeCount(fileID, pageID uint32) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writes[d.key(fileID, pageID)]
}

func lruPool(disk storage.DiskManager, size int) *BufferPoolManager {
	return New(disk, Config{PoolSize: size, ReplacerKind: replacer.KindLRU})
}

// Seed scenario 1: pool size 2, LRU.
func TestFetchUnpinFetch_EvictsLeastRecentlyUnpinned(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 2)

	_, err := bp.FetchPage(0, 1)
	require.NoError(t, err)
	_, err = bp.FetchPage(0, 2)
	require.NoError(t, err)

	require.True(t, bp.UnpinPage(0, 1, false))

	_, err = bp.FetchPage(0, 3)
	require.NoError(t, err)

	_, ok := bp.pageTable[pageKey{0, 1}]
	require.False(t, ok, "(0,1) must have been evicted")

	idx2, ok := bp.pageTable[pageKey{0, 2}]
	require.True(t, ok, "(0,2) must still be resident")
	require.True(t, bp.frames[idx2].InUse(), "(0,2) must still be pinned")
}

// Seed scenario 2: dirty eviction, pool size 1.
func TestDirtyEviction_FlushesExactlyOnceAndReadsBackMutation(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	page, err := bp.FetchPage(0, 1)
	require.NoError(t, err)
	page.Body()[0] = 0xAB

	require.True(t, bp.UnpinPage(0, 1, true))

	_, err = bp.FetchPage(0, 2)
	require.NoError(t, err)

	require.Equal(t, 1, disk.writeCount(0, 1))

	require.True(t, bp.UnpinPage(0, 2, false))
	page, err = bp.FetchPage(0, 1)
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), page.Body()[0])
}

// P1/P2: a pinned frame is never chosen as a victim.
func TestPinnedFrameNeverEvicted(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	_, err := bp.FetchPage(0, 1)
	require.NoError(t, err)

	_, err = bp.FetchPage(0, 2)
	require.ErrorIs(t, err, ErrNoFreeFrame)
}

// P10: flushing twice in a row writes at most once.
func TestFlushPageIsIdempotent(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	_, err := bp.FetchPage(0, 1)
	require.NoError(t, err)
	require.True(t, bp.UnpinPage(0, 1, true))

	ok, err := bp.FlushPage(0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = bp.FlushPage(0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 1, disk.writeCount(0, 1))
}

func TestUnpinPage_UnknownPageReturnsFalse(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)
	require.False(t, bp.UnpinPage(0, 1, false))
}

func TestUnpinPage_AlreadyUnpinnedReturnsFalse(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	_, err := bp.FetchPage(0, 1)
	require.NoError(t, err)
	require.True(t, bp.UnpinPage(0, 1, false))
	require.False(t, bp.UnpinPage(0, 1, false))
}

func TestDeletePage_RefusesWhilePinned(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	_, err := bp.FetchPage(0, 1)
	require.NoError(t, err)

	ok, err := bp.DeletePage(0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeletePage_FlushesDirtyThenFreesFrame(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	page, err := bp.FetchPage(0, 1)
	require.NoError(t, err)
	page.Body()[0] = 1
	require.True(t, bp.UnpinPage(0, 1, true))

	ok, err := bp.DeletePage(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, disk.writeCount(0, 1))

	// frame is free again: a fresh fetch must not return ErrNoFreeFrame.
	_, err = bp.FetchPage(0, 2)
	require.NoError(t, err)
}

func TestDeletePage_UnknownPageIsNoopSuccess(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 1)

	ok, err := bp.DeletePage(0, 99)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFlushAllPages_WritesEveryDirtyResidentPage(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 3)

	for pid := uint32(1); pid <= 3; pid++ {
		page, err := bp.FetchPage(0, pid)
		require.NoError(t, err)
		page.Body()[0] = byte(pid)
		require.True(t, bp.UnpinPage(0, pid, true))
	}

	require.NoError(t, bp.FlushAllPages())
	for pid := uint32(1); pid <= 3; pid++ {
		require.Equal(t, 1, disk.writeCount(0, pid))
	}
}

func TestDeleteAllPages_ReturnsEveryFrameToFreeList(t *testing.T) {
	disk := newCountingDisk()
	bp := lruPool(disk, 2)

	for pid := uint32(1); pid <= 2; pid++ {
		_, err := bp.FetchPage(0, pid)
		require.NoError(t, err)
		require.True(t, bp.UnpinPage(0, pid, false))
	}

	require.NoError(t, bp.DeleteAllPages())
	require.Equal(t, 0, len(bp.pageTable))
	require.Equal(t, 2, bp.freeList.Len())
}

func TestNew_PanicsOnNonPositivePoolSize(t *testing.T) {
	disk := newCountingDisk()
	require.Panics(t, func() { New(disk, Config{PoolSize: 0, ReplacerKind: replacer.KindLRU}) })
}
