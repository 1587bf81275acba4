// Package bufferpool implements the fixed-size page cache that sits
// between the on-disk DiskManager and every higher layer of the
// storage core. All public methods serialize on one mutex: the pool
// is small and simple enough that finer-grained locking would only
// buy contention headaches, not throughput, grounded on the teacher's
// single-mutex internal/bufferpool/global_pool.go.
package bufferpool

import (
	"container/list"
	"log/slog"
	"sync"

	"github.com/novacore/relstore/internal/replacer"
	"github.com/novacore/relstore/internal/storage"
)

// Config controls pool construction.
type Config struct {
	PoolSize     int
	ReplacerKind replacer.Kind
	LRUK         int // history depth, only used when ReplacerKind == KindLRUK
}

type pageKey struct {
	fileID uint32
	pageID uint32
}

// BufferPoolManager owns a fixed array of frames and mediates every
// disk access through them. Callers never see a Frame directly —
// FetchPage returns the underlying Page, already pinned.
type BufferPoolManager struct {
	mu sync.Mutex

	disk     storage.DiskManager
	replacer replacer.Replacer

	frames    []*Frame
	freeList  *list.List // of int frame ids, front = next to hand out
	pageTable map[pageKey]int
}

// New constructs a pool of cfg.PoolSize frames backed by disk. Panics
// if PoolSize <= 0: an empty pool can never satisfy a fetch and is a
// fatal misconfiguration, not a recoverable error.
func New(disk storage.DiskManager, cfg Config) *BufferPoolManager {
	if cfg.PoolSize <= 0 {
		panic("bufferpool: PoolSize must be positive")
	}

	bp := &BufferPoolManager{
		disk:      disk,
		replacer:  replacer.New(cfg.ReplacerKind, cfg.LRUK),
		frames:    make([]*Frame, cfg.PoolSize),
		freeList:  list.New(),
		pageTable: make(map[pageKey]int),
	}
	for i := range bp.frames {
		bp.frames[i] = &Frame{}
		bp.freeList.PushBack(i)
	}
	return bp
}

// FetchPage returns the page identified by (fileID, pageID), pinning
// it in the pool. A page already resident is returned directly; a
// miss loads it from disk into an available frame, evicting if
// necessary.
func (bp *BufferPoolManager) FetchPage(fileID, pageID uint32) (*storage.Page, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	key := pageKey{fileID, pageID}
	if idx, ok := bp.pageTable[key]; ok {
		f := bp.frames[idx]
		f.Pin()
		bp.replacer.Pin(idx)
		slog.Debug("bufferpool: fetch hit", "file_id", fileID, "page_id", pageID, "frame", idx)
		return f.Page, nil
	}

	idx, err := bp.getAvailableFrame()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, storage.PageSize)
	if err := bp.disk.ReadPage(fileID, pageID, buf); err != nil {
		bp.freeList.PushFront(idx)
		return nil, err
	}

	f := bp.frames[idx]
	f.Page = storage.NewPage(buf)
	f.PinCount = 0
	f.Dirty = false
	f.Pin()

	bp.pageTable[key] = idx
	bp.replacer.Pin(idx)
	slog.Debug("bufferpool: fetch miss", "file_id", fileID, "page_id", pageID, "frame", idx)
	return f.Page, nil
}

// UnpinPage releases one pin on (fileID, pageID). isDirty, if true,
// marks the frame dirty; it is never used to clear dirty — that only
// happens on flush or eviction write-back. Returns false if the page
// is not resident or already fully unpinned.
func (bp *BufferPoolManager) UnpinPage(fileID, pageID uint32, isDirty bool) bool {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	idx, ok := bp.pageTable[pageKey{fileID, pageID}]
	if !ok {
		return false
	}
	f := bp.frames[idx]
	if f.PinCount == 0 {
		return false
	}

	f.Unpin()
	f.SetDirty(isDirty)
	if f.PinCount == 0 {
		bp.replacer.Unpin(idx)
	}
	return true
}

// FlushPage writes the page's frame back to disk if dirty, regardless
// of pin state, and clears the dirty flag. Returns false if the page
// is not resident.
func (bp *BufferPoolManager) FlushPage(fileID, pageID uint32) (bool, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return bp.flushLocked(fileID, pageID)
}

func (bp *BufferPoolManager) flushLocked(fileID, pageID uint32) (bool, error) {
	idx, ok := bp.pageTable[pageKey{fileID, pageID}]
	if !ok {
		return false, nil
	}
	f := bp.frames[idx]
	if !f.Dirty {
		return true, nil
	}
	if err := bp.disk.WritePage(fileID, pageID, f.Page.Buf); err != nil {
		return false, err
	}
	f.Dirty = false
	return true, nil
}

// FlushAllPages writes back every dirty resident page. The mutex is
// held for the whole pass — every frame the pool owns is stable for
// the duration, matching the fixed checkpoint behavior the spec
// requires rather than a lock-free best-effort sweep.
func (bp *BufferPoolManager) FlushAllPages() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	keys := make([]pageKey, 0, len(bp.pageTable))
	for key := range bp.pageTable {
		keys = append(keys, key)
	}
	for _, key := range keys {
		if _, err := bp.flushLocked(key.fileID, key.pageID); err != nil {
			return err
		}
	}
	return nil
}

// DeletePage removes (fileID, pageID) from the pool, flushing it first
// if dirty. Returns false if the page is currently pinned — a pinned
// page can never be deleted. Deleting a page not resident in the pool
// is a no-op success.
func (bp *BufferPoolManager) DeletePage(fileID, pageID uint32) (bool, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	key := pageKey{fileID, pageID}
	idx, ok := bp.pageTable[key]
	if !ok {
		return true, nil
	}

	f := bp.frames[idx]
	if f.PinCount != 0 {
		return false, nil
	}
	if f.Dirty {
		if err := bp.disk.WritePage(fileID, pageID, f.Page.Buf); err != nil {
			return false, err
		}
	}

	delete(bp.pageTable, key)
	bp.replacer.Remove(idx)
	f.Reset()
	bp.freeList.PushBack(idx)
	return true, nil
}

// DeleteAllPages removes every resident page, flushing dirty ones
// first. Held under one lock acquisition for the same reason as
// FlushAllPages.
func (bp *BufferPoolManager) DeleteAllPages() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	keys := make([]pageKey, 0, len(bp.pageTable))
	for key := range bp.pageTable {
		keys = append(keys, key)
	}

	for _, key := range keys {
		idx := bp.pageTable[key]
		f := bp.frames[idx]
		if f.Dirty {
			if err := bp.disk.WritePage(key.fileID, key.pageID, f.Page.Buf); err != nil {
				return err
			}
		}
		delete(bp.pageTable, key)
		bp.replacer.Remove(idx)
		f.Reset()
		bp.freeList.PushBack(idx)
	}
	return nil
}

// getAvailableFrame returns a frame id ready to receive a new page:
// the free list first, then an evicted replacer victim (writing it
// back first if dirty). Callers must hold bp.mu.
func (bp *BufferPoolManager) getAvailableFrame() (int, error) {
	if el := bp.freeList.Front(); el != nil {
		idx := el.Value.(int)
		bp.freeList.Remove(el)
		return idx, nil
	}

	idx, ok := bp.replacer.Victim()
	if !ok {
		return 0, ErrNoFreeFrame
	}

	f := bp.frames[idx]
	oldKey := pageKey{f.Page.FileID(), f.Page.PageID()}
	if f.Dirty {
		if err := bp.disk.WritePage(oldKey.fileID, oldKey.pageID, f.Page.Buf); err != nil {
			return 0, err
		}
	}
	delete(bp.pageTable, oldKey)
	f.Reset()
	return idx, nil
}
