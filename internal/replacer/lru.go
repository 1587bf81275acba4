package replacer

import (
	"container/list"
	"sync"
)

// entry is the payload stored in the LRU list: one per tracked frame.
type entry struct {
	frameID   int
	evictable bool
}

// LRUReplacer implements classical LRU: the list is kept in
// most-recently-pinned-first order, and Victim scans from the back (the
// least recently touched end) for the first evictable entry.
//
// Grounded on the teacher's container/list-backed pkg/cache.LRUManager,
// generalized here to track the evictable flag the CLOCK-based pool
// never needed.
type LRUReplacer struct {
	mu    sync.Mutex
	list  *list.List
	index map[int]*list.Element
	size  int // number of evictable entries
}

var _ Replacer = (*LRUReplacer)(nil)

func NewLRUReplacer() *LRUReplacer {
	return &LRUReplacer{
		list:  list.New(),
		index: make(map[int]*list.Element),
	}
}

// Pin moves frameID to the front (most recently used) and marks it
// non-evictable. A frame pinned for the first time is inserted fresh.
func (r *LRUReplacer) Pin(frameID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := r.index[frameID]; ok {
		e := el.Value.(*entry)
		if e.evictable {
			r.size--
		}
		e.evictable = false
		r.list.MoveToFront(el)
		return
	}

	el := r.list.PushFront(&entry{frameID: frameID, evictable: false})
	r.index[frameID] = el
}

// Unpin marks frameID evictable. No-op if frameID is unknown or already
// evictable.
func (r *LRUReplacer) Unpin(frameID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.index[frameID]
	if !ok {
		return
	}
	e := el.Value.(*entry)
	if !e.evictable {
		e.evictable = true
		r.size++
	}
}

// Victim returns the least-recently-touched evictable frame.
func (r *LRUReplacer) Victim() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for el := r.list.Back(); el != nil; el = el.Prev() {
		e := el.Value.(*entry)
		if e.evictable {
			r.list.Remove(el)
			delete(r.index, e.frameID)
			r.size--
			return e.frameID, true
		}
	}
	return 0, false
}

// Remove drops frameID from tracking entirely, whether or not it was
// evictable.
func (r *LRUReplacer) Remove(frameID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.index[frameID]
	if !ok {
		return
	}
	e := el.Value.(*entry)
	if e.evictable {
		r.size--
	}
	r.list.Remove(el)
	delete(r.index, frameID)
}

func (r *LRUReplacer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}
