// Package pin provides a thin pin-balance auditor for tests and
// callers that want to assert the pin protocol mechanically rather
// than by inspection. Adapted from the teacher's internal/lock
// RefCount primitive, generalized here to track per-page balance
// instead of a single counter.
package pin

import (
	"sync"

	"github.com/novacore/relstore/internal/bufferpool"
	"github.com/novacore/relstore/internal/storage"
)

// Guard wraps a BufferPoolManager, counting outstanding pins per
// (file_id, page_id) so a caller can assert, at the end of a
// top-level operation, that every FetchPage was matched by exactly
// one UnpinPage (property P1).
type Guard struct {
	bp *bufferpool.BufferPoolManager

	mu      sync.Mutex
	pending map[[2]uint32]int
}

func NewGuard(bp *bufferpool.BufferPoolManager) *Guard {
	return &Guard{bp: bp, pending: make(map[[2]uint32]int)}
}

func (g *Guard) key(fileID, pageID uint32) [2]uint32 { return [2]uint32{fileID, pageID} }

// Fetch pins the page and records the outstanding pin.
func (g *Guard) Fetch(fileID, pageID uint32) (*storage.Page, error) {
	pg, err := g.bp.FetchPage(fileID, pageID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.pending[g.key(fileID, pageID)]++
	g.mu.Unlock()
	return pg, nil
}

// Unpin releases one pin and records the release.
func (g *Guard) Unpin(fileID, pageID uint32, dirty bool) bool {
	ok := g.bp.UnpinPage(fileID, pageID, dirty)
	if ok {
		g.mu.Lock()
		g.pending[g.key(fileID, pageID)]--
		g.mu.Unlock()
	}
	return ok
}

// Balanced reports whether every Fetch has been matched by exactly
// one Unpin.
func (g *Guard) Balanced() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, n := range g.pending {
		if n != 0 {
			return false
		}
	}
	return true
}
