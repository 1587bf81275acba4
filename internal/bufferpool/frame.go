package bufferpool

import "github.com/novacore/relstore/internal/storage"

// Frame is a fixed pool slot that can hold exactly one in-memory Page.
// Frames are allocated once for the lifetime of the pool and reused
// across many (FileID, PageID) pairs.
type Frame struct {
	Page     *storage.Page
	PinCount int32
	Dirty    bool
}

// Pin increments the frame's pin count.
func (f *Frame) Pin() { f.PinCount++ }

// Unpin decrements the frame's pin count. Callers must only invoke this
// when PinCount > 0 — it is a contract violation otherwise, since a
// pin/unpin pair must always be balanced by the caller (spec P1).
func (f *Frame) Unpin() {
	if f.PinCount == 0 {
		panic("bufferpool: Unpin called on frame with zero pin count")
	}
	f.PinCount--
}

// InUse reports whether the frame is currently pinned by anyone.
func (f *Frame) InUse() bool { return f.PinCount > 0 }

// SetDirty is sticky: once true, only a write-back (flush or eviction)
// clears it. Unpin(..., false) must never clear it.
func (f *Frame) SetDirty(dirty bool) {
	if dirty {
		f.Dirty = true
	}
}

// Reset clears the frame immediately before it is reused for a
// different page. Called only by the buffer pool manager, under its
// mutex.
func (f *Frame) Reset() {
	f.Page = nil
	f.PinCount = 0
	f.Dirty = false
}
