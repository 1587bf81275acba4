package page

import (
	"github.com/novacore/relstore/internal/bitmap"
	"github.com/novacore/relstore/internal/storage"
)

// Handle is the polymorphic view over a page's slot region. Variants
// are chosen at construction time (NaryHandle, PaxHandle) rather than
// through an open inheritance hierarchy — the spec calls for exactly
// two, known in advance.
type Handle interface {
	WriteSlot(slot int, nullmap, data []byte, update bool) error
	ReadSlot(slot int) (nullmap, data []byte, err error)
	Occupied(slot int) bool
	SetOccupied(slot int, v bool)
	FindFirst(start int, want bool) int
}

// Base holds the parts common to every layout: the underlying page,
// the bitmap region, and the slot count. It is embedded by both
// variants and also serves, unembellished, as the "no layout chosen"
// case — its WriteSlot/ReadSlot always fail with ErrEmptyVariant,
// mirroring the abstract base class the spec describes.
type Base struct {
	Page       *storage.Page
	BitmapSize int
	RecPerPage int
}

func (b *Base) bitmapBytes() []byte {
	return b.Page.Body()[:b.BitmapSize]
}

func (b *Base) slotRegion() []byte {
	return b.Page.Body()[b.BitmapSize:]
}

// Occupied reports whether slot is currently marked in-use.
func (b *Base) Occupied(slot int) bool {
	return bitmap.Get(b.bitmapBytes(), slot)
}

// SetOccupied sets or clears slot's occupancy bit.
func (b *Base) SetOccupied(slot int, v bool) {
	bitmap.Set(b.bitmapBytes(), slot, v)
}

// FindFirst returns the first slot at or after start whose occupancy
// bit equals want, or RecPerPage if none exists.
func (b *Base) FindFirst(start int, want bool) int {
	return bitmap.FindFirst(b.bitmapBytes(), b.RecPerPage, start, want)
}

// PopCount returns the number of occupied slots.
func (b *Base) PopCount() int {
	return bitmap.PopCount(b.bitmapBytes(), b.RecPerPage)
}

// checkSlotState asserts the occupancy bit matches what the
// requested operation expects: an insert (update=false) requires the
// bit clear, an update (update=true) requires it set.
func (b *Base) checkSlotState(slot int, update bool) error {
	occupied := b.Occupied(slot)
	if update && !occupied {
		return ErrRecordMiss
	}
	if !update && occupied {
		return ErrRecordExists
	}
	return nil
}

func (b *Base) WriteSlot(slot int, nullmap, data []byte, update bool) error {
	return ErrEmptyVariant
}

func (b *Base) ReadSlot(slot int) ([]byte, []byte, error) {
	return nil, nil, ErrEmptyVariant
}
