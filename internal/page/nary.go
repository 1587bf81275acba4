package page

import "github.com/novacore/relstore/internal/storage"

// NaryHandle lays slots out row-major: each slot is a contiguous
// [nullmap | data] span, one after another through the slot region.
type NaryHandle struct {
	Base
	NullmapSize int
	RecSize     int
}

var _ Handle = (*NaryHandle)(nil)

// NewNaryHandle constructs a handle over p with the given table sizing.
func NewNaryHandle(p *storage.Page, bitmapSize, recPerPage, nullmapSize, recSize int) *NaryHandle {
	return &NaryHandle{
		Base:        Base{Page: p, BitmapSize: bitmapSize, RecPerPage: recPerPage},
		NullmapSize: nullmapSize,
		RecSize:     recSize,
	}
}

func (h *NaryHandle) slotOffset(slot int) int {
	return slot * (h.NullmapSize + h.RecSize)
}

// WriteSlot copies nullmap and data into slot s's contiguous span.
// update selects insert-precondition (bit clear) vs update-precondition
// (bit set); it does not itself flip the occupancy bit — callers
// (TableHandle) own that.
func (h *NaryHandle) WriteSlot(slot int, nullmap, data []byte, update bool) error {
	if err := h.checkSlotState(slot, update); err != nil {
		return err
	}
	off := h.slotOffset(slot)
	region := h.slotRegion()
	copy(region[off:off+h.NullmapSize], nullmap)
	copy(region[off+h.NullmapSize:off+h.NullmapSize+h.RecSize], data)
	return nil
}

// ReadSlot returns copies of slot s's null-map and data bytes.
func (h *NaryHandle) ReadSlot(slot int) ([]byte, []byte, error) {
	if !h.Occupied(slot) {
		return nil, nil, ErrRecordMiss
	}
	off := h.slotOffset(slot)
	region := h.slotRegion()

	nullmap := make([]byte, h.NullmapSize)
	copy(nullmap, region[off:off+h.NullmapSize])
	data := make([]byte, h.RecSize)
	copy(data, region[off+h.NullmapSize:off+h.NullmapSize+h.RecSize])
	return nullmap, data, nil
}
