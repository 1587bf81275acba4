package page

import "github.com/novacore/relstore/internal/storage"

// PaxHandle lays the slot region out columnar-within-page: one
// contiguous null-map band over all slots, followed by one contiguous
// band per field, each holding that field's value for every slot.
type PaxHandle struct {
	Base
	Schema      Schema
	NullmapSize int
	FieldOffset []int // FieldOffset[j] = RecPerPage * Schema.FieldOffset(j), from end of null-map band
}

var _ Handle = (*PaxHandle)(nil)

// NewPaxHandle constructs a handle over p. fieldOffset must already be
// scaled by RecPerPage (TableHandle precomputes this once per table).
func NewPaxHandle(p *storage.Page, bitmapSize, recPerPage int, schema Schema, nullmapSize int, fieldOffset []int) *PaxHandle {
	return &PaxHandle{
		Base:        Base{Page: p, BitmapSize: bitmapSize, RecPerPage: recPerPage},
		Schema:      schema,
		NullmapSize: nullmapSize,
		FieldOffset: fieldOffset,
	}
}

func (h *PaxHandle) nullmapBandSize() int {
	return h.RecPerPage * h.NullmapSize
}

func (h *PaxHandle) nullmapSlot(slot int) []byte {
	region := h.slotRegion()
	off := slot * h.NullmapSize
	return region[off : off+h.NullmapSize]
}

func (h *PaxHandle) columnBase(field int) int {
	return h.nullmapBandSize() + h.FieldOffset[field]
}

func (h *PaxHandle) columnCell(field, slot int) []byte {
	size := h.Schema.FieldSize(field)
	base := h.columnBase(field) + slot*size
	region := h.slotRegion()
	return region[base : base+size]
}

// WriteSlot copies nullmap into slot s's null-map band cell, and each
// field of data into its own column band at index s.
func (h *PaxHandle) WriteSlot(slot int, nullmap, data []byte, update bool) error {
	if err := h.checkSlotState(slot, update); err != nil {
		return err
	}
	copy(h.nullmapSlot(slot), nullmap)
	for j := range h.Schema.Columns {
		size := h.Schema.FieldSize(j)
		recOff := h.Schema.FieldOffset(j)
		copy(h.columnCell(j, slot), data[recOff:recOff+size])
	}
	return nil
}

// ReadSlot reassembles slot s's null-map and row-major data bytes from
// the column bands.
func (h *PaxHandle) ReadSlot(slot int) ([]byte, []byte, error) {
	if !h.Occupied(slot) {
		return nil, nil, ErrRecordMiss
	}
	nullmap := make([]byte, h.NullmapSize)
	copy(nullmap, h.nullmapSlot(slot))

	data := make([]byte, h.Schema.RecordSize())
	for j := range h.Schema.Columns {
		recOff := h.Schema.FieldOffset(j)
		size := h.Schema.FieldSize(j)
		copy(data[recOff:recOff+size], h.columnCell(j, slot))
	}
	return nullmap, data, nil
}

// Chunk is a column-oriented batch over a page's first slots: one
// byte-row per slot per projected field, plus an occupancy mask
// shared across fields.
type Chunk struct {
	Schema  Schema
	Columns [][][]byte // Columns[fieldIdx][slot] = raw field bytes
	Valid   []bool     // Valid[slot], shared bitmap across all projected fields
}

// ReadChunk produces a Chunk for projected over slots 0..RecordNum-1.
// Each of those slots is read and its occupancy bit is reported in
// Valid, so a hole left by deletion shows up as Valid[slot] == false
// instead of shifting later values. Slots at or beyond recordNum are
// not read, even if occupied.
func (h *PaxHandle) ReadChunk(projected Schema, recordNum int) Chunk {
	chunk := Chunk{
		Schema:  projected,
		Columns: make([][][]byte, len(projected.Columns)),
		Valid:   make([]bool, recordNum),
	}
	for slot := 0; slot < recordNum; slot++ {
		chunk.Valid[slot] = h.Occupied(slot)
	}

	for pj, col := range projected.Columns {
		j := h.Schema.IndexOf(col.Name)
		rows := make([][]byte, recordNum)
		for slot := 0; slot < recordNum; slot++ {
			cell := h.columnCell(j, slot)
			row := make([]byte, len(cell))
			copy(row, cell)
			rows[slot] = row
		}
		chunk.Columns[pj] = rows
	}
	return chunk
}
