// Package table stitches the buffer pool and page layouts into a
// record- and chunk-level CRUD surface: TableHeader accounting, the
// free-page chain, and RID-addressed reads, inserts, updates and
// deletes.
package table

import (
	"sync"
	"time"

	"github.com/novacore/relstore/internal/bitmap"
	"github.com/novacore/relstore/internal/bufferpool"
	"github.com/novacore/relstore/internal/page"
	"github.com/novacore/relstore/internal/storage"
)

// Record is the ephemeral value carried between a caller and the
// table: a schema-bound null-map plus payload bytes, and — once
// known — its RID.
type Record struct {
	Nullmap []byte
	Data    []byte
	RID     RID
}

// TableHandle owns a table's header and schema, requests pages from a
// BufferPoolManager, wraps them in the layout-appropriate PageHandle,
// and exposes record-level CRUD plus PAX column-chunk reads and
// forward RID iteration. One coarse mutex serializes every mutating
// and scanning method — grounded in the same single-monitor
// simplicity the BPM itself uses.
type TableHandle struct {
	FileID uint32
	Name   string
	Schema page.Schema
	Model  StorageModel
	BP     *bufferpool.BufferPoolManager

	Header TableHeader
	// FieldOffset[j] = RecPerPage * Schema.FieldOffset(j); precomputed
	// once at open for PAX tables, unused for N-ary ones.
	FieldOffset []int

	mu sync.Mutex
}

// Open attaches a TableHandle to fileID, bootstrapping the TableHeader
// on the file-header page on first open and decoding it otherwise. dir
// is the catalog directory holding this table's JSON side file
// (internal/table/meta.go): on first open, schema and model come from
// the caller (this is the DDL create path) and are persisted there; on
// every later reopen they are read back from the side file instead of
// trusted from the caller, since name/schema/storage-model are not
// page-resident state.
func Open(bp *bufferpool.BufferPoolManager, dir string, fileID uint32, name string, schema page.Schema, model StorageModel) (*TableHandle, error) {
	pg, err := bp.FetchPage(fileID, storage.FileHeaderPageID)
	if err != nil {
		return nil, err
	}

	hdr := decodeTableHeader(pg.Body())
	fresh := hdr.RecPerPage == 0
	if fresh {
		recSize := schema.RecordSize()
		nullmapSize := schema.NullmapSize()
		bodySize := storage.PageSize - storage.HeaderSize
		recPerPage := computeRecPerPage(bodySize, nullmapSize, recSize)

		hdr = TableHeader{
			RecSize:       recSize,
			NullmapSize:   nullmapSize,
			BitmapSize:    bitmap.Size(recPerPage),
			RecPerPage:    recPerPage,
			RecNum:        0,
			PageNum:       1, // page 0 is the file-header page
			FirstFreePage: storage.InvalidPageID,
		}
		encodeTableHeader(hdr, pg.Body())
		if !bp.UnpinPage(fileID, storage.FileHeaderPageID, true) {
			return nil, ErrPageMiss
		}

		meta := &Meta{
			Name:         name,
			FileID:       fileID,
			Columns:      schema.Columns,
			StorageModel: model,
			CreatedAt:    time.Now(),
		}
		if err := WriteMeta(dir, meta); err != nil {
			return nil, err
		}
	} else {
		if !bp.UnpinPage(fileID, storage.FileHeaderPageID, false) {
			return nil, ErrPageMiss
		}

		meta, err := ReadMeta(dir, name)
		if err != nil {
			return nil, err
		}
		schema = page.Schema{Columns: meta.Columns}
		model = meta.StorageModel
	}
	if model != ModelNary && model != ModelPax {
		panic("table: unknown storage model " + string(model))
	}

	t := &TableHandle{
		FileID: fileID,
		Name:   name,
		Schema: schema,
		Model:  model,
		BP:     bp,
		Header: hdr,
	}
	if model == ModelPax {
		t.FieldOffset = make([]int, len(schema.Columns))
		for j := range schema.Columns {
			t.FieldOffset[j] = hdr.RecPerPage * schema.FieldOffset(j)
		}
	}
	return t, nil
}

// computeRecPerPage finds the largest slot count whose bitmap plus
// slot region fits bodySize. The slot region's total byte size is the
// same for N-ary and PAX layouts (n*nullmapSize + n*recSize, just
// organized differently), so one formula serves both.
func computeRecPerPage(bodySize, nullmapSize, recSize int) int {
	slotWidth := nullmapSize + recSize
	if slotWidth == 0 {
		return 0
	}
	n := bodySize / slotWidth
	for n > 0 && bitmap.Size(n)+n*slotWidth > bodySize {
		n--
	}
	return n
}

func (t *TableHandle) handleFor(pg *storage.Page) page.Handle {
	if t.Model == ModelPax {
		return page.NewPaxHandle(pg, t.Header.BitmapSize, t.Header.RecPerPage, t.Schema, t.Header.NullmapSize, t.FieldOffset)
	}
	return page.NewNaryHandle(pg, t.Header.BitmapSize, t.Header.RecPerPage, t.Header.NullmapSize, t.Header.RecSize)
}

func (t *TableHandle) persistHeaderLocked() error {
	pg, err := t.BP.FetchPage(t.FileID, storage.FileHeaderPageID)
	if err != nil {
		return err
	}
	encodeTableHeader(t.Header, pg.Body())
	if !t.BP.UnpinPage(t.FileID, storage.FileHeaderPageID, true) {
		return ErrPageMiss
	}
	return nil
}

// GetRecord fetches rid's page, reads the slot if occupied, and
// unpins read-only on both the hit and miss paths.
func (t *TableHandle) GetRecord(rid RID) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pg, err := t.BP.FetchPage(t.FileID, rid.PageID)
	if err != nil {
		return Record{}, err
	}
	h := t.handleFor(pg)
	nullmap, data, err := h.ReadSlot(rid.Slot)
	t.BP.UnpinPage(t.FileID, rid.PageID, false)
	if err != nil {
		return Record{}, err
	}
	return Record{Nullmap: nullmap, Data: data, RID: rid}, nil
}

// createPageHandleLocked implements the spec's CreatePageHandle
// policy: prefer the current free-chain head; allocate a fresh page
// only when the chain is empty. Callers must hold t.mu.
func (t *TableHandle) createPageHandleLocked() (uint32, *storage.Page, error) {
	if t.Header.FirstFreePage == storage.InvalidPageID {
		pid := t.Header.PageNum
		t.Header.PageNum++

		pg, err := t.BP.FetchPage(t.FileID, pid)
		if err != nil {
			return 0, nil, err
		}
		storage.InitPage(pg.Buf, t.FileID, pid)
		pg.SetNextFreePageID(storage.InvalidPageID)
		t.Header.FirstFreePage = pid
		return pid, pg, nil
	}

	pid := t.Header.FirstFreePage
	pg, err := t.BP.FetchPage(t.FileID, pid)
	if err != nil {
		return 0, nil, err
	}
	return pid, pg, nil
}

// InsertRecord assigns the first free slot on the free-chain head page
// and returns its RID.
func (t *TableHandle) InsertRecord(rec Record) (RID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pid, pg, err := t.createPageHandleLocked()
	if err != nil {
		return InvalidRID, err
	}
	h := t.handleFor(pg)

	slot := h.FindFirst(0, false)
	if slot >= t.Header.RecPerPage {
		t.BP.UnpinPage(t.FileID, pid, false)
		return InvalidRID, ErrPageMiss
	}

	if err := h.WriteSlot(slot, rec.Nullmap, rec.Data, false); err != nil {
		t.BP.UnpinPage(t.FileID, pid, false)
		return InvalidRID, err
	}
	h.SetOccupied(slot, true)
	pg.SetRecordNum(pg.RecordNum() + 1)
	t.Header.RecNum++

	if int(pg.RecordNum()) == t.Header.RecPerPage {
		t.Header.FirstFreePage = pg.NextFreePageID()
	}

	t.BP.UnpinPage(t.FileID, pid, true)
	if err := t.persistHeaderLocked(); err != nil {
		return InvalidRID, err
	}
	return RID{PageID: pid, Slot: slot}, nil
}

// InsertRecordAt targets a specific RID, failing if the slot is
// already occupied or the RID is the invalid sentinel. Unlike
// InsertRecord, it does not attempt to splice the target page out of
// the free chain unless that page already happens to be the chain
// head — free-chain soundness for out-of-band targeted inserts is a
// caller responsibility.
func (t *TableHandle) InsertRecordAt(rid RID, rec Record) error {
	if !rid.Valid() {
		return ErrPageMiss
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	pg, err := t.BP.FetchPage(t.FileID, rid.PageID)
	if err != nil {
		return err
	}
	h := t.handleFor(pg)

	if err := h.WriteSlot(rid.Slot, rec.Nullmap, rec.Data, false); err != nil {
		t.BP.UnpinPage(t.FileID, rid.PageID, false)
		return err
	}
	h.SetOccupied(rid.Slot, true)
	pg.SetRecordNum(pg.RecordNum() + 1)
	t.Header.RecNum++

	if int(pg.RecordNum()) == t.Header.RecPerPage && t.Header.FirstFreePage == rid.PageID {
		t.Header.FirstFreePage = pg.NextFreePageID()
	}

	t.BP.UnpinPage(t.FileID, rid.PageID, true)
	return t.persistHeaderLocked()
}

// DeleteRecord clears rid's slot. A page transitioning from full to
// not-full is prepended to the free chain.
func (t *TableHandle) DeleteRecord(rid RID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pg, err := t.BP.FetchPage(t.FileID, rid.PageID)
	if err != nil {
		return err
	}
	h := t.handleFor(pg)

	if !h.Occupied(rid.Slot) {
		t.BP.UnpinPage(t.FileID, rid.PageID, false)
		return ErrRecordMiss
	}
	h.SetOccupied(rid.Slot, false)

	wasFull := int(pg.RecordNum()) == t.Header.RecPerPage
	pg.SetRecordNum(pg.RecordNum() - 1)
	t.Header.RecNum--

	if wasFull {
		pg.SetNextFreePageID(t.Header.FirstFreePage)
		t.Header.FirstFreePage = rid.PageID
	}

	t.BP.UnpinPage(t.FileID, rid.PageID, true)
	return t.persistHeaderLocked()
}

// UpdateRecord overwrites an occupied slot in place.
func (t *TableHandle) UpdateRecord(rid RID, rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pg, err := t.BP.FetchPage(t.FileID, rid.PageID)
	if err != nil {
		return err
	}
	h := t.handleFor(pg)

	if err := h.WriteSlot(rid.Slot, rec.Nullmap, rec.Data, true); err != nil {
		t.BP.UnpinPage(t.FileID, rid.PageID, false)
		return err
	}
	t.BP.UnpinPage(t.FileID, rid.PageID, true)
	return nil
}

// GetChunk reads a column-oriented batch from a PAX page. Returns
// ErrNotPax for N-ary tables.
func (t *TableHandle) GetChunk(pid uint32, projected page.Schema) (page.Chunk, error) {
	if t.Model != ModelPax {
		return page.Chunk{}, ErrNotPax
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	pg, err := t.BP.FetchPage(t.FileID, pid)
	if err != nil {
		return page.Chunk{}, err
	}
	h := page.NewPaxHandle(pg, t.Header.BitmapSize, t.Header.RecPerPage, t.Schema, t.Header.NullmapSize, t.FieldOffset)
	chunk := h.ReadChunk(projected, int(pg.RecordNum()))
	t.BP.UnpinPage(t.FileID, pid, false)
	return chunk, nil
}

// GetFirstRID returns the first occupied slot in the table, or
// InvalidRID if the table is empty.
func (t *TableHandle) GetFirstRID() (RID, error) {
	return t.scanFrom(1, 0)
}

// GetNextRID returns the next occupied slot after rid, or InvalidRID
// past the end.
func (t *TableHandle) GetNextRID(rid RID) (RID, error) {
	return t.scanFrom(rid.PageID, rid.Slot+1)
}

func (t *TableHandle) scanFrom(startPage uint32, startSlot int) (RID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for pid := startPage; pid < t.Header.PageNum; pid++ {
		slotStart := 0
		if pid == startPage {
			slotStart = startSlot
		}

		pg, err := t.BP.FetchPage(t.FileID, pid)
		if err != nil {
			return InvalidRID, err
		}
		h := t.handleFor(pg)
		slot := h.FindFirst(slotStart, true)
		t.BP.UnpinPage(t.FileID, pid, false)

		if slot < t.Header.RecPerPage {
			return RID{PageID: pid, Slot: slot}, nil
		}
	}
	return InvalidRID, nil
}
