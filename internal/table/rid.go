package table

import "github.com/novacore/relstore/internal/storage"

// RID identifies a row slot by (page_id, slot_id).
type RID struct {
	PageID uint32
	Slot   int
}

// InvalidRID is the sentinel returned past the end of a scan and
// rejected by targeted inserts.
var InvalidRID = RID{PageID: storage.InvalidPageID, Slot: -1}

// Valid reports whether r is anything other than InvalidRID's page id.
func (r RID) Valid() bool {
	return r.PageID != storage.InvalidPageID
}
