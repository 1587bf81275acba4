package table

import "github.com/novacore/relstore/internal/bx"

// headerEncodedSize is the number of bytes TableHeader occupies at the
// start of the file-header page's body.
const headerEncodedSize = 28

// TableHeader is the table's persisted metadata: record sizing, page
// accounting, and the free-page chain head. It lives at
// storage.FileHeaderPageID, separate from each data page's own
// PAGE_HEADER.
type TableHeader struct {
	RecSize       int
	NullmapSize   int
	BitmapSize    int
	RecPerPage    int
	RecNum        int
	PageNum       uint32
	FirstFreePage uint32
}

func encodeTableHeader(h TableHeader, buf []byte) {
	bx.PutU32At(buf, 0, uint32(h.RecSize))
	bx.PutU32At(buf, 4, uint32(h.NullmapSize))
	bx.PutU32At(buf, 8, uint32(h.BitmapSize))
	bx.PutU32At(buf, 12, uint32(h.RecPerPage))
	bx.PutU32At(buf, 16, uint32(h.RecNum))
	bx.PutU32At(buf, 20, h.PageNum)
	bx.PutU32At(buf, 24, h.FirstFreePage)
}

func decodeTableHeader(buf []byte) TableHeader {
	return TableHeader{
		RecSize:       int(bx.U32At(buf, 0)),
		NullmapSize:   int(bx.U32At(buf, 4)),
		BitmapSize:    int(bx.U32At(buf, 8)),
		RecPerPage:    int(bx.U32At(buf, 12)),
		RecNum:        int(bx.U32At(buf, 16)),
		PageNum:       bx.U32At(buf, 20),
		FirstFreePage: bx.U32At(buf, 24),
	}
}
