package storage

import "github.com/novacore/relstore/internal/bx"

// Page is a fixed-size PAGE_SIZE byte buffer with a common header:
//
//	[ PageHeader(HeaderSize) | layout-specific body (PageSize-HeaderSize) ]
//
// PageHeader carries PageID, FileID, RecordNum and NextFreePageID, the
// four fields every PageHandle layout (N-ary or PAX) needs regardless of
// how the body is organized.
type Page struct {
	Buf []byte
}

// NewPage wraps an existing PageSize buffer without touching its bytes
// (used when loading a page already populated by the disk manager).
func NewPage(buf []byte) *Page {
	return &Page{Buf: buf}
}

// InitPage zeroes buf and writes a fresh header for (fileID, pageID),
// with an empty free-chain pointer. Used for newly allocated pages.
func InitPage(buf []byte, fileID, pageID uint32) *Page {
	for i := range buf {
		buf[i] = 0
	}
	p := &Page{Buf: buf}
	p.SetFileID(fileID)
	p.SetPageID(pageID)
	p.SetRecordNum(0)
	p.SetNextFreePageID(InvalidPageID)
	return p
}

func (p *Page) PageID() uint32     { return bx.U32At(p.Buf, 0) }
func (p *Page) SetPageID(v uint32) { bx.PutU32At(p.Buf, 0, v) }

func (p *Page) FileID() uint32     { return bx.U32At(p.Buf, 4) }
func (p *Page) SetFileID(v uint32) { bx.PutU32At(p.Buf, 4, v) }

func (p *Page) RecordNum() uint16     { return uint16(bx.U32At(p.Buf, 8) & 0xFFFF) }
func (p *Page) SetRecordNum(v uint16) { bx.PutU32At(p.Buf, 8, uint32(v)) }

func (p *Page) NextFreePageID() uint32     { return bx.U32At(p.Buf, 12) }
func (p *Page) SetNextFreePageID(v uint32) { bx.PutU32At(p.Buf, 12, v) }

// Body returns the bytes following the fixed header: the bitmap and slot
// region for whichever PageHandle layout owns this page.
func (p *Page) Body() []byte {
	return p.Buf[HeaderSize:]
}
