package page

import (
	"bytes"
	"fmt"
	"io"
)

// Debug prints the page header and slot occupancy to w, adapted from
// the teacher's storage.Page.Debug hex/line-pointer dump, scoped here
// to what a fixed-layout page actually has: no variable-length slot
// directory to walk.
func (b *Base) Debug(w io.Writer) {
	p := b.Page
	fmt.Fprintf(w, "=== Page Debug ===\n")
	fmt.Fprintf(w, "pageID=%d fileID=%d recordNum=%d nextFreePageID=%d\n",
		p.PageID(), p.FileID(), p.RecordNum(), p.NextFreePageID())
	fmt.Fprintf(w, "recPerPage=%d bitmapSize=%d popCount=%d\n",
		b.RecPerPage, b.BitmapSize, b.PopCount())

	fmt.Fprintln(w, "-- Occupancy --")
	for s := 0; s < b.RecPerPage; s++ {
		if b.Occupied(s) {
			fmt.Fprintf(w, "[%d] occupied\n", s)
		}
	}
	fmt.Fprintln(w, "=== End Page Debug ===")
}

// DebugString renders Debug to a string.
func (b *Base) DebugString() string {
	var buf bytes.Buffer
	b.Debug(&buf)
	return buf.String()
}
