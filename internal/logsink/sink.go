// Package logsink defines the opaque log-sink seam the storage core
// is specified against. The core never inspects what a Sink does with
// the bytes it is handed — only that an Append call exists for future
// WAL integration to hang off of.
package logsink

// Sink accepts opaque log records and returns the LSN assigned to
// them. No method on the storage core currently calls Append; it
// exists so a future write-ahead log can be wired in without changing
// any BufferPoolManager or TableHandle signature.
type Sink interface {
	Append(record []byte) (lsn uint64, err error)
}

// Discard is a Sink that drops every record, handing back
// monotonically increasing LSNs so callers can still observe
// ordering in tests.
type Discard struct {
	next uint64
}

var _ Sink = (*Discard)(nil)

func (d *Discard) Append(record []byte) (uint64, error) {
	d.next++
	return d.next, nil
}
