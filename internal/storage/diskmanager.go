package storage

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownFile is returned when a DiskManager operation targets a
// FileID that was never registered.
var ErrUnknownFile = errors.New("storage: unknown file id")

// DiskManager is the narrow disk-side contract the buffer pool core
// invokes. This is deliberately smaller than the teacher's full
// StorageManager API (which also exposes CountPages, SavePage helpers,
// etc.) — the core only ever needs these three operations, per the
// external-interfaces section of the spec.
type DiskManager interface {
	ReadPage(fileID, pageID uint32, dst []byte) error
	WritePage(fileID, pageID uint32, src []byte) error
	GetFileName(fileID uint32) string
}

var _ DiskManager = (*FileDiskManager)(nil)

// FileDiskManager is the only DiskManager implementation: it maps a
// FileID to a FileSet (directory + base name) and translates page reads
// and writes into segment-addressed file I/O, grounded on the teacher's
// StorageManager.ReadPage/WritePage segment math.
type FileDiskManager struct {
	sets map[uint32]FileSet
}

func NewFileDiskManager() *FileDiskManager {
	return &FileDiskManager{sets: make(map[uint32]FileSet)}
}

// Register binds fileID to fs. Tables register themselves when opened;
// re-registering the same fileID replaces the binding.
func (m *FileDiskManager) Register(fileID uint32, fs FileSet) {
	m.sets[fileID] = fs
}

func (m *FileDiskManager) pagesPerSegment() int {
	return SegmentSize / PageSize
}

func (m *FileDiskManager) locate(pageID uint32) (segNo int, offset int64) {
	pps := m.pagesPerSegment()
	segNo = int(pageID) / pps
	pageInSeg := int(pageID) % pps
	offset = int64(pageInSeg) * PageSize
	return segNo, offset
}

func (m *FileDiskManager) ReadPage(fileID, pageID uint32, dst []byte) error {
	if len(dst) != PageSize {
		return fmt.Errorf("storage: dst must be exactly %d bytes", PageSize)
	}
	fs, ok := m.sets[fileID]
	if !ok {
		return ErrUnknownFile
	}

	segNo, off := m.locate(pageID)
	f, err := fs.OpenSegment(segNo)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.ReadAt(dst, off)
	if err != nil && err != io.EOF {
		return err
	}
	for i := n; i < PageSize; i++ {
		dst[i] = 0
	}
	return nil
}

func (m *FileDiskManager) WritePage(fileID, pageID uint32, src []byte) error {
	if len(src) != PageSize {
		return fmt.Errorf("storage: src must be exactly %d bytes", PageSize)
	}
	fs, ok := m.sets[fileID]
	if !ok {
		return ErrUnknownFile
	}

	segNo, off := m.locate(pageID)
	f, err := fs.OpenSegment(segNo)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.WriteAt(src, off)
	if err != nil {
		return err
	}
	if n != PageSize {
		return io.ErrShortWrite
	}
	return nil
}

func (m *FileDiskManager) GetFileName(fileID uint32) string {
	fs, ok := m.sets[fileID]
	if !ok {
		return ""
	}
	return fs.Name()
}
