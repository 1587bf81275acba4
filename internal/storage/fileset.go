package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSet resolves a logical segment number to an OS file. Segments let
// one table's pages span multiple files once it exceeds SegmentSize,
// without the rest of the core ever seeing a segment number.
type FileSet interface {
	OpenSegment(segNo int) (*os.File, error)
	Name() string
}

var _ FileSet = LocalFileSet{}

// LocalFileSet is a directory + base file name. Segments beyond the
// first are named Base.1, Base.2, ...
type LocalFileSet struct {
	Dir  string
	Base string
}

func (fs LocalFileSet) Name() string { return fs.Base }

func (fs LocalFileSet) OpenSegment(segNo int) (*os.File, error) {
	name := fs.Base
	if segNo > 0 {
		name = fmt.Sprintf("%s.%d", fs.Base, segNo)
	}
	if err := os.MkdirAll(fs.Dir, fileMode0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(fs.Dir, name), os.O_RDWR|os.O_CREATE, fileMode0644)
}
