package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDiskManager(t *testing.T) (*FileDiskManager, uint32) {
	t.Helper()
	dm := NewFileDiskManager()
	fs := LocalFileSet{Dir: t.TempDir(), Base: "tbl"}
	dm.Register(1, fs)
	return dm, 1
}

func TestFileDiskManager_RoundTrip(t *testing.T) {
	dm, fid := newTestDiskManager(t)

	out := InitPage(make([]byte, PageSize), fid, 0)
	out.Body()[0] = 0x7F
	require.NoError(t, dm.WritePage(fid, 0, out.Buf))

	in := make([]byte, PageSize)
	require.NoError(t, dm.ReadPage(fid, 0, in))
	require.Equal(t, out.Buf, in)
}

func TestFileDiskManager_ReadBeyondEOFIsZeroFilled(t *testing.T) {
	dm, fid := newTestDiskManager(t)

	buf := make([]byte, PageSize)
	require.NoError(t, dm.ReadPage(fid, 5, buf))
	for _, b := range buf {
		require.Zero(t, b)
	}
}

func TestFileDiskManager_UnknownFileID(t *testing.T) {
	dm := NewFileDiskManager()
	buf := make([]byte, PageSize)
	require.ErrorIs(t, dm.ReadPage(99, 0, buf), ErrUnknownFile)
	require.ErrorIs(t, dm.WritePage(99, 0, buf), ErrUnknownFile)
	require.Equal(t, "", dm.GetFileName(99))
}

func TestFileDiskManager_GetFileName(t *testing.T) {
	dm, fid := newTestDiskManager(t)
	require.Equal(t, "tbl", dm.GetFileName(fid))
}
