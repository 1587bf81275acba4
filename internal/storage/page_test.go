package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitPage_HeaderFields(t *testing.T) {
	buf := make([]byte, PageSize)
	p := InitPage(buf, 7, 3)

	require.Equal(t, uint32(3), p.PageID())
	require.Equal(t, uint32(7), p.FileID())
	require.Equal(t, uint16(0), p.RecordNum())
	require.Equal(t, InvalidPageID, p.NextFreePageID())
}

func TestPage_SettersRoundTrip(t *testing.T) {
	buf := make([]byte, PageSize)
	p := InitPage(buf, 1, 1)

	p.SetRecordNum(5)
	p.SetNextFreePageID(42)

	require.Equal(t, uint16(5), p.RecordNum())
	require.Equal(t, uint32(42), p.NextFreePageID())
}

func TestPage_BodyIsAfterHeader(t *testing.T) {
	buf := make([]byte, PageSize)
	p := InitPage(buf, 1, 1)
	require.Len(t, p.Body(), PageSize-HeaderSize)

	p.Body()[0] = 0xAB
	require.Equal(t, byte(0xAB), buf[HeaderSize])
}
