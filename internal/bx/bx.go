// Package bx holds the little-endian byte helpers shared by every on-page
// codec: page headers, bitmaps, N-ary slots and PAX columns all read and
// write through these instead of calling encoding/binary directly.
package bx

import "encoding/binary"

var le = binary.LittleEndian

func U16(b []byte) uint16 { return le.Uint16(b) }
func U32(b []byte) uint32 { return le.Uint32(b) }
func U64(b []byte) uint64 { return le.Uint64(b) }

func PutU16(b []byte, v uint16) { le.PutUint16(b, v) }
func PutU32(b []byte, v uint32) { le.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { le.PutUint64(b, v) }

func I32(b []byte) int32 { return int32(U32(b)) }
func I64(b []byte) int64 { return int64(U64(b)) }

func PutI32(b []byte, v int32) { PutU32(b, uint32(v)) }
func PutI64(b []byte, v int64) { PutU64(b, uint64(v)) }

func F64(b []byte) float64 {
	return int64ToFloat64(I64(b))
}

func PutF64(b []byte, v float64) {
	PutI64(b, float64ToInt64(v))
}

// --- At (offset into a larger buffer, e.g. a slot or header region) ---

func U16At(b []byte, off int) uint16       { return U16(b[off:]) }
func U32At(b []byte, off int) uint32       { return U32(b[off:]) }
func U64At(b []byte, off int) uint64       { return U64(b[off:]) }
func PutU16At(b []byte, off int, v uint16) { PutU16(b[off:], v) }
func PutU32At(b []byte, off int, v uint32) { PutU32(b[off:], v) }
func PutU64At(b []byte, off int, v uint64) { PutU64(b[off:], v) }

func I32At(b []byte, off int) int32       { return I32(b[off:]) }
func I64At(b []byte, off int) int64       { return I64(b[off:]) }
func PutI32At(b []byte, off int, v int32) { PutI32(b[off:], v) }
func PutI64At(b []byte, off int, v int64) { PutI64(b[off:], v) }
