// Package page implements the two on-page slot layouts — N-ary
// (row-major) and PAX (columnar-within-page) — that sit on top of a
// raw storage.Page buffer.
package page

import "fmt"

// FieldType enumerates the fixed-width types a Column can hold. There
// is no variable-length field type: every record has a statically
// known size, matching the fixed-slot page format.
type FieldType int

const (
	Int32 FieldType = iota
	Int64
	Float64
	Bool
	Char // fixed-width byte string, width given by Column.Width
)

// Column describes one field of a Schema.
type Column struct {
	Name  string
	Type  FieldType
	Width int // only meaningful for Char; ignored otherwise
}

// Size returns the on-disk byte width of the column.
func (c Column) Size() int {
	switch c.Type {
	case Int32, Bool:
		return 4
	case Int64, Float64:
		return 8
	case Char:
		return c.Width
	default:
		panic(fmt.Sprintf("page: unknown field type %d", c.Type))
	}
}

// Schema is an ordered, fixed list of columns. Field order defines
// both the record's null-bitmap bit order and its byte layout.
type Schema struct {
	Columns []Column
}

// NullmapSize returns the number of bytes needed for one
// bit-per-field null bitmap.
func (s Schema) NullmapSize() int {
	return bitmapBytes(len(s.Columns))
}

// RecordSize returns the total payload width (excluding the null
// bitmap) of one record under this schema.
func (s Schema) RecordSize() int {
	total := 0
	for _, c := range s.Columns {
		total += c.Size()
	}
	return total
}

// FieldOffset returns the byte offset of field i within one record's
// payload bytes (row-major order, as used by the N-ary layout and by
// PAX's per-slot data argument).
func (s Schema) FieldOffset(i int) int {
	off := 0
	for j := 0; j < i; j++ {
		off += s.Columns[j].Size()
	}
	return off
}

// FieldSize returns the byte width of field i.
func (s Schema) FieldSize(i int) int {
	return s.Columns[i].Size()
}

// IndexOf returns the position of name within the schema, or -1.
func (s Schema) IndexOf(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func bitmapBytes(n int) int {
	return (n + 7) / 8
}
