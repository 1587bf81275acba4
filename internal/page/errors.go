package page

import "errors"

// ErrEmptyVariant is returned by Base's unimplemented WriteSlot/ReadSlot
// — reached when Base is used on its own or a variant embeds it without
// overriding them, which is a programming error in this module, not a
// caller mistake.
var ErrEmptyVariant = errors.New("page: unimplemented variant method")

// ErrRecordMiss is returned when a read/update/delete targets a slot
// whose occupancy bit is clear.
var ErrRecordMiss = errors.New("page: record miss")

// ErrRecordExists is returned when a targeted insert finds the slot
// bit already set.
var ErrRecordExists = errors.New("page: record exists")
