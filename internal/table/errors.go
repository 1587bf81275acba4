package table

import (
	"errors"

	"github.com/novacore/relstore/internal/page"
)

// ErrRecordMiss and ErrRecordExists are the table-level record errors;
// they are the same sentinels the page layer raises, since a slot miss
// or a slot-already-occupied condition means the same thing at either
// layer.
var (
	ErrRecordMiss   = page.ErrRecordMiss
	ErrRecordExists = page.ErrRecordExists
)

// ErrPageMiss is raised by a targeted insert against the invalid RID
// sentinel.
var ErrPageMiss = errors.New("table: invalid page id")

// ErrNotPax is raised by GetChunk against a table stored in the N-ary
// layout; column-chunk reads only make sense for PAX tables.
var ErrNotPax = errors.New("table: column chunk read requires PAX storage model")
