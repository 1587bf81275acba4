package executor

import (
	"github.com/novacore/relstore/internal/bitmap"
	"github.com/novacore/relstore/internal/bx"
	"github.com/novacore/relstore/internal/page"
	"github.com/novacore/relstore/internal/table"
)

// SecondaryIndex is the hook InsertExecutor calls after a successful
// row insert. Secondary-index maintenance itself is out of scope for
// this core; the hook exists so the operator's contract (Insert is
// parameterized by "indexes") is faithfully represented even though
// no concrete implementation is provided here.
type SecondaryIndex interface {
	Insert(rid table.RID, rec table.Record) error
}

var insertedSchema = page.Schema{Columns: []page.Column{{Name: "inserted", Type: page.Int64}}}

// InsertExecutor is a one-shot DML operator: Next inserts every
// supplied record and emits a single {inserted: count} row. Init is
// not supported — there is no child to position — and a second Next
// is a contract violation.
type InsertExecutor struct {
	Table   *table.TableHandle
	Indexes []SecondaryIndex
	Records []table.Record

	result table.Record
	done   bool
}

var _ Executor = (*InsertExecutor)(nil)

func NewInsertExecutor(tbl *table.TableHandle, indexes []SecondaryIndex, records []table.Record) *InsertExecutor {
	return &InsertExecutor{Table: tbl, Indexes: indexes, Records: records}
}

func (e *InsertExecutor) Init() error {
	panic("executor: Init is not supported on InsertExecutor")
}

func (e *InsertExecutor) Next() error {
	if e.done {
		panic("executor: Next called past end on InsertExecutor")
	}

	count := 0
	for _, rec := range e.Records {
		rid, err := e.Table.InsertRecord(rec)
		if err != nil {
			return err
		}
		for _, idx := range e.Indexes {
			if err := idx.Insert(rid, rec); err != nil {
				return err
			}
		}
		count++
	}

	data := make([]byte, 8)
	bx.PutI64(data, int64(count))
	e.result = table.Record{Nullmap: make([]byte, bitmap.Size(1)), Data: data}
	e.done = true
	return nil
}

func (e *InsertExecutor) IsEnd() bool            { return e.done }
func (e *InsertExecutor) GetRecord() table.Record { return e.result }
func (e *InsertExecutor) GetOutSchema() page.Schema {
	return insertedSchema
}
