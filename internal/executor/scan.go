package executor

import (
	"github.com/novacore/relstore/internal/page"
	"github.com/novacore/relstore/internal/table"
)

// TableScanExecutor is the leaf operator every pipeline in this core
// is ultimately rooted at: it walks a table's rows in RID order via
// GetFirstRID/GetNextRID. It is not itself named in the operator list
// but is the natural source a Filter or Projection needs a real
// TableHandle to read through.
type TableScanExecutor struct {
	Table  *table.TableHandle
	Schema page.Schema

	cur table.Record
	rid table.RID
	end bool
}

var _ Executor = (*TableScanExecutor)(nil)

func NewTableScanExecutor(tbl *table.TableHandle, schema page.Schema) *TableScanExecutor {
	return &TableScanExecutor{Table: tbl, Schema: schema}
}

func (e *TableScanExecutor) Init() error {
	rid, err := e.Table.GetFirstRID()
	if err != nil {
		return err
	}
	return e.settle(rid)
}

func (e *TableScanExecutor) Next() error {
	if e.end {
		panic("executor: Next called past end on TableScanExecutor")
	}
	rid, err := e.Table.GetNextRID(e.rid)
	if err != nil {
		return err
	}
	return e.settle(rid)
}

func (e *TableScanExecutor) settle(rid table.RID) error {
	if !rid.Valid() {
		e.end = true
		return nil
	}
	rec, err := e.Table.GetRecord(rid)
	if err != nil {
		return err
	}
	e.rid = rid
	e.cur = rec
	return nil
}

func (e *TableScanExecutor) IsEnd() bool            { return e.end }
func (e *TableScanExecutor) GetRecord() table.Record { return e.cur }
func (e *TableScanExecutor) GetOutSchema() page.Schema {
	return e.Schema
}
