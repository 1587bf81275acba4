package executor

import (
	"github.com/novacore/relstore/internal/page"
	"github.com/novacore/relstore/internal/table"
)

// Predicate reports whether rec, under schema, should pass the
// filter.
type Predicate func(schema page.Schema, rec table.Record) bool

// FilterExecutor wraps a child operator, skipping records that fail
// Predicate. On Init it caches the child's first qualifying record;
// Next advances one step, then continues skipping failures.
type FilterExecutor struct {
	Child     Executor
	Predicate Predicate

	cur table.Record
	end bool
}

var _ Executor = (*FilterExecutor)(nil)

func NewFilterExecutor(child Executor, pred Predicate) *FilterExecutor {
	return &FilterExecutor{Child: child, Predicate: pred}
}

func (e *FilterExecutor) Init() error {
	if err := e.Child.Init(); err != nil {
		return err
	}
	return e.advance()
}

func (e *FilterExecutor) Next() error {
	if e.end {
		panic("executor: Next called past end on FilterExecutor")
	}
	if err := e.Child.Next(); err != nil {
		return err
	}
	return e.advance()
}

// advance skips child records failing the predicate, starting from
// whatever record the child currently sits on.
func (e *FilterExecutor) advance() error {
	schema := e.Child.GetOutSchema()
	for !e.Child.IsEnd() {
		rec := e.Child.GetRecord()
		if e.Predicate(schema, rec) {
			e.cur = rec
			return nil
		}
		if err := e.Child.Next(); err != nil {
			return err
		}
	}
	e.end = true
	return nil
}

func (e *FilterExecutor) IsEnd() bool             { return e.end }
func (e *FilterExecutor) GetRecord() table.Record { return e.cur }

func (e *FilterExecutor) GetOutSchema() page.Schema {
	return e.Child.GetOutSchema()
}
