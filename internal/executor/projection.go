package executor

import (
	"github.com/novacore/relstore/internal/bitmap"
	"github.com/novacore/relstore/internal/page"
	"github.com/novacore/relstore/internal/table"
)

// ProjectionExecutor rewrites the child's current record under a
// narrower or reordered schema.
type ProjectionExecutor struct {
	Child      Executor
	ProjSchema page.Schema

	// childIndex[j] is the position in the child's schema that
	// ProjSchema.Columns[j] is drawn from. Resolved once at Init.
	childIndex []int
}

var _ Executor = (*ProjectionExecutor)(nil)

func NewProjectionExecutor(child Executor, proj page.Schema) *ProjectionExecutor {
	return &ProjectionExecutor{Child: child, ProjSchema: proj}
}

func (e *ProjectionExecutor) Init() error {
	if err := e.Child.Init(); err != nil {
		return err
	}
	childSchema := e.Child.GetOutSchema()
	e.childIndex = make([]int, len(e.ProjSchema.Columns))
	for j, col := range e.ProjSchema.Columns {
		e.childIndex[j] = childSchema.IndexOf(col.Name)
	}
	return nil
}

func (e *ProjectionExecutor) Next() error {
	return e.Child.Next()
}

func (e *ProjectionExecutor) IsEnd() bool {
	return e.Child.IsEnd()
}

// GetRecord narrows/reorders the child's current record's bytes and
// null bits to match ProjSchema.
func (e *ProjectionExecutor) GetRecord() table.Record {
	childSchema := e.Child.GetOutSchema()
	childRec := e.Child.GetRecord()

	data := make([]byte, e.ProjSchema.RecordSize())
	nullmap := make([]byte, e.ProjSchema.NullmapSize())

	for j, ci := range e.childIndex {
		srcOff := childSchema.FieldOffset(ci)
		size := childSchema.FieldSize(ci)
		dstOff := e.ProjSchema.FieldOffset(j)
		copy(data[dstOff:dstOff+size], childRec.Data[srcOff:srcOff+size])

		if bitmap.Get(childRec.Nullmap, ci) {
			bitmap.Set(nullmap, j, true)
		}
	}

	return table.Record{Nullmap: nullmap, Data: data, RID: childRec.RID}
}

func (e *ProjectionExecutor) GetOutSchema() page.Schema {
	return e.ProjSchema
}
