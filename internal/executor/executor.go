// Package executor implements the pull-based iterator tree that sits
// atop a table.TableHandle: Filter, Projection and Insert, each
// exposing the same Init/Next/IsEnd/GetRecord/GetOutSchema contract so
// operators compose without knowing each other's concrete type.
package executor

import (
	"github.com/novacore/relstore/internal/page"
	"github.com/novacore/relstore/internal/table"
)

// Executor is the Volcano-style operator contract. Init positions the
// operator at its first record (if any); Next advances one step;
// IsEnd reports whether the operator is exhausted;
// GetOutSchema is stable across the operator's lifetime.
type Executor interface {
	Init() error
	Next() error
	IsEnd() bool
	GetRecord() table.Record
	GetOutSchema() page.Schema
}
