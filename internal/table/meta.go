package table

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/novacore/relstore/internal/page"
)

// StorageModel selects the on-page slot layout a table uses.
type StorageModel string

const (
	ModelNary StorageModel = "nary"
	ModelPax  StorageModel = "pax"
)

// Meta is the catalog-facing side file for one table: everything a
// session needs to reopen the table without replaying DDL. Grounded
// on the teacher's engine.TableMeta / writeTableMeta / readTableMeta
// JSON side-file pattern (internal/engine/db.go), here scoped to the
// schema and storage model this core actually persists.
type Meta struct {
	Name         string        `json:"name"`
	FileID       uint32        `json:"file_id"`
	Columns      []page.Column `json:"columns"`
	StorageModel StorageModel  `json:"storage_model"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func metaPath(dir, name string) string {
	return filepath.Join(dir, name+".meta.json")
}

// WriteMeta overwrites the side file for meta.Name under dir.
func WriteMeta(dir string, meta *Meta) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	meta.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(metaPath(dir, meta.Name), data, 0o644)
}

// ReadMeta loads a table's side file from dir.
func ReadMeta(dir, name string) (*Meta, error) {
	data, err := os.ReadFile(metaPath(dir, name))
	if err != nil {
		return nil, err
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
