package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novacore/relstore/internal/replacer"
	"github.com/novacore/relstore/internal/table"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
buffer_pool_size: 64
replacer: lruk
lru_k: 2
page_size: 8192
tables:
  - name: accounts
    storage_model: pax
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.BufferPoolSize)
	require.Equal(t, replacer.KindLRUK, cfg.Replacer)
	require.Equal(t, 2, cfg.LRUK)
	require.Len(t, cfg.Tables, 1)
	require.Equal(t, table.ModelPax, cfg.Tables[0].StorageModel)
}

func TestLoad_RejectsNonPositivePoolSize(t *testing.T) {
	path := writeConfig(t, "buffer_pool_size: 0\nreplacer: lru\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsUnknownReplacer(t *testing.T) {
	path := writeConfig(t, "buffer_pool_size: 4\nreplacer: clock\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsLRUKWithoutK(t *testing.T) {
	path := writeConfig(t, "buffer_pool_size: 4\nreplacer: lruk\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsUnknownTableStorageModel(t *testing.T) {
	path := writeConfig(t, `
buffer_pool_size: 4
replacer: lru
tables:
  - name: widgets
    storage_model: columnar
`)
	_, err := Load(path)
	require.Error(t, err)
}
