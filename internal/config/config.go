// Package config loads the process-wide storage core settings from a
// YAML file via viper, adapted from the teacher's internal/config.go
// NovaSqlConfig/LoadConfig pair.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/novacore/relstore/internal/replacer"
	"github.com/novacore/relstore/internal/table"
)

// TableConfig names one table's schema storage model. Schema itself
// is supplied by DDL, not config — only the storage model choice is
// process config per the spec's STORAGE_MODEL setting.
type TableConfig struct {
	Name         string             `mapstructure:"name"`
	StorageModel table.StorageModel `mapstructure:"storage_model"`
}

// Config is the process-wide configuration recognized by the storage
// core: buffer pool sizing and replacer choice, the fixed page size,
// and per-table storage model assignment.
type Config struct {
	BufferPoolSize int           `mapstructure:"buffer_pool_size"`
	Replacer       replacer.Kind `mapstructure:"replacer"`
	LRUK           int           `mapstructure:"lru_k"`
	PageSize       int           `mapstructure:"page_size"`
	Tables         []TableConfig `mapstructure:"tables"`
}

// Load reads and validates a YAML config file. An unrecognized
// replacer name, or a non-positive buffer pool size, is a fatal
// configuration error per the spec's error-handling policy — Load
// returns it rather than panicking so the caller can report it and
// exit cleanly.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.BufferPoolSize <= 0 {
		return fmt.Errorf("config: buffer_pool_size must be positive, got %d", c.BufferPoolSize)
	}
	switch c.Replacer {
	case replacer.KindLRU:
	case replacer.KindLRUK:
		if c.LRUK <= 0 {
			return fmt.Errorf("config: lru_k must be positive when replacer is %q", replacer.KindLRUK)
		}
	default:
		return fmt.Errorf("config: unknown replacer %q", c.Replacer)
	}
	for _, tbl := range c.Tables {
		switch tbl.StorageModel {
		case table.ModelNary, table.ModelPax:
		default:
			return fmt.Errorf("config: table %q has unknown storage model %q", tbl.Name, tbl.StorageModel)
		}
	}
	return nil
}
