// Package loader supplies the engine with its transaction snapshot.
// Sources are read-only: transactions are loaded once per process and
// immutable afterwards; the engine never refreshes them.
package loader

import (
	"context"
	"fmt"
	"time"

	"grantbook/internal/core"
	"grantbook/internal/log"
)

// SourceType selects where transactions are loaded from.
type SourceType string

const (
	CSVSource    SourceType = "csv"
	SQLiteSource SourceType = "sqlite"
	MemorySource SourceType = "memory"
)

// String implements fmt.Stringer.
func (st SourceType) String() string {
	return string(st)
}

// IsValid returns true if the source type is known.
func (st SourceType) IsValid() bool {
	switch st {
	case CSVSource, SQLiteSource, MemorySource:
		return true
	default:
		return false
	}
}

type (
	// Source loads the full transaction list from a backing store.
	Source interface {
		Load(ctx context.Context) ([]core.Record, error)
	}

	// Snapshot is the immutable record set handed to every query.
	Snapshot struct {
		Records  []core.Record
		LoadedAt time.Time
	}

	// Config holds source selection and per-source settings.
	Config struct {
		Type SourceType

		// CSV specific
		CSVPath string

		// SQLite specific
		SQLiteDBPath string
		SQLiteTable  string
	}
)

// New creates a source from configuration.
func New(cfg Config, logger *log.Logger) (Source, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentLoader)

	switch cfg.Type {
	case CSVSource:
		if cfg.CSVPath == "" {
			return nil, fmt.Errorf("csv source requires a file path")
		}
		return NewCSVFile(cfg.CSVPath, logger), nil
	case SQLiteSource:
		if cfg.SQLiteDBPath == "" {
			return nil, fmt.Errorf("sqlite source requires a database path")
		}
		return NewSQLiteDB(cfg.SQLiteDBPath, cfg.SQLiteTable, logger), nil
	case MemorySource:
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", cfg.Type)
	}
}

// LoadSnapshot loads once and stamps the result.
func LoadSnapshot(ctx context.Context, src Source) (*Snapshot, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Records: records, LoadedAt: time.Now()}, nil
}
