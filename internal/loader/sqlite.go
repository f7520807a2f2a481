package loader

import (
	"context"
	"database/sql"
	"fmt"

	"grantbook/internal/core"
	"grantbook/internal/log"

	_ "modernc.org/sqlite"
)

const defaultTable = "transactions"

// SQLiteDB loads transactions from a SQLite database. The table is
// read wide: column names become field names, so the source stays as
// schema-flexible as the CSV path. The database is opened read-only;
// this process owns no schema and runs no migrations.
type SQLiteDB struct {
	path   string
	table  string
	logger *log.Logger
}

func NewSQLiteDB(path, table string, logger *log.Logger) *SQLiteDB {
	if table == "" {
		table = defaultTable
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &SQLiteDB{path: path, table: table, logger: logger}
}

func (s *SQLiteDB) Load(ctx context.Context) ([]core.Record, error) {
	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %q ORDER BY rowid", s.table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []core.Record
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out)+1, err)
		}
		rec := core.NewRecord()
		for i, col := range cols {
			if !cells[i].Valid || cells[i].String == "" {
				continue
			}
			rec.Set(col, cells[i].String)
		}
		if rec.Len() == 0 {
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	s.logger.Info("loaded transactions from sqlite",
		log.FieldPath, s.path,
		log.FieldRecordCount, len(out))
	return out, nil
}
