package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/gradeforge"
)

// Ensure Loader implements gradeforge.Loader.
var _ gradeforge.Loader = (*Loader)(nil)

// MaxParameters bounds the bound parameters of one INSERT statement.
// It matches SQLite's historical SQLITE_MAX_VARIABLE_NUMBER.
const MaxParameters = 999

// Loader creates the schema and bulk-inserts record sets.
type Loader struct {
	db *DB
}

// NewLoader creates a new Loader.
func NewLoader(db *DB) *Loader {
	return &Loader{db: db}
}

// Load creates every table in Tables and inserts the records of rs in one
// transaction. The store must be empty: loading is append-only, and a
// reload starts from a fresh database. Store errors are returned wrapped
// with the table name; nothing is committed on error.
func (l *Loader) Load(ctx context.Context, rs *gradeforge.RecordSet) error {
	tx, err := l.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range Tables {
		if _, err := tx.ExecContext(ctx, CreateTableSQL(t)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}

	for _, t := range Tables {
		rows := t.Rows(rs)
		chunk := MaxParameters / len(t.Columns)
		for start := 0; start < len(rows); start += chunk {
			end := min(start+chunk, len(rows))
			args := make([]any, 0, (end-start)*len(t.Columns))
			for _, row := range rows[start:end] {
				args = append(args, row...)
			}
			if _, err := tx.ExecContext(ctx, insertSQL(t, end-start), args...); err != nil {
				return fmt.Errorf("insert into %s: %w", t.Name, err)
			}
		}
	}

	return tx.Commit()
}
