package sqlite

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fwojciec/gradeforge"
)

// Ensure Querier implements gradeforge.Querier.
var _ gradeforge.Querier = (*Querier)(nil)

// Querier executes read queries against a loaded store.
type Querier struct {
	db *DB
}

// NewQuerier creates a new Querier.
func NewQuerier(db *DB) *Querier {
	return &Querier{db: db}
}

// Query executes q as given and renders each row as strings. NULL renders
// as an empty string. The query is not validated.
func (q *Querier) Query(ctx context.Context, query string) ([][]string, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out [][]string
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = render(v)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Dump returns the rows of every table in Tables order.
func (q *Querier) Dump(ctx context.Context) ([][]string, error) {
	var out [][]string
	for _, t := range Tables {
		rows, err := q.Query(ctx, "SELECT * FROM "+quoteIdent(t.Name))
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", t.Name, err)
		}
		out = append(out, rows...)
	}
	return out, nil
}

// Schema returns the CREATE statements of the store, one per row.
func (q *Querier) Schema(ctx context.Context) ([][]string, error) {
	return q.Query(ctx, "SELECT sql FROM sqlite_master WHERE sql IS NOT NULL")
}

func render(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
