package gradeforge

import "context"

// RecordStore persists record sets as CSV files with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecordStore interface {
	Save(ctx context.Context, rs *RecordSet) error
	Commit() error
	Abort() error
}

// Loader creates the relational schema and bulk-inserts record sets.
type Loader interface {
	// Load inserts every record stream, terms before sections.
	// Malformed rows surface as store errors.
	Load(ctx context.Context, rs *RecordSet) error
}

// Querier provides read access to a loaded store.
// Queries are not validated; callers are responsible for their safety.
type Querier interface {
	// Query executes q and returns its rows rendered as strings.
	Query(ctx context.Context, q string) ([][]string, error)

	// Dump returns the rows of every table.
	Dump(ctx context.Context) ([][]string, error)

	// Schema returns the statements that created the store, one per row.
	Schema(ctx context.Context) ([][]string, error)
}
