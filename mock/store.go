package mock

import (
	"context"

	"github.com/fwojciec/gradeforge"
)

var (
	_ gradeforge.RecordStore = (*RecordStore)(nil)
	_ gradeforge.Loader      = (*Loader)(nil)
	_ gradeforge.Querier     = (*Querier)(nil)
)

// RecordStore is a mock implementation of gradeforge.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, rs *gradeforge.RecordSet) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, rs *gradeforge.RecordSet) error {
	return s.SaveFn(ctx, rs)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}

// Loader is a mock implementation of gradeforge.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, rs *gradeforge.RecordSet) error
}

func (l *Loader) Load(ctx context.Context, rs *gradeforge.RecordSet) error {
	return l.LoadFn(ctx, rs)
}

// Querier is a mock implementation of gradeforge.Querier.
type Querier struct {
	QueryFn  func(ctx context.Context, q string) ([][]string, error)
	DumpFn   func(ctx context.Context) ([][]string, error)
	SchemaFn func(ctx context.Context) ([][]string, error)
}

func (q *Querier) Query(ctx context.Context, query string) ([][]string, error) {
	return q.QueryFn(ctx, query)
}

func (q *Querier) Dump(ctx context.Context) ([][]string, error) {
	return q.DumpFn(ctx)
}

func (q *Querier) Schema(ctx context.Context) ([][]string, error) {
	return q.SchemaFn(ctx)
}
