package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gradeforge"
)

var (
	_ gradeforge.Loader      = (*LoggingLoader)(nil)
	_ gradeforge.Querier     = (*LoggingQuerier)(nil)
	_ gradeforge.RecordStore = (*LoggingRecordStore)(nil)
)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   gradeforge.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next gradeforge.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, rs *gradeforge.RecordSet) (err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"courses", len(rs.Courses),
			"sections", len(rs.Sections),
			"terms", len(rs.Terms),
			"grades", len(rs.Grades),
			"records", rs.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, rs)
}

// LoggingQuerier wraps a Querier with logging.
type LoggingQuerier struct {
	next   gradeforge.Querier
	logger *slog.Logger
}

// NewLoggingQuerier creates a new LoggingQuerier.
func NewLoggingQuerier(next gradeforge.Querier, logger *slog.Logger) *LoggingQuerier {
	return &LoggingQuerier{next: next, logger: logger}
}

// Query delegates to the wrapped querier and logs the operation.
func (q *LoggingQuerier) Query(ctx context.Context, query string) (rows [][]string, err error) {
	defer func(begin time.Time) {
		q.logger.Debug("query",
			"query", query,
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return q.next.Query(ctx, query)
}

// Dump delegates to the wrapped querier and logs the operation.
func (q *LoggingQuerier) Dump(ctx context.Context) (rows [][]string, err error) {
	defer func(begin time.Time) {
		q.logger.Debug("dump",
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return q.next.Dump(ctx)
}

// Schema delegates to the wrapped querier.
func (q *LoggingQuerier) Schema(ctx context.Context) ([][]string, error) {
	return q.next.Schema(ctx)
}

// LoggingRecordStore wraps a RecordStore with logging.
type LoggingRecordStore struct {
	next   gradeforge.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next gradeforge.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) Save(ctx context.Context, rs *gradeforge.RecordSet) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save records",
			"records", rs.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, rs)
}

// Commit delegates to the wrapped store.
func (s *LoggingRecordStore) Commit() error {
	err := s.next.Commit()
	s.logger.Debug("commit records", "err", err)
	return err
}

// Abort delegates to the wrapped store and logs that the batch was discarded.
func (s *LoggingRecordStore) Abort() error {
	err := s.next.Abort()
	s.logger.Warn("abort records", "err", err)
	return err
}
