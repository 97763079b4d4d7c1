package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/mock"
	gfslog "github.com/fwojciec/gradeforge/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs record counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Loader{
			LoadFn: func(_ context.Context, _ *gradeforge.RecordSet) error { return nil },
		}
		rs := &gradeforge.RecordSet{
			Courses:  []*gradeforge.Course{{Code: "145"}},
			Sections: []*gradeforge.Section{{UID: "1"}, {UID: "2"}},
			Terms:    []*gradeforge.Term{{Semester: "201808"}},
		}

		err := gfslog.NewLoggingLoader(inner, logger).Load(context.Background(), rs)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=load")
		assert.Contains(t, output, "sections=2")
		assert.Contains(t, output, "records=4")
	})

	t.Run("logs and returns the inner error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		expectedErr := errors.New("constraint failed")
		inner := &mock.Loader{
			LoadFn: func(_ context.Context, _ *gradeforge.RecordSet) error { return expectedErr },
		}

		err := gfslog.NewLoggingLoader(inner, logger).Load(context.Background(), &gradeforge.RecordSet{})

		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, buf.String(), `err="constraint failed"`)
	})
}

func TestLoggingQuerier(t *testing.T) {
	t.Parallel()

	t.Run("logs queries at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Querier{
			QueryFn: func(_ context.Context, _ string) ([][]string, error) {
				return [][]string{{"CSCE", "145"}}, nil
			},
		}

		rows, err := gfslog.NewLoggingQuerier(inner, logger).Query(context.Background(), "SELECT * FROM class")

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"CSCE", "145"}}, rows)
		assert.Contains(t, buf.String(), `query="SELECT * FROM class"`)
		assert.Contains(t, buf.String(), "rows=1")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Querier{
			DumpFn: func(_ context.Context) ([][]string, error) { return nil, nil },
		}

		_, err := gfslog.NewLoggingQuerier(inner, logger).Dump(context.Background())

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingRecordStore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RecordStore{
		SaveFn:  func(_ context.Context, _ *gradeforge.RecordSet) error { return nil },
		AbortFn: func() error { return nil },
	}
	store := gfslog.NewLoggingRecordStore(inner, logger)

	require.NoError(t, store.Save(context.Background(), &gradeforge.RecordSet{Books: []*gradeforge.Book{{Title: "SICP"}}}))
	require.NoError(t, store.Abort())

	output := buf.String()
	assert.Contains(t, output, "save records")
	assert.Contains(t, output, "records=1")
	assert.Contains(t, output, "abort records")
}
