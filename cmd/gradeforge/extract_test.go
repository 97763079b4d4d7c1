package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/batch"
	main "github.com/fwojciec/gradeforge/cmd/gradeforge"
	"github.com/fwojciec/gradeforge/fs"
	"github.com/fwojciec/gradeforge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractDeps(t *testing.T, runner *batch.Runner) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Source: &mock.DocumentSource{
			FetchDocumentFn: func(_ context.Context, name string) (*gradeforge.Document, error) {
				if name == "missing-catalog.html" {
					return nil, gradeforge.Errorf(gradeforge.ENOTFOUND, "document %q not found", name)
				}
				return &gradeforge.Document{Name: name, Kind: gradeforge.KindCatalog, Content: []byte(name)}, nil
			},
		},
		Runner: runner,
		NewStore: func(out string) gradeforge.RecordStore {
			return fs.NewRecordStore(filepath.Dir(out), filepath.Base(out))
		},
	}, stdout, stderr
}

func catalogRunner(err error) *batch.Runner {
	return &batch.Runner{
		Catalog: &mock.CatalogExtractor{
			ExtractCatalogFn: func(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Course, error) {
				if err != nil {
					return nil, err
				}
				ectx.ObserveDepartment("CSCE", "Computer Science")
				return []*gradeforge.Course{{Department: "CSCE", Code: doc.Name}}, nil
			},
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes the record set and reports counts", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "201808")
		deps, stdout, _ := extractDeps(t, catalogRunner(nil))

		err := (&main.ExtractCmd{Files: []string{"catalog-1.html", "catalog-2.html"}, Out: out}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Extracted 3 records from 2 documents into "+out)

		rs, err := fs.ReadRecordSet(out)
		require.NoError(t, err)
		assert.Len(t, rs.Courses, 2)
		assert.Len(t, rs.Departments, 1)
	})

	t.Run("reports documents recorded in the fingerprint file by an earlier run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		seen := filepath.Join(base, "seen.bloom")
		files := []string{"catalog-1.html", "catalog-2.html"}

		deps, stdout, _ := extractDeps(t, catalogRunner(nil))
		require.NoError(t, (&main.ExtractCmd{Files: files, Out: filepath.Join(base, "first"), Seen: seen}).Run(deps))
		assert.NotContains(t, stdout.String(), "earlier run")
		assert.FileExists(t, seen)

		deps, stdout, _ = extractDeps(t, catalogRunner(nil))
		err := (&main.ExtractCmd{Files: append(files, "catalog-3.html"), Out: filepath.Join(base, "second"), Seen: seen}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 documents were probably extracted by an earlier run")
		assert.Nil(t, deps.Runner.Seen)
	})

	t.Run("reports missing documents", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "201808")
		deps, _, stderr := extractDeps(t, catalogRunner(nil))

		err := (&main.ExtractCmd{Files: []string{"missing-catalog.html"}, Out: out}).Run(deps)

		assert.Equal(t, gradeforge.ENOTFOUND, gradeforge.ErrorCode(err))
		assert.Contains(t, stderr.String(), `document "missing-catalog.html" not found`)
	})

	t.Run("writes nothing when the batch fails", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		out := filepath.Join(base, "201808")
		deps, _, stderr := extractDeps(t, catalogRunner(&gradeforge.RecordError{
			Document: "catalog-1.html",
			Record:   0,
			Fields:   gradeforge.Fields{"code": "145"},
			Err:      gradeforge.Errorf(gradeforge.ESTRUCTURE, "expected header row"),
		}))

		err := (&main.ExtractCmd{Files: []string{"catalog-1.html"}, Out: out}).Run(deps)

		assert.Equal(t, gradeforge.ESTRUCTURE, gradeforge.ErrorCode(err))
		assert.Contains(t, stderr.String(), "fields: {code=145}")
		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("aborts the store when saving fails", func(t *testing.T) {
		t.Parallel()

		var aborted bool
		deps, _, _ := extractDeps(t, catalogRunner(nil))
		deps.NewStore = func(_ string) gradeforge.RecordStore {
			return &mock.RecordStore{
				SaveFn: func(_ context.Context, _ *gradeforge.RecordSet) error {
					return gradeforge.Errorf(gradeforge.EINTERNAL, "disk full")
				},
				AbortFn: func() error {
					aborted = true
					return nil
				},
			}
		}

		err := (&main.ExtractCmd{Files: []string{"catalog-1.html"}, Out: "out"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
	})
}
