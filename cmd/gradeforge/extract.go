package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/batch"
	"github.com/fwojciec/gradeforge/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	docs, err := batch.FetchAll(deps.Ctx, deps.Source, c.Files, c.Concurrency)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	runner := *deps.Runner
	if c.Seen != "" {
		if runner.Seen, err = fs.ReadSeenFilter(c.Seen); err != nil {
			reportError(deps.Stderr, err)
			return err
		}
	}

	result, err := runner.Run(deps.Ctx, docs)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	store := deps.NewStore(c.Out)
	if err := store.Save(deps.Ctx, result.Records); err != nil {
		_ = store.Abort()
		reportError(deps.Stderr, err)
		return err
	}
	if err := store.Commit(); err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	if runner.Seen != nil {
		if err := fs.WriteSeenFilter(c.Seen, runner.Seen); err != nil {
			reportError(deps.Stderr, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d records from %d documents into %s\n", result.Records.Len(), result.Documents, c.Out)
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d duplicate documents\n", result.Skipped)
	}
	if result.Repeated > 0 {
		fmt.Fprintf(deps.Stdout, "%d documents were probably extracted by an earlier run\n", result.Repeated)
	}
	if result.Warnings > 0 {
		fmt.Fprintf(deps.Stdout, "%d warnings logged\n", result.Warnings)
	}
	return nil
}

// reportError prints err for a human. Record errors include the fields
// decoded before the failure.
func reportError(w io.Writer, err error) {
	var re *gradeforge.RecordError
	if errors.As(err, &re) {
		fmt.Fprintf(w, "error: %s: record %d: %s\n", re.Document, re.Record, gradeforge.ErrorMessage(re.Err))
		fmt.Fprintf(w, "fields: %s\n", re.Fields)
		return
	}
	fmt.Fprintf(w, "error: %s\n", gradeforge.ErrorMessage(err))
}
