package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/gradeforge"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	rows, err := deps.Querier.Query(deps.Ctx, c.SQL)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	if c.Table {
		renderTable(deps.Stdout, rows)
		return nil
	}
	printRows(deps.Stdout, rows, c.Separator)
	return nil
}

// Run executes the dump command.
func (c *DumpCmd) Run(deps *Dependencies) error {
	rows, err := deps.Querier.Dump(deps.Ctx)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	printRows(deps.Stdout, rows, c.Separator)
	return nil
}

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	rows, err := deps.Querier.Schema(deps.Ctx)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	for _, row := range rows {
		fmt.Fprintf(deps.Stdout, "%s;\n", row[0])
	}
	return nil
}

func printRows(w io.Writer, rows [][]string, sep string) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, gradeforge.FormatRows(rows, sep))
}

func renderTable(w io.Writer, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		t.AppendRow(r)
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
