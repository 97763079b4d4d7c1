package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config gradeforge.Config
	Now    func() time.Time

	Source   gradeforge.DocumentSource
	Runner   *batch.Runner
	NewStore func(out string) gradeforge.RecordStore

	Loader  gradeforge.Loader
	Querier gradeforge.Querier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"GRADEFORGE_DB" help:"SQLite database path"`
	Config  string `short:"c" help:"JSON5 configuration file; a .local variant is merged over it"`
	Verbose bool   `short:"v" help:"Log debug records"`

	Extract  ExtractCmd  `cmd:"" help:"Extract records from downloaded portal documents"`
	Load     LoadCmd     `cmd:"" help:"Load an extraction directory into the database"`
	Query    QueryCmd    `cmd:"" help:"Run a SQL query against the database"`
	Dump     DumpCmd     `cmd:"" help:"Print every row of every table"`
	Schema   SchemaCmd   `cmd:"" help:"Print the database schema"`
	Semester SemesterCmd `cmd:"" help:"Print the portal code of a semester"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files []string `arg:"" help:"Document files; the kind is inferred from each name"`
	Out   string   `short:"o" required:"" help:"Output directory for the CSV files"`
	Kind  string   `short:"k" help:"Treat every file as this kind (catalog, sections, exam, bookstore, grades)"`
	Seen  string   `help:"Fingerprint file shared across runs; documents extracted before are reported"`

	Concurrency int `default:"8" help:"Files read at once; extraction stays sequential"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	Dir string `arg:"" help:"Extraction directory written by extract"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	SQL       string `arg:"" name:"sql" help:"Query to run; it is not validated"`
	Table     bool   `short:"t" help:"Render rows as a table"`
	Separator string `short:"s" default:"|" help:"Field separator"`
}

// DumpCmd is the "dump" subcommand.
type DumpCmd struct {
	Separator string `short:"s" default:"|" help:"Field separator"`
}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct{}

// SemesterCmd is the "semester" subcommand.
type SemesterCmd struct {
	Season    string `arg:"" optional:"" help:"fall, spring, summer or a 6-digit code; defaults to the season in progress"`
	Year      int    `arg:"" optional:"" help:"Four-digit year; defaults to the current year"`
	Bookstore bool   `short:"b" help:"Print the bookstore term notation instead"`
}
