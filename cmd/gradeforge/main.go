package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/batch"
	"github.com/fwojciec/gradeforge/fs"
	"github.com/fwojciec/gradeforge/goquery"
	"github.com/fwojciec/gradeforge/json5"
	"github.com/fwojciec/gradeforge/pdftext"
	gfslog "github.com/fwojciec/gradeforge/slog"
	"github.com/fwojciec/gradeforge/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides the configuration file when set.
	DBPath string

	// SQLite database used by the loader and querier.
	DB *sqlite.DB

	// Now returns the current time. Used for semester defaults.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gradeforge"),
		kong.Description("Extract and query university course registration data."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gradeforge --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	cfg, err := m.config(cli, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", gradeforge.ErrorMessage(err))
		return err
	}
	deps.Config = cfg

	switch strings.Fields(kongCtx.Command())[0] {
	case "extract":
		kind := gradeforge.KindUnknown
		if cli.Extract.Kind != "" {
			if kind, err = gradeforge.ParseDocumentKind(cli.Extract.Kind); err != nil {
				fmt.Fprintf(stderr, "error: %s\n", gradeforge.ErrorMessage(err))
				return err
			}
		}
		deps.Source = &fs.DocumentSource{Kind: kind}
		deps.Runner = newRunner(cfg, logger)
		deps.NewStore = func(out string) gradeforge.RecordStore {
			out = filepath.Clean(out)
			return gfslog.NewLoggingRecordStore(fs.NewRecordStore(filepath.Dir(out), filepath.Base(out)), logger)
		}

	case "load", "query", "dump", "schema":
		m.DB = sqlite.NewDB(cfg.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set GRADEFORGE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
		}
		defer m.Close()

		deps.Loader = gfslog.NewLoggingLoader(sqlite.NewLoader(m.DB), logger)
		deps.Querier = gfslog.NewLoggingQuerier(sqlite.NewQuerier(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

// config reads the configuration file, if any, and applies path overrides.
func (m *Main) config(cli *CLI, logger *slog.Logger) (gradeforge.Config, error) {
	cfg := gradeforge.DefaultConfig()
	if cli.Config != "" {
		var err error
		if cfg, err = json5.ReadConfig(cli.Config, logger); err != nil {
			return cfg, err
		}
	}
	if m.DBPath != "" {
		cfg.DBPath = m.DBPath
	}
	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}
	return cfg, nil
}

// newRunner wires the extractors for every document kind.
func newRunner(cfg gradeforge.Config, logger *slog.Logger) *batch.Runner {
	exams := goquery.NewExamExtractor()
	exams.Semester = cfg.Semester
	books := goquery.NewBookstoreExtractor()
	books.BaseURL = cfg.BaseURL

	return &batch.Runner{
		Catalog:  gfslog.NewLoggingCatalogExtractor(goquery.NewCatalogExtractor(), logger),
		Sections: gfslog.NewLoggingSectionExtractor(goquery.NewSectionExtractor(), logger),
		Exams:    gfslog.NewLoggingExamExtractor(exams, logger),
		Books:    gfslog.NewLoggingBookstoreExtractor(books, logger),
		Grades:   gfslog.NewLoggingGradeExtractor(pdftext.NewGradeExtractor(), logger),
		Policy:   cfg.Policy(),
		Logger:   logger,
	}
}
