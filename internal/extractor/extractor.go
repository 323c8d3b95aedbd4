package extractor

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/microsoft/go-mssqldb"

	"sqlcoach/internal/contextutil"
)

// Extractor introspects a SQL Server database and writes an ordered set of
// DDL snapshot files into outDir. The numeric filename prefixes fix the
// presentation order for downstream training; they carry no correctness
// meaning.
type Extractor struct {
	db       *sql.DB
	database string
	outDir   string
}

// Summary reports what each extraction category produced. Failed categories
// do not abort the run; they are recorded here instead.
type Summary struct {
	Counts   map[string]int
	Failures map[string]error
}

// New opens a connection to SQL Server and prepares the output directory.
// A connection failure is fatal: nothing can be extracted without the catalog.
func New(ctx context.Context, connString, database, outDir string) (*Extractor, error) {
	db, err := sql.Open("sqlserver", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open mssql connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", database, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Extractor{db: db, database: database, outDir: outDir}, nil
}

// Close releases the database connection.
func (e *Extractor) Close() error {
	return e.db.Close()
}

// step binds one extraction category to its output file.
type step struct {
	name string
	file string
	run  func(ctx context.Context) (string, int, error)
}

// Run performs all extraction categories. Each category is isolated: a
// failure (for example, missing permission on sys.sql_modules) is recorded
// in the summary and the remaining categories still run. Output files are
// truncated and rewritten, so re-running produces a fresh snapshot.
func (e *Extractor) Run(ctx context.Context) (*Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	steps := []step{
		{"tables", "01_tables.sql", func(ctx context.Context) (string, int, error) {
			cols, err := queryColumns(ctx, e.db)
			if err != nil {
				return "", 0, err
			}
			content, n := renderTables(cols)
			return content, n, nil
		}},
		{"primary_keys", "02_primary_keys.sql", func(ctx context.Context) (string, int, error) {
			pks, err := queryPrimaryKeys(ctx, e.db)
			if err != nil {
				return "", 0, err
			}
			content, n := renderPrimaryKeys(pks)
			return content, n, nil
		}},
		{"foreign_keys", "03_foreign_keys.sql", func(ctx context.Context) (string, int, error) {
			fks, err := queryForeignKeys(ctx, e.db)
			if err != nil {
				return "", 0, err
			}
			content, n := renderForeignKeys(fks)
			return content, n, nil
		}},
		{"views", "04_views.sql", func(ctx context.Context) (string, int, error) {
			views, err := queryViews(ctx, e.db)
			if err != nil {
				return "", 0, err
			}
			content, n := renderViews(views)
			return content, n, nil
		}},
		{"indexes", "05_indexes.sql", func(ctx context.Context) (string, int, error) {
			idxs, err := queryIndexes(ctx, e.db)
			if err != nil {
				return "", 0, err
			}
			content, n := renderIndexes(idxs)
			return content, n, nil
		}},
		{"stored_procedures", "06_stored_procedures.sql", func(ctx context.Context) (string, int, error) {
			procs, err := queryProcedures(ctx, e.db)
			if err != nil {
				return "", 0, err
			}
			content, n := renderProcedures(procs)
			return content, n, nil
		}},
	}

	summary := &Summary{
		Counts:   make(map[string]int),
		Failures: make(map[string]error),
	}

	for _, s := range steps {
		content, n, err := s.run(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "extraction step failed", "step", s.name, "error", err)
			summary.Failures[s.name] = err
			continue
		}
		path := filepath.Join(e.outDir, s.file)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			logger.ErrorContext(ctx, "failed to write output file", "step", s.name, "path", path, "error", err)
			summary.Failures[s.name] = fmt.Errorf("failed to write %s: %w", s.file, err)
			continue
		}
		summary.Counts[s.name] = n
		logger.InfoContext(ctx, "extraction step completed", "step", s.name, "count", n, "file", s.file)
	}

	// The summary file is written last so its counts reflect this run.
	summaryPath := filepath.Join(e.outDir, "00_schema_summary.sql")
	if err := os.WriteFile(summaryPath, []byte(renderSummary(e.database, summary.Counts)), 0644); err != nil {
		summary.Failures["schema_summary"] = fmt.Errorf("failed to write schema summary: %w", err)
	}

	return summary, nil
}
