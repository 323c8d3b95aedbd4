package loader

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_train_service.go -package=mocks sqlcoach/internal/loader TrainService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"sqlcoach/internal/contextutil"
	"sqlcoach/internal/trainclient"
)

// TrainService is the surface of the query service the loader consumes.
// It is satisfied by *trainclient.Client.
type TrainService interface {
	Health(ctx context.Context) error
	TrainAuto(ctx context.Context) error
	TrainDDL(ctx context.Context, ddl string) error
	TrainDocumentation(ctx context.Context, documentation string) error
	TrainQuestionSQL(ctx context.Context, question, sql string) error
}

// CategoryStats accumulates per-category outcomes for the end-of-run report.
type CategoryStats struct {
	Submitted int
	Failed    int
	Skipped   int
}

// Summary is the end-of-run report. Nothing is silently dropped: every file
// and pair ends up in exactly one counter.
type Summary struct {
	AutoTrainOK   bool
	DDL           CategoryStats
	Documentation CategoryStats
	Examples      CategoryStats
	ParseFailures int
}

// Failures returns the total number of failed submissions and parse failures.
func (s *Summary) Failures() int {
	return s.DDL.Failed + s.Documentation.Failed + s.Examples.Failed + s.ParseFailures
}

// Loader walks the fixed data directory layout and submits every recognized
// file's content as training material.
//
// The loader does not deduplicate: re-running submits the same material
// again, and whether that produces duplicates is up to the query service.
type Loader struct {
	service TrainService
	dataDir string
	logger  *slog.Logger
}

// New creates a Loader over the given data root.
func New(service TrainService, dataDir string) *Loader {
	return &Loader{
		service: service,
		dataDir: dataDir,
		logger:  slog.Default(),
	}
}

// Run executes the full training sequence: health preflight, auto-training
// from the live schema, then ddl/, docs/, general/, and examples/ in that
// order. Each submission is independent; a failure is recorded and the run
// continues. Only an unreachable service aborts the run early, since every
// subsequent submission would fail identically.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)
	summary := &Summary{}

	if err := l.service.Health(ctx); err != nil {
		return summary, fmt.Errorf("preflight failed: %w", err)
	}

	// Auto-training from the live schema logically precedes file-based
	// augmentation; this is loader step order, not a service invariant.
	if err := l.service.TrainAuto(ctx); err != nil {
		if errors.Is(err, trainclient.ErrUnreachable) {
			return summary, err
		}
		logger.ErrorContext(ctx, "auto-training failed", "error", err)
	} else {
		summary.AutoTrainOK = true
		logger.InfoContext(ctx, "auto-training completed")
	}

	dirs := []struct {
		name  string
		stats *CategoryStats
	}{
		{DirDDL, &summary.DDL},
		{DirDocs, &summary.Documentation},
		{DirGeneral, &summary.Documentation},
		{DirExamples, &summary.Examples},
	}

	for _, d := range dirs {
		if err := l.processDir(ctx, d.name, d.stats, summary); err != nil {
			return summary, err
		}
	}

	logger.InfoContext(ctx, "training run completed",
		"auto_train_ok", summary.AutoTrainOK,
		"ddl_submitted", summary.DDL.Submitted,
		"ddl_failed", summary.DDL.Failed,
		"docs_submitted", summary.Documentation.Submitted,
		"docs_failed", summary.Documentation.Failed,
		"examples_submitted", summary.Examples.Submitted,
		"examples_failed", summary.Examples.Failed,
		"parse_failures", summary.ParseFailures,
		"skipped", summary.DDL.Skipped+summary.Documentation.Skipped+summary.Examples.Skipped,
	)

	return summary, nil
}

// processDir submits every recognized file in one subdirectory. Returns an
// error only when the service becomes unreachable.
func (l *Loader) processDir(ctx context.Context, subdir string, stats *CategoryStats, summary *Summary) error {
	logger := contextutil.LoggerFromContext(ctx)
	dirPath := filepath.Join(l.dataDir, subdir)

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.InfoContext(ctx, "directory does not exist, skipping", "dir", dirPath)
			return nil
		}
		logger.ErrorContext(ctx, "failed to read directory", "dir", dirPath, "error", err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		category := Classify(subdir, name)
		if category == CategorySkipped {
			logger.InfoContext(ctx, "unsupported file type, skipping", "dir", subdir, "file", name)
			stats.Skipped++
			continue
		}

		path := filepath.Join(dirPath, name)
		content, err := ExtractText(path)
		if err != nil {
			logger.ErrorContext(ctx, "failed to extract text", "file", path, "error", err)
			stats.Failed++
			continue
		}
		if content == "" {
			logger.InfoContext(ctx, "no content extracted, skipping", "file", path)
			stats.Skipped++
			continue
		}

		switch category {
		case CategoryDDL:
			if err := l.submit(ctx, stats, path, func() error {
				return l.service.TrainDDL(ctx, content)
			}); err != nil {
				return err
			}
		case CategoryDocumentation:
			if err := l.submit(ctx, stats, path, func() error {
				return l.service.TrainDocumentation(ctx, content)
			}); err != nil {
				return err
			}
		case CategoryExamples:
			if err := l.submitExamples(ctx, stats, summary, path, content); err != nil {
				return err
			}
		}
	}

	return nil
}

// submitExamples parses one examples file and submits each pair
// individually. A malformed pair fails only that pair, never the file.
func (l *Loader) submitExamples(ctx context.Context, stats *CategoryStats, summary *Summary, path, content string) error {
	logger := contextutil.LoggerFromContext(ctx)

	pairs, malformed := ParseExamples(content)
	if malformed > 0 {
		logger.WarnContext(ctx, "malformed example pairs", "file", path, "count", malformed)
		summary.ParseFailures += malformed
	}

	for _, pair := range pairs {
		if err := l.submit(ctx, stats, path, func() error {
			return l.service.TrainQuestionSQL(ctx, pair.Question, pair.SQL)
		}); err != nil {
			return err
		}
	}
	return nil
}

// submit runs one training submission and records the outcome. Unreachable
// errors propagate so the run aborts; everything else is recorded and
// swallowed.
func (l *Loader) submit(ctx context.Context, stats *CategoryStats, path string, fn func() error) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := fn(); err != nil {
		if errors.Is(err, trainclient.ErrUnreachable) {
			return err
		}
		logger.ErrorContext(ctx, "training submission failed", "file", path, "error", err)
		stats.Failed++
		return nil
	}
	stats.Submitted++
	logger.InfoContext(ctx, "training submission succeeded", "file", path)
	return nil
}
