package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"sqlcoach/internal/config"
	"sqlcoach/internal/loader"
	"sqlcoach/internal/trainclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()

	client := trainclient.NewClient(cfg.ServiceURL, cfg.HTTPTimeout)
	l := loader.New(client, cfg.DataDir)

	slog.Info("Starting training run", "service_url", cfg.ServiceURL, "data_dir", cfg.DataDir)

	summary, err := l.Run(ctx)
	if err != nil {
		// Unreachable service: all subsequent submissions would fail
		// identically, so the run aborted early.
		slog.Error("Training run aborted", "error", err)
		os.Exit(1)
	}

	slog.Info("Training summary",
		"auto_train_ok", summary.AutoTrainOK,
		"ddl_submitted", summary.DDL.Submitted,
		"ddl_failed", summary.DDL.Failed,
		"ddl_skipped", summary.DDL.Skipped,
		"docs_submitted", summary.Documentation.Submitted,
		"docs_failed", summary.Documentation.Failed,
		"docs_skipped", summary.Documentation.Skipped,
		"examples_submitted", summary.Examples.Submitted,
		"examples_failed", summary.Examples.Failed,
		"examples_skipped", summary.Examples.Skipped,
		"parse_failures", summary.ParseFailures,
		"total_failures", summary.Failures(),
	)

	// Re-running submits the same material again; deduplication is the
	// query service's concern, not the loader's.
}
