package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"sqlcoach/internal/config"
	"sqlcoach/internal/extractor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateDatabase(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
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
	outDir := filepath.Join(cfg.DataDir, "ddl")

	ext, err := extractor.New(ctx, cfg.ConnString(), cfg.SQLServerDB, outDir)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		_ = ext.Close()
	}()
	slog.Info("Connected to database", "host", cfg.SQLServerHost, "database", cfg.SQLServerDB)

	summary, err := ext.Run(ctx)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	slog.Info("Extraction summary",
		"tables", summary.Counts["tables"],
		"primary_keys", summary.Counts["primary_keys"],
		"foreign_keys", summary.Counts["foreign_keys"],
		"views", summary.Counts["views"],
		"indexes", summary.Counts["indexes"],
		"stored_procedures", summary.Counts["stored_procedures"],
		"out_dir", outDir,
	)
	for step, stepErr := range summary.Failures {
		slog.Error("Extraction step failed", "step", step, "error", stepErr)
	}
}
