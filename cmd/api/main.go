package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"path/filepath"

	_ "github.com/microsoft/go-mssqldb"

	"sqlcoach/internal/config"
	"sqlcoach/internal/engine"
	"sqlcoach/internal/http"
	"sqlcoach/internal/llm"
	"sqlcoach/internal/storage"
	"sqlcoach/internal/vectorstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateService(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()

	// Initialize the training ledger
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Training ledger initialized", "path", cfg.DBPath)

	ledger := storage.NewTrainingRepo(db)

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.VectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.VectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.VectorSize, cfg.SSLVerify)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.VectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.VectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.VectorSize)

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.SSLVerify)

	// SQL Server is optional for the service; without it auto-training and
	// SQL execution are disabled.
	var sqlServer *sql.DB
	if err := cfg.ValidateDatabase(); err == nil {
		sqlServer, err = sql.Open("sqlserver", cfg.ConnString())
		if err != nil {
			log.Fatalf("Failed to open SQL Server connection: %v", err)
		}
		defer func() {
			_ = sqlServer.Close()
		}()
		if err := sqlServer.PingContext(ctx); err != nil {
			log.Fatalf("Failed to connect to SQL Server: %v", err)
		}
		slog.Info("SQL Server connected", "host", cfg.SQLServerHost, "database", cfg.SQLServerDB)
	} else {
		slog.Warn("SQL Server not configured; auto-training and SQL execution disabled", "reason", err)
	}

	eng := engine.New(embedder, vectorStore, cfg.QdrantCollection, ledger, llmClient, sqlServer, cfg.ExecuteSQL)
	slog.Info("Engine initialized", "execute_sql", cfg.ExecuteSQL)

	deps := &http.Deps{
		Engine:         eng,
		VectorStore:    vectorStore,
		CollectionName: cfg.QdrantCollection,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "ssl_verify", cfg.SSLVerify)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
