package engine

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks sqlcoach/internal/engine Engine

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"sqlcoach/internal/storage"
	"sqlcoach/internal/vectorstore"
)

// Engine provides the training and query operations behind the HTTP API.
type Engine interface {
	// TrainAuto introspects the live database schema and trains one
	// documentation item per table. Returns the number of tables trained.
	TrainAuto(ctx context.Context) (int, error)
	// TrainDDL trains with one DDL statement block.
	TrainDDL(ctx context.Context, ddl string) error
	// TrainDocumentation trains with one documentation block.
	TrainDocumentation(ctx context.Context, documentation string) error
	// TrainQuestionSQL trains with one question/SQL example pair.
	TrainQuestionSQL(ctx context.Context, question, sqlText string) error
	// Ask generates SQL for a natural-language question, optionally
	// executing it against the database.
	Ask(ctx context.Context, question string) (AskResponse, error)
}

// Embedder generates vector embeddings for texts.
// Satisfied by *llm.EmbeddingsClient.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatClient generates chat completions.
// Satisfied by *llm.Client.
type ChatClient interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// AskResponse is the result of a natural-language query.
type AskResponse struct {
	SQL      string
	Executed bool
	Columns  []string
	Rows     [][]any
}

// sqlEngine implements the Engine interface.
type sqlEngine struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	ledger      storage.TrainingStore
	llmClient   ChatClient
	db          *sql.DB // nil when no SQL Server is configured
	executeSQL  bool
	logger      *slog.Logger
}

// New creates a new engine. db may be nil; auto-training and SQL execution
// then report an error instead of running.
func New(
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	ledger storage.TrainingStore,
	llmClient ChatClient,
	db *sql.DB,
	executeSQL bool,
) Engine {
	return &sqlEngine{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		ledger:      ledger,
		llmClient:   llmClient,
		db:          db,
		executeSQL:  executeSQL,
		logger:      slog.Default(),
	}
}

// TrainDDL trains with one DDL statement block.
func (e *sqlEngine) TrainDDL(ctx context.Context, ddl string) error {
	return e.train(ctx, storage.KindDDL, ddl, map[string]any{
		"kind":    storage.KindDDL,
		"content": ddl,
	})
}

// TrainDocumentation trains with one documentation block.
func (e *sqlEngine) TrainDocumentation(ctx context.Context, documentation string) error {
	return e.train(ctx, storage.KindDocumentation, documentation, map[string]any{
		"kind":    storage.KindDocumentation,
		"content": documentation,
	})
}

// TrainQuestionSQL trains with one question/SQL example pair. The question
// is what gets embedded; the payload carries both fields.
func (e *sqlEngine) TrainQuestionSQL(ctx context.Context, question, sqlText string) error {
	if err := e.trainEmbed(ctx, storage.KindQuestionSQL, question, question+"\n"+sqlText, map[string]any{
		"kind":     storage.KindQuestionSQL,
		"question": question,
		"sql":      sqlText,
	}); err != nil {
		return err
	}
	return nil
}

// train embeds content and records it. The embedded text and the hashed
// content are the same for DDL and documentation.
func (e *sqlEngine) train(ctx context.Context, kind, content string, meta map[string]any) error {
	return e.trainEmbed(ctx, kind, content, content, meta)
}

// trainEmbed is the shared training path: dedup check against the ledger,
// embed, upsert into the vector store, record in the ledger. Content already
// trained is accepted without re-embedding.
func (e *sqlEngine) trainEmbed(ctx context.Context, kind, embedText, hashContent string, meta map[string]any) error {
	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(hashContent)))

	exists, err := e.ledger.Exists(ctx, kind, hash)
	if err != nil {
		return fmt.Errorf("failed to check training ledger: %w", err)
	}
	if exists {
		e.logger.InfoContext(ctx, "training item already recorded, skipping embed", "kind", kind, "hash", hash)
		return nil
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{embedText})
	if err != nil {
		return fmt.Errorf("failed to embed content: %w", err)
	}
	if len(embeddings) == 0 {
		return fmt.Errorf("no embedding returned")
	}

	id := uuid.NewString()
	if err := e.vectorStore.Upsert(ctx, e.collection, []vectorstore.Point{
		{ID: id, Vec: embeddings[0], Meta: meta},
	}); err != nil {
		return fmt.Errorf("failed to store vector: %w", err)
	}

	item := &storage.TrainingItem{ID: id, Kind: kind, ContentHash: hash}
	if question, ok := meta["question"].(string); ok {
		item.Question = question
	}
	if err := e.ledger.Insert(ctx, item); err != nil {
		return fmt.Errorf("failed to record training item: %w", err)
	}

	e.logger.InfoContext(ctx, "training item recorded", "kind", kind, "id", id)
	return nil
}
