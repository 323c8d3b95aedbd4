package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_training_store.go -package=mocks sqlcoach/internal/storage TrainingStore

import (
	"context"
	"database/sql"
	"fmt"
)

// TrainingStore defines the interface for training ledger operations.
type TrainingStore interface {
	// Insert inserts a training item. The item.ID must be set (UUID) before
	// calling this method.
	Insert(ctx context.Context, item *TrainingItem) error
	// Exists reports whether an item with the given kind and content hash is
	// already recorded.
	Exists(ctx context.Context, kind, contentHash string) (bool, error)
	// CountByKind returns the number of recorded items per kind.
	CountByKind(ctx context.Context) (map[string]int, error)
}

// TrainingRepo provides methods for training ledger operations.
// It implements the TrainingStore interface.
type TrainingRepo struct {
	db *sql.DB
}

// NewTrainingRepo creates a new TrainingRepo.
func NewTrainingRepo(db *sql.DB) *TrainingRepo {
	return &TrainingRepo{db: db}
}

// Insert inserts a training item into the ledger.
func (r *TrainingRepo) Insert(ctx context.Context, item *TrainingItem) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO training_items (id, kind, content_hash, question) VALUES (?, ?, ?, ?)",
		item.ID, item.Kind, item.ContentHash, item.Question,
	)
	if err != nil {
		return fmt.Errorf("failed to insert training item: %w", err)
	}
	return nil
}

// Exists reports whether an item with the given kind and content hash is
// already recorded.
func (r *TrainingRepo) Exists(ctx context.Context, kind, contentHash string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM training_items WHERE kind = ? AND content_hash = ?",
		kind, contentHash,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query training item: %w", err)
	}
	return count > 0, nil
}

// CountByKind returns the number of recorded items per kind.
func (r *TrainingRepo) CountByKind(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT kind, COUNT(1) FROM training_items GROUP BY kind",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query training counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan training count: %w", err)
		}
		counts[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return counts, nil
}
