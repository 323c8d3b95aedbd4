package storage

import "time"

// Training kinds recorded in the ledger. They mirror the training endpoints.
const (
	KindDDL           = "ddl"
	KindDocumentation = "documentation"
	KindQuestionSQL   = "question_sql"
)

// TrainingItem is one row of the training ledger. ContentHash is the SHA-256
// of the submitted content (for question/SQL pairs, of "question\nsql").
type TrainingItem struct {
	ID          string
	Kind        string
	ContentHash string
	Question    string
	CreatedAt   time.Time
}
