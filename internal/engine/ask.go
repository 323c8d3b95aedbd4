package engine

import (
	"context"
	"fmt"
	"strings"

	"sqlcoach/internal/contextutil"
	"sqlcoach/internal/storage"
)

const (
	// How many items of each kind to retrieve as prompt context.
	contextK = 10
	// Cap on rows returned when executing generated SQL.
	maxResultRows = 100
)

const systemPrompt = `You are a SQL expert. Generate a single SQL query that answers the user's question, using only the tables, columns, and conventions shown in the provided context. Respond with the SQL query inside a fenced code block and nothing else.`

// Ask generates SQL for a natural-language question by retrieving related
// DDL, documentation, and example pairs, prompting the LLM, and optionally
// executing the generated statement.
func (e *sqlEngine) Ask(ctx context.Context, question string) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "query started", "question", question)

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return AskResponse{}, fmt.Errorf("failed to embed question: %w", err)
	}
	if len(embeddings) == 0 {
		return AskResponse{}, fmt.Errorf("no embedding returned for question")
	}
	queryVector := embeddings[0]

	prompt, err := e.buildPrompt(ctx, question, queryVector)
	if err != nil {
		return AskResponse{}, err
	}

	reply, err := e.llmClient.Chat(ctx, systemPrompt, prompt)
	if err != nil {
		return AskResponse{}, fmt.Errorf("failed to get llm completion: %w", err)
	}

	sqlText := extractSQL(reply)
	if sqlText == "" {
		return AskResponse{}, fmt.Errorf("llm reply contained no SQL")
	}
	logger.InfoContext(ctx, "sql generated", "sql", sqlText)

	resp := AskResponse{SQL: sqlText}

	if e.executeSQL && e.db != nil {
		columns, resultRows, err := e.runSQL(ctx, sqlText)
		if err != nil {
			// Generation succeeded; execution failure is reported alongside
			// the SQL rather than failing the whole query.
			logger.WarnContext(ctx, "generated sql failed to execute", "error", err)
			return resp, nil
		}
		resp.Executed = true
		resp.Columns = columns
		resp.Rows = resultRows
	}

	return resp, nil
}

// buildPrompt assembles the user prompt from retrieved training context.
func (e *sqlEngine) buildPrompt(ctx context.Context, question string, queryVector []float32) (string, error) {
	var b strings.Builder

	ddl, err := e.vectorStore.SearchByKind(ctx, e.collection, queryVector, contextK, storage.KindDDL)
	if err != nil {
		return "", fmt.Errorf("failed to search ddl context: %w", err)
	}
	if len(ddl) > 0 {
		b.WriteString("Schema definitions:\n\n")
		for _, r := range ddl {
			if content, ok := r.Meta["content"].(string); ok {
				b.WriteString(content)
				b.WriteString("\n\n")
			}
		}
	}

	docs, err := e.vectorStore.SearchByKind(ctx, e.collection, queryVector, contextK, storage.KindDocumentation)
	if err != nil {
		return "", fmt.Errorf("failed to search documentation context: %w", err)
	}
	if len(docs) > 0 {
		b.WriteString("Documentation:\n\n")
		for _, r := range docs {
			if content, ok := r.Meta["content"].(string); ok {
				b.WriteString(content)
				b.WriteString("\n\n")
			}
		}
	}

	examples, err := e.vectorStore.SearchByKind(ctx, e.collection, queryVector, contextK, storage.KindQuestionSQL)
	if err != nil {
		return "", fmt.Errorf("failed to search example context: %w", err)
	}
	if len(examples) > 0 {
		b.WriteString("Example question/SQL pairs:\n\n")
		for _, r := range examples {
			q, _ := r.Meta["question"].(string)
			s, _ := r.Meta["sql"].(string)
			if q != "" && s != "" {
				b.WriteString(fmt.Sprintf("Question: %s\nSQL: %s\n\n", q, s))
			}
		}
	}

	b.WriteString("Question: ")
	b.WriteString(question)
	return b.String(), nil
}

// extractSQL pulls the SQL statement out of an LLM reply. Fenced code blocks
// win; a bare reply is taken as-is.
func extractSQL(reply string) string {
	reply = strings.TrimSpace(reply)

	if idx := strings.Index(reply, "```"); idx >= 0 {
		rest := reply[idx+3:]
		// Drop an optional language tag on the fence line.
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			tag := strings.TrimSpace(rest[:nl])
			if tag == "" || strings.EqualFold(tag, "sql") {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	return reply
}

// runSQL executes generated SQL read-only and collects up to maxResultRows.
func (e *sqlEngine) runSQL(ctx context.Context, sqlText string) ([]string, [][]any, error) {
	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute sql: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var result [][]any
	for rows.Next() && len(result) < maxResultRows {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, v := range values {
			if raw, ok := v.([]byte); ok {
				values[i] = string(raw)
			}
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("row iteration error: %w", err)
	}

	return columns, result, nil
}
