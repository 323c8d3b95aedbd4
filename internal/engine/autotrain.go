package engine

import (
	"context"
	"fmt"
	"strings"
)

const autoTrainQuery = `
SELECT TABLE_SCHEMA, TABLE_NAME, COLUMN_NAME, DATA_TYPE, IS_NULLABLE
FROM INFORMATION_SCHEMA.COLUMNS
ORDER BY TABLE_SCHEMA, TABLE_NAME, ORDINAL_POSITION`

// TrainAuto reads INFORMATION_SCHEMA.COLUMNS from the live database and
// trains one documentation item per table. Tables already trained (same
// rendered content) are deduplicated by the ledger like any other item.
func (e *sqlEngine) TrainAuto(ctx context.Context) (int, error) {
	if e.db == nil {
		return 0, fmt.Errorf("no database configured for auto-training")
	}

	rows, err := e.db.QueryContext(ctx, autoTrainQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to query information schema: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	// Rows arrive ordered by schema, table, ordinal, so tables form
	// consecutive runs.
	var (
		docs    []string
		current string
		b       strings.Builder
	)
	flush := func() {
		if current != "" {
			docs = append(docs, b.String())
		}
		b.Reset()
	}

	for rows.Next() {
		var schema, table, column, dataType, nullable string
		if err := rows.Scan(&schema, &table, &column, &dataType, &nullable); err != nil {
			return 0, fmt.Errorf("failed to scan column row: %w", err)
		}

		name := schema + "." + table
		if name != current {
			flush()
			current = name
			b.WriteString(fmt.Sprintf("Table %s has the following columns:\n", name))
		}
		null := "NOT NULL"
		if nullable != "NO" {
			null = "NULL"
		}
		b.WriteString(fmt.Sprintf("- %s %s %s\n", column, strings.ToUpper(dataType), null))
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("row iteration error: %w", err)
	}
	flush()

	for _, doc := range docs {
		if err := e.TrainDocumentation(ctx, doc); err != nil {
			return 0, fmt.Errorf("failed to train schema documentation: %w", err)
		}
	}

	e.logger.InfoContext(ctx, "auto-training completed", "tables", len(docs))
	return len(docs), nil
}
