package extractor

import (
	"context"
	"database/sql"
	"fmt"
)

// Catalog queries against SQL Server system views. Every query carries an
// ORDER BY over schema, object, and ordinal so that rendering the results is
// deterministic across runs.

const columnsQuery = `
SELECT
    t.TABLE_SCHEMA,
    t.TABLE_NAME,
    c.COLUMN_NAME,
    c.DATA_TYPE,
    ISNULL(c.CHARACTER_MAXIMUM_LENGTH, 0),
    ISNULL(c.NUMERIC_PRECISION, 0),
    ISNULL(c.NUMERIC_SCALE, 0),
    c.IS_NULLABLE,
    ISNULL(c.COLUMN_DEFAULT, '')
FROM INFORMATION_SCHEMA.TABLES t
INNER JOIN INFORMATION_SCHEMA.COLUMNS c
    ON t.TABLE_NAME = c.TABLE_NAME
    AND t.TABLE_SCHEMA = c.TABLE_SCHEMA
WHERE t.TABLE_TYPE = 'BASE TABLE'
ORDER BY t.TABLE_SCHEMA, t.TABLE_NAME, c.ORDINAL_POSITION`

const primaryKeysQuery = `
SELECT
    tc.TABLE_SCHEMA,
    tc.TABLE_NAME,
    tc.CONSTRAINT_NAME,
    STRING_AGG(kcu.COLUMN_NAME, ', ') WITHIN GROUP (ORDER BY kcu.ORDINAL_POSITION)
FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
INNER JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
    ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
    AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA
    AND tc.TABLE_NAME = kcu.TABLE_NAME
WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
GROUP BY tc.TABLE_SCHEMA, tc.TABLE_NAME, tc.CONSTRAINT_NAME
ORDER BY tc.TABLE_SCHEMA, tc.TABLE_NAME`

const foreignKeysQuery = `
SELECT
    fk.name,
    sp.name,
    tp.name,
    cp.name,
    sr.name,
    tr.name,
    cr.name
FROM sys.foreign_keys fk
INNER JOIN sys.foreign_key_columns fkc ON fk.object_id = fkc.constraint_object_id
INNER JOIN sys.tables tp ON fk.parent_object_id = tp.object_id
INNER JOIN sys.schemas sp ON tp.schema_id = sp.schema_id
INNER JOIN sys.columns cp ON fkc.parent_object_id = cp.object_id AND fkc.parent_column_id = cp.column_id
INNER JOIN sys.tables tr ON fk.referenced_object_id = tr.object_id
INNER JOIN sys.schemas sr ON tr.schema_id = sr.schema_id
INNER JOIN sys.columns cr ON fkc.referenced_object_id = cr.object_id AND fkc.referenced_column_id = cr.column_id
ORDER BY sp.name, tp.name, fk.name, fkc.constraint_column_id`

const viewsQuery = `
SELECT TABLE_SCHEMA, TABLE_NAME, VIEW_DEFINITION
FROM INFORMATION_SCHEMA.VIEWS
ORDER BY TABLE_SCHEMA, TABLE_NAME`

const indexesQuery = `
SELECT
    s.name,
    t.name,
    i.name,
    i.is_unique,
    STRING_AGG(c.name, ', ') WITHIN GROUP (ORDER BY ic.key_ordinal)
FROM sys.indexes i
INNER JOIN sys.tables t ON i.object_id = t.object_id
INNER JOIN sys.schemas s ON t.schema_id = s.schema_id
INNER JOIN sys.index_columns ic ON i.object_id = ic.object_id AND i.index_id = ic.index_id
INNER JOIN sys.columns c ON ic.object_id = c.object_id AND ic.column_id = c.column_id
WHERE i.type > 0
  AND i.is_primary_key = 0
  AND i.is_unique_constraint = 0
GROUP BY s.name, t.name, i.name, i.is_unique
ORDER BY s.name, t.name, i.name`

const proceduresQuery = `
SELECT s.name, p.name, m.definition
FROM sys.procedures p
INNER JOIN sys.schemas s ON p.schema_id = s.schema_id
INNER JOIN sys.sql_modules m ON p.object_id = m.object_id
ORDER BY s.name, p.name`

// queryColumns reads every base-table column in catalog order.
func queryColumns(ctx context.Context, db *sql.DB) ([]Column, error) {
	rows, err := db.QueryContext(ctx, columnsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var cols []Column
	for rows.Next() {
		var (
			schema, table, name, dataType, nullable, def string
			charLen, numPrec, numScale                   int64
		)
		if err := rows.Scan(&schema, &table, &name, &dataType, &charLen, &numPrec, &numScale, &nullable, &def); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		cols = append(cols, Column{
			Name:      name,
			DataType:  dataType,
			CharLen:   charLen,
			NumPrec:   numPrec,
			NumScale:  numScale,
			Nullable:  nullable != "NO",
			Default:   def,
			TableName: schema + "." + table,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return cols, nil
}

func queryPrimaryKeys(ctx context.Context, db *sql.DB) ([]PrimaryKey, error) {
	rows, err := db.QueryContext(ctx, primaryKeysQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query primary keys: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var pks []PrimaryKey
	for rows.Next() {
		var pk PrimaryKey
		var cols string
		if err := rows.Scan(&pk.Schema, &pk.Table, &pk.Constraint, &cols); err != nil {
			return nil, fmt.Errorf("failed to scan primary key row: %w", err)
		}
		pk.Columns = splitColumnList(cols)
		pks = append(pks, pk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return pks, nil
}

func queryForeignKeys(ctx context.Context, db *sql.DB) ([]ForeignKey, error) {
	rows, err := db.QueryContext(ctx, foreignKeysQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var fks []ForeignKey
	for rows.Next() {
		var fk ForeignKey
		if err := rows.Scan(&fk.Constraint, &fk.ParentSchema, &fk.ParentTable, &fk.ParentColumn,
			&fk.RefSchema, &fk.RefTable, &fk.RefColumn); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key row: %w", err)
		}
		fks = append(fks, fk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return fks, nil
}

func queryViews(ctx context.Context, db *sql.DB) ([]View, error) {
	rows, err := db.QueryContext(ctx, viewsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var views []View
	for rows.Next() {
		var v View
		if err := rows.Scan(&v.Schema, &v.Name, &v.Definition); err != nil {
			return nil, fmt.Errorf("failed to scan view row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return views, nil
}

func queryIndexes(ctx context.Context, db *sql.DB) ([]Index, error) {
	rows, err := db.QueryContext(ctx, indexesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query indexes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var idxs []Index
	for rows.Next() {
		var idx Index
		var cols string
		if err := rows.Scan(&idx.Schema, &idx.Table, &idx.Name, &idx.Unique, &cols); err != nil {
			return nil, fmt.Errorf("failed to scan index row: %w", err)
		}
		idx.Columns = splitColumnList(cols)
		idxs = append(idxs, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return idxs, nil
}

func queryProcedures(ctx context.Context, db *sql.DB) ([]Procedure, error) {
	rows, err := db.QueryContext(ctx, proceduresQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query stored procedures: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var procs []Procedure
	for rows.Next() {
		var p Procedure
		if err := rows.Scan(&p.Schema, &p.Name, &p.Definition); err != nil {
			return nil, fmt.Errorf("failed to scan procedure row: %w", err)
		}
		procs = append(procs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return procs, nil
}
