package extractor

import (
	"fmt"
	"strings"
)

// Renderers turn catalog rows into SQL text. They are pure functions over
// already-ordered input, so the same schema always renders to the same bytes.

// renderTables builds CREATE TABLE statements from columns ordered by
// schema, table, and ordinal position. Consecutive rows with the same
// TableName belong to the same table.
func renderTables(cols []Column) (string, int) {
	var b strings.Builder
	b.WriteString("-- Table Definitions\n-- Generated automatically from database schema\n\n")

	count := 0
	var current string
	var defs []string

	flush := func() {
		if current == "" {
			return
		}
		b.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", current))
		b.WriteString(strings.Join(defs, ",\n"))
		b.WriteString("\n);\n\n")
		count++
	}

	for _, c := range cols {
		if c.TableName != current {
			flush()
			current = c.TableName
			defs = defs[:0]
		}
		defs = append(defs, renderColumn(c))
	}
	flush()

	return b.String(), count
}

// renderColumn builds a single column definition line.
func renderColumn(c Column) string {
	def := fmt.Sprintf("    %s %s", c.Name, strings.ToUpper(c.DataType))

	switch strings.ToUpper(c.DataType) {
	case "VARCHAR", "NVARCHAR", "CHAR", "NCHAR", "VARBINARY", "BINARY":
		if c.CharLen == -1 {
			def += "(MAX)"
		} else if c.CharLen > 0 {
			def += fmt.Sprintf("(%d)", c.CharLen)
		}
	case "DECIMAL", "NUMERIC":
		if c.NumPrec > 0 {
			if c.NumScale > 0 {
				def += fmt.Sprintf("(%d,%d)", c.NumPrec, c.NumScale)
			} else {
				def += fmt.Sprintf("(%d)", c.NumPrec)
			}
		}
	}

	if !c.Nullable {
		def += " NOT NULL"
	}
	if c.Default != "" {
		def += fmt.Sprintf(" DEFAULT %s", c.Default)
	}
	return def
}

func renderPrimaryKeys(pks []PrimaryKey) (string, int) {
	var b strings.Builder
	b.WriteString("-- Primary Key Constraints\n-- Generated automatically from database schema\n\n")

	for _, pk := range pks {
		b.WriteString(fmt.Sprintf("ALTER TABLE %s.%s\n", pk.Schema, pk.Table))
		b.WriteString(fmt.Sprintf("ADD CONSTRAINT %s PRIMARY KEY (%s);\n\n", pk.Constraint, strings.Join(pk.Columns, ", ")))
	}
	return b.String(), len(pks)
}

func renderForeignKeys(fks []ForeignKey) (string, int) {
	var b strings.Builder
	b.WriteString("-- Foreign Key Constraints\n-- Generated automatically from database schema\n\n")

	for _, fk := range fks {
		b.WriteString(fmt.Sprintf("ALTER TABLE %s.%s\n", fk.ParentSchema, fk.ParentTable))
		b.WriteString(fmt.Sprintf("ADD CONSTRAINT %s FOREIGN KEY (%s)\n", fk.Constraint, fk.ParentColumn))
		b.WriteString(fmt.Sprintf("REFERENCES %s.%s(%s);\n\n", fk.RefSchema, fk.RefTable, fk.RefColumn))
	}
	return b.String(), len(fks)
}

func renderViews(views []View) (string, int) {
	var b strings.Builder
	b.WriteString("-- View Definitions\n-- Generated automatically from database schema\n\n")

	for _, v := range views {
		b.WriteString(fmt.Sprintf("CREATE VIEW %s.%s AS\n", v.Schema, v.Name))
		b.WriteString(fmt.Sprintf("%s;\n\n", strings.TrimRight(v.Definition, " \t\r\n;")))
	}
	return b.String(), len(views)
}

func renderIndexes(idxs []Index) (string, int) {
	var b strings.Builder
	b.WriteString("-- Index Definitions\n-- Generated automatically from database schema\n\n")

	for _, idx := range idxs {
		unique := ""
		if idx.Unique {
			unique = "UNIQUE "
		}
		b.WriteString(fmt.Sprintf("CREATE %sINDEX %s\n", unique, idx.Name))
		b.WriteString(fmt.Sprintf("ON %s.%s (%s);\n\n", idx.Schema, idx.Table, strings.Join(idx.Columns, ", ")))
	}
	return b.String(), len(idxs)
}

func renderProcedures(procs []Procedure) (string, int) {
	var b strings.Builder
	b.WriteString("-- Stored Procedure Definitions\n-- Generated automatically from database schema\n\n")

	for _, p := range procs {
		b.WriteString(fmt.Sprintf("-- %s.%s\n", p.Schema, p.Name))
		b.WriteString(fmt.Sprintf("%s;\n\n", strings.TrimRight(p.Definition, " \t\r\n")))
	}
	return b.String(), len(procs)
}

// renderSummary builds the 00 summary file. It intentionally carries no
// timestamp so a re-run against an unchanged schema is byte-identical.
func renderSummary(database string, counts map[string]int) string {
	return fmt.Sprintf(`-- Database Schema Summary
-- Database: %s

/*
Schema Summary:
- Tables: %d
- Primary Keys: %d
- Foreign Keys: %d
- Views: %d
- Indexes: %d
- Stored Procedures: %d

Files Generated:
1. 01_tables.sql - Table definitions with columns and data types
2. 02_primary_keys.sql - Primary key constraints
3. 03_foreign_keys.sql - Foreign key relationships
4. 04_views.sql - View definitions
5. 05_indexes.sql - Index definitions
6. 06_stored_procedures.sql - Stored procedure definitions
*/
`, database,
		counts["tables"], counts["primary_keys"], counts["foreign_keys"],
		counts["views"], counts["indexes"], counts["stored_procedures"])
}

// splitColumnList splits a STRING_AGG "a, b, c" column list.
func splitColumnList(s string) []string {
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cols = append(cols, trimmed)
		}
	}
	return cols
}
