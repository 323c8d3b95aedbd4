package extractor

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderColumn(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		want string
	}{
		{
			name: "plain int",
			col:  Column{Name: "id", DataType: "int", Nullable: true},
			want: "    id INT",
		},
		{
			name: "varchar with length",
			col:  Column{Name: "name", DataType: "varchar", CharLen: 100, Nullable: false},
			want: "    name VARCHAR(100) NOT NULL",
		},
		{
			name: "nvarchar max",
			col:  Column{Name: "notes", DataType: "nvarchar", CharLen: -1, Nullable: true},
			want: "    notes NVARCHAR(MAX)",
		},
		{
			name: "decimal with precision and scale",
			col:  Column{Name: "total", DataType: "decimal", NumPrec: 18, NumScale: 2, Nullable: true},
			want: "    total DECIMAL(18,2)",
		},
		{
			name: "decimal precision only",
			col:  Column{Name: "qty", DataType: "numeric", NumPrec: 10, Nullable: false},
			want: "    qty NUMERIC(10) NOT NULL",
		},
		{
			name: "default value",
			col:  Column{Name: "created_at", DataType: "datetime2", Nullable: false, Default: "(getdate())"},
			want: "    created_at DATETIME2 NOT NULL DEFAULT (getdate())",
		},
		{
			name: "char length ignored for unsized types",
			col:  Column{Name: "flag", DataType: "bit", CharLen: 1, Nullable: true},
			want: "    flag BIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderColumn(tt.col); got != tt.want {
				t.Errorf("renderColumn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTables(t *testing.T) {
	cols := []Column{
		{Name: "id", DataType: "int", Nullable: false, TableName: "dbo.customers"},
		{Name: "name", DataType: "varchar", CharLen: 100, Nullable: false, TableName: "dbo.customers"},
		{Name: "id", DataType: "int", Nullable: false, TableName: "dbo.orders"},
		{Name: "customer_id", DataType: "int", Nullable: true, TableName: "dbo.orders"},
	}

	got, count := renderTables(cols)
	if count != 2 {
		t.Errorf("renderTables() count = %d, want 2", count)
	}

	want := `-- Table Definitions
-- Generated automatically from database schema

CREATE TABLE dbo.customers (
    id INT NOT NULL,
    name VARCHAR(100) NOT NULL
);

CREATE TABLE dbo.orders (
    id INT NOT NULL,
    customer_id INT
);

`
	if got != want {
		t.Errorf("renderTables() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTables_Empty(t *testing.T) {
	got, count := renderTables(nil)
	if count != 0 {
		t.Errorf("renderTables() count = %d, want 0", count)
	}
	if !strings.HasPrefix(got, "-- Table Definitions") {
		t.Errorf("renderTables() header missing:\n%s", got)
	}
	if strings.Contains(got, "CREATE TABLE") {
		t.Errorf("renderTables() emitted a table for empty input:\n%s", got)
	}
}

func TestRenderPrimaryKeys(t *testing.T) {
	pks := []PrimaryKey{
		{Schema: "dbo", Table: "customers", Constraint: "PK_customers", Columns: []string{"id"}},
		{Schema: "dbo", Table: "order_items", Constraint: "PK_order_items", Columns: []string{"order_id", "line_no"}},
	}

	got, count := renderPrimaryKeys(pks)
	if count != 2 {
		t.Errorf("renderPrimaryKeys() count = %d, want 2", count)
	}
	for _, want := range []string{
		"ALTER TABLE dbo.customers\nADD CONSTRAINT PK_customers PRIMARY KEY (id);",
		"ADD CONSTRAINT PK_order_items PRIMARY KEY (order_id, line_no);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderPrimaryKeys() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderForeignKeys(t *testing.T) {
	fks := []ForeignKey{
		{
			Constraint:   "FK_orders_customers",
			ParentSchema: "dbo", ParentTable: "orders", ParentColumn: "customer_id",
			RefSchema: "dbo", RefTable: "customers", RefColumn: "id",
		},
	}

	got, count := renderForeignKeys(fks)
	if count != 1 {
		t.Errorf("renderForeignKeys() count = %d, want 1", count)
	}
	want := "ALTER TABLE dbo.orders\nADD CONSTRAINT FK_orders_customers FOREIGN KEY (customer_id)\nREFERENCES dbo.customers(id);"
	if !strings.Contains(got, want) {
		t.Errorf("renderForeignKeys() missing %q in:\n%s", want, got)
	}
}

func TestRenderViews(t *testing.T) {
	views := []View{
		{Schema: "dbo", Name: "active_customers", Definition: "SELECT * FROM dbo.customers WHERE active = 1;\n"},
	}

	got, count := renderViews(views)
	if count != 1 {
		t.Errorf("renderViews() count = %d, want 1", count)
	}
	// Trailing semicolon and whitespace are normalized to exactly one ";".
	want := "CREATE VIEW dbo.active_customers AS\nSELECT * FROM dbo.customers WHERE active = 1;\n"
	if !strings.Contains(got, want) {
		t.Errorf("renderViews() missing %q in:\n%s", want, got)
	}
	if strings.Contains(got, ";;") {
		t.Errorf("renderViews() duplicated trailing semicolon:\n%s", got)
	}
}

func TestRenderIndexes(t *testing.T) {
	idxs := []Index{
		{Schema: "dbo", Table: "orders", Name: "IX_orders_customer", Unique: false, Columns: []string{"customer_id"}},
		{Schema: "dbo", Table: "customers", Name: "UX_customers_email", Unique: true, Columns: []string{"email"}},
	}

	got, count := renderIndexes(idxs)
	if count != 2 {
		t.Errorf("renderIndexes() count = %d, want 2", count)
	}
	for _, want := range []string{
		"CREATE INDEX IX_orders_customer\nON dbo.orders (customer_id);",
		"CREATE UNIQUE INDEX UX_customers_email\nON dbo.customers (email);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderIndexes() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderProcedures(t *testing.T) {
	procs := []Procedure{
		{Schema: "dbo", Name: "usp_monthly_totals", Definition: "CREATE PROCEDURE dbo.usp_monthly_totals AS\nSELECT 1\n"},
	}

	got, count := renderProcedures(procs)
	if count != 1 {
		t.Errorf("renderProcedures() count = %d, want 1", count)
	}
	for _, want := range []string{
		"-- dbo.usp_monthly_totals\n",
		"CREATE PROCEDURE dbo.usp_monthly_totals AS\nSELECT 1;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderProcedures() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	counts := map[string]int{
		"tables":            12,
		"primary_keys":      10,
		"foreign_keys":      8,
		"views":             3,
		"indexes":           5,
		"stored_procedures": 2,
	}

	got := renderSummary("warehouse", counts)

	for _, want := range []string{
		"-- Database: warehouse",
		"- Tables: 12",
		"- Primary Keys: 10",
		"- Foreign Keys: 8",
		"- Views: 3",
		"- Indexes: 5",
		"- Stored Procedures: 2",
		"01_tables.sql",
		"06_stored_procedures.sql",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderSummary() missing %q in:\n%s", want, got)
		}
	}
}

// Re-running a renderer over the same input must produce the same bytes, so
// generated files only change when the schema changes.
func TestRenderDeterminism(t *testing.T) {
	cols := []Column{
		{Name: "id", DataType: "int", Nullable: false, TableName: "dbo.customers"},
		{Name: "email", DataType: "nvarchar", CharLen: 255, Nullable: true, TableName: "dbo.customers"},
	}
	counts := map[string]int{"tables": 1}

	first, _ := renderTables(cols)
	second, _ := renderTables(cols)
	if first != second {
		t.Error("renderTables() output differs between identical runs")
	}

	if renderSummary("db", counts) != renderSummary("db", counts) {
		t.Error("renderSummary() output differs between identical runs")
	}
}

func TestSplitColumnList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single column", "id", []string{"id"}},
		{"multiple with spaces", "order_id, line_no", []string{"order_id", "line_no"}},
		{"no spaces", "a,b,c", []string{"a", "b", "c"}},
		{"empty string", "", []string{}},
		{"trailing comma", "id,", []string{"id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitColumnList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitColumnList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
