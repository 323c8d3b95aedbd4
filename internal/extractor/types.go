package extractor

// Column describes one column of a base table, as read from
// INFORMATION_SCHEMA.COLUMNS.
type Column struct {
	Name      string
	DataType  string
	CharLen   int64 // -1 means MAX; 0 means not applicable
	NumPrec   int64
	NumScale  int64
	Nullable  bool
	Default   string
	TableName string // schema-qualified, e.g. "dbo.customers"
}

// PrimaryKey describes one primary key constraint with its ordered columns.
type PrimaryKey struct {
	Schema     string
	Table      string
	Constraint string
	Columns    []string
}

// ForeignKey describes one foreign key column pairing.
type ForeignKey struct {
	Constraint   string
	ParentSchema string
	ParentTable  string
	ParentColumn string
	RefSchema    string
	RefTable     string
	RefColumn    string
}

// View is a view definition as stored in INFORMATION_SCHEMA.VIEWS.
type View struct {
	Schema     string
	Name       string
	Definition string
}

// Index describes one index with its ordered key columns. Heaps, primary
// keys, and unique constraints are excluded at query time.
type Index struct {
	Schema  string
	Table   string
	Name    string
	Unique  bool
	Columns []string
}

// Procedure is a stored procedure body from sys.sql_modules.
type Procedure struct {
	Schema     string
	Name       string
	Definition string
}
