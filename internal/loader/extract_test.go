package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractText_PlainFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{
			name:     "txt read verbatim",
			filename: "terms.txt",
			content:  "  OTIF: On Time In Full delivery percentage.\n",
			want:     "OTIF: On Time In Full delivery percentage.",
		},
		{
			name:     "sql read verbatim",
			filename: "tables.sql",
			content:  "CREATE TABLE customers (id INT);\n",
			want:     "CREATE TABLE customers (id INT);",
		},
		{
			name:     "empty file",
			filename: "empty.txt",
			content:  "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			got, err := ExtractText(path)
			if err != nil {
				t.Fatalf("ExtractText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("ExtractText() expected error for missing file")
	}
}

func TestMarkdownToText(t *testing.T) {
	content := []byte(`# Business Terms

OTIF Score measures orders delivered *on time* and complete.

- Churn Rate
- Average Order Value

` + "```sql\nSELECT COUNT(*) FROM customers;\n```" + `

Final paragraph.
`)

	got := markdownToText(content)

	for _, want := range []string{
		"Business Terms",
		"OTIF Score measures orders delivered on time and complete.",
		"Churn Rate",
		"Average Order Value",
		"SELECT COUNT(*) FROM customers;",
		"Final paragraph.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdownToText() missing %q in output:\n%s", want, got)
		}
	}

	if strings.Contains(got, "```") || strings.Contains(got, "# ") || strings.Contains(got, "*on time*") {
		t.Errorf("markdownToText() output still contains markdown syntax:\n%s", got)
	}
}

func TestMarkdownToText_Empty(t *testing.T) {
	if got := markdownToText(nil); got != "" {
		t.Errorf("markdownToText(nil) = %q, want empty", got)
	}
}

func TestExtractText_InvalidPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Fatal("ExtractText() expected error for invalid PDF")
	}
}
