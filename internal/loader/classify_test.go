package loader

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		subdir   string
		filename string
		want     Category
	}{
		{"sql in ddl dir", DirDDL, "01_tables.sql", CategoryDDL},
		{"uppercase extension", DirDDL, "TABLES.SQL", CategoryDDL},
		{"txt in ddl dir is skipped", DirDDL, "notes.txt", CategorySkipped},
		{"txt in docs dir", DirDocs, "business_terms.txt", CategoryDocumentation},
		{"md in docs dir", DirDocs, "glossary.md", CategoryDocumentation},
		{"pdf in docs dir", DirDocs, "handbook.pdf", CategoryDocumentation},
		{"txt in general dir", DirGeneral, "overview.txt", CategoryDocumentation},
		{"sql in docs dir is skipped", DirDocs, "queries.sql", CategorySkipped},
		{"txt in examples dir", DirExamples, "common_queries.txt", CategoryExamples},
		{"md in examples dir", DirExamples, "basic.md", CategoryExamples},
		{"pdf in examples dir is skipped", DirExamples, "scan.pdf", CategorySkipped},
		{"unknown extension", DirDocs, "image.png", CategorySkipped},
		{"no extension", DirDocs, "README", CategorySkipped},
		{"unknown directory", "misc", "file.txt", CategorySkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.subdir, tt.filename); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.subdir, tt.filename, got, tt.want)
			}
		})
	}
}
