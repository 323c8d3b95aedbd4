package loader

import (
	"path/filepath"
	"strings"
)

// Category is the training category a file is submitted under.
type Category string

const (
	// CategoryDDL covers schema definition files under ddl/.
	CategoryDDL Category = "ddl"
	// CategoryDocumentation covers files under docs/ and general/.
	CategoryDocumentation Category = "documentation"
	// CategoryExamples covers question/SQL pair files under examples/.
	CategoryExamples Category = "examples"
	// CategorySkipped marks files with unsupported extensions. Skipped is
	// never failed.
	CategorySkipped Category = "skipped"
)

// Fixed subdirectories under the data root. The loader processes them in
// this order, after auto-training.
const (
	DirDDL      = "ddl"
	DirDocs     = "docs"
	DirGeneral  = "general"
	DirExamples = "examples"
)

// Classify assigns exactly one category to a file based on its source
// subdirectory and extension. Unrecognized extensions classify as skipped.
func Classify(subdir, filename string) Category {
	ext := strings.ToLower(filepath.Ext(filename))

	switch subdir {
	case DirDDL:
		if ext == ".sql" {
			return CategoryDDL
		}
	case DirDocs, DirGeneral:
		switch ext {
		case ".txt", ".md", ".pdf":
			return CategoryDocumentation
		}
	case DirExamples:
		switch ext {
		case ".txt", ".md":
			return CategoryExamples
		}
	}
	return CategorySkipped
}
