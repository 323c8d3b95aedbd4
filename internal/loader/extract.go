package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ExtractText reads a file and returns its trainable text content.
// Plain read for .txt and .sql, AST-based plain-text rendering for .md,
// page-by-page text extraction for .pdf.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".md":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return markdownToText(raw), nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
}

// extractPDF extracts text from every page of a PDF file. A page that fails
// to decode fails the whole file; the loader records it as a per-file
// failure and continues with the next file.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

// markdownToText renders markdown to plain text by walking the goldmark AST.
// Headings, paragraphs, and list items become separate lines; fenced code
// blocks are kept verbatim since docs often embed SQL snippets.
func markdownToText(content []byte) string {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.Heading, *ast.Paragraph, *ast.ListItem, *ast.Blockquote:
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
		case *ast.FencedCodeBlock:
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			writeCodeLines(&b, node.BaseBlock, content)
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			writeCodeLines(&b, node.BaseBlock, content)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// writeCodeLines copies the raw lines of a code block.
func writeCodeLines(b *strings.Builder, block ast.BaseBlock, content []byte) {
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(content))
	}
}
