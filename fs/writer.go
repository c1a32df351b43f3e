// Package fs provides file-based output for extraction results.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/distill"
)

// SourceToPath converts an extraction source (a URL or a local file path)
// to a relative output file path.
// Example: https://example.com/news/local/story becomes news/local/story.md
func SourceToPath(source string) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", err
	}

	path := u.Path
	if path == "" && u.Opaque != "" {
		path = u.Opaque
	}

	// Root or bare host maps to index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Local HTML sources swap their extension for .md
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}

	path += ".md"
	if !filepath.IsLocal(path) {
		return "", distill.Errorf(distill.EINVALID, "path traversal in source %q", source)
	}

	return path, nil
}

// FormatExtraction formats an extraction with YAML frontmatter.
// Byline and site name lines appear only when known.
func FormatExtraction(ext *distill.Extraction) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(ext.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(ext.Title)
	if ext.Byline != "" {
		b.WriteString("\nbyline: ")
		b.WriteString(ext.Byline)
	}
	if ext.SiteName != "" {
		b.WriteString("\nsite: ")
		b.WriteString(ext.SiteName)
	}
	b.WriteString("\nextracted: ")
	b.WriteString(ext.ExtractedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(ext.Content)
	return b.String()
}

// Ensure Writer implements distill.ExtractionWriter at compile time.
var _ distill.ExtractionWriter = (*Writer)(nil)

// Writer writes extractions as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateExtraction writes an extraction to disk as a markdown file.
func (w *Writer) CreateExtraction(ctx context.Context, ext *distill.Extraction) error {
	if err := ext.Validate(); err != nil {
		return err
	}

	relPath, err := SourceToPath(ext.Source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatExtraction(ext)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
