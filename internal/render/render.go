// Package render turns raw document bytes into positioned text
// fragments. PDF input carries real typography and coordinates; the
// other formats synthesize both from document structure so the same
// classification pipeline runs downstream.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
	"golang.org/x/text/unicode/norm"
)

// Renderer converts raw document bytes into text fragments in reading
// order: page ascending, top to bottom within a page.
type Renderer interface {
	Render(r io.Reader, filename string) ([]fragment.TextFragment, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".html": true,
	".htm":  true,
	".md":   true,
	".txt":  true,
}

// ForFile returns the appropriate renderer for a filename.
func ForFile(filename string) (Renderer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFRenderer{}, nil
	case ".docx":
		return &DOCXRenderer{}, nil
	case ".html", ".htm":
		return &HTMLRenderer{}, nil
	case ".md", ".markdown":
		return &MarkdownRenderer{}, nil
	case ".txt":
		return &TextRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// cleanText NFC-normalizes and trims a rendered line. Returns "" for
// lines the pipeline should drop (empty or single characters).
func cleanText(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	if len([]rune(s)) <= 1 {
		return ""
	}
	return s
}
