package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TextExtractor reads plain text files as UTF-8. Undecodable bytes are
// dropped rather than failing the whole file.
type TextExtractor struct{}

// NewTextExtractor creates a plain text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the file's content with invalid UTF-8 sequences removed.
func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// Extensions returns file extensions this extractor handles.
func (e *TextExtractor) Extensions() []string {
	return []string{".txt"}
}
