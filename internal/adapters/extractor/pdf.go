package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text from PDF files page by page. A page with no
// extractable text (image-only scans) contributes an empty string; only a
// file that cannot be opened at all is an error.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract concatenates the extracted text of every page in order.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or malformed page: contributes nothing.
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// Extensions returns file extensions this extractor handles.
func (e *PDFExtractor) Extensions() []string {
	return []string{".pdf"}
}
