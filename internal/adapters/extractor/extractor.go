// Package extractor provides text extraction adapters implementing
// ports.TextExtractor, dispatched by file extension.
package extractor

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/omnichat/omnichat-go/internal/domain/ports"
)

// Registry dispatches extraction by file extension through a closed mapping.
// Unsupported extensions yield an empty string with no error; the ingestion
// layer treats that as a per-file failure.
type Registry struct {
	byExt map[string]ports.TextExtractor
}

// NewRegistry creates a registry with the built-in extractors registered.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]ports.TextExtractor)}
	r.register(NewTextExtractor())
	r.register(NewPDFExtractor())
	return r
}

func (r *Registry) register(e ports.TextExtractor) {
	for _, ext := range e.Extensions() {
		r.byExt[ext] = e
	}
}

// Extract routes to the extractor registered for the file's extension.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return "", nil
	}
	return e.Extract(ctx, path)
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
