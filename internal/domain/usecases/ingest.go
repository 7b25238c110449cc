// Package usecases contains application business rules. Usecases orchestrate
// entities through port interfaces and carry no framework code.
package usecases

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
	"github.com/omnichat/omnichat-go/internal/domain/ports"
)

// folderPatterns are the non-recursive globs a folder ingest scans, in order.
// Two independent case-sensitive patterns; enumeration order within a pattern
// is whatever the filesystem returns.
var folderPatterns = []string{"*.txt", "*.pdf"}

// IngestUseCase extracts text from files and appends documents to the store.
type IngestUseCase struct {
	extractor ports.TextExtractor
	store     ports.DocumentStore
}

// NewIngestUseCase creates an IngestUseCase with injected dependencies.
func NewIngestUseCase(extractor ports.TextExtractor, store ports.DocumentStore) *IngestUseCase {
	return &IngestUseCase{
		extractor: extractor,
		store:     store,
	}
}

// IngestFile extracts text from the file at path and appends a document to
// the store. Extraction that yields no text is a failure (ErrEmptyDocument),
// not an error condition: the caller decides how to surface it. The store is
// never grown for a failed ingest.
func (uc *IngestUseCase) IngestFile(ctx context.Context, path string) (*entities.Document, error) {
	text, err := uc.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", filepath.Base(path), err)
	}
	if text == "" {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), entities.ErrEmptyDocument)
	}

	doc := entities.Document{
		ID:       uuid.NewString(),
		Filename: filepath.Base(path),
		Text:     text,
	}
	if err := uc.store.Append(ctx, doc); err != nil {
		return nil, fmt.Errorf("storing %s: %w", doc.Filename, err)
	}
	return &doc, nil
}

// IngestFolder scans folder non-recursively for *.txt and *.pdf files and
// ingests each match, returning the number of successes. One unreadable or
// empty file fails alone; it never aborts the rest of the scan.
func (uc *IngestUseCase) IngestFolder(ctx context.Context, folder string) (int, error) {
	count := 0
	for _, pattern := range folderPatterns {
		matches, err := filepath.Glob(filepath.Join(folder, pattern))
		if err != nil {
			return count, fmt.Errorf("scanning folder %s: %w", folder, err)
		}
		for _, path := range matches {
			if _, err := uc.IngestFile(ctx, path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping file during folder ingest")
				continue
			}
			count++
		}
	}
	return count, nil
}
