package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/omnichat/omnichat-go/internal/domain/ports"
)

// RetrieveUseCase finds document context for a query. Matching is literal
// case-insensitive substring containment over full document texts, a
// deliberate placeholder for semantic retrieval: no excerpting, no ranking,
// first match wins positionally.
type RetrieveUseCase struct {
	store ports.DocumentStore
	topK  int
}

// NewRetrieveUseCase creates a RetrieveUseCase. topK caps how many matching
// documents are returned.
func NewRetrieveUseCase(store ports.DocumentStore, topK int) *RetrieveUseCase {
	if topK <= 0 {
		topK = 1
	}
	return &RetrieveUseCase{
		store: store,
		topK:  topK,
	}
}

// RetrieveContext returns up to topK matching document texts in ingestion
// order. When nothing matches but the store holds anything at all, the first
// ever ingested document is returned so the augmenter always has something to
// inject. An empty store yields an empty result.
func (uc *RetrieveUseCase) RetrieveContext(ctx context.Context, query string) ([]string, error) {
	docs, err := uc.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading document store: %w", err)
	}
	if len(docs) == 0 {
		return []string{}, nil
	}

	needle := strings.ToLower(query)
	var chunks []string
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Text), needle) {
			chunks = append(chunks, doc.Text)
			if len(chunks) >= uc.topK {
				break
			}
		}
	}

	if len(chunks) == 0 {
		// Crude but deterministic fallback: don't come back empty-handed
		// once any document exists.
		return []string{docs[0].Text}, nil
	}
	return chunks, nil
}
