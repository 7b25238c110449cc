package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
	"github.com/omnichat/omnichat-go/internal/domain/ports"
)

// InferUseCase runs the retrieval-augmented inference pipeline: extract the
// query from the last turn, retrieve document context, inject it as a system
// turn, call the model runner, and compute call metrics.
type InferUseCase struct {
	retriever *RetrieveUseCase
	augmenter *Augmenter
	gateway   ports.InferenceGateway
}

// NewInferUseCase creates an InferUseCase with injected dependencies.
func NewInferUseCase(retriever *RetrieveUseCase, augmenter *Augmenter, gateway ports.InferenceGateway) *InferUseCase {
	return &InferUseCase{
		retriever: retriever,
		augmenter: augmenter,
		gateway:   gateway,
	}
}

// Infer executes one inference call. The conversation must hold at least one
// turn. A generation failure is logged in full and propagated; there are no
// partial results and no retries.
func (uc *InferUseCase) Infer(ctx context.Context, conv entities.Conversation) (*entities.InferenceResult, error) {
	if len(conv) == 0 {
		return nil, entities.ErrEmptyConversation
	}

	if query := ExtractQuery(conv); query != "" {
		chunks, err := uc.retriever.RetrieveContext(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("retrieving context: %w", err)
		}
		conv = uc.augmenter.Augment(conv, chunks)
	}

	start := time.Now()
	result, err := uc.gateway.Generate(ctx, conv)
	if err != nil {
		log.Error().Err(err).Int("turns", len(conv)).Msg("generation failed")
		return nil, fmt.Errorf("generating response: %w", err)
	}

	return &entities.InferenceResult{
		Response: result.Text(),
		Metrics:  entities.ComputeMetrics(start, time.Now(), result.TokenCount),
	}, nil
}
