package memory

import (
	"context"
	"fmt"

	"github.com/easeaico/emomind/internal/types"
)

// MomentSearcher finds past mood events near an embedding.
type MomentSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, topK int, threshold float64) ([]types.RecalledMoment, error)
}

// Service embeds utterances for storage and recalls similar past
// moments for display alongside the current mood.
type Service struct {
	embedder            Embedder
	moments             MomentSearcher
	topK                int
	similarityThreshold float64
}

// NewService returns a memory service.
func NewService(embedder Embedder, moments MomentSearcher, topK int, threshold float64) *Service {
	return &Service{
		embedder:            embedder,
		moments:             moments,
		topK:                topK,
		similarityThreshold: threshold,
	}
}

// EmbedUtterance returns the document embedding for an utterance,
// suitable for storing with its mood event.
func (s *Service) EmbedUtterance(ctx context.Context, text string) ([]float32, error) {
	if s == nil || s.embedder == nil {
		return nil, fmt.Errorf("memory service not configured")
	}
	return s.embedder.EmbedDocument(ctx, text)
}

// Recall returns past moments similar to the utterance, most similar
// first. An empty utterance recalls nothing.
func (s *Service) Recall(ctx context.Context, text string) ([]types.RecalledMoment, error) {
	if s == nil || s.embedder == nil || s.moments == nil {
		return nil, fmt.Errorf("memory service not configured")
	}
	if text == "" {
		return nil, nil
	}

	vec, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	moments, err := s.moments.SearchSimilar(ctx, vec, s.topK, s.similarityThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar moments: %w", err)
	}
	return moments, nil
}
