package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/easeaico/emomind/internal/types"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (e *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.vec, e.err
}

func (e *fakeEmbedder) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	return e.vec, e.err
}

type fakeSearcher struct {
	moments   []types.RecalledMoment
	gotTopK   int
	gotThresh float64
}

func (s *fakeSearcher) SearchSimilar(ctx context.Context, embedding []float32, topK int, threshold float64) ([]types.RecalledMoment, error) {
	s.gotTopK = topK
	s.gotThresh = threshold
	return s.moments, nil
}

func TestRecallReturnsMoments(t *testing.T) {
	searcher := &fakeSearcher{moments: []types.RecalledMoment{
		{Utterance: "lost my keys again", ToState: "Angry", Similarity: 0.92},
	}}
	service := NewService(&fakeEmbedder{vec: []float32{0.1, 0.2}}, searcher, 5, 0.7)

	moments, err := service.Recall(context.Background(), "I lost my wallet")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(moments) != 1 || moments[0].ToState != "Angry" {
		t.Fatalf("unexpected moments: %#v", moments)
	}
	if searcher.gotTopK != 5 || searcher.gotThresh != 0.7 {
		t.Fatalf("unexpected search params: %d/%f", searcher.gotTopK, searcher.gotThresh)
	}
}

func TestRecallEmptyUtterance(t *testing.T) {
	service := NewService(&fakeEmbedder{}, &fakeSearcher{}, 5, 0.7)
	moments, err := service.Recall(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if moments != nil {
		t.Fatalf("expected nil moments, got %#v", moments)
	}
}

func TestRecallEmbedderFailure(t *testing.T) {
	service := NewService(&fakeEmbedder{err: errors.New("quota")}, &fakeSearcher{}, 5, 0.7)
	if _, err := service.Recall(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmbedUtterance(t *testing.T) {
	service := NewService(&fakeEmbedder{vec: []float32{1, 2, 3}}, &fakeSearcher{}, 5, 0.7)
	vec, err := service.EmbedUtterance(context.Background(), "hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("unexpected vector: %v", vec)
	}
}
