package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/easeaico/emomind/internal/types"
)

// moodEventModel maps to the mood_events table.
type moodEventModel struct {
	ID           int
	Utterance    string
	TopEmotion   string
	TopSentiment string
	FromState    string
	ToState      string
	// Embedding stores the utterance vector for similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (moodEventModel) TableName() string {
	return "mood_events"
}

// MoodEventRepo accesses mood event data.
type MoodEventRepo struct {
	db *gorm.DB
}

// NewMoodEventRepo returns a MoodEventRepo.
func NewMoodEventRepo(db *gorm.DB) *MoodEventRepo {
	return &MoodEventRepo{db: db}
}

// RecordEvent inserts one classification cycle.
func (r *MoodEventRepo) RecordEvent(ctx context.Context, event types.MoodEvent) error {
	var vector *pgvector.Vector
	if len(event.Embedding) > 0 {
		v := pgvector.NewVector(event.Embedding)
		vector = &v
	}
	record := moodEventModel{
		Utterance:    event.Utterance,
		TopEmotion:   event.TopEmotion,
		TopSentiment: event.TopSentiment,
		FromState:    event.FromState,
		ToState:      event.ToState,
		Embedding:    vector,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert mood event: %w", err)
	}
	return nil
}

// Recent returns the latest events, newest first.
func (r *MoodEventRepo) Recent(ctx context.Context, limit int) ([]types.MoodEvent, error) {
	var records []moodEventModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query recent mood events: %w", err)
	}

	events := make([]types.MoodEvent, 0, len(records))
	for _, record := range records {
		events = append(events, types.MoodEvent{
			ID:           record.ID,
			Utterance:    record.Utterance,
			TopEmotion:   record.TopEmotion,
			TopSentiment: record.TopSentiment,
			FromState:    record.FromState,
			ToState:      record.ToState,
			CreatedAt:    record.CreatedAt,
		})
	}
	return events, nil
}

// SearchSimilar returns past moments within the cosine similarity
// threshold, most similar first.
func (r *MoodEventRepo) SearchSimilar(ctx context.Context, embedding []float32, topK int, threshold float64) ([]types.RecalledMoment, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	query := `
		SELECT utterance, to_state, created_at,
		       1 - (embedding <=> $1) AS similarity
		FROM mood_events
		WHERE embedding IS NOT NULL AND 1 - (embedding <=> $1) > $2
		ORDER BY similarity DESC
		LIMIT $3`

	var results []types.RecalledMoment
	if err := r.db.WithContext(ctx).
		Raw(query, pgvector.NewVector(embedding), threshold, topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar moments: %w", err)
	}
	return results, nil
}
