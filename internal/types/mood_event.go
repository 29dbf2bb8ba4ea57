package types

import "time"

// MoodEvent is one persisted classification cycle: the utterance, the
// winning classifier labels, and the transition the machine took.
type MoodEvent struct {
	ID           int       `json:"id"`
	Utterance    string    `json:"utterance"`
	TopEmotion   string    `json:"top_emotion"`
	TopSentiment string    `json:"top_sentiment"`
	FromState    string    `json:"from_state"`
	ToState      string    `json:"to_state"`
	Embedding    []float32 `json:"-"` // embedding vectors, not serialized
	CreatedAt    time.Time `json:"created_at"`
}

// RecalledMoment is a past mood event retrieved by similarity search.
type RecalledMoment struct {
	Utterance  string    `json:"utterance"`
	ToState    string    `json:"to_state"`
	Similarity float64   `json:"similarity"`
	CreatedAt  time.Time `json:"created_at"`
}
