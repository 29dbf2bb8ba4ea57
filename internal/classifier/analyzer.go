// Package classifier scores utterances against the emotion and
// sentiment label sets the mood selector consumes.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/emomind/internal/mood"
	"github.com/easeaico/emomind/internal/utils"
)

// Analyzer classifies utterance emotion and sentiment.
type Analyzer struct {
	model        model.LLM
	systemPrompt string
}

const promptTemplate = `You are an emotion and sentiment classifier.
Score the user's utterance and reply with a single JSON object matching this schema:
%s
The "emotion" object maps labels from {joy, sadness, anger, surprise, fear, neutral, disgust, trust, anticipation} to confidence scores between 0 and 1.
The "sentiment" object maps labels from {POSITIVE, NEGATIVE, NEUTRAL} to confidence scores between 0 and 1.
Output only the JSON object.`

// NewAnalyzer returns an Analyzer backed by the given model.
func NewAnalyzer(m model.LLM) (*Analyzer, error) {
	if m == nil {
		return nil, fmt.Errorf("classifier model is required")
	}

	schema, err := jsonschema.For[utils.ClassifierOutput](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to derive classifier schema: %w", err)
	}
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to encode classifier schema: %w", err)
	}

	return &Analyzer{
		model:        m,
		systemPrompt: fmt.Sprintf(promptTemplate, string(encoded)),
	}, nil
}

// Classify returns the emotion and sentiment distributions for text.
// Blank text yields empty distributions without calling the model.
func (a *Analyzer) Classify(ctx context.Context, text string) (mood.ScoreDistribution, mood.ScoreDistribution, error) {
	if a == nil || a.model == nil {
		return nil, nil, fmt.Errorf("classifier not configured")
	}

	if strings.TrimSpace(text) == "" {
		return mood.ScoreDistribution{}, mood.ScoreDistribution{}, nil
	}

	req := &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(a.systemPrompt, "system"),
			genai.NewContentFromText(text, "user"),
		},
	}

	seq := a.model.GenerateContent(ctx, req, false)
	var resp *model.LLMResponse
	var err error
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to classify utterance: %w", err)
	}

	output, err := utils.ParseClassifierOutput(extractText(resp))
	if err != nil {
		return nil, nil, err
	}
	return mood.ScoreDistribution(output.Emotion), mood.ScoreDistribution(output.Sentiment), nil
}

func extractText(resp *model.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
