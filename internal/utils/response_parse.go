package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ClassifierOutput is the structured response from the classifier model.
type ClassifierOutput struct {
	Emotion   map[string]float64 `json:"emotion"`
	Sentiment map[string]float64 `json:"sentiment"`
}

// ParseClassifierOutput extracts and validates structured classifier
// output. Models often wrap the JSON object in prose or code fences, so
// parsing starts at the first brace and ends at the last.
func ParseClassifierOutput(raw string) (ClassifierOutput, error) {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var output ClassifierOutput
	if err := json.Unmarshal([]byte(clean), &output); err != nil {
		return ClassifierOutput{}, fmt.Errorf("failed to parse classifier output: %w", err)
	}

	if output.Emotion == nil && output.Sentiment == nil {
		return ClassifierOutput{}, fmt.Errorf("classifier output carries no scores")
	}
	if output.Emotion == nil {
		output.Emotion = map[string]float64{}
	}
	if output.Sentiment == nil {
		output.Sentiment = map[string]float64{}
	}
	return output, nil
}
