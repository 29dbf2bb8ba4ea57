// Package speech turns recorded audio into text for classification.
// It does not capture audio; the host records to a file first.
package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Transcriber converts audio files to text via the OpenAI audio API.
type Transcriber struct {
	client *openai.Client
	model  openai.AudioModel
}

// NewTranscriber returns a Transcriber.
func NewTranscriber(apiKey, modelName string) (*Transcriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		modelName = string(openai.AudioModelWhisper1)
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Transcriber{
		client: &client,
		model:  openai.AudioModel(modelName),
	}, nil
}

// Transcribe returns the transcription of the audio file at path.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	if t == nil || t.client == nil {
		return "", fmt.Errorf("transcriber not configured")
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	resp, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  file,
		Model: t.model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
