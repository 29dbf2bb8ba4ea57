// Package config loads configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds runtime settings.
type Config struct {
	OpenAIAPIKey        string
	GoogleAPIKey        string
	DatabaseURL         string
	LLMModel            string
	TranscribeModel     string
	EmbeddingModel      string
	TopK                int
	SimilarityThreshold float64
	AutoIntervalSeconds int
}

// Load reads env vars, applies defaults, and validates required fields.
func Load() Config {
	cfg := Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		TranscribeModel: os.Getenv("TRANSCRIBE_MODEL"),
		EmbeddingModel:  os.Getenv("EMBEDDING_MODEL"),
	}

	cfg.TopK = getEnvInt("TOP_K", 5)
	cfg.SimilarityThreshold = getEnvFloat("SIMILARITY_THRESHOLD", 0.7)
	cfg.AutoIntervalSeconds = getEnvInt("AUTO_INTERVAL_SECONDS", 3)

	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o-mini"
	}
	if cfg.TranscribeModel == "" {
		cfg.TranscribeModel = "whisper-1"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-004"
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}
	// History and recall are optional; they need both a database and an
	// embedding key.
	if cfg.DatabaseURL != "" && cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY environment variable is required when DATABASE_URL is set")
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
