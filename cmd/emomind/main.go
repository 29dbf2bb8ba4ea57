// Package main is the entry point for the emomind host loop: it turns
// utterances into classifier scores, drives the mood machine, and
// prints the mood graph.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/easeaico/emomind/internal/classifier"
	"github.com/easeaico/emomind/internal/config"
	"github.com/easeaico/emomind/internal/memory"
	"github.com/easeaico/emomind/internal/models"
	"github.com/easeaico/emomind/internal/mood"
	"github.com/easeaico/emomind/internal/repository"
	"github.com/easeaico/emomind/internal/speech"
	"google.golang.org/genai"
)

func main() {
	wavPath := flag.String("wav", "", "transcribe this audio file and run one cycle")
	auto := flag.Bool("auto", false, "pace stdin cycles on a timer instead of running them back to back")
	showGraph := flag.Bool("graph", false, "print the DOT graph after every cycle")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nshutting down...")
		cancel()
		// The read loop may be blocked on stdin; give it a moment then
		// force the exit.
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	var events mood.EventRepo
	var recaller *memory.Service
	if cfg.DatabaseURL != "" {
		store, err := repository.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
		events = store.MoodEvents

		embedder, err := memory.NewEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
		if err != nil {
			log.Fatalf("failed to create embedder service: %v", err)
		}
		recaller = memory.NewService(embedder, store.MoodEvents, cfg.TopK, cfg.SimilarityThreshold)
	}

	llm, err := models.NewOpenAIModel(ctx, cfg.LLMModel, &genai.ClientConfig{
		APIKey: cfg.OpenAIAPIKey,
	})
	if err != nil {
		log.Fatalf("failed to create classifier model: %v", err)
	}
	analyzer, err := classifier.NewAnalyzer(llm)
	if err != nil {
		log.Fatalf("failed to create analyzer: %v", err)
	}

	service := mood.NewService(mood.NewMachine(), events)

	if *wavPath != "" {
		transcriber, err := speech.NewTranscriber(cfg.OpenAIAPIKey, cfg.TranscribeModel)
		if err != nil {
			log.Fatalf("failed to create transcriber: %v", err)
		}
		text, err := transcriber.Transcribe(ctx, *wavPath)
		if err != nil {
			log.Fatalf("failed to transcribe %s: %v", *wavPath, err)
		}
		fmt.Printf("transcription: %s\n", text)
		runCycle(ctx, service, analyzer, recaller, text, *showGraph)
		return
	}

	// Interactive mode: one cycle per stdin line, strictly sequential.
	// Auto mode paces the cycles on a ticker, the host-owned stand-in
	// for a continuous-listening loop.
	var ticker *time.Ticker
	if *auto && cfg.AutoIntervalSeconds > 0 {
		ticker = time.NewTicker(time.Duration(cfg.AutoIntervalSeconds) * time.Second)
		defer ticker.Stop()
	}

	fmt.Println("type an utterance per line (ctrl-d to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if ticker != nil {
			<-ticker.C
		}
		runCycle(ctx, service, analyzer, recaller, text, *showGraph)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("failed to read stdin: %v", err)
	}
}

// runCycle executes one classify-select-transition-render cycle.
// Classifier and history failures degrade gracefully: the machine still
// settles on a state for every input.
func runCycle(ctx context.Context, service *mood.Service, analyzer *classifier.Analyzer, recaller *memory.Service, text string, showGraph bool) {
	emotion, sentiment, err := analyzer.Classify(ctx, text)
	if err != nil {
		slog.Warn("classification failed, falling back to neutral", "error", err.Error())
		emotion, sentiment = mood.ScoreDistribution{}, mood.ScoreDistribution{}
	}

	var embedding []float32
	if recaller != nil {
		if embedding, err = recaller.EmbedUtterance(ctx, text); err != nil {
			slog.Warn("failed to embed utterance", "error", err.Error())
		}
		moments, err := recaller.Recall(ctx, text)
		if err != nil {
			slog.Warn("failed to recall similar moments", "error", err.Error())
		}
		for _, moment := range moments {
			fmt.Printf("recalled: %q -> %s (similarity %.2f)\n", moment.Utterance, moment.ToState, moment.Similarity)
		}
	}

	result, err := service.Apply(ctx, text, emotion, sentiment, embedding)
	if err != nil {
		slog.Warn("failed to record mood event", "error", err.Error())
	}

	fmt.Printf("previous mood: %s\ncurrent mood:  %s\n", result.Previous, result.Current)
	if showGraph {
		src, err := service.Graph().DOT()
		if err != nil {
			slog.Warn("failed to render graph", "error", err.Error())
			return
		}
		fmt.Println(src)
	}
}
