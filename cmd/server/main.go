package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docrank/docrank/internal/analyzer"
	"github.com/docrank/docrank/internal/api"
	"github.com/docrank/docrank/internal/config"
	"github.com/docrank/docrank/internal/embedding"
	"github.com/docrank/docrank/internal/pipeline"
	"github.com/docrank/docrank/internal/ranking"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Embedding provider: remote service when configured, deterministic
	// lexical embedder otherwise.
	var provider embedding.Provider
	var embedStats *embedding.Stats
	var remote *embedding.Client
	if cfg.EmbedServiceURL != "" {
		embedStats = embedding.NewStats(time.Hour)
		remote = embedding.NewClient(cfg.EmbedServiceURL, cfg.EmbedAPIKey, embedStats)
		provider = remote
	} else {
		provider = embedding.NewLexical(cfg.EmbedDimension)
	}

	a, err := analyzer.New(analyzer.Config{
		Weights: ranking.Weights{
			Semantic: cfg.WeightSemantic,
			Keyword:  cfg.WeightKeyword,
			Heading:  cfg.WeightHeading,
			Quality:  cfg.WeightQuality,
		},
		TopK:            cfg.TopK,
		MaxPreviewWords: cfg.MaxPreviewWords,
		MaxInsights:     cfg.MaxInsights,
		Workers:         cfg.ScoreWorkers,
		MaxEmbedWords:   cfg.MaxEmbedWords,
	}, provider, log)
	if err != nil {
		log.Error("invalid analyzer configuration", "error", err)
		os.Exit(1)
	}

	orch := pipeline.NewOrchestrator(cfg, a, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, a, embedStats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if remote != nil {
			remote.Close()
		}
	}()

	log.Info("starting docrank", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
