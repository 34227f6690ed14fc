package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	DocrankAPIKey string

	// Remote embedding service (optional; lexical embedder when unset)
	EmbedServiceURL string
	EmbedAPIKey     string
	EmbedDimension  int

	// Scoring weights, must sum to 1
	WeightSemantic float64
	WeightKeyword  float64
	WeightHeading  float64
	WeightQuality  float64

	// Report shape
	TopK            int
	MaxPreviewWords int
	MaxInsights     int

	// Worker pool
	WorkerCount   int
	MaxQueueSize  int
	ScoreWorkers  int
	MaxEmbedWords int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		DocrankAPIKey: os.Getenv("DOCRANK_API_KEY"),

		EmbedServiceURL: os.Getenv("EMBED_SERVICE_URL"),
		EmbedAPIKey:     os.Getenv("EMBED_API_KEY"),
		EmbedDimension:  envInt("EMBED_DIMENSION", 256),

		WeightSemantic: envFloat("WEIGHT_SEMANTIC", 0.4),
		WeightKeyword:  envFloat("WEIGHT_KEYWORD", 0.3),
		WeightHeading:  envFloat("WEIGHT_HEADING", 0.2),
		WeightQuality:  envFloat("WEIGHT_QUALITY", 0.1),

		TopK:            envInt("TOP_K", 5),
		MaxPreviewWords: envInt("MAX_PREVIEW_WORDS", 60),
		MaxInsights:     envInt("MAX_INSIGHTS", 3),

		WorkerCount:   envInt("WORKER_COUNT", 4),
		MaxQueueSize:  envInt("MAX_QUEUE_SIZE", 100),
		ScoreWorkers:  envInt("SCORE_WORKERS", 8),
		MaxEmbedWords: envInt("MAX_EMBED_WORDS", 120),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.EmbedDimension <= 0 {
		cfg.EmbedDimension = 256
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.MaxPreviewWords <= 0 {
		cfg.MaxPreviewWords = 60
	}
	if cfg.MaxInsights <= 0 {
		cfg.MaxInsights = 3
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.ScoreWorkers <= 0 {
		cfg.ScoreWorkers = 8
	}
	if cfg.MaxEmbedWords <= 0 {
		cfg.MaxEmbedWords = 120
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocrankAPIKey == "" {
		return fmt.Errorf("DOCRANK_API_KEY is required")
	}
	sum := c.WeightSemantic + c.WeightKeyword + c.WeightHeading + c.WeightQuality
	if math.Abs(sum-1) > 0.01 {
		return fmt.Errorf("scoring weights must sum to 1, got %.3f", sum)
	}
	if c.WeightSemantic < 0 || c.WeightKeyword < 0 || c.WeightHeading < 0 || c.WeightQuality < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	if c.EmbedServiceURL != "" && c.EmbedAPIKey == "" {
		return fmt.Errorf("EMBED_API_KEY is required when EMBED_SERVICE_URL is set")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
