// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// MonitorConfig controls the class monitor polling loop.
type MonitorConfig struct {
	// Enabled turns the monitor loop on. Disabled when no operational
	// store DSN is configured.
	Enabled bool

	// PollInterval is the base interval between monitor ticks.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter applied to PollInterval.
	PollIntervalJitter time.Duration

	// BatchSize is the maximum number of ended classes considered per tick.
	BatchSize int

	// WebhookURL is the external workflow endpoint (required).
	WebhookURL string

	// DispatchTimeout is the hard deadline for one outbound dispatch.
	DispatchTimeout time.Duration
}

// WorkerConfig controls the transcript worker pool.
type WorkerConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int

	// PollInterval is the base interval for checking claimable artifacts.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// BatchSize is the maximum number of candidate rows fetched per tick.
	BatchSize int

	// MaxRetries is the processing_attempts ceiling before an artifact
	// becomes terminally failed.
	MaxRetries int

	// MinTranscriptChars mirrors the engine threshold; a stored transcript
	// below it counts as missing and is fetched again when a fetcher is
	// configured.
	MinTranscriptChars int

	// LeaseDuration is how long a claim is exclusive. A lapsed lease is
	// reclaimable by any worker.
	LeaseDuration time.Duration

	// EngineTimeout is the soft deadline for one exercise-engine call.
	EngineTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight rows
	// during shutdown. Abandoned rows are reclaimed when their lease lapses.
	GracefulShutdownTimeout time.Duration
}

// EngineConfig controls exercise generation.
type EngineConfig struct {
	// QualityMin is the score below which quality_passed=false.
	QualityMin int

	// MinTranscriptChars is the minimum transcript length worth processing.
	MinTranscriptChars int

	// TargetLanguage is the flashcard translation target. Empty disables
	// translation.
	TargetLanguage string
}

// LLMConfig controls the optional LLM enrichment path.
type LLMConfig struct {
	// APIKey authenticates against the Anthropic API. Empty disables the
	// LLM path entirely (heuristic generation only).
	APIKey string

	// Model is the model identifier used for all requests.
	Model string

	// MaxTokens bounds each completion.
	MaxTokens int64

	// RequestTimeout is the per-request deadline.
	RequestTimeout time.Duration
}

// Enabled reports whether the LLM path is configured.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// Config is the full process configuration.
type Config struct {
	// HTTPPort is the listen port for the HTTP surface.
	HTTPPort string

	// OperationalDSN is the connection string to the operational store
	// (classes/users). Empty disables the class monitor.
	OperationalDSN string

	// IdempotencyWindow is how long recorded responses are replayed for
	// repeated Idempotency-Key values on mutating endpoints.
	IdempotencyWindow time.Duration

	Monitor MonitorConfig
	Worker  WorkerConfig
	Engine  EngineConfig
	LLM     LLMConfig
}

// Load reads configuration from the environment and applies defaults.
// It fails only on malformed values or a missing required option.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),
		OperationalDSN: os.Getenv("STORE_OPERATIONAL_DSN"),
		Monitor: MonitorConfig{
			WebhookURL: os.Getenv("WEBHOOK_URL"),
		},
		LLM: LLMConfig{
			APIKey: os.Getenv("LLM_API_KEY"),
			Model:  getEnvOrDefault("LLM_MODEL", "claude-sonnet-4-5"),
		},
		Engine: EngineConfig{
			TargetLanguage: os.Getenv("TRANSLATION_TARGET_LANGUAGE"),
		},
	}

	var err error
	if cfg.Monitor.PollInterval, err = envSeconds("MONITOR_POLL_INTERVAL_SECONDS", 60); err != nil {
		return nil, err
	}
	if cfg.Monitor.BatchSize, err = envInt("MONITOR_BATCH_SIZE", 50); err != nil {
		return nil, err
	}
	if cfg.Monitor.DispatchTimeout, err = envSeconds("DISPATCH_TIMEOUT_SECONDS", 30); err != nil {
		return nil, err
	}
	cfg.Monitor.PollIntervalJitter = cfg.Monitor.PollInterval / 10
	cfg.Monitor.Enabled = cfg.OperationalDSN != ""

	if cfg.Worker.WorkerCount, err = envInt("WORKER_COUNT", 2); err != nil {
		return nil, err
	}
	if cfg.Worker.PollInterval, err = envSeconds("WORKER_POLL_INTERVAL_SECONDS", 60); err != nil {
		return nil, err
	}
	if cfg.Worker.BatchSize, err = envInt("WORKER_BATCH_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Worker.MaxRetries, err = envInt("WORKER_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.Worker.LeaseDuration, err = envSeconds("WORKER_LEASE_SECONDS", 600); err != nil {
		return nil, err
	}
	if cfg.Worker.EngineTimeout, err = envSeconds("ENGINE_TIMEOUT_SECONDS", 60); err != nil {
		return nil, err
	}
	if cfg.Worker.GracefulShutdownTimeout, err = envSeconds("SHUTDOWN_GRACE_SECONDS", 10); err != nil {
		return nil, err
	}
	cfg.Worker.PollIntervalJitter = cfg.Worker.PollInterval / 10

	if cfg.Engine.QualityMin, err = envInt("QUALITY_MIN", 60); err != nil {
		return nil, err
	}
	if cfg.Engine.MinTranscriptChars, err = envInt("MIN_TRANSCRIPT_CHARS", 100); err != nil {
		return nil, err
	}
	cfg.Worker.MinTranscriptChars = cfg.Engine.MinTranscriptChars

	if cfg.LLM.MaxTokens, err = envInt64("LLM_MAX_TOKENS", 2048); err != nil {
		return nil, err
	}
	if cfg.LLM.RequestTimeout, err = envSeconds("LLM_TIMEOUT_SECONDS", 45); err != nil {
		return nil, err
	}

	if cfg.IdempotencyWindow, err = envSeconds("IDEMPOTENCY_WINDOW_SECONDS", 600); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Monitor.Enabled && c.Monitor.WebhookURL == "" {
		return fmt.Errorf("WEBHOOK_URL is required when the class monitor is enabled")
	}
	if c.Worker.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1, got %d", c.Worker.WorkerCount)
	}
	if c.Worker.BatchSize < 1 {
		return fmt.Errorf("WORKER_BATCH_SIZE must be at least 1, got %d", c.Worker.BatchSize)
	}
	if c.Worker.LeaseDuration <= 0 {
		return fmt.Errorf("WORKER_LEASE_SECONDS must be positive")
	}
	if c.Engine.QualityMin < 0 || c.Engine.QualityMin > 100 {
		return fmt.Errorf("QUALITY_MIN must be in [0,100], got %d", c.Engine.QualityMin)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, defaultVal int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envSeconds(key string, defaultSeconds int) (time.Duration, error) {
	n, err := envInt(key, defaultSeconds)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
