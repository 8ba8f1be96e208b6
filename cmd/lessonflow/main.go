// Lessonflow orchestrator — hosts the trigger/read HTTP surface, the
// ended-class monitor, and the transcript worker pool in one process.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tulkka/lessonflow/pkg/api"
	"github.com/tulkka/lessonflow/pkg/classstore"
	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/database"
	"github.com/tulkka/lessonflow/pkg/dispatch"
	"github.com/tulkka/lessonflow/pkg/engine"
	"github.com/tulkka/lessonflow/pkg/llm"
	"github.com/tulkka/lessonflow/pkg/monitor"
	"github.com/tulkka/lessonflow/pkg/services"
	"github.com/tulkka/lessonflow/pkg/version"
	"github.com/tulkka/lessonflow/pkg/worker"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting lessonflow", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load analytical store config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to analytical store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing analytical store client", "error", err)
		}
	}()
	slog.Info("Connected to analytical store")

	var classStore *classstore.Store
	if cfg.OperationalDSN != "" {
		classStore, err = classstore.New(ctx, cfg.OperationalDSN)
		if err != nil {
			slog.Error("Failed to connect to operational store", "error", err)
			os.Exit(1)
		}
		defer classStore.Close()
		slog.Info("Connected to operational store")
	} else {
		slog.Warn("No operational store configured, class monitor disabled")
	}

	dispatcher := dispatch.NewClient(cfg.Monitor.WebhookURL, cfg.Monitor.DispatchTimeout)

	var provider engine.Provider
	if cfg.LLM.APIKey != "" {
		provider = llm.NewFromAPIKey(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens)
		slog.Info("LLM enrichment enabled", "model", cfg.LLM.Model)
	} else {
		slog.Info("LLM enrichment disabled, heuristic generation only")
	}
	gen := engine.New(engine.Config{
		QualityMin:         cfg.Engine.QualityMin,
		MinTranscriptChars: cfg.Engine.MinTranscriptChars,
		TargetLanguage:     cfg.Engine.TargetLanguage,
	}, provider)

	artifactService := services.NewArtifactService(dbClient.Client)
	exerciseService := services.NewExerciseService(dbClient.Client)

	workerPool := worker.NewWorkerPool(podID, dbClient.Client, &cfg.Worker, gen, exerciseService, nil)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	var monitorService *monitor.Service
	if classStore != nil && cfg.Monitor.Enabled {
		monitorService = monitor.NewService(&cfg.Monitor, classStore, dispatcher)
		monitorService.Start(ctx)
	}

	var pinger api.Pinger
	if classStore != nil {
		pinger = classStore
	}
	httpServer := api.NewServer(cfg, dbClient, artifactService, exerciseService,
		gen, dispatcher, workerPool, pinger)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Lessonflow started",
		"pod_id", podID,
		"workers", cfg.Worker.WorkerCount,
		"monitor_enabled", monitorService != nil)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server error triggered shutdown", "error", err)
	}

	// Stop intake first so nothing new is dispatched or claimed, then drain
	// in-flight work within the grace budget. Abandoned rows are picked up
	// again once their lease lapses.
	if monitorService != nil {
		monitorService.Stop()
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Worker.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Worker shutdown timeout exceeded, leases will lapse and be reclaimed")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
