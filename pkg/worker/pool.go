package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/services"
)

// WorkerPool manages a pool of transcript workers.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.WorkerConfig
	generator Generator
	exercises *services.ExerciseService
	fetcher   TranscriptFetcher
	workers   []*Worker

	mu             sync.Mutex
	started        bool
	leasesReleased int
}

// NewWorkerPool creates a new worker pool. fetcher may be nil.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.WorkerConfig, generator Generator, exercises *services.ExerciseService, fetcher TranscriptFetcher) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		client:    client,
		config:    cfg,
		generator: generator,
		exercises: exercises,
		fetcher:   fetcher,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start releases leases stranded by a previous run of this pod and spawns
// the worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	released, err := p.releaseStartupLeases(ctx)
	if err != nil {
		return fmt.Errorf("startup lease release: %w", err)
	}
	p.leasesReleased = released

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"worker_count", p.config.WorkerCount,
		"leases_released", released)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.generator, p.exercises, p.fetcher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current artifact before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Worker pool stopped gracefully")
}

// releaseStartupLeases clears leases this pod held before a crash or restart.
// The rows go back to awaiting_exercises, so the state machine resumes them
// with the attempt already counted; no artifact is terminally orphaned by a
// pod restart.
func (p *WorkerPool) releaseStartupLeases(ctx context.Context) (int, error) {
	count, err := p.client.TranscriptArtifact.Update().
		Where(
			transcriptartifact.StatusEQ(transcriptartifact.StatusProcessing),
			transcriptartifact.ClaimedByEQ(p.podID),
		).
		SetStatus(transcriptartifact.StatusAwaitingExercises).
		ClearClaimedAt().
		ClearClaimedBy().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		slog.Warn("Released stranded leases from previous run",
			"pod_id", p.podID, "count", count)
	}
	return count, nil
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	leaseCutoff := time.Now().Add(-p.config.LeaseDuration)
	// Same predicate the workers claim by, including stranded processing
	// rows whose lease has lapsed.
	queueDepth, errQ := p.client.TranscriptArtifact.Query().
		Where(
			transcriptartifact.StatusIn(
				transcriptartifact.StatusPending,
				transcriptartifact.StatusAwaitingExercises,
				transcriptartifact.StatusProcessing,
			),
			transcriptartifact.Or(
				transcriptartifact.ClaimedAtIsNil(),
				transcriptartifact.ClaimedAtLT(leaseCutoff),
			),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeClaims, errA := p.client.TranscriptArtifact.Query().
		Where(
			transcriptartifact.StatusEQ(transcriptartifact.StatusProcessing),
			transcriptartifact.ClaimedByEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active claims for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errA != nil {
		dbError = fmt.Sprintf("active claims query failed: %v", errA)
	}

	p.mu.Lock()
	leasesReleased := p.leasesReleased
	p.mu.Unlock()

	return &PoolHealth{
		IsHealthy:      len(p.workers) > 0 && dbHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		PodID:          p.podID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		QueueDepth:     queueDepth,
		ActiveClaims:   activeClaims,
		WorkerStats:    workerStats,
		LeasesReleased: leasesReleased,
	}
}
