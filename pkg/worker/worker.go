package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/engine"
	"github.com/tulkka/lessonflow/pkg/services"
)

// Worker is a single pool member that polls for and processes artifacts.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.WorkerConfig
	generator Generator
	exercises *services.ExerciseService
	fetcher   TranscriptFetcher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                 sync.RWMutex
	status             WorkerStatus
	currentSummaryID   int64
	artifactsProcessed int
	lastActivity       time.Time
}

// NewWorker creates a new worker. fetcher may be nil (missing transcripts
// fail the artifact instead of being fetched on demand).
func NewWorker(id, podID string, client *ent.Client, cfg *config.WorkerConfig, generator Generator, exercises *services.ExerciseService, fetcher TranscriptFetcher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		generator:    generator,
		exercises:    exercises,
		fetcher:      fetcher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                 w.id,
		Status:             string(w.status),
		CurrentSummaryID:   w.currentSummaryID,
		ArtifactsProcessed: w.artifactsProcessed,
		LastActivity:       w.lastActivity,
	}
}

// run is the main worker loop. Each tick drains up to BatchSize artifacts
// before sleeping.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.drainBatch(ctx); err != nil {
				if errors.Is(err, ErrNoWorkAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing artifact", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// drainBatch claims and processes artifacts until the batch budget is spent
// or the queue is empty.
func (w *Worker) drainBatch(ctx context.Context) error {
	for i := 0; i < w.config.BatchSize; i++ {
		select {
		case <-w.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		default:
		}
		if err := w.pollAndProcess(ctx); err != nil {
			return err
		}
	}
	return nil
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next artifact and runs generation for it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	artifact, err := w.claimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("summary_id", artifact.ID, "worker_id", w.id, "attempt", artifact.ProcessingAttempts)
	log.Info("Artifact claimed")

	w.setStatus(WorkerStatusWorking, artifact.ID)
	defer w.setStatus(WorkerStatusIdle, 0)

	w.process(ctx, artifact, log)

	w.mu.Lock()
	w.artifactsProcessed++
	w.mu.Unlock()
	return nil
}

// claimNext atomically claims the oldest claimable artifact. Claimable means
// pending or awaiting_exercises with no live lease, or processing with a
// lapsed lease (stranded by a pod that died mid-run). FOR UPDATE SKIP LOCKED
// keeps concurrent claimers from blocking on the same row; the lease predicate
// keeps a crashed pod's rows invisible until their lease expires.
func (w *Worker) claimNext(ctx context.Context) (*ent.TranscriptArtifact, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	leaseCutoff := time.Now().Add(-w.config.LeaseDuration)
	artifact, err := tx.TranscriptArtifact.Query().
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
		Order(ent.Asc(transcriptartifact.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWorkAvailable
		}
		return nil, fmt.Errorf("failed to query claimable artifact: %w", err)
	}

	// Conditional transition keyed on the observed status and lease stamp.
	// Redundant under the row lock, but keeps the claim correct even if the
	// query above ever loses its locking clause.
	prevLease := transcriptartifact.ClaimedAtIsNil()
	if artifact.ClaimedAt != nil {
		prevLease = transcriptartifact.ClaimedAtEQ(*artifact.ClaimedAt)
	}
	count, err := tx.TranscriptArtifact.Update().
		Where(
			transcriptartifact.IDEQ(artifact.ID),
			transcriptartifact.StatusEQ(artifact.Status),
			prevLease,
		).
		SetStatus(transcriptartifact.StatusProcessing).
		AddProcessingAttempts(1).
		SetClaimedAt(time.Now()).
		SetClaimedBy(w.podID).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim artifact: %w", err)
	}
	if count == 0 {
		// Another claimer won the row between select and update.
		return nil, ErrNoWorkAvailable
	}

	artifact, err = tx.TranscriptArtifact.Get(ctx, artifact.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return artifact, nil
}

// process runs generation for one claimed artifact and records the outcome.
// Outcome writes use a background context so a cancelled poll context cannot
// strand the row in "processing".
func (w *Worker) process(ctx context.Context, artifact *ent.TranscriptArtifact, log *slog.Logger) {
	transcript := ""
	if artifact.Transcript != nil {
		transcript = *artifact.Transcript
	}

	// A transcript below the engine threshold is as good as missing; re-fetch
	// it rather than failing on a truncated upstream write.
	if len(transcript) < w.config.MinTranscriptChars && w.fetcher != nil {
		fetched, source, err := w.fetcher.Fetch(ctx, artifact)
		if err != nil {
			log.Warn("Transcript fetch failed", "error", err)
			w.recordFailure(artifact, fmt.Errorf("transcript fetch: %w", err))
			return
		}
		transcript = fetched
		if err := w.storeFetchedTranscript(artifact.ID, transcript, source); err != nil {
			log.Warn("Failed to store fetched transcript", "error", err)
		}
	}

	engineCtx, cancel := context.WithTimeout(ctx, w.config.EngineTimeout)
	defer cancel()

	doc, err := w.generator.Generate(engineCtx, engine.Input{
		SummaryID:   artifact.ID,
		Transcript:  transcript,
		UserID:      artifact.UserID,
		TeacherID:   artifact.TeacherID,
		ClassID:     artifact.ClassID,
		MeetingDate: artifact.MeetingDate,
	})
	if err != nil {
		if errors.Is(err, engine.ErrTranscriptTooShort) {
			// Data-validity fault: retrying cannot help.
			w.markFailed(artifact, err)
			return
		}
		if errors.Is(engineCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("generation timed out after %v", w.config.EngineTimeout)
		}
		w.recordFailure(artifact, err)
		return
	}

	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelWrite()

	set, err := w.exercises.PersistAndComplete(writeCtx, artifact, doc, w.podID)
	if err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Warn("Claim lost before completion, discarding result")
			return
		}
		w.recordFailure(artifact, fmt.Errorf("persist exercises: %w", err))
		return
	}

	log.Info("Artifact completed",
		"exercises_id", set.ID,
		"quality_score", doc.Metadata.QualityScore,
		"quality_passed", doc.Metadata.QualityPassed)
}

// recordFailure moves the artifact back to awaiting_exercises with a cleared
// lease, or to terminal failed once the attempt budget is spent. Conditional
// on still holding the claim.
func (w *Worker) recordFailure(artifact *ent.TranscriptArtifact, cause error) {
	status := transcriptartifact.StatusAwaitingExercises
	if artifact.ProcessingAttempts >= w.config.MaxRetries {
		status = transcriptartifact.StatusFailed
	}
	w.finishWithStatus(artifact, status, cause)
}

// markFailed terminally fails the artifact regardless of remaining attempts.
func (w *Worker) markFailed(artifact *ent.TranscriptArtifact, cause error) {
	w.finishWithStatus(artifact, transcriptartifact.StatusFailed, cause)
}

func (w *Worker) finishWithStatus(artifact *ent.TranscriptArtifact, status transcriptartifact.Status, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := w.client.TranscriptArtifact.Update().
		Where(
			transcriptartifact.IDEQ(artifact.ID),
			transcriptartifact.StatusEQ(transcriptartifact.StatusProcessing),
			transcriptartifact.ClaimedByEQ(w.podID),
		).
		SetStatus(status).
		SetLastError(cause.Error()).
		ClearClaimedAt().
		ClearClaimedBy().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to record artifact outcome",
			"summary_id", artifact.ID, "status", status, "error", err)
		return
	}
	if count == 0 {
		slog.Warn("Claim lost before outcome could be recorded",
			"summary_id", artifact.ID, "status", status)
		return
	}
	slog.Info("Artifact outcome recorded",
		"summary_id", artifact.ID, "status", status, "error_detail", cause.Error())
}

func (w *Worker) storeFetchedTranscript(summaryID int64, transcript string, source transcriptartifact.TranscriptSource) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := w.client.TranscriptArtifact.UpdateOneID(summaryID).
		SetTranscript(transcript).
		SetTranscriptLength(len(transcript))
	if source != "" {
		update.SetTranscriptSource(source)
	}
	return update.Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, summaryID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSummaryID = summaryID
	w.lastActivity = time.Now()
}
