// Package worker provides the transcript worker pool that drives artifacts
// through the generation state machine.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/engine"
	"github.com/tulkka/lessonflow/pkg/models"
)

// Sentinel errors for worker operations.
var (
	// ErrNoWorkAvailable indicates no claimable artifacts are in the queue.
	ErrNoWorkAvailable = errors.New("no work available")

	// ErrClaimLost indicates another pod took over the lease mid-processing.
	ErrClaimLost = errors.New("claim lost to another holder")
)

// Generator is the exercise engine interface consumed by workers.
type Generator interface {
	Generate(ctx context.Context, input engine.Input) (*models.ExerciseDocument, error)
}

// TranscriptFetcher retrieves a transcript from an external source for
// artifacts whose transcript is missing or too short to process. The
// returned source records where the text came from. Optional; a nil
// fetcher means such artifacts fail instead.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, artifact *ent.TranscriptArtifact) (string, transcriptartifact.TranscriptSource, error)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	QueueDepth     int            `json:"queue_depth"`
	ActiveClaims   int            `json:"active_claims"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LeasesReleased int            `json:"leases_released"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"` // "idle" or "working"
	CurrentSummaryID   int64     `json:"current_summary_id,omitempty"`
	ArtifactsProcessed int       `json:"artifacts_processed"`
	LastActivity       time.Time `json:"last_activity"`
}
