package api

import (
	"time"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/pkg/models"
)

// PollURLs suggests where to follow the artifact after a trigger.
type PollURLs struct {
	Status    string `json:"status"`
	Exercises string `json:"exercises"`
}

// TriggerResponse is returned by POST /v1/trigger.
type TriggerResponse struct {
	SummaryID int64    `json:"summary_id"`
	Status    string   `json:"status"`
	ClassID   string   `json:"class_id"`
	Date      string   `json:"date"`
	PollURLs  PollURLs `json:"poll_urls"`
}

// LessonStatusResponse is returned by GET /v1/lesson-status/:summary_id.
type LessonStatusResponse struct {
	SummaryID           int64      `json:"summary_id"`
	Status              string     `json:"status"`
	ProcessingAttempts  int        `json:"processing_attempts"`
	LastError           *string    `json:"last_error,omitempty"`
	ExercisesGenerated  bool       `json:"exercises_generated"`
	ExercisesID         *int64     `json:"exercises_id,omitempty"`
	TranscriptAvailable bool       `json:"transcript_available"`
	TranscriptLength    int        `json:"transcript_length"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
}

// ExercisesResponse is returned by GET /v1/exercises.
type ExercisesResponse struct {
	Count     int                `json:"count"`
	Exercises []*ent.ExerciseSet `json:"exercises"`
}

// ProcessResponse is returned by POST /v1/process.
type ProcessResponse struct {
	Success   bool                     `json:"success"`
	SummaryID *int64                   `json:"summary_id,omitempty"`
	Persisted bool                     `json:"persisted"`
	Exercises *models.ExerciseDocument `json:"exercises"`
}

// HealthCheck describes the state of a single dependency.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health and GET /ready.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks,omitempty"`
}
