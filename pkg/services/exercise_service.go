package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/models"
)

// ExerciseService persists and serves generated exercise sets.
type ExerciseService struct {
	client *ent.Client
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(client *ent.Client) *ExerciseService {
	if client == nil {
		panic("NewExerciseService: client must not be nil")
	}
	return &ExerciseService{client: client}
}

// PersistAndComplete stores the generated document and flips the artifact to
// "completed" in a single transaction. The completion update is conditional
// on the caller still holding the claim; a lost claim rolls everything back
// with ErrConcurrentModification so the document of the rightful holder wins.
//
// An existing non-rejected set for the artifact short-circuits the write and
// is returned as-is, keeping generation retries idempotent.
func (s *ExerciseService) PersistAndComplete(
	ctx context.Context,
	artifact *ent.TranscriptArtifact,
	doc *models.ExerciseDocument,
	claimedBy string,
) (*ent.ExerciseSet, error) {
	if doc == nil {
		return nil, NewValidationError("exercises", "document is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.ExerciseSet.Query().
		Where(
			exerciseset.SummaryIDEQ(artifact.ID),
			exerciseset.StatusNEQ(exerciseset.StatusRejected),
		).
		Order(ent.Desc(exerciseset.FieldGeneratedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query existing exercise set: %w", err)
	}

	set := existing
	if set == nil {
		set, err = tx.ExerciseSet.Create().
			SetSummaryID(artifact.ID).
			SetUserID(artifact.UserID).
			SetTeacherID(artifact.TeacherID).
			SetClassID(artifact.ClassID).
			SetExercises(doc).
			SetStatus(exerciseset.StatusPendingApproval).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create exercise set: %w", err)
		}
	}

	count, err := tx.TranscriptArtifact.Update().
		Where(
			transcriptartifact.IDEQ(artifact.ID),
			transcriptartifact.StatusEQ(transcriptartifact.StatusProcessing),
			transcriptartifact.ClaimedByEQ(claimedBy),
		).
		SetStatus(transcriptartifact.StatusCompleted).
		SetProcessedAt(time.Now()).
		ClearLastError().
		ClearClaimedAt().
		ClearClaimedBy().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete artifact: %w", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit exercise set: %w", err)
	}
	return set, nil
}

// PersistAdhoc stores a document generated outside the worker loop and marks
// the artifact completed without the claim handshake. Used by the synchronous
// processing endpoint, where the caller created the artifact moments ago and
// no worker can hold a lease on it yet.
func (s *ExerciseService) PersistAdhoc(
	ctx context.Context,
	artifact *ent.TranscriptArtifact,
	doc *models.ExerciseDocument,
) (*ent.ExerciseSet, error) {
	if doc == nil {
		return nil, NewValidationError("exercises", "document is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	set, err := tx.ExerciseSet.Create().
		SetSummaryID(artifact.ID).
		SetUserID(artifact.UserID).
		SetTeacherID(artifact.TeacherID).
		SetClassID(artifact.ClassID).
		SetExercises(doc).
		SetStatus(exerciseset.StatusPendingApproval).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise set: %w", err)
	}

	err = tx.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetStatus(transcriptartifact.StatusCompleted).
		SetProcessedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit exercise set: %w", err)
	}
	return set, nil
}

// List returns the exercise sets for a class, newest first. user_id narrows
// the result to one student.
func (s *ExerciseService) List(ctx context.Context, classID, userID string) ([]*ent.ExerciseSet, error) {
	if classID == "" {
		return nil, NewValidationError("class_id", "required")
	}

	query := s.client.ExerciseSet.Query().
		Where(exerciseset.ClassIDEQ(classID))
	if userID != "" {
		query = query.Where(exerciseset.UserIDEQ(userID))
	}

	sets, err := query.
		Order(ent.Desc(exerciseset.FieldGeneratedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise sets: %w", err)
	}
	return sets, nil
}

// LatestForSummary returns the newest non-rejected set for an artifact.
func (s *ExerciseService) LatestForSummary(ctx context.Context, summaryID int64) (*ent.ExerciseSet, error) {
	set, err := s.client.ExerciseSet.Query().
		Where(
			exerciseset.SummaryIDEQ(summaryID),
			exerciseset.StatusNEQ(exerciseset.StatusRejected),
		).
		Order(ent.Desc(exerciseset.FieldGeneratedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exercise set: %w", err)
	}
	return set, nil
}

// Review sets the approval status of an exercise set.
func (s *ExerciseService) Review(ctx context.Context, setID int64, approved bool) error {
	status := exerciseset.StatusApproved
	if !approved {
		status = exerciseset.StatusRejected
	}

	err := s.client.ExerciseSet.UpdateOneID(setID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to review exercise set: %w", err)
	}
	return nil
}
