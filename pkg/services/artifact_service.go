package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// TriggerInput contains the domain-level data needed to register a lesson
// artifact. Transformed from the HTTP request by the handler.
type TriggerInput struct {
	UserID       string
	TeacherID    string
	ClassID      string
	MeetingDate  string // YYYY-MM-DD
	StartTime    string // HH:MM
	EndTime      string // HH:MM, optional
	TeacherEmail string // optional
	Transcript   string // optional; usually written later by the transcript workflow
	Source       string // zoom_native, external_stt; defaults to unknown
}

// ArtifactService manages transcript artifact lifecycle.
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates a new ArtifactService.
func NewArtifactService(client *ent.Client) *ArtifactService {
	if client == nil {
		panic("NewArtifactService: client must not be nil")
	}
	return &ArtifactService{client: client}
}

// EnsureArtifact registers the artifact for (class_id, meeting_date,
// start_time), creating it in "pending" status when absent. Re-triggering an
// existing artifact is a no-op and returns the stored row, unless the request
// names a different teacher email, which is rejected with
// ErrOwnershipConflict. The bool reports whether a row was created.
func (s *ArtifactService) EnsureArtifact(ctx context.Context, input TriggerInput) (*ent.TranscriptArtifact, bool, error) {
	if err := validateTrigger(input); err != nil {
		return nil, false, err
	}

	existing, err := s.findByBusinessKey(ctx, input)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if err := checkOwnership(existing, input); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	builder := s.client.TranscriptArtifact.Create().
		SetUserID(input.UserID).
		SetTeacherID(input.TeacherID).
		SetClassID(input.ClassID).
		SetMeetingDate(input.MeetingDate).
		SetStartTime(input.StartTime).
		SetStatus(transcriptartifact.StatusPending).
		SetTranscriptSource(sourceValue(input.Source))

	if input.EndTime != "" {
		builder.SetEndTime(input.EndTime)
	}
	if input.TeacherEmail != "" {
		builder.SetTeacherEmail(input.TeacherEmail)
	}
	if input.Transcript != "" {
		builder.SetTranscript(input.Transcript).
			SetTranscriptLength(len(input.Transcript))
	}

	artifact, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the winner's row is authoritative.
			existing, qerr := s.findByBusinessKey(ctx, input)
			if qerr != nil {
				return nil, false, qerr
			}
			if existing == nil {
				return nil, false, fmt.Errorf("failed to create artifact: %w", err)
			}
			if oerr := checkOwnership(existing, input); oerr != nil {
				return nil, false, oerr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create artifact: %w", err)
	}

	return artifact, true, nil
}

// Get retrieves an artifact by summary id.
func (s *ArtifactService) Get(ctx context.Context, summaryID int64) (*ent.TranscriptArtifact, error) {
	artifact, err := s.client.TranscriptArtifact.Get(ctx, summaryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return artifact, nil
}

// AttachTranscript stores the transcript text on a pending or
// awaiting_exercises artifact and records its length and source.
func (s *ArtifactService) AttachTranscript(ctx context.Context, summaryID int64, transcript, source string) error {
	if transcript == "" {
		return NewValidationError("transcript", "required")
	}

	count, err := s.client.TranscriptArtifact.Update().
		Where(
			transcriptartifact.IDEQ(summaryID),
			transcriptartifact.StatusIn(
				transcriptartifact.StatusPending,
				transcriptartifact.StatusAwaitingExercises,
			),
		).
		SetTranscript(transcript).
		SetTranscriptLength(len(transcript)).
		SetTranscriptSource(sourceValue(source)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to attach transcript: %w", err)
	}
	if count == 0 {
		if _, err := s.Get(ctx, summaryID); err != nil {
			return err
		}
		return ErrInvalidInput
	}
	return nil
}

// ResetForRetry moves a failed artifact back to "pending" with a fresh
// attempt budget and rejects any exercise sets generated by earlier attempts.
func (s *ArtifactService) ResetForRetry(ctx context.Context, summaryID int64) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.TranscriptArtifact.Update().
		Where(
			transcriptartifact.IDEQ(summaryID),
			transcriptartifact.StatusEQ(transcriptartifact.StatusFailed),
		).
		SetStatus(transcriptartifact.StatusPending).
		SetProcessingAttempts(0).
		ClearLastError().
		ClearClaimedAt().
		ClearClaimedBy().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset artifact: %w", err)
	}
	if count == 0 {
		artifact, gerr := tx.TranscriptArtifact.Get(ctx, summaryID)
		if gerr != nil {
			if ent.IsNotFound(gerr) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get artifact: %w", gerr)
		}
		return NewValidationError("status",
			fmt.Sprintf("only failed artifacts can be reset, current status is '%s'", artifact.Status))
	}

	_, err = tx.ExerciseSet.Update().
		Where(
			exerciseset.SummaryIDEQ(summaryID),
			exerciseset.StatusNEQ(exerciseset.StatusRejected),
		).
		SetStatus(exerciseset.StatusRejected).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reject stale exercise sets: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

func (s *ArtifactService) findByBusinessKey(ctx context.Context, input TriggerInput) (*ent.TranscriptArtifact, error) {
	artifact, err := s.client.TranscriptArtifact.Query().
		Where(
			transcriptartifact.ClassIDEQ(input.ClassID),
			transcriptartifact.MeetingDateEQ(input.MeetingDate),
			transcriptartifact.StartTimeEQ(input.StartTime),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query artifact: %w", err)
	}
	return artifact, nil
}

func checkOwnership(existing *ent.TranscriptArtifact, input TriggerInput) error {
	if input.TeacherEmail != "" && existing.TeacherEmail != "" &&
		input.TeacherEmail != existing.TeacherEmail {
		return ErrOwnershipConflict
	}
	return nil
}

func validateTrigger(input TriggerInput) error {
	if input.UserID == "" {
		return NewValidationError("user_id", "required")
	}
	if input.TeacherID == "" {
		return NewValidationError("teacher_id", "required")
	}
	if input.ClassID == "" {
		return NewValidationError("class_id", "required")
	}
	if _, err := time.Parse("2006-01-02", input.MeetingDate); err != nil {
		return NewValidationError("date", "must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", input.StartTime); err != nil {
		return NewValidationError("start_time", "must be HH:MM")
	}
	if input.EndTime != "" {
		if _, err := time.Parse("15:04", input.EndTime); err != nil {
			return NewValidationError("end_time", "must be HH:MM")
		}
	}
	switch input.Source {
	case "", "zoom_native", "external_stt", "unknown":
	default:
		return NewValidationError("source", "must be zoom_native or external_stt")
	}
	return nil
}

func sourceValue(source string) transcriptartifact.TranscriptSource {
	switch source {
	case "zoom_native":
		return transcriptartifact.TranscriptSourceZoomNative
	case "external_stt":
		return transcriptartifact.TranscriptSourceExternalStt
	default:
		return transcriptartifact.TranscriptSourceUnknown
	}
}
