package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/models"
	testdb "github.com/tulkka/lessonflow/test/database"
)

func validTriggerInput() TriggerInput {
	return TriggerInput{
		UserID:       "s-1",
		TeacherID:    "t-1",
		ClassID:      "c-1",
		MeetingDate:  "2026-08-20",
		StartTime:    "14:00",
		EndTime:      "14:45",
		TeacherEmail: "anna@example.com",
	}
}

func TestArtifactService_EnsureArtifact(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	artifact, created, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, transcriptartifact.StatusPending, artifact.Status)
	assert.Equal(t, "c-1", artifact.ClassID)
	assert.Equal(t, 0, artifact.ProcessingAttempts)
	assert.Equal(t, transcriptartifact.TranscriptSourceUnknown, artifact.TranscriptSource)
	assert.Nil(t, artifact.ProcessedAt)
}

func TestArtifactService_EnsureArtifactIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	first, created, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)
	require.True(t, created)

	// Same business key, no new row.
	second, created, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// A different start time is a distinct lesson.
	input := validTriggerInput()
	input.StartTime = "16:00"
	third, created, err := svc.EnsureArtifact(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestArtifactService_EnsureArtifactOwnershipConflict(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	_, _, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)

	input := validTriggerInput()
	input.TeacherEmail = "other@example.com"
	_, _, err = svc.EnsureArtifact(ctx, input)
	assert.ErrorIs(t, err, ErrOwnershipConflict)

	// An empty email on either side is not a conflict.
	input.TeacherEmail = ""
	_, created, err := svc.EnsureArtifact(ctx, input)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestArtifactService_EnsureArtifactValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*TriggerInput)
	}{
		{"missing user", func(in *TriggerInput) { in.UserID = "" }},
		{"missing teacher", func(in *TriggerInput) { in.TeacherID = "" }},
		{"missing class", func(in *TriggerInput) { in.ClassID = "" }},
		{"bad date", func(in *TriggerInput) { in.MeetingDate = "20/08/2026" }},
		{"bad start time", func(in *TriggerInput) { in.StartTime = "2pm" }},
		{"bad end time", func(in *TriggerInput) { in.EndTime = "25:99" }},
		{"bad source", func(in *TriggerInput) { in.Source = "carrier-pigeon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTriggerInput()
			tt.mutate(&input)
			_, _, err := svc.EnsureArtifact(ctx, input)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestArtifactService_EnsureArtifactWithTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	input := validTriggerInput()
	input.Transcript = "Teacher: Welcome back to our conversation class."
	input.Source = "zoom_native"

	artifact, _, err := svc.EnsureArtifact(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, artifact.Transcript)
	assert.Equal(t, input.Transcript, *artifact.Transcript)
	assert.Equal(t, len(input.Transcript), artifact.TranscriptLength)
	assert.Equal(t, transcriptartifact.TranscriptSourceZoomNative, artifact.TranscriptSource)
}

func TestArtifactService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	artifact, _, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, got.ID)

	_, err = svc.Get(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArtifactService_AttachTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	artifact, _, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)

	transcript := "Teacher: Today we practice the past tense together."
	require.NoError(t, svc.AttachTranscript(ctx, artifact.ID, transcript, "external_stt"))

	got, err := svc.Get(ctx, artifact.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Transcript)
	assert.Equal(t, transcript, *got.Transcript)
	assert.Equal(t, transcriptartifact.TranscriptSourceExternalStt, got.TranscriptSource)

	// Terminal artifacts reject new transcripts.
	err = client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetStatus(transcriptartifact.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.AttachTranscript(ctx, artifact.ID, transcript, ""), ErrInvalidInput)

	assert.ErrorIs(t, svc.AttachTranscript(ctx, 99999, transcript, ""), ErrNotFound)
}

func TestArtifactService_ResetForRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewArtifactService(client.Client)
	ctx := context.Background()

	artifact, _, err := svc.EnsureArtifact(ctx, validTriggerInput())
	require.NoError(t, err)

	// Only failed artifacts can be reset.
	err = svc.ResetForRetry(ctx, artifact.ID)
	assert.True(t, IsValidationError(err))

	err = client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetStatus(transcriptartifact.StatusFailed).
		SetProcessingAttempts(5).
		SetLastError("engine timeout").
		Exec(ctx)
	require.NoError(t, err)

	// A stale set from an earlier attempt gets rejected by the reset.
	doc := &models.ExerciseDocument{}
	doc.RecountItems()
	set, err := client.Client.ExerciseSet.Create().
		SetSummaryID(artifact.ID).
		SetUserID(artifact.UserID).
		SetTeacherID(artifact.TeacherID).
		SetClassID(artifact.ClassID).
		SetExercises(doc).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ResetForRetry(ctx, artifact.ID))

	got, err := svc.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusPending, got.Status)
	assert.Equal(t, 0, got.ProcessingAttempts)
	assert.Nil(t, got.LastError)
	assert.Nil(t, got.ClaimedAt)

	reloaded, err := client.Client.ExerciseSet.Get(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, exerciseset.StatusRejected, reloaded.Status)

	assert.ErrorIs(t, svc.ResetForRetry(ctx, 99999), ErrNotFound)
}

func TestNewArtifactServiceNilClient(t *testing.T) {
	assert.Panics(t, func() { NewArtifactService(nil) })
}
