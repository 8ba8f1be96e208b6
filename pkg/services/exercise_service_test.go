package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/models"
	testdb "github.com/tulkka/lessonflow/test/database"
)

func seedClaimedArtifact(t *testing.T, client *ent.Client, classID, userID, startTime, podID string) *ent.TranscriptArtifact {
	t.Helper()

	artifact, err := client.TranscriptArtifact.Create().
		SetUserID(userID).
		SetTeacherID("t-1").
		SetClassID(classID).
		SetMeetingDate("2026-08-20").
		SetStartTime(startTime).
		SetStatus(transcriptartifact.StatusProcessing).
		SetProcessingAttempts(1).
		SetClaimedAt(time.Now()).
		SetClaimedBy(podID).
		Save(context.Background())
	require.NoError(t, err)
	return artifact
}

func sampleDocument() *models.ExerciseDocument {
	doc := &models.ExerciseDocument{
		Flashcards: []models.Flashcard{
			{ID: "f1", Word: "market", Example: "We visited the market.", Difficulty: models.DifficultyBeginner},
		},
	}
	doc.Metadata.QualityScore = 70
	doc.Metadata.QualityPassed = true
	doc.RecountItems()
	return doc
}

func TestExerciseService_PersistAndComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	artifact := seedClaimedArtifact(t, client.Client, "c-1", "s-1", "14:00", "pod-a")

	set, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, set.SummaryID)
	assert.Equal(t, "s-1", set.UserID)
	assert.Equal(t, exerciseset.StatusPendingApproval, set.Status)
	assert.Equal(t, 1, set.Exercises.Counts.Flashcards)

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.ProcessedAt)
	assert.Nil(t, reloaded.ClaimedAt)
	assert.Nil(t, reloaded.ClaimedBy)
	assert.Nil(t, reloaded.LastError)
}

func TestExerciseService_PersistAndCompleteLostClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	artifact := seedClaimedArtifact(t, client.Client, "c-1", "s-1", "14:00", "pod-b")

	// pod-a lost its lease to pod-b; its write must not land.
	_, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	assert.ErrorIs(t, err, ErrConcurrentModification)

	// The rollback removed the orphaned set as well.
	count, err := client.Client.ExerciseSet.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusProcessing, reloaded.Status)
}

func TestExerciseService_PersistAndCompleteReusesExistingSet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	artifact := seedClaimedArtifact(t, client.Client, "c-1", "s-1", "14:00", "pod-a")

	first, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	require.NoError(t, err)

	// A retry after completion finds the set but no longer holds the claim.
	_, err = svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	assert.ErrorIs(t, err, ErrConcurrentModification)

	// Re-claimed artifact with a surviving set: the set is reused, not duplicated.
	err = client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetStatus(transcriptartifact.StatusProcessing).
		SetClaimedAt(time.Now()).
		SetClaimedBy("pod-a").
		Exec(ctx)
	require.NoError(t, err)

	second, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Client.ExerciseSet.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExerciseService_PersistAdhoc(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	// An unclaimed pending artifact, as the synchronous endpoint creates it.
	artifact, err := client.Client.TranscriptArtifact.Create().
		SetUserID("s-1").
		SetTeacherID("t-1").
		SetClassID("c-1").
		SetMeetingDate("2026-08-20").
		SetStartTime("14:00").
		SetStatus(transcriptartifact.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	set, err := svc.PersistAdhoc(ctx, artifact, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, set.SummaryID)
	assert.Equal(t, exerciseset.StatusPendingApproval, set.Status)

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusCompleted, reloaded.Status)
	assert.NotNil(t, reloaded.ProcessedAt)
}

func TestExerciseService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	a1 := seedClaimedArtifact(t, client.Client, "c-1", "s-1", "14:00", "pod-a")
	a2 := seedClaimedArtifact(t, client.Client, "c-1", "s-2", "15:00", "pod-a")
	a3 := seedClaimedArtifact(t, client.Client, "c-2", "s-1", "16:00", "pod-a")

	for _, artifact := range []*ent.TranscriptArtifact{a1, a2, a3} {
		_, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
		require.NoError(t, err)
	}

	sets, err := svc.List(ctx, "c-1", "")
	require.NoError(t, err)
	assert.Len(t, sets, 2)

	sets, err = svc.List(ctx, "c-1", "s-2")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, a2.ID, sets[0].SummaryID)

	sets, err = svc.List(ctx, "c-9", "")
	require.NoError(t, err)
	assert.Empty(t, sets)

	_, err = svc.List(ctx, "", "")
	assert.True(t, IsValidationError(err))
}

func TestExerciseService_LatestForSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	artifact := seedClaimedArtifact(t, client.Client, "c-1", "s-1", "14:00", "pod-a")
	set, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	require.NoError(t, err)

	got, err := svc.LatestForSummary(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, set.ID, got.ID)

	// Rejected sets are invisible to readers.
	require.NoError(t, svc.Review(ctx, set.ID, false))
	_, err = svc.LatestForSummary(ctx, artifact.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.LatestForSummary(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExerciseService_Review(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewExerciseService(client.Client)
	ctx := context.Background()

	artifact := seedClaimedArtifact(t, client.Client, "c-1", "s-1", "14:00", "pod-a")
	set, err := svc.PersistAndComplete(ctx, artifact, sampleDocument(), "pod-a")
	require.NoError(t, err)

	require.NoError(t, svc.Review(ctx, set.ID, true))
	reloaded, err := client.Client.ExerciseSet.Get(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, exerciseset.StatusApproved, reloaded.Status)

	assert.ErrorIs(t, svc.Review(ctx, 99999, true), ErrNotFound)
}
