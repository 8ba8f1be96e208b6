package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/engine"
	"github.com/tulkka/lessonflow/pkg/models"
	"github.com/tulkka/lessonflow/pkg/services"
	testdb "github.com/tulkka/lessonflow/test/database"
)

type fakeGenerator struct {
	mu     sync.Mutex
	err    error
	inputs []engine.Input
}

func (f *fakeGenerator) Generate(_ context.Context, input engine.Input) (*models.ExerciseDocument, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	doc := &models.ExerciseDocument{
		Flashcards: []models.Flashcard{
			{ID: "f1", Word: "market", Example: "We visited the market."},
		},
	}
	doc.Metadata.QualityScore = 70
	doc.Metadata.QualityPassed = true
	doc.RecountItems()
	return doc, nil
}

type fakeFetcher struct {
	transcript string
	source     transcriptartifact.TranscriptSource
	err        error
	calls      int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ *ent.TranscriptArtifact) (string, transcriptartifact.TranscriptSource, error) {
	f.calls++
	return f.transcript, f.source, f.err
}

func testWorkerConfig() *config.WorkerConfig {
	return &config.WorkerConfig{
		WorkerCount:             1,
		PollInterval:            time.Second,
		PollIntervalJitter:      0,
		BatchSize:               10,
		MaxRetries:              5,
		MinTranscriptChars:      40,
		LeaseDuration:           10 * time.Minute,
		EngineTimeout:           30 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func newTestWorker(t *testing.T, client *ent.Client, gen Generator, fetcher TranscriptFetcher) *Worker {
	t.Helper()
	return NewWorker("pod-a-worker-0", "pod-a", client, testWorkerConfig(),
		gen, services.NewExerciseService(client), fetcher)
}

func seedArtifact(t *testing.T, client *ent.Client, startTime, transcript string) *ent.TranscriptArtifact {
	t.Helper()

	builder := client.TranscriptArtifact.Create().
		SetUserID("s-1").
		SetTeacherID("t-1").
		SetClassID("c-1").
		SetMeetingDate("2026-08-20").
		SetStartTime(startTime).
		SetStatus(transcriptartifact.StatusPending)
	if transcript != "" {
		builder.SetTranscript(transcript).SetTranscriptLength(len(transcript))
	}

	artifact, err := builder.Save(context.Background())
	require.NoError(t, err)
	return artifact
}

func TestWorker_ClaimNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(t, client.Client, &fakeGenerator{}, nil)
	ctx := context.Background()

	// Empty queue.
	_, err := w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrNoWorkAvailable)

	older := seedArtifact(t, client.Client, "09:00", "transcript")
	seedArtifact(t, client.Client, "10:00", "transcript")

	claimed, err := w.claimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, claimed.ID)
	assert.Equal(t, transcriptartifact.StatusProcessing, claimed.Status)
	assert.Equal(t, 1, claimed.ProcessingAttempts)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "pod-a", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.ClaimedAt)
}

func TestWorker_ClaimNextRespectsLiveLease(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(t, client.Client, &fakeGenerator{}, nil)
	ctx := context.Background()

	artifact := seedArtifact(t, client.Client, "09:00", "transcript")

	// Live lease held by another pod: invisible.
	err := client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetStatus(transcriptartifact.StatusAwaitingExercises).
		SetClaimedAt(time.Now()).
		SetClaimedBy("pod-b").
		Exec(ctx)
	require.NoError(t, err)

	_, err = w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrNoWorkAvailable)

	// Expired lease: claimable again.
	err = client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetClaimedAt(time.Now().Add(-20 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := w.claimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, claimed.ID)
	assert.Equal(t, "pod-a", *claimed.ClaimedBy)
}

func TestWorker_ClaimNextReclaimsStrandedProcessingRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := newTestWorker(t, client.Client, &fakeGenerator{}, nil)
	ctx := context.Background()

	// A pod died mid-run on another host: the row is stuck in processing
	// under that pod's name.
	artifact := seedArtifact(t, client.Client, "09:00", "transcript")
	err := client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetStatus(transcriptartifact.StatusProcessing).
		SetProcessingAttempts(1).
		SetClaimedAt(time.Now()).
		SetClaimedBy("pod-dead").
		Exec(ctx)
	require.NoError(t, err)

	// Invisible while the lease is live.
	_, err = w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrNoWorkAvailable)

	// Once the lease lapses, any pod may reclaim it.
	err = client.Client.TranscriptArtifact.UpdateOneID(artifact.ID).
		SetClaimedAt(time.Now().Add(-2 * w.config.LeaseDuration)).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := w.claimNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, artifact.ID, claimed.ID)
	assert.Equal(t, transcriptartifact.StatusProcessing, claimed.Status)
	assert.Equal(t, 2, claimed.ProcessingAttempts)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "pod-a", *claimed.ClaimedBy)
}

func TestWorker_ProcessSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	gen := &fakeGenerator{}
	w := newTestWorker(t, client.Client, gen, nil)
	ctx := context.Background()

	transcript := "Teacher: Today we practice describing the market together."
	artifact := seedArtifact(t, client.Client, "09:00", transcript)

	require.NoError(t, w.pollAndProcess(ctx))

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusCompleted, reloaded.Status)
	assert.NotNil(t, reloaded.ProcessedAt)
	assert.Nil(t, reloaded.ClaimedAt)

	sets, err := client.Client.ExerciseSet.Query().
		Where(exerciseset.SummaryIDEQ(artifact.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, 1, sets[0].Exercises.Counts.Flashcards)

	require.Len(t, gen.inputs, 1)
	assert.Equal(t, transcript, gen.inputs[0].Transcript)
	assert.Equal(t, artifact.ID, gen.inputs[0].SummaryID)

	health := w.Health()
	assert.Equal(t, 1, health.ArtifactsProcessed)
}

func TestWorker_ProcessShortTranscriptFailsTerminally(t *testing.T) {
	client := testdb.NewTestClient(t)
	gen := &fakeGenerator{err: engine.ErrTranscriptTooShort}
	w := newTestWorker(t, client.Client, gen, nil)
	ctx := context.Background()

	artifact := seedArtifact(t, client.Client, "09:00", "")

	require.NoError(t, w.pollAndProcess(ctx))

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.LastError)
	assert.Contains(t, *reloaded.LastError, "transcript missing or too short")
	assert.Nil(t, reloaded.ClaimedAt)
}

func TestWorker_ProcessFailureRetriesThenFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	gen := &fakeGenerator{err: errors.New("engine exploded")}
	w := newTestWorker(t, client.Client, gen, nil)
	ctx := context.Background()

	artifact := seedArtifact(t, client.Client, "09:00", "transcript")

	// Attempts 1..4 land back in awaiting_exercises with a cleared lease.
	for attempt := 1; attempt < w.config.MaxRetries; attempt++ {
		require.NoError(t, w.pollAndProcess(ctx))

		reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
		require.NoError(t, err)
		assert.Equal(t, transcriptartifact.StatusAwaitingExercises, reloaded.Status, "attempt %d", attempt)
		assert.Equal(t, attempt, reloaded.ProcessingAttempts)
		require.NotNil(t, reloaded.LastError)
		assert.Contains(t, *reloaded.LastError, "engine exploded")
		assert.Nil(t, reloaded.ClaimedAt)
	}

	// The final attempt exhausts the budget.
	require.NoError(t, w.pollAndProcess(ctx))

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusFailed, reloaded.Status)
	assert.Equal(t, w.config.MaxRetries, reloaded.ProcessingAttempts)

	// Terminal rows are no longer claimable.
	_, err = w.claimNext(ctx)
	assert.ErrorIs(t, err, ErrNoWorkAvailable)
}

func TestWorker_FetcherSuppliesTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	gen := &fakeGenerator{}
	fetcher := &fakeFetcher{
		transcript: "Teacher: A fetched transcript about the market.",
		source:     transcriptartifact.TranscriptSourceExternalStt,
	}
	w := newTestWorker(t, client.Client, gen, fetcher)
	ctx := context.Background()

	artifact := seedArtifact(t, client.Client, "09:00", "")

	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, gen.inputs, 1)
	assert.Equal(t, fetcher.transcript, gen.inputs[0].Transcript)

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.Transcript)
	assert.Equal(t, fetcher.transcript, *reloaded.Transcript)
	assert.Equal(t, transcriptartifact.TranscriptSourceExternalStt, reloaded.TranscriptSource)
}

func TestWorker_FetcherReplacesShortTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	gen := &fakeGenerator{}
	fetcher := &fakeFetcher{
		transcript: "Teacher: A fetched transcript about the market.",
		source:     transcriptartifact.TranscriptSourceZoomNative,
	}
	w := newTestWorker(t, client.Client, gen, fetcher)
	ctx := context.Background()

	// A truncated upstream write: present but below the engine threshold.
	artifact := seedArtifact(t, client.Client, "09:00", "Teacher: Hello.")

	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, gen.inputs, 1)
	assert.Equal(t, fetcher.transcript, gen.inputs[0].Transcript)

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.Transcript)
	assert.Equal(t, fetcher.transcript, *reloaded.Transcript)
	assert.Equal(t, len(fetcher.transcript), reloaded.TranscriptLength)
	assert.Equal(t, transcriptartifact.TranscriptSourceZoomNative, reloaded.TranscriptSource)
}

func TestWorker_LongTranscriptSkipsFetch(t *testing.T) {
	client := testdb.NewTestClient(t)
	gen := &fakeGenerator{}
	fetcher := &fakeFetcher{transcript: "should never be used"}
	w := newTestWorker(t, client.Client, gen, fetcher)
	ctx := context.Background()

	transcript := "Teacher: Today we practice describing the market together."
	seedArtifact(t, client.Client, "09:00", transcript)

	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, 0, fetcher.calls)
	require.Len(t, gen.inputs, 1)
	assert.Equal(t, transcript, gen.inputs[0].Transcript)
}

func TestWorker_FetcherFailureCountsAsRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	fetcher := &fakeFetcher{err: errors.New("source unreachable")}
	w := newTestWorker(t, client.Client, &fakeGenerator{}, fetcher)
	ctx := context.Background()

	artifact := seedArtifact(t, client.Client, "09:00", "")

	require.NoError(t, w.pollAndProcess(ctx))

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, artifact.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusAwaitingExercises, reloaded.Status)
	require.NotNil(t, reloaded.LastError)
	assert.Contains(t, *reloaded.LastError, "transcript fetch")
}
