package worker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/services"
	testdb "github.com/tulkka/lessonflow/test/database"
)

func TestWorkerPool_StartupLeaseRelease(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stranded := seedArtifact(t, client.Client, "09:00", "transcript")
	err := client.Client.TranscriptArtifact.UpdateOneID(stranded.ID).
		SetStatus(transcriptartifact.StatusProcessing).
		SetProcessingAttempts(2).
		SetClaimedAt(time.Now()).
		SetClaimedBy("pod-a").
		Exec(ctx)
	require.NoError(t, err)

	// Another pod's live claim must survive.
	foreign := seedArtifact(t, client.Client, "10:00", "transcript")
	err = client.Client.TranscriptArtifact.UpdateOneID(foreign.ID).
		SetStatus(transcriptartifact.StatusProcessing).
		SetClaimedAt(time.Now()).
		SetClaimedBy("pod-b").
		Exec(ctx)
	require.NoError(t, err)

	released, err := NewWorkerPool("pod-a", client.Client, testWorkerConfig(),
		&fakeGenerator{}, services.NewExerciseService(client.Client), nil).
		releaseStartupLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	reloaded, err := client.Client.TranscriptArtifact.Get(ctx, stranded.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusAwaitingExercises, reloaded.Status)
	assert.Nil(t, reloaded.ClaimedAt)
	assert.Nil(t, reloaded.ClaimedBy)
	assert.Equal(t, 2, reloaded.ProcessingAttempts)

	untouched, err := client.Client.TranscriptArtifact.Get(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusProcessing, untouched.Status)
	require.NotNil(t, untouched.ClaimedBy)
	assert.Equal(t, "pod-b", *untouched.ClaimedBy)
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)

	seedArtifact(t, client.Client, "09:00", "transcript")
	seedArtifact(t, client.Client, "10:00", "transcript")

	pool := NewWorkerPool("pod-a", client.Client, testWorkerConfig(),
		&fakeGenerator{}, services.NewExerciseService(client.Client), nil)

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.False(t, health.IsHealthy) // no workers started yet
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, 0, health.ActiveClaims)
	assert.Equal(t, "pod-a", health.PodID)
}

// Two pods hammering the same queue: every artifact is claimed exactly once.
func TestWorkerPool_ClaimContention(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	const artifacts = 20
	for i := 0; i < artifacts; i++ {
		seedArtifact(t, clientA.Client, fmt.Sprintf("09:%02d", i), "transcript")
	}

	workerA := NewWorker("pod-a-worker-0", "pod-a", clientA.Client, testWorkerConfig(),
		&fakeGenerator{}, services.NewExerciseService(clientA.Client), nil)
	workerB := NewWorker("pod-b-worker-0", "pod-b", clientB.Client, testWorkerConfig(),
		&fakeGenerator{}, services.NewExerciseService(clientB.Client), nil)

	var mu sync.Mutex
	claimedBy := make(map[int64]string)

	var wg sync.WaitGroup
	for _, w := range []*Worker{workerA, workerB} {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			for {
				artifact, err := w.claimNext(ctx)
				if err != nil {
					return // queue drained
				}
				mu.Lock()
				if prev, dup := claimedBy[artifact.ID]; dup {
					t.Errorf("artifact %d claimed by both %s and %s", artifact.ID, prev, w.podID)
				}
				claimedBy[artifact.ID] = w.podID
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, claimedBy, artifacts)

	remaining, err := clientA.Client.TranscriptArtifact.Query().
		Where(transcriptartifact.StatusEQ(transcriptartifact.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestWorkerPool_EndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testWorkerConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	for i := 0; i < 5; i++ {
		seedArtifact(t, client.Client, fmt.Sprintf("09:%02d", i), "transcript")
	}

	pool := NewWorkerPool("pod-a", client.Client, cfg,
		&fakeGenerator{}, services.NewExerciseService(client.Client), nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		count, err := client.Client.TranscriptArtifact.Query().
			Where(transcriptartifact.StatusEQ(transcriptartifact.StatusCompleted)).
			Count(context.Background())
		return err == nil && count == 5
	}, 10*time.Second, 100*time.Millisecond)
}
