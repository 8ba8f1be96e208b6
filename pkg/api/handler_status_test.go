package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
	"github.com/tulkka/lessonflow/pkg/services"
)

func TestLessonStatusHandler(t *testing.T) {
	s, client := newTestServer(t, nil)
	ctx := context.Background()

	create := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	require.Equal(t, http.StatusCreated, create.Code)
	var created TriggerResponse
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &created))

	rec := doJSON(t, s, http.MethodGet, created.PollURLs.Status, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status LessonStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, created.SummaryID, status.SummaryID)
	assert.Equal(t, "pending", status.Status)
	assert.Zero(t, status.ProcessingAttempts)
	assert.False(t, status.ExercisesGenerated)
	assert.False(t, status.TranscriptAvailable)
	assert.Nil(t, status.ProcessedAt)

	// Transcript delivery and exercise generation show up in the poll.
	transcript := strings.Repeat("Teacher: We practice describing the market. ", 5)
	require.NoError(t, services.NewArtifactService(client.Client).
		AttachTranscript(ctx, created.SummaryID, transcript, "zoom_native"))

	artifact, err := client.Client.TranscriptArtifact.Get(ctx, created.SummaryID)
	require.NoError(t, err)
	doc := &models.ExerciseDocument{
		Flashcards: []models.Flashcard{{ID: "f1", Word: "market"}},
	}
	doc.RecountItems()
	_, err = services.NewExerciseService(client.Client).PersistAdhoc(ctx, artifact, doc)
	require.NoError(t, err)

	rec = doJSON(t, s, http.MethodGet, created.PollURLs.Status, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "completed", status.Status)
	assert.True(t, status.TranscriptAvailable)
	assert.Equal(t, len(transcript), status.TranscriptLength)
	assert.True(t, status.ExercisesGenerated)
	require.NotNil(t, status.ExercisesID)
	assert.NotNil(t, status.ProcessedAt)
}

func TestLessonStatusHandler_NotFound(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/v1/lesson-status/99999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLessonStatusHandler_BadID(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/v1/lesson-status/not-a-number", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
