package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
	"github.com/tulkka/lessonflow/pkg/services"
)

func TestExercisesHandler(t *testing.T) {
	s, client := newTestServer(t, nil)
	ctx := context.Background()

	// Empty result is an array, not null.
	rec := doJSON(t, s, http.MethodGet, "/v1/exercises?class_id=c-1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ExercisesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Exercises)

	create := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	require.Equal(t, http.StatusCreated, create.Code)
	var created TriggerResponse
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &created))

	artifact, err := client.Client.TranscriptArtifact.Get(ctx, created.SummaryID)
	require.NoError(t, err)
	doc := &models.ExerciseDocument{
		Flashcards: []models.Flashcard{{ID: "f1", Word: "market"}},
	}
	doc.RecountItems()
	_, err = services.NewExerciseService(client.Client).PersistAdhoc(ctx, artifact, doc)
	require.NoError(t, err)

	rec = doJSON(t, s, http.MethodGet, "/v1/exercises?class_id=c-1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "c-1", resp.Exercises[0].ClassID)
	assert.Equal(t, 1, resp.Exercises[0].Exercises.Counts.Flashcards)

	// user_id narrows the result.
	rec = doJSON(t, s, http.MethodGet, "/v1/exercises?class_id=c-1&user_id=s-2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestExercisesHandler_RequiresClassID(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/v1/exercises", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
