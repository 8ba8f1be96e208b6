package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

const processTranscript = `Teacher: Good morning! Today we will talk about the market and fresh vegetables.
Student: I have went to the market on Saturday with my brother.
Teacher: Don't say "goed", say "went". We buy vegetables at the market every weekend.
Student: My brother bought tomatoes and potatoes for the dinner.
Teacher: Important words: vegetables, market, weekend, brother. Please describe your weekend using them.`

func TestProcessHandler_ReturnsDocument(t *testing.T) {
	s, client := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/v1/process",
		ProcessRequest{Transcript: processTranscript}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProcessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Persisted)
	assert.Nil(t, resp.SummaryID)
	require.NotNil(t, resp.Exercises)
	assert.NotEmpty(t, resp.Exercises.Flashcards)

	// Nothing is written without the full id triple.
	count, err := client.Client.TranscriptArtifact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProcessHandler_PersistsWithFullIDs(t *testing.T) {
	s, client := newTestServer(t, nil)
	ctx := context.Background()

	rec := doJSON(t, s, http.MethodPost, "/v1/process", ProcessRequest{
		Transcript: processTranscript,
		UserID:     "s-1",
		TeacherID:  "t-1",
		ClassID:    "c-1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProcessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Persisted)
	require.NotNil(t, resp.SummaryID)

	artifact, err := client.Client.TranscriptArtifact.Get(ctx, *resp.SummaryID)
	require.NoError(t, err)
	assert.Equal(t, transcriptartifact.StatusCompleted, artifact.Status)
	require.NotNil(t, artifact.Transcript)
	assert.Equal(t, processTranscript, *artifact.Transcript)

	sets, err := client.Client.ExerciseSet.Query().
		Where(exerciseset.SummaryIDEQ(*resp.SummaryID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestProcessHandler_Validation(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/v1/process", ProcessRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Below the minimum transcript length.
	rec = doJSON(t, s, http.MethodPost, "/v1/process",
		ProcessRequest{Transcript: "too short"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
