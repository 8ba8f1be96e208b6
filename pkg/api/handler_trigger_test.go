package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/dispatch"
)

func TestTriggerHandler_CreatesArtifact(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success, StatusCode: 200}}
	s, _ := newTestServer(t, dispatcher)

	rec := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TriggerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.SummaryID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "c-1", resp.ClassID)
	assert.Equal(t, "2026-08-20", resp.Date)
	assert.Contains(t, resp.PollURLs.Status, "/v1/lesson-status/")
	assert.Contains(t, resp.PollURLs.Exercises, "class_id=c-1")

	assert.Equal(t, 1, dispatcher.callCount())
}

func TestTriggerHandler_IdempotentByBusinessKey(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success, StatusCode: 200}}
	s, _ := newTestServer(t, dispatcher)

	first := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	require.Equal(t, http.StatusCreated, first.Code)
	var created TriggerResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))

	second := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	require.Equal(t, http.StatusOK, second.Code)
	var existing TriggerResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &existing))

	assert.Equal(t, created.SummaryID, existing.SummaryID)

	// The workflow is only kicked for a fresh artifact.
	assert.Equal(t, 1, dispatcher.callCount())
}

func TestTriggerHandler_OwnershipConflict(t *testing.T) {
	s, _ := newTestServer(t, nil)

	first := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	require.Equal(t, http.StatusCreated, first.Code)

	conflicting := validTriggerRequest()
	conflicting.TeacherEmail = "other@example.com"
	second := doJSON(t, s, http.MethodPost, "/v1/trigger", conflicting, nil)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestTriggerHandler_Validation(t *testing.T) {
	s, _ := newTestServer(t, nil)

	tests := []struct {
		name   string
		mutate func(*TriggerRequest)
	}{
		{"missing user_id", func(r *TriggerRequest) { r.UserID = "" }},
		{"missing date", func(r *TriggerRequest) { r.Date = "" }},
		{"malformed date", func(r *TriggerRequest) { r.Date = "20-08-2026" }},
		{"malformed start_time", func(r *TriggerRequest) { r.StartTime = "2pm" }},
		{"unknown source", func(r *TriggerRequest) { r.TranscriptSource = "carrier_pigeon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTriggerRequest()
			tt.mutate(&req)
			rec := doJSON(t, s, http.MethodPost, "/v1/trigger", req, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTriggerHandler_DispatchFailureDoesNotFailRequest(t *testing.T) {
	dispatcher := &stubDispatcher{outcome: dispatch.Outcome{Class: dispatch.Retryable, StatusCode: 503}}
	s, _ := newTestServer(t, dispatcher)

	rec := doJSON(t, s, http.MethodPost, "/v1/trigger", validTriggerRequest(), nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, dispatcher.callCount())
}
