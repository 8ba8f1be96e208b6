package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchSuccess(t *testing.T) {
	var gotBody Payload
	var gotKey, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	outcome := client.Dispatch(context.Background(), Payload{
		UserID:       "s-1",
		TeacherID:    "t-1",
		ClassID:      "c-1",
		Date:         "2025-11-24",
		StartTime:    "17:00",
		EndTime:      "17:30",
		TeacherEmail: "teacher@example.com",
	}, "class-c-1")

	assert.Equal(t, Success, outcome.Class)
	assert.Equal(t, http.StatusOK, outcome.StatusCode)
	assert.Equal(t, "class-c-1", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "c-1", gotBody.ClassID)
	assert.Equal(t, "teacher@example.com", gotBody.TeacherEmail)
}

func TestDispatchOmitsEmptyTeacherEmail(t *testing.T) {
	var raw map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	outcome := client.Dispatch(context.Background(), Payload{ClassID: "c-2"}, "class-c-2")

	assert.Equal(t, Success, outcome.Class)
	_, present := raw["teacher_email"]
	assert.False(t, present)
}

func TestDispatchStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		want   Class
	}{
		{200, Success},
		{201, Success},
		{204, Success},
		{408, Retryable},
		{429, Retryable},
		{500, Retryable},
		{503, Retryable},
		{400, Permanent},
		{404, Permanent},
		{422, Permanent},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		client := NewClient(server.URL, 5*time.Second)
		outcome := client.Dispatch(context.Background(), Payload{ClassID: "c-1"}, "class-c-1")
		server.Close()

		assert.Equal(t, tt.want, outcome.Class, "status %d", tt.status)
		assert.Equal(t, tt.status, outcome.StatusCode)
		if tt.want != Success {
			assert.NotEmpty(t, outcome.Reason)
		}
	}
}

func TestDispatchNetworkErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, time.Second)
	outcome := client.Dispatch(context.Background(), Payload{ClassID: "c-1"}, "class-c-1")

	assert.Equal(t, Retryable, outcome.Class)
	assert.Zero(t, outcome.StatusCode)
	assert.Error(t, outcome.Err)
}

func TestDispatchTimeoutIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, 5*time.Second)
	outcome := client.Dispatch(ctx, Payload{ClassID: "c-1"}, "class-c-1")

	assert.Equal(t, Retryable, outcome.Class)
	assert.Equal(t, "timeout", outcome.Reason)
}
