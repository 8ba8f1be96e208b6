package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/database"
	"github.com/tulkka/lessonflow/pkg/dispatch"
	"github.com/tulkka/lessonflow/pkg/engine"
	"github.com/tulkka/lessonflow/pkg/services"
	testdb "github.com/tulkka/lessonflow/test/database"
)

type stubDispatcher struct {
	mu      sync.Mutex
	outcome dispatch.Outcome
	calls   int
}

func (d *stubDispatcher) Dispatch(_ context.Context, _ dispatch.Payload, _ string) dispatch.Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.outcome
}

func (d *stubDispatcher) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

func testServerConfig() *config.Config {
	return &config.Config{
		HTTPPort:          "8080",
		IdempotencyWindow: time.Minute,
		Worker: config.WorkerConfig{
			EngineTimeout: 30 * time.Second,
		},
		Engine: config.EngineConfig{
			QualityMin:         60,
			MinTranscriptChars: 100,
		},
	}
}

// newTestServer wires a server against a real test database and the real
// engine with no LLM provider.
func newTestServer(t *testing.T, dispatcher Dispatcher) (*Server, *database.Client) {
	t.Helper()

	client := testdb.NewTestClient(t)
	cfg := testServerConfig()
	gen := engine.New(engine.Config{
		QualityMin:         cfg.Engine.QualityMin,
		MinTranscriptChars: cfg.Engine.MinTranscriptChars,
	}, nil)

	s := NewServer(cfg, client,
		services.NewArtifactService(client.Client),
		services.NewExerciseService(client.Client),
		gen, dispatcher, nil, nil)
	return s, client
}

func doJSON(t *testing.T, s *Server, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if header != nil {
		req.Header = header.Clone()
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func validTriggerRequest() TriggerRequest {
	return TriggerRequest{
		UserID:       "s-1",
		TeacherID:    "t-1",
		ClassID:      "c-1",
		Date:         "2026-08-20",
		StartTime:    "14:30",
		EndTime:      "15:25",
		TeacherEmail: "anna@example.com",
	}
}
