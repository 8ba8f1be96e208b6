package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/classstore"
	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/dispatch"
)

type fakeSource struct {
	mu      sync.Mutex
	classes []classstore.EndedClass
	listErr error
	markErr error
	marked  []string
	// markResult controls the conditional-update result per class id.
	markResult map[string]bool
}

func (f *fakeSource) EndedClasses(_ context.Context, limit int) ([]classstore.EndedClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.classes) > limit {
		return f.classes[:limit], nil
	}
	return f.classes, nil
}

func (f *fakeSource) MarkTriggered(_ context.Context, classID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return false, f.markErr
	}
	f.marked = append(f.marked, classID)
	if f.markResult != nil {
		return f.markResult[classID], nil
	}
	return true, nil
}

func (f *fakeSource) markedClasses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.marked...)
}

type dispatchCall struct {
	payload dispatch.Payload
	key     string
}

type fakeDispatcher struct {
	mu      sync.Mutex
	outcome dispatch.Outcome
	calls   []dispatchCall
}

func (f *fakeDispatcher) Dispatch(_ context.Context, payload dispatch.Payload, key string) dispatch.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dispatchCall{payload: payload, key: key})
	return f.outcome
}

func (f *fakeDispatcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testMonitorConfig() *config.MonitorConfig {
	return &config.MonitorConfig{
		Enabled:         true,
		PollInterval:    time.Hour, // single tick per test unless driven manually
		BatchSize:       50,
		WebhookURL:      "http://localhost/webhook",
		DispatchTimeout: 5 * time.Second,
	}
}

func endedClass(id string) classstore.EndedClass {
	return classstore.EndedClass{
		ClassID:      id,
		StudentID:    "s-1",
		TeacherID:    "t-1",
		MeetingStart: time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
		MeetingEnd:   time.Date(2026, 8, 20, 15, 25, 0, 0, time.UTC),
		TeacherEmail: "anna@example.com",
	}
}

func TestMonitor_TickSuccessMarksClass(t *testing.T) {
	source := &fakeSource{classes: []classstore.EndedClass{endedClass("c-1")}}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success, StatusCode: 200}}
	svc := NewService(testMonitorConfig(), source, dispatcher)

	svc.tick(context.Background())

	require.Equal(t, 1, dispatcher.callCount())
	call := dispatcher.calls[0]
	assert.Equal(t, "s-1", call.payload.UserID)
	assert.Equal(t, "t-1", call.payload.TeacherID)
	assert.Equal(t, "c-1", call.payload.ClassID)
	assert.Equal(t, "2026-08-20", call.payload.Date)
	assert.Equal(t, "14:30", call.payload.StartTime)
	assert.Equal(t, "15:25", call.payload.EndTime)
	assert.Equal(t, "anna@example.com", call.payload.TeacherEmail)
	assert.Equal(t, "class-c-1-2026-08-20T14:30", call.key)

	assert.Equal(t, []string{"c-1"}, source.markedClasses())
}

func TestMonitor_TickRetryableLeavesClassEligible(t *testing.T) {
	source := &fakeSource{classes: []classstore.EndedClass{endedClass("c-1")}}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{
		Class:      dispatch.Retryable,
		StatusCode: 503,
		Reason:     "server error",
	}}
	svc := NewService(testMonitorConfig(), source, dispatcher)

	svc.tick(context.Background())
	assert.Empty(t, source.markedClasses())

	// Next tick re-attempts the same class.
	svc.tick(context.Background())
	assert.Equal(t, 2, dispatcher.callCount())
}

func TestMonitor_TickPermanentLeavesClassEligible(t *testing.T) {
	source := &fakeSource{classes: []classstore.EndedClass{endedClass("c-1")}}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{
		Class:      dispatch.Permanent,
		StatusCode: 422,
		Reason:     "client error",
	}}
	svc := NewService(testMonitorConfig(), source, dispatcher)

	svc.tick(context.Background())

	// Permanent rejections need manual intervention; the flag stays unset.
	assert.Empty(t, source.markedClasses())
	assert.Equal(t, 1, dispatcher.callCount())
}

func TestMonitor_TickToleratesLostMarkRace(t *testing.T) {
	source := &fakeSource{
		classes:    []classstore.EndedClass{endedClass("c-1")},
		markResult: map[string]bool{"c-1": false},
	}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success, StatusCode: 200}}
	svc := NewService(testMonitorConfig(), source, dispatcher)

	// Another replica marked first; not an error.
	svc.tick(context.Background())
	assert.Equal(t, []string{"c-1"}, source.markedClasses())
}

func TestMonitor_TickListErrorSkipsDispatch(t *testing.T) {
	source := &fakeSource{listErr: errors.New("connection refused")}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success}}
	svc := NewService(testMonitorConfig(), source, dispatcher)

	svc.tick(context.Background())
	assert.Zero(t, dispatcher.callCount())
}

func TestMonitor_TickRespectsBatchSize(t *testing.T) {
	source := &fakeSource{classes: []classstore.EndedClass{
		endedClass("c-1"), endedClass("c-2"), endedClass("c-3"),
	}}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success, StatusCode: 200}}

	cfg := testMonitorConfig()
	cfg.BatchSize = 2
	svc := NewService(cfg, source, dispatcher)

	svc.tick(context.Background())
	assert.Equal(t, 2, dispatcher.callCount())
	assert.Equal(t, []string{"c-1", "c-2"}, source.markedClasses())
}

func TestMonitor_StartStop(t *testing.T) {
	source := &fakeSource{classes: []classstore.EndedClass{endedClass("c-1")}}
	dispatcher := &fakeDispatcher{outcome: dispatch.Outcome{Class: dispatch.Success, StatusCode: 200}}

	cfg := testMonitorConfig()
	cfg.PollInterval = 20 * time.Millisecond
	svc := NewService(cfg, source, dispatcher)

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate Start is a no-op

	require.Eventually(t, func() bool {
		return dispatcher.callCount() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	svc.Stop()
	after := dispatcher.callCount()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, dispatcher.callCount(), "no ticks after Stop")
}

func TestPayloadFor_ZeroEndAndEmptyEmail(t *testing.T) {
	class := endedClass("c-1")
	class.MeetingEnd = time.Time{}
	class.TeacherEmail = ""

	payload := payloadFor(class)
	assert.Empty(t, payload.EndTime)
	assert.Empty(t, payload.TeacherEmail)
	assert.Equal(t, "2026-08-20", payload.Date)
	assert.Equal(t, "14:30", payload.StartTime)
}

func TestPayloadFor_ConvertsToUTC(t *testing.T) {
	class := endedClass("c-1")
	class.MeetingStart = time.Date(2026, 8, 20, 23, 45, 0, 0, time.FixedZone("UTC+2", 2*3600))

	payload := payloadFor(class)
	assert.Equal(t, "2026-08-20", payload.Date)
	assert.Equal(t, "21:45", payload.StartTime)

	assert.Equal(t, "class-c-1-2026-08-20T21:45", idempotencyKeyFor(class))
}
