// Package monitor provides the ended-class poller that kicks off the
// transcript pipeline for each finished lesson.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/tulkka/lessonflow/pkg/classstore"
	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/dispatch"
)

// ClassSource lists ended classes awaiting a trigger and records those that
// were handed off.
type ClassSource interface {
	EndedClasses(ctx context.Context, limit int) ([]classstore.EndedClass, error)
	MarkTriggered(ctx context.Context, classID string) (bool, error)
}

// Dispatcher forwards a trigger payload to the transcript webhook.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload dispatch.Payload, idempotencyKey string) dispatch.Outcome
}

// Service periodically scans the operational store for ended classes and
// dispatches one trigger per class. Marking is conditional, so concurrent
// replicas never double-trigger, and a class stays eligible until a dispatch
// actually succeeds.
type Service struct {
	config     *config.MonitorConfig
	source     ClassSource
	dispatcher Dispatcher

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new monitor service.
func NewService(cfg *config.MonitorConfig, source ClassSource, dispatcher Dispatcher) *Service {
	return &Service{
		config:     cfg,
		source:     source,
		dispatcher: dispatcher,
	}
}

// Start launches the background polling loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Monitor service started",
		"poll_interval", s.config.PollInterval,
		"batch_size", s.config.BatchSize)
}

// Stop signals the polling loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Monitor service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.tick(ctx)

	for {
		timer := time.NewTimer(s.pollInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.tick(ctx)
		}
	}
}

// tick processes one batch of ended classes.
func (s *Service) tick(ctx context.Context) {
	classes, err := s.source.EndedClasses(ctx, s.config.BatchSize)
	if err != nil {
		slog.Error("Monitor: listing ended classes failed", "error", err)
		return
	}
	if len(classes) == 0 {
		return
	}

	slog.Info("Monitor: processing ended classes", "count", len(classes))

	for _, class := range classes {
		if ctx.Err() != nil {
			return
		}
		s.triggerClass(ctx, class)
	}
}

// triggerClass dispatches one class and marks it on success. Failed
// dispatches of either kind leave the class untouched; it stays eligible
// until the webhook accepts it or someone flips the flag by hand.
func (s *Service) triggerClass(ctx context.Context, class classstore.EndedClass) {
	log := slog.With("class_id", class.ClassID, "student_id", class.StudentID)

	dispatchCtx, cancel := context.WithTimeout(ctx, s.config.DispatchTimeout)
	defer cancel()

	outcome := s.dispatcher.Dispatch(dispatchCtx, payloadFor(class), idempotencyKeyFor(class))

	switch outcome.Class {
	case dispatch.Success:
		marked, err := s.source.MarkTriggered(ctx, class.ClassID)
		if err != nil {
			log.Error("Monitor: marking class failed after successful dispatch", "error", err)
			return
		}
		if !marked {
			log.Info("Monitor: class already marked by another replica")
			return
		}
		log.Info("Monitor: class triggered", "status_code", outcome.StatusCode)

	case dispatch.Permanent:
		log.Error("Monitor: dispatch rejected permanently, needs manual intervention",
			"status_code", outcome.StatusCode, "reason", outcome.Reason, "error", outcome.Err)

	default: // Retryable
		log.Warn("Monitor: dispatch failed, will retry next tick",
			"status_code", outcome.StatusCode, "reason", outcome.Reason, "error", outcome.Err)
	}
}

// payloadFor converts an ended class row to the webhook payload. Times are
// rendered in UTC; the date comes from the meeting start.
func payloadFor(class classstore.EndedClass) dispatch.Payload {
	payload := dispatch.Payload{
		UserID:       class.StudentID,
		TeacherID:    class.TeacherID,
		ClassID:      class.ClassID,
		Date:         class.MeetingStart.UTC().Format("2006-01-02"),
		StartTime:    class.MeetingStart.UTC().Format("15:04"),
		TeacherEmail: class.TeacherEmail,
	}
	if !class.MeetingEnd.IsZero() {
		payload.EndTime = class.MeetingEnd.UTC().Format("15:04")
	}
	return payload
}

// idempotencyKeyFor derives a stable per-class key so webhook-side replay
// detection can collapse duplicate deliveries.
func idempotencyKeyFor(class classstore.EndedClass) string {
	return fmt.Sprintf("class-%s-%s", class.ClassID, class.MeetingStart.UTC().Format("2006-01-02T15:04"))
}

// pollInterval returns the poll duration with jitter, desynchronizing
// replicas that started at the same instant.
func (s *Service) pollInterval() time.Duration {
	base := s.config.PollInterval
	jitter := s.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
