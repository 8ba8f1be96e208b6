package api

import (
	"fmt"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/pkg/dispatch"
	"github.com/tulkka/lessonflow/pkg/services"
)

// triggerHandler handles POST /v1/trigger.
// Registers the lesson artifact idempotently by business key, then forwards
// the payload to the external transcript workflow. Re-triggering an existing
// artifact returns the stored row without a second dispatch.
func (s *Server) triggerHandler(c *echo.Context) error {
	var req TriggerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := services.TriggerInput{
		UserID:       req.UserID,
		TeacherID:    req.TeacherID,
		ClassID:      req.ClassID,
		MeetingDate:  req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		TeacherEmail: req.TeacherEmail,
		Transcript:   req.Transcript,
		Source:       req.TranscriptSource,
	}

	artifact, created, err := s.artifacts.EnsureArtifact(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}

	if created && s.dispatcher != nil {
		s.forwardTrigger(c, req)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, triggerResponse(artifact))
}

// forwardTrigger hands the payload to the external workflow. Dispatch
// failures never fail the trigger; the workflow also polls on its own and a
// failed forward merely delays transcript delivery.
func (s *Server) forwardTrigger(c *echo.Context, req TriggerRequest) {
	payload := dispatch.Payload{
		UserID:       req.UserID,
		TeacherID:    req.TeacherID,
		ClassID:      req.ClassID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		TeacherEmail: req.TeacherEmail,
	}
	key := fmt.Sprintf("trigger-%s-%s-%s", req.ClassID, req.Date, req.StartTime)

	outcome := s.dispatcher.Dispatch(c.Request().Context(), payload, key)
	if outcome.Class != dispatch.Success {
		slog.Warn("Trigger forward to workflow failed",
			"class_id", req.ClassID,
			"outcome", outcome.Class,
			"status_code", outcome.StatusCode,
			"reason", outcome.Reason)
	}
}

func triggerResponse(artifact *ent.TranscriptArtifact) *TriggerResponse {
	return &TriggerResponse{
		SummaryID: artifact.ID,
		Status:    string(artifact.Status),
		ClassID:   artifact.ClassID,
		Date:      artifact.MeetingDate,
		PollURLs: PollURLs{
			Status:    fmt.Sprintf("/v1/lesson-status/%d", artifact.ID),
			Exercises: fmt.Sprintf("/v1/exercises?class_id=%s", artifact.ClassID),
		},
	}
}
