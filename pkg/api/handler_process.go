package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/tulkka/lessonflow/ent"
	"github.com/tulkka/lessonflow/pkg/engine"
	"github.com/tulkka/lessonflow/pkg/services"
)

// processHandler handles POST /v1/process.
// Runs the exercise engine synchronously on a caller-supplied transcript.
// When user_id, teacher_id, and class_id are all present the result is also
// persisted as an artifact plus exercise set; persistence failures degrade to
// a warning and the generated document is returned either way.
func (s *Server) processHandler(c *echo.Context) error {
	var req ProcessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Transcript == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "transcript is required")
	}

	ctx := c.Request().Context()

	var artifact *ent.TranscriptArtifact
	if req.UserID != "" && req.TeacherID != "" && req.ClassID != "" {
		now := time.Now().UTC()
		row, _, err := s.artifacts.EnsureArtifact(ctx, services.TriggerInput{
			UserID:      req.UserID,
			TeacherID:   req.TeacherID,
			ClassID:     req.ClassID,
			MeetingDate: now.Format("2006-01-02"),
			StartTime:   now.Format("15:04"),
			Transcript:  req.Transcript,
		})
		if err != nil {
			slog.Warn("Ad-hoc processing: artifact registration failed, result will not be persisted",
				"class_id", req.ClassID, "error", err)
		} else {
			artifact = row
		}
	}

	input := engine.Input{
		Transcript: req.Transcript,
		UserID:     req.UserID,
		TeacherID:  req.TeacherID,
		ClassID:    req.ClassID,
	}
	if artifact != nil {
		input.SummaryID = artifact.ID
		input.MeetingDate = artifact.MeetingDate
	}

	engineCtx, cancel := context.WithTimeout(ctx, s.cfg.Worker.EngineTimeout)
	defer cancel()

	doc, err := s.generator.Generate(engineCtx, input)
	if err != nil {
		if errors.Is(err, engine.ErrTranscriptTooShort) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return mapServiceError(err)
	}

	resp := &ProcessResponse{Success: true, Exercises: doc}
	if artifact != nil {
		if _, err := s.exercises.PersistAdhoc(ctx, artifact, doc); err != nil {
			slog.Warn("Ad-hoc processing: failed to store exercises",
				"summary_id", artifact.ID, "error", err)
		} else {
			resp.SummaryID = &artifact.ID
			resp.Persisted = true
		}
	}

	return c.JSON(http.StatusOK, resp)
}
