package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/tulkka/lessonflow/pkg/services"
)

// lessonStatusHandler handles GET /v1/lesson-status/:summary_id.
func (s *Server) lessonStatusHandler(c *echo.Context) error {
	summaryID, err := strconv.ParseInt(c.Param("summary_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "summary_id must be an integer")
	}

	ctx := c.Request().Context()

	artifact, err := s.artifacts.Get(ctx, summaryID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &LessonStatusResponse{
		SummaryID:           artifact.ID,
		Status:              string(artifact.Status),
		ProcessingAttempts:  artifact.ProcessingAttempts,
		LastError:           artifact.LastError,
		TranscriptAvailable: artifact.Transcript != nil && *artifact.Transcript != "",
		TranscriptLength:    artifact.TranscriptLength,
		ProcessedAt:         artifact.ProcessedAt,
	}

	set, err := s.exercises.LatestForSummary(ctx, summaryID)
	switch {
	case err == nil:
		resp.ExercisesGenerated = true
		resp.ExercisesID = &set.ID
	case errors.Is(err, services.ErrNotFound):
		// No set yet.
	default:
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
