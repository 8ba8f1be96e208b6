package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/tulkka/lessonflow/ent"
)

// exercisesHandler handles GET /v1/exercises?class_id=&user_id=.
// user_id is optional and narrows the result to one student.
func (s *Server) exercisesHandler(c *echo.Context) error {
	classID := c.QueryParam("class_id")
	userID := c.QueryParam("user_id")

	sets, err := s.exercises.List(c.Request().Context(), classID, userID)
	if err != nil {
		return mapServiceError(err)
	}
	if sets == nil {
		sets = []*ent.ExerciseSet{}
	}

	return c.JSON(http.StatusOK, &ExercisesResponse{
		Count:     len(sets),
		Exercises: sets,
	})
}
