package classstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndedClasses(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	start := time.Date(2025, 11, 24, 17, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(`SELECT c\.class_id, c\.student_id`).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{
			"class_id", "student_id", "teacher_id", "meeting_start", "meeting_end", "zoom_id", "email",
		}).
			AddRow("c-1", "s-1", "t-1", start, end, "z-100", "teacher@example.com").
			AddRow("c-2", "s-2", "t-2", nil, end, "", ""))

	store := NewFromDB(db)
	classes, err := store.EndedClasses(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, classes, 2)

	assert.Equal(t, "c-1", classes[0].ClassID)
	assert.Equal(t, "s-1", classes[0].StudentID)
	assert.Equal(t, "t-1", classes[0].TeacherID)
	assert.Equal(t, start, classes[0].MeetingStart)
	assert.Equal(t, end, classes[0].MeetingEnd)
	assert.Equal(t, "teacher@example.com", classes[0].TeacherEmail)

	// Missing meeting_start and teacher email are tolerated.
	assert.True(t, classes[1].MeetingStart.IsZero())
	assert.Empty(t, classes[1].TeacherEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEndedClassesEmpty(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT c\.class_id`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{
			"class_id", "student_id", "teacher_id", "meeting_start", "meeting_end", "zoom_id", "email",
		}))

	store := NewFromDB(db)
	classes, err := store.EndedClasses(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, classes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkTriggered(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"wins the CAS", 1, true},
		{"loses the CAS", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			mock.ExpectExec(`UPDATE classes\s+SET ai_triggered = 1`).
				WithArgs("c-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			store := NewFromDB(db)
			won, err := store.MarkTriggered(context.Background(), "c-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, won)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
