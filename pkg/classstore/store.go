// Package classstore is the adapter to the operational store.
//
// The classes and users tables are owned by the upstream platform; this
// package only reads ended classes and flips the narrow ai_triggered
// dispatch guard. No migrations, no ORM.
package classstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

// EndedClass is one dispatch candidate from the operational store.
type EndedClass struct {
	ClassID      string
	StudentID    string
	TeacherID    string
	MeetingStart time.Time
	MeetingEnd   time.Time
	ZoomID       string
	TeacherEmail string // empty when the teacher has no email on file
}

// Store provides read access to classes/users and the ai_triggered CAS.
type Store struct {
	db *sql.DB
}

// New opens a connection pool to the operational store and verifies connectivity.
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open operational store: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping operational store: %w", err)
	}

	return &Store{db: db}, nil
}

// NewFromDB wraps an existing connection (useful for testing).
func NewFromDB(db *sql.DB) *Store {
	return &Store{db: db}
}

const endedClassesQuery = `
SELECT c.class_id, c.student_id, c.teacher_id, c.meeting_start, c.meeting_end,
       COALESCE(c.zoom_id, ''), COALESCE(u.email, '')
FROM classes c
LEFT JOIN users u ON u.user_id = c.teacher_id
WHERE c.status = 'ended'
  AND c.meeting_end IS NOT NULL
  AND (c.ai_triggered IS NULL OR c.ai_triggered = 0)
ORDER BY c.meeting_end ASC
LIMIT $1`

// EndedClasses returns up to limit ended classes that have not been
// dispatched yet, oldest meeting_end first. Selection is advisory; the
// MarkTriggered CAS is authoritative.
func (s *Store) EndedClasses(ctx context.Context, limit int) ([]EndedClass, error) {
	rows, err := s.db.QueryContext(ctx, endedClassesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ended classes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var classes []EndedClass
	for rows.Next() {
		var c EndedClass
		var meetingStart sql.NullTime
		if err := rows.Scan(&c.ClassID, &c.StudentID, &c.TeacherID, &meetingStart,
			&c.MeetingEnd, &c.ZoomID, &c.TeacherEmail); err != nil {
			return nil, fmt.Errorf("failed to scan class row: %w", err)
		}
		if meetingStart.Valid {
			c.MeetingStart = meetingStart.Time
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate class rows: %w", err)
	}

	return classes, nil
}

const markTriggeredQuery = `
UPDATE classes
SET ai_triggered = 1, updated_at = now()
WHERE class_id = $1
  AND (ai_triggered IS NULL OR ai_triggered = 0)`

// MarkTriggered flips the dispatch guard for one class. The update is
// conditional on ai_triggered still being unset, so at most one caller
// across all monitor instances observes true.
func (s *Store) MarkTriggered(ctx context.Context, classID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, markTriggeredQuery, classID)
	if err != nil {
		return false, fmt.Errorf("failed to mark class %s triggered: %w", classID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for class %s: %w", classID, err)
	}
	return affected == 1, nil
}

// Ping verifies connectivity for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
