// Code generated by ent, DO NOT EDIT.

package transcriptartifact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcriptartifact type in the database.
	Label = "transcript_artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTeacherID holds the string denoting the teacher_id field in the database.
	FieldTeacherID = "teacher_id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldTeacherEmail holds the string denoting the teacher_email field in the database.
	FieldTeacherEmail = "teacher_email"
	// FieldMeetingDate holds the string denoting the meeting_date field in the database.
	FieldMeetingDate = "meeting_date"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldTranscriptLength holds the string denoting the transcript_length field in the database.
	FieldTranscriptLength = "transcript_length"
	// FieldTranscriptSource holds the string denoting the transcript_source field in the database.
	FieldTranscriptSource = "transcript_source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProcessingAttempts holds the string denoting the processing_attempts field in the database.
	FieldProcessingAttempts = "processing_attempts"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExerciseSets holds the string denoting the exercise_sets edge name in mutations.
	EdgeExerciseSets = "exercise_sets"
	// ExerciseSetFieldID holds the string denoting the ID field of the ExerciseSet.
	ExerciseSetFieldID = "id"
	// Table holds the table name of the transcriptartifact in the database.
	Table = "zoom_summaries"
	// ExerciseSetsTable is the table that holds the exercise_sets relation/edge.
	ExerciseSetsTable = "lesson_exercises"
	// ExerciseSetsInverseTable is the table name for the ExerciseSet entity.
	// It exists in this package in order to avoid circular dependency with the "exerciseset" package.
	ExerciseSetsInverseTable = "lesson_exercises"
	// ExerciseSetsColumn is the table column denoting the exercise_sets relation/edge.
	ExerciseSetsColumn = "summary_id"
)

// Columns holds all SQL columns for transcriptartifact fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTeacherID,
	FieldClassID,
	FieldTeacherEmail,
	FieldMeetingDate,
	FieldStartTime,
	FieldEndTime,
	FieldTranscript,
	FieldTranscriptLength,
	FieldTranscriptSource,
	FieldStatus,
	FieldProcessingAttempts,
	FieldLastError,
	FieldClaimedAt,
	FieldClaimedBy,
	FieldProcessedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTranscriptLength holds the default value on creation for the "transcript_length" field.
	DefaultTranscriptLength int
	// DefaultProcessingAttempts holds the default value on creation for the "processing_attempts" field.
	DefaultProcessingAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TranscriptSource defines the type for the "transcript_source" enum field.
type TranscriptSource string

// TranscriptSourceUnknown is the default value of the TranscriptSource enum.
const DefaultTranscriptSource = TranscriptSourceUnknown

// TranscriptSource values.
const (
	TranscriptSourceZoomNative  TranscriptSource = "zoom_native"
	TranscriptSourceExternalStt TranscriptSource = "external_stt"
	TranscriptSourceUnknown     TranscriptSource = "unknown"
)

func (ts TranscriptSource) String() string {
	return string(ts)
}

// TranscriptSourceValidator is a validator for the "transcript_source" field enum values. It is called by the builders before save.
func TranscriptSourceValidator(ts TranscriptSource) error {
	switch ts {
	case TranscriptSourceZoomNative, TranscriptSourceExternalStt, TranscriptSourceUnknown:
		return nil
	default:
		return fmt.Errorf("transcriptartifact: invalid enum value for transcript_source field: %q", ts)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending           Status = "pending"
	StatusProcessing        Status = "processing"
	StatusAwaitingExercises Status = "awaiting_exercises"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusAwaitingExercises, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("transcriptartifact: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TranscriptArtifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTeacherID orders the results by the teacher_id field.
func ByTeacherID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeacherID, opts...).ToFunc()
}

// ByClassID orders the results by the class_id field.
func ByClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassID, opts...).ToFunc()
}

// ByTeacherEmail orders the results by the teacher_email field.
func ByTeacherEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeacherEmail, opts...).ToFunc()
}

// ByMeetingDate orders the results by the meeting_date field.
func ByMeetingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingDate, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByTranscript orders the results by the transcript field.
func ByTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscript, opts...).ToFunc()
}

// ByTranscriptLength orders the results by the transcript_length field.
func ByTranscriptLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptLength, opts...).ToFunc()
}

// ByTranscriptSource orders the results by the transcript_source field.
func ByTranscriptSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProcessingAttempts orders the results by the processing_attempts field.
func ByProcessingAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingAttempts, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExerciseSetsCount orders the results by exercise_sets count.
func ByExerciseSetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExerciseSetsStep(), opts...)
	}
}

// ByExerciseSets orders the results by exercise_sets terms.
func ByExerciseSets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExerciseSetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExerciseSetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExerciseSetsInverseTable, ExerciseSetFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExerciseSetsTable, ExerciseSetsColumn),
	)
}
