// Code generated by ent, DO NOT EDIT.

package exerciseset

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the exerciseset type in the database.
	Label = "exercise_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSummaryID holds the string denoting the summary_id field in the database.
	FieldSummaryID = "summary_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTeacherID holds the string denoting the teacher_id field in the database.
	FieldTeacherID = "teacher_id"
	// FieldClassID holds the string denoting the class_id field in the database.
	FieldClassID = "class_id"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// FieldExercises holds the string denoting the exercises field in the database.
	FieldExercises = "exercises"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeArtifact holds the string denoting the artifact edge name in mutations.
	EdgeArtifact = "artifact"
	// TranscriptArtifactFieldID holds the string denoting the ID field of the TranscriptArtifact.
	TranscriptArtifactFieldID = "summary_id"
	// Table holds the table name of the exerciseset in the database.
	Table = "lesson_exercises"
	// ArtifactTable is the table that holds the artifact relation/edge.
	ArtifactTable = "lesson_exercises"
	// ArtifactInverseTable is the table name for the TranscriptArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "transcriptartifact" package.
	ArtifactInverseTable = "zoom_summaries"
	// ArtifactColumn is the table column denoting the artifact relation/edge.
	ArtifactColumn = "summary_id"
)

// Columns holds all SQL columns for exerciseset fields.
var Columns = []string{
	FieldID,
	FieldSummaryID,
	FieldUserID,
	FieldTeacherID,
	FieldClassID,
	FieldGeneratedAt,
	FieldExercises,
	FieldStatus,
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
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingApproval is the default value of the Status enum.
const DefaultStatus = StatusPendingApproval

// Status values.
const (
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingApproval, StatusApproved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("exerciseset: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExerciseSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySummaryID orders the results by the summary_id field.
func BySummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryID, opts...).ToFunc()
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

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByArtifactField orders the results by artifact field.
func ByArtifactField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactStep(), sql.OrderByField(field, opts...))
	}
}
func newArtifactStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactInverseTable, TranscriptArtifactFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ArtifactTable, ArtifactColumn),
	)
}
