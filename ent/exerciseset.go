// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/models"
)

// ExerciseSet is the model entity for the ExerciseSet schema.
type ExerciseSet struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// SummaryID holds the value of the "summary_id" field.
	SummaryID int64 `json:"summary_id,omitempty"`
	// Denormalized from the artifact for read-path locality
	UserID string `json:"user_id,omitempty"`
	// TeacherID holds the value of the "teacher_id" field.
	TeacherID string `json:"teacher_id,omitempty"`
	// ClassID holds the value of the "class_id" field.
	ClassID string `json:"class_id,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// The four typed exercise arrays plus counts and metadata
	Exercises *models.ExerciseDocument `json:"exercises,omitempty"`
	// Status holds the value of the "status" field.
	Status exerciseset.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExerciseSetQuery when eager-loading is set.
	Edges        ExerciseSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExerciseSetEdges holds the relations/edges for other nodes in the graph.
type ExerciseSetEdges struct {
	// Artifact holds the value of the artifact edge.
	Artifact *TranscriptArtifact `json:"artifact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArtifactOrErr returns the Artifact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExerciseSetEdges) ArtifactOrErr() (*TranscriptArtifact, error) {
	if e.Artifact != nil {
		return e.Artifact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: transcriptartifact.Label}
	}
	return nil, &NotLoadedError{edge: "artifact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExerciseSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exerciseset.FieldExercises:
			values[i] = new([]byte)
		case exerciseset.FieldID, exerciseset.FieldSummaryID:
			values[i] = new(sql.NullInt64)
		case exerciseset.FieldUserID, exerciseset.FieldTeacherID, exerciseset.FieldClassID, exerciseset.FieldStatus:
			values[i] = new(sql.NullString)
		case exerciseset.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExerciseSet fields.
func (_m *ExerciseSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exerciseset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case exerciseset.FieldSummaryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field summary_id", values[i])
			} else if value.Valid {
				_m.SummaryID = value.Int64
			}
		case exerciseset.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case exerciseset.FieldTeacherID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_id", values[i])
			} else if value.Valid {
				_m.TeacherID = value.String
			}
		case exerciseset.FieldClassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				_m.ClassID = value.String
			}
		case exerciseset.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		case exerciseset.FieldExercises:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exercises", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exercises); err != nil {
					return fmt.Errorf("unmarshal field exercises: %w", err)
				}
			}
		case exerciseset.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = exerciseset.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExerciseSet.
// This includes values selected through modifiers, order, etc.
func (_m *ExerciseSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArtifact queries the "artifact" edge of the ExerciseSet entity.
func (_m *ExerciseSet) QueryArtifact() *TranscriptArtifactQuery {
	return NewExerciseSetClient(_m.config).QueryArtifact(_m)
}

// Update returns a builder for updating this ExerciseSet.
// Note that you need to call ExerciseSet.Unwrap() before calling this method if this ExerciseSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExerciseSet) Update() *ExerciseSetUpdateOne {
	return NewExerciseSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExerciseSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExerciseSet) Unwrap() *ExerciseSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExerciseSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExerciseSet) String() string {
	var builder strings.Builder
	builder.WriteString("ExerciseSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("summary_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("teacher_id=")
	builder.WriteString(_m.TeacherID)
	builder.WriteString(", ")
	builder.WriteString("class_id=")
	builder.WriteString(_m.ClassID)
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("exercises=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exercises))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// ExerciseSets is a parsable slice of ExerciseSet.
type ExerciseSets []*ExerciseSet
