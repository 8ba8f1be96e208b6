// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// TranscriptArtifact is the model entity for the TranscriptArtifact schema.
type TranscriptArtifact struct {
	config `json:"-"`
	// ID of the ent.
	// Monotonically assigned summary identifier
	ID int64 `json:"id,omitempty"`
	// Student identifier from the operational store
	UserID string `json:"user_id,omitempty"`
	// TeacherID holds the value of the "teacher_id" field.
	TeacherID string `json:"teacher_id,omitempty"`
	// ClassID holds the value of the "class_id" field.
	ClassID string `json:"class_id,omitempty"`
	// TeacherEmail holds the value of the "teacher_email" field.
	TeacherEmail string `json:"teacher_email,omitempty"`
	// Lesson date, YYYY-MM-DD
	MeetingDate string `json:"meeting_date,omitempty"`
	// Lesson start, HH:MM
	StartTime string `json:"start_time,omitempty"`
	// Lesson end, HH:MM
	EndTime string `json:"end_time,omitempty"`
	// Raw transcript text; nullable until the external workflow writes it
	Transcript *string `json:"transcript,omitempty"`
	// TranscriptLength holds the value of the "transcript_length" field.
	TranscriptLength int `json:"transcript_length,omitempty"`
	// TranscriptSource holds the value of the "transcript_source" field.
	TranscriptSource transcriptartifact.TranscriptSource `json:"transcript_source,omitempty"`
	// Status holds the value of the "status" field.
	Status transcriptartifact.Status `json:"status,omitempty"`
	// ProcessingAttempts holds the value of the "processing_attempts" field.
	ProcessingAttempts int `json:"processing_attempts,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Lease stamp; null when unclaimed
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// Pod that holds the lease, for startup lease release
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// Set only when status reaches completed
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptArtifactQuery when eager-loading is set.
	Edges        TranscriptArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptArtifactEdges holds the relations/edges for other nodes in the graph.
type TranscriptArtifactEdges struct {
	// ExerciseSets holds the value of the exercise_sets edge.
	ExerciseSets []*ExerciseSet `json:"exercise_sets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExerciseSetsOrErr returns the ExerciseSets value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptArtifactEdges) ExerciseSetsOrErr() ([]*ExerciseSet, error) {
	if e.loadedTypes[0] {
		return e.ExerciseSets, nil
	}
	return nil, &NotLoadedError{edge: "exercise_sets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptartifact.FieldID, transcriptartifact.FieldTranscriptLength, transcriptartifact.FieldProcessingAttempts:
			values[i] = new(sql.NullInt64)
		case transcriptartifact.FieldUserID, transcriptartifact.FieldTeacherID, transcriptartifact.FieldClassID, transcriptartifact.FieldTeacherEmail, transcriptartifact.FieldMeetingDate, transcriptartifact.FieldStartTime, transcriptartifact.FieldEndTime, transcriptartifact.FieldTranscript, transcriptartifact.FieldTranscriptSource, transcriptartifact.FieldStatus, transcriptartifact.FieldLastError, transcriptartifact.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case transcriptartifact.FieldClaimedAt, transcriptartifact.FieldProcessedAt, transcriptartifact.FieldCreatedAt, transcriptartifact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptArtifact fields.
func (_m *TranscriptArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptartifact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case transcriptartifact.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case transcriptartifact.FieldTeacherID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_id", values[i])
			} else if value.Valid {
				_m.TeacherID = value.String
			}
		case transcriptartifact.FieldClassID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				_m.ClassID = value.String
			}
		case transcriptartifact.FieldTeacherEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_email", values[i])
			} else if value.Valid {
				_m.TeacherEmail = value.String
			}
		case transcriptartifact.FieldMeetingDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_date", values[i])
			} else if value.Valid {
				_m.MeetingDate = value.String
			}
		case transcriptartifact.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case transcriptartifact.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case transcriptartifact.FieldTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value.Valid {
				_m.Transcript = new(string)
				*_m.Transcript = value.String
			}
		case transcriptartifact.FieldTranscriptLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_length", values[i])
			} else if value.Valid {
				_m.TranscriptLength = int(value.Int64)
			}
		case transcriptartifact.FieldTranscriptSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_source", values[i])
			} else if value.Valid {
				_m.TranscriptSource = transcriptartifact.TranscriptSource(value.String)
			}
		case transcriptartifact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = transcriptartifact.Status(value.String)
			}
		case transcriptartifact.FieldProcessingAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_attempts", values[i])
			} else if value.Valid {
				_m.ProcessingAttempts = int(value.Int64)
			}
		case transcriptartifact.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case transcriptartifact.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case transcriptartifact.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case transcriptartifact.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case transcriptartifact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case transcriptartifact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExerciseSets queries the "exercise_sets" edge of the TranscriptArtifact entity.
func (_m *TranscriptArtifact) QueryExerciseSets() *ExerciseSetQuery {
	return NewTranscriptArtifactClient(_m.config).QueryExerciseSets(_m)
}

// Update returns a builder for updating this TranscriptArtifact.
// Note that you need to call TranscriptArtifact.Unwrap() before calling this method if this TranscriptArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptArtifact) Update() *TranscriptArtifactUpdateOne {
	return NewTranscriptArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptArtifact) Unwrap() *TranscriptArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("teacher_id=")
	builder.WriteString(_m.TeacherID)
	builder.WriteString(", ")
	builder.WriteString("class_id=")
	builder.WriteString(_m.ClassID)
	builder.WriteString(", ")
	builder.WriteString("teacher_email=")
	builder.WriteString(_m.TeacherEmail)
	builder.WriteString(", ")
	builder.WriteString("meeting_date=")
	builder.WriteString(_m.MeetingDate)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	if v := _m.Transcript; v != nil {
		builder.WriteString("transcript=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transcript_length=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptLength))
	builder.WriteString(", ")
	builder.WriteString("transcript_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptSource))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("processing_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingAttempts))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptArtifacts is a parsable slice of TranscriptArtifact.
type TranscriptArtifacts []*TranscriptArtifact
