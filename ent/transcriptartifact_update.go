// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/predicate"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// TranscriptArtifactUpdate is the builder for updating TranscriptArtifact entities.
type TranscriptArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptArtifactMutation
}

// Where appends a list predicates to the TranscriptArtifactUpdate builder.
func (_u *TranscriptArtifactUpdate) Where(ps ...predicate.TranscriptArtifact) *TranscriptArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TranscriptArtifactUpdate) SetUserID(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableUserID(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *TranscriptArtifactUpdate) SetTeacherID(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableTeacherID(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *TranscriptArtifactUpdate) SetClassID(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableClassID(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetTeacherEmail sets the "teacher_email" field.
func (_u *TranscriptArtifactUpdate) SetTeacherEmail(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetTeacherEmail(v)
	return _u
}

// SetNillableTeacherEmail sets the "teacher_email" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableTeacherEmail(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetTeacherEmail(*v)
	}
	return _u
}

// ClearTeacherEmail clears the value of the "teacher_email" field.
func (_u *TranscriptArtifactUpdate) ClearTeacherEmail() *TranscriptArtifactUpdate {
	_u.mutation.ClearTeacherEmail()
	return _u
}

// SetMeetingDate sets the "meeting_date" field.
func (_u *TranscriptArtifactUpdate) SetMeetingDate(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetMeetingDate(v)
	return _u
}

// SetNillableMeetingDate sets the "meeting_date" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableMeetingDate(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetMeetingDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TranscriptArtifactUpdate) SetStartTime(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableStartTime(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TranscriptArtifactUpdate) SetEndTime(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableEndTime(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TranscriptArtifactUpdate) ClearEndTime() *TranscriptArtifactUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *TranscriptArtifactUpdate) SetTranscript(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableTranscript(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *TranscriptArtifactUpdate) ClearTranscript() *TranscriptArtifactUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetTranscriptLength sets the "transcript_length" field.
func (_u *TranscriptArtifactUpdate) SetTranscriptLength(v int) *TranscriptArtifactUpdate {
	_u.mutation.ResetTranscriptLength()
	_u.mutation.SetTranscriptLength(v)
	return _u
}

// SetNillableTranscriptLength sets the "transcript_length" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableTranscriptLength(v *int) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetTranscriptLength(*v)
	}
	return _u
}

// AddTranscriptLength adds value to the "transcript_length" field.
func (_u *TranscriptArtifactUpdate) AddTranscriptLength(v int) *TranscriptArtifactUpdate {
	_u.mutation.AddTranscriptLength(v)
	return _u
}

// SetTranscriptSource sets the "transcript_source" field.
func (_u *TranscriptArtifactUpdate) SetTranscriptSource(v transcriptartifact.TranscriptSource) *TranscriptArtifactUpdate {
	_u.mutation.SetTranscriptSource(v)
	return _u
}

// SetNillableTranscriptSource sets the "transcript_source" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableTranscriptSource(v *transcriptartifact.TranscriptSource) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetTranscriptSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranscriptArtifactUpdate) SetStatus(v transcriptartifact.Status) *TranscriptArtifactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableStatus(v *transcriptartifact.Status) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingAttempts sets the "processing_attempts" field.
func (_u *TranscriptArtifactUpdate) SetProcessingAttempts(v int) *TranscriptArtifactUpdate {
	_u.mutation.ResetProcessingAttempts()
	_u.mutation.SetProcessingAttempts(v)
	return _u
}

// SetNillableProcessingAttempts sets the "processing_attempts" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableProcessingAttempts(v *int) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetProcessingAttempts(*v)
	}
	return _u
}

// AddProcessingAttempts adds value to the "processing_attempts" field.
func (_u *TranscriptArtifactUpdate) AddProcessingAttempts(v int) *TranscriptArtifactUpdate {
	_u.mutation.AddProcessingAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TranscriptArtifactUpdate) SetLastError(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableLastError(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TranscriptArtifactUpdate) ClearLastError() *TranscriptArtifactUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TranscriptArtifactUpdate) SetClaimedAt(v time.Time) *TranscriptArtifactUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableClaimedAt(v *time.Time) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TranscriptArtifactUpdate) ClearClaimedAt() *TranscriptArtifactUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *TranscriptArtifactUpdate) SetClaimedBy(v string) *TranscriptArtifactUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableClaimedBy(v *string) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *TranscriptArtifactUpdate) ClearClaimedBy() *TranscriptArtifactUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *TranscriptArtifactUpdate) SetProcessedAt(v time.Time) *TranscriptArtifactUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *TranscriptArtifactUpdate) SetNillableProcessedAt(v *time.Time) *TranscriptArtifactUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *TranscriptArtifactUpdate) ClearProcessedAt() *TranscriptArtifactUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptArtifactUpdate) SetUpdatedAt(v time.Time) *TranscriptArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExerciseSetIDs adds the "exercise_sets" edge to the ExerciseSet entity by IDs.
func (_u *TranscriptArtifactUpdate) AddExerciseSetIDs(ids ...int64) *TranscriptArtifactUpdate {
	_u.mutation.AddExerciseSetIDs(ids...)
	return _u
}

// AddExerciseSets adds the "exercise_sets" edges to the ExerciseSet entity.
func (_u *TranscriptArtifactUpdate) AddExerciseSets(v ...*ExerciseSet) *TranscriptArtifactUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExerciseSetIDs(ids...)
}

// Mutation returns the TranscriptArtifactMutation object of the builder.
func (_u *TranscriptArtifactUpdate) Mutation() *TranscriptArtifactMutation {
	return _u.mutation
}

// ClearExerciseSets clears all "exercise_sets" edges to the ExerciseSet entity.
func (_u *TranscriptArtifactUpdate) ClearExerciseSets() *TranscriptArtifactUpdate {
	_u.mutation.ClearExerciseSets()
	return _u
}

// RemoveExerciseSetIDs removes the "exercise_sets" edge to ExerciseSet entities by IDs.
func (_u *TranscriptArtifactUpdate) RemoveExerciseSetIDs(ids ...int64) *TranscriptArtifactUpdate {
	_u.mutation.RemoveExerciseSetIDs(ids...)
	return _u
}

// RemoveExerciseSets removes "exercise_sets" edges to ExerciseSet entities.
func (_u *TranscriptArtifactUpdate) RemoveExerciseSets(v ...*ExerciseSet) *TranscriptArtifactUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExerciseSetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptArtifactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptArtifactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcriptartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptArtifactUpdate) check() error {
	if v, ok := _u.mutation.TranscriptSource(); ok {
		if err := transcriptartifact.TranscriptSourceValidator(v); err != nil {
			return &ValidationError{Name: "transcript_source", err: fmt.Errorf(`ent: validator failed for field "TranscriptArtifact.transcript_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transcriptartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TranscriptArtifact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptartifact.Table, transcriptartifact.Columns, sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(transcriptartifact.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(transcriptartifact.FieldTeacherID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(transcriptartifact.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherEmail(); ok {
		_spec.SetField(transcriptartifact.FieldTeacherEmail, field.TypeString, value)
	}
	if _u.mutation.TeacherEmailCleared() {
		_spec.ClearField(transcriptartifact.FieldTeacherEmail, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingDate(); ok {
		_spec.SetField(transcriptartifact.FieldMeetingDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(transcriptartifact.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(transcriptartifact.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(transcriptartifact.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(transcriptartifact.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(transcriptartifact.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptLength(); ok {
		_spec.SetField(transcriptartifact.FieldTranscriptLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptLength(); ok {
		_spec.AddField(transcriptartifact.FieldTranscriptLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranscriptSource(); ok {
		_spec.SetField(transcriptartifact.FieldTranscriptSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transcriptartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingAttempts(); ok {
		_spec.SetField(transcriptartifact.FieldProcessingAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingAttempts(); ok {
		_spec.AddField(transcriptartifact.FieldProcessingAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(transcriptartifact.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(transcriptartifact.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(transcriptartifact.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(transcriptartifact.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(transcriptartifact.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(transcriptartifact.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(transcriptartifact.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(transcriptartifact.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcriptartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExerciseSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptartifact.ExerciseSetsTable,
			Columns: []string{transcriptartifact.ExerciseSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExerciseSetsIDs(); len(nodes) > 0 && !_u.mutation.ExerciseSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptartifact.ExerciseSetsTable,
			Columns: []string{transcriptartifact.ExerciseSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExerciseSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptartifact.ExerciseSetsTable,
			Columns: []string{transcriptartifact.ExerciseSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptArtifactUpdateOne is the builder for updating a single TranscriptArtifact entity.
type TranscriptArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptArtifactMutation
}

// SetUserID sets the "user_id" field.
func (_u *TranscriptArtifactUpdateOne) SetUserID(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableUserID(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *TranscriptArtifactUpdateOne) SetTeacherID(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableTeacherID(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *TranscriptArtifactUpdateOne) SetClassID(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableClassID(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetTeacherEmail sets the "teacher_email" field.
func (_u *TranscriptArtifactUpdateOne) SetTeacherEmail(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetTeacherEmail(v)
	return _u
}

// SetNillableTeacherEmail sets the "teacher_email" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableTeacherEmail(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetTeacherEmail(*v)
	}
	return _u
}

// ClearTeacherEmail clears the value of the "teacher_email" field.
func (_u *TranscriptArtifactUpdateOne) ClearTeacherEmail() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearTeacherEmail()
	return _u
}

// SetMeetingDate sets the "meeting_date" field.
func (_u *TranscriptArtifactUpdateOne) SetMeetingDate(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetMeetingDate(v)
	return _u
}

// SetNillableMeetingDate sets the "meeting_date" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableMeetingDate(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetMeetingDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TranscriptArtifactUpdateOne) SetStartTime(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableStartTime(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TranscriptArtifactUpdateOne) SetEndTime(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableEndTime(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TranscriptArtifactUpdateOne) ClearEndTime() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *TranscriptArtifactUpdateOne) SetTranscript(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableTranscript(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *TranscriptArtifactUpdateOne) ClearTranscript() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetTranscriptLength sets the "transcript_length" field.
func (_u *TranscriptArtifactUpdateOne) SetTranscriptLength(v int) *TranscriptArtifactUpdateOne {
	_u.mutation.ResetTranscriptLength()
	_u.mutation.SetTranscriptLength(v)
	return _u
}

// SetNillableTranscriptLength sets the "transcript_length" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableTranscriptLength(v *int) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetTranscriptLength(*v)
	}
	return _u
}

// AddTranscriptLength adds value to the "transcript_length" field.
func (_u *TranscriptArtifactUpdateOne) AddTranscriptLength(v int) *TranscriptArtifactUpdateOne {
	_u.mutation.AddTranscriptLength(v)
	return _u
}

// SetTranscriptSource sets the "transcript_source" field.
func (_u *TranscriptArtifactUpdateOne) SetTranscriptSource(v transcriptartifact.TranscriptSource) *TranscriptArtifactUpdateOne {
	_u.mutation.SetTranscriptSource(v)
	return _u
}

// SetNillableTranscriptSource sets the "transcript_source" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableTranscriptSource(v *transcriptartifact.TranscriptSource) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetTranscriptSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranscriptArtifactUpdateOne) SetStatus(v transcriptartifact.Status) *TranscriptArtifactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableStatus(v *transcriptartifact.Status) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingAttempts sets the "processing_attempts" field.
func (_u *TranscriptArtifactUpdateOne) SetProcessingAttempts(v int) *TranscriptArtifactUpdateOne {
	_u.mutation.ResetProcessingAttempts()
	_u.mutation.SetProcessingAttempts(v)
	return _u
}

// SetNillableProcessingAttempts sets the "processing_attempts" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableProcessingAttempts(v *int) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetProcessingAttempts(*v)
	}
	return _u
}

// AddProcessingAttempts adds value to the "processing_attempts" field.
func (_u *TranscriptArtifactUpdateOne) AddProcessingAttempts(v int) *TranscriptArtifactUpdateOne {
	_u.mutation.AddProcessingAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TranscriptArtifactUpdateOne) SetLastError(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableLastError(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TranscriptArtifactUpdateOne) ClearLastError() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *TranscriptArtifactUpdateOne) SetClaimedAt(v time.Time) *TranscriptArtifactUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableClaimedAt(v *time.Time) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *TranscriptArtifactUpdateOne) ClearClaimedAt() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *TranscriptArtifactUpdateOne) SetClaimedBy(v string) *TranscriptArtifactUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableClaimedBy(v *string) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *TranscriptArtifactUpdateOne) ClearClaimedBy() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *TranscriptArtifactUpdateOne) SetProcessedAt(v time.Time) *TranscriptArtifactUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *TranscriptArtifactUpdateOne) SetNillableProcessedAt(v *time.Time) *TranscriptArtifactUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *TranscriptArtifactUpdateOne) ClearProcessedAt() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptArtifactUpdateOne) SetUpdatedAt(v time.Time) *TranscriptArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExerciseSetIDs adds the "exercise_sets" edge to the ExerciseSet entity by IDs.
func (_u *TranscriptArtifactUpdateOne) AddExerciseSetIDs(ids ...int64) *TranscriptArtifactUpdateOne {
	_u.mutation.AddExerciseSetIDs(ids...)
	return _u
}

// AddExerciseSets adds the "exercise_sets" edges to the ExerciseSet entity.
func (_u *TranscriptArtifactUpdateOne) AddExerciseSets(v ...*ExerciseSet) *TranscriptArtifactUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExerciseSetIDs(ids...)
}

// Mutation returns the TranscriptArtifactMutation object of the builder.
func (_u *TranscriptArtifactUpdateOne) Mutation() *TranscriptArtifactMutation {
	return _u.mutation
}

// ClearExerciseSets clears all "exercise_sets" edges to the ExerciseSet entity.
func (_u *TranscriptArtifactUpdateOne) ClearExerciseSets() *TranscriptArtifactUpdateOne {
	_u.mutation.ClearExerciseSets()
	return _u
}

// RemoveExerciseSetIDs removes the "exercise_sets" edge to ExerciseSet entities by IDs.
func (_u *TranscriptArtifactUpdateOne) RemoveExerciseSetIDs(ids ...int64) *TranscriptArtifactUpdateOne {
	_u.mutation.RemoveExerciseSetIDs(ids...)
	return _u
}

// RemoveExerciseSets removes "exercise_sets" edges to ExerciseSet entities.
func (_u *TranscriptArtifactUpdateOne) RemoveExerciseSets(v ...*ExerciseSet) *TranscriptArtifactUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExerciseSetIDs(ids...)
}

// Where appends a list predicates to the TranscriptArtifactUpdate builder.
func (_u *TranscriptArtifactUpdateOne) Where(ps ...predicate.TranscriptArtifact) *TranscriptArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptArtifactUpdateOne) Select(field string, fields ...string) *TranscriptArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptArtifact entity.
func (_u *TranscriptArtifactUpdateOne) Save(ctx context.Context) (*TranscriptArtifact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptArtifactUpdateOne) SaveX(ctx context.Context) *TranscriptArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptArtifactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcriptartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.TranscriptSource(); ok {
		if err := transcriptartifact.TranscriptSourceValidator(v); err != nil {
			return &ValidationError{Name: "transcript_source", err: fmt.Errorf(`ent: validator failed for field "TranscriptArtifact.transcript_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transcriptartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TranscriptArtifact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptArtifactUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptartifact.Table, transcriptartifact.Columns, sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptartifact.FieldID)
		for _, f := range fields {
			if !transcriptartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptartifact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(transcriptartifact.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(transcriptartifact.FieldTeacherID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(transcriptartifact.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherEmail(); ok {
		_spec.SetField(transcriptartifact.FieldTeacherEmail, field.TypeString, value)
	}
	if _u.mutation.TeacherEmailCleared() {
		_spec.ClearField(transcriptartifact.FieldTeacherEmail, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingDate(); ok {
		_spec.SetField(transcriptartifact.FieldMeetingDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(transcriptartifact.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(transcriptartifact.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(transcriptartifact.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(transcriptartifact.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(transcriptartifact.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptLength(); ok {
		_spec.SetField(transcriptartifact.FieldTranscriptLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptLength(); ok {
		_spec.AddField(transcriptartifact.FieldTranscriptLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranscriptSource(); ok {
		_spec.SetField(transcriptartifact.FieldTranscriptSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transcriptartifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingAttempts(); ok {
		_spec.SetField(transcriptartifact.FieldProcessingAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingAttempts(); ok {
		_spec.AddField(transcriptartifact.FieldProcessingAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(transcriptartifact.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(transcriptartifact.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(transcriptartifact.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(transcriptartifact.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(transcriptartifact.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(transcriptartifact.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(transcriptartifact.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(transcriptartifact.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcriptartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExerciseSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptartifact.ExerciseSetsTable,
			Columns: []string{transcriptartifact.ExerciseSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExerciseSetsIDs(); len(nodes) > 0 && !_u.mutation.ExerciseSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptartifact.ExerciseSetsTable,
			Columns: []string{transcriptartifact.ExerciseSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExerciseSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptartifact.ExerciseSetsTable,
			Columns: []string{transcriptartifact.ExerciseSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TranscriptArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
