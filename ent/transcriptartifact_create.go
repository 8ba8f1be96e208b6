// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// TranscriptArtifactCreate is the builder for creating a TranscriptArtifact entity.
type TranscriptArtifactCreate struct {
	config
	mutation *TranscriptArtifactMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TranscriptArtifactCreate) SetUserID(v string) *TranscriptArtifactCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTeacherID sets the "teacher_id" field.
func (_c *TranscriptArtifactCreate) SetTeacherID(v string) *TranscriptArtifactCreate {
	_c.mutation.SetTeacherID(v)
	return _c
}

// SetClassID sets the "class_id" field.
func (_c *TranscriptArtifactCreate) SetClassID(v string) *TranscriptArtifactCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetTeacherEmail sets the "teacher_email" field.
func (_c *TranscriptArtifactCreate) SetTeacherEmail(v string) *TranscriptArtifactCreate {
	_c.mutation.SetTeacherEmail(v)
	return _c
}

// SetNillableTeacherEmail sets the "teacher_email" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableTeacherEmail(v *string) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetTeacherEmail(*v)
	}
	return _c
}

// SetMeetingDate sets the "meeting_date" field.
func (_c *TranscriptArtifactCreate) SetMeetingDate(v string) *TranscriptArtifactCreate {
	_c.mutation.SetMeetingDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TranscriptArtifactCreate) SetStartTime(v string) *TranscriptArtifactCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TranscriptArtifactCreate) SetEndTime(v string) *TranscriptArtifactCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableEndTime(v *string) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *TranscriptArtifactCreate) SetTranscript(v string) *TranscriptArtifactCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableTranscript(v *string) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetTranscriptLength sets the "transcript_length" field.
func (_c *TranscriptArtifactCreate) SetTranscriptLength(v int) *TranscriptArtifactCreate {
	_c.mutation.SetTranscriptLength(v)
	return _c
}

// SetNillableTranscriptLength sets the "transcript_length" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableTranscriptLength(v *int) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetTranscriptLength(*v)
	}
	return _c
}

// SetTranscriptSource sets the "transcript_source" field.
func (_c *TranscriptArtifactCreate) SetTranscriptSource(v transcriptartifact.TranscriptSource) *TranscriptArtifactCreate {
	_c.mutation.SetTranscriptSource(v)
	return _c
}

// SetNillableTranscriptSource sets the "transcript_source" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableTranscriptSource(v *transcriptartifact.TranscriptSource) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetTranscriptSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TranscriptArtifactCreate) SetStatus(v transcriptartifact.Status) *TranscriptArtifactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableStatus(v *transcriptartifact.Status) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingAttempts sets the "processing_attempts" field.
func (_c *TranscriptArtifactCreate) SetProcessingAttempts(v int) *TranscriptArtifactCreate {
	_c.mutation.SetProcessingAttempts(v)
	return _c
}

// SetNillableProcessingAttempts sets the "processing_attempts" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableProcessingAttempts(v *int) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetProcessingAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TranscriptArtifactCreate) SetLastError(v string) *TranscriptArtifactCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableLastError(v *string) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *TranscriptArtifactCreate) SetClaimedAt(v time.Time) *TranscriptArtifactCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableClaimedAt(v *time.Time) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *TranscriptArtifactCreate) SetClaimedBy(v string) *TranscriptArtifactCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableClaimedBy(v *string) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *TranscriptArtifactCreate) SetProcessedAt(v time.Time) *TranscriptArtifactCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableProcessedAt(v *time.Time) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptArtifactCreate) SetCreatedAt(v time.Time) *TranscriptArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableCreatedAt(v *time.Time) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TranscriptArtifactCreate) SetUpdatedAt(v time.Time) *TranscriptArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TranscriptArtifactCreate) SetNillableUpdatedAt(v *time.Time) *TranscriptArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptArtifactCreate) SetID(v int64) *TranscriptArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExerciseSetIDs adds the "exercise_sets" edge to the ExerciseSet entity by IDs.
func (_c *TranscriptArtifactCreate) AddExerciseSetIDs(ids ...int64) *TranscriptArtifactCreate {
	_c.mutation.AddExerciseSetIDs(ids...)
	return _c
}

// AddExerciseSets adds the "exercise_sets" edges to the ExerciseSet entity.
func (_c *TranscriptArtifactCreate) AddExerciseSets(v ...*ExerciseSet) *TranscriptArtifactCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExerciseSetIDs(ids...)
}

// Mutation returns the TranscriptArtifactMutation object of the builder.
func (_c *TranscriptArtifactCreate) Mutation() *TranscriptArtifactMutation {
	return _c.mutation
}

// Save creates the TranscriptArtifact in the database.
func (_c *TranscriptArtifactCreate) Save(ctx context.Context) (*TranscriptArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptArtifactCreate) SaveX(ctx context.Context) *TranscriptArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptArtifactCreate) defaults() {
	if _, ok := _c.mutation.TranscriptLength(); !ok {
		v := transcriptartifact.DefaultTranscriptLength
		_c.mutation.SetTranscriptLength(v)
	}
	if _, ok := _c.mutation.TranscriptSource(); !ok {
		v := transcriptartifact.DefaultTranscriptSource
		_c.mutation.SetTranscriptSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := transcriptartifact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessingAttempts(); !ok {
		v := transcriptartifact.DefaultProcessingAttempts
		_c.mutation.SetProcessingAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcriptartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transcriptartifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptArtifactCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TranscriptArtifact.user_id"`)}
	}
	if _, ok := _c.mutation.TeacherID(); !ok {
		return &ValidationError{Name: "teacher_id", err: errors.New(`ent: missing required field "TranscriptArtifact.teacher_id"`)}
	}
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "TranscriptArtifact.class_id"`)}
	}
	if _, ok := _c.mutation.MeetingDate(); !ok {
		return &ValidationError{Name: "meeting_date", err: errors.New(`ent: missing required field "TranscriptArtifact.meeting_date"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "TranscriptArtifact.start_time"`)}
	}
	if _, ok := _c.mutation.TranscriptLength(); !ok {
		return &ValidationError{Name: "transcript_length", err: errors.New(`ent: missing required field "TranscriptArtifact.transcript_length"`)}
	}
	if _, ok := _c.mutation.TranscriptSource(); !ok {
		return &ValidationError{Name: "transcript_source", err: errors.New(`ent: missing required field "TranscriptArtifact.transcript_source"`)}
	}
	if v, ok := _c.mutation.TranscriptSource(); ok {
		if err := transcriptartifact.TranscriptSourceValidator(v); err != nil {
			return &ValidationError{Name: "transcript_source", err: fmt.Errorf(`ent: validator failed for field "TranscriptArtifact.transcript_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TranscriptArtifact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := transcriptartifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TranscriptArtifact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingAttempts(); !ok {
		return &ValidationError{Name: "processing_attempts", err: errors.New(`ent: missing required field "TranscriptArtifact.processing_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranscriptArtifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TranscriptArtifact.updated_at"`)}
	}
	return nil
}

func (_c *TranscriptArtifactCreate) sqlSave(ctx context.Context) (*TranscriptArtifact, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptArtifactCreate) createSpec() (*TranscriptArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptartifact.Table, sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(transcriptartifact.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TeacherID(); ok {
		_spec.SetField(transcriptartifact.FieldTeacherID, field.TypeString, value)
		_node.TeacherID = value
	}
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(transcriptartifact.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.TeacherEmail(); ok {
		_spec.SetField(transcriptartifact.FieldTeacherEmail, field.TypeString, value)
		_node.TeacherEmail = value
	}
	if value, ok := _c.mutation.MeetingDate(); ok {
		_spec.SetField(transcriptartifact.FieldMeetingDate, field.TypeString, value)
		_node.MeetingDate = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(transcriptartifact.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(transcriptartifact.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(transcriptartifact.FieldTranscript, field.TypeString, value)
		_node.Transcript = &value
	}
	if value, ok := _c.mutation.TranscriptLength(); ok {
		_spec.SetField(transcriptartifact.FieldTranscriptLength, field.TypeInt, value)
		_node.TranscriptLength = value
	}
	if value, ok := _c.mutation.TranscriptSource(); ok {
		_spec.SetField(transcriptartifact.FieldTranscriptSource, field.TypeEnum, value)
		_node.TranscriptSource = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(transcriptartifact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessingAttempts(); ok {
		_spec.SetField(transcriptartifact.FieldProcessingAttempts, field.TypeInt, value)
		_node.ProcessingAttempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(transcriptartifact.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(transcriptartifact.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(transcriptartifact.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(transcriptartifact.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcriptartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transcriptartifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExerciseSetsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptArtifactCreateBulk is the builder for creating many TranscriptArtifact entities in bulk.
type TranscriptArtifactCreateBulk struct {
	config
	err      error
	builders []*TranscriptArtifactCreate
}

// Save creates the TranscriptArtifact entities in the database.
func (_c *TranscriptArtifactCreateBulk) Save(ctx context.Context) ([]*TranscriptArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptArtifactMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TranscriptArtifactCreateBulk) SaveX(ctx context.Context) []*TranscriptArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
