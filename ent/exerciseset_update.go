// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/predicate"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/models"
)

// ExerciseSetUpdate is the builder for updating ExerciseSet entities.
type ExerciseSetUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseSetMutation
}

// Where appends a list predicates to the ExerciseSetUpdate builder.
func (_u *ExerciseSetUpdate) Where(ps ...predicate.ExerciseSet) *ExerciseSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummaryID sets the "summary_id" field.
func (_u *ExerciseSetUpdate) SetSummaryID(v int64) *ExerciseSetUpdate {
	_u.mutation.SetSummaryID(v)
	return _u
}

// SetNillableSummaryID sets the "summary_id" field if the given value is not nil.
func (_u *ExerciseSetUpdate) SetNillableSummaryID(v *int64) *ExerciseSetUpdate {
	if v != nil {
		_u.SetSummaryID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExerciseSetUpdate) SetUserID(v string) *ExerciseSetUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExerciseSetUpdate) SetNillableUserID(v *string) *ExerciseSetUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *ExerciseSetUpdate) SetTeacherID(v string) *ExerciseSetUpdate {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *ExerciseSetUpdate) SetNillableTeacherID(v *string) *ExerciseSetUpdate {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *ExerciseSetUpdate) SetClassID(v string) *ExerciseSetUpdate {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *ExerciseSetUpdate) SetNillableClassID(v *string) *ExerciseSetUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *ExerciseSetUpdate) SetExercises(v *models.ExerciseDocument) *ExerciseSetUpdate {
	_u.mutation.SetExercises(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExerciseSetUpdate) SetStatus(v exerciseset.Status) *ExerciseSetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExerciseSetUpdate) SetNillableStatus(v *exerciseset.Status) *ExerciseSetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact" edge to the TranscriptArtifact entity by ID.
func (_u *ExerciseSetUpdate) SetArtifactID(id int64) *ExerciseSetUpdate {
	_u.mutation.SetArtifactID(id)
	return _u
}

// SetArtifact sets the "artifact" edge to the TranscriptArtifact entity.
func (_u *ExerciseSetUpdate) SetArtifact(v *TranscriptArtifact) *ExerciseSetUpdate {
	return _u.SetArtifactID(v.ID)
}

// Mutation returns the ExerciseSetMutation object of the builder.
func (_u *ExerciseSetUpdate) Mutation() *ExerciseSetMutation {
	return _u.mutation
}

// ClearArtifact clears the "artifact" edge to the TranscriptArtifact entity.
func (_u *ExerciseSetUpdate) ClearArtifact() *ExerciseSetUpdate {
	_u.mutation.ClearArtifact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseSetUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := exerciseset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExerciseSet.status": %w`, err)}
		}
	}
	if _u.mutation.ArtifactCleared() && len(_u.mutation.ArtifactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExerciseSet.artifact"`)
	}
	return nil
}

func (_u *ExerciseSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exerciseset.Table, exerciseset.Columns, sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exerciseset.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(exerciseset.FieldTeacherID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(exerciseset.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(exerciseset.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exerciseset.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ArtifactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exerciseset.ArtifactTable,
			Columns: []string{exerciseset.ArtifactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exerciseset.ArtifactTable,
			Columns: []string{exerciseset.ArtifactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseSetUpdateOne is the builder for updating a single ExerciseSet entity.
type ExerciseSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseSetMutation
}

// SetSummaryID sets the "summary_id" field.
func (_u *ExerciseSetUpdateOne) SetSummaryID(v int64) *ExerciseSetUpdateOne {
	_u.mutation.SetSummaryID(v)
	return _u
}

// SetNillableSummaryID sets the "summary_id" field if the given value is not nil.
func (_u *ExerciseSetUpdateOne) SetNillableSummaryID(v *int64) *ExerciseSetUpdateOne {
	if v != nil {
		_u.SetSummaryID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExerciseSetUpdateOne) SetUserID(v string) *ExerciseSetUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExerciseSetUpdateOne) SetNillableUserID(v *string) *ExerciseSetUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *ExerciseSetUpdateOne) SetTeacherID(v string) *ExerciseSetUpdateOne {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *ExerciseSetUpdateOne) SetNillableTeacherID(v *string) *ExerciseSetUpdateOne {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *ExerciseSetUpdateOne) SetClassID(v string) *ExerciseSetUpdateOne {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *ExerciseSetUpdateOne) SetNillableClassID(v *string) *ExerciseSetUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *ExerciseSetUpdateOne) SetExercises(v *models.ExerciseDocument) *ExerciseSetUpdateOne {
	_u.mutation.SetExercises(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExerciseSetUpdateOne) SetStatus(v exerciseset.Status) *ExerciseSetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExerciseSetUpdateOne) SetNillableStatus(v *exerciseset.Status) *ExerciseSetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact" edge to the TranscriptArtifact entity by ID.
func (_u *ExerciseSetUpdateOne) SetArtifactID(id int64) *ExerciseSetUpdateOne {
	_u.mutation.SetArtifactID(id)
	return _u
}

// SetArtifact sets the "artifact" edge to the TranscriptArtifact entity.
func (_u *ExerciseSetUpdateOne) SetArtifact(v *TranscriptArtifact) *ExerciseSetUpdateOne {
	return _u.SetArtifactID(v.ID)
}

// Mutation returns the ExerciseSetMutation object of the builder.
func (_u *ExerciseSetUpdateOne) Mutation() *ExerciseSetMutation {
	return _u.mutation
}

// ClearArtifact clears the "artifact" edge to the TranscriptArtifact entity.
func (_u *ExerciseSetUpdateOne) ClearArtifact() *ExerciseSetUpdateOne {
	_u.mutation.ClearArtifact()
	return _u
}

// Where appends a list predicates to the ExerciseSetUpdate builder.
func (_u *ExerciseSetUpdateOne) Where(ps ...predicate.ExerciseSet) *ExerciseSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseSetUpdateOne) Select(field string, fields ...string) *ExerciseSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExerciseSet entity.
func (_u *ExerciseSetUpdateOne) Save(ctx context.Context) (*ExerciseSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseSetUpdateOne) SaveX(ctx context.Context) *ExerciseSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseSetUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := exerciseset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExerciseSet.status": %w`, err)}
		}
	}
	if _u.mutation.ArtifactCleared() && len(_u.mutation.ArtifactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExerciseSet.artifact"`)
	}
	return nil
}

func (_u *ExerciseSetUpdateOne) sqlSave(ctx context.Context) (_node *ExerciseSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exerciseset.Table, exerciseset.Columns, sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExerciseSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exerciseset.FieldID)
		for _, f := range fields {
			if !exerciseset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exerciseset.FieldID {
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
		_spec.SetField(exerciseset.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(exerciseset.FieldTeacherID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(exerciseset.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(exerciseset.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exerciseset.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ArtifactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exerciseset.ArtifactTable,
			Columns: []string{exerciseset.ArtifactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exerciseset.ArtifactTable,
			Columns: []string{exerciseset.ArtifactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExerciseSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
