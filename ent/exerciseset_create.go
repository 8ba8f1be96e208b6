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
	"github.com/tulkka/lessonflow/pkg/models"
)

// ExerciseSetCreate is the builder for creating a ExerciseSet entity.
type ExerciseSetCreate struct {
	config
	mutation *ExerciseSetMutation
	hooks    []Hook
}

// SetSummaryID sets the "summary_id" field.
func (_c *ExerciseSetCreate) SetSummaryID(v int64) *ExerciseSetCreate {
	_c.mutation.SetSummaryID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExerciseSetCreate) SetUserID(v string) *ExerciseSetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTeacherID sets the "teacher_id" field.
func (_c *ExerciseSetCreate) SetTeacherID(v string) *ExerciseSetCreate {
	_c.mutation.SetTeacherID(v)
	return _c
}

// SetClassID sets the "class_id" field.
func (_c *ExerciseSetCreate) SetClassID(v string) *ExerciseSetCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *ExerciseSetCreate) SetGeneratedAt(v time.Time) *ExerciseSetCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *ExerciseSetCreate) SetNillableGeneratedAt(v *time.Time) *ExerciseSetCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetExercises sets the "exercises" field.
func (_c *ExerciseSetCreate) SetExercises(v *models.ExerciseDocument) *ExerciseSetCreate {
	_c.mutation.SetExercises(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExerciseSetCreate) SetStatus(v exerciseset.Status) *ExerciseSetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExerciseSetCreate) SetNillableStatus(v *exerciseset.Status) *ExerciseSetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExerciseSetCreate) SetID(v int64) *ExerciseSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArtifactID sets the "artifact" edge to the TranscriptArtifact entity by ID.
func (_c *ExerciseSetCreate) SetArtifactID(id int64) *ExerciseSetCreate {
	_c.mutation.SetArtifactID(id)
	return _c
}

// SetArtifact sets the "artifact" edge to the TranscriptArtifact entity.
func (_c *ExerciseSetCreate) SetArtifact(v *TranscriptArtifact) *ExerciseSetCreate {
	return _c.SetArtifactID(v.ID)
}

// Mutation returns the ExerciseSetMutation object of the builder.
func (_c *ExerciseSetCreate) Mutation() *ExerciseSetMutation {
	return _c.mutation
}

// Save creates the ExerciseSet in the database.
func (_c *ExerciseSetCreate) Save(ctx context.Context) (*ExerciseSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseSetCreate) SaveX(ctx context.Context) *ExerciseSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseSetCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := exerciseset.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := exerciseset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseSetCreate) check() error {
	if _, ok := _c.mutation.SummaryID(); !ok {
		return &ValidationError{Name: "summary_id", err: errors.New(`ent: missing required field "ExerciseSet.summary_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExerciseSet.user_id"`)}
	}
	if _, ok := _c.mutation.TeacherID(); !ok {
		return &ValidationError{Name: "teacher_id", err: errors.New(`ent: missing required field "ExerciseSet.teacher_id"`)}
	}
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "ExerciseSet.class_id"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "ExerciseSet.generated_at"`)}
	}
	if _, ok := _c.mutation.Exercises(); !ok {
		return &ValidationError{Name: "exercises", err: errors.New(`ent: missing required field "ExerciseSet.exercises"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExerciseSet.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := exerciseset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExerciseSet.status": %w`, err)}
		}
	}
	if len(_c.mutation.ArtifactIDs()) == 0 {
		return &ValidationError{Name: "artifact", err: errors.New(`ent: missing required edge "ExerciseSet.artifact"`)}
	}
	return nil
}

func (_c *ExerciseSetCreate) sqlSave(ctx context.Context) (*ExerciseSet, error) {
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

func (_c *ExerciseSetCreate) createSpec() (*ExerciseSet, *sqlgraph.CreateSpec) {
	var (
		_node = &ExerciseSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exerciseset.Table, sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exerciseset.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TeacherID(); ok {
		_spec.SetField(exerciseset.FieldTeacherID, field.TypeString, value)
		_node.TeacherID = value
	}
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(exerciseset.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(exerciseset.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.Exercises(); ok {
		_spec.SetField(exerciseset.FieldExercises, field.TypeJSON, value)
		_node.Exercises = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(exerciseset.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.ArtifactIDs(); len(nodes) > 0 {
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
		_node.SummaryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExerciseSetCreateBulk is the builder for creating many ExerciseSet entities in bulk.
type ExerciseSetCreateBulk struct {
	config
	err      error
	builders []*ExerciseSetCreate
}

// Save creates the ExerciseSet entities in the database.
func (_c *ExerciseSetCreateBulk) Save(ctx context.Context) ([]*ExerciseSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExerciseSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseSetMutation)
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
func (_c *ExerciseSetCreateBulk) SaveX(ctx context.Context) []*ExerciseSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
