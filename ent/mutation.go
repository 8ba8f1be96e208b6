// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/predicate"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
	"github.com/tulkka/lessonflow/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExerciseSet        = "ExerciseSet"
	TypeTranscriptArtifact = "TranscriptArtifact"
)

// ExerciseSetMutation represents an operation that mutates the ExerciseSet nodes in the graph.
type ExerciseSetMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	user_id         *string
	teacher_id      *string
	class_id        *string
	generated_at    *time.Time
	exercises       **models.ExerciseDocument
	status          *exerciseset.Status
	clearedFields   map[string]struct{}
	artifact        *int64
	clearedartifact bool
	done            bool
	oldValue        func(context.Context) (*ExerciseSet, error)
	predicates      []predicate.ExerciseSet
}

var _ ent.Mutation = (*ExerciseSetMutation)(nil)

// exercisesetOption allows management of the mutation configuration using functional options.
type exercisesetOption func(*ExerciseSetMutation)

// newExerciseSetMutation creates new mutation for the ExerciseSet entity.
func newExerciseSetMutation(c config, op Op, opts ...exercisesetOption) *ExerciseSetMutation {
	m := &ExerciseSetMutation{
		config:        c,
		op:            op,
		typ:           TypeExerciseSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExerciseSetID sets the ID field of the mutation.
func withExerciseSetID(id int64) exercisesetOption {
	return func(m *ExerciseSetMutation) {
		var (
			err   error
			once  sync.Once
			value *ExerciseSet
		)
		m.oldValue = func(ctx context.Context) (*ExerciseSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExerciseSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExerciseSet sets the old ExerciseSet of the mutation.
func withExerciseSet(node *ExerciseSet) exercisesetOption {
	return func(m *ExerciseSetMutation) {
		m.oldValue = func(context.Context) (*ExerciseSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExerciseSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExerciseSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExerciseSet entities.
func (m *ExerciseSetMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExerciseSetMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExerciseSetMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExerciseSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSummaryID sets the "summary_id" field.
func (m *ExerciseSetMutation) SetSummaryID(i int64) {
	m.artifact = &i
}

// SummaryID returns the value of the "summary_id" field in the mutation.
func (m *ExerciseSetMutation) SummaryID() (r int64, exists bool) {
	v := m.artifact
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryID returns the old "summary_id" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldSummaryID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryID: %w", err)
	}
	return oldValue.SummaryID, nil
}

// ResetSummaryID resets all changes to the "summary_id" field.
func (m *ExerciseSetMutation) ResetSummaryID() {
	m.artifact = nil
}

// SetUserID sets the "user_id" field.
func (m *ExerciseSetMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExerciseSetMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExerciseSetMutation) ResetUserID() {
	m.user_id = nil
}

// SetTeacherID sets the "teacher_id" field.
func (m *ExerciseSetMutation) SetTeacherID(s string) {
	m.teacher_id = &s
}

// TeacherID returns the value of the "teacher_id" field in the mutation.
func (m *ExerciseSetMutation) TeacherID() (r string, exists bool) {
	v := m.teacher_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeacherID returns the old "teacher_id" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldTeacherID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeacherID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeacherID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeacherID: %w", err)
	}
	return oldValue.TeacherID, nil
}

// ResetTeacherID resets all changes to the "teacher_id" field.
func (m *ExerciseSetMutation) ResetTeacherID() {
	m.teacher_id = nil
}

// SetClassID sets the "class_id" field.
func (m *ExerciseSetMutation) SetClassID(s string) {
	m.class_id = &s
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *ExerciseSetMutation) ClassID() (r string, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldClassID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// ResetClassID resets all changes to the "class_id" field.
func (m *ExerciseSetMutation) ResetClassID() {
	m.class_id = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *ExerciseSetMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *ExerciseSetMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *ExerciseSetMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// SetExercises sets the "exercises" field.
func (m *ExerciseSetMutation) SetExercises(md *models.ExerciseDocument) {
	m.exercises = &md
}

// Exercises returns the value of the "exercises" field in the mutation.
func (m *ExerciseSetMutation) Exercises() (r *models.ExerciseDocument, exists bool) {
	v := m.exercises
	if v == nil {
		return
	}
	return *v, true
}

// OldExercises returns the old "exercises" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldExercises(ctx context.Context) (v *models.ExerciseDocument, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercises is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercises requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercises: %w", err)
	}
	return oldValue.Exercises, nil
}

// ResetExercises resets all changes to the "exercises" field.
func (m *ExerciseSetMutation) ResetExercises() {
	m.exercises = nil
}

// SetStatus sets the "status" field.
func (m *ExerciseSetMutation) SetStatus(e exerciseset.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExerciseSetMutation) Status() (r exerciseset.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExerciseSet entity.
// If the ExerciseSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseSetMutation) OldStatus(ctx context.Context) (v exerciseset.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExerciseSetMutation) ResetStatus() {
	m.status = nil
}

// SetArtifactID sets the "artifact" edge to the TranscriptArtifact entity by id.
func (m *ExerciseSetMutation) SetArtifactID(id int64) {
	m.artifact = &id
}

// ClearArtifact clears the "artifact" edge to the TranscriptArtifact entity.
func (m *ExerciseSetMutation) ClearArtifact() {
	m.clearedartifact = true
	m.clearedFields[exerciseset.FieldSummaryID] = struct{}{}
}

// ArtifactCleared reports if the "artifact" edge to the TranscriptArtifact entity was cleared.
func (m *ExerciseSetMutation) ArtifactCleared() bool {
	return m.clearedartifact
}

// ArtifactID returns the "artifact" edge ID in the mutation.
func (m *ExerciseSetMutation) ArtifactID() (id int64, exists bool) {
	if m.artifact != nil {
		return *m.artifact, true
	}
	return
}

// ArtifactIDs returns the "artifact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArtifactID instead. It exists only for internal usage by the builders.
func (m *ExerciseSetMutation) ArtifactIDs() (ids []int64) {
	if id := m.artifact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArtifact resets all changes to the "artifact" edge.
func (m *ExerciseSetMutation) ResetArtifact() {
	m.artifact = nil
	m.clearedartifact = false
}

// Where appends a list predicates to the ExerciseSetMutation builder.
func (m *ExerciseSetMutation) Where(ps ...predicate.ExerciseSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExerciseSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExerciseSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExerciseSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExerciseSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExerciseSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExerciseSet).
func (m *ExerciseSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExerciseSetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.artifact != nil {
		fields = append(fields, exerciseset.FieldSummaryID)
	}
	if m.user_id != nil {
		fields = append(fields, exerciseset.FieldUserID)
	}
	if m.teacher_id != nil {
		fields = append(fields, exerciseset.FieldTeacherID)
	}
	if m.class_id != nil {
		fields = append(fields, exerciseset.FieldClassID)
	}
	if m.generated_at != nil {
		fields = append(fields, exerciseset.FieldGeneratedAt)
	}
	if m.exercises != nil {
		fields = append(fields, exerciseset.FieldExercises)
	}
	if m.status != nil {
		fields = append(fields, exerciseset.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExerciseSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exerciseset.FieldSummaryID:
		return m.SummaryID()
	case exerciseset.FieldUserID:
		return m.UserID()
	case exerciseset.FieldTeacherID:
		return m.TeacherID()
	case exerciseset.FieldClassID:
		return m.ClassID()
	case exerciseset.FieldGeneratedAt:
		return m.GeneratedAt()
	case exerciseset.FieldExercises:
		return m.Exercises()
	case exerciseset.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExerciseSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exerciseset.FieldSummaryID:
		return m.OldSummaryID(ctx)
	case exerciseset.FieldUserID:
		return m.OldUserID(ctx)
	case exerciseset.FieldTeacherID:
		return m.OldTeacherID(ctx)
	case exerciseset.FieldClassID:
		return m.OldClassID(ctx)
	case exerciseset.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case exerciseset.FieldExercises:
		return m.OldExercises(ctx)
	case exerciseset.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown ExerciseSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exerciseset.FieldSummaryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryID(v)
		return nil
	case exerciseset.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case exerciseset.FieldTeacherID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeacherID(v)
		return nil
	case exerciseset.FieldClassID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case exerciseset.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case exerciseset.FieldExercises:
		v, ok := value.(*models.ExerciseDocument)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercises(v)
		return nil
	case exerciseset.FieldStatus:
		v, ok := value.(exerciseset.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExerciseSetMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExerciseSetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExerciseSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExerciseSetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExerciseSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExerciseSetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExerciseSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExerciseSetMutation) ResetField(name string) error {
	switch name {
	case exerciseset.FieldSummaryID:
		m.ResetSummaryID()
		return nil
	case exerciseset.FieldUserID:
		m.ResetUserID()
		return nil
	case exerciseset.FieldTeacherID:
		m.ResetTeacherID()
		return nil
	case exerciseset.FieldClassID:
		m.ResetClassID()
		return nil
	case exerciseset.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case exerciseset.FieldExercises:
		m.ResetExercises()
		return nil
	case exerciseset.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown ExerciseSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExerciseSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.artifact != nil {
		edges = append(edges, exerciseset.EdgeArtifact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExerciseSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case exerciseset.EdgeArtifact:
		if id := m.artifact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExerciseSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExerciseSetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExerciseSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedartifact {
		edges = append(edges, exerciseset.EdgeArtifact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExerciseSetMutation) EdgeCleared(name string) bool {
	switch name {
	case exerciseset.EdgeArtifact:
		return m.clearedartifact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExerciseSetMutation) ClearEdge(name string) error {
	switch name {
	case exerciseset.EdgeArtifact:
		m.ClearArtifact()
		return nil
	}
	return fmt.Errorf("unknown ExerciseSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExerciseSetMutation) ResetEdge(name string) error {
	switch name {
	case exerciseset.EdgeArtifact:
		m.ResetArtifact()
		return nil
	}
	return fmt.Errorf("unknown ExerciseSet edge %s", name)
}

// TranscriptArtifactMutation represents an operation that mutates the TranscriptArtifact nodes in the graph.
type TranscriptArtifactMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int64
	user_id                *string
	teacher_id             *string
	class_id               *string
	teacher_email          *string
	meeting_date           *string
	start_time             *string
	end_time               *string
	transcript             *string
	transcript_length      *int
	addtranscript_length   *int
	transcript_source      *transcriptartifact.TranscriptSource
	status                 *transcriptartifact.Status
	processing_attempts    *int
	addprocessing_attempts *int
	last_error             *string
	claimed_at             *time.Time
	claimed_by             *string
	processed_at           *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	exercise_sets          map[int64]struct{}
	removedexercise_sets   map[int64]struct{}
	clearedexercise_sets   bool
	done                   bool
	oldValue               func(context.Context) (*TranscriptArtifact, error)
	predicates             []predicate.TranscriptArtifact
}

var _ ent.Mutation = (*TranscriptArtifactMutation)(nil)

// transcriptartifactOption allows management of the mutation configuration using functional options.
type transcriptartifactOption func(*TranscriptArtifactMutation)

// newTranscriptArtifactMutation creates new mutation for the TranscriptArtifact entity.
func newTranscriptArtifactMutation(c config, op Op, opts ...transcriptartifactOption) *TranscriptArtifactMutation {
	m := &TranscriptArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptArtifactID sets the ID field of the mutation.
func withTranscriptArtifactID(id int64) transcriptartifactOption {
	return func(m *TranscriptArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptArtifact
		)
		m.oldValue = func(ctx context.Context) (*TranscriptArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptArtifact sets the old TranscriptArtifact of the mutation.
func withTranscriptArtifact(node *TranscriptArtifact) transcriptartifactOption {
	return func(m *TranscriptArtifactMutation) {
		m.oldValue = func(context.Context) (*TranscriptArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptArtifact entities.
func (m *TranscriptArtifactMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptArtifactMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptArtifactMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TranscriptArtifactMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TranscriptArtifactMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TranscriptArtifactMutation) ResetUserID() {
	m.user_id = nil
}

// SetTeacherID sets the "teacher_id" field.
func (m *TranscriptArtifactMutation) SetTeacherID(s string) {
	m.teacher_id = &s
}

// TeacherID returns the value of the "teacher_id" field in the mutation.
func (m *TranscriptArtifactMutation) TeacherID() (r string, exists bool) {
	v := m.teacher_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeacherID returns the old "teacher_id" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldTeacherID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeacherID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeacherID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeacherID: %w", err)
	}
	return oldValue.TeacherID, nil
}

// ResetTeacherID resets all changes to the "teacher_id" field.
func (m *TranscriptArtifactMutation) ResetTeacherID() {
	m.teacher_id = nil
}

// SetClassID sets the "class_id" field.
func (m *TranscriptArtifactMutation) SetClassID(s string) {
	m.class_id = &s
}

// ClassID returns the value of the "class_id" field in the mutation.
func (m *TranscriptArtifactMutation) ClassID() (r string, exists bool) {
	v := m.class_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClassID returns the old "class_id" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldClassID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassID: %w", err)
	}
	return oldValue.ClassID, nil
}

// ResetClassID resets all changes to the "class_id" field.
func (m *TranscriptArtifactMutation) ResetClassID() {
	m.class_id = nil
}

// SetTeacherEmail sets the "teacher_email" field.
func (m *TranscriptArtifactMutation) SetTeacherEmail(s string) {
	m.teacher_email = &s
}

// TeacherEmail returns the value of the "teacher_email" field in the mutation.
func (m *TranscriptArtifactMutation) TeacherEmail() (r string, exists bool) {
	v := m.teacher_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTeacherEmail returns the old "teacher_email" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldTeacherEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeacherEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeacherEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeacherEmail: %w", err)
	}
	return oldValue.TeacherEmail, nil
}

// ClearTeacherEmail clears the value of the "teacher_email" field.
func (m *TranscriptArtifactMutation) ClearTeacherEmail() {
	m.teacher_email = nil
	m.clearedFields[transcriptartifact.FieldTeacherEmail] = struct{}{}
}

// TeacherEmailCleared returns if the "teacher_email" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) TeacherEmailCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldTeacherEmail]
	return ok
}

// ResetTeacherEmail resets all changes to the "teacher_email" field.
func (m *TranscriptArtifactMutation) ResetTeacherEmail() {
	m.teacher_email = nil
	delete(m.clearedFields, transcriptartifact.FieldTeacherEmail)
}

// SetMeetingDate sets the "meeting_date" field.
func (m *TranscriptArtifactMutation) SetMeetingDate(s string) {
	m.meeting_date = &s
}

// MeetingDate returns the value of the "meeting_date" field in the mutation.
func (m *TranscriptArtifactMutation) MeetingDate() (r string, exists bool) {
	v := m.meeting_date
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingDate returns the old "meeting_date" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldMeetingDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingDate: %w", err)
	}
	return oldValue.MeetingDate, nil
}

// ResetMeetingDate resets all changes to the "meeting_date" field.
func (m *TranscriptArtifactMutation) ResetMeetingDate() {
	m.meeting_date = nil
}

// SetStartTime sets the "start_time" field.
func (m *TranscriptArtifactMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TranscriptArtifactMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TranscriptArtifactMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TranscriptArtifactMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TranscriptArtifactMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *TranscriptArtifactMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[transcriptartifact.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TranscriptArtifactMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, transcriptartifact.FieldEndTime)
}

// SetTranscript sets the "transcript" field.
func (m *TranscriptArtifactMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *TranscriptArtifactMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldTranscript(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ClearTranscript clears the value of the "transcript" field.
func (m *TranscriptArtifactMutation) ClearTranscript() {
	m.transcript = nil
	m.clearedFields[transcriptartifact.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *TranscriptArtifactMutation) ResetTranscript() {
	m.transcript = nil
	delete(m.clearedFields, transcriptartifact.FieldTranscript)
}

// SetTranscriptLength sets the "transcript_length" field.
func (m *TranscriptArtifactMutation) SetTranscriptLength(i int) {
	m.transcript_length = &i
	m.addtranscript_length = nil
}

// TranscriptLength returns the value of the "transcript_length" field in the mutation.
func (m *TranscriptArtifactMutation) TranscriptLength() (r int, exists bool) {
	v := m.transcript_length
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptLength returns the old "transcript_length" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldTranscriptLength(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptLength: %w", err)
	}
	return oldValue.TranscriptLength, nil
}

// AddTranscriptLength adds i to the "transcript_length" field.
func (m *TranscriptArtifactMutation) AddTranscriptLength(i int) {
	if m.addtranscript_length != nil {
		*m.addtranscript_length += i
	} else {
		m.addtranscript_length = &i
	}
}

// AddedTranscriptLength returns the value that was added to the "transcript_length" field in this mutation.
func (m *TranscriptArtifactMutation) AddedTranscriptLength() (r int, exists bool) {
	v := m.addtranscript_length
	if v == nil {
		return
	}
	return *v, true
}

// ResetTranscriptLength resets all changes to the "transcript_length" field.
func (m *TranscriptArtifactMutation) ResetTranscriptLength() {
	m.transcript_length = nil
	m.addtranscript_length = nil
}

// SetTranscriptSource sets the "transcript_source" field.
func (m *TranscriptArtifactMutation) SetTranscriptSource(ts transcriptartifact.TranscriptSource) {
	m.transcript_source = &ts
}

// TranscriptSource returns the value of the "transcript_source" field in the mutation.
func (m *TranscriptArtifactMutation) TranscriptSource() (r transcriptartifact.TranscriptSource, exists bool) {
	v := m.transcript_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptSource returns the old "transcript_source" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldTranscriptSource(ctx context.Context) (v transcriptartifact.TranscriptSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptSource: %w", err)
	}
	return oldValue.TranscriptSource, nil
}

// ResetTranscriptSource resets all changes to the "transcript_source" field.
func (m *TranscriptArtifactMutation) ResetTranscriptSource() {
	m.transcript_source = nil
}

// SetStatus sets the "status" field.
func (m *TranscriptArtifactMutation) SetStatus(t transcriptartifact.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TranscriptArtifactMutation) Status() (r transcriptartifact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldStatus(ctx context.Context) (v transcriptartifact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TranscriptArtifactMutation) ResetStatus() {
	m.status = nil
}

// SetProcessingAttempts sets the "processing_attempts" field.
func (m *TranscriptArtifactMutation) SetProcessingAttempts(i int) {
	m.processing_attempts = &i
	m.addprocessing_attempts = nil
}

// ProcessingAttempts returns the value of the "processing_attempts" field in the mutation.
func (m *TranscriptArtifactMutation) ProcessingAttempts() (r int, exists bool) {
	v := m.processing_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingAttempts returns the old "processing_attempts" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldProcessingAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingAttempts: %w", err)
	}
	return oldValue.ProcessingAttempts, nil
}

// AddProcessingAttempts adds i to the "processing_attempts" field.
func (m *TranscriptArtifactMutation) AddProcessingAttempts(i int) {
	if m.addprocessing_attempts != nil {
		*m.addprocessing_attempts += i
	} else {
		m.addprocessing_attempts = &i
	}
}

// AddedProcessingAttempts returns the value that was added to the "processing_attempts" field in this mutation.
func (m *TranscriptArtifactMutation) AddedProcessingAttempts() (r int, exists bool) {
	v := m.addprocessing_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingAttempts resets all changes to the "processing_attempts" field.
func (m *TranscriptArtifactMutation) ResetProcessingAttempts() {
	m.processing_attempts = nil
	m.addprocessing_attempts = nil
}

// SetLastError sets the "last_error" field.
func (m *TranscriptArtifactMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TranscriptArtifactMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TranscriptArtifactMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[transcriptartifact.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TranscriptArtifactMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, transcriptartifact.FieldLastError)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TranscriptArtifactMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TranscriptArtifactMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TranscriptArtifactMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[transcriptartifact.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TranscriptArtifactMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, transcriptartifact.FieldClaimedAt)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *TranscriptArtifactMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *TranscriptArtifactMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *TranscriptArtifactMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[transcriptartifact.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *TranscriptArtifactMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, transcriptartifact.FieldClaimedBy)
}

// SetProcessedAt sets the "processed_at" field.
func (m *TranscriptArtifactMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *TranscriptArtifactMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *TranscriptArtifactMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[transcriptartifact.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *TranscriptArtifactMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[transcriptartifact.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *TranscriptArtifactMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, transcriptartifact.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TranscriptArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TranscriptArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TranscriptArtifact entity.
// If the TranscriptArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TranscriptArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExerciseSetIDs adds the "exercise_sets" edge to the ExerciseSet entity by ids.
func (m *TranscriptArtifactMutation) AddExerciseSetIDs(ids ...int64) {
	if m.exercise_sets == nil {
		m.exercise_sets = make(map[int64]struct{})
	}
	for i := range ids {
		m.exercise_sets[ids[i]] = struct{}{}
	}
}

// ClearExerciseSets clears the "exercise_sets" edge to the ExerciseSet entity.
func (m *TranscriptArtifactMutation) ClearExerciseSets() {
	m.clearedexercise_sets = true
}

// ExerciseSetsCleared reports if the "exercise_sets" edge to the ExerciseSet entity was cleared.
func (m *TranscriptArtifactMutation) ExerciseSetsCleared() bool {
	return m.clearedexercise_sets
}

// RemoveExerciseSetIDs removes the "exercise_sets" edge to the ExerciseSet entity by IDs.
func (m *TranscriptArtifactMutation) RemoveExerciseSetIDs(ids ...int64) {
	if m.removedexercise_sets == nil {
		m.removedexercise_sets = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.exercise_sets, ids[i])
		m.removedexercise_sets[ids[i]] = struct{}{}
	}
}

// RemovedExerciseSets returns the removed IDs of the "exercise_sets" edge to the ExerciseSet entity.
func (m *TranscriptArtifactMutation) RemovedExerciseSetsIDs() (ids []int64) {
	for id := range m.removedexercise_sets {
		ids = append(ids, id)
	}
	return
}

// ExerciseSetsIDs returns the "exercise_sets" edge IDs in the mutation.
func (m *TranscriptArtifactMutation) ExerciseSetsIDs() (ids []int64) {
	for id := range m.exercise_sets {
		ids = append(ids, id)
	}
	return
}

// ResetExerciseSets resets all changes to the "exercise_sets" edge.
func (m *TranscriptArtifactMutation) ResetExerciseSets() {
	m.exercise_sets = nil
	m.clearedexercise_sets = false
	m.removedexercise_sets = nil
}

// Where appends a list predicates to the TranscriptArtifactMutation builder.
func (m *TranscriptArtifactMutation) Where(ps ...predicate.TranscriptArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptArtifact).
func (m *TranscriptArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptArtifactMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.user_id != nil {
		fields = append(fields, transcriptartifact.FieldUserID)
	}
	if m.teacher_id != nil {
		fields = append(fields, transcriptartifact.FieldTeacherID)
	}
	if m.class_id != nil {
		fields = append(fields, transcriptartifact.FieldClassID)
	}
	if m.teacher_email != nil {
		fields = append(fields, transcriptartifact.FieldTeacherEmail)
	}
	if m.meeting_date != nil {
		fields = append(fields, transcriptartifact.FieldMeetingDate)
	}
	if m.start_time != nil {
		fields = append(fields, transcriptartifact.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, transcriptartifact.FieldEndTime)
	}
	if m.transcript != nil {
		fields = append(fields, transcriptartifact.FieldTranscript)
	}
	if m.transcript_length != nil {
		fields = append(fields, transcriptartifact.FieldTranscriptLength)
	}
	if m.transcript_source != nil {
		fields = append(fields, transcriptartifact.FieldTranscriptSource)
	}
	if m.status != nil {
		fields = append(fields, transcriptartifact.FieldStatus)
	}
	if m.processing_attempts != nil {
		fields = append(fields, transcriptartifact.FieldProcessingAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, transcriptartifact.FieldLastError)
	}
	if m.claimed_at != nil {
		fields = append(fields, transcriptartifact.FieldClaimedAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, transcriptartifact.FieldClaimedBy)
	}
	if m.processed_at != nil {
		fields = append(fields, transcriptartifact.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, transcriptartifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transcriptartifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptartifact.FieldUserID:
		return m.UserID()
	case transcriptartifact.FieldTeacherID:
		return m.TeacherID()
	case transcriptartifact.FieldClassID:
		return m.ClassID()
	case transcriptartifact.FieldTeacherEmail:
		return m.TeacherEmail()
	case transcriptartifact.FieldMeetingDate:
		return m.MeetingDate()
	case transcriptartifact.FieldStartTime:
		return m.StartTime()
	case transcriptartifact.FieldEndTime:
		return m.EndTime()
	case transcriptartifact.FieldTranscript:
		return m.Transcript()
	case transcriptartifact.FieldTranscriptLength:
		return m.TranscriptLength()
	case transcriptartifact.FieldTranscriptSource:
		return m.TranscriptSource()
	case transcriptartifact.FieldStatus:
		return m.Status()
	case transcriptartifact.FieldProcessingAttempts:
		return m.ProcessingAttempts()
	case transcriptartifact.FieldLastError:
		return m.LastError()
	case transcriptartifact.FieldClaimedAt:
		return m.ClaimedAt()
	case transcriptartifact.FieldClaimedBy:
		return m.ClaimedBy()
	case transcriptartifact.FieldProcessedAt:
		return m.ProcessedAt()
	case transcriptartifact.FieldCreatedAt:
		return m.CreatedAt()
	case transcriptartifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptartifact.FieldUserID:
		return m.OldUserID(ctx)
	case transcriptartifact.FieldTeacherID:
		return m.OldTeacherID(ctx)
	case transcriptartifact.FieldClassID:
		return m.OldClassID(ctx)
	case transcriptartifact.FieldTeacherEmail:
		return m.OldTeacherEmail(ctx)
	case transcriptartifact.FieldMeetingDate:
		return m.OldMeetingDate(ctx)
	case transcriptartifact.FieldStartTime:
		return m.OldStartTime(ctx)
	case transcriptartifact.FieldEndTime:
		return m.OldEndTime(ctx)
	case transcriptartifact.FieldTranscript:
		return m.OldTranscript(ctx)
	case transcriptartifact.FieldTranscriptLength:
		return m.OldTranscriptLength(ctx)
	case transcriptartifact.FieldTranscriptSource:
		return m.OldTranscriptSource(ctx)
	case transcriptartifact.FieldStatus:
		return m.OldStatus(ctx)
	case transcriptartifact.FieldProcessingAttempts:
		return m.OldProcessingAttempts(ctx)
	case transcriptartifact.FieldLastError:
		return m.OldLastError(ctx)
	case transcriptartifact.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case transcriptartifact.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case transcriptartifact.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case transcriptartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transcriptartifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptartifact.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case transcriptartifact.FieldTeacherID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeacherID(v)
		return nil
	case transcriptartifact.FieldClassID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassID(v)
		return nil
	case transcriptartifact.FieldTeacherEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeacherEmail(v)
		return nil
	case transcriptartifact.FieldMeetingDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingDate(v)
		return nil
	case transcriptartifact.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case transcriptartifact.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case transcriptartifact.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case transcriptartifact.FieldTranscriptLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptLength(v)
		return nil
	case transcriptartifact.FieldTranscriptSource:
		v, ok := value.(transcriptartifact.TranscriptSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptSource(v)
		return nil
	case transcriptartifact.FieldStatus:
		v, ok := value.(transcriptartifact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transcriptartifact.FieldProcessingAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingAttempts(v)
		return nil
	case transcriptartifact.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case transcriptartifact.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case transcriptartifact.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case transcriptartifact.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case transcriptartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transcriptartifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addtranscript_length != nil {
		fields = append(fields, transcriptartifact.FieldTranscriptLength)
	}
	if m.addprocessing_attempts != nil {
		fields = append(fields, transcriptartifact.FieldProcessingAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptartifact.FieldTranscriptLength:
		return m.AddedTranscriptLength()
	case transcriptartifact.FieldProcessingAttempts:
		return m.AddedProcessingAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptartifact.FieldTranscriptLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTranscriptLength(v)
		return nil
	case transcriptartifact.FieldProcessingAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcriptartifact.FieldTeacherEmail) {
		fields = append(fields, transcriptartifact.FieldTeacherEmail)
	}
	if m.FieldCleared(transcriptartifact.FieldEndTime) {
		fields = append(fields, transcriptartifact.FieldEndTime)
	}
	if m.FieldCleared(transcriptartifact.FieldTranscript) {
		fields = append(fields, transcriptartifact.FieldTranscript)
	}
	if m.FieldCleared(transcriptartifact.FieldLastError) {
		fields = append(fields, transcriptartifact.FieldLastError)
	}
	if m.FieldCleared(transcriptartifact.FieldClaimedAt) {
		fields = append(fields, transcriptartifact.FieldClaimedAt)
	}
	if m.FieldCleared(transcriptartifact.FieldClaimedBy) {
		fields = append(fields, transcriptartifact.FieldClaimedBy)
	}
	if m.FieldCleared(transcriptartifact.FieldProcessedAt) {
		fields = append(fields, transcriptartifact.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptArtifactMutation) ClearField(name string) error {
	switch name {
	case transcriptartifact.FieldTeacherEmail:
		m.ClearTeacherEmail()
		return nil
	case transcriptartifact.FieldEndTime:
		m.ClearEndTime()
		return nil
	case transcriptartifact.FieldTranscript:
		m.ClearTranscript()
		return nil
	case transcriptartifact.FieldLastError:
		m.ClearLastError()
		return nil
	case transcriptartifact.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case transcriptartifact.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case transcriptartifact.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptArtifactMutation) ResetField(name string) error {
	switch name {
	case transcriptartifact.FieldUserID:
		m.ResetUserID()
		return nil
	case transcriptartifact.FieldTeacherID:
		m.ResetTeacherID()
		return nil
	case transcriptartifact.FieldClassID:
		m.ResetClassID()
		return nil
	case transcriptartifact.FieldTeacherEmail:
		m.ResetTeacherEmail()
		return nil
	case transcriptartifact.FieldMeetingDate:
		m.ResetMeetingDate()
		return nil
	case transcriptartifact.FieldStartTime:
		m.ResetStartTime()
		return nil
	case transcriptartifact.FieldEndTime:
		m.ResetEndTime()
		return nil
	case transcriptartifact.FieldTranscript:
		m.ResetTranscript()
		return nil
	case transcriptartifact.FieldTranscriptLength:
		m.ResetTranscriptLength()
		return nil
	case transcriptartifact.FieldTranscriptSource:
		m.ResetTranscriptSource()
		return nil
	case transcriptartifact.FieldStatus:
		m.ResetStatus()
		return nil
	case transcriptartifact.FieldProcessingAttempts:
		m.ResetProcessingAttempts()
		return nil
	case transcriptartifact.FieldLastError:
		m.ResetLastError()
		return nil
	case transcriptartifact.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case transcriptartifact.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case transcriptartifact.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case transcriptartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transcriptartifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.exercise_sets != nil {
		edges = append(edges, transcriptartifact.EdgeExerciseSets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptartifact.EdgeExerciseSets:
		ids := make([]ent.Value, 0, len(m.exercise_sets))
		for id := range m.exercise_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedexercise_sets != nil {
		edges = append(edges, transcriptartifact.EdgeExerciseSets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptArtifactMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transcriptartifact.EdgeExerciseSets:
		ids := make([]ent.Value, 0, len(m.removedexercise_sets))
		for id := range m.removedexercise_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexercise_sets {
		edges = append(edges, transcriptartifact.EdgeExerciseSets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptartifact.EdgeExerciseSets:
		return m.clearedexercise_sets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptArtifactMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TranscriptArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptArtifactMutation) ResetEdge(name string) error {
	switch name {
	case transcriptartifact.EdgeExerciseSets:
		m.ResetExerciseSets()
		return nil
	}
	return fmt.Errorf("unknown TranscriptArtifact edge %s", name)
}
