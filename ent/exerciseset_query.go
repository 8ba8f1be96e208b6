// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/predicate"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// ExerciseSetQuery is the builder for querying ExerciseSet entities.
type ExerciseSetQuery struct {
	config
	ctx          *QueryContext
	order        []exerciseset.OrderOption
	inters       []Interceptor
	predicates   []predicate.ExerciseSet
	withArtifact *TranscriptArtifactQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExerciseSetQuery builder.
func (_q *ExerciseSetQuery) Where(ps ...predicate.ExerciseSet) *ExerciseSetQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExerciseSetQuery) Limit(limit int) *ExerciseSetQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExerciseSetQuery) Offset(offset int) *ExerciseSetQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExerciseSetQuery) Unique(unique bool) *ExerciseSetQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExerciseSetQuery) Order(o ...exerciseset.OrderOption) *ExerciseSetQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryArtifact chains the current query on the "artifact" edge.
func (_q *ExerciseSetQuery) QueryArtifact() *TranscriptArtifactQuery {
	query := (&TranscriptArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(exerciseset.Table, exerciseset.FieldID, selector),
			sqlgraph.To(transcriptartifact.Table, transcriptartifact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exerciseset.ArtifactTable, exerciseset.ArtifactColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExerciseSet entity from the query.
// Returns a *NotFoundError when no ExerciseSet was found.
func (_q *ExerciseSetQuery) First(ctx context.Context) (*ExerciseSet, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{exerciseset.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExerciseSetQuery) FirstX(ctx context.Context) *ExerciseSet {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExerciseSet ID from the query.
// Returns a *NotFoundError when no ExerciseSet ID was found.
func (_q *ExerciseSetQuery) FirstID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{exerciseset.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExerciseSetQuery) FirstIDX(ctx context.Context) int64 {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExerciseSet entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExerciseSet entity is found.
// Returns a *NotFoundError when no ExerciseSet entities are found.
func (_q *ExerciseSetQuery) Only(ctx context.Context) (*ExerciseSet, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{exerciseset.Label}
	default:
		return nil, &NotSingularError{exerciseset.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExerciseSetQuery) OnlyX(ctx context.Context) *ExerciseSet {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExerciseSet ID in the query.
// Returns a *NotSingularError when more than one ExerciseSet ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExerciseSetQuery) OnlyID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{exerciseset.Label}
	default:
		err = &NotSingularError{exerciseset.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExerciseSetQuery) OnlyIDX(ctx context.Context) int64 {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExerciseSets.
func (_q *ExerciseSetQuery) All(ctx context.Context) ([]*ExerciseSet, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExerciseSet, *ExerciseSetQuery]()
	return withInterceptors[[]*ExerciseSet](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExerciseSetQuery) AllX(ctx context.Context) []*ExerciseSet {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExerciseSet IDs.
func (_q *ExerciseSetQuery) IDs(ctx context.Context) (ids []int64, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(exerciseset.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExerciseSetQuery) IDsX(ctx context.Context) []int64 {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExerciseSetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExerciseSetQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExerciseSetQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExerciseSetQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ExerciseSetQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExerciseSetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExerciseSetQuery) Clone() *ExerciseSetQuery {
	if _q == nil {
		return nil
	}
	return &ExerciseSetQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]exerciseset.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ExerciseSet{}, _q.predicates...),
		withArtifact: _q.withArtifact.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithArtifact tells the query-builder to eager-load the nodes that are connected to
// the "artifact" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExerciseSetQuery) WithArtifact(opts ...func(*TranscriptArtifactQuery)) *ExerciseSetQuery {
	query := (&TranscriptArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArtifact = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SummaryID int64 `json:"summary_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExerciseSet.Query().
//		GroupBy(exerciseset.FieldSummaryID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExerciseSetQuery) GroupBy(field string, fields ...string) *ExerciseSetGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExerciseSetGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = exerciseset.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SummaryID int64 `json:"summary_id,omitempty"`
//	}
//
//	client.ExerciseSet.Query().
//		Select(exerciseset.FieldSummaryID).
//		Scan(ctx, &v)
func (_q *ExerciseSetQuery) Select(fields ...string) *ExerciseSetSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExerciseSetSelect{ExerciseSetQuery: _q}
	sbuild.label = exerciseset.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExerciseSetSelect configured with the given aggregations.
func (_q *ExerciseSetQuery) Aggregate(fns ...AggregateFunc) *ExerciseSetSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExerciseSetQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !exerciseset.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ExerciseSetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExerciseSet, error) {
	var (
		nodes       = []*ExerciseSet{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withArtifact != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExerciseSet).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExerciseSet{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withArtifact; query != nil {
		if err := _q.loadArtifact(ctx, query, nodes, nil,
			func(n *ExerciseSet, e *TranscriptArtifact) { n.Edges.Artifact = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExerciseSetQuery) loadArtifact(ctx context.Context, query *TranscriptArtifactQuery, nodes []*ExerciseSet, init func(*ExerciseSet), assign func(*ExerciseSet, *TranscriptArtifact)) error {
	ids := make([]int64, 0, len(nodes))
	nodeids := make(map[int64][]*ExerciseSet)
	for i := range nodes {
		fk := nodes[i].SummaryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(transcriptartifact.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "summary_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ExerciseSetQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExerciseSetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(exerciseset.Table, exerciseset.Columns, sqlgraph.NewFieldSpec(exerciseset.FieldID, field.TypeInt64))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exerciseset.FieldID)
		for i := range fields {
			if fields[i] != exerciseset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withArtifact != nil {
			_spec.Node.AddColumnOnce(exerciseset.FieldSummaryID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ExerciseSetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(exerciseset.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = exerciseset.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ExerciseSetQuery) ForUpdate(opts ...sql.LockOption) *ExerciseSetQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ExerciseSetQuery) ForShare(opts ...sql.LockOption) *ExerciseSetQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ExerciseSetGroupBy is the group-by builder for ExerciseSet entities.
type ExerciseSetGroupBy struct {
	selector
	build *ExerciseSetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExerciseSetGroupBy) Aggregate(fns ...AggregateFunc) *ExerciseSetGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExerciseSetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExerciseSetQuery, *ExerciseSetGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExerciseSetGroupBy) sqlScan(ctx context.Context, root *ExerciseSetQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ExerciseSetSelect is the builder for selecting fields of ExerciseSet entities.
type ExerciseSetSelect struct {
	*ExerciseSetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExerciseSetSelect) Aggregate(fns ...AggregateFunc) *ExerciseSetSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExerciseSetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExerciseSetQuery, *ExerciseSetSelect](ctx, _s.ExerciseSetQuery, _s, _s.inters, v)
}

func (_s *ExerciseSetSelect) sqlScan(ctx context.Context, root *ExerciseSetQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
