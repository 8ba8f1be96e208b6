// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// TranscriptArtifactQuery is the builder for querying TranscriptArtifact entities.
type TranscriptArtifactQuery struct {
	config
	ctx              *QueryContext
	order            []transcriptartifact.OrderOption
	inters           []Interceptor
	predicates       []predicate.TranscriptArtifact
	withExerciseSets *ExerciseSetQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TranscriptArtifactQuery builder.
func (_q *TranscriptArtifactQuery) Where(ps ...predicate.TranscriptArtifact) *TranscriptArtifactQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TranscriptArtifactQuery) Limit(limit int) *TranscriptArtifactQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TranscriptArtifactQuery) Offset(offset int) *TranscriptArtifactQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TranscriptArtifactQuery) Unique(unique bool) *TranscriptArtifactQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TranscriptArtifactQuery) Order(o ...transcriptartifact.OrderOption) *TranscriptArtifactQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExerciseSets chains the current query on the "exercise_sets" edge.
func (_q *TranscriptArtifactQuery) QueryExerciseSets() *ExerciseSetQuery {
	query := (&ExerciseSetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptartifact.Table, transcriptartifact.FieldID, selector),
			sqlgraph.To(exerciseset.Table, exerciseset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcriptartifact.ExerciseSetsTable, transcriptartifact.ExerciseSetsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TranscriptArtifact entity from the query.
// Returns a *NotFoundError when no TranscriptArtifact was found.
func (_q *TranscriptArtifactQuery) First(ctx context.Context) (*TranscriptArtifact, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{transcriptartifact.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) FirstX(ctx context.Context) *TranscriptArtifact {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TranscriptArtifact ID from the query.
// Returns a *NotFoundError when no TranscriptArtifact ID was found.
func (_q *TranscriptArtifactQuery) FirstID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{transcriptartifact.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) FirstIDX(ctx context.Context) int64 {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TranscriptArtifact entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TranscriptArtifact entity is found.
// Returns a *NotFoundError when no TranscriptArtifact entities are found.
func (_q *TranscriptArtifactQuery) Only(ctx context.Context) (*TranscriptArtifact, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{transcriptartifact.Label}
	default:
		return nil, &NotSingularError{transcriptartifact.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) OnlyX(ctx context.Context) *TranscriptArtifact {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TranscriptArtifact ID in the query.
// Returns a *NotSingularError when more than one TranscriptArtifact ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TranscriptArtifactQuery) OnlyID(ctx context.Context) (id int64, err error) {
	var ids []int64
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{transcriptartifact.Label}
	default:
		err = &NotSingularError{transcriptartifact.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) OnlyIDX(ctx context.Context) int64 {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TranscriptArtifacts.
func (_q *TranscriptArtifactQuery) All(ctx context.Context) ([]*TranscriptArtifact, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TranscriptArtifact, *TranscriptArtifactQuery]()
	return withInterceptors[[]*TranscriptArtifact](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) AllX(ctx context.Context) []*TranscriptArtifact {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TranscriptArtifact IDs.
func (_q *TranscriptArtifactQuery) IDs(ctx context.Context) (ids []int64, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(transcriptartifact.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) IDsX(ctx context.Context) []int64 {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TranscriptArtifactQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TranscriptArtifactQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TranscriptArtifactQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TranscriptArtifactQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TranscriptArtifactQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TranscriptArtifactQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TranscriptArtifactQuery) Clone() *TranscriptArtifactQuery {
	if _q == nil {
		return nil
	}
	return &TranscriptArtifactQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]transcriptartifact.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.TranscriptArtifact{}, _q.predicates...),
		withExerciseSets: _q.withExerciseSets.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExerciseSets tells the query-builder to eager-load the nodes that are connected to
// the "exercise_sets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptArtifactQuery) WithExerciseSets(opts ...func(*ExerciseSetQuery)) *TranscriptArtifactQuery {
	query := (&ExerciseSetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExerciseSets = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TranscriptArtifact.Query().
//		GroupBy(transcriptartifact.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TranscriptArtifactQuery) GroupBy(field string, fields ...string) *TranscriptArtifactGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TranscriptArtifactGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = transcriptartifact.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.TranscriptArtifact.Query().
//		Select(transcriptartifact.FieldUserID).
//		Scan(ctx, &v)
func (_q *TranscriptArtifactQuery) Select(fields ...string) *TranscriptArtifactSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TranscriptArtifactSelect{TranscriptArtifactQuery: _q}
	sbuild.label = transcriptartifact.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TranscriptArtifactSelect configured with the given aggregations.
func (_q *TranscriptArtifactQuery) Aggregate(fns ...AggregateFunc) *TranscriptArtifactSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TranscriptArtifactQuery) prepareQuery(ctx context.Context) error {
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
		if !transcriptartifact.ValidColumn(f) {
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

func (_q *TranscriptArtifactQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TranscriptArtifact, error) {
	var (
		nodes       = []*TranscriptArtifact{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withExerciseSets != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TranscriptArtifact).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TranscriptArtifact{config: _q.config}
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
	if query := _q.withExerciseSets; query != nil {
		if err := _q.loadExerciseSets(ctx, query, nodes,
			func(n *TranscriptArtifact) { n.Edges.ExerciseSets = []*ExerciseSet{} },
			func(n *TranscriptArtifact, e *ExerciseSet) { n.Edges.ExerciseSets = append(n.Edges.ExerciseSets, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TranscriptArtifactQuery) loadExerciseSets(ctx context.Context, query *ExerciseSetQuery, nodes []*TranscriptArtifact, init func(*TranscriptArtifact), assign func(*TranscriptArtifact, *ExerciseSet)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int64]*TranscriptArtifact)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(exerciseset.FieldSummaryID)
	}
	query.Where(predicate.ExerciseSet(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(transcriptartifact.ExerciseSetsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SummaryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "summary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TranscriptArtifactQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *TranscriptArtifactQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(transcriptartifact.Table, transcriptartifact.Columns, sqlgraph.NewFieldSpec(transcriptartifact.FieldID, field.TypeInt64))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptartifact.FieldID)
		for i := range fields {
			if fields[i] != transcriptartifact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *TranscriptArtifactQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(transcriptartifact.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = transcriptartifact.Columns
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
func (_q *TranscriptArtifactQuery) ForUpdate(opts ...sql.LockOption) *TranscriptArtifactQuery {
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
func (_q *TranscriptArtifactQuery) ForShare(opts ...sql.LockOption) *TranscriptArtifactQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TranscriptArtifactGroupBy is the group-by builder for TranscriptArtifact entities.
type TranscriptArtifactGroupBy struct {
	selector
	build *TranscriptArtifactQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TranscriptArtifactGroupBy) Aggregate(fns ...AggregateFunc) *TranscriptArtifactGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TranscriptArtifactGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TranscriptArtifactQuery, *TranscriptArtifactGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TranscriptArtifactGroupBy) sqlScan(ctx context.Context, root *TranscriptArtifactQuery, v any) error {
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

// TranscriptArtifactSelect is the builder for selecting fields of TranscriptArtifact entities.
type TranscriptArtifactSelect struct {
	*TranscriptArtifactQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TranscriptArtifactSelect) Aggregate(fns ...AggregateFunc) *TranscriptArtifactSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TranscriptArtifactSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TranscriptArtifactQuery, *TranscriptArtifactSelect](ctx, _s.TranscriptArtifactQuery, _s, _s.inters, v)
}

func (_s *TranscriptArtifactSelect) sqlScan(ctx context.Context, root *TranscriptArtifactQuery, v any) error {
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
