// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/predicate"
	"github.com/stridehq/cadenza/ent/recording"
)

// BotDeploymentQuery is the builder for querying BotDeployment entities.
type BotDeploymentQuery struct {
	config
	ctx           *QueryContext
	order         []botdeployment.OrderOption
	inters        []Interceptor
	predicates    []predicate.BotDeployment
	withRecording *RecordingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BotDeploymentQuery builder.
func (_q *BotDeploymentQuery) Where(ps ...predicate.BotDeployment) *BotDeploymentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BotDeploymentQuery) Limit(limit int) *BotDeploymentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BotDeploymentQuery) Offset(offset int) *BotDeploymentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BotDeploymentQuery) Unique(unique bool) *BotDeploymentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BotDeploymentQuery) Order(o ...botdeployment.OrderOption) *BotDeploymentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRecording chains the current query on the "recording" edge.
func (_q *BotDeploymentQuery) QueryRecording() *RecordingQuery {
	query := (&RecordingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(botdeployment.Table, botdeployment.FieldID, selector),
			sqlgraph.To(recording.Table, recording.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, botdeployment.RecordingTable, botdeployment.RecordingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BotDeployment entity from the query.
// Returns a *NotFoundError when no BotDeployment was found.
func (_q *BotDeploymentQuery) First(ctx context.Context) (*BotDeployment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{botdeployment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BotDeploymentQuery) FirstX(ctx context.Context) *BotDeployment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BotDeployment ID from the query.
// Returns a *NotFoundError when no BotDeployment ID was found.
func (_q *BotDeploymentQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{botdeployment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BotDeploymentQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BotDeployment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BotDeployment entity is found.
// Returns a *NotFoundError when no BotDeployment entities are found.
func (_q *BotDeploymentQuery) Only(ctx context.Context) (*BotDeployment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{botdeployment.Label}
	default:
		return nil, &NotSingularError{botdeployment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BotDeploymentQuery) OnlyX(ctx context.Context) *BotDeployment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BotDeployment ID in the query.
// Returns a *NotSingularError when more than one BotDeployment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BotDeploymentQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{botdeployment.Label}
	default:
		err = &NotSingularError{botdeployment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BotDeploymentQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BotDeployments.
func (_q *BotDeploymentQuery) All(ctx context.Context) ([]*BotDeployment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BotDeployment, *BotDeploymentQuery]()
	return withInterceptors[[]*BotDeployment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BotDeploymentQuery) AllX(ctx context.Context) []*BotDeployment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BotDeployment IDs.
func (_q *BotDeploymentQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(botdeployment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BotDeploymentQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BotDeploymentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BotDeploymentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BotDeploymentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BotDeploymentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BotDeploymentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BotDeploymentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BotDeploymentQuery) Clone() *BotDeploymentQuery {
	if _q == nil {
		return nil
	}
	return &BotDeploymentQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]botdeployment.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.BotDeployment{}, _q.predicates...),
		withRecording: _q.withRecording.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRecording tells the query-builder to eager-load the nodes that are connected to
// the "recording" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BotDeploymentQuery) WithRecording(opts ...func(*RecordingQuery)) *BotDeploymentQuery {
	query := (&RecordingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecording = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OrgID string `json:"org_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BotDeployment.Query().
//		GroupBy(botdeployment.FieldOrgID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BotDeploymentQuery) GroupBy(field string, fields ...string) *BotDeploymentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BotDeploymentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = botdeployment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OrgID string `json:"org_id,omitempty"`
//	}
//
//	client.BotDeployment.Query().
//		Select(botdeployment.FieldOrgID).
//		Scan(ctx, &v)
func (_q *BotDeploymentQuery) Select(fields ...string) *BotDeploymentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BotDeploymentSelect{BotDeploymentQuery: _q}
	sbuild.label = botdeployment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BotDeploymentSelect configured with the given aggregations.
func (_q *BotDeploymentQuery) Aggregate(fns ...AggregateFunc) *BotDeploymentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BotDeploymentQuery) prepareQuery(ctx context.Context) error {
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
		if !botdeployment.ValidColumn(f) {
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

func (_q *BotDeploymentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BotDeployment, error) {
	var (
		nodes       = []*BotDeployment{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withRecording != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BotDeployment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BotDeployment{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withRecording; query != nil {
		if err := _q.loadRecording(ctx, query, nodes, nil,
			func(n *BotDeployment, e *Recording) { n.Edges.Recording = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BotDeploymentQuery) loadRecording(ctx context.Context, query *RecordingQuery, nodes []*BotDeployment, init func(*BotDeployment), assign func(*BotDeployment, *Recording)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*BotDeployment)
	for i := range nodes {
		fk := nodes[i].RecordingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(recording.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recording_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *BotDeploymentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BotDeploymentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(botdeployment.Table, botdeployment.Columns, sqlgraph.NewFieldSpec(botdeployment.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botdeployment.FieldID)
		for i := range fields {
			if fields[i] != botdeployment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRecording != nil {
			_spec.Node.AddColumnOnce(botdeployment.FieldRecordingID)
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

func (_q *BotDeploymentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(botdeployment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = botdeployment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// BotDeploymentGroupBy is the group-by builder for BotDeployment entities.
type BotDeploymentGroupBy struct {
	selector
	build *BotDeploymentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BotDeploymentGroupBy) Aggregate(fns ...AggregateFunc) *BotDeploymentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BotDeploymentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BotDeploymentQuery, *BotDeploymentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BotDeploymentGroupBy) sqlScan(ctx context.Context, root *BotDeploymentQuery, v any) error {
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

// BotDeploymentSelect is the builder for selecting fields of BotDeployment entities.
type BotDeploymentSelect struct {
	*BotDeploymentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BotDeploymentSelect) Aggregate(fns ...AggregateFunc) *BotDeploymentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BotDeploymentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BotDeploymentQuery, *BotDeploymentSelect](ctx, _s.BotDeploymentQuery, _s, _s.inters, v)
}

func (_s *BotDeploymentSelect) sqlScan(ctx context.Context, root *BotDeploymentQuery, v any) error {
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
