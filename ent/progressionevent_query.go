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
	"github.com/abiral/fluency/ent/predicate"
	"github.com/abiral/fluency/ent/progressionevent"
)

// ProgressionEventQuery is the builder for querying ProgressionEvent entities.
type ProgressionEventQuery struct {
	config
	ctx        *QueryContext
	order      []progressionevent.OrderOption
	inters     []Interceptor
	predicates []predicate.ProgressionEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProgressionEventQuery builder.
func (peq *ProgressionEventQuery) Where(ps ...predicate.ProgressionEvent) *ProgressionEventQuery {
	peq.predicates = append(peq.predicates, ps...)
	return peq
}

// Limit the number of records to be returned by this query.
func (peq *ProgressionEventQuery) Limit(limit int) *ProgressionEventQuery {
	peq.ctx.Limit = &limit
	return peq
}

// Offset to start from.
func (peq *ProgressionEventQuery) Offset(offset int) *ProgressionEventQuery {
	peq.ctx.Offset = &offset
	return peq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (peq *ProgressionEventQuery) Unique(unique bool) *ProgressionEventQuery {
	peq.ctx.Unique = &unique
	return peq
}

// Order specifies how the records should be ordered.
func (peq *ProgressionEventQuery) Order(o ...progressionevent.OrderOption) *ProgressionEventQuery {
	peq.order = append(peq.order, o...)
	return peq
}

// First returns the first ProgressionEvent entity from the query.
// Returns a *NotFoundError when no ProgressionEvent was found.
func (peq *ProgressionEventQuery) First(ctx context.Context) (*ProgressionEvent, error) {
	nodes, err := peq.Limit(1).All(setContextOp(ctx, peq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{progressionevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (peq *ProgressionEventQuery) FirstX(ctx context.Context) *ProgressionEvent {
	node, err := peq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProgressionEvent ID from the query.
// Returns a *NotFoundError when no ProgressionEvent ID was found.
func (peq *ProgressionEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = peq.Limit(1).IDs(setContextOp(ctx, peq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{progressionevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (peq *ProgressionEventQuery) FirstIDX(ctx context.Context) int {
	id, err := peq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProgressionEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProgressionEvent entity is found.
// Returns a *NotFoundError when no ProgressionEvent entities are found.
func (peq *ProgressionEventQuery) Only(ctx context.Context) (*ProgressionEvent, error) {
	nodes, err := peq.Limit(2).All(setContextOp(ctx, peq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{progressionevent.Label}
	default:
		return nil, &NotSingularError{progressionevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (peq *ProgressionEventQuery) OnlyX(ctx context.Context) *ProgressionEvent {
	node, err := peq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProgressionEvent ID in the query.
// Returns a *NotSingularError when more than one ProgressionEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (peq *ProgressionEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = peq.Limit(2).IDs(setContextOp(ctx, peq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{progressionevent.Label}
	default:
		err = &NotSingularError{progressionevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (peq *ProgressionEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := peq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProgressionEvents.
func (peq *ProgressionEventQuery) All(ctx context.Context) ([]*ProgressionEvent, error) {
	ctx = setContextOp(ctx, peq.ctx, ent.OpQueryAll)
	if err := peq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProgressionEvent, *ProgressionEventQuery]()
	return withInterceptors[[]*ProgressionEvent](ctx, peq, qr, peq.inters)
}

// AllX is like All, but panics if an error occurs.
func (peq *ProgressionEventQuery) AllX(ctx context.Context) []*ProgressionEvent {
	nodes, err := peq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProgressionEvent IDs.
func (peq *ProgressionEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if peq.ctx.Unique == nil && peq.path != nil {
		peq.Unique(true)
	}
	ctx = setContextOp(ctx, peq.ctx, ent.OpQueryIDs)
	if err = peq.Select(progressionevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (peq *ProgressionEventQuery) IDsX(ctx context.Context) []int {
	ids, err := peq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (peq *ProgressionEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, peq.ctx, ent.OpQueryCount)
	if err := peq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, peq, querierCount[*ProgressionEventQuery](), peq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (peq *ProgressionEventQuery) CountX(ctx context.Context) int {
	count, err := peq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (peq *ProgressionEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, peq.ctx, ent.OpQueryExist)
	switch _, err := peq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (peq *ProgressionEventQuery) ExistX(ctx context.Context) bool {
	exist, err := peq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProgressionEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (peq *ProgressionEventQuery) Clone() *ProgressionEventQuery {
	if peq == nil {
		return nil
	}
	return &ProgressionEventQuery{
		config:     peq.config,
		ctx:        peq.ctx.Clone(),
		order:      append([]progressionevent.OrderOption{}, peq.order...),
		inters:     append([]Interceptor{}, peq.inters...),
		predicates: append([]predicate.ProgressionEvent{}, peq.predicates...),
		// clone intermediate query.
		sql:  peq.sql.Clone(),
		path: peq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProgressionEvent.Query().
//		GroupBy(progressionevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (peq *ProgressionEventQuery) GroupBy(field string, fields ...string) *ProgressionEventGroupBy {
	peq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProgressionEventGroupBy{build: peq}
	grbuild.flds = &peq.ctx.Fields
	grbuild.label = progressionevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.ProgressionEvent.Query().
//		Select(progressionevent.FieldSequence).
//		Scan(ctx, &v)
func (peq *ProgressionEventQuery) Select(fields ...string) *ProgressionEventSelect {
	peq.ctx.Fields = append(peq.ctx.Fields, fields...)
	sbuild := &ProgressionEventSelect{ProgressionEventQuery: peq}
	sbuild.label = progressionevent.Label
	sbuild.flds, sbuild.scan = &peq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProgressionEventSelect configured with the given aggregations.
func (peq *ProgressionEventQuery) Aggregate(fns ...AggregateFunc) *ProgressionEventSelect {
	return peq.Select().Aggregate(fns...)
}

func (peq *ProgressionEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range peq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, peq); err != nil {
				return err
			}
		}
	}
	for _, f := range peq.ctx.Fields {
		if !progressionevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if peq.path != nil {
		prev, err := peq.path(ctx)
		if err != nil {
			return err
		}
		peq.sql = prev
	}
	return nil
}

func (peq *ProgressionEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProgressionEvent, error) {
	var (
		nodes = []*ProgressionEvent{}
		_spec = peq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProgressionEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProgressionEvent{config: peq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, peq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (peq *ProgressionEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := peq.querySpec()
	_spec.Node.Columns = peq.ctx.Fields
	if len(peq.ctx.Fields) > 0 {
		_spec.Unique = peq.ctx.Unique != nil && *peq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, peq.driver, _spec)
}

func (peq *ProgressionEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(progressionevent.Table, progressionevent.Columns, sqlgraph.NewFieldSpec(progressionevent.FieldID, field.TypeInt))
	_spec.From = peq.sql
	if unique := peq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if peq.path != nil {
		_spec.Unique = true
	}
	if fields := peq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressionevent.FieldID)
		for i := range fields {
			if fields[i] != progressionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := peq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := peq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := peq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := peq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (peq *ProgressionEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(peq.driver.Dialect())
	t1 := builder.Table(progressionevent.Table)
	columns := peq.ctx.Fields
	if len(columns) == 0 {
		columns = progressionevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if peq.sql != nil {
		selector = peq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if peq.ctx.Unique != nil && *peq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range peq.predicates {
		p(selector)
	}
	for _, p := range peq.order {
		p(selector)
	}
	if offset := peq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := peq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProgressionEventGroupBy is the group-by builder for ProgressionEvent entities.
type ProgressionEventGroupBy struct {
	selector
	build *ProgressionEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pegb *ProgressionEventGroupBy) Aggregate(fns ...AggregateFunc) *ProgressionEventGroupBy {
	pegb.fns = append(pegb.fns, fns...)
	return pegb
}

// Scan applies the selector query and scans the result into the given value.
func (pegb *ProgressionEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pegb.build.ctx, ent.OpQueryGroupBy)
	if err := pegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProgressionEventQuery, *ProgressionEventGroupBy](ctx, pegb.build, pegb, pegb.build.inters, v)
}

func (pegb *ProgressionEventGroupBy) sqlScan(ctx context.Context, root *ProgressionEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pegb.fns))
	for _, fn := range pegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pegb.flds)+len(pegb.fns))
		for _, f := range *pegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProgressionEventSelect is the builder for selecting fields of ProgressionEvent entities.
type ProgressionEventSelect struct {
	*ProgressionEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pes *ProgressionEventSelect) Aggregate(fns ...AggregateFunc) *ProgressionEventSelect {
	pes.fns = append(pes.fns, fns...)
	return pes
}

// Scan applies the selector query and scans the result into the given value.
func (pes *ProgressionEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pes.ctx, ent.OpQuerySelect)
	if err := pes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProgressionEventQuery, *ProgressionEventSelect](ctx, pes.ProgressionEventQuery, pes, pes.inters, v)
}

func (pes *ProgressionEventSelect) sqlScan(ctx context.Context, root *ProgressionEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pes.fns))
	for _, fn := range pes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
