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
	"github.com/abiral/fluency/ent/bulkpromotionevent"
	"github.com/abiral/fluency/ent/predicate"
)

// BulkPromotionEventQuery is the builder for querying BulkPromotionEvent entities.
type BulkPromotionEventQuery struct {
	config
	ctx        *QueryContext
	order      []bulkpromotionevent.OrderOption
	inters     []Interceptor
	predicates []predicate.BulkPromotionEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BulkPromotionEventQuery builder.
func (bpeq *BulkPromotionEventQuery) Where(ps ...predicate.BulkPromotionEvent) *BulkPromotionEventQuery {
	bpeq.predicates = append(bpeq.predicates, ps...)
	return bpeq
}

// Limit the number of records to be returned by this query.
func (bpeq *BulkPromotionEventQuery) Limit(limit int) *BulkPromotionEventQuery {
	bpeq.ctx.Limit = &limit
	return bpeq
}

// Offset to start from.
func (bpeq *BulkPromotionEventQuery) Offset(offset int) *BulkPromotionEventQuery {
	bpeq.ctx.Offset = &offset
	return bpeq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (bpeq *BulkPromotionEventQuery) Unique(unique bool) *BulkPromotionEventQuery {
	bpeq.ctx.Unique = &unique
	return bpeq
}

// Order specifies how the records should be ordered.
func (bpeq *BulkPromotionEventQuery) Order(o ...bulkpromotionevent.OrderOption) *BulkPromotionEventQuery {
	bpeq.order = append(bpeq.order, o...)
	return bpeq
}

// First returns the first BulkPromotionEvent entity from the query.
// Returns a *NotFoundError when no BulkPromotionEvent was found.
func (bpeq *BulkPromotionEventQuery) First(ctx context.Context) (*BulkPromotionEvent, error) {
	nodes, err := bpeq.Limit(1).All(setContextOp(ctx, bpeq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bulkpromotionevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) FirstX(ctx context.Context) *BulkPromotionEvent {
	node, err := bpeq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BulkPromotionEvent ID from the query.
// Returns a *NotFoundError when no BulkPromotionEvent ID was found.
func (bpeq *BulkPromotionEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = bpeq.Limit(1).IDs(setContextOp(ctx, bpeq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bulkpromotionevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) FirstIDX(ctx context.Context) int {
	id, err := bpeq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BulkPromotionEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BulkPromotionEvent entity is found.
// Returns a *NotFoundError when no BulkPromotionEvent entities are found.
func (bpeq *BulkPromotionEventQuery) Only(ctx context.Context) (*BulkPromotionEvent, error) {
	nodes, err := bpeq.Limit(2).All(setContextOp(ctx, bpeq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bulkpromotionevent.Label}
	default:
		return nil, &NotSingularError{bulkpromotionevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) OnlyX(ctx context.Context) *BulkPromotionEvent {
	node, err := bpeq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BulkPromotionEvent ID in the query.
// Returns a *NotSingularError when more than one BulkPromotionEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (bpeq *BulkPromotionEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = bpeq.Limit(2).IDs(setContextOp(ctx, bpeq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bulkpromotionevent.Label}
	default:
		err = &NotSingularError{bulkpromotionevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := bpeq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BulkPromotionEvents.
func (bpeq *BulkPromotionEventQuery) All(ctx context.Context) ([]*BulkPromotionEvent, error) {
	ctx = setContextOp(ctx, bpeq.ctx, ent.OpQueryAll)
	if err := bpeq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BulkPromotionEvent, *BulkPromotionEventQuery]()
	return withInterceptors[[]*BulkPromotionEvent](ctx, bpeq, qr, bpeq.inters)
}

// AllX is like All, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) AllX(ctx context.Context) []*BulkPromotionEvent {
	nodes, err := bpeq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BulkPromotionEvent IDs.
func (bpeq *BulkPromotionEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if bpeq.ctx.Unique == nil && bpeq.path != nil {
		bpeq.Unique(true)
	}
	ctx = setContextOp(ctx, bpeq.ctx, ent.OpQueryIDs)
	if err = bpeq.Select(bulkpromotionevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) IDsX(ctx context.Context) []int {
	ids, err := bpeq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (bpeq *BulkPromotionEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, bpeq.ctx, ent.OpQueryCount)
	if err := bpeq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, bpeq, querierCount[*BulkPromotionEventQuery](), bpeq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) CountX(ctx context.Context) int {
	count, err := bpeq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (bpeq *BulkPromotionEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, bpeq.ctx, ent.OpQueryExist)
	switch _, err := bpeq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (bpeq *BulkPromotionEventQuery) ExistX(ctx context.Context) bool {
	exist, err := bpeq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BulkPromotionEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (bpeq *BulkPromotionEventQuery) Clone() *BulkPromotionEventQuery {
	if bpeq == nil {
		return nil
	}
	return &BulkPromotionEventQuery{
		config:     bpeq.config,
		ctx:        bpeq.ctx.Clone(),
		order:      append([]bulkpromotionevent.OrderOption{}, bpeq.order...),
		inters:     append([]Interceptor{}, bpeq.inters...),
		predicates: append([]predicate.BulkPromotionEvent{}, bpeq.predicates...),
		// clone intermediate query.
		sql:  bpeq.sql.Clone(),
		path: bpeq.path,
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
//	client.BulkPromotionEvent.Query().
//		GroupBy(bulkpromotionevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (bpeq *BulkPromotionEventQuery) GroupBy(field string, fields ...string) *BulkPromotionEventGroupBy {
	bpeq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BulkPromotionEventGroupBy{build: bpeq}
	grbuild.flds = &bpeq.ctx.Fields
	grbuild.label = bulkpromotionevent.Label
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
//	client.BulkPromotionEvent.Query().
//		Select(bulkpromotionevent.FieldSequence).
//		Scan(ctx, &v)
func (bpeq *BulkPromotionEventQuery) Select(fields ...string) *BulkPromotionEventSelect {
	bpeq.ctx.Fields = append(bpeq.ctx.Fields, fields...)
	sbuild := &BulkPromotionEventSelect{BulkPromotionEventQuery: bpeq}
	sbuild.label = bulkpromotionevent.Label
	sbuild.flds, sbuild.scan = &bpeq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BulkPromotionEventSelect configured with the given aggregations.
func (bpeq *BulkPromotionEventQuery) Aggregate(fns ...AggregateFunc) *BulkPromotionEventSelect {
	return bpeq.Select().Aggregate(fns...)
}

func (bpeq *BulkPromotionEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range bpeq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, bpeq); err != nil {
				return err
			}
		}
	}
	for _, f := range bpeq.ctx.Fields {
		if !bulkpromotionevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if bpeq.path != nil {
		prev, err := bpeq.path(ctx)
		if err != nil {
			return err
		}
		bpeq.sql = prev
	}
	return nil
}

func (bpeq *BulkPromotionEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BulkPromotionEvent, error) {
	var (
		nodes = []*BulkPromotionEvent{}
		_spec = bpeq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BulkPromotionEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BulkPromotionEvent{config: bpeq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, bpeq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (bpeq *BulkPromotionEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := bpeq.querySpec()
	_spec.Node.Columns = bpeq.ctx.Fields
	if len(bpeq.ctx.Fields) > 0 {
		_spec.Unique = bpeq.ctx.Unique != nil && *bpeq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, bpeq.driver, _spec)
}

func (bpeq *BulkPromotionEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bulkpromotionevent.Table, bulkpromotionevent.Columns, sqlgraph.NewFieldSpec(bulkpromotionevent.FieldID, field.TypeInt))
	_spec.From = bpeq.sql
	if unique := bpeq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if bpeq.path != nil {
		_spec.Unique = true
	}
	if fields := bpeq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bulkpromotionevent.FieldID)
		for i := range fields {
			if fields[i] != bulkpromotionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := bpeq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := bpeq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := bpeq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := bpeq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (bpeq *BulkPromotionEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(bpeq.driver.Dialect())
	t1 := builder.Table(bulkpromotionevent.Table)
	columns := bpeq.ctx.Fields
	if len(columns) == 0 {
		columns = bulkpromotionevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if bpeq.sql != nil {
		selector = bpeq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if bpeq.ctx.Unique != nil && *bpeq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range bpeq.predicates {
		p(selector)
	}
	for _, p := range bpeq.order {
		p(selector)
	}
	if offset := bpeq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := bpeq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BulkPromotionEventGroupBy is the group-by builder for BulkPromotionEvent entities.
type BulkPromotionEventGroupBy struct {
	selector
	build *BulkPromotionEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (bpegb *BulkPromotionEventGroupBy) Aggregate(fns ...AggregateFunc) *BulkPromotionEventGroupBy {
	bpegb.fns = append(bpegb.fns, fns...)
	return bpegb
}

// Scan applies the selector query and scans the result into the given value.
func (bpegb *BulkPromotionEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bpegb.build.ctx, ent.OpQueryGroupBy)
	if err := bpegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BulkPromotionEventQuery, *BulkPromotionEventGroupBy](ctx, bpegb.build, bpegb, bpegb.build.inters, v)
}

func (bpegb *BulkPromotionEventGroupBy) sqlScan(ctx context.Context, root *BulkPromotionEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(bpegb.fns))
	for _, fn := range bpegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*bpegb.flds)+len(bpegb.fns))
		for _, f := range *bpegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*bpegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bpegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BulkPromotionEventSelect is the builder for selecting fields of BulkPromotionEvent entities.
type BulkPromotionEventSelect struct {
	*BulkPromotionEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bpes *BulkPromotionEventSelect) Aggregate(fns ...AggregateFunc) *BulkPromotionEventSelect {
	bpes.fns = append(bpes.fns, fns...)
	return bpes
}

// Scan applies the selector query and scans the result into the given value.
func (bpes *BulkPromotionEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bpes.ctx, ent.OpQuerySelect)
	if err := bpes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BulkPromotionEventQuery, *BulkPromotionEventSelect](ctx, bpes.BulkPromotionEventQuery, bpes, bpes.inters, v)
}

func (bpes *BulkPromotionEventSelect) sqlScan(ctx context.Context, root *BulkPromotionEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bpes.fns))
	for _, fn := range bpes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bpes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bpes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
