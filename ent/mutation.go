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
	"github.com/abiral/fluency/ent/answerevent"
	"github.com/abiral/fluency/ent/bulkpromotionevent"
	"github.com/abiral/fluency/ent/predicate"
	"github.com/abiral/fluency/ent/progressionevent"
	"github.com/abiral/fluency/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent        = "AnswerEvent"
	TypeBulkPromotionEvent = "BulkPromotionEvent"
	TypeProgressionEvent   = "ProgressionEvent"
	TypeSnapshot           = "Snapshot"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	fact_id        *string
	fact_set_id    *string
	stage_id       *string
	answer_type    *string
	was_known_fact *bool
	session_id     *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AnswerEvent, error)
	predicates     []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetFactID sets the "fact_id" field.
func (m *AnswerEventMutation) SetFactID(s string) {
	m.fact_id = &s
}

// FactID returns the value of the "fact_id" field in the mutation.
func (m *AnswerEventMutation) FactID() (r string, exists bool) {
	v := m.fact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFactID returns the old "fact_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldFactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactID: %w", err)
	}
	return oldValue.FactID, nil
}

// ResetFactID resets all changes to the "fact_id" field.
func (m *AnswerEventMutation) ResetFactID() {
	m.fact_id = nil
}

// SetFactSetID sets the "fact_set_id" field.
func (m *AnswerEventMutation) SetFactSetID(s string) {
	m.fact_set_id = &s
}

// FactSetID returns the value of the "fact_set_id" field in the mutation.
func (m *AnswerEventMutation) FactSetID() (r string, exists bool) {
	v := m.fact_set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFactSetID returns the old "fact_set_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldFactSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactSetID: %w", err)
	}
	return oldValue.FactSetID, nil
}

// ResetFactSetID resets all changes to the "fact_set_id" field.
func (m *AnswerEventMutation) ResetFactSetID() {
	m.fact_set_id = nil
}

// SetStageID sets the "stage_id" field.
func (m *AnswerEventMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *AnswerEventMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *AnswerEventMutation) ResetStageID() {
	m.stage_id = nil
}

// SetAnswerType sets the "answer_type" field.
func (m *AnswerEventMutation) SetAnswerType(s string) {
	m.answer_type = &s
}

// AnswerType returns the value of the "answer_type" field in the mutation.
func (m *AnswerEventMutation) AnswerType() (r string, exists bool) {
	v := m.answer_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerType returns the old "answer_type" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldAnswerType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerType: %w", err)
	}
	return oldValue.AnswerType, nil
}

// ResetAnswerType resets all changes to the "answer_type" field.
func (m *AnswerEventMutation) ResetAnswerType() {
	m.answer_type = nil
}

// SetWasKnownFact sets the "was_known_fact" field.
func (m *AnswerEventMutation) SetWasKnownFact(b bool) {
	m.was_known_fact = &b
}

// WasKnownFact returns the value of the "was_known_fact" field in the mutation.
func (m *AnswerEventMutation) WasKnownFact() (r bool, exists bool) {
	v := m.was_known_fact
	if v == nil {
		return
	}
	return *v, true
}

// OldWasKnownFact returns the old "was_known_fact" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldWasKnownFact(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasKnownFact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasKnownFact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasKnownFact: %w", err)
	}
	return oldValue.WasKnownFact, nil
}

// ResetWasKnownFact resets all changes to the "was_known_fact" field.
func (m *AnswerEventMutation) ResetWasKnownFact() {
	m.was_known_fact = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnswerEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AnswerEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[answerevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AnswerEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[answerevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, answerevent.FieldSessionID)
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.fact_id != nil {
		fields = append(fields, answerevent.FieldFactID)
	}
	if m.fact_set_id != nil {
		fields = append(fields, answerevent.FieldFactSetID)
	}
	if m.stage_id != nil {
		fields = append(fields, answerevent.FieldStageID)
	}
	if m.answer_type != nil {
		fields = append(fields, answerevent.FieldAnswerType)
	}
	if m.was_known_fact != nil {
		fields = append(fields, answerevent.FieldWasKnownFact)
	}
	if m.session_id != nil {
		fields = append(fields, answerevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldFactID:
		return m.FactID()
	case answerevent.FieldFactSetID:
		return m.FactSetID()
	case answerevent.FieldStageID:
		return m.StageID()
	case answerevent.FieldAnswerType:
		return m.AnswerType()
	case answerevent.FieldWasKnownFact:
		return m.WasKnownFact()
	case answerevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldFactID:
		return m.OldFactID(ctx)
	case answerevent.FieldFactSetID:
		return m.OldFactSetID(ctx)
	case answerevent.FieldStageID:
		return m.OldStageID(ctx)
	case answerevent.FieldAnswerType:
		return m.OldAnswerType(ctx)
	case answerevent.FieldWasKnownFact:
		return m.OldWasKnownFact(ctx)
	case answerevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldFactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactID(v)
		return nil
	case answerevent.FieldFactSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactSetID(v)
		return nil
	case answerevent.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case answerevent.FieldAnswerType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerType(v)
		return nil
	case answerevent.FieldWasKnownFact:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasKnownFact(v)
		return nil
	case answerevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerevent.FieldSessionID) {
		fields = append(fields, answerevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	switch name {
	case answerevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldFactID:
		m.ResetFactID()
		return nil
	case answerevent.FieldFactSetID:
		m.ResetFactSetID()
		return nil
	case answerevent.FieldStageID:
		m.ResetStageID()
		return nil
	case answerevent.FieldAnswerType:
		m.ResetAnswerType()
		return nil
	case answerevent.FieldWasKnownFact:
		m.ResetWasKnownFact()
		return nil
	case answerevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// BulkPromotionEventMutation represents an operation that mutates the BulkPromotionEvent nodes in the graph.
type BulkPromotionEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	fact_set_id             *string
	promoted_facts_count    *int
	addpromoted_facts_count *int
	consecutive_correct     *int
	addconsecutive_correct  *int
	coverage_percent        *float64
	addcoverage_percent     *float64
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*BulkPromotionEvent, error)
	predicates              []predicate.BulkPromotionEvent
}

var _ ent.Mutation = (*BulkPromotionEventMutation)(nil)

// bulkpromotioneventOption allows management of the mutation configuration using functional options.
type bulkpromotioneventOption func(*BulkPromotionEventMutation)

// newBulkPromotionEventMutation creates new mutation for the BulkPromotionEvent entity.
func newBulkPromotionEventMutation(c config, op Op, opts ...bulkpromotioneventOption) *BulkPromotionEventMutation {
	m := &BulkPromotionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeBulkPromotionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBulkPromotionEventID sets the ID field of the mutation.
func withBulkPromotionEventID(id int) bulkpromotioneventOption {
	return func(m *BulkPromotionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *BulkPromotionEvent
		)
		m.oldValue = func(ctx context.Context) (*BulkPromotionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BulkPromotionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBulkPromotionEvent sets the old BulkPromotionEvent of the mutation.
func withBulkPromotionEvent(node *BulkPromotionEvent) bulkpromotioneventOption {
	return func(m *BulkPromotionEventMutation) {
		m.oldValue = func(context.Context) (*BulkPromotionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BulkPromotionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BulkPromotionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BulkPromotionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BulkPromotionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BulkPromotionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *BulkPromotionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *BulkPromotionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the BulkPromotionEvent entity.
// If the BulkPromotionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BulkPromotionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *BulkPromotionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *BulkPromotionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *BulkPromotionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *BulkPromotionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *BulkPromotionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the BulkPromotionEvent entity.
// If the BulkPromotionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BulkPromotionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *BulkPromotionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetFactSetID sets the "fact_set_id" field.
func (m *BulkPromotionEventMutation) SetFactSetID(s string) {
	m.fact_set_id = &s
}

// FactSetID returns the value of the "fact_set_id" field in the mutation.
func (m *BulkPromotionEventMutation) FactSetID() (r string, exists bool) {
	v := m.fact_set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFactSetID returns the old "fact_set_id" field's value of the BulkPromotionEvent entity.
// If the BulkPromotionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BulkPromotionEventMutation) OldFactSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactSetID: %w", err)
	}
	return oldValue.FactSetID, nil
}

// ResetFactSetID resets all changes to the "fact_set_id" field.
func (m *BulkPromotionEventMutation) ResetFactSetID() {
	m.fact_set_id = nil
}

// SetPromotedFactsCount sets the "promoted_facts_count" field.
func (m *BulkPromotionEventMutation) SetPromotedFactsCount(i int) {
	m.promoted_facts_count = &i
	m.addpromoted_facts_count = nil
}

// PromotedFactsCount returns the value of the "promoted_facts_count" field in the mutation.
func (m *BulkPromotionEventMutation) PromotedFactsCount() (r int, exists bool) {
	v := m.promoted_facts_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPromotedFactsCount returns the old "promoted_facts_count" field's value of the BulkPromotionEvent entity.
// If the BulkPromotionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BulkPromotionEventMutation) OldPromotedFactsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromotedFactsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromotedFactsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromotedFactsCount: %w", err)
	}
	return oldValue.PromotedFactsCount, nil
}

// AddPromotedFactsCount adds i to the "promoted_facts_count" field.
func (m *BulkPromotionEventMutation) AddPromotedFactsCount(i int) {
	if m.addpromoted_facts_count != nil {
		*m.addpromoted_facts_count += i
	} else {
		m.addpromoted_facts_count = &i
	}
}

// AddedPromotedFactsCount returns the value that was added to the "promoted_facts_count" field in this mutation.
func (m *BulkPromotionEventMutation) AddedPromotedFactsCount() (r int, exists bool) {
	v := m.addpromoted_facts_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromotedFactsCount resets all changes to the "promoted_facts_count" field.
func (m *BulkPromotionEventMutation) ResetPromotedFactsCount() {
	m.promoted_facts_count = nil
	m.addpromoted_facts_count = nil
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (m *BulkPromotionEventMutation) SetConsecutiveCorrect(i int) {
	m.consecutive_correct = &i
	m.addconsecutive_correct = nil
}

// ConsecutiveCorrect returns the value of the "consecutive_correct" field in the mutation.
func (m *BulkPromotionEventMutation) ConsecutiveCorrect() (r int, exists bool) {
	v := m.consecutive_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveCorrect returns the old "consecutive_correct" field's value of the BulkPromotionEvent entity.
// If the BulkPromotionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BulkPromotionEventMutation) OldConsecutiveCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveCorrect: %w", err)
	}
	return oldValue.ConsecutiveCorrect, nil
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (m *BulkPromotionEventMutation) AddConsecutiveCorrect(i int) {
	if m.addconsecutive_correct != nil {
		*m.addconsecutive_correct += i
	} else {
		m.addconsecutive_correct = &i
	}
}

// AddedConsecutiveCorrect returns the value that was added to the "consecutive_correct" field in this mutation.
func (m *BulkPromotionEventMutation) AddedConsecutiveCorrect() (r int, exists bool) {
	v := m.addconsecutive_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveCorrect resets all changes to the "consecutive_correct" field.
func (m *BulkPromotionEventMutation) ResetConsecutiveCorrect() {
	m.consecutive_correct = nil
	m.addconsecutive_correct = nil
}

// SetCoveragePercent sets the "coverage_percent" field.
func (m *BulkPromotionEventMutation) SetCoveragePercent(f float64) {
	m.coverage_percent = &f
	m.addcoverage_percent = nil
}

// CoveragePercent returns the value of the "coverage_percent" field in the mutation.
func (m *BulkPromotionEventMutation) CoveragePercent() (r float64, exists bool) {
	v := m.coverage_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldCoveragePercent returns the old "coverage_percent" field's value of the BulkPromotionEvent entity.
// If the BulkPromotionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BulkPromotionEventMutation) OldCoveragePercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoveragePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoveragePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoveragePercent: %w", err)
	}
	return oldValue.CoveragePercent, nil
}

// AddCoveragePercent adds f to the "coverage_percent" field.
func (m *BulkPromotionEventMutation) AddCoveragePercent(f float64) {
	if m.addcoverage_percent != nil {
		*m.addcoverage_percent += f
	} else {
		m.addcoverage_percent = &f
	}
}

// AddedCoveragePercent returns the value that was added to the "coverage_percent" field in this mutation.
func (m *BulkPromotionEventMutation) AddedCoveragePercent() (r float64, exists bool) {
	v := m.addcoverage_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoveragePercent resets all changes to the "coverage_percent" field.
func (m *BulkPromotionEventMutation) ResetCoveragePercent() {
	m.coverage_percent = nil
	m.addcoverage_percent = nil
}

// Where appends a list predicates to the BulkPromotionEventMutation builder.
func (m *BulkPromotionEventMutation) Where(ps ...predicate.BulkPromotionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BulkPromotionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BulkPromotionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BulkPromotionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BulkPromotionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BulkPromotionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BulkPromotionEvent).
func (m *BulkPromotionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BulkPromotionEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, bulkpromotionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, bulkpromotionevent.FieldTimestamp)
	}
	if m.fact_set_id != nil {
		fields = append(fields, bulkpromotionevent.FieldFactSetID)
	}
	if m.promoted_facts_count != nil {
		fields = append(fields, bulkpromotionevent.FieldPromotedFactsCount)
	}
	if m.consecutive_correct != nil {
		fields = append(fields, bulkpromotionevent.FieldConsecutiveCorrect)
	}
	if m.coverage_percent != nil {
		fields = append(fields, bulkpromotionevent.FieldCoveragePercent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BulkPromotionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bulkpromotionevent.FieldSequence:
		return m.Sequence()
	case bulkpromotionevent.FieldTimestamp:
		return m.Timestamp()
	case bulkpromotionevent.FieldFactSetID:
		return m.FactSetID()
	case bulkpromotionevent.FieldPromotedFactsCount:
		return m.PromotedFactsCount()
	case bulkpromotionevent.FieldConsecutiveCorrect:
		return m.ConsecutiveCorrect()
	case bulkpromotionevent.FieldCoveragePercent:
		return m.CoveragePercent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BulkPromotionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bulkpromotionevent.FieldSequence:
		return m.OldSequence(ctx)
	case bulkpromotionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case bulkpromotionevent.FieldFactSetID:
		return m.OldFactSetID(ctx)
	case bulkpromotionevent.FieldPromotedFactsCount:
		return m.OldPromotedFactsCount(ctx)
	case bulkpromotionevent.FieldConsecutiveCorrect:
		return m.OldConsecutiveCorrect(ctx)
	case bulkpromotionevent.FieldCoveragePercent:
		return m.OldCoveragePercent(ctx)
	}
	return nil, fmt.Errorf("unknown BulkPromotionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BulkPromotionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bulkpromotionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case bulkpromotionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case bulkpromotionevent.FieldFactSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactSetID(v)
		return nil
	case bulkpromotionevent.FieldPromotedFactsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromotedFactsCount(v)
		return nil
	case bulkpromotionevent.FieldConsecutiveCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveCorrect(v)
		return nil
	case bulkpromotionevent.FieldCoveragePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoveragePercent(v)
		return nil
	}
	return fmt.Errorf("unknown BulkPromotionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BulkPromotionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, bulkpromotionevent.FieldSequence)
	}
	if m.addpromoted_facts_count != nil {
		fields = append(fields, bulkpromotionevent.FieldPromotedFactsCount)
	}
	if m.addconsecutive_correct != nil {
		fields = append(fields, bulkpromotionevent.FieldConsecutiveCorrect)
	}
	if m.addcoverage_percent != nil {
		fields = append(fields, bulkpromotionevent.FieldCoveragePercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BulkPromotionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bulkpromotionevent.FieldSequence:
		return m.AddedSequence()
	case bulkpromotionevent.FieldPromotedFactsCount:
		return m.AddedPromotedFactsCount()
	case bulkpromotionevent.FieldConsecutiveCorrect:
		return m.AddedConsecutiveCorrect()
	case bulkpromotionevent.FieldCoveragePercent:
		return m.AddedCoveragePercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BulkPromotionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bulkpromotionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case bulkpromotionevent.FieldPromotedFactsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromotedFactsCount(v)
		return nil
	case bulkpromotionevent.FieldConsecutiveCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveCorrect(v)
		return nil
	case bulkpromotionevent.FieldCoveragePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoveragePercent(v)
		return nil
	}
	return fmt.Errorf("unknown BulkPromotionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BulkPromotionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BulkPromotionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BulkPromotionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BulkPromotionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BulkPromotionEventMutation) ResetField(name string) error {
	switch name {
	case bulkpromotionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case bulkpromotionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case bulkpromotionevent.FieldFactSetID:
		m.ResetFactSetID()
		return nil
	case bulkpromotionevent.FieldPromotedFactsCount:
		m.ResetPromotedFactsCount()
		return nil
	case bulkpromotionevent.FieldConsecutiveCorrect:
		m.ResetConsecutiveCorrect()
		return nil
	case bulkpromotionevent.FieldCoveragePercent:
		m.ResetCoveragePercent()
		return nil
	}
	return fmt.Errorf("unknown BulkPromotionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BulkPromotionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BulkPromotionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BulkPromotionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BulkPromotionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BulkPromotionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BulkPromotionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BulkPromotionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BulkPromotionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BulkPromotionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BulkPromotionEvent edge %s", name)
}

// ProgressionEventMutation represents an operation that mutates the ProgressionEvent nodes in the graph.
type ProgressionEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	fact_id              *string
	fact_set_id          *string
	from_stage_id        *string
	to_stage_id          *string
	answer_type          *string
	consecutive_count    *int
	addconsecutive_count *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ProgressionEvent, error)
	predicates           []predicate.ProgressionEvent
}

var _ ent.Mutation = (*ProgressionEventMutation)(nil)

// progressioneventOption allows management of the mutation configuration using functional options.
type progressioneventOption func(*ProgressionEventMutation)

// newProgressionEventMutation creates new mutation for the ProgressionEvent entity.
func newProgressionEventMutation(c config, op Op, opts ...progressioneventOption) *ProgressionEventMutation {
	m := &ProgressionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressionEventID sets the ID field of the mutation.
func withProgressionEventID(id int) progressioneventOption {
	return func(m *ProgressionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressionEvent
		)
		m.oldValue = func(ctx context.Context) (*ProgressionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressionEvent sets the old ProgressionEvent of the mutation.
func withProgressionEvent(node *ProgressionEvent) progressioneventOption {
	return func(m *ProgressionEventMutation) {
		m.oldValue = func(context.Context) (*ProgressionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ProgressionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ProgressionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ProgressionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ProgressionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ProgressionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ProgressionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ProgressionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ProgressionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetFactID sets the "fact_id" field.
func (m *ProgressionEventMutation) SetFactID(s string) {
	m.fact_id = &s
}

// FactID returns the value of the "fact_id" field in the mutation.
func (m *ProgressionEventMutation) FactID() (r string, exists bool) {
	v := m.fact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFactID returns the old "fact_id" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldFactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactID: %w", err)
	}
	return oldValue.FactID, nil
}

// ResetFactID resets all changes to the "fact_id" field.
func (m *ProgressionEventMutation) ResetFactID() {
	m.fact_id = nil
}

// SetFactSetID sets the "fact_set_id" field.
func (m *ProgressionEventMutation) SetFactSetID(s string) {
	m.fact_set_id = &s
}

// FactSetID returns the value of the "fact_set_id" field in the mutation.
func (m *ProgressionEventMutation) FactSetID() (r string, exists bool) {
	v := m.fact_set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFactSetID returns the old "fact_set_id" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldFactSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactSetID: %w", err)
	}
	return oldValue.FactSetID, nil
}

// ResetFactSetID resets all changes to the "fact_set_id" field.
func (m *ProgressionEventMutation) ResetFactSetID() {
	m.fact_set_id = nil
}

// SetFromStageID sets the "from_stage_id" field.
func (m *ProgressionEventMutation) SetFromStageID(s string) {
	m.from_stage_id = &s
}

// FromStageID returns the value of the "from_stage_id" field in the mutation.
func (m *ProgressionEventMutation) FromStageID() (r string, exists bool) {
	v := m.from_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStageID returns the old "from_stage_id" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldFromStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStageID: %w", err)
	}
	return oldValue.FromStageID, nil
}

// ResetFromStageID resets all changes to the "from_stage_id" field.
func (m *ProgressionEventMutation) ResetFromStageID() {
	m.from_stage_id = nil
}

// SetToStageID sets the "to_stage_id" field.
func (m *ProgressionEventMutation) SetToStageID(s string) {
	m.to_stage_id = &s
}

// ToStageID returns the value of the "to_stage_id" field in the mutation.
func (m *ProgressionEventMutation) ToStageID() (r string, exists bool) {
	v := m.to_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToStageID returns the old "to_stage_id" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldToStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStageID: %w", err)
	}
	return oldValue.ToStageID, nil
}

// ResetToStageID resets all changes to the "to_stage_id" field.
func (m *ProgressionEventMutation) ResetToStageID() {
	m.to_stage_id = nil
}

// SetAnswerType sets the "answer_type" field.
func (m *ProgressionEventMutation) SetAnswerType(s string) {
	m.answer_type = &s
}

// AnswerType returns the value of the "answer_type" field in the mutation.
func (m *ProgressionEventMutation) AnswerType() (r string, exists bool) {
	v := m.answer_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerType returns the old "answer_type" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldAnswerType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerType: %w", err)
	}
	return oldValue.AnswerType, nil
}

// ResetAnswerType resets all changes to the "answer_type" field.
func (m *ProgressionEventMutation) ResetAnswerType() {
	m.answer_type = nil
}

// SetConsecutiveCount sets the "consecutive_count" field.
func (m *ProgressionEventMutation) SetConsecutiveCount(i int) {
	m.consecutive_count = &i
	m.addconsecutive_count = nil
}

// ConsecutiveCount returns the value of the "consecutive_count" field in the mutation.
func (m *ProgressionEventMutation) ConsecutiveCount() (r int, exists bool) {
	v := m.consecutive_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveCount returns the old "consecutive_count" field's value of the ProgressionEvent entity.
// If the ProgressionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressionEventMutation) OldConsecutiveCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveCount: %w", err)
	}
	return oldValue.ConsecutiveCount, nil
}

// AddConsecutiveCount adds i to the "consecutive_count" field.
func (m *ProgressionEventMutation) AddConsecutiveCount(i int) {
	if m.addconsecutive_count != nil {
		*m.addconsecutive_count += i
	} else {
		m.addconsecutive_count = &i
	}
}

// AddedConsecutiveCount returns the value that was added to the "consecutive_count" field in this mutation.
func (m *ProgressionEventMutation) AddedConsecutiveCount() (r int, exists bool) {
	v := m.addconsecutive_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveCount resets all changes to the "consecutive_count" field.
func (m *ProgressionEventMutation) ResetConsecutiveCount() {
	m.consecutive_count = nil
	m.addconsecutive_count = nil
}

// Where appends a list predicates to the ProgressionEventMutation builder.
func (m *ProgressionEventMutation) Where(ps ...predicate.ProgressionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressionEvent).
func (m *ProgressionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, progressionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, progressionevent.FieldTimestamp)
	}
	if m.fact_id != nil {
		fields = append(fields, progressionevent.FieldFactID)
	}
	if m.fact_set_id != nil {
		fields = append(fields, progressionevent.FieldFactSetID)
	}
	if m.from_stage_id != nil {
		fields = append(fields, progressionevent.FieldFromStageID)
	}
	if m.to_stage_id != nil {
		fields = append(fields, progressionevent.FieldToStageID)
	}
	if m.answer_type != nil {
		fields = append(fields, progressionevent.FieldAnswerType)
	}
	if m.consecutive_count != nil {
		fields = append(fields, progressionevent.FieldConsecutiveCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressionevent.FieldSequence:
		return m.Sequence()
	case progressionevent.FieldTimestamp:
		return m.Timestamp()
	case progressionevent.FieldFactID:
		return m.FactID()
	case progressionevent.FieldFactSetID:
		return m.FactSetID()
	case progressionevent.FieldFromStageID:
		return m.FromStageID()
	case progressionevent.FieldToStageID:
		return m.ToStageID()
	case progressionevent.FieldAnswerType:
		return m.AnswerType()
	case progressionevent.FieldConsecutiveCount:
		return m.ConsecutiveCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressionevent.FieldSequence:
		return m.OldSequence(ctx)
	case progressionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case progressionevent.FieldFactID:
		return m.OldFactID(ctx)
	case progressionevent.FieldFactSetID:
		return m.OldFactSetID(ctx)
	case progressionevent.FieldFromStageID:
		return m.OldFromStageID(ctx)
	case progressionevent.FieldToStageID:
		return m.OldToStageID(ctx)
	case progressionevent.FieldAnswerType:
		return m.OldAnswerType(ctx)
	case progressionevent.FieldConsecutiveCount:
		return m.OldConsecutiveCount(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case progressionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case progressionevent.FieldFactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactID(v)
		return nil
	case progressionevent.FieldFactSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactSetID(v)
		return nil
	case progressionevent.FieldFromStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStageID(v)
		return nil
	case progressionevent.FieldToStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStageID(v)
		return nil
	case progressionevent.FieldAnswerType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerType(v)
		return nil
	case progressionevent.FieldConsecutiveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, progressionevent.FieldSequence)
	}
	if m.addconsecutive_count != nil {
		fields = append(fields, progressionevent.FieldConsecutiveCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressionevent.FieldSequence:
		return m.AddedSequence()
	case progressionevent.FieldConsecutiveCount:
		return m.AddedConsecutiveCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case progressionevent.FieldConsecutiveCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProgressionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressionEventMutation) ResetField(name string) error {
	switch name {
	case progressionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case progressionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case progressionevent.FieldFactID:
		m.ResetFactID()
		return nil
	case progressionevent.FieldFactSetID:
		m.ResetFactSetID()
		return nil
	case progressionevent.FieldFromStageID:
		m.ResetFromStageID()
		return nil
	case progressionevent.FieldToStageID:
		m.ResetToStageID()
		return nil
	case progressionevent.FieldAnswerType:
		m.ResetAnswerType()
		return nil
	case progressionevent.FieldConsecutiveCount:
		m.ResetConsecutiveCount()
		return nil
	}
	return fmt.Errorf("unknown ProgressionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressionEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner       *string
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearner sets the "learner" field.
func (m *SnapshotMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *SnapshotMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *SnapshotMutation) ResetLearner() {
	m.learner = nil
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(s string) {
	m.data = &s
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r string, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner != nil {
		fields = append(fields, snapshot.FieldLearner)
	}
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldLearner:
		return m.Learner()
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldLearner:
		return m.OldLearner(ctx)
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldLearner:
		m.ResetLearner()
		return nil
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
