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
	"github.com/abhisek/stresswatch/ent/assessmentevent"
	"github.com/abhisek/stresswatch/ent/ingestevent"
	"github.com/abhisek/stresswatch/ent/predicate"
	"github.com/abhisek/stresswatch/ent/predictionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentEvent = "AssessmentEvent"
	TypeIngestEvent     = "IngestEvent"
	TypePredictionEvent = "PredictionEvent"
)

// AssessmentEventMutation represents an operation that mutates the AssessmentEvent nodes in the graph.
type AssessmentEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	student_id         *int
	addstudent_id      *int
	final_score        *int
	addfinal_score     *int
	final_level        *string
	rule_score         *int
	addrule_score      *int
	triggered_count    *int
	addtriggered_count *int
	ml_used            *bool
	collapse_score     *int
	addcollapse_score  *int
	collapse_level     *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AssessmentEvent, error)
	predicates         []predicate.AssessmentEvent
}

var _ ent.Mutation = (*AssessmentEventMutation)(nil)

// assessmenteventOption allows management of the mutation configuration using functional options.
type assessmenteventOption func(*AssessmentEventMutation)

// newAssessmentEventMutation creates new mutation for the AssessmentEvent entity.
func newAssessmentEventMutation(c config, op Op, opts ...assessmenteventOption) *AssessmentEventMutation {
	m := &AssessmentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentEventID sets the ID field of the mutation.
func withAssessmentEventID(id int) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentEvent
		)
		m.oldValue = func(ctx context.Context) (*AssessmentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentEvent sets the old AssessmentEvent of the mutation.
func withAssessmentEvent(node *AssessmentEvent) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		m.oldValue = func(context.Context) (*AssessmentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessmentEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *AssessmentEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *AssessmentEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetStudentID sets the "student_id" field.
func (m *AssessmentEventMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AssessmentEventMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *AssessmentEventMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *AssessmentEventMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AssessmentEventMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetFinalScore sets the "final_score" field.
func (m *AssessmentEventMutation) SetFinalScore(i int) {
	m.final_score = &i
	m.addfinal_score = nil
}

// FinalScore returns the value of the "final_score" field in the mutation.
func (m *AssessmentEventMutation) FinalScore() (r int, exists bool) {
	v := m.final_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalScore returns the old "final_score" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldFinalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalScore: %w", err)
	}
	return oldValue.FinalScore, nil
}

// AddFinalScore adds i to the "final_score" field.
func (m *AssessmentEventMutation) AddFinalScore(i int) {
	if m.addfinal_score != nil {
		*m.addfinal_score += i
	} else {
		m.addfinal_score = &i
	}
}

// AddedFinalScore returns the value that was added to the "final_score" field in this mutation.
func (m *AssessmentEventMutation) AddedFinalScore() (r int, exists bool) {
	v := m.addfinal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalScore resets all changes to the "final_score" field.
func (m *AssessmentEventMutation) ResetFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
}

// SetFinalLevel sets the "final_level" field.
func (m *AssessmentEventMutation) SetFinalLevel(s string) {
	m.final_level = &s
}

// FinalLevel returns the value of the "final_level" field in the mutation.
func (m *AssessmentEventMutation) FinalLevel() (r string, exists bool) {
	v := m.final_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalLevel returns the old "final_level" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldFinalLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalLevel: %w", err)
	}
	return oldValue.FinalLevel, nil
}

// ResetFinalLevel resets all changes to the "final_level" field.
func (m *AssessmentEventMutation) ResetFinalLevel() {
	m.final_level = nil
}

// SetRuleScore sets the "rule_score" field.
func (m *AssessmentEventMutation) SetRuleScore(i int) {
	m.rule_score = &i
	m.addrule_score = nil
}

// RuleScore returns the value of the "rule_score" field in the mutation.
func (m *AssessmentEventMutation) RuleScore() (r int, exists bool) {
	v := m.rule_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleScore returns the old "rule_score" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldRuleScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleScore: %w", err)
	}
	return oldValue.RuleScore, nil
}

// AddRuleScore adds i to the "rule_score" field.
func (m *AssessmentEventMutation) AddRuleScore(i int) {
	if m.addrule_score != nil {
		*m.addrule_score += i
	} else {
		m.addrule_score = &i
	}
}

// AddedRuleScore returns the value that was added to the "rule_score" field in this mutation.
func (m *AssessmentEventMutation) AddedRuleScore() (r int, exists bool) {
	v := m.addrule_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRuleScore resets all changes to the "rule_score" field.
func (m *AssessmentEventMutation) ResetRuleScore() {
	m.rule_score = nil
	m.addrule_score = nil
}

// SetTriggeredCount sets the "triggered_count" field.
func (m *AssessmentEventMutation) SetTriggeredCount(i int) {
	m.triggered_count = &i
	m.addtriggered_count = nil
}

// TriggeredCount returns the value of the "triggered_count" field in the mutation.
func (m *AssessmentEventMutation) TriggeredCount() (r int, exists bool) {
	v := m.triggered_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredCount returns the old "triggered_count" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldTriggeredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredCount: %w", err)
	}
	return oldValue.TriggeredCount, nil
}

// AddTriggeredCount adds i to the "triggered_count" field.
func (m *AssessmentEventMutation) AddTriggeredCount(i int) {
	if m.addtriggered_count != nil {
		*m.addtriggered_count += i
	} else {
		m.addtriggered_count = &i
	}
}

// AddedTriggeredCount returns the value that was added to the "triggered_count" field in this mutation.
func (m *AssessmentEventMutation) AddedTriggeredCount() (r int, exists bool) {
	v := m.addtriggered_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTriggeredCount resets all changes to the "triggered_count" field.
func (m *AssessmentEventMutation) ResetTriggeredCount() {
	m.triggered_count = nil
	m.addtriggered_count = nil
}

// SetMlUsed sets the "ml_used" field.
func (m *AssessmentEventMutation) SetMlUsed(b bool) {
	m.ml_used = &b
}

// MlUsed returns the value of the "ml_used" field in the mutation.
func (m *AssessmentEventMutation) MlUsed() (r bool, exists bool) {
	v := m.ml_used
	if v == nil {
		return
	}
	return *v, true
}

// OldMlUsed returns the old "ml_used" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldMlUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlUsed: %w", err)
	}
	return oldValue.MlUsed, nil
}

// ResetMlUsed resets all changes to the "ml_used" field.
func (m *AssessmentEventMutation) ResetMlUsed() {
	m.ml_used = nil
}

// SetCollapseScore sets the "collapse_score" field.
func (m *AssessmentEventMutation) SetCollapseScore(i int) {
	m.collapse_score = &i
	m.addcollapse_score = nil
}

// CollapseScore returns the value of the "collapse_score" field in the mutation.
func (m *AssessmentEventMutation) CollapseScore() (r int, exists bool) {
	v := m.collapse_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCollapseScore returns the old "collapse_score" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldCollapseScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollapseScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollapseScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollapseScore: %w", err)
	}
	return oldValue.CollapseScore, nil
}

// AddCollapseScore adds i to the "collapse_score" field.
func (m *AssessmentEventMutation) AddCollapseScore(i int) {
	if m.addcollapse_score != nil {
		*m.addcollapse_score += i
	} else {
		m.addcollapse_score = &i
	}
}

// AddedCollapseScore returns the value that was added to the "collapse_score" field in this mutation.
func (m *AssessmentEventMutation) AddedCollapseScore() (r int, exists bool) {
	v := m.addcollapse_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCollapseScore resets all changes to the "collapse_score" field.
func (m *AssessmentEventMutation) ResetCollapseScore() {
	m.collapse_score = nil
	m.addcollapse_score = nil
}

// SetCollapseLevel sets the "collapse_level" field.
func (m *AssessmentEventMutation) SetCollapseLevel(s string) {
	m.collapse_level = &s
}

// CollapseLevel returns the value of the "collapse_level" field in the mutation.
func (m *AssessmentEventMutation) CollapseLevel() (r string, exists bool) {
	v := m.collapse_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCollapseLevel returns the old "collapse_level" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldCollapseLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollapseLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollapseLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollapseLevel: %w", err)
	}
	return oldValue.CollapseLevel, nil
}

// ResetCollapseLevel resets all changes to the "collapse_level" field.
func (m *AssessmentEventMutation) ResetCollapseLevel() {
	m.collapse_level = nil
}

// Where appends a list predicates to the AssessmentEventMutation builder.
func (m *AssessmentEventMutation) Where(ps ...predicate.AssessmentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentEvent).
func (m *AssessmentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessmentevent.FieldTimestamp)
	}
	if m.student_id != nil {
		fields = append(fields, assessmentevent.FieldStudentID)
	}
	if m.final_score != nil {
		fields = append(fields, assessmentevent.FieldFinalScore)
	}
	if m.final_level != nil {
		fields = append(fields, assessmentevent.FieldFinalLevel)
	}
	if m.rule_score != nil {
		fields = append(fields, assessmentevent.FieldRuleScore)
	}
	if m.triggered_count != nil {
		fields = append(fields, assessmentevent.FieldTriggeredCount)
	}
	if m.ml_used != nil {
		fields = append(fields, assessmentevent.FieldMlUsed)
	}
	if m.collapse_score != nil {
		fields = append(fields, assessmentevent.FieldCollapseScore)
	}
	if m.collapse_level != nil {
		fields = append(fields, assessmentevent.FieldCollapseLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.Sequence()
	case assessmentevent.FieldTimestamp:
		return m.Timestamp()
	case assessmentevent.FieldStudentID:
		return m.StudentID()
	case assessmentevent.FieldFinalScore:
		return m.FinalScore()
	case assessmentevent.FieldFinalLevel:
		return m.FinalLevel()
	case assessmentevent.FieldRuleScore:
		return m.RuleScore()
	case assessmentevent.FieldTriggeredCount:
		return m.TriggeredCount()
	case assessmentevent.FieldMlUsed:
		return m.MlUsed()
	case assessmentevent.FieldCollapseScore:
		return m.CollapseScore()
	case assessmentevent.FieldCollapseLevel:
		return m.CollapseLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.OldSequence(ctx)
	case assessmentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessmentevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case assessmentevent.FieldFinalScore:
		return m.OldFinalScore(ctx)
	case assessmentevent.FieldFinalLevel:
		return m.OldFinalLevel(ctx)
	case assessmentevent.FieldRuleScore:
		return m.OldRuleScore(ctx)
	case assessmentevent.FieldTriggeredCount:
		return m.OldTriggeredCount(ctx)
	case assessmentevent.FieldMlUsed:
		return m.OldMlUsed(ctx)
	case assessmentevent.FieldCollapseScore:
		return m.OldCollapseScore(ctx)
	case assessmentevent.FieldCollapseLevel:
		return m.OldCollapseLevel(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessmentevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessmentevent.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case assessmentevent.FieldFinalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalScore(v)
		return nil
	case assessmentevent.FieldFinalLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalLevel(v)
		return nil
	case assessmentevent.FieldRuleScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleScore(v)
		return nil
	case assessmentevent.FieldTriggeredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredCount(v)
		return nil
	case assessmentevent.FieldMlUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlUsed(v)
		return nil
	case assessmentevent.FieldCollapseScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollapseScore(v)
		return nil
	case assessmentevent.FieldCollapseLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollapseLevel(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.addstudent_id != nil {
		fields = append(fields, assessmentevent.FieldStudentID)
	}
	if m.addfinal_score != nil {
		fields = append(fields, assessmentevent.FieldFinalScore)
	}
	if m.addrule_score != nil {
		fields = append(fields, assessmentevent.FieldRuleScore)
	}
	if m.addtriggered_count != nil {
		fields = append(fields, assessmentevent.FieldTriggeredCount)
	}
	if m.addcollapse_score != nil {
		fields = append(fields, assessmentevent.FieldCollapseScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.AddedSequence()
	case assessmentevent.FieldStudentID:
		return m.AddedStudentID()
	case assessmentevent.FieldFinalScore:
		return m.AddedFinalScore()
	case assessmentevent.FieldRuleScore:
		return m.AddedRuleScore()
	case assessmentevent.FieldTriggeredCount:
		return m.AddedTriggeredCount()
	case assessmentevent.FieldCollapseScore:
		return m.AddedCollapseScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessmentevent.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case assessmentevent.FieldFinalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalScore(v)
		return nil
	case assessmentevent.FieldRuleScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRuleScore(v)
		return nil
	case assessmentevent.FieldTriggeredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriggeredCount(v)
		return nil
	case assessmentevent.FieldCollapseScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCollapseScore(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssessmentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ResetField(name string) error {
	switch name {
	case assessmentevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assessmentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessmentevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case assessmentevent.FieldFinalScore:
		m.ResetFinalScore()
		return nil
	case assessmentevent.FieldFinalLevel:
		m.ResetFinalLevel()
		return nil
	case assessmentevent.FieldRuleScore:
		m.ResetRuleScore()
		return nil
	case assessmentevent.FieldTriggeredCount:
		m.ResetTriggeredCount()
		return nil
	case assessmentevent.FieldMlUsed:
		m.ResetMlUsed()
		return nil
	case assessmentevent.FieldCollapseScore:
		m.ResetCollapseScore()
		return nil
	case assessmentevent.FieldCollapseLevel:
		m.ResetCollapseLevel()
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent edge %s", name)
}

// IngestEventMutation represents an operation that mutates the IngestEvent nodes in the graph.
type IngestEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	event_id       *string
	student_id     *int
	addstudent_id  *int
	kind           *string
	detail         *string
	risk_before    *int
	addrisk_before *int
	risk_after     *int
	addrisk_after  *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*IngestEvent, error)
	predicates     []predicate.IngestEvent
}

var _ ent.Mutation = (*IngestEventMutation)(nil)

// ingesteventOption allows management of the mutation configuration using functional options.
type ingesteventOption func(*IngestEventMutation)

// newIngestEventMutation creates new mutation for the IngestEvent entity.
func newIngestEventMutation(c config, op Op, opts ...ingesteventOption) *IngestEventMutation {
	m := &IngestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestEventID sets the ID field of the mutation.
func withIngestEventID(id int) ingesteventOption {
	return func(m *IngestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestEvent
		)
		m.oldValue = func(ctx context.Context) (*IngestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestEvent sets the old IngestEvent of the mutation.
func withIngestEvent(node *IngestEvent) ingesteventOption {
	return func(m *IngestEventMutation) {
		m.oldValue = func(context.Context) (*IngestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *IngestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *IngestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *IngestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *IngestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *IngestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *IngestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *IngestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *IngestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventID sets the "event_id" field.
func (m *IngestEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *IngestEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *IngestEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *IngestEventMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *IngestEventMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *IngestEventMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *IngestEventMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *IngestEventMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetKind sets the "kind" field.
func (m *IngestEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *IngestEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *IngestEventMutation) ResetKind() {
	m.kind = nil
}

// SetDetail sets the "detail" field.
func (m *IngestEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *IngestEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ResetDetail resets all changes to the "detail" field.
func (m *IngestEventMutation) ResetDetail() {
	m.detail = nil
}

// SetRiskBefore sets the "risk_before" field.
func (m *IngestEventMutation) SetRiskBefore(i int) {
	m.risk_before = &i
	m.addrisk_before = nil
}

// RiskBefore returns the value of the "risk_before" field in the mutation.
func (m *IngestEventMutation) RiskBefore() (r int, exists bool) {
	v := m.risk_before
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskBefore returns the old "risk_before" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldRiskBefore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskBefore: %w", err)
	}
	return oldValue.RiskBefore, nil
}

// AddRiskBefore adds i to the "risk_before" field.
func (m *IngestEventMutation) AddRiskBefore(i int) {
	if m.addrisk_before != nil {
		*m.addrisk_before += i
	} else {
		m.addrisk_before = &i
	}
}

// AddedRiskBefore returns the value that was added to the "risk_before" field in this mutation.
func (m *IngestEventMutation) AddedRiskBefore() (r int, exists bool) {
	v := m.addrisk_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskBefore resets all changes to the "risk_before" field.
func (m *IngestEventMutation) ResetRiskBefore() {
	m.risk_before = nil
	m.addrisk_before = nil
}

// SetRiskAfter sets the "risk_after" field.
func (m *IngestEventMutation) SetRiskAfter(i int) {
	m.risk_after = &i
	m.addrisk_after = nil
}

// RiskAfter returns the value of the "risk_after" field in the mutation.
func (m *IngestEventMutation) RiskAfter() (r int, exists bool) {
	v := m.risk_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskAfter returns the old "risk_after" field's value of the IngestEvent entity.
// If the IngestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestEventMutation) OldRiskAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskAfter: %w", err)
	}
	return oldValue.RiskAfter, nil
}

// AddRiskAfter adds i to the "risk_after" field.
func (m *IngestEventMutation) AddRiskAfter(i int) {
	if m.addrisk_after != nil {
		*m.addrisk_after += i
	} else {
		m.addrisk_after = &i
	}
}

// AddedRiskAfter returns the value that was added to the "risk_after" field in this mutation.
func (m *IngestEventMutation) AddedRiskAfter() (r int, exists bool) {
	v := m.addrisk_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskAfter resets all changes to the "risk_after" field.
func (m *IngestEventMutation) ResetRiskAfter() {
	m.risk_after = nil
	m.addrisk_after = nil
}

// Where appends a list predicates to the IngestEventMutation builder.
func (m *IngestEventMutation) Where(ps ...predicate.IngestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestEvent).
func (m *IngestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, ingestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, ingestevent.FieldTimestamp)
	}
	if m.event_id != nil {
		fields = append(fields, ingestevent.FieldEventID)
	}
	if m.student_id != nil {
		fields = append(fields, ingestevent.FieldStudentID)
	}
	if m.kind != nil {
		fields = append(fields, ingestevent.FieldKind)
	}
	if m.detail != nil {
		fields = append(fields, ingestevent.FieldDetail)
	}
	if m.risk_before != nil {
		fields = append(fields, ingestevent.FieldRiskBefore)
	}
	if m.risk_after != nil {
		fields = append(fields, ingestevent.FieldRiskAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestevent.FieldSequence:
		return m.Sequence()
	case ingestevent.FieldTimestamp:
		return m.Timestamp()
	case ingestevent.FieldEventID:
		return m.EventID()
	case ingestevent.FieldStudentID:
		return m.StudentID()
	case ingestevent.FieldKind:
		return m.Kind()
	case ingestevent.FieldDetail:
		return m.Detail()
	case ingestevent.FieldRiskBefore:
		return m.RiskBefore()
	case ingestevent.FieldRiskAfter:
		return m.RiskAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestevent.FieldSequence:
		return m.OldSequence(ctx)
	case ingestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case ingestevent.FieldEventID:
		return m.OldEventID(ctx)
	case ingestevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case ingestevent.FieldKind:
		return m.OldKind(ctx)
	case ingestevent.FieldDetail:
		return m.OldDetail(ctx)
	case ingestevent.FieldRiskBefore:
		return m.OldRiskBefore(ctx)
	case ingestevent.FieldRiskAfter:
		return m.OldRiskAfter(ctx)
	}
	return nil, fmt.Errorf("unknown IngestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case ingestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case ingestevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case ingestevent.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case ingestevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case ingestevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case ingestevent.FieldRiskBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskBefore(v)
		return nil
	case ingestevent.FieldRiskAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskAfter(v)
		return nil
	}
	return fmt.Errorf("unknown IngestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, ingestevent.FieldSequence)
	}
	if m.addstudent_id != nil {
		fields = append(fields, ingestevent.FieldStudentID)
	}
	if m.addrisk_before != nil {
		fields = append(fields, ingestevent.FieldRiskBefore)
	}
	if m.addrisk_after != nil {
		fields = append(fields, ingestevent.FieldRiskAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestevent.FieldSequence:
		return m.AddedSequence()
	case ingestevent.FieldStudentID:
		return m.AddedStudentID()
	case ingestevent.FieldRiskBefore:
		return m.AddedRiskBefore()
	case ingestevent.FieldRiskAfter:
		return m.AddedRiskAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case ingestevent.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case ingestevent.FieldRiskBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskBefore(v)
		return nil
	case ingestevent.FieldRiskAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskAfter(v)
		return nil
	}
	return fmt.Errorf("unknown IngestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IngestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestEventMutation) ResetField(name string) error {
	switch name {
	case ingestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case ingestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case ingestevent.FieldEventID:
		m.ResetEventID()
		return nil
	case ingestevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case ingestevent.FieldKind:
		m.ResetKind()
		return nil
	case ingestevent.FieldDetail:
		m.ResetDetail()
		return nil
	case ingestevent.FieldRiskBefore:
		m.ResetRiskBefore()
		return nil
	case ingestevent.FieldRiskAfter:
		m.ResetRiskAfter()
		return nil
	}
	return fmt.Errorf("unknown IngestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestEvent edge %s", name)
}

// PredictionEventMutation represents an operation that mutates the PredictionEvent nodes in the graph.
type PredictionEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	predicted_class  *string
	confidence       *float64
	addconfidence    *float64
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PredictionEvent, error)
	predicates       []predicate.PredictionEvent
}

var _ ent.Mutation = (*PredictionEventMutation)(nil)

// predictioneventOption allows management of the mutation configuration using functional options.
type predictioneventOption func(*PredictionEventMutation)

// newPredictionEventMutation creates new mutation for the PredictionEvent entity.
func newPredictionEventMutation(c config, op Op, opts ...predictioneventOption) *PredictionEventMutation {
	m := &PredictionEventMutation{
		config:        c,
		op:            op,
		typ:           TypePredictionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPredictionEventID sets the ID field of the mutation.
func withPredictionEventID(id int) predictioneventOption {
	return func(m *PredictionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PredictionEvent
		)
		m.oldValue = func(ctx context.Context) (*PredictionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PredictionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPredictionEvent sets the old PredictionEvent of the mutation.
func withPredictionEvent(node *PredictionEvent) predictioneventOption {
	return func(m *PredictionEventMutation) {
		m.oldValue = func(context.Context) (*PredictionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PredictionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PredictionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PredictionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PredictionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PredictionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PredictionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PredictionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *PredictionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PredictionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PredictionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PredictionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PredictionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *PredictionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *PredictionEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *PredictionEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *PredictionEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *PredictionEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *PredictionEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *PredictionEventMutation) ResetModel() {
	m.model = nil
}

// SetPredictedClass sets the "predicted_class" field.
func (m *PredictionEventMutation) SetPredictedClass(s string) {
	m.predicted_class = &s
}

// PredictedClass returns the value of the "predicted_class" field in the mutation.
func (m *PredictionEventMutation) PredictedClass() (r string, exists bool) {
	v := m.predicted_class
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedClass returns the old "predicted_class" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldPredictedClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedClass: %w", err)
	}
	return oldValue.PredictedClass, nil
}

// ResetPredictedClass resets all changes to the "predicted_class" field.
func (m *PredictionEventMutation) ResetPredictedClass() {
	m.predicted_class = nil
}

// SetConfidence sets the "confidence" field.
func (m *PredictionEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PredictionEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PredictionEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PredictionEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PredictionEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *PredictionEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *PredictionEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *PredictionEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *PredictionEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *PredictionEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *PredictionEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *PredictionEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *PredictionEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *PredictionEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *PredictionEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *PredictionEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *PredictionEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *PredictionEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *PredictionEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *PredictionEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *PredictionEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *PredictionEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *PredictionEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *PredictionEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PredictionEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PredictionEvent entity.
// If the PredictionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PredictionEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the PredictionEventMutation builder.
func (m *PredictionEventMutation) Where(ps ...predicate.PredictionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PredictionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PredictionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PredictionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PredictionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PredictionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PredictionEvent).
func (m *PredictionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PredictionEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, predictionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, predictionevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, predictionevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, predictionevent.FieldModel)
	}
	if m.predicted_class != nil {
		fields = append(fields, predictionevent.FieldPredictedClass)
	}
	if m.confidence != nil {
		fields = append(fields, predictionevent.FieldConfidence)
	}
	if m.input_tokens != nil {
		fields = append(fields, predictionevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, predictionevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, predictionevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, predictionevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, predictionevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PredictionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case predictionevent.FieldSequence:
		return m.Sequence()
	case predictionevent.FieldTimestamp:
		return m.Timestamp()
	case predictionevent.FieldProvider:
		return m.Provider()
	case predictionevent.FieldModel:
		return m.Model()
	case predictionevent.FieldPredictedClass:
		return m.PredictedClass()
	case predictionevent.FieldConfidence:
		return m.Confidence()
	case predictionevent.FieldInputTokens:
		return m.InputTokens()
	case predictionevent.FieldOutputTokens:
		return m.OutputTokens()
	case predictionevent.FieldLatencyMs:
		return m.LatencyMs()
	case predictionevent.FieldSuccess:
		return m.Success()
	case predictionevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PredictionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case predictionevent.FieldSequence:
		return m.OldSequence(ctx)
	case predictionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case predictionevent.FieldProvider:
		return m.OldProvider(ctx)
	case predictionevent.FieldModel:
		return m.OldModel(ctx)
	case predictionevent.FieldPredictedClass:
		return m.OldPredictedClass(ctx)
	case predictionevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case predictionevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case predictionevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case predictionevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case predictionevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case predictionevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown PredictionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case predictionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case predictionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case predictionevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case predictionevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case predictionevent.FieldPredictedClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedClass(v)
		return nil
	case predictionevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case predictionevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case predictionevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case predictionevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case predictionevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case predictionevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown PredictionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PredictionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, predictionevent.FieldSequence)
	}
	if m.addconfidence != nil {
		fields = append(fields, predictionevent.FieldConfidence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, predictionevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, predictionevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, predictionevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PredictionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case predictionevent.FieldSequence:
		return m.AddedSequence()
	case predictionevent.FieldConfidence:
		return m.AddedConfidence()
	case predictionevent.FieldInputTokens:
		return m.AddedInputTokens()
	case predictionevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case predictionevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case predictionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case predictionevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case predictionevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case predictionevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case predictionevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown PredictionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PredictionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PredictionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PredictionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PredictionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PredictionEventMutation) ResetField(name string) error {
	switch name {
	case predictionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case predictionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case predictionevent.FieldProvider:
		m.ResetProvider()
		return nil
	case predictionevent.FieldModel:
		m.ResetModel()
		return nil
	case predictionevent.FieldPredictedClass:
		m.ResetPredictedClass()
		return nil
	case predictionevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case predictionevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case predictionevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case predictionevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case predictionevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case predictionevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PredictionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PredictionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PredictionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PredictionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PredictionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PredictionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PredictionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PredictionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PredictionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PredictionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PredictionEvent edge %s", name)
}
