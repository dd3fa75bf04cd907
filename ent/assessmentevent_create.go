// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stresswatch/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AssessmentEventCreate) SetStudentID(v int) *AssessmentEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *AssessmentEventCreate) SetFinalScore(v int) *AssessmentEventCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetFinalLevel sets the "final_level" field.
func (_c *AssessmentEventCreate) SetFinalLevel(v string) *AssessmentEventCreate {
	_c.mutation.SetFinalLevel(v)
	return _c
}

// SetRuleScore sets the "rule_score" field.
func (_c *AssessmentEventCreate) SetRuleScore(v int) *AssessmentEventCreate {
	_c.mutation.SetRuleScore(v)
	return _c
}

// SetTriggeredCount sets the "triggered_count" field.
func (_c *AssessmentEventCreate) SetTriggeredCount(v int) *AssessmentEventCreate {
	_c.mutation.SetTriggeredCount(v)
	return _c
}

// SetNillableTriggeredCount sets the "triggered_count" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTriggeredCount(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetTriggeredCount(*v)
	}
	return _c
}

// SetMlUsed sets the "ml_used" field.
func (_c *AssessmentEventCreate) SetMlUsed(v bool) *AssessmentEventCreate {
	_c.mutation.SetMlUsed(v)
	return _c
}

// SetCollapseScore sets the "collapse_score" field.
func (_c *AssessmentEventCreate) SetCollapseScore(v int) *AssessmentEventCreate {
	_c.mutation.SetCollapseScore(v)
	return _c
}

// SetNillableCollapseScore sets the "collapse_score" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableCollapseScore(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetCollapseScore(*v)
	}
	return _c
}

// SetCollapseLevel sets the "collapse_level" field.
func (_c *AssessmentEventCreate) SetCollapseLevel(v string) *AssessmentEventCreate {
	_c.mutation.SetCollapseLevel(v)
	return _c
}

// SetNillableCollapseLevel sets the "collapse_level" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableCollapseLevel(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetCollapseLevel(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TriggeredCount(); !ok {
		v := assessmentevent.DefaultTriggeredCount
		_c.mutation.SetTriggeredCount(v)
	}
	if _, ok := _c.mutation.CollapseScore(); !ok {
		v := assessmentevent.DefaultCollapseScore
		_c.mutation.SetCollapseScore(v)
	}
	if _, ok := _c.mutation.CollapseLevel(); !ok {
		v := assessmentevent.DefaultCollapseLevel
		_c.mutation.SetCollapseLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AssessmentEvent.student_id"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "AssessmentEvent.final_score"`)}
	}
	if _, ok := _c.mutation.FinalLevel(); !ok {
		return &ValidationError{Name: "final_level", err: errors.New(`ent: missing required field "AssessmentEvent.final_level"`)}
	}
	if _, ok := _c.mutation.RuleScore(); !ok {
		return &ValidationError{Name: "rule_score", err: errors.New(`ent: missing required field "AssessmentEvent.rule_score"`)}
	}
	if _, ok := _c.mutation.TriggeredCount(); !ok {
		return &ValidationError{Name: "triggered_count", err: errors.New(`ent: missing required field "AssessmentEvent.triggered_count"`)}
	}
	if _, ok := _c.mutation.MlUsed(); !ok {
		return &ValidationError{Name: "ml_used", err: errors.New(`ent: missing required field "AssessmentEvent.ml_used"`)}
	}
	if _, ok := _c.mutation.CollapseScore(); !ok {
		return &ValidationError{Name: "collapse_score", err: errors.New(`ent: missing required field "AssessmentEvent.collapse_score"`)}
	}
	if _, ok := _c.mutation.CollapseLevel(); !ok {
		return &ValidationError{Name: "collapse_level", err: errors.New(`ent: missing required field "AssessmentEvent.collapse_level"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(assessmentevent.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(assessmentevent.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.FinalLevel(); ok {
		_spec.SetField(assessmentevent.FieldFinalLevel, field.TypeString, value)
		_node.FinalLevel = value
	}
	if value, ok := _c.mutation.RuleScore(); ok {
		_spec.SetField(assessmentevent.FieldRuleScore, field.TypeInt, value)
		_node.RuleScore = value
	}
	if value, ok := _c.mutation.TriggeredCount(); ok {
		_spec.SetField(assessmentevent.FieldTriggeredCount, field.TypeInt, value)
		_node.TriggeredCount = value
	}
	if value, ok := _c.mutation.MlUsed(); ok {
		_spec.SetField(assessmentevent.FieldMlUsed, field.TypeBool, value)
		_node.MlUsed = value
	}
	if value, ok := _c.mutation.CollapseScore(); ok {
		_spec.SetField(assessmentevent.FieldCollapseScore, field.TypeInt, value)
		_node.CollapseScore = value
	}
	if value, ok := _c.mutation.CollapseLevel(); ok {
		_spec.SetField(assessmentevent.FieldCollapseLevel, field.TypeString, value)
		_node.CollapseLevel = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
