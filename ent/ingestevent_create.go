// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stresswatch/ent/ingestevent"
)

// IngestEventCreate is the builder for creating a IngestEvent entity.
type IngestEventCreate struct {
	config
	mutation *IngestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *IngestEventCreate) SetSequence(v int64) *IngestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *IngestEventCreate) SetTimestamp(v time.Time) *IngestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *IngestEventCreate) SetNillableTimestamp(v *time.Time) *IngestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *IngestEventCreate) SetEventID(v string) *IngestEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *IngestEventCreate) SetStudentID(v int) *IngestEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *IngestEventCreate) SetKind(v string) *IngestEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *IngestEventCreate) SetDetail(v string) *IngestEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *IngestEventCreate) SetNillableDetail(v *string) *IngestEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetRiskBefore sets the "risk_before" field.
func (_c *IngestEventCreate) SetRiskBefore(v int) *IngestEventCreate {
	_c.mutation.SetRiskBefore(v)
	return _c
}

// SetRiskAfter sets the "risk_after" field.
func (_c *IngestEventCreate) SetRiskAfter(v int) *IngestEventCreate {
	_c.mutation.SetRiskAfter(v)
	return _c
}

// Mutation returns the IngestEventMutation object of the builder.
func (_c *IngestEventCreate) Mutation() *IngestEventMutation {
	return _c.mutation
}

// Save creates the IngestEvent in the database.
func (_c *IngestEventCreate) Save(ctx context.Context) (*IngestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestEventCreate) SaveX(ctx context.Context) *IngestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := ingestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := ingestevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "IngestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "IngestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "IngestEvent.event_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "IngestEvent.student_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "IngestEvent.kind"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "IngestEvent.detail"`)}
	}
	if _, ok := _c.mutation.RiskBefore(); !ok {
		return &ValidationError{Name: "risk_before", err: errors.New(`ent: missing required field "IngestEvent.risk_before"`)}
	}
	if _, ok := _c.mutation.RiskAfter(); !ok {
		return &ValidationError{Name: "risk_after", err: errors.New(`ent: missing required field "IngestEvent.risk_after"`)}
	}
	return nil
}

func (_c *IngestEventCreate) sqlSave(ctx context.Context) (*IngestEvent, error) {
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

func (_c *IngestEventCreate) createSpec() (*IngestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestevent.Table, sqlgraph.NewFieldSpec(ingestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(ingestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(ingestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(ingestevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(ingestevent.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(ingestevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(ingestevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.RiskBefore(); ok {
		_spec.SetField(ingestevent.FieldRiskBefore, field.TypeInt, value)
		_node.RiskBefore = value
	}
	if value, ok := _c.mutation.RiskAfter(); ok {
		_spec.SetField(ingestevent.FieldRiskAfter, field.TypeInt, value)
		_node.RiskAfter = value
	}
	return _node, _spec
}

// IngestEventCreateBulk is the builder for creating many IngestEvent entities in bulk.
type IngestEventCreateBulk struct {
	config
	err      error
	builders []*IngestEventCreate
}

// Save creates the IngestEvent entities in the database.
func (_c *IngestEventCreateBulk) Save(ctx context.Context) ([]*IngestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestEventMutation)
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
func (_c *IngestEventCreateBulk) SaveX(ctx context.Context) []*IngestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
