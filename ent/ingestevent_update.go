// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stresswatch/ent/ingestevent"
	"github.com/abhisek/stresswatch/ent/predicate"
)

// IngestEventUpdate is the builder for updating IngestEvent entities.
type IngestEventUpdate struct {
	config
	hooks    []Hook
	mutation *IngestEventMutation
}

// Where appends a list predicates to the IngestEventUpdate builder.
func (_u *IngestEventUpdate) Where(ps ...predicate.IngestEvent) *IngestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *IngestEventUpdate) SetEventID(v string) *IngestEventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *IngestEventUpdate) SetNillableEventID(v *string) *IngestEventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *IngestEventUpdate) SetStudentID(v int) *IngestEventUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *IngestEventUpdate) SetNillableStudentID(v *int) *IngestEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *IngestEventUpdate) AddStudentID(v int) *IngestEventUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *IngestEventUpdate) SetKind(v string) *IngestEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *IngestEventUpdate) SetNillableKind(v *string) *IngestEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *IngestEventUpdate) SetDetail(v string) *IngestEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *IngestEventUpdate) SetNillableDetail(v *string) *IngestEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetRiskBefore sets the "risk_before" field.
func (_u *IngestEventUpdate) SetRiskBefore(v int) *IngestEventUpdate {
	_u.mutation.ResetRiskBefore()
	_u.mutation.SetRiskBefore(v)
	return _u
}

// SetNillableRiskBefore sets the "risk_before" field if the given value is not nil.
func (_u *IngestEventUpdate) SetNillableRiskBefore(v *int) *IngestEventUpdate {
	if v != nil {
		_u.SetRiskBefore(*v)
	}
	return _u
}

// AddRiskBefore adds value to the "risk_before" field.
func (_u *IngestEventUpdate) AddRiskBefore(v int) *IngestEventUpdate {
	_u.mutation.AddRiskBefore(v)
	return _u
}

// SetRiskAfter sets the "risk_after" field.
func (_u *IngestEventUpdate) SetRiskAfter(v int) *IngestEventUpdate {
	_u.mutation.ResetRiskAfter()
	_u.mutation.SetRiskAfter(v)
	return _u
}

// SetNillableRiskAfter sets the "risk_after" field if the given value is not nil.
func (_u *IngestEventUpdate) SetNillableRiskAfter(v *int) *IngestEventUpdate {
	if v != nil {
		_u.SetRiskAfter(*v)
	}
	return _u
}

// AddRiskAfter adds value to the "risk_after" field.
func (_u *IngestEventUpdate) AddRiskAfter(v int) *IngestEventUpdate {
	_u.mutation.AddRiskAfter(v)
	return _u
}

// Mutation returns the IngestEventMutation object of the builder.
func (_u *IngestEventUpdate) Mutation() *IngestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestevent.Table, ingestevent.Columns, sqlgraph.NewFieldSpec(ingestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(ingestevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(ingestevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(ingestevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ingestevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(ingestevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskBefore(); ok {
		_spec.SetField(ingestevent.FieldRiskBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskBefore(); ok {
		_spec.AddField(ingestevent.FieldRiskBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskAfter(); ok {
		_spec.SetField(ingestevent.FieldRiskAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskAfter(); ok {
		_spec.AddField(ingestevent.FieldRiskAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestEventUpdateOne is the builder for updating a single IngestEvent entity.
type IngestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestEventMutation
}

// SetEventID sets the "event_id" field.
func (_u *IngestEventUpdateOne) SetEventID(v string) *IngestEventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *IngestEventUpdateOne) SetNillableEventID(v *string) *IngestEventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *IngestEventUpdateOne) SetStudentID(v int) *IngestEventUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *IngestEventUpdateOne) SetNillableStudentID(v *int) *IngestEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *IngestEventUpdateOne) AddStudentID(v int) *IngestEventUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *IngestEventUpdateOne) SetKind(v string) *IngestEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *IngestEventUpdateOne) SetNillableKind(v *string) *IngestEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *IngestEventUpdateOne) SetDetail(v string) *IngestEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *IngestEventUpdateOne) SetNillableDetail(v *string) *IngestEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetRiskBefore sets the "risk_before" field.
func (_u *IngestEventUpdateOne) SetRiskBefore(v int) *IngestEventUpdateOne {
	_u.mutation.ResetRiskBefore()
	_u.mutation.SetRiskBefore(v)
	return _u
}

// SetNillableRiskBefore sets the "risk_before" field if the given value is not nil.
func (_u *IngestEventUpdateOne) SetNillableRiskBefore(v *int) *IngestEventUpdateOne {
	if v != nil {
		_u.SetRiskBefore(*v)
	}
	return _u
}

// AddRiskBefore adds value to the "risk_before" field.
func (_u *IngestEventUpdateOne) AddRiskBefore(v int) *IngestEventUpdateOne {
	_u.mutation.AddRiskBefore(v)
	return _u
}

// SetRiskAfter sets the "risk_after" field.
func (_u *IngestEventUpdateOne) SetRiskAfter(v int) *IngestEventUpdateOne {
	_u.mutation.ResetRiskAfter()
	_u.mutation.SetRiskAfter(v)
	return _u
}

// SetNillableRiskAfter sets the "risk_after" field if the given value is not nil.
func (_u *IngestEventUpdateOne) SetNillableRiskAfter(v *int) *IngestEventUpdateOne {
	if v != nil {
		_u.SetRiskAfter(*v)
	}
	return _u
}

// AddRiskAfter adds value to the "risk_after" field.
func (_u *IngestEventUpdateOne) AddRiskAfter(v int) *IngestEventUpdateOne {
	_u.mutation.AddRiskAfter(v)
	return _u
}

// Mutation returns the IngestEventMutation object of the builder.
func (_u *IngestEventUpdateOne) Mutation() *IngestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestEventUpdate builder.
func (_u *IngestEventUpdateOne) Where(ps ...predicate.IngestEvent) *IngestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestEventUpdateOne) Select(field string, fields ...string) *IngestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestEvent entity.
func (_u *IngestEventUpdateOne) Save(ctx context.Context) (*IngestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestEventUpdateOne) SaveX(ctx context.Context) *IngestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestEventUpdateOne) sqlSave(ctx context.Context) (_node *IngestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestevent.Table, ingestevent.Columns, sqlgraph.NewFieldSpec(ingestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestevent.FieldID)
		for _, f := range fields {
			if !ingestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(ingestevent.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(ingestevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(ingestevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ingestevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(ingestevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskBefore(); ok {
		_spec.SetField(ingestevent.FieldRiskBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskBefore(); ok {
		_spec.AddField(ingestevent.FieldRiskBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskAfter(); ok {
		_spec.SetField(ingestevent.FieldRiskAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskAfter(); ok {
		_spec.AddField(ingestevent.FieldRiskAfter, field.TypeInt, value)
	}
	_node = &IngestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
