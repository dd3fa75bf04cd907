// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stresswatch/ent/assessmentevent"
	"github.com/abhisek/stresswatch/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentEventUpdate) SetStudentID(v int) *AssessmentEventUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableStudentID(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *AssessmentEventUpdate) AddStudentID(v int) *AssessmentEventUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *AssessmentEventUpdate) SetFinalScore(v int) *AssessmentEventUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableFinalScore(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *AssessmentEventUpdate) AddFinalScore(v int) *AssessmentEventUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetFinalLevel sets the "final_level" field.
func (_u *AssessmentEventUpdate) SetFinalLevel(v string) *AssessmentEventUpdate {
	_u.mutation.SetFinalLevel(v)
	return _u
}

// SetNillableFinalLevel sets the "final_level" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableFinalLevel(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetFinalLevel(*v)
	}
	return _u
}

// SetRuleScore sets the "rule_score" field.
func (_u *AssessmentEventUpdate) SetRuleScore(v int) *AssessmentEventUpdate {
	_u.mutation.ResetRuleScore()
	_u.mutation.SetRuleScore(v)
	return _u
}

// SetNillableRuleScore sets the "rule_score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRuleScore(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRuleScore(*v)
	}
	return _u
}

// AddRuleScore adds value to the "rule_score" field.
func (_u *AssessmentEventUpdate) AddRuleScore(v int) *AssessmentEventUpdate {
	_u.mutation.AddRuleScore(v)
	return _u
}

// SetTriggeredCount sets the "triggered_count" field.
func (_u *AssessmentEventUpdate) SetTriggeredCount(v int) *AssessmentEventUpdate {
	_u.mutation.ResetTriggeredCount()
	_u.mutation.SetTriggeredCount(v)
	return _u
}

// SetNillableTriggeredCount sets the "triggered_count" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTriggeredCount(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTriggeredCount(*v)
	}
	return _u
}

// AddTriggeredCount adds value to the "triggered_count" field.
func (_u *AssessmentEventUpdate) AddTriggeredCount(v int) *AssessmentEventUpdate {
	_u.mutation.AddTriggeredCount(v)
	return _u
}

// SetMlUsed sets the "ml_used" field.
func (_u *AssessmentEventUpdate) SetMlUsed(v bool) *AssessmentEventUpdate {
	_u.mutation.SetMlUsed(v)
	return _u
}

// SetNillableMlUsed sets the "ml_used" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableMlUsed(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetMlUsed(*v)
	}
	return _u
}

// SetCollapseScore sets the "collapse_score" field.
func (_u *AssessmentEventUpdate) SetCollapseScore(v int) *AssessmentEventUpdate {
	_u.mutation.ResetCollapseScore()
	_u.mutation.SetCollapseScore(v)
	return _u
}

// SetNillableCollapseScore sets the "collapse_score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCollapseScore(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCollapseScore(*v)
	}
	return _u
}

// AddCollapseScore adds value to the "collapse_score" field.
func (_u *AssessmentEventUpdate) AddCollapseScore(v int) *AssessmentEventUpdate {
	_u.mutation.AddCollapseScore(v)
	return _u
}

// SetCollapseLevel sets the "collapse_level" field.
func (_u *AssessmentEventUpdate) SetCollapseLevel(v string) *AssessmentEventUpdate {
	_u.mutation.SetCollapseLevel(v)
	return _u
}

// SetNillableCollapseLevel sets the "collapse_level" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCollapseLevel(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCollapseLevel(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(assessmentevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(assessmentevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(assessmentevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalLevel(); ok {
		_spec.SetField(assessmentevent.FieldFinalLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleScore(); ok {
		_spec.SetField(assessmentevent.FieldRuleScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRuleScore(); ok {
		_spec.AddField(assessmentevent.FieldRuleScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggeredCount(); ok {
		_spec.SetField(assessmentevent.FieldTriggeredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriggeredCount(); ok {
		_spec.AddField(assessmentevent.FieldTriggeredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MlUsed(); ok {
		_spec.SetField(assessmentevent.FieldMlUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CollapseScore(); ok {
		_spec.SetField(assessmentevent.FieldCollapseScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCollapseScore(); ok {
		_spec.AddField(assessmentevent.FieldCollapseScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CollapseLevel(); ok {
		_spec.SetField(assessmentevent.FieldCollapseLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentEventUpdateOne) SetStudentID(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableStudentID(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *AssessmentEventUpdateOne) AddStudentID(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *AssessmentEventUpdateOne) SetFinalScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableFinalScore(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *AssessmentEventUpdateOne) AddFinalScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetFinalLevel sets the "final_level" field.
func (_u *AssessmentEventUpdateOne) SetFinalLevel(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetFinalLevel(v)
	return _u
}

// SetNillableFinalLevel sets the "final_level" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableFinalLevel(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetFinalLevel(*v)
	}
	return _u
}

// SetRuleScore sets the "rule_score" field.
func (_u *AssessmentEventUpdateOne) SetRuleScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetRuleScore()
	_u.mutation.SetRuleScore(v)
	return _u
}

// SetNillableRuleScore sets the "rule_score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRuleScore(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRuleScore(*v)
	}
	return _u
}

// AddRuleScore adds value to the "rule_score" field.
func (_u *AssessmentEventUpdateOne) AddRuleScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddRuleScore(v)
	return _u
}

// SetTriggeredCount sets the "triggered_count" field.
func (_u *AssessmentEventUpdateOne) SetTriggeredCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetTriggeredCount()
	_u.mutation.SetTriggeredCount(v)
	return _u
}

// SetNillableTriggeredCount sets the "triggered_count" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTriggeredCount(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTriggeredCount(*v)
	}
	return _u
}

// AddTriggeredCount adds value to the "triggered_count" field.
func (_u *AssessmentEventUpdateOne) AddTriggeredCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddTriggeredCount(v)
	return _u
}

// SetMlUsed sets the "ml_used" field.
func (_u *AssessmentEventUpdateOne) SetMlUsed(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetMlUsed(v)
	return _u
}

// SetNillableMlUsed sets the "ml_used" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableMlUsed(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetMlUsed(*v)
	}
	return _u
}

// SetCollapseScore sets the "collapse_score" field.
func (_u *AssessmentEventUpdateOne) SetCollapseScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetCollapseScore()
	_u.mutation.SetCollapseScore(v)
	return _u
}

// SetNillableCollapseScore sets the "collapse_score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCollapseScore(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCollapseScore(*v)
	}
	return _u
}

// AddCollapseScore adds value to the "collapse_score" field.
func (_u *AssessmentEventUpdateOne) AddCollapseScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddCollapseScore(v)
	return _u
}

// SetCollapseLevel sets the "collapse_level" field.
func (_u *AssessmentEventUpdateOne) SetCollapseLevel(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetCollapseLevel(v)
	return _u
}

// SetNillableCollapseLevel sets the "collapse_level" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCollapseLevel(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCollapseLevel(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(assessmentevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(assessmentevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(assessmentevent.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalLevel(); ok {
		_spec.SetField(assessmentevent.FieldFinalLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleScore(); ok {
		_spec.SetField(assessmentevent.FieldRuleScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRuleScore(); ok {
		_spec.AddField(assessmentevent.FieldRuleScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggeredCount(); ok {
		_spec.SetField(assessmentevent.FieldTriggeredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriggeredCount(); ok {
		_spec.AddField(assessmentevent.FieldTriggeredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MlUsed(); ok {
		_spec.SetField(assessmentevent.FieldMlUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CollapseScore(); ok {
		_spec.SetField(assessmentevent.FieldCollapseScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCollapseScore(); ok {
		_spec.AddField(assessmentevent.FieldCollapseScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CollapseLevel(); ok {
		_spec.SetField(assessmentevent.FieldCollapseLevel, field.TypeString, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
