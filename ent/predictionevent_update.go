// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/stresswatch/ent/predicate"
	"github.com/abhisek/stresswatch/ent/predictionevent"
)

// PredictionEventUpdate is the builder for updating PredictionEvent entities.
type PredictionEventUpdate struct {
	config
	hooks    []Hook
	mutation *PredictionEventMutation
}

// Where appends a list predicates to the PredictionEventUpdate builder.
func (_u *PredictionEventUpdate) Where(ps ...predicate.PredictionEvent) *PredictionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PredictionEventUpdate) SetProvider(v string) *PredictionEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableProvider(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *PredictionEventUpdate) SetModel(v string) *PredictionEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableModel(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPredictedClass sets the "predicted_class" field.
func (_u *PredictionEventUpdate) SetPredictedClass(v string) *PredictionEventUpdate {
	_u.mutation.SetPredictedClass(v)
	return _u
}

// SetNillablePredictedClass sets the "predicted_class" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillablePredictedClass(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetPredictedClass(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionEventUpdate) SetConfidence(v float64) *PredictionEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableConfidence(v *float64) *PredictionEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionEventUpdate) AddConfidence(v float64) *PredictionEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PredictionEventUpdate) SetInputTokens(v int) *PredictionEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableInputTokens(v *int) *PredictionEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PredictionEventUpdate) AddInputTokens(v int) *PredictionEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PredictionEventUpdate) SetOutputTokens(v int) *PredictionEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableOutputTokens(v *int) *PredictionEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PredictionEventUpdate) AddOutputTokens(v int) *PredictionEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PredictionEventUpdate) SetLatencyMs(v int64) *PredictionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableLatencyMs(v *int64) *PredictionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PredictionEventUpdate) AddLatencyMs(v int64) *PredictionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PredictionEventUpdate) SetSuccess(v bool) *PredictionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableSuccess(v *bool) *PredictionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PredictionEventUpdate) SetErrorMessage(v string) *PredictionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableErrorMessage(v *string) *PredictionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_u *PredictionEventUpdate) Mutation() *PredictionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PredictionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(predictionevent.Table, predictionevent.Columns, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(predictionevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(predictionevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedClass(); ok {
		_spec.SetField(predictionevent.FieldPredictedClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(predictionevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(predictionevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(predictionevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(predictionevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(predictionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(predictionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(predictionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(predictionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictionEventUpdateOne is the builder for updating a single PredictionEvent entity.
type PredictionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictionEventMutation
}

// SetProvider sets the "provider" field.
func (_u *PredictionEventUpdateOne) SetProvider(v string) *PredictionEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableProvider(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *PredictionEventUpdateOne) SetModel(v string) *PredictionEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableModel(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPredictedClass sets the "predicted_class" field.
func (_u *PredictionEventUpdateOne) SetPredictedClass(v string) *PredictionEventUpdateOne {
	_u.mutation.SetPredictedClass(v)
	return _u
}

// SetNillablePredictedClass sets the "predicted_class" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillablePredictedClass(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetPredictedClass(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionEventUpdateOne) SetConfidence(v float64) *PredictionEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableConfidence(v *float64) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionEventUpdateOne) AddConfidence(v float64) *PredictionEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PredictionEventUpdateOne) SetInputTokens(v int) *PredictionEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableInputTokens(v *int) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PredictionEventUpdateOne) AddInputTokens(v int) *PredictionEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PredictionEventUpdateOne) SetOutputTokens(v int) *PredictionEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableOutputTokens(v *int) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PredictionEventUpdateOne) AddOutputTokens(v int) *PredictionEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PredictionEventUpdateOne) SetLatencyMs(v int64) *PredictionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableLatencyMs(v *int64) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PredictionEventUpdateOne) AddLatencyMs(v int64) *PredictionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PredictionEventUpdateOne) SetSuccess(v bool) *PredictionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableSuccess(v *bool) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PredictionEventUpdateOne) SetErrorMessage(v string) *PredictionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableErrorMessage(v *string) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_u *PredictionEventUpdateOne) Mutation() *PredictionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PredictionEventUpdate builder.
func (_u *PredictionEventUpdateOne) Where(ps ...predicate.PredictionEvent) *PredictionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictionEventUpdateOne) Select(field string, fields ...string) *PredictionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredictionEvent entity.
func (_u *PredictionEventUpdateOne) Save(ctx context.Context) (*PredictionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionEventUpdateOne) SaveX(ctx context.Context) *PredictionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PredictionEventUpdateOne) sqlSave(ctx context.Context) (_node *PredictionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(predictionevent.Table, predictionevent.Columns, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredictionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predictionevent.FieldID)
		for _, f := range fields {
			if !predictionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predictionevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(predictionevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(predictionevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedClass(); ok {
		_spec.SetField(predictionevent.FieldPredictedClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(predictionevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(predictionevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(predictionevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(predictionevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(predictionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(predictionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(predictionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(predictionevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &PredictionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
