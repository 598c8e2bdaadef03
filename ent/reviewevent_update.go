// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/predicate"
	"github.com/abhisek/lectio/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFactID sets the "fact_id" field.
func (_u *ReviewEventUpdate) SetFactID(v string) *ReviewEventUpdate {
	_u.mutation.SetFactID(v)
	return _u
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableFactID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetFactID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdate) SetRating(v int) *ReviewEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRating(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewEventUpdate) AddRating(v int) *ReviewEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewEventUpdate) SetStability(v float64) *ReviewEventUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStability(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewEventUpdate) AddStability(v float64) *ReviewEventUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewEventUpdate) SetDifficulty(v float64) *ReviewEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDifficulty(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewEventUpdate) AddDifficulty(v float64) *ReviewEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetRetrievability sets the "retrievability" field.
func (_u *ReviewEventUpdate) SetRetrievability(v float64) *ReviewEventUpdate {
	_u.mutation.ResetRetrievability()
	_u.mutation.SetRetrievability(v)
	return _u
}

// SetNillableRetrievability sets the "retrievability" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRetrievability(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetRetrievability(*v)
	}
	return _u
}

// AddRetrievability adds value to the "retrievability" field.
func (_u *ReviewEventUpdate) AddRetrievability(v float64) *ReviewEventUpdate {
	_u.mutation.AddRetrievability(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdate) SetIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalDays(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdate) AddIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetDue sets the "due" field.
func (_u *ReviewEventUpdate) SetDue(v time.Time) *ReviewEventUpdate {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDue(v *time.Time) *ReviewEventUpdate {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.FactID(); ok {
		if err := reviewevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.fact_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FactID(); ok {
		_spec.SetField(reviewevent.FieldFactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Retrievability(); ok {
		_spec.SetField(reviewevent.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRetrievability(); ok {
		_spec.AddField(reviewevent.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(reviewevent.FieldDue, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetFactID sets the "fact_id" field.
func (_u *ReviewEventUpdateOne) SetFactID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetFactID(v)
	return _u
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableFactID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetFactID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdateOne) SetRating(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRating(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewEventUpdateOne) AddRating(v int) *ReviewEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewEventUpdateOne) SetStability(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStability(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewEventUpdateOne) AddStability(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewEventUpdateOne) SetDifficulty(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDifficulty(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewEventUpdateOne) AddDifficulty(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetRetrievability sets the "retrievability" field.
func (_u *ReviewEventUpdateOne) SetRetrievability(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetRetrievability()
	_u.mutation.SetRetrievability(v)
	return _u
}

// SetNillableRetrievability sets the "retrievability" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRetrievability(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRetrievability(*v)
	}
	return _u
}

// AddRetrievability adds value to the "retrievability" field.
func (_u *ReviewEventUpdateOne) AddRetrievability(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddRetrievability(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdateOne) SetIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalDays(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdateOne) AddIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetDue sets the "due" field.
func (_u *ReviewEventUpdateOne) SetDue(v time.Time) *ReviewEventUpdateOne {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDue(v *time.Time) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.FactID(); ok {
		if err := reviewevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.fact_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.FactID(); ok {
		_spec.SetField(reviewevent.FieldFactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Retrievability(); ok {
		_spec.SetField(reviewevent.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRetrievability(); ok {
		_spec.AddField(reviewevent.FieldRetrievability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(reviewevent.FieldDue, field.TypeTime, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
