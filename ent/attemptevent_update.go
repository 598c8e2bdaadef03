// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/attemptevent"
	"github.com/abhisek/lectio/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *AttemptEventUpdate) SetSkillID(v string) *AttemptEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSkillID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdate) SetKind(v string) *AttemptEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableKind(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AttemptEventUpdate) SetLatencyMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLatencyMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AttemptEventUpdate) AddLatencyMs(v int) *AttemptEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := attemptevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(attemptevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(attemptevent.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(attemptevent.FieldLatencyMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *AttemptEventUpdateOne) SetSkillID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSkillID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptEventUpdateOne) SetKind(v string) *AttemptEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableKind(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AttemptEventUpdateOne) SetLatencyMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLatencyMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AttemptEventUpdateOne) AddLatencyMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := attemptevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := attemptevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(attemptevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attemptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(attemptevent.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(attemptevent.FieldLatencyMs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
