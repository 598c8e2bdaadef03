// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/predicate"
	"github.com/abhisek/lectio/ent/readingevent"
)

// ReadingEventUpdate is the builder for updating ReadingEvent entities.
type ReadingEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReadingEventMutation
}

// Where appends a list predicates to the ReadingEventUpdate builder.
func (_u *ReadingEventUpdate) Where(ps ...predicate.ReadingEvent) *ReadingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReadingEventUpdate) SetSessionID(v string) *ReadingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReadingEventUpdate) SetNillableSessionID(v *string) *ReadingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPageIndex sets the "page_index" field.
func (_u *ReadingEventUpdate) SetPageIndex(v int) *ReadingEventUpdate {
	_u.mutation.ResetPageIndex()
	_u.mutation.SetPageIndex(v)
	return _u
}

// SetNillablePageIndex sets the "page_index" field if the given value is not nil.
func (_u *ReadingEventUpdate) SetNillablePageIndex(v *int) *ReadingEventUpdate {
	if v != nil {
		_u.SetPageIndex(*v)
	}
	return _u
}

// AddPageIndex adds value to the "page_index" field.
func (_u *ReadingEventUpdate) AddPageIndex(v int) *ReadingEventUpdate {
	_u.mutation.AddPageIndex(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ReadingEventUpdate) SetWordCount(v int) *ReadingEventUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ReadingEventUpdate) SetNillableWordCount(v *int) *ReadingEventUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ReadingEventUpdate) AddWordCount(v int) *ReadingEventUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ReadingEventUpdate) SetElapsedMs(v int) *ReadingEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ReadingEventUpdate) SetNillableElapsedMs(v *int) *ReadingEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ReadingEventUpdate) AddElapsedMs(v int) *ReadingEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *ReadingEventUpdate) SetWpm(v float64) *ReadingEventUpdate {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *ReadingEventUpdate) SetNillableWpm(v *float64) *ReadingEventUpdate {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *ReadingEventUpdate) AddWpm(v float64) *ReadingEventUpdate {
	_u.mutation.AddWpm(v)
	return _u
}

// SetFlag sets the "flag" field.
func (_u *ReadingEventUpdate) SetFlag(v string) *ReadingEventUpdate {
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *ReadingEventUpdate) SetNillableFlag(v *string) *ReadingEventUpdate {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// Mutation returns the ReadingEventMutation object of the builder.
func (_u *ReadingEventUpdate) Mutation() *ReadingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadingEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := readingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReadingEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Flag(); ok {
		if err := readingevent.FlagValidator(v); err != nil {
			return &ValidationError{Name: "flag", err: fmt.Errorf(`ent: validator failed for field "ReadingEvent.flag": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readingevent.Table, readingevent.Columns, sqlgraph.NewFieldSpec(readingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(readingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageIndex(); ok {
		_spec.SetField(readingevent.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageIndex(); ok {
		_spec.AddField(readingevent.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(readingevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(readingevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(readingevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(readingevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(readingevent.FieldWpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(readingevent.FieldWpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(readingevent.FieldFlag, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadingEventUpdateOne is the builder for updating a single ReadingEvent entity.
type ReadingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadingEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReadingEventUpdateOne) SetSessionID(v string) *ReadingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReadingEventUpdateOne) SetNillableSessionID(v *string) *ReadingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPageIndex sets the "page_index" field.
func (_u *ReadingEventUpdateOne) SetPageIndex(v int) *ReadingEventUpdateOne {
	_u.mutation.ResetPageIndex()
	_u.mutation.SetPageIndex(v)
	return _u
}

// SetNillablePageIndex sets the "page_index" field if the given value is not nil.
func (_u *ReadingEventUpdateOne) SetNillablePageIndex(v *int) *ReadingEventUpdateOne {
	if v != nil {
		_u.SetPageIndex(*v)
	}
	return _u
}

// AddPageIndex adds value to the "page_index" field.
func (_u *ReadingEventUpdateOne) AddPageIndex(v int) *ReadingEventUpdateOne {
	_u.mutation.AddPageIndex(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ReadingEventUpdateOne) SetWordCount(v int) *ReadingEventUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ReadingEventUpdateOne) SetNillableWordCount(v *int) *ReadingEventUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ReadingEventUpdateOne) AddWordCount(v int) *ReadingEventUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ReadingEventUpdateOne) SetElapsedMs(v int) *ReadingEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ReadingEventUpdateOne) SetNillableElapsedMs(v *int) *ReadingEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ReadingEventUpdateOne) AddElapsedMs(v int) *ReadingEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *ReadingEventUpdateOne) SetWpm(v float64) *ReadingEventUpdateOne {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *ReadingEventUpdateOne) SetNillableWpm(v *float64) *ReadingEventUpdateOne {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *ReadingEventUpdateOne) AddWpm(v float64) *ReadingEventUpdateOne {
	_u.mutation.AddWpm(v)
	return _u
}

// SetFlag sets the "flag" field.
func (_u *ReadingEventUpdateOne) SetFlag(v string) *ReadingEventUpdateOne {
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *ReadingEventUpdateOne) SetNillableFlag(v *string) *ReadingEventUpdateOne {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// Mutation returns the ReadingEventMutation object of the builder.
func (_u *ReadingEventUpdateOne) Mutation() *ReadingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadingEventUpdate builder.
func (_u *ReadingEventUpdateOne) Where(ps ...predicate.ReadingEvent) *ReadingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadingEventUpdateOne) Select(field string, fields ...string) *ReadingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadingEvent entity.
func (_u *ReadingEventUpdateOne) Save(ctx context.Context) (*ReadingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingEventUpdateOne) SaveX(ctx context.Context) *ReadingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadingEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := readingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReadingEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Flag(); ok {
		if err := readingevent.FlagValidator(v); err != nil {
			return &ValidationError{Name: "flag", err: fmt.Errorf(`ent: validator failed for field "ReadingEvent.flag": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadingEventUpdateOne) sqlSave(ctx context.Context) (_node *ReadingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readingevent.Table, readingevent.Columns, sqlgraph.NewFieldSpec(readingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readingevent.FieldID)
		for _, f := range fields {
			if !readingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readingevent.FieldID {
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
		_spec.SetField(readingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageIndex(); ok {
		_spec.SetField(readingevent.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageIndex(); ok {
		_spec.AddField(readingevent.FieldPageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(readingevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(readingevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(readingevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(readingevent.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(readingevent.FieldWpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(readingevent.FieldWpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(readingevent.FieldFlag, field.TypeString, value)
	}
	_node = &ReadingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
