// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/readingevent"
)

// ReadingEventCreate is the builder for creating a ReadingEvent entity.
type ReadingEventCreate struct {
	config
	mutation *ReadingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReadingEventCreate) SetSequence(v int64) *ReadingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReadingEventCreate) SetTimestamp(v time.Time) *ReadingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReadingEventCreate) SetNillableTimestamp(v *time.Time) *ReadingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ReadingEventCreate) SetSessionID(v string) *ReadingEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPageIndex sets the "page_index" field.
func (_c *ReadingEventCreate) SetPageIndex(v int) *ReadingEventCreate {
	_c.mutation.SetPageIndex(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *ReadingEventCreate) SetWordCount(v int) *ReadingEventCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *ReadingEventCreate) SetElapsedMs(v int) *ReadingEventCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetWpm sets the "wpm" field.
func (_c *ReadingEventCreate) SetWpm(v float64) *ReadingEventCreate {
	_c.mutation.SetWpm(v)
	return _c
}

// SetFlag sets the "flag" field.
func (_c *ReadingEventCreate) SetFlag(v string) *ReadingEventCreate {
	_c.mutation.SetFlag(v)
	return _c
}

// Mutation returns the ReadingEventMutation object of the builder.
func (_c *ReadingEventCreate) Mutation() *ReadingEventMutation {
	return _c.mutation
}

// Save creates the ReadingEvent in the database.
func (_c *ReadingEventCreate) Save(ctx context.Context) (*ReadingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadingEventCreate) SaveX(ctx context.Context) *ReadingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := readingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReadingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReadingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReadingEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := readingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReadingEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageIndex(); !ok {
		return &ValidationError{Name: "page_index", err: errors.New(`ent: missing required field "ReadingEvent.page_index"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "ReadingEvent.word_count"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "ReadingEvent.elapsed_ms"`)}
	}
	if _, ok := _c.mutation.Wpm(); !ok {
		return &ValidationError{Name: "wpm", err: errors.New(`ent: missing required field "ReadingEvent.wpm"`)}
	}
	if _, ok := _c.mutation.Flag(); !ok {
		return &ValidationError{Name: "flag", err: errors.New(`ent: missing required field "ReadingEvent.flag"`)}
	}
	if v, ok := _c.mutation.Flag(); ok {
		if err := readingevent.FlagValidator(v); err != nil {
			return &ValidationError{Name: "flag", err: fmt.Errorf(`ent: validator failed for field "ReadingEvent.flag": %w`, err)}
		}
	}
	return nil
}

func (_c *ReadingEventCreate) sqlSave(ctx context.Context) (*ReadingEvent, error) {
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

func (_c *ReadingEventCreate) createSpec() (*ReadingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readingevent.Table, sqlgraph.NewFieldSpec(readingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(readingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(readingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(readingevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.PageIndex(); ok {
		_spec.SetField(readingevent.FieldPageIndex, field.TypeInt, value)
		_node.PageIndex = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(readingevent.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(readingevent.FieldElapsedMs, field.TypeInt, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.Wpm(); ok {
		_spec.SetField(readingevent.FieldWpm, field.TypeFloat64, value)
		_node.Wpm = value
	}
	if value, ok := _c.mutation.Flag(); ok {
		_spec.SetField(readingevent.FieldFlag, field.TypeString, value)
		_node.Flag = value
	}
	return _node, _spec
}

// ReadingEventCreateBulk is the builder for creating many ReadingEvent entities in bulk.
type ReadingEventCreateBulk struct {
	config
	err      error
	builders []*ReadingEventCreate
}

// Save creates the ReadingEvent entities in the database.
func (_c *ReadingEventCreateBulk) Save(ctx context.Context) ([]*ReadingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadingEventMutation)
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
func (_c *ReadingEventCreateBulk) SaveX(ctx context.Context) []*ReadingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
