// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studiz/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *StudySessionCreate) SetTopic(v string) *StudySessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *StudySessionCreate) SetDurationMinutes(v float64) *StudySessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *StudySessionCreate) SetCompleted(v bool) *StudySessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompleted(v *bool) *StudySessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *StudySessionCreate) SetDate(v time.Time) *StudySessionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableDate(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *StudySessionCreate) SetNotes(v string) *StudySessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableNotes(v *string) *StudySessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (_c *StudySessionCreate) SetDifficultyRating(v int) *StudySessionCreate {
	_c.mutation.SetDifficultyRating(v)
	return _c
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableDifficultyRating(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetDifficultyRating(*v)
	}
	return _c
}

// SetFocusLevel sets the "focus_level" field.
func (_c *StudySessionCreate) SetFocusLevel(v int) *StudySessionCreate {
	_c.mutation.SetFocusLevel(v)
	return _c
}

// SetNillableFocusLevel sets the "focus_level" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableFocusLevel(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetFocusLevel(*v)
	}
	return _c
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := studysession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Date(); !ok {
		v := studysession.DefaultDate()
		_c.mutation.SetDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "StudySession.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := studysession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudySession.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "StudySession.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := studysession.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "StudySession.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "StudySession.completed"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "StudySession.date"`)}
	}
	if v, ok := _c.mutation.DifficultyRating(); ok {
		if err := studysession.DifficultyRatingValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_rating", err: fmt.Errorf(`ent: validator failed for field "StudySession.difficulty_rating": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FocusLevel(); ok {
		if err := studysession.FocusLevelValidator(v); err != nil {
			return &ValidationError{Name: "focus_level", err: fmt.Errorf(`ent: validator failed for field "StudySession.focus_level": %w`, err)}
		}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(studysession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeFloat64, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(studysession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.DifficultyRating(); ok {
		_spec.SetField(studysession.FieldDifficultyRating, field.TypeInt, value)
		_node.DifficultyRating = value
	}
	if value, ok := _c.mutation.FocusLevel(); ok {
		_spec.SetField(studysession.FieldFocusLevel, field.TypeInt, value)
		_node.FocusLevel = value
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
