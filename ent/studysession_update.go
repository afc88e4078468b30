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
	"github.com/abhisek/studiz/ent/predicate"
	"github.com/abhisek/studiz/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudySessionUpdate) SetTopic(v string) *StudySessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableTopic(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudySessionUpdate) SetDurationMinutes(v float64) *StudySessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDurationMinutes(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudySessionUpdate) AddDurationMinutes(v float64) *StudySessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *StudySessionUpdate) SetCompleted(v bool) *StudySessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCompleted(v *bool) *StudySessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudySessionUpdate) SetDate(v time.Time) *StudySessionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDate(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StudySessionUpdate) SetNotes(v string) *StudySessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableNotes(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StudySessionUpdate) ClearNotes() *StudySessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (_u *StudySessionUpdate) SetDifficultyRating(v int) *StudySessionUpdate {
	_u.mutation.ResetDifficultyRating()
	_u.mutation.SetDifficultyRating(v)
	return _u
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDifficultyRating(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetDifficultyRating(*v)
	}
	return _u
}

// AddDifficultyRating adds value to the "difficulty_rating" field.
func (_u *StudySessionUpdate) AddDifficultyRating(v int) *StudySessionUpdate {
	_u.mutation.AddDifficultyRating(v)
	return _u
}

// ClearDifficultyRating clears the value of the "difficulty_rating" field.
func (_u *StudySessionUpdate) ClearDifficultyRating() *StudySessionUpdate {
	_u.mutation.ClearDifficultyRating()
	return _u
}

// SetFocusLevel sets the "focus_level" field.
func (_u *StudySessionUpdate) SetFocusLevel(v int) *StudySessionUpdate {
	_u.mutation.ResetFocusLevel()
	_u.mutation.SetFocusLevel(v)
	return _u
}

// SetNillableFocusLevel sets the "focus_level" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableFocusLevel(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetFocusLevel(*v)
	}
	return _u
}

// AddFocusLevel adds value to the "focus_level" field.
func (_u *StudySessionUpdate) AddFocusLevel(v int) *StudySessionUpdate {
	_u.mutation.AddFocusLevel(v)
	return _u
}

// ClearFocusLevel clears the value of the "focus_level" field.
func (_u *StudySessionUpdate) ClearFocusLevel() *StudySessionUpdate {
	_u.mutation.ClearFocusLevel()
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := studysession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudySession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := studysession.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "StudySession.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyRating(); ok {
		if err := studysession.DifficultyRatingValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_rating", err: fmt.Errorf(`ent: validator failed for field "StudySession.difficulty_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FocusLevel(); ok {
		if err := studysession.FocusLevelValidator(v); err != nil {
			return &ValidationError{Name: "focus_level", err: fmt.Errorf(`ent: validator failed for field "StudySession.focus_level": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studysession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studysession.FieldDurationMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(studysession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(studysession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyRating(); ok {
		_spec.SetField(studysession.FieldDifficultyRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyRating(); ok {
		_spec.AddField(studysession.FieldDifficultyRating, field.TypeInt, value)
	}
	if _u.mutation.DifficultyRatingCleared() {
		_spec.ClearField(studysession.FieldDifficultyRating, field.TypeInt)
	}
	if value, ok := _u.mutation.FocusLevel(); ok {
		_spec.SetField(studysession.FieldFocusLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocusLevel(); ok {
		_spec.AddField(studysession.FieldFocusLevel, field.TypeInt, value)
	}
	if _u.mutation.FocusLevelCleared() {
		_spec.ClearField(studysession.FieldFocusLevel, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetTopic sets the "topic" field.
func (_u *StudySessionUpdateOne) SetTopic(v string) *StudySessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableTopic(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudySessionUpdateOne) SetDurationMinutes(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDurationMinutes(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudySessionUpdateOne) AddDurationMinutes(v float64) *StudySessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *StudySessionUpdateOne) SetCompleted(v bool) *StudySessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCompleted(v *bool) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudySessionUpdateOne) SetDate(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDate(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StudySessionUpdateOne) SetNotes(v string) *StudySessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableNotes(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StudySessionUpdateOne) ClearNotes() *StudySessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (_u *StudySessionUpdateOne) SetDifficultyRating(v int) *StudySessionUpdateOne {
	_u.mutation.ResetDifficultyRating()
	_u.mutation.SetDifficultyRating(v)
	return _u
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDifficultyRating(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDifficultyRating(*v)
	}
	return _u
}

// AddDifficultyRating adds value to the "difficulty_rating" field.
func (_u *StudySessionUpdateOne) AddDifficultyRating(v int) *StudySessionUpdateOne {
	_u.mutation.AddDifficultyRating(v)
	return _u
}

// ClearDifficultyRating clears the value of the "difficulty_rating" field.
func (_u *StudySessionUpdateOne) ClearDifficultyRating() *StudySessionUpdateOne {
	_u.mutation.ClearDifficultyRating()
	return _u
}

// SetFocusLevel sets the "focus_level" field.
func (_u *StudySessionUpdateOne) SetFocusLevel(v int) *StudySessionUpdateOne {
	_u.mutation.ResetFocusLevel()
	_u.mutation.SetFocusLevel(v)
	return _u
}

// SetNillableFocusLevel sets the "focus_level" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableFocusLevel(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetFocusLevel(*v)
	}
	return _u
}

// AddFocusLevel adds value to the "focus_level" field.
func (_u *StudySessionUpdateOne) AddFocusLevel(v int) *StudySessionUpdateOne {
	_u.mutation.AddFocusLevel(v)
	return _u
}

// ClearFocusLevel clears the value of the "focus_level" field.
func (_u *StudySessionUpdateOne) ClearFocusLevel() *StudySessionUpdateOne {
	_u.mutation.ClearFocusLevel()
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := studysession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudySession.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := studysession.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "StudySession.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyRating(); ok {
		if err := studysession.DifficultyRatingValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_rating", err: fmt.Errorf(`ent: validator failed for field "StudySession.difficulty_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FocusLevel(); ok {
		if err := studysession.FocusLevelValidator(v); err != nil {
			return &ValidationError{Name: "focus_level", err: fmt.Errorf(`ent: validator failed for field "StudySession.focus_level": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studysession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studysession.FieldDurationMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(studysession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(studysession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyRating(); ok {
		_spec.SetField(studysession.FieldDifficultyRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyRating(); ok {
		_spec.AddField(studysession.FieldDifficultyRating, field.TypeInt, value)
	}
	if _u.mutation.DifficultyRatingCleared() {
		_spec.ClearField(studysession.FieldDifficultyRating, field.TypeInt)
	}
	if value, ok := _u.mutation.FocusLevel(); ok {
		_spec.SetField(studysession.FieldFocusLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFocusLevel(); ok {
		_spec.AddField(studysession.FieldFocusLevel, field.TypeInt, value)
	}
	if _u.mutation.FocusLevelCleared() {
		_spec.ClearField(studysession.FieldFocusLevel, field.TypeInt)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
