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
	"github.com/mathmentor/mathmentor/ent/predicate"
	"github.com/mathmentor/mathmentor/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TopicProgressUpdate) SetUserID(v string) *TopicProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableUserID(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicProgressUpdate) SetTopic(v string) *TopicProgressUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTopic(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (_u *TopicProgressUpdate) SetTotalQuestionsAttempted(v int) *TopicProgressUpdate {
	_u.mutation.ResetTotalQuestionsAttempted()
	_u.mutation.SetTotalQuestionsAttempted(v)
	return _u
}

// SetNillableTotalQuestionsAttempted sets the "total_questions_attempted" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTotalQuestionsAttempted(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetTotalQuestionsAttempted(*v)
	}
	return _u
}

// AddTotalQuestionsAttempted adds value to the "total_questions_attempted" field.
func (_u *TopicProgressUpdate) AddTotalQuestionsAttempted(v int) *TopicProgressUpdate {
	_u.mutation.AddTotalQuestionsAttempted(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TopicProgressUpdate) SetCorrectAnswers(v int) *TopicProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableCorrectAnswers(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TopicProgressUpdate) AddCorrectAnswers(v int) *TopicProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *TopicProgressUpdate) SetMasteryLevel(v int) *TopicProgressUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableMasteryLevel(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *TopicProgressUpdate) AddMasteryLevel(v int) *TopicProgressUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *TopicProgressUpdate) SetLastPracticedAt(v time.Time) *TopicProgressUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicProgressUpdate) defaults() {
	if _, ok := _u.mutation.LastPracticedAt(); !ok {
		v := topicprogress.UpdateDefaultLastPracticedAt()
		_u.mutation.SetLastPracticedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestionsAttempted(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsAttempted(); ok {
		_spec.AddField(topicprogress.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(topicprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(topicprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(topicprogress.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *TopicProgressUpdateOne) SetUserID(v string) *TopicProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableUserID(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicProgressUpdateOne) SetTopic(v string) *TopicProgressUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTopic(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (_u *TopicProgressUpdateOne) SetTotalQuestionsAttempted(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetTotalQuestionsAttempted()
	_u.mutation.SetTotalQuestionsAttempted(v)
	return _u
}

// SetNillableTotalQuestionsAttempted sets the "total_questions_attempted" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTotalQuestionsAttempted(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTotalQuestionsAttempted(*v)
	}
	return _u
}

// AddTotalQuestionsAttempted adds value to the "total_questions_attempted" field.
func (_u *TopicProgressUpdateOne) AddTotalQuestionsAttempted(v int) *TopicProgressUpdateOne {
	_u.mutation.AddTotalQuestionsAttempted(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TopicProgressUpdateOne) SetCorrectAnswers(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableCorrectAnswers(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TopicProgressUpdateOne) AddCorrectAnswers(v int) *TopicProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *TopicProgressUpdateOne) SetMasteryLevel(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableMasteryLevel(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *TopicProgressUpdateOne) AddMasteryLevel(v int) *TopicProgressUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *TopicProgressUpdateOne) SetLastPracticedAt(v time.Time) *TopicProgressUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicProgress entity.
func (_u *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.LastPracticedAt(); !ok {
		v := topicprogress.UpdateDefaultLastPracticedAt()
		_u.mutation.SetLastPracticedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestionsAttempted(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsAttempted(); ok {
		_spec.AddField(topicprogress.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(topicprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(topicprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(topicprogress.FieldLastPracticedAt, field.TypeTime, value)
	}
	_node = &TopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
