// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathmentor/mathmentor/ent/predicate"
	"github.com/mathmentor/mathmentor/ent/questionresponse"
)

// QuestionResponseUpdate is the builder for updating QuestionResponse entities.
type QuestionResponseUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionResponseMutation
}

// Where appends a list predicates to the QuestionResponseUpdate builder.
func (_u *QuestionResponseUpdate) Where(ps ...predicate.QuestionResponse) *QuestionResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionResponseUpdate) SetSessionID(v string) *QuestionResponseUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionResponseUpdate) SetNillableSessionID(v *string) *QuestionResponseUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionResponseUpdate) SetQuestionText(v string) *QuestionResponseUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionResponseUpdate) SetNillableQuestionText(v *string) *QuestionResponseUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionResponseUpdate) SetCorrectAnswer(v string) *QuestionResponseUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionResponseUpdate) SetNillableCorrectAnswer(v *string) *QuestionResponseUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *QuestionResponseUpdate) SetUserAnswer(v string) *QuestionResponseUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *QuestionResponseUpdate) SetNillableUserAnswer(v *string) *QuestionResponseUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionResponseUpdate) SetIsCorrect(v bool) *QuestionResponseUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionResponseUpdate) SetNillableIsCorrect(v *bool) *QuestionResponseUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *QuestionResponseUpdate) SetTimeSpentSeconds(v int) *QuestionResponseUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *QuestionResponseUpdate) SetNillableTimeSpentSeconds(v *int) *QuestionResponseUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *QuestionResponseUpdate) AddTimeSpentSeconds(v int) *QuestionResponseUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the QuestionResponseMutation object of the builder.
func (_u *QuestionResponseUpdate) Mutation() *QuestionResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionResponseUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := questionresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := questionresponse.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionresponse.Table, questionresponse.Columns, sqlgraph.NewFieldSpec(questionresponse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(questionresponse.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(questionresponse.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionresponse.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(questionresponse.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(questionresponse.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(questionresponse.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(questionresponse.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionResponseUpdateOne is the builder for updating a single QuestionResponse entity.
type QuestionResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionResponseMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionResponseUpdateOne) SetSessionID(v string) *QuestionResponseUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionResponseUpdateOne) SetNillableSessionID(v *string) *QuestionResponseUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionResponseUpdateOne) SetQuestionText(v string) *QuestionResponseUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionResponseUpdateOne) SetNillableQuestionText(v *string) *QuestionResponseUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionResponseUpdateOne) SetCorrectAnswer(v string) *QuestionResponseUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionResponseUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionResponseUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *QuestionResponseUpdateOne) SetUserAnswer(v string) *QuestionResponseUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *QuestionResponseUpdateOne) SetNillableUserAnswer(v *string) *QuestionResponseUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionResponseUpdateOne) SetIsCorrect(v bool) *QuestionResponseUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionResponseUpdateOne) SetNillableIsCorrect(v *bool) *QuestionResponseUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *QuestionResponseUpdateOne) SetTimeSpentSeconds(v int) *QuestionResponseUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *QuestionResponseUpdateOne) SetNillableTimeSpentSeconds(v *int) *QuestionResponseUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *QuestionResponseUpdateOne) AddTimeSpentSeconds(v int) *QuestionResponseUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the QuestionResponseMutation object of the builder.
func (_u *QuestionResponseUpdateOne) Mutation() *QuestionResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionResponseUpdate builder.
func (_u *QuestionResponseUpdateOne) Where(ps ...predicate.QuestionResponse) *QuestionResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionResponseUpdateOne) Select(field string, fields ...string) *QuestionResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionResponse entity.
func (_u *QuestionResponseUpdateOne) Save(ctx context.Context) (*QuestionResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionResponseUpdateOne) SaveX(ctx context.Context) *QuestionResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionResponseUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := questionresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := questionresponse.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionResponseUpdateOne) sqlSave(ctx context.Context) (_node *QuestionResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionresponse.Table, questionresponse.Columns, sqlgraph.NewFieldSpec(questionresponse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionresponse.FieldID)
		for _, f := range fields {
			if !questionresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionresponse.FieldID {
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
		_spec.SetField(questionresponse.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(questionresponse.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionresponse.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(questionresponse.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(questionresponse.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(questionresponse.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(questionresponse.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	_node = &QuestionResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
