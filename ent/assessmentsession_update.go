// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathmentor/mathmentor/ent/assessmentsession"
	"github.com/mathmentor/mathmentor/ent/predicate"
)

// AssessmentSessionUpdate is the builder for updating AssessmentSession entities.
type AssessmentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdate) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentSessionUpdate) SetUserID(v string) *AssessmentSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableUserID(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AssessmentSessionUpdate) SetTopic(v string) *AssessmentSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableTopic(v *string) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AssessmentSessionUpdate) SetDifficulty(v int) *AssessmentSessionUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableDifficulty(v *int) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AssessmentSessionUpdate) AddDifficulty(v int) *AssessmentSessionUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AssessmentSessionUpdate) SetTotalQuestions(v int) *AssessmentSessionUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableTotalQuestions(v *int) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AssessmentSessionUpdate) AddTotalQuestions(v int) *AssessmentSessionUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AssessmentSessionUpdate) SetCorrectAnswers(v int) *AssessmentSessionUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableCorrectAnswers(v *int) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AssessmentSessionUpdate) AddCorrectAnswers(v int) *AssessmentSessionUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *AssessmentSessionUpdate) SetScorePercentage(v int) *AssessmentSessionUpdate {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableScorePercentage(v *int) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *AssessmentSessionUpdate) AddScorePercentage(v int) *AssessmentSessionUpdate {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *AssessmentSessionUpdate) SetTimeSpentSeconds(v int) *AssessmentSessionUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableTimeSpentSeconds(v *int) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *AssessmentSessionUpdate) AddTimeSpentSeconds(v int) *AssessmentSessionUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdate) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := assessmentsession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(assessmentsession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(assessmentsession.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(assessmentsession.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(assessmentsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(assessmentsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(assessmentsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(assessmentsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(assessmentsession.FieldScorePercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(assessmentsession.FieldScorePercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(assessmentsession.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(assessmentsession.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentSessionUpdateOne is the builder for updating a single AssessmentSession entity.
type AssessmentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentSessionUpdateOne) SetUserID(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableUserID(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AssessmentSessionUpdateOne) SetTopic(v string) *AssessmentSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableTopic(v *string) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AssessmentSessionUpdateOne) SetDifficulty(v int) *AssessmentSessionUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableDifficulty(v *int) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AssessmentSessionUpdateOne) AddDifficulty(v int) *AssessmentSessionUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AssessmentSessionUpdateOne) SetTotalQuestions(v int) *AssessmentSessionUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableTotalQuestions(v *int) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AssessmentSessionUpdateOne) AddTotalQuestions(v int) *AssessmentSessionUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AssessmentSessionUpdateOne) SetCorrectAnswers(v int) *AssessmentSessionUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableCorrectAnswers(v *int) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AssessmentSessionUpdateOne) AddCorrectAnswers(v int) *AssessmentSessionUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *AssessmentSessionUpdateOne) SetScorePercentage(v int) *AssessmentSessionUpdateOne {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableScorePercentage(v *int) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *AssessmentSessionUpdateOne) AddScorePercentage(v int) *AssessmentSessionUpdateOne {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *AssessmentSessionUpdateOne) SetTimeSpentSeconds(v int) *AssessmentSessionUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableTimeSpentSeconds(v *int) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *AssessmentSessionUpdateOne) AddTimeSpentSeconds(v int) *AssessmentSessionUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdateOne) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdateOne) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentSessionUpdateOne) Select(field string, fields ...string) *AssessmentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentSession entity.
func (_u *AssessmentSessionUpdateOne) Save(ctx context.Context) (*AssessmentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) SaveX(ctx context.Context) *AssessmentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := assessmentsession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentsession.FieldID)
		for _, f := range fields {
			if !assessmentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentsession.FieldID {
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
		_spec.SetField(assessmentsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(assessmentsession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(assessmentsession.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(assessmentsession.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(assessmentsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(assessmentsession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(assessmentsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(assessmentsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(assessmentsession.FieldScorePercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(assessmentsession.FieldScorePercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(assessmentsession.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(assessmentsession.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	_node = &AssessmentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
