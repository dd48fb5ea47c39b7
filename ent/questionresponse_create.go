// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathmentor/mathmentor/ent/questionresponse"
)

// QuestionResponseCreate is the builder for creating a QuestionResponse entity.
type QuestionResponseCreate struct {
	config
	mutation *QuestionResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionResponseCreate) SetSessionID(v string) *QuestionResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *QuestionResponseCreate) SetQuestionText(v string) *QuestionResponseCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionResponseCreate) SetCorrectAnswer(v string) *QuestionResponseCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *QuestionResponseCreate) SetUserAnswer(v string) *QuestionResponseCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuestionResponseCreate) SetIsCorrect(v bool) *QuestionResponseCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *QuestionResponseCreate) SetTimeSpentSeconds(v int) *QuestionResponseCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *QuestionResponseCreate) SetNillableTimeSpentSeconds(v *int) *QuestionResponseCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// Mutation returns the QuestionResponseMutation object of the builder.
func (_c *QuestionResponseCreate) Mutation() *QuestionResponseMutation {
	return _c.mutation
}

// Save creates the QuestionResponse in the database.
func (_c *QuestionResponseCreate) Save(ctx context.Context) (*QuestionResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionResponseCreate) SaveX(ctx context.Context) *QuestionResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionResponseCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := questionresponse.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionResponseCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuestionResponse.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := questionresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "QuestionResponse.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := questionresponse.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuestionResponse.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "QuestionResponse.correct_answer"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "QuestionResponse.user_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuestionResponse.is_correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "QuestionResponse.time_spent_seconds"`)}
	}
	return nil
}

func (_c *QuestionResponseCreate) sqlSave(ctx context.Context) (*QuestionResponse, error) {
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

func (_c *QuestionResponseCreate) createSpec() (*QuestionResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionresponse.Table, sqlgraph.NewFieldSpec(questionresponse.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(questionresponse.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(questionresponse.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(questionresponse.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(questionresponse.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(questionresponse.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(questionresponse.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionResponse.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionResponseUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionResponseCreate) OnConflict(opts ...sql.ConflictOption) *QuestionResponseUpsertOne {
	_c.conflict = opts
	return &QuestionResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionResponseCreate) OnConflictColumns(columns ...string) *QuestionResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionResponseUpsertOne{
		create: _c,
	}
}

type (
	// QuestionResponseUpsertOne is the builder for "upsert"-ing
	//  one QuestionResponse node.
	QuestionResponseUpsertOne struct {
		create *QuestionResponseCreate
	}

	// QuestionResponseUpsert is the "OnConflict" setter.
	QuestionResponseUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *QuestionResponseUpsert) SetSessionID(v string) *QuestionResponseUpsert {
	u.Set(questionresponse.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuestionResponseUpsert) UpdateSessionID() *QuestionResponseUpsert {
	u.SetExcluded(questionresponse.FieldSessionID)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *QuestionResponseUpsert) SetQuestionText(v string) *QuestionResponseUpsert {
	u.Set(questionresponse.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *QuestionResponseUpsert) UpdateQuestionText() *QuestionResponseUpsert {
	u.SetExcluded(questionresponse.FieldQuestionText)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionResponseUpsert) SetCorrectAnswer(v string) *QuestionResponseUpsert {
	u.Set(questionresponse.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionResponseUpsert) UpdateCorrectAnswer() *QuestionResponseUpsert {
	u.SetExcluded(questionresponse.FieldCorrectAnswer)
	return u
}

// SetUserAnswer sets the "user_answer" field.
func (u *QuestionResponseUpsert) SetUserAnswer(v string) *QuestionResponseUpsert {
	u.Set(questionresponse.FieldUserAnswer, v)
	return u
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *QuestionResponseUpsert) UpdateUserAnswer() *QuestionResponseUpsert {
	u.SetExcluded(questionresponse.FieldUserAnswer)
	return u
}

// SetIsCorrect sets the "is_correct" field.
func (u *QuestionResponseUpsert) SetIsCorrect(v bool) *QuestionResponseUpsert {
	u.Set(questionresponse.FieldIsCorrect, v)
	return u
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *QuestionResponseUpsert) UpdateIsCorrect() *QuestionResponseUpsert {
	u.SetExcluded(questionresponse.FieldIsCorrect)
	return u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *QuestionResponseUpsert) SetTimeSpentSeconds(v int) *QuestionResponseUpsert {
	u.Set(questionresponse.FieldTimeSpentSeconds, v)
	return u
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *QuestionResponseUpsert) UpdateTimeSpentSeconds() *QuestionResponseUpsert {
	u.SetExcluded(questionresponse.FieldTimeSpentSeconds)
	return u
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *QuestionResponseUpsert) AddTimeSpentSeconds(v int) *QuestionResponseUpsert {
	u.Add(questionresponse.FieldTimeSpentSeconds, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuestionResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionResponseUpsertOne) UpdateNewValues() *QuestionResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionResponse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionResponseUpsertOne) Ignore() *QuestionResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionResponseUpsertOne) DoNothing() *QuestionResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionResponseCreate.OnConflict
// documentation for more info.
func (u *QuestionResponseUpsertOne) Update(set func(*QuestionResponseUpsert)) *QuestionResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuestionResponseUpsertOne) SetSessionID(v string) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuestionResponseUpsertOne) UpdateSessionID() *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *QuestionResponseUpsertOne) SetQuestionText(v string) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *QuestionResponseUpsertOne) UpdateQuestionText() *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateQuestionText()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionResponseUpsertOne) SetCorrectAnswer(v string) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionResponseUpsertOne) UpdateCorrectAnswer() *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetUserAnswer sets the "user_answer" field.
func (u *QuestionResponseUpsertOne) SetUserAnswer(v string) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *QuestionResponseUpsertOne) UpdateUserAnswer() *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *QuestionResponseUpsertOne) SetIsCorrect(v bool) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *QuestionResponseUpsertOne) UpdateIsCorrect() *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateIsCorrect()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *QuestionResponseUpsertOne) SetTimeSpentSeconds(v int) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *QuestionResponseUpsertOne) AddTimeSpentSeconds(v int) *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *QuestionResponseUpsertOne) UpdateTimeSpentSeconds() *QuestionResponseUpsertOne {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// Exec executes the query.
func (u *QuestionResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionResponseUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionResponseUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionResponseCreateBulk is the builder for creating many QuestionResponse entities in bulk.
type QuestionResponseCreateBulk struct {
	config
	err      error
	builders []*QuestionResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionResponse entities in the database.
func (_c *QuestionResponseCreateBulk) Save(ctx context.Context) ([]*QuestionResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionResponseMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *QuestionResponseCreateBulk) SaveX(ctx context.Context) []*QuestionResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionResponse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionResponseUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionResponseUpsertBulk {
	_c.conflict = opts
	return &QuestionResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionResponseCreateBulk) OnConflictColumns(columns ...string) *QuestionResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionResponseUpsertBulk{
		create: _c,
	}
}

// QuestionResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionResponse nodes.
type QuestionResponseUpsertBulk struct {
	create *QuestionResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionResponseUpsertBulk) UpdateNewValues() *QuestionResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionResponse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionResponseUpsertBulk) Ignore() *QuestionResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionResponseUpsertBulk) DoNothing() *QuestionResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionResponseCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionResponseUpsertBulk) Update(set func(*QuestionResponseUpsert)) *QuestionResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuestionResponseUpsertBulk) SetSessionID(v string) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuestionResponseUpsertBulk) UpdateSessionID() *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *QuestionResponseUpsertBulk) SetQuestionText(v string) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *QuestionResponseUpsertBulk) UpdateQuestionText() *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateQuestionText()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionResponseUpsertBulk) SetCorrectAnswer(v string) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionResponseUpsertBulk) UpdateCorrectAnswer() *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetUserAnswer sets the "user_answer" field.
func (u *QuestionResponseUpsertBulk) SetUserAnswer(v string) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *QuestionResponseUpsertBulk) UpdateUserAnswer() *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetIsCorrect sets the "is_correct" field.
func (u *QuestionResponseUpsertBulk) SetIsCorrect(v bool) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetIsCorrect(v)
	})
}

// UpdateIsCorrect sets the "is_correct" field to the value that was provided on create.
func (u *QuestionResponseUpsertBulk) UpdateIsCorrect() *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateIsCorrect()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *QuestionResponseUpsertBulk) SetTimeSpentSeconds(v int) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *QuestionResponseUpsertBulk) AddTimeSpentSeconds(v int) *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *QuestionResponseUpsertBulk) UpdateTimeSpentSeconds() *QuestionResponseUpsertBulk {
	return u.Update(func(s *QuestionResponseUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// Exec executes the query.
func (u *QuestionResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
