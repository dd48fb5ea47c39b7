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
	"github.com/mathmentor/mathmentor/ent/assessmentsession"
)

// AssessmentSessionCreate is the builder for creating a AssessmentSession entity.
type AssessmentSessionCreate struct {
	config
	mutation *AssessmentSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentSessionCreate) SetSessionID(v string) *AssessmentSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentSessionCreate) SetUserID(v string) *AssessmentSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AssessmentSessionCreate) SetTopic(v string) *AssessmentSessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AssessmentSessionCreate) SetDifficulty(v int) *AssessmentSessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableDifficulty(v *int) *AssessmentSessionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *AssessmentSessionCreate) SetTotalQuestions(v int) *AssessmentSessionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *AssessmentSessionCreate) SetCorrectAnswers(v int) *AssessmentSessionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetScorePercentage sets the "score_percentage" field.
func (_c *AssessmentSessionCreate) SetScorePercentage(v int) *AssessmentSessionCreate {
	_c.mutation.SetScorePercentage(v)
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *AssessmentSessionCreate) SetTimeSpentSeconds(v int) *AssessmentSessionCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableTimeSpentSeconds(v *int) *AssessmentSessionCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AssessmentSessionCreate) SetCompletedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableCompletedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_c *AssessmentSessionCreate) Mutation() *AssessmentSessionMutation {
	return _c.mutation
}

// Save creates the AssessmentSession in the database.
func (_c *AssessmentSessionCreate) Save(ctx context.Context) (*AssessmentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentSessionCreate) SaveX(ctx context.Context) *AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentSessionCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := assessmentsession.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := assessmentsession.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := assessmentsession.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentSession.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AssessmentSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assessmentsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "AssessmentSession.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := assessmentsession.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AssessmentSession.difficulty"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "AssessmentSession.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "AssessmentSession.correct_answers"`)}
	}
	if _, ok := _c.mutation.ScorePercentage(); !ok {
		return &ValidationError{Name: "score_percentage", err: errors.New(`ent: missing required field "AssessmentSession.score_percentage"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "AssessmentSession.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "AssessmentSession.completed_at"`)}
	}
	return nil
}

func (_c *AssessmentSessionCreate) sqlSave(ctx context.Context) (*AssessmentSession, error) {
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

func (_c *AssessmentSessionCreate) createSpec() (*AssessmentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentsession.Table, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assessmentsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(assessmentsession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(assessmentsession.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(assessmentsession.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(assessmentsession.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.ScorePercentage(); ok {
		_spec.SetField(assessmentsession.FieldScorePercentage, field.TypeInt, value)
		_node.ScorePercentage = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(assessmentsession.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssessmentSession.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentSessionCreate) OnConflict(opts ...sql.ConflictOption) *AssessmentSessionUpsertOne {
	_c.conflict = opts
	return &AssessmentSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentSessionCreate) OnConflictColumns(columns ...string) *AssessmentSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentSessionUpsertOne{
		create: _c,
	}
}

type (
	// AssessmentSessionUpsertOne is the builder for "upsert"-ing
	//  one AssessmentSession node.
	AssessmentSessionUpsertOne struct {
		create *AssessmentSessionCreate
	}

	// AssessmentSessionUpsert is the "OnConflict" setter.
	AssessmentSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AssessmentSessionUpsert) SetUserID(v string) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateUserID() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldUserID)
	return u
}

// SetTopic sets the "topic" field.
func (u *AssessmentSessionUpsert) SetTopic(v string) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateTopic() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldTopic)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *AssessmentSessionUpsert) SetDifficulty(v int) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateDifficulty() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldDifficulty)
	return u
}

// AddDifficulty adds v to the "difficulty" field.
func (u *AssessmentSessionUpsert) AddDifficulty(v int) *AssessmentSessionUpsert {
	u.Add(assessmentsession.FieldDifficulty, v)
	return u
}

// SetTotalQuestions sets the "total_questions" field.
func (u *AssessmentSessionUpsert) SetTotalQuestions(v int) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldTotalQuestions, v)
	return u
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateTotalQuestions() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldTotalQuestions)
	return u
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *AssessmentSessionUpsert) AddTotalQuestions(v int) *AssessmentSessionUpsert {
	u.Add(assessmentsession.FieldTotalQuestions, v)
	return u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *AssessmentSessionUpsert) SetCorrectAnswers(v int) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldCorrectAnswers, v)
	return u
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateCorrectAnswers() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldCorrectAnswers)
	return u
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *AssessmentSessionUpsert) AddCorrectAnswers(v int) *AssessmentSessionUpsert {
	u.Add(assessmentsession.FieldCorrectAnswers, v)
	return u
}

// SetScorePercentage sets the "score_percentage" field.
func (u *AssessmentSessionUpsert) SetScorePercentage(v int) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldScorePercentage, v)
	return u
}

// UpdateScorePercentage sets the "score_percentage" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateScorePercentage() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldScorePercentage)
	return u
}

// AddScorePercentage adds v to the "score_percentage" field.
func (u *AssessmentSessionUpsert) AddScorePercentage(v int) *AssessmentSessionUpsert {
	u.Add(assessmentsession.FieldScorePercentage, v)
	return u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *AssessmentSessionUpsert) SetTimeSpentSeconds(v int) *AssessmentSessionUpsert {
	u.Set(assessmentsession.FieldTimeSpentSeconds, v)
	return u
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *AssessmentSessionUpsert) UpdateTimeSpentSeconds() *AssessmentSessionUpsert {
	u.SetExcluded(assessmentsession.FieldTimeSpentSeconds)
	return u
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *AssessmentSessionUpsert) AddTimeSpentSeconds(v int) *AssessmentSessionUpsert {
	u.Add(assessmentsession.FieldTimeSpentSeconds, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AssessmentSessionUpsertOne) UpdateNewValues() *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(assessmentsession.FieldSessionID)
		}
		if _, exists := u.create.mutation.CompletedAt(); exists {
			s.SetIgnore(assessmentsession.FieldCompletedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssessmentSessionUpsertOne) Ignore() *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentSessionUpsertOne) DoNothing() *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentSessionCreate.OnConflict
// documentation for more info.
func (u *AssessmentSessionUpsertOne) Update(set func(*AssessmentSessionUpsert)) *AssessmentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AssessmentSessionUpsertOne) SetUserID(v string) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateUserID() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *AssessmentSessionUpsertOne) SetTopic(v string) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateTopic() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *AssessmentSessionUpsertOne) SetDifficulty(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *AssessmentSessionUpsertOne) AddDifficulty(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateDifficulty() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *AssessmentSessionUpsertOne) SetTotalQuestions(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *AssessmentSessionUpsertOne) AddTotalQuestions(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateTotalQuestions() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *AssessmentSessionUpsertOne) SetCorrectAnswers(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *AssessmentSessionUpsertOne) AddCorrectAnswers(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateCorrectAnswers() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetScorePercentage sets the "score_percentage" field.
func (u *AssessmentSessionUpsertOne) SetScorePercentage(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetScorePercentage(v)
	})
}

// AddScorePercentage adds v to the "score_percentage" field.
func (u *AssessmentSessionUpsertOne) AddScorePercentage(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddScorePercentage(v)
	})
}

// UpdateScorePercentage sets the "score_percentage" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateScorePercentage() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateScorePercentage()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *AssessmentSessionUpsertOne) SetTimeSpentSeconds(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *AssessmentSessionUpsertOne) AddTimeSpentSeconds(v int) *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *AssessmentSessionUpsertOne) UpdateTimeSpentSeconds() *AssessmentSessionUpsertOne {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// Exec executes the query.
func (u *AssessmentSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssessmentSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssessmentSessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssessmentSessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssessmentSessionCreateBulk is the builder for creating many AssessmentSession entities in bulk.
type AssessmentSessionCreateBulk struct {
	config
	err      error
	builders []*AssessmentSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AssessmentSession entities in the database.
func (_c *AssessmentSessionCreateBulk) Save(ctx context.Context) ([]*AssessmentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentSessionMutation)
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
func (_c *AssessmentSessionCreateBulk) SaveX(ctx context.Context) []*AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssessmentSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssessmentSessionUpsertBulk {
	_c.conflict = opts
	return &AssessmentSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentSessionCreateBulk) OnConflictColumns(columns ...string) *AssessmentSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentSessionUpsertBulk{
		create: _c,
	}
}

// AssessmentSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AssessmentSession nodes.
type AssessmentSessionUpsertBulk struct {
	create *AssessmentSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AssessmentSessionUpsertBulk) UpdateNewValues() *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(assessmentsession.FieldSessionID)
			}
			if _, exists := b.mutation.CompletedAt(); exists {
				s.SetIgnore(assessmentsession.FieldCompletedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssessmentSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssessmentSessionUpsertBulk) Ignore() *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentSessionUpsertBulk) DoNothing() *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AssessmentSessionUpsertBulk) Update(set func(*AssessmentSessionUpsert)) *AssessmentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AssessmentSessionUpsertBulk) SetUserID(v string) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateUserID() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *AssessmentSessionUpsertBulk) SetTopic(v string) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateTopic() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *AssessmentSessionUpsertBulk) SetDifficulty(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *AssessmentSessionUpsertBulk) AddDifficulty(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateDifficulty() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateDifficulty()
	})
}

// SetTotalQuestions sets the "total_questions" field.
func (u *AssessmentSessionUpsertBulk) SetTotalQuestions(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetTotalQuestions(v)
	})
}

// AddTotalQuestions adds v to the "total_questions" field.
func (u *AssessmentSessionUpsertBulk) AddTotalQuestions(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddTotalQuestions(v)
	})
}

// UpdateTotalQuestions sets the "total_questions" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateTotalQuestions() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateTotalQuestions()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *AssessmentSessionUpsertBulk) SetCorrectAnswers(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *AssessmentSessionUpsertBulk) AddCorrectAnswers(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateCorrectAnswers() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetScorePercentage sets the "score_percentage" field.
func (u *AssessmentSessionUpsertBulk) SetScorePercentage(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetScorePercentage(v)
	})
}

// AddScorePercentage adds v to the "score_percentage" field.
func (u *AssessmentSessionUpsertBulk) AddScorePercentage(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddScorePercentage(v)
	})
}

// UpdateScorePercentage sets the "score_percentage" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateScorePercentage() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateScorePercentage()
	})
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (u *AssessmentSessionUpsertBulk) SetTimeSpentSeconds(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.SetTimeSpentSeconds(v)
	})
}

// AddTimeSpentSeconds adds v to the "time_spent_seconds" field.
func (u *AssessmentSessionUpsertBulk) AddTimeSpentSeconds(v int) *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.AddTimeSpentSeconds(v)
	})
}

// UpdateTimeSpentSeconds sets the "time_spent_seconds" field to the value that was provided on create.
func (u *AssessmentSessionUpsertBulk) UpdateTimeSpentSeconds() *AssessmentSessionUpsertBulk {
	return u.Update(func(s *AssessmentSessionUpsert) {
		s.UpdateTimeSpentSeconds()
	})
}

// Exec executes the query.
func (u *AssessmentSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AssessmentSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssessmentSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
