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
	"github.com/mathmentor/mathmentor/ent/topicprogress"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TopicProgressCreate) SetUserID(v string) *TopicProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicProgressCreate) SetTopic(v string) *TopicProgressCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (_c *TopicProgressCreate) SetTotalQuestionsAttempted(v int) *TopicProgressCreate {
	_c.mutation.SetTotalQuestionsAttempted(v)
	return _c
}

// SetNillableTotalQuestionsAttempted sets the "total_questions_attempted" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableTotalQuestionsAttempted(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetTotalQuestionsAttempted(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *TopicProgressCreate) SetCorrectAnswers(v int) *TopicProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableCorrectAnswers(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *TopicProgressCreate) SetMasteryLevel(v int) *TopicProgressCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableMasteryLevel(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *TopicProgressCreate) SetLastPracticedAt(v time.Time) *TopicProgressCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableLastPracticedAt(v *time.Time) *TopicProgressCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_c *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return _c.mutation
}

// Save creates the TopicProgress in the database.
func (_c *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicProgressCreate) defaults() {
	if _, ok := _c.mutation.TotalQuestionsAttempted(); !ok {
		v := topicprogress.DefaultTotalQuestionsAttempted
		_c.mutation.SetTotalQuestionsAttempted(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := topicprogress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := topicprogress.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		v := topicprogress.DefaultLastPracticedAt()
		_c.mutation.SetLastPracticedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicProgress.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := topicprogress.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestionsAttempted(); !ok {
		return &ValidationError{Name: "total_questions_attempted", err: errors.New(`ent: missing required field "TopicProgress.total_questions_attempted"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "TopicProgress.correct_answers"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "TopicProgress.mastery_level"`)}
	}
	if _, ok := _c.mutation.LastPracticedAt(); !ok {
		return &ValidationError{Name: "last_practiced_at", err: errors.New(`ent: missing required field "TopicProgress.last_practiced_at"`)}
	}
	return nil
}

func (_c *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
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

func (_c *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topicprogress.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.TotalQuestionsAttempted(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestionsAttempted, field.TypeInt, value)
		_node.TotalQuestionsAttempted = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(topicprogress.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(topicprogress.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicProgressCreate) OnConflict(opts ...sql.ConflictOption) *TopicProgressUpsertOne {
	_c.conflict = opts
	return &TopicProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicProgressCreate) OnConflictColumns(columns ...string) *TopicProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicProgressUpsertOne{
		create: _c,
	}
}

type (
	// TopicProgressUpsertOne is the builder for "upsert"-ing
	//  one TopicProgress node.
	TopicProgressUpsertOne struct {
		create *TopicProgressCreate
	}

	// TopicProgressUpsert is the "OnConflict" setter.
	TopicProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsert) SetUserID(v string) *TopicProgressUpsert {
	u.Set(topicprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateUserID() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldUserID)
	return u
}

// SetTopic sets the "topic" field.
func (u *TopicProgressUpsert) SetTopic(v string) *TopicProgressUpsert {
	u.Set(topicprogress.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateTopic() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldTopic)
	return u
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (u *TopicProgressUpsert) SetTotalQuestionsAttempted(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldTotalQuestionsAttempted, v)
	return u
}

// UpdateTotalQuestionsAttempted sets the "total_questions_attempted" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateTotalQuestionsAttempted() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldTotalQuestionsAttempted)
	return u
}

// AddTotalQuestionsAttempted adds v to the "total_questions_attempted" field.
func (u *TopicProgressUpsert) AddTotalQuestionsAttempted(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldTotalQuestionsAttempted, v)
	return u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *TopicProgressUpsert) SetCorrectAnswers(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldCorrectAnswers, v)
	return u
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateCorrectAnswers() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldCorrectAnswers)
	return u
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *TopicProgressUpsert) AddCorrectAnswers(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldCorrectAnswers, v)
	return u
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *TopicProgressUpsert) SetMasteryLevel(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldMasteryLevel, v)
	return u
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateMasteryLevel() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldMasteryLevel)
	return u
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *TopicProgressUpsert) AddMasteryLevel(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldMasteryLevel, v)
	return u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *TopicProgressUpsert) SetLastPracticedAt(v time.Time) *TopicProgressUpsert {
	u.Set(topicprogress.FieldLastPracticedAt, v)
	return u
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateLastPracticedAt() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldLastPracticedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProgressUpsertOne) UpdateNewValues() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicProgressUpsertOne) Ignore() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProgressUpsertOne) DoNothing() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProgressCreate.OnConflict
// documentation for more info.
func (u *TopicProgressUpsertOne) Update(set func(*TopicProgressUpsert)) *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsertOne) SetUserID(v string) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateUserID() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *TopicProgressUpsertOne) SetTopic(v string) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateTopic() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTopic()
	})
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (u *TopicProgressUpsertOne) SetTotalQuestionsAttempted(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTotalQuestionsAttempted(v)
	})
}

// AddTotalQuestionsAttempted adds v to the "total_questions_attempted" field.
func (u *TopicProgressUpsertOne) AddTotalQuestionsAttempted(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddTotalQuestionsAttempted(v)
	})
}

// UpdateTotalQuestionsAttempted sets the "total_questions_attempted" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateTotalQuestionsAttempted() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTotalQuestionsAttempted()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *TopicProgressUpsertOne) SetCorrectAnswers(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *TopicProgressUpsertOne) AddCorrectAnswers(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateCorrectAnswers() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *TopicProgressUpsertOne) SetMasteryLevel(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetMasteryLevel(v)
	})
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *TopicProgressUpsertOne) AddMasteryLevel(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateMasteryLevel() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *TopicProgressUpsertOne) SetLastPracticedAt(v time.Time) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateLastPracticedAt() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// Exec executes the query.
func (u *TopicProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the TopicProgress entities in the database.
func (_c *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
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
func (_c *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicProgressUpsertBulk {
	_c.conflict = opts
	return &TopicProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicProgressCreateBulk) OnConflictColumns(columns ...string) *TopicProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicProgressUpsertBulk{
		create: _c,
	}
}

// TopicProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of TopicProgress nodes.
type TopicProgressUpsertBulk struct {
	create *TopicProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProgressUpsertBulk) UpdateNewValues() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicProgressUpsertBulk) Ignore() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProgressUpsertBulk) DoNothing() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProgressCreateBulk.OnConflict
// documentation for more info.
func (u *TopicProgressUpsertBulk) Update(set func(*TopicProgressUpsert)) *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsertBulk) SetUserID(v string) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateUserID() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetTopic sets the "topic" field.
func (u *TopicProgressUpsertBulk) SetTopic(v string) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateTopic() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTopic()
	})
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (u *TopicProgressUpsertBulk) SetTotalQuestionsAttempted(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTotalQuestionsAttempted(v)
	})
}

// AddTotalQuestionsAttempted adds v to the "total_questions_attempted" field.
func (u *TopicProgressUpsertBulk) AddTotalQuestionsAttempted(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddTotalQuestionsAttempted(v)
	})
}

// UpdateTotalQuestionsAttempted sets the "total_questions_attempted" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateTotalQuestionsAttempted() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTotalQuestionsAttempted()
	})
}

// SetCorrectAnswers sets the "correct_answers" field.
func (u *TopicProgressUpsertBulk) SetCorrectAnswers(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetCorrectAnswers(v)
	})
}

// AddCorrectAnswers adds v to the "correct_answers" field.
func (u *TopicProgressUpsertBulk) AddCorrectAnswers(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddCorrectAnswers(v)
	})
}

// UpdateCorrectAnswers sets the "correct_answers" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateCorrectAnswers() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateCorrectAnswers()
	})
}

// SetMasteryLevel sets the "mastery_level" field.
func (u *TopicProgressUpsertBulk) SetMasteryLevel(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetMasteryLevel(v)
	})
}

// AddMasteryLevel adds v to the "mastery_level" field.
func (u *TopicProgressUpsertBulk) AddMasteryLevel(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddMasteryLevel(v)
	})
}

// UpdateMasteryLevel sets the "mastery_level" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateMasteryLevel() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateMasteryLevel()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *TopicProgressUpsertBulk) SetLastPracticedAt(v time.Time) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateLastPracticedAt() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// Exec executes the query.
func (u *TopicProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
