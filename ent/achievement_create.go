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
	"github.com/mathmentor/mathmentor/ent/achievement"
)

// AchievementCreate is the builder for creating a Achievement entity.
type AchievementCreate struct {
	config
	mutation *AchievementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *AchievementCreate) SetUserID(v string) *AchievementCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAchievementType sets the "achievement_type" field.
func (_c *AchievementCreate) SetAchievementType(v string) *AchievementCreate {
	_c.mutation.SetAchievementType(v)
	return _c
}

// SetData sets the "data" field.
func (_c *AchievementCreate) SetData(v map[string]interface{}) *AchievementCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetEarnedAt sets the "earned_at" field.
func (_c *AchievementCreate) SetEarnedAt(v time.Time) *AchievementCreate {
	_c.mutation.SetEarnedAt(v)
	return _c
}

// SetNillableEarnedAt sets the "earned_at" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableEarnedAt(v *time.Time) *AchievementCreate {
	if v != nil {
		_c.SetEarnedAt(*v)
	}
	return _c
}

// Mutation returns the AchievementMutation object of the builder.
func (_c *AchievementCreate) Mutation() *AchievementMutation {
	return _c.mutation
}

// Save creates the Achievement in the database.
func (_c *AchievementCreate) Save(ctx context.Context) (*Achievement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementCreate) SaveX(ctx context.Context) *Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementCreate) defaults() {
	if _, ok := _c.mutation.EarnedAt(); !ok {
		v := achievement.DefaultEarnedAt()
		_c.mutation.SetEarnedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Achievement.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := achievement.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Achievement.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementType(); !ok {
		return &ValidationError{Name: "achievement_type", err: errors.New(`ent: missing required field "Achievement.achievement_type"`)}
	}
	if v, ok := _c.mutation.AchievementType(); ok {
		if err := achievement.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "Achievement.achievement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EarnedAt(); !ok {
		return &ValidationError{Name: "earned_at", err: errors.New(`ent: missing required field "Achievement.earned_at"`)}
	}
	return nil
}

func (_c *AchievementCreate) sqlSave(ctx context.Context) (*Achievement, error) {
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

func (_c *AchievementCreate) createSpec() (*Achievement, *sqlgraph.CreateSpec) {
	var (
		_node = &Achievement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievement.Table, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(achievement.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AchievementType(); ok {
		_spec.SetField(achievement.FieldAchievementType, field.TypeString, value)
		_node.AchievementType = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(achievement.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.EarnedAt(); ok {
		_spec.SetField(achievement.FieldEarnedAt, field.TypeTime, value)
		_node.EarnedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Achievement.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementCreate) OnConflict(opts ...sql.ConflictOption) *AchievementUpsertOne {
	_c.conflict = opts
	return &AchievementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementCreate) OnConflictColumns(columns ...string) *AchievementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementUpsertOne{
		create: _c,
	}
}

type (
	// AchievementUpsertOne is the builder for "upsert"-ing
	//  one Achievement node.
	AchievementUpsertOne struct {
		create *AchievementCreate
	}

	// AchievementUpsert is the "OnConflict" setter.
	AchievementUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AchievementUpsert) SetUserID(v string) *AchievementUpsert {
	u.Set(achievement.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateUserID() *AchievementUpsert {
	u.SetExcluded(achievement.FieldUserID)
	return u
}

// SetAchievementType sets the "achievement_type" field.
func (u *AchievementUpsert) SetAchievementType(v string) *AchievementUpsert {
	u.Set(achievement.FieldAchievementType, v)
	return u
}

// UpdateAchievementType sets the "achievement_type" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateAchievementType() *AchievementUpsert {
	u.SetExcluded(achievement.FieldAchievementType)
	return u
}

// SetData sets the "data" field.
func (u *AchievementUpsert) SetData(v map[string]interface{}) *AchievementUpsert {
	u.Set(achievement.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *AchievementUpsert) UpdateData() *AchievementUpsert {
	u.SetExcluded(achievement.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *AchievementUpsert) ClearData() *AchievementUpsert {
	u.SetNull(achievement.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AchievementUpsertOne) UpdateNewValues() *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.EarnedAt(); exists {
			s.SetIgnore(achievement.FieldEarnedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Achievement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AchievementUpsertOne) Ignore() *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementUpsertOne) DoNothing() *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementCreate.OnConflict
// documentation for more info.
func (u *AchievementUpsertOne) Update(set func(*AchievementUpsert)) *AchievementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AchievementUpsertOne) SetUserID(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateUserID() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateUserID()
	})
}

// SetAchievementType sets the "achievement_type" field.
func (u *AchievementUpsertOne) SetAchievementType(v string) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetAchievementType(v)
	})
}

// UpdateAchievementType sets the "achievement_type" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateAchievementType() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateAchievementType()
	})
}

// SetData sets the "data" field.
func (u *AchievementUpsertOne) SetData(v map[string]interface{}) *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *AchievementUpsertOne) UpdateData() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *AchievementUpsertOne) ClearData() *AchievementUpsertOne {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearData()
	})
}

// Exec executes the query.
func (u *AchievementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AchievementUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AchievementUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AchievementCreateBulk is the builder for creating many Achievement entities in bulk.
type AchievementCreateBulk struct {
	config
	err      error
	builders []*AchievementCreate
	conflict []sql.ConflictOption
}

// Save creates the Achievement entities in the database.
func (_c *AchievementCreateBulk) Save(ctx context.Context) ([]*Achievement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Achievement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementMutation)
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
func (_c *AchievementCreateBulk) SaveX(ctx context.Context) []*Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Achievement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementCreateBulk) OnConflict(opts ...sql.ConflictOption) *AchievementUpsertBulk {
	_c.conflict = opts
	return &AchievementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementCreateBulk) OnConflictColumns(columns ...string) *AchievementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementUpsertBulk{
		create: _c,
	}
}

// AchievementUpsertBulk is the builder for "upsert"-ing
// a bulk of Achievement nodes.
type AchievementUpsertBulk struct {
	create *AchievementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AchievementUpsertBulk) UpdateNewValues() *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.EarnedAt(); exists {
				s.SetIgnore(achievement.FieldEarnedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Achievement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AchievementUpsertBulk) Ignore() *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementUpsertBulk) DoNothing() *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementCreateBulk.OnConflict
// documentation for more info.
func (u *AchievementUpsertBulk) Update(set func(*AchievementUpsert)) *AchievementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AchievementUpsertBulk) SetUserID(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateUserID() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateUserID()
	})
}

// SetAchievementType sets the "achievement_type" field.
func (u *AchievementUpsertBulk) SetAchievementType(v string) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetAchievementType(v)
	})
}

// UpdateAchievementType sets the "achievement_type" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateAchievementType() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateAchievementType()
	})
}

// SetData sets the "data" field.
func (u *AchievementUpsertBulk) SetData(v map[string]interface{}) *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *AchievementUpsertBulk) UpdateData() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *AchievementUpsertBulk) ClearData() *AchievementUpsertBulk {
	return u.Update(func(s *AchievementUpsert) {
		s.ClearData()
	})
}

// Exec executes the query.
func (u *AchievementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AchievementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
