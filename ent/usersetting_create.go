// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathmentor/mathmentor/ent/usersetting"
)

// UserSettingCreate is the builder for creating a UserSetting entity.
type UserSettingCreate struct {
	config
	mutation *UserSettingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserSettingCreate) SetUserID(v string) *UserSettingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (_c *UserSettingCreate) SetPreferredDifficulty(v int) *UserSettingCreate {
	_c.mutation.SetPreferredDifficulty(v)
	return _c
}

// SetNillablePreferredDifficulty sets the "preferred_difficulty" field if the given value is not nil.
func (_c *UserSettingCreate) SetNillablePreferredDifficulty(v *int) *UserSettingCreate {
	if v != nil {
		_c.SetPreferredDifficulty(*v)
	}
	return _c
}

// SetDailyGoal sets the "daily_goal" field.
func (_c *UserSettingCreate) SetDailyGoal(v int) *UserSettingCreate {
	_c.mutation.SetDailyGoal(v)
	return _c
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_c *UserSettingCreate) SetNillableDailyGoal(v *int) *UserSettingCreate {
	if v != nil {
		_c.SetDailyGoal(*v)
	}
	return _c
}

// Mutation returns the UserSettingMutation object of the builder.
func (_c *UserSettingCreate) Mutation() *UserSettingMutation {
	return _c.mutation
}

// Save creates the UserSetting in the database.
func (_c *UserSettingCreate) Save(ctx context.Context) (*UserSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSettingCreate) SaveX(ctx context.Context) *UserSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSettingCreate) defaults() {
	if _, ok := _c.mutation.PreferredDifficulty(); !ok {
		v := usersetting.DefaultPreferredDifficulty
		_c.mutation.SetPreferredDifficulty(v)
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		v := usersetting.DefaultDailyGoal
		_c.mutation.SetDailyGoal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSettingCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserSetting.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := usersetting.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSetting.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreferredDifficulty(); !ok {
		return &ValidationError{Name: "preferred_difficulty", err: errors.New(`ent: missing required field "UserSetting.preferred_difficulty"`)}
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		return &ValidationError{Name: "daily_goal", err: errors.New(`ent: missing required field "UserSetting.daily_goal"`)}
	}
	return nil
}

func (_c *UserSettingCreate) sqlSave(ctx context.Context) (*UserSetting, error) {
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

func (_c *UserSettingCreate) createSpec() (*UserSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usersetting.Table, sqlgraph.NewFieldSpec(usersetting.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usersetting.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PreferredDifficulty(); ok {
		_spec.SetField(usersetting.FieldPreferredDifficulty, field.TypeInt, value)
		_node.PreferredDifficulty = value
	}
	if value, ok := _c.mutation.DailyGoal(); ok {
		_spec.SetField(usersetting.FieldDailyGoal, field.TypeInt, value)
		_node.DailyGoal = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSetting.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSettingUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSettingCreate) OnConflict(opts ...sql.ConflictOption) *UserSettingUpsertOne {
	_c.conflict = opts
	return &UserSettingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSettingCreate) OnConflictColumns(columns ...string) *UserSettingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSettingUpsertOne{
		create: _c,
	}
}

type (
	// UserSettingUpsertOne is the builder for "upsert"-ing
	//  one UserSetting node.
	UserSettingUpsertOne struct {
		create *UserSettingCreate
	}

	// UserSettingUpsert is the "OnConflict" setter.
	UserSettingUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserSettingUpsert) SetUserID(v string) *UserSettingUpsert {
	u.Set(usersetting.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSettingUpsert) UpdateUserID() *UserSettingUpsert {
	u.SetExcluded(usersetting.FieldUserID)
	return u
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (u *UserSettingUpsert) SetPreferredDifficulty(v int) *UserSettingUpsert {
	u.Set(usersetting.FieldPreferredDifficulty, v)
	return u
}

// UpdatePreferredDifficulty sets the "preferred_difficulty" field to the value that was provided on create.
func (u *UserSettingUpsert) UpdatePreferredDifficulty() *UserSettingUpsert {
	u.SetExcluded(usersetting.FieldPreferredDifficulty)
	return u
}

// AddPreferredDifficulty adds v to the "preferred_difficulty" field.
func (u *UserSettingUpsert) AddPreferredDifficulty(v int) *UserSettingUpsert {
	u.Add(usersetting.FieldPreferredDifficulty, v)
	return u
}

// SetDailyGoal sets the "daily_goal" field.
func (u *UserSettingUpsert) SetDailyGoal(v int) *UserSettingUpsert {
	u.Set(usersetting.FieldDailyGoal, v)
	return u
}

// UpdateDailyGoal sets the "daily_goal" field to the value that was provided on create.
func (u *UserSettingUpsert) UpdateDailyGoal() *UserSettingUpsert {
	u.SetExcluded(usersetting.FieldDailyGoal)
	return u
}

// AddDailyGoal adds v to the "daily_goal" field.
func (u *UserSettingUpsert) AddDailyGoal(v int) *UserSettingUpsert {
	u.Add(usersetting.FieldDailyGoal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserSettingUpsertOne) UpdateNewValues() *UserSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSetting.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserSettingUpsertOne) Ignore() *UserSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSettingUpsertOne) DoNothing() *UserSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSettingCreate.OnConflict
// documentation for more info.
func (u *UserSettingUpsertOne) Update(set func(*UserSettingUpsert)) *UserSettingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSettingUpsertOne) SetUserID(v string) *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSettingUpsertOne) UpdateUserID() *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.UpdateUserID()
	})
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (u *UserSettingUpsertOne) SetPreferredDifficulty(v int) *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.SetPreferredDifficulty(v)
	})
}

// AddPreferredDifficulty adds v to the "preferred_difficulty" field.
func (u *UserSettingUpsertOne) AddPreferredDifficulty(v int) *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.AddPreferredDifficulty(v)
	})
}

// UpdatePreferredDifficulty sets the "preferred_difficulty" field to the value that was provided on create.
func (u *UserSettingUpsertOne) UpdatePreferredDifficulty() *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.UpdatePreferredDifficulty()
	})
}

// SetDailyGoal sets the "daily_goal" field.
func (u *UserSettingUpsertOne) SetDailyGoal(v int) *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.SetDailyGoal(v)
	})
}

// AddDailyGoal adds v to the "daily_goal" field.
func (u *UserSettingUpsertOne) AddDailyGoal(v int) *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.AddDailyGoal(v)
	})
}

// UpdateDailyGoal sets the "daily_goal" field to the value that was provided on create.
func (u *UserSettingUpsertOne) UpdateDailyGoal() *UserSettingUpsertOne {
	return u.Update(func(s *UserSettingUpsert) {
		s.UpdateDailyGoal()
	})
}

// Exec executes the query.
func (u *UserSettingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserSettingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSettingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserSettingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserSettingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserSettingCreateBulk is the builder for creating many UserSetting entities in bulk.
type UserSettingCreateBulk struct {
	config
	err      error
	builders []*UserSettingCreate
	conflict []sql.ConflictOption
}

// Save creates the UserSetting entities in the database.
func (_c *UserSettingCreateBulk) Save(ctx context.Context) ([]*UserSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSettingMutation)
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
func (_c *UserSettingCreateBulk) SaveX(ctx context.Context) []*UserSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSetting.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSettingUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSettingCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserSettingUpsertBulk {
	_c.conflict = opts
	return &UserSettingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSetting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSettingCreateBulk) OnConflictColumns(columns ...string) *UserSettingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSettingUpsertBulk{
		create: _c,
	}
}

// UserSettingUpsertBulk is the builder for "upsert"-ing
// a bulk of UserSetting nodes.
type UserSettingUpsertBulk struct {
	create *UserSettingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserSetting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserSettingUpsertBulk) UpdateNewValues() *UserSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSetting.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserSettingUpsertBulk) Ignore() *UserSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSettingUpsertBulk) DoNothing() *UserSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSettingCreateBulk.OnConflict
// documentation for more info.
func (u *UserSettingUpsertBulk) Update(set func(*UserSettingUpsert)) *UserSettingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSettingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSettingUpsertBulk) SetUserID(v string) *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSettingUpsertBulk) UpdateUserID() *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.UpdateUserID()
	})
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (u *UserSettingUpsertBulk) SetPreferredDifficulty(v int) *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.SetPreferredDifficulty(v)
	})
}

// AddPreferredDifficulty adds v to the "preferred_difficulty" field.
func (u *UserSettingUpsertBulk) AddPreferredDifficulty(v int) *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.AddPreferredDifficulty(v)
	})
}

// UpdatePreferredDifficulty sets the "preferred_difficulty" field to the value that was provided on create.
func (u *UserSettingUpsertBulk) UpdatePreferredDifficulty() *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.UpdatePreferredDifficulty()
	})
}

// SetDailyGoal sets the "daily_goal" field.
func (u *UserSettingUpsertBulk) SetDailyGoal(v int) *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.SetDailyGoal(v)
	})
}

// AddDailyGoal adds v to the "daily_goal" field.
func (u *UserSettingUpsertBulk) AddDailyGoal(v int) *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.AddDailyGoal(v)
	})
}

// UpdateDailyGoal sets the "daily_goal" field to the value that was provided on create.
func (u *UserSettingUpsertBulk) UpdateDailyGoal() *UserSettingUpsertBulk {
	return u.Update(func(s *UserSettingUpsert) {
		s.UpdateDailyGoal()
	})
}

// Exec executes the query.
func (u *UserSettingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserSettingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserSettingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSettingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
