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
	"github.com/mathmentor/mathmentor/ent/usersetting"
)

// UserSettingUpdate is the builder for updating UserSetting entities.
type UserSettingUpdate struct {
	config
	hooks    []Hook
	mutation *UserSettingMutation
}

// Where appends a list predicates to the UserSettingUpdate builder.
func (_u *UserSettingUpdate) Where(ps ...predicate.UserSetting) *UserSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserSettingUpdate) SetUserID(v string) *UserSettingUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSettingUpdate) SetNillableUserID(v *string) *UserSettingUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (_u *UserSettingUpdate) SetPreferredDifficulty(v int) *UserSettingUpdate {
	_u.mutation.ResetPreferredDifficulty()
	_u.mutation.SetPreferredDifficulty(v)
	return _u
}

// SetNillablePreferredDifficulty sets the "preferred_difficulty" field if the given value is not nil.
func (_u *UserSettingUpdate) SetNillablePreferredDifficulty(v *int) *UserSettingUpdate {
	if v != nil {
		_u.SetPreferredDifficulty(*v)
	}
	return _u
}

// AddPreferredDifficulty adds value to the "preferred_difficulty" field.
func (_u *UserSettingUpdate) AddPreferredDifficulty(v int) *UserSettingUpdate {
	_u.mutation.AddPreferredDifficulty(v)
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *UserSettingUpdate) SetDailyGoal(v int) *UserSettingUpdate {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *UserSettingUpdate) SetNillableDailyGoal(v *int) *UserSettingUpdate {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *UserSettingUpdate) AddDailyGoal(v int) *UserSettingUpdate {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// Mutation returns the UserSettingMutation object of the builder.
func (_u *UserSettingUpdate) Mutation() *UserSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserSettingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSettingUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := usersetting.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSetting.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usersetting.Table, usersetting.Columns, sqlgraph.NewFieldSpec(usersetting.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usersetting.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredDifficulty(); ok {
		_spec.SetField(usersetting.FieldPreferredDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreferredDifficulty(); ok {
		_spec.AddField(usersetting.FieldPreferredDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(usersetting.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(usersetting.FieldDailyGoal, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usersetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserSettingUpdateOne is the builder for updating a single UserSetting entity.
type UserSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserSettingMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserSettingUpdateOne) SetUserID(v string) *UserSettingUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserSettingUpdateOne) SetNillableUserID(v *string) *UserSettingUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (_u *UserSettingUpdateOne) SetPreferredDifficulty(v int) *UserSettingUpdateOne {
	_u.mutation.ResetPreferredDifficulty()
	_u.mutation.SetPreferredDifficulty(v)
	return _u
}

// SetNillablePreferredDifficulty sets the "preferred_difficulty" field if the given value is not nil.
func (_u *UserSettingUpdateOne) SetNillablePreferredDifficulty(v *int) *UserSettingUpdateOne {
	if v != nil {
		_u.SetPreferredDifficulty(*v)
	}
	return _u
}

// AddPreferredDifficulty adds value to the "preferred_difficulty" field.
func (_u *UserSettingUpdateOne) AddPreferredDifficulty(v int) *UserSettingUpdateOne {
	_u.mutation.AddPreferredDifficulty(v)
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *UserSettingUpdateOne) SetDailyGoal(v int) *UserSettingUpdateOne {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *UserSettingUpdateOne) SetNillableDailyGoal(v *int) *UserSettingUpdateOne {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *UserSettingUpdateOne) AddDailyGoal(v int) *UserSettingUpdateOne {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// Mutation returns the UserSettingMutation object of the builder.
func (_u *UserSettingUpdateOne) Mutation() *UserSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserSettingUpdate builder.
func (_u *UserSettingUpdateOne) Where(ps ...predicate.UserSetting) *UserSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserSettingUpdateOne) Select(field string, fields ...string) *UserSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserSetting entity.
func (_u *UserSettingUpdateOne) Save(ctx context.Context) (*UserSetting, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserSettingUpdateOne) SaveX(ctx context.Context) *UserSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserSettingUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := usersetting.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSetting.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *UserSettingUpdateOne) sqlSave(ctx context.Context) (_node *UserSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usersetting.Table, usersetting.Columns, sqlgraph.NewFieldSpec(usersetting.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usersetting.FieldID)
		for _, f := range fields {
			if !usersetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usersetting.FieldID {
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
		_spec.SetField(usersetting.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredDifficulty(); ok {
		_spec.SetField(usersetting.FieldPreferredDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreferredDifficulty(); ok {
		_spec.AddField(usersetting.FieldPreferredDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(usersetting.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(usersetting.FieldDailyGoal, field.TypeInt, value)
	}
	_node = &UserSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usersetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
