// Code generated by ent, DO NOT EDIT.

package usersetting

import (
	"entgo.io/ent/dialect/sql"
	"github.com/mathmentor/mathmentor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldUserID, v))
}

// PreferredDifficulty applies equality check predicate on the "preferred_difficulty" field. It's identical to PreferredDifficultyEQ.
func PreferredDifficulty(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldPreferredDifficulty, v))
}

// DailyGoal applies equality check predicate on the "daily_goal" field. It's identical to DailyGoalEQ.
func DailyGoal(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldDailyGoal, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldContainsFold(FieldUserID, v))
}

// PreferredDifficultyEQ applies the EQ predicate on the "preferred_difficulty" field.
func PreferredDifficultyEQ(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldPreferredDifficulty, v))
}

// PreferredDifficultyNEQ applies the NEQ predicate on the "preferred_difficulty" field.
func PreferredDifficultyNEQ(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldPreferredDifficulty, v))
}

// PreferredDifficultyIn applies the In predicate on the "preferred_difficulty" field.
func PreferredDifficultyIn(vs ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldPreferredDifficulty, vs...))
}

// PreferredDifficultyNotIn applies the NotIn predicate on the "preferred_difficulty" field.
func PreferredDifficultyNotIn(vs ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldPreferredDifficulty, vs...))
}

// PreferredDifficultyGT applies the GT predicate on the "preferred_difficulty" field.
func PreferredDifficultyGT(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldPreferredDifficulty, v))
}

// PreferredDifficultyGTE applies the GTE predicate on the "preferred_difficulty" field.
func PreferredDifficultyGTE(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldPreferredDifficulty, v))
}

// PreferredDifficultyLT applies the LT predicate on the "preferred_difficulty" field.
func PreferredDifficultyLT(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldPreferredDifficulty, v))
}

// PreferredDifficultyLTE applies the LTE predicate on the "preferred_difficulty" field.
func PreferredDifficultyLTE(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldPreferredDifficulty, v))
}

// DailyGoalEQ applies the EQ predicate on the "daily_goal" field.
func DailyGoalEQ(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldDailyGoal, v))
}

// DailyGoalNEQ applies the NEQ predicate on the "daily_goal" field.
func DailyGoalNEQ(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldDailyGoal, v))
}

// DailyGoalIn applies the In predicate on the "daily_goal" field.
func DailyGoalIn(vs ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldDailyGoal, vs...))
}

// DailyGoalNotIn applies the NotIn predicate on the "daily_goal" field.
func DailyGoalNotIn(vs ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldDailyGoal, vs...))
}

// DailyGoalGT applies the GT predicate on the "daily_goal" field.
func DailyGoalGT(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldDailyGoal, v))
}

// DailyGoalGTE applies the GTE predicate on the "daily_goal" field.
func DailyGoalGTE(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldDailyGoal, v))
}

// DailyGoalLT applies the LT predicate on the "daily_goal" field.
func DailyGoalLT(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldDailyGoal, v))
}

// DailyGoalLTE applies the LTE predicate on the "daily_goal" field.
func DailyGoalLTE(v int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldDailyGoal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSetting) predicate.UserSetting {
	return predicate.UserSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSetting) predicate.UserSetting {
	return predicate.UserSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSetting) predicate.UserSetting {
	return predicate.UserSetting(sql.NotPredicates(p))
}
