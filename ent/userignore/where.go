// Code generated by ent, DO NOT EDIT.

package userignore

import (
	"forum-fingerprint-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldUserID, v))
}

// IgnoredUserID applies equality check predicate on the "ignored_user_id" field. It's identical to IgnoredUserIDEQ.
func IgnoredUserID(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldIgnoredUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLTE(FieldUserID, v))
}

// IgnoredUserIDEQ applies the EQ predicate on the "ignored_user_id" field.
func IgnoredUserIDEQ(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldIgnoredUserID, v))
}

// IgnoredUserIDNEQ applies the NEQ predicate on the "ignored_user_id" field.
func IgnoredUserIDNEQ(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNEQ(FieldIgnoredUserID, v))
}

// IgnoredUserIDIn applies the In predicate on the "ignored_user_id" field.
func IgnoredUserIDIn(vs ...int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldIn(FieldIgnoredUserID, vs...))
}

// IgnoredUserIDNotIn applies the NotIn predicate on the "ignored_user_id" field.
func IgnoredUserIDNotIn(vs ...int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNotIn(FieldIgnoredUserID, vs...))
}

// IgnoredUserIDGT applies the GT predicate on the "ignored_user_id" field.
func IgnoredUserIDGT(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGT(FieldIgnoredUserID, v))
}

// IgnoredUserIDGTE applies the GTE predicate on the "ignored_user_id" field.
func IgnoredUserIDGTE(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGTE(FieldIgnoredUserID, v))
}

// IgnoredUserIDLT applies the LT predicate on the "ignored_user_id" field.
func IgnoredUserIDLT(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLT(FieldIgnoredUserID, v))
}

// IgnoredUserIDLTE applies the LTE predicate on the "ignored_user_id" field.
func IgnoredUserIDLTE(v int) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLTE(FieldIgnoredUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserIgnore {
	return predicate.UserIgnore(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserIgnore) predicate.UserIgnore {
	return predicate.UserIgnore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserIgnore) predicate.UserIgnore {
	return predicate.UserIgnore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserIgnore) predicate.UserIgnore {
	return predicate.UserIgnore(sql.NotPredicates(p))
}
