// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"forum-fingerprint-api/ent/predicate"
	"forum-fingerprint-api/ent/userignore"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UserIgnoreUpdate is the builder for updating UserIgnore entities.
type UserIgnoreUpdate struct {
	config
	hooks    []Hook
	mutation *UserIgnoreMutation
}

// Where appends a list predicates to the UserIgnoreUpdate builder.
func (_u *UserIgnoreUpdate) Where(ps ...predicate.UserIgnore) *UserIgnoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserIgnoreUpdate) SetUserID(v int) *UserIgnoreUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserIgnoreUpdate) SetNillableUserID(v *int) *UserIgnoreUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *UserIgnoreUpdate) AddUserID(v int) *UserIgnoreUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetIgnoredUserID sets the "ignored_user_id" field.
func (_u *UserIgnoreUpdate) SetIgnoredUserID(v int) *UserIgnoreUpdate {
	_u.mutation.ResetIgnoredUserID()
	_u.mutation.SetIgnoredUserID(v)
	return _u
}

// SetNillableIgnoredUserID sets the "ignored_user_id" field if the given value is not nil.
func (_u *UserIgnoreUpdate) SetNillableIgnoredUserID(v *int) *UserIgnoreUpdate {
	if v != nil {
		_u.SetIgnoredUserID(*v)
	}
	return _u
}

// AddIgnoredUserID adds value to the "ignored_user_id" field.
func (_u *UserIgnoreUpdate) AddIgnoredUserID(v int) *UserIgnoreUpdate {
	_u.mutation.AddIgnoredUserID(v)
	return _u
}

// Mutation returns the UserIgnoreMutation object of the builder.
func (_u *UserIgnoreUpdate) Mutation() *UserIgnoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserIgnoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserIgnoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserIgnoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserIgnoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserIgnoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userignore.Table, userignore.Columns, sqlgraph.NewFieldSpec(userignore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userignore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(userignore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IgnoredUserID(); ok {
		_spec.SetField(userignore.FieldIgnoredUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIgnoredUserID(); ok {
		_spec.AddField(userignore.FieldIgnoredUserID, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userignore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserIgnoreUpdateOne is the builder for updating a single UserIgnore entity.
type UserIgnoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserIgnoreMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserIgnoreUpdateOne) SetUserID(v int) *UserIgnoreUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserIgnoreUpdateOne) SetNillableUserID(v *int) *UserIgnoreUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *UserIgnoreUpdateOne) AddUserID(v int) *UserIgnoreUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetIgnoredUserID sets the "ignored_user_id" field.
func (_u *UserIgnoreUpdateOne) SetIgnoredUserID(v int) *UserIgnoreUpdateOne {
	_u.mutation.ResetIgnoredUserID()
	_u.mutation.SetIgnoredUserID(v)
	return _u
}

// SetNillableIgnoredUserID sets the "ignored_user_id" field if the given value is not nil.
func (_u *UserIgnoreUpdateOne) SetNillableIgnoredUserID(v *int) *UserIgnoreUpdateOne {
	if v != nil {
		_u.SetIgnoredUserID(*v)
	}
	return _u
}

// AddIgnoredUserID adds value to the "ignored_user_id" field.
func (_u *UserIgnoreUpdateOne) AddIgnoredUserID(v int) *UserIgnoreUpdateOne {
	_u.mutation.AddIgnoredUserID(v)
	return _u
}

// Mutation returns the UserIgnoreMutation object of the builder.
func (_u *UserIgnoreUpdateOne) Mutation() *UserIgnoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserIgnoreUpdate builder.
func (_u *UserIgnoreUpdateOne) Where(ps ...predicate.UserIgnore) *UserIgnoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserIgnoreUpdateOne) Select(field string, fields ...string) *UserIgnoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserIgnore entity.
func (_u *UserIgnoreUpdateOne) Save(ctx context.Context) (*UserIgnore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserIgnoreUpdateOne) SaveX(ctx context.Context) *UserIgnore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserIgnoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserIgnoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserIgnoreUpdateOne) sqlSave(ctx context.Context) (_node *UserIgnore, err error) {
	_spec := sqlgraph.NewUpdateSpec(userignore.Table, userignore.Columns, sqlgraph.NewFieldSpec(userignore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserIgnore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userignore.FieldID)
		for _, f := range fields {
			if !userignore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userignore.FieldID {
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
		_spec.SetField(userignore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(userignore.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IgnoredUserID(); ok {
		_spec.SetField(userignore.FieldIgnoredUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIgnoredUserID(); ok {
		_spec.AddField(userignore.FieldIgnoredUserID, field.TypeInt, value)
	}
	_node = &UserIgnore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userignore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
