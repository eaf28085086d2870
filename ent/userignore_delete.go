// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"forum-fingerprint-api/ent/predicate"
	"forum-fingerprint-api/ent/userignore"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UserIgnoreDelete is the builder for deleting a UserIgnore entity.
type UserIgnoreDelete struct {
	config
	hooks    []Hook
	mutation *UserIgnoreMutation
}

// Where appends a list predicates to the UserIgnoreDelete builder.
func (_d *UserIgnoreDelete) Where(ps ...predicate.UserIgnore) *UserIgnoreDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserIgnoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserIgnoreDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserIgnoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userignore.Table, sqlgraph.NewFieldSpec(userignore.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UserIgnoreDeleteOne is the builder for deleting a single UserIgnore entity.
type UserIgnoreDeleteOne struct {
	_d *UserIgnoreDelete
}

// Where appends a list predicates to the UserIgnoreDelete builder.
func (_d *UserIgnoreDeleteOne) Where(ps ...predicate.UserIgnore) *UserIgnoreDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserIgnoreDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userignore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserIgnoreDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
