// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FingerprintDelete is the builder for deleting a Fingerprint entity.
type FingerprintDelete struct {
	config
	hooks    []Hook
	mutation *FingerprintMutation
}

// Where appends a list predicates to the FingerprintDelete builder.
func (_d *FingerprintDelete) Where(ps ...predicate.Fingerprint) *FingerprintDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FingerprintDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FingerprintDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FingerprintDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fingerprint.Table, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeInt))
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

// FingerprintDeleteOne is the builder for deleting a single Fingerprint entity.
type FingerprintDeleteOne struct {
	_d *FingerprintDelete
}

// Where appends a list predicates to the FingerprintDelete builder.
func (_d *FingerprintDeleteOne) Where(ps ...predicate.Fingerprint) *FingerprintDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FingerprintDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fingerprint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FingerprintDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
