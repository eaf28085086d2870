// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"forum-fingerprint-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlaggedFingerprintDelete is the builder for deleting a FlaggedFingerprint entity.
type FlaggedFingerprintDelete struct {
	config
	hooks    []Hook
	mutation *FlaggedFingerprintMutation
}

// Where appends a list predicates to the FlaggedFingerprintDelete builder.
func (_d *FlaggedFingerprintDelete) Where(ps ...predicate.FlaggedFingerprint) *FlaggedFingerprintDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FlaggedFingerprintDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlaggedFingerprintDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FlaggedFingerprintDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(flaggedfingerprint.Table, sqlgraph.NewFieldSpec(flaggedfingerprint.FieldID, field.TypeInt))
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

// FlaggedFingerprintDeleteOne is the builder for deleting a single FlaggedFingerprint entity.
type FlaggedFingerprintDeleteOne struct {
	_d *FlaggedFingerprintDelete
}

// Where appends a list predicates to the FlaggedFingerprintDelete builder.
func (_d *FlaggedFingerprintDeleteOne) Where(ps ...predicate.FlaggedFingerprint) *FlaggedFingerprintDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FlaggedFingerprintDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{flaggedfingerprint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FlaggedFingerprintDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
