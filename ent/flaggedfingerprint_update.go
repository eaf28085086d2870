// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"forum-fingerprint-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlaggedFingerprintUpdate is the builder for updating FlaggedFingerprint entities.
type FlaggedFingerprintUpdate struct {
	config
	hooks    []Hook
	mutation *FlaggedFingerprintMutation
}

// Where appends a list predicates to the FlaggedFingerprintUpdate builder.
func (_u *FlaggedFingerprintUpdate) Where(ps ...predicate.FlaggedFingerprint) *FlaggedFingerprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *FlaggedFingerprintUpdate) SetValue(v string) *FlaggedFingerprintUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FlaggedFingerprintUpdate) SetNillableValue(v *string) *FlaggedFingerprintUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *FlaggedFingerprintUpdate) SetHidden(v bool) *FlaggedFingerprintUpdate {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *FlaggedFingerprintUpdate) SetNillableHidden(v *bool) *FlaggedFingerprintUpdate {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetSilenced sets the "silenced" field.
func (_u *FlaggedFingerprintUpdate) SetSilenced(v bool) *FlaggedFingerprintUpdate {
	_u.mutation.SetSilenced(v)
	return _u
}

// SetNillableSilenced sets the "silenced" field if the given value is not nil.
func (_u *FlaggedFingerprintUpdate) SetNillableSilenced(v *bool) *FlaggedFingerprintUpdate {
	if v != nil {
		_u.SetSilenced(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlaggedFingerprintUpdate) SetUpdatedAt(v time.Time) *FlaggedFingerprintUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FlaggedFingerprintMutation object of the builder.
func (_u *FlaggedFingerprintUpdate) Mutation() *FlaggedFingerprintMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlaggedFingerprintUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlaggedFingerprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlaggedFingerprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlaggedFingerprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlaggedFingerprintUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flaggedfingerprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlaggedFingerprintUpdate) check() error {
	if v, ok := _u.mutation.Value(); ok {
		if err := flaggedfingerprint.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "FlaggedFingerprint.value": %w`, err)}
		}
	}
	return nil
}

func (_u *FlaggedFingerprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flaggedfingerprint.Table, flaggedfingerprint.Columns, sqlgraph.NewFieldSpec(flaggedfingerprint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(flaggedfingerprint.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(flaggedfingerprint.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Silenced(); ok {
		_spec.SetField(flaggedfingerprint.FieldSilenced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flaggedfingerprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flaggedfingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlaggedFingerprintUpdateOne is the builder for updating a single FlaggedFingerprint entity.
type FlaggedFingerprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlaggedFingerprintMutation
}

// SetValue sets the "value" field.
func (_u *FlaggedFingerprintUpdateOne) SetValue(v string) *FlaggedFingerprintUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FlaggedFingerprintUpdateOne) SetNillableValue(v *string) *FlaggedFingerprintUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetHidden sets the "hidden" field.
func (_u *FlaggedFingerprintUpdateOne) SetHidden(v bool) *FlaggedFingerprintUpdateOne {
	_u.mutation.SetHidden(v)
	return _u
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_u *FlaggedFingerprintUpdateOne) SetNillableHidden(v *bool) *FlaggedFingerprintUpdateOne {
	if v != nil {
		_u.SetHidden(*v)
	}
	return _u
}

// SetSilenced sets the "silenced" field.
func (_u *FlaggedFingerprintUpdateOne) SetSilenced(v bool) *FlaggedFingerprintUpdateOne {
	_u.mutation.SetSilenced(v)
	return _u
}

// SetNillableSilenced sets the "silenced" field if the given value is not nil.
func (_u *FlaggedFingerprintUpdateOne) SetNillableSilenced(v *bool) *FlaggedFingerprintUpdateOne {
	if v != nil {
		_u.SetSilenced(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlaggedFingerprintUpdateOne) SetUpdatedAt(v time.Time) *FlaggedFingerprintUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FlaggedFingerprintMutation object of the builder.
func (_u *FlaggedFingerprintUpdateOne) Mutation() *FlaggedFingerprintMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlaggedFingerprintUpdate builder.
func (_u *FlaggedFingerprintUpdateOne) Where(ps ...predicate.FlaggedFingerprint) *FlaggedFingerprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlaggedFingerprintUpdateOne) Select(field string, fields ...string) *FlaggedFingerprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlaggedFingerprint entity.
func (_u *FlaggedFingerprintUpdateOne) Save(ctx context.Context) (*FlaggedFingerprint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlaggedFingerprintUpdateOne) SaveX(ctx context.Context) *FlaggedFingerprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlaggedFingerprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlaggedFingerprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlaggedFingerprintUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flaggedfingerprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlaggedFingerprintUpdateOne) check() error {
	if v, ok := _u.mutation.Value(); ok {
		if err := flaggedfingerprint.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "FlaggedFingerprint.value": %w`, err)}
		}
	}
	return nil
}

func (_u *FlaggedFingerprintUpdateOne) sqlSave(ctx context.Context) (_node *FlaggedFingerprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flaggedfingerprint.Table, flaggedfingerprint.Columns, sqlgraph.NewFieldSpec(flaggedfingerprint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlaggedFingerprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flaggedfingerprint.FieldID)
		for _, f := range fields {
			if !flaggedfingerprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flaggedfingerprint.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(flaggedfingerprint.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hidden(); ok {
		_spec.SetField(flaggedfingerprint.FieldHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Silenced(); ok {
		_spec.SetField(flaggedfingerprint.FieldSilenced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flaggedfingerprint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FlaggedFingerprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flaggedfingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
