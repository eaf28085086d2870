// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FingerprintUpdate is the builder for updating Fingerprint entities.
type FingerprintUpdate struct {
	config
	hooks    []Hook
	mutation *FingerprintMutation
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdate) Where(ps ...predicate.Fingerprint) *FingerprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FingerprintUpdate) SetUserID(v int) *FingerprintUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableUserID(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *FingerprintUpdate) AddUserID(v int) *FingerprintUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FingerprintUpdate) SetName(v string) *FingerprintUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableName(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FingerprintUpdate) SetValue(v string) *FingerprintUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableValue(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FingerprintUpdate) SetData(v string) *FingerprintUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableData(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *FingerprintUpdate) ClearData() *FingerprintUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FingerprintUpdate) SetUpdatedAt(v time.Time) *FingerprintUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdate) Mutation() *FingerprintMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FingerprintUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FingerprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FingerprintUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fingerprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FingerprintUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := fingerprint.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := fingerprint.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.value": %w`, err)}
		}
	}
	return nil
}

func (_u *FingerprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fingerprint.Table, fingerprint.Columns, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(fingerprint.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(fingerprint.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(fingerprint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(fingerprint.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(fingerprint.FieldData, field.TypeString, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(fingerprint.FieldData, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fingerprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FingerprintUpdateOne is the builder for updating a single Fingerprint entity.
type FingerprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FingerprintMutation
}

// SetUserID sets the "user_id" field.
func (_u *FingerprintUpdateOne) SetUserID(v int) *FingerprintUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableUserID(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *FingerprintUpdateOne) AddUserID(v int) *FingerprintUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FingerprintUpdateOne) SetName(v string) *FingerprintUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableName(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *FingerprintUpdateOne) SetValue(v string) *FingerprintUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableValue(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FingerprintUpdateOne) SetData(v string) *FingerprintUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableData(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetData(*v)
	}
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *FingerprintUpdateOne) ClearData() *FingerprintUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FingerprintUpdateOne) SetUpdatedAt(v time.Time) *FingerprintUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdateOne) Mutation() *FingerprintMutation {
	return _u.mutation
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdateOne) Where(ps ...predicate.Fingerprint) *FingerprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FingerprintUpdateOne) Select(field string, fields ...string) *FingerprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fingerprint entity.
func (_u *FingerprintUpdateOne) Save(ctx context.Context) (*Fingerprint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdateOne) SaveX(ctx context.Context) *Fingerprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FingerprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FingerprintUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fingerprint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FingerprintUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := fingerprint.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := fingerprint.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.value": %w`, err)}
		}
	}
	return nil
}

func (_u *FingerprintUpdateOne) sqlSave(ctx context.Context) (_node *Fingerprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fingerprint.Table, fingerprint.Columns, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fingerprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fingerprint.FieldID)
		for _, f := range fields {
			if !fingerprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fingerprint.FieldID {
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
		_spec.SetField(fingerprint.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(fingerprint.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(fingerprint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(fingerprint.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(fingerprint.FieldData, field.TypeString, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(fingerprint.FieldData, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fingerprint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Fingerprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
