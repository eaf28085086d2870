// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"forum-fingerprint-api/ent/fingerprint"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FingerprintCreate is the builder for creating a Fingerprint entity.
type FingerprintCreate struct {
	config
	mutation *FingerprintMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *FingerprintCreate) SetUserID(v int) *FingerprintCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FingerprintCreate) SetName(v string) *FingerprintCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *FingerprintCreate) SetValue(v string) *FingerprintCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetData sets the "data" field.
func (_c *FingerprintCreate) SetData(v string) *FingerprintCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetNillableData sets the "data" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableData(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetData(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FingerprintCreate) SetCreatedAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableCreatedAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FingerprintCreate) SetUpdatedAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableUpdatedAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the FingerprintMutation object of the builder.
func (_c *FingerprintCreate) Mutation() *FingerprintMutation {
	return _c.mutation
}

// Save creates the Fingerprint in the database.
func (_c *FingerprintCreate) Save(ctx context.Context) (*Fingerprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FingerprintCreate) SaveX(ctx context.Context) *Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FingerprintCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fingerprint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fingerprint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FingerprintCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Fingerprint.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Fingerprint.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := fingerprint.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Fingerprint.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := fingerprint.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Fingerprint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Fingerprint.updated_at"`)}
	}
	return nil
}

func (_c *FingerprintCreate) sqlSave(ctx context.Context) (*Fingerprint, error) {
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

func (_c *FingerprintCreate) createSpec() (*Fingerprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Fingerprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fingerprint.Table, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(fingerprint.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(fingerprint.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(fingerprint.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(fingerprint.FieldData, field.TypeString, value)
		_node.Data = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fingerprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fingerprint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Fingerprint.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FingerprintUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *FingerprintCreate) OnConflict(opts ...sql.ConflictOption) *FingerprintUpsertOne {
	_c.conflict = opts
	return &FingerprintUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FingerprintCreate) OnConflictColumns(columns ...string) *FingerprintUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FingerprintUpsertOne{
		create: _c,
	}
}

type (
	// FingerprintUpsertOne is the builder for "upsert"-ing
	//  one Fingerprint node.
	FingerprintUpsertOne struct {
		create *FingerprintCreate
	}

	// FingerprintUpsert is the "OnConflict" setter.
	FingerprintUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *FingerprintUpsert) SetUserID(v int) *FingerprintUpsert {
	u.Set(fingerprint.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateUserID() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *FingerprintUpsert) AddUserID(v int) *FingerprintUpsert {
	u.Add(fingerprint.FieldUserID, v)
	return u
}

// SetName sets the "name" field.
func (u *FingerprintUpsert) SetName(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateName() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldName)
	return u
}

// SetValue sets the "value" field.
func (u *FingerprintUpsert) SetValue(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateValue() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldValue)
	return u
}

// SetData sets the "data" field.
func (u *FingerprintUpsert) SetData(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateData() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *FingerprintUpsert) ClearData() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldData)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FingerprintUpsert) SetUpdatedAt(v time.Time) *FingerprintUpsert {
	u.Set(fingerprint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateUpdatedAt() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FingerprintUpsertOne) UpdateNewValues() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(fingerprint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FingerprintUpsertOne) Ignore() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FingerprintUpsertOne) DoNothing() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FingerprintCreate.OnConflict
// documentation for more info.
func (u *FingerprintUpsertOne) Update(set func(*FingerprintUpsert)) *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *FingerprintUpsertOne) SetUserID(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *FingerprintUpsertOne) AddUserID(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateUserID() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *FingerprintUpsertOne) SetName(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateName() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateName()
	})
}

// SetValue sets the "value" field.
func (u *FingerprintUpsertOne) SetValue(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateValue() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateValue()
	})
}

// SetData sets the "data" field.
func (u *FingerprintUpsertOne) SetData(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateData() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *FingerprintUpsertOne) ClearData() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FingerprintUpsertOne) SetUpdatedAt(v time.Time) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateUpdatedAt() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FingerprintUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FingerprintCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FingerprintUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FingerprintUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FingerprintUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FingerprintCreateBulk is the builder for creating many Fingerprint entities in bulk.
type FingerprintCreateBulk struct {
	config
	err      error
	builders []*FingerprintCreate
	conflict []sql.ConflictOption
}

// Save creates the Fingerprint entities in the database.
func (_c *FingerprintCreateBulk) Save(ctx context.Context) ([]*Fingerprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fingerprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FingerprintMutation)
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
func (_c *FingerprintCreateBulk) SaveX(ctx context.Context) []*Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Fingerprint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FingerprintUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *FingerprintCreateBulk) OnConflict(opts ...sql.ConflictOption) *FingerprintUpsertBulk {
	_c.conflict = opts
	return &FingerprintUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FingerprintCreateBulk) OnConflictColumns(columns ...string) *FingerprintUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FingerprintUpsertBulk{
		create: _c,
	}
}

// FingerprintUpsertBulk is the builder for "upsert"-ing
// a bulk of Fingerprint nodes.
type FingerprintUpsertBulk struct {
	create *FingerprintCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FingerprintUpsertBulk) UpdateNewValues() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(fingerprint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FingerprintUpsertBulk) Ignore() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FingerprintUpsertBulk) DoNothing() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FingerprintCreateBulk.OnConflict
// documentation for more info.
func (u *FingerprintUpsertBulk) Update(set func(*FingerprintUpsert)) *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *FingerprintUpsertBulk) SetUserID(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *FingerprintUpsertBulk) AddUserID(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateUserID() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *FingerprintUpsertBulk) SetName(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateName() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateName()
	})
}

// SetValue sets the "value" field.
func (u *FingerprintUpsertBulk) SetValue(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateValue() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateValue()
	})
}

// SetData sets the "data" field.
func (u *FingerprintUpsertBulk) SetData(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateData() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *FingerprintUpsertBulk) ClearData() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FingerprintUpsertBulk) SetUpdatedAt(v time.Time) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateUpdatedAt() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FingerprintUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FingerprintCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FingerprintCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FingerprintUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
