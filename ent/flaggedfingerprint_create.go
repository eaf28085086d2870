// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlaggedFingerprintCreate is the builder for creating a FlaggedFingerprint entity.
type FlaggedFingerprintCreate struct {
	config
	mutation *FlaggedFingerprintMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetValue sets the "value" field.
func (_c *FlaggedFingerprintCreate) SetValue(v string) *FlaggedFingerprintCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetHidden sets the "hidden" field.
func (_c *FlaggedFingerprintCreate) SetHidden(v bool) *FlaggedFingerprintCreate {
	_c.mutation.SetHidden(v)
	return _c
}

// SetNillableHidden sets the "hidden" field if the given value is not nil.
func (_c *FlaggedFingerprintCreate) SetNillableHidden(v *bool) *FlaggedFingerprintCreate {
	if v != nil {
		_c.SetHidden(*v)
	}
	return _c
}

// SetSilenced sets the "silenced" field.
func (_c *FlaggedFingerprintCreate) SetSilenced(v bool) *FlaggedFingerprintCreate {
	_c.mutation.SetSilenced(v)
	return _c
}

// SetNillableSilenced sets the "silenced" field if the given value is not nil.
func (_c *FlaggedFingerprintCreate) SetNillableSilenced(v *bool) *FlaggedFingerprintCreate {
	if v != nil {
		_c.SetSilenced(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlaggedFingerprintCreate) SetCreatedAt(v time.Time) *FlaggedFingerprintCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlaggedFingerprintCreate) SetNillableCreatedAt(v *time.Time) *FlaggedFingerprintCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FlaggedFingerprintCreate) SetUpdatedAt(v time.Time) *FlaggedFingerprintCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FlaggedFingerprintCreate) SetNillableUpdatedAt(v *time.Time) *FlaggedFingerprintCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the FlaggedFingerprintMutation object of the builder.
func (_c *FlaggedFingerprintCreate) Mutation() *FlaggedFingerprintMutation {
	return _c.mutation
}

// Save creates the FlaggedFingerprint in the database.
func (_c *FlaggedFingerprintCreate) Save(ctx context.Context) (*FlaggedFingerprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlaggedFingerprintCreate) SaveX(ctx context.Context) *FlaggedFingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlaggedFingerprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlaggedFingerprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlaggedFingerprintCreate) defaults() {
	if _, ok := _c.mutation.Hidden(); !ok {
		v := flaggedfingerprint.DefaultHidden
		_c.mutation.SetHidden(v)
	}
	if _, ok := _c.mutation.Silenced(); !ok {
		v := flaggedfingerprint.DefaultSilenced
		_c.mutation.SetSilenced(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flaggedfingerprint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := flaggedfingerprint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlaggedFingerprintCreate) check() error {
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "FlaggedFingerprint.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := flaggedfingerprint.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "FlaggedFingerprint.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hidden(); !ok {
		return &ValidationError{Name: "hidden", err: errors.New(`ent: missing required field "FlaggedFingerprint.hidden"`)}
	}
	if _, ok := _c.mutation.Silenced(); !ok {
		return &ValidationError{Name: "silenced", err: errors.New(`ent: missing required field "FlaggedFingerprint.silenced"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FlaggedFingerprint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FlaggedFingerprint.updated_at"`)}
	}
	return nil
}

func (_c *FlaggedFingerprintCreate) sqlSave(ctx context.Context) (*FlaggedFingerprint, error) {
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

func (_c *FlaggedFingerprintCreate) createSpec() (*FlaggedFingerprint, *sqlgraph.CreateSpec) {
	var (
		_node = &FlaggedFingerprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flaggedfingerprint.Table, sqlgraph.NewFieldSpec(flaggedfingerprint.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(flaggedfingerprint.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Hidden(); ok {
		_spec.SetField(flaggedfingerprint.FieldHidden, field.TypeBool, value)
		_node.Hidden = value
	}
	if value, ok := _c.mutation.Silenced(); ok {
		_spec.SetField(flaggedfingerprint.FieldSilenced, field.TypeBool, value)
		_node.Silenced = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flaggedfingerprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(flaggedfingerprint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FlaggedFingerprint.Create().
//		SetValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlaggedFingerprintUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *FlaggedFingerprintCreate) OnConflict(opts ...sql.ConflictOption) *FlaggedFingerprintUpsertOne {
	_c.conflict = opts
	return &FlaggedFingerprintUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FlaggedFingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlaggedFingerprintCreate) OnConflictColumns(columns ...string) *FlaggedFingerprintUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlaggedFingerprintUpsertOne{
		create: _c,
	}
}

type (
	// FlaggedFingerprintUpsertOne is the builder for "upsert"-ing
	//  one FlaggedFingerprint node.
	FlaggedFingerprintUpsertOne struct {
		create *FlaggedFingerprintCreate
	}

	// FlaggedFingerprintUpsert is the "OnConflict" setter.
	FlaggedFingerprintUpsert struct {
		*sql.UpdateSet
	}
)

// SetValue sets the "value" field.
func (u *FlaggedFingerprintUpsert) SetValue(v string) *FlaggedFingerprintUpsert {
	u.Set(flaggedfingerprint.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsert) UpdateValue() *FlaggedFingerprintUpsert {
	u.SetExcluded(flaggedfingerprint.FieldValue)
	return u
}

// SetHidden sets the "hidden" field.
func (u *FlaggedFingerprintUpsert) SetHidden(v bool) *FlaggedFingerprintUpsert {
	u.Set(flaggedfingerprint.FieldHidden, v)
	return u
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsert) UpdateHidden() *FlaggedFingerprintUpsert {
	u.SetExcluded(flaggedfingerprint.FieldHidden)
	return u
}

// SetSilenced sets the "silenced" field.
func (u *FlaggedFingerprintUpsert) SetSilenced(v bool) *FlaggedFingerprintUpsert {
	u.Set(flaggedfingerprint.FieldSilenced, v)
	return u
}

// UpdateSilenced sets the "silenced" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsert) UpdateSilenced() *FlaggedFingerprintUpsert {
	u.SetExcluded(flaggedfingerprint.FieldSilenced)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FlaggedFingerprintUpsert) SetUpdatedAt(v time.Time) *FlaggedFingerprintUpsert {
	u.Set(flaggedfingerprint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsert) UpdateUpdatedAt() *FlaggedFingerprintUpsert {
	u.SetExcluded(flaggedfingerprint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FlaggedFingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FlaggedFingerprintUpsertOne) UpdateNewValues() *FlaggedFingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(flaggedfingerprint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FlaggedFingerprint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FlaggedFingerprintUpsertOne) Ignore() *FlaggedFingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlaggedFingerprintUpsertOne) DoNothing() *FlaggedFingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlaggedFingerprintCreate.OnConflict
// documentation for more info.
func (u *FlaggedFingerprintUpsertOne) Update(set func(*FlaggedFingerprintUpsert)) *FlaggedFingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlaggedFingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *FlaggedFingerprintUpsertOne) SetValue(v string) *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertOne) UpdateValue() *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateValue()
	})
}

// SetHidden sets the "hidden" field.
func (u *FlaggedFingerprintUpsertOne) SetHidden(v bool) *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetHidden(v)
	})
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertOne) UpdateHidden() *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateHidden()
	})
}

// SetSilenced sets the "silenced" field.
func (u *FlaggedFingerprintUpsertOne) SetSilenced(v bool) *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetSilenced(v)
	})
}

// UpdateSilenced sets the "silenced" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertOne) UpdateSilenced() *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateSilenced()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FlaggedFingerprintUpsertOne) SetUpdatedAt(v time.Time) *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertOne) UpdateUpdatedAt() *FlaggedFingerprintUpsertOne {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FlaggedFingerprintUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlaggedFingerprintCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlaggedFingerprintUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FlaggedFingerprintUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FlaggedFingerprintUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FlaggedFingerprintCreateBulk is the builder for creating many FlaggedFingerprint entities in bulk.
type FlaggedFingerprintCreateBulk struct {
	config
	err      error
	builders []*FlaggedFingerprintCreate
	conflict []sql.ConflictOption
}

// Save creates the FlaggedFingerprint entities in the database.
func (_c *FlaggedFingerprintCreateBulk) Save(ctx context.Context) ([]*FlaggedFingerprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlaggedFingerprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlaggedFingerprintMutation)
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
func (_c *FlaggedFingerprintCreateBulk) SaveX(ctx context.Context) []*FlaggedFingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlaggedFingerprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlaggedFingerprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FlaggedFingerprint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlaggedFingerprintUpsert) {
//			SetValue(v+v).
//		}).
//		Exec(ctx)
func (_c *FlaggedFingerprintCreateBulk) OnConflict(opts ...sql.ConflictOption) *FlaggedFingerprintUpsertBulk {
	_c.conflict = opts
	return &FlaggedFingerprintUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FlaggedFingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlaggedFingerprintCreateBulk) OnConflictColumns(columns ...string) *FlaggedFingerprintUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlaggedFingerprintUpsertBulk{
		create: _c,
	}
}

// FlaggedFingerprintUpsertBulk is the builder for "upsert"-ing
// a bulk of FlaggedFingerprint nodes.
type FlaggedFingerprintUpsertBulk struct {
	create *FlaggedFingerprintCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FlaggedFingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FlaggedFingerprintUpsertBulk) UpdateNewValues() *FlaggedFingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(flaggedfingerprint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FlaggedFingerprint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FlaggedFingerprintUpsertBulk) Ignore() *FlaggedFingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlaggedFingerprintUpsertBulk) DoNothing() *FlaggedFingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlaggedFingerprintCreateBulk.OnConflict
// documentation for more info.
func (u *FlaggedFingerprintUpsertBulk) Update(set func(*FlaggedFingerprintUpsert)) *FlaggedFingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlaggedFingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *FlaggedFingerprintUpsertBulk) SetValue(v string) *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertBulk) UpdateValue() *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateValue()
	})
}

// SetHidden sets the "hidden" field.
func (u *FlaggedFingerprintUpsertBulk) SetHidden(v bool) *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetHidden(v)
	})
}

// UpdateHidden sets the "hidden" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertBulk) UpdateHidden() *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateHidden()
	})
}

// SetSilenced sets the "silenced" field.
func (u *FlaggedFingerprintUpsertBulk) SetSilenced(v bool) *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetSilenced(v)
	})
}

// UpdateSilenced sets the "silenced" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertBulk) UpdateSilenced() *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateSilenced()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FlaggedFingerprintUpsertBulk) SetUpdatedAt(v time.Time) *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FlaggedFingerprintUpsertBulk) UpdateUpdatedAt() *FlaggedFingerprintUpsertBulk {
	return u.Update(func(s *FlaggedFingerprintUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FlaggedFingerprintUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FlaggedFingerprintCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlaggedFingerprintCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlaggedFingerprintUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
