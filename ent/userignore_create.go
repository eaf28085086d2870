// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"forum-fingerprint-api/ent/userignore"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// UserIgnoreCreate is the builder for creating a UserIgnore entity.
type UserIgnoreCreate struct {
	config
	mutation *UserIgnoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserIgnoreCreate) SetUserID(v int) *UserIgnoreCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetIgnoredUserID sets the "ignored_user_id" field.
func (_c *UserIgnoreCreate) SetIgnoredUserID(v int) *UserIgnoreCreate {
	_c.mutation.SetIgnoredUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserIgnoreCreate) SetCreatedAt(v time.Time) *UserIgnoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserIgnoreCreate) SetNillableCreatedAt(v *time.Time) *UserIgnoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the UserIgnoreMutation object of the builder.
func (_c *UserIgnoreCreate) Mutation() *UserIgnoreMutation {
	return _c.mutation
}

// Save creates the UserIgnore in the database.
func (_c *UserIgnoreCreate) Save(ctx context.Context) (*UserIgnore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserIgnoreCreate) SaveX(ctx context.Context) *UserIgnore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserIgnoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserIgnoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserIgnoreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userignore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserIgnoreCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserIgnore.user_id"`)}
	}
	if _, ok := _c.mutation.IgnoredUserID(); !ok {
		return &ValidationError{Name: "ignored_user_id", err: errors.New(`ent: missing required field "UserIgnore.ignored_user_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserIgnore.created_at"`)}
	}
	return nil
}

func (_c *UserIgnoreCreate) sqlSave(ctx context.Context) (*UserIgnore, error) {
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

func (_c *UserIgnoreCreate) createSpec() (*UserIgnore, *sqlgraph.CreateSpec) {
	var (
		_node = &UserIgnore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userignore.Table, sqlgraph.NewFieldSpec(userignore.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userignore.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.IgnoredUserID(); ok {
		_spec.SetField(userignore.FieldIgnoredUserID, field.TypeInt, value)
		_node.IgnoredUserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userignore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserIgnore.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserIgnoreUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserIgnoreCreate) OnConflict(opts ...sql.ConflictOption) *UserIgnoreUpsertOne {
	_c.conflict = opts
	return &UserIgnoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserIgnore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserIgnoreCreate) OnConflictColumns(columns ...string) *UserIgnoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserIgnoreUpsertOne{
		create: _c,
	}
}

type (
	// UserIgnoreUpsertOne is the builder for "upsert"-ing
	//  one UserIgnore node.
	UserIgnoreUpsertOne struct {
		create *UserIgnoreCreate
	}

	// UserIgnoreUpsert is the "OnConflict" setter.
	UserIgnoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserIgnoreUpsert) SetUserID(v int) *UserIgnoreUpsert {
	u.Set(userignore.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserIgnoreUpsert) UpdateUserID() *UserIgnoreUpsert {
	u.SetExcluded(userignore.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *UserIgnoreUpsert) AddUserID(v int) *UserIgnoreUpsert {
	u.Add(userignore.FieldUserID, v)
	return u
}

// SetIgnoredUserID sets the "ignored_user_id" field.
func (u *UserIgnoreUpsert) SetIgnoredUserID(v int) *UserIgnoreUpsert {
	u.Set(userignore.FieldIgnoredUserID, v)
	return u
}

// UpdateIgnoredUserID sets the "ignored_user_id" field to the value that was provided on create.
func (u *UserIgnoreUpsert) UpdateIgnoredUserID() *UserIgnoreUpsert {
	u.SetExcluded(userignore.FieldIgnoredUserID)
	return u
}

// AddIgnoredUserID adds v to the "ignored_user_id" field.
func (u *UserIgnoreUpsert) AddIgnoredUserID(v int) *UserIgnoreUpsert {
	u.Add(userignore.FieldIgnoredUserID, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserIgnore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserIgnoreUpsertOne) UpdateNewValues() *UserIgnoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(userignore.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserIgnore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserIgnoreUpsertOne) Ignore() *UserIgnoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserIgnoreUpsertOne) DoNothing() *UserIgnoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserIgnoreCreate.OnConflict
// documentation for more info.
func (u *UserIgnoreUpsertOne) Update(set func(*UserIgnoreUpsert)) *UserIgnoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserIgnoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserIgnoreUpsertOne) SetUserID(v int) *UserIgnoreUpsertOne {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserIgnoreUpsertOne) AddUserID(v int) *UserIgnoreUpsertOne {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserIgnoreUpsertOne) UpdateUserID() *UserIgnoreUpsertOne {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.UpdateUserID()
	})
}

// SetIgnoredUserID sets the "ignored_user_id" field.
func (u *UserIgnoreUpsertOne) SetIgnoredUserID(v int) *UserIgnoreUpsertOne {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.SetIgnoredUserID(v)
	})
}

// AddIgnoredUserID adds v to the "ignored_user_id" field.
func (u *UserIgnoreUpsertOne) AddIgnoredUserID(v int) *UserIgnoreUpsertOne {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.AddIgnoredUserID(v)
	})
}

// UpdateIgnoredUserID sets the "ignored_user_id" field to the value that was provided on create.
func (u *UserIgnoreUpsertOne) UpdateIgnoredUserID() *UserIgnoreUpsertOne {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.UpdateIgnoredUserID()
	})
}

// Exec executes the query.
func (u *UserIgnoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserIgnoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserIgnoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserIgnoreUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserIgnoreUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserIgnoreCreateBulk is the builder for creating many UserIgnore entities in bulk.
type UserIgnoreCreateBulk struct {
	config
	err      error
	builders []*UserIgnoreCreate
	conflict []sql.ConflictOption
}

// Save creates the UserIgnore entities in the database.
func (_c *UserIgnoreCreateBulk) Save(ctx context.Context) ([]*UserIgnore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserIgnore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserIgnoreMutation)
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
func (_c *UserIgnoreCreateBulk) SaveX(ctx context.Context) []*UserIgnore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserIgnoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserIgnoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserIgnore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserIgnoreUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserIgnoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserIgnoreUpsertBulk {
	_c.conflict = opts
	return &UserIgnoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserIgnore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserIgnoreCreateBulk) OnConflictColumns(columns ...string) *UserIgnoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserIgnoreUpsertBulk{
		create: _c,
	}
}

// UserIgnoreUpsertBulk is the builder for "upsert"-ing
// a bulk of UserIgnore nodes.
type UserIgnoreUpsertBulk struct {
	create *UserIgnoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserIgnore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserIgnoreUpsertBulk) UpdateNewValues() *UserIgnoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(userignore.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserIgnore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserIgnoreUpsertBulk) Ignore() *UserIgnoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserIgnoreUpsertBulk) DoNothing() *UserIgnoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserIgnoreCreateBulk.OnConflict
// documentation for more info.
func (u *UserIgnoreUpsertBulk) Update(set func(*UserIgnoreUpsert)) *UserIgnoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserIgnoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserIgnoreUpsertBulk) SetUserID(v int) *UserIgnoreUpsertBulk {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserIgnoreUpsertBulk) AddUserID(v int) *UserIgnoreUpsertBulk {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserIgnoreUpsertBulk) UpdateUserID() *UserIgnoreUpsertBulk {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.UpdateUserID()
	})
}

// SetIgnoredUserID sets the "ignored_user_id" field.
func (u *UserIgnoreUpsertBulk) SetIgnoredUserID(v int) *UserIgnoreUpsertBulk {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.SetIgnoredUserID(v)
	})
}

// AddIgnoredUserID adds v to the "ignored_user_id" field.
func (u *UserIgnoreUpsertBulk) AddIgnoredUserID(v int) *UserIgnoreUpsertBulk {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.AddIgnoredUserID(v)
	})
}

// UpdateIgnoredUserID sets the "ignored_user_id" field to the value that was provided on create.
func (u *UserIgnoreUpsertBulk) UpdateIgnoredUserID() *UserIgnoreUpsertBulk {
	return u.Update(func(s *UserIgnoreUpsert) {
		s.UpdateIgnoredUserID()
	})
}

// Exec executes the query.
func (u *UserIgnoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserIgnoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserIgnoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserIgnoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
