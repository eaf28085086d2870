// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"forum-fingerprint-api/ent/userignore"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// UserIgnore is the model entity for the UserIgnore schema.
type UserIgnore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// IgnoredUserID holds the value of the "ignored_user_id" field.
	IgnoredUserID int `json:"ignored_user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserIgnore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userignore.FieldID, userignore.FieldUserID, userignore.FieldIgnoredUserID:
			values[i] = new(sql.NullInt64)
		case userignore.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserIgnore fields.
func (_m *UserIgnore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userignore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userignore.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case userignore.FieldIgnoredUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ignored_user_id", values[i])
			} else if value.Valid {
				_m.IgnoredUserID = int(value.Int64)
			}
		case userignore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserIgnore.
// This includes values selected through modifiers, order, etc.
func (_m *UserIgnore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserIgnore.
// Note that you need to call UserIgnore.Unwrap() before calling this method if this UserIgnore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserIgnore) Update() *UserIgnoreUpdateOne {
	return NewUserIgnoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserIgnore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserIgnore) Unwrap() *UserIgnore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserIgnore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserIgnore) String() string {
	var builder strings.Builder
	builder.WriteString("UserIgnore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("ignored_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IgnoredUserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserIgnores is a parsable slice of UserIgnore.
type UserIgnores []*UserIgnore
