// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// FlaggedFingerprint is the model entity for the FlaggedFingerprint schema.
type FlaggedFingerprint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Hidden holds the value of the "hidden" field.
	Hidden bool `json:"hidden,omitempty"`
	// Silenced holds the value of the "silenced" field.
	Silenced bool `json:"silenced,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlaggedFingerprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flaggedfingerprint.FieldHidden, flaggedfingerprint.FieldSilenced:
			values[i] = new(sql.NullBool)
		case flaggedfingerprint.FieldID:
			values[i] = new(sql.NullInt64)
		case flaggedfingerprint.FieldValue:
			values[i] = new(sql.NullString)
		case flaggedfingerprint.FieldCreatedAt, flaggedfingerprint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlaggedFingerprint fields.
func (_m *FlaggedFingerprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flaggedfingerprint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flaggedfingerprint.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case flaggedfingerprint.FieldHidden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hidden", values[i])
			} else if value.Valid {
				_m.Hidden = value.Bool
			}
		case flaggedfingerprint.FieldSilenced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field silenced", values[i])
			} else if value.Valid {
				_m.Silenced = value.Bool
			}
		case flaggedfingerprint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case flaggedfingerprint.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the FlaggedFingerprint.
// This includes values selected through modifiers, order, etc.
func (_m *FlaggedFingerprint) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FlaggedFingerprint.
// Note that you need to call FlaggedFingerprint.Unwrap() before calling this method if this FlaggedFingerprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlaggedFingerprint) Update() *FlaggedFingerprintUpdateOne {
	return NewFlaggedFingerprintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlaggedFingerprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlaggedFingerprint) Unwrap() *FlaggedFingerprint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlaggedFingerprint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlaggedFingerprint) String() string {
	var builder strings.Builder
	builder.WriteString("FlaggedFingerprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("hidden=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hidden))
	builder.WriteString(", ")
	builder.WriteString("silenced=")
	builder.WriteString(fmt.Sprintf("%v", _m.Silenced))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FlaggedFingerprints is a parsable slice of FlaggedFingerprint.
type FlaggedFingerprints []*FlaggedFingerprint
