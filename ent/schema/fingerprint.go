package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Fingerprint is a single (user, method, value) observation. Re-observing the
// same triple touches updated_at instead of inserting a second row.
type Fingerprint struct{ ent.Schema }

// Fields of the Fingerprint.
func (Fingerprint) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("name").NotEmpty().MaxLen(64),
		field.String("value").NotEmpty().MaxLen(256),
		field.Text("data").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the Fingerprint.
func (Fingerprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "name", "value").Unique(),
		index.Fields("user_id"),
		index.Fields("value"),
		index.Fields("updated_at"),
	}
}
