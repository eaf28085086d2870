package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FlaggedFingerprint carries administrator suppression state for a fingerprint
// value. A row exists only while hidden or silenced is set; clearing both
// deletes the row.
type FlaggedFingerprint struct{ ent.Schema }

// Fields of the FlaggedFingerprint.
func (FlaggedFingerprint) Fields() []ent.Field {
	return []ent.Field{
		field.String("value").NotEmpty().Unique().MaxLen(256),
		field.Bool("hidden").Default(false),
		field.Bool("silenced").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the FlaggedFingerprint.
func (FlaggedFingerprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hidden"),
		index.Fields("silenced"),
	}
}
