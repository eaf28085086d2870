package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserIgnore is one direction of an ignored user pair. The registry always
// writes both directions in a single transaction, so readers of either user's
// ignore set see the pair or neither.
type UserIgnore struct{ ent.Schema }

// Fields of the UserIgnore.
func (UserIgnore) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Int("ignored_user_id"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes of the UserIgnore.
func (UserIgnore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "ignored_user_id").Unique(),
		index.Fields("user_id"),
	}
}
