// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Fingerprint is the predicate function for fingerprint builders.
type Fingerprint func(*sql.Selector)

// FlaggedFingerprint is the predicate function for flaggedfingerprint builders.
type FlaggedFingerprint func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserIgnore is the predicate function for userignore builders.
type UserIgnore func(*sql.Selector)
