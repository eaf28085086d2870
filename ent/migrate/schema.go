// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FingerprintsColumns holds the columns for the "fingerprints" table.
	FingerprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString, Size: 64},
		{Name: "value", Type: field.TypeString, Size: 256},
		{Name: "data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FingerprintsTable holds the schema information for the "fingerprints" table.
	FingerprintsTable = &schema.Table{
		Name:       "fingerprints",
		Columns:    FingerprintsColumns,
		PrimaryKey: []*schema.Column{FingerprintsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fingerprint_user_id_name_value",
				Unique:  true,
				Columns: []*schema.Column{FingerprintsColumns[1], FingerprintsColumns[2], FingerprintsColumns[3]},
			},
			{
				Name:    "fingerprint_user_id",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[1]},
			},
			{
				Name:    "fingerprint_value",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[3]},
			},
			{
				Name:    "fingerprint_updated_at",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[6]},
			},
		},
	}
	// FlaggedFingerprintsColumns holds the columns for the "flagged_fingerprints" table.
	FlaggedFingerprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "value", Type: field.TypeString, Unique: true, Size: 256},
		{Name: "hidden", Type: field.TypeBool, Default: false},
		{Name: "silenced", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FlaggedFingerprintsTable holds the schema information for the "flagged_fingerprints" table.
	FlaggedFingerprintsTable = &schema.Table{
		Name:       "flagged_fingerprints",
		Columns:    FlaggedFingerprintsColumns,
		PrimaryKey: []*schema.Column{FlaggedFingerprintsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flaggedfingerprint_hidden",
				Unique:  false,
				Columns: []*schema.Column{FlaggedFingerprintsColumns[2]},
			},
			{
				Name:    "flaggedfingerprint_silenced",
				Unique:  false,
				Columns: []*schema.Column{FlaggedFingerprintsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 120},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"user", "admin"}, Default: "user"},
		{Name: "silenced", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserIgnoresColumns holds the columns for the "user_ignores" table.
	UserIgnoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "ignored_user_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserIgnoresTable holds the schema information for the "user_ignores" table.
	UserIgnoresTable = &schema.Table{
		Name:       "user_ignores",
		Columns:    UserIgnoresColumns,
		PrimaryKey: []*schema.Column{UserIgnoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userignore_user_id_ignored_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserIgnoresColumns[1], UserIgnoresColumns[2]},
			},
			{
				Name:    "userignore_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserIgnoresColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FingerprintsTable,
		FlaggedFingerprintsTable,
		UsersTable,
		UserIgnoresTable,
	}
)

func init() {
}
