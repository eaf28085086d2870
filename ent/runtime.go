// Code generated by ent, DO NOT EDIT.

package ent

import (
	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"forum-fingerprint-api/ent/schema"
	"forum-fingerprint-api/ent/user"
	"forum-fingerprint-api/ent/userignore"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fingerprintFields := schema.Fingerprint{}.Fields()
	_ = fingerprintFields
	// fingerprintDescName is the schema descriptor for name field.
	fingerprintDescName := fingerprintFields[1].Descriptor()
	// fingerprint.NameValidator is a validator for the "name" field. It is called by the builders before save.
	fingerprint.NameValidator = func() func(string) error {
		validators := fingerprintDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fingerprintDescValue is the schema descriptor for value field.
	fingerprintDescValue := fingerprintFields[2].Descriptor()
	// fingerprint.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	fingerprint.ValueValidator = func() func(string) error {
		validators := fingerprintDescValue.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(value string) error {
			for _, fn := range fns {
				if err := fn(value); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fingerprintDescCreatedAt is the schema descriptor for created_at field.
	fingerprintDescCreatedAt := fingerprintFields[4].Descriptor()
	// fingerprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	fingerprint.DefaultCreatedAt = fingerprintDescCreatedAt.Default.(func() time.Time)
	// fingerprintDescUpdatedAt is the schema descriptor for updated_at field.
	fingerprintDescUpdatedAt := fingerprintFields[5].Descriptor()
	// fingerprint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fingerprint.DefaultUpdatedAt = fingerprintDescUpdatedAt.Default.(func() time.Time)
	// fingerprint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fingerprint.UpdateDefaultUpdatedAt = fingerprintDescUpdatedAt.UpdateDefault.(func() time.Time)
	flaggedfingerprintFields := schema.FlaggedFingerprint{}.Fields()
	_ = flaggedfingerprintFields
	// flaggedfingerprintDescValue is the schema descriptor for value field.
	flaggedfingerprintDescValue := flaggedfingerprintFields[0].Descriptor()
	// flaggedfingerprint.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	flaggedfingerprint.ValueValidator = func() func(string) error {
		validators := flaggedfingerprintDescValue.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(value string) error {
			for _, fn := range fns {
				if err := fn(value); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// flaggedfingerprintDescHidden is the schema descriptor for hidden field.
	flaggedfingerprintDescHidden := flaggedfingerprintFields[1].Descriptor()
	// flaggedfingerprint.DefaultHidden holds the default value on creation for the hidden field.
	flaggedfingerprint.DefaultHidden = flaggedfingerprintDescHidden.Default.(bool)
	// flaggedfingerprintDescSilenced is the schema descriptor for silenced field.
	flaggedfingerprintDescSilenced := flaggedfingerprintFields[2].Descriptor()
	// flaggedfingerprint.DefaultSilenced holds the default value on creation for the silenced field.
	flaggedfingerprint.DefaultSilenced = flaggedfingerprintDescSilenced.Default.(bool)
	// flaggedfingerprintDescCreatedAt is the schema descriptor for created_at field.
	flaggedfingerprintDescCreatedAt := flaggedfingerprintFields[3].Descriptor()
	// flaggedfingerprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	flaggedfingerprint.DefaultCreatedAt = flaggedfingerprintDescCreatedAt.Default.(func() time.Time)
	// flaggedfingerprintDescUpdatedAt is the schema descriptor for updated_at field.
	flaggedfingerprintDescUpdatedAt := flaggedfingerprintFields[4].Descriptor()
	// flaggedfingerprint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	flaggedfingerprint.DefaultUpdatedAt = flaggedfingerprintDescUpdatedAt.Default.(func() time.Time)
	// flaggedfingerprint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	flaggedfingerprint.UpdateDefaultUpdatedAt = flaggedfingerprintDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescSilenced is the schema descriptor for silenced field.
	userDescSilenced := userFields[3].Descriptor()
	// user.DefaultSilenced holds the default value on creation for the silenced field.
	user.DefaultSilenced = userDescSilenced.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	userignoreFields := schema.UserIgnore{}.Fields()
	_ = userignoreFields
	// userignoreDescCreatedAt is the schema descriptor for created_at field.
	userignoreDescCreatedAt := userignoreFields[2].Descriptor()
	// userignore.DefaultCreatedAt holds the default value on creation for the created_at field.
	userignore.DefaultCreatedAt = userignoreDescCreatedAt.Default.(func() time.Time)
}
