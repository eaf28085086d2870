package fpx

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/ent/user"
)

// Store persists fingerprint observations. One row exists per distinct
// (user_id, name, value); repeat observations touch updated_at and replace
// the payload instead of inserting.
type Store struct {
	client *ent.Client
}

func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// CreateOrTouch upserts the observation for the unique (userID, name, value)
// key. The conflict is resolved by the database, not read-then-write, so
// concurrent submissions for the same key cannot produce duplicate rows.
func (s *Store) CreateOrTouch(ctx context.Context, userID int, name, value string, data *string, observedAt time.Time) (*ent.Fingerprint, error) {
	err := s.client.Fingerprint.Create().
		SetUserID(userID).
		SetName(name).
		SetValue(value).
		SetNillableData(data).
		SetCreatedAt(observedAt).
		SetUpdatedAt(observedAt).
		OnConflictColumns(fingerprint.FieldUserID, fingerprint.FieldName, fingerprint.FieldValue).
		Update(func(u *ent.FingerprintUpsert) {
			u.SetUpdatedAt(observedAt)
			if data != nil {
				u.SetData(*data)
			} else {
				u.ClearData()
			}
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert fingerprint: %w", err)
	}
	return s.client.Fingerprint.Query().
		Where(
			fingerprint.UserIDEQ(userID),
			fingerprint.NameEQ(name),
			fingerprint.ValueEQ(value),
		).
		Only(ctx)
}

// FindByUser returns a user's observations, most recently updated first,
// optionally excluding a set of suppressed values.
func (s *Store) FindByUser(ctx context.Context, userID int, excluding []string) ([]*ent.Fingerprint, error) {
	q := s.client.Fingerprint.Query().Where(fingerprint.UserIDEQ(userID))
	if len(excluding) > 0 {
		q = q.Where(fingerprint.ValueNotIn(excluding...))
	}
	return q.Order(ent.Desc(fingerprint.FieldUpdatedAt), ent.Desc(fingerprint.FieldID)).All(ctx)
}

// DeleteOlderThan removes observations first seen before the cutoff.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return s.client.Fingerprint.Delete().
		Where(fingerprint.CreatedAtLT(cutoff)).
		Exec(ctx)
}

// DeleteOrphans removes observations whose owning user no longer exists.
// A missing user is a deletion trigger, not an error.
func (s *Store) DeleteOrphans(ctx context.Context) (int, error) {
	observed, err := s.client.Fingerprint.Query().
		Unique(true).
		Select(fingerprint.FieldUserID).
		Ints(ctx)
	if err != nil {
		return 0, err
	}
	if len(observed) == 0 {
		return 0, nil
	}
	existing, err := s.client.User.Query().Where(user.IDIn(observed...)).IDs(ctx)
	if err != nil {
		return 0, err
	}
	gone, _ := lo.Difference(observed, existing)
	if len(gone) == 0 {
		return 0, nil
	}
	return s.client.Fingerprint.Delete().
		Where(fingerprint.UserIDIn(gone...)).
		Exec(ctx)
}

// DeleteExcessPerUser keeps at most maxPerUser observations per user,
// evicting the least recently updated beyond the cap. A cap of zero or less
// disables the pass.
func (s *Store) DeleteExcessPerUser(ctx context.Context, maxPerUser int) (int, error) {
	if maxPerUser <= 0 {
		return 0, nil
	}
	owners, err := s.client.Fingerprint.Query().
		Unique(true).
		Select(fingerprint.FieldUserID).
		Ints(ctx)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, uid := range owners {
		ids, err := s.client.Fingerprint.Query().
			Where(fingerprint.UserIDEQ(uid)).
			Order(ent.Desc(fingerprint.FieldUpdatedAt), ent.Desc(fingerprint.FieldID)).
			IDs(ctx)
		if err != nil {
			return deleted, err
		}
		if len(ids) <= maxPerUser {
			continue
		}
		n, err := s.client.Fingerprint.Delete().
			Where(fingerprint.IDIn(ids[maxPerUser:]...)).
			Exec(ctx)
		deleted += n
		if err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}
