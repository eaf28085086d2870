package fpx

import (
	"context"
	"fmt"
	"sort"
	"time"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"forum-fingerprint-api/ent/userignore"
)

// FlagKind selects which suppression flag an admin action targets.
type FlagKind string

const (
	// FlagHide removes a value from the latest-matches view.
	FlagHide FlagKind = "hide"
	// FlagSilence auto-restricts any user who produces the value.
	FlagSilence FlagKind = "silence"
)

// ParseFlagKind validates an admin-supplied flag type string.
func ParseFlagKind(s string) (FlagKind, error) {
	switch FlagKind(s) {
	case FlagHide:
		return FlagHide, nil
	case FlagSilence:
		return FlagSilence, nil
	}
	return "", fmt.Errorf("unknown flag kind %q", s)
}

// FlagState is the resulting suppression state of a value.
type FlagState struct {
	Value    string `json:"value"`
	Hidden   bool   `json:"hidden"`
	Silenced bool   `json:"silenced"`
}

// Registry holds administrator-controlled suppression state: hidden/silenced
// fingerprint values and symmetric per-user ignore pairs.
type Registry struct {
	client *ent.Client
}

func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// SetFlag upserts one suppression flag on a value. When both flags end up
// clear the row is deleted, so no all-false rows linger.
func (r *Registry) SetFlag(ctx context.Context, kind FlagKind, value string, enable bool) (FlagState, error) {
	if kind != FlagHide && kind != FlagSilence {
		return FlagState{}, fmt.Errorf("unknown flag kind %q", kind)
	}
	out := FlagState{Value: value}
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		create := tx.FlaggedFingerprint.Create().SetValue(value)
		if kind == FlagHide {
			create.SetHidden(enable)
		} else {
			create.SetSilenced(enable)
		}
		err := create.
			OnConflictColumns(flaggedfingerprint.FieldValue).
			Update(func(u *ent.FlaggedFingerprintUpsert) {
				if kind == FlagHide {
					u.SetHidden(enable)
				} else {
					u.SetSilenced(enable)
				}
				u.SetUpdatedAt(time.Now())
			}).
			Exec(ctx)
		if err != nil {
			return err
		}
		row, err := tx.FlaggedFingerprint.Query().
			Where(flaggedfingerprint.ValueEQ(value)).
			Only(ctx)
		if err != nil {
			return err
		}
		if !row.Hidden && !row.Silenced {
			return tx.FlaggedFingerprint.DeleteOne(row).Exec(ctx)
		}
		out.Hidden = row.Hidden
		out.Silenced = row.Silenced
		return nil
	})
	return out, err
}

// HiddenValues returns all values flagged hidden.
func (r *Registry) HiddenValues(ctx context.Context) ([]string, error) {
	return r.client.FlaggedFingerprint.Query().
		Where(flaggedfingerprint.HiddenEQ(true)).
		Select(flaggedfingerprint.FieldValue).
		Strings(ctx)
}

// AnySilenced reports whether any of the given values is flagged silenced.
func (r *Registry) AnySilenced(ctx context.Context, values []string) (bool, error) {
	if len(values) == 0 {
		return false, nil
	}
	return r.client.FlaggedFingerprint.Query().
		Where(
			flaggedfingerprint.ValueIn(values...),
			flaggedfingerprint.SilencedEQ(true),
		).
		Exist(ctx)
}

// States returns the flag state of each of the given values. Values with no
// row are simply absent from the result.
func (r *Registry) States(ctx context.Context, values []string) (map[string]FlagState, error) {
	out := map[string]FlagState{}
	if len(values) == 0 {
		return out, nil
	}
	rows, err := r.client.FlaggedFingerprint.Query().
		Where(flaggedfingerprint.ValueIn(values...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.Value] = FlagState{Value: row.Value, Hidden: row.Hidden, Silenced: row.Silenced}
	}
	return out, nil
}

// AllFlagged returns every flagged value, hidden or silenced.
func (r *Registry) AllFlagged(ctx context.Context) ([]FlagState, error) {
	rows, err := r.client.FlaggedFingerprint.Query().
		Order(ent.Asc(flaggedfingerprint.FieldValue)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FlagState, 0, len(rows))
	for _, row := range rows {
		out = append(out, FlagState{Value: row.Value, Hidden: row.Hidden, Silenced: row.Silenced})
	}
	return out, nil
}

// SetIgnore toggles the symmetric ignore relation between two users. Both
// directions are written in one transaction so readers see the pair or
// neither.
func (r *Registry) SetIgnore(ctx context.Context, userA, userB int, enable bool) error {
	if userA == userB {
		return fmt.Errorf("ignore pair requires two distinct users")
	}
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		pairs := [2][2]int{{userA, userB}, {userB, userA}}
		for _, p := range pairs {
			if enable {
				err := tx.UserIgnore.Create().
					SetUserID(p[0]).
					SetIgnoredUserID(p[1]).
					OnConflictColumns(userignore.FieldUserID, userignore.FieldIgnoredUserID).
					Ignore().
					Exec(ctx)
				if err != nil {
					return err
				}
				continue
			}
			_, err := tx.UserIgnore.Delete().
				Where(
					userignore.UserIDEQ(p[0]),
					userignore.IgnoredUserIDEQ(p[1]),
				).
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Ignores returns the ascending set of user IDs the given user has ignored.
// No ignores is an empty slice, never an error.
func (r *Registry) Ignores(ctx context.Context, userID int) ([]int, error) {
	ids, err := r.client.UserIgnore.Query().
		Where(userignore.UserIDEQ(userID)).
		Select(userignore.FieldIgnoredUserID).
		Ints(ctx)
	if err != nil {
		return nil, err
	}
	sort.Ints(ids)
	return ids, nil
}
