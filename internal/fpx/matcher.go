package fpx

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/ent/predicate"
)

// MatchGroup is a derived view of a fingerprint shared by two or more users.
// It is recomputed per query and never persisted.
type MatchGroup struct {
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	Data      *string   `json:"data,omitempty"`
	UserIDs   []int     `json:"user_ids"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRecord is one of a user's own observations annotated with the other
// users sharing the same (name, value) pair.
type UserRecord struct {
	Name           string    `json:"name"`
	Value          string    `json:"value"`
	Data           *string   `json:"data,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	MatchedUserIDs []int     `json:"matched_user_ids"`
}

// UserReport is the per-user match view plus the user's resolved ignore set.
type UserReport struct {
	UserID  int          `json:"user_id"`
	Records []UserRecord `json:"fingerprints"`
	Ignores []int        `json:"ignores"`
}

// Resolver computes match views over the record store, applying the
// registry's hidden values and ignore pairs.
type Resolver struct {
	client   *ent.Client
	registry *Registry
}

func NewResolver(client *ent.Client, registry *Registry) *Resolver {
	return &Resolver{client: client, registry: registry}
}

// LatestMatches returns up to limit groups of records sharing a (name, value)
// pair across at least two users, hidden values excluded, most recently
// updated first. Ties on update time order by value so repeated requests
// page stably.
func (r *Resolver) LatestMatches(ctx context.Context, limit int) ([]MatchGroup, error) {
	hidden, err := r.registry.HiddenValues(ctx)
	if err != nil {
		return nil, err
	}

	q := r.client.Fingerprint.Query()
	if len(hidden) > 0 {
		q = q.Where(fingerprint.ValueNotIn(hidden...))
	}
	// Each row in a (name, value) group belongs to a distinct user by the
	// store's uniqueness constraint, so the row count is the user count.
	type groupedRow struct {
		Name  string `json:"name"`
		Value string `json:"value"`
		Users int    `json:"users"`
	}
	var grouped []groupedRow
	err = q.GroupBy(fingerprint.FieldName, fingerprint.FieldValue).
		Aggregate(ent.As(ent.Count(), "users")).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, err
	}
	grouped = lo.Filter(grouped, func(g groupedRow, _ int) bool { return g.Users >= 2 })
	if len(grouped) == 0 {
		return []MatchGroup{}, nil
	}

	preds := make([]predicate.Fingerprint, 0, len(grouped))
	for _, g := range grouped {
		preds = append(preds, fingerprint.And(
			fingerprint.NameEQ(g.Name),
			fingerprint.ValueEQ(g.Value),
		))
	}
	members, err := r.client.Fingerprint.Query().Where(fingerprint.Or(preds...)).All(ctx)
	if err != nil {
		return nil, err
	}

	groups := assembleGroups(members)
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].UpdatedAt.Equal(groups[j].UpdatedAt) {
			return groups[i].UpdatedAt.After(groups[j].UpdatedAt)
		}
		return groups[i].Value < groups[j].Value
	})
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

// assembleGroups folds member rows into MatchGroups: ascending unique user
// IDs, the group's most recent update time, and the most recently updated
// row's payload as representative data.
func assembleGroups(members []*ent.Fingerprint) []MatchGroup {
	type key struct{ name, value string }
	byKey := map[key]*MatchGroup{}
	latest := map[key]time.Time{}
	for _, m := range members {
		k := key{m.Name, m.Value}
		g, ok := byKey[k]
		if !ok {
			g = &MatchGroup{Name: m.Name, Value: m.Value}
			byKey[k] = g
		}
		g.UserIDs = append(g.UserIDs, m.UserID)
		if m.UpdatedAt.After(latest[k]) || len(g.UserIDs) == 1 {
			latest[k] = m.UpdatedAt
			g.UpdatedAt = m.UpdatedAt
			g.Data = m.Data
		}
	}
	out := make([]MatchGroup, 0, len(byKey))
	for _, g := range byKey {
		g.UserIDs = lo.Uniq(g.UserIDs)
		sort.Ints(g.UserIDs)
		if len(g.UserIDs) < 2 {
			continue
		}
		out = append(out, *g)
	}
	return out
}

// ValueCounts returns how many records exist for each of the given values.
func (r *Resolver) ValueCounts(ctx context.Context, values []string) (map[string]int, error) {
	out := map[string]int{}
	if len(values) == 0 {
		return out, nil
	}
	var rows []struct {
		Value string `json:"value"`
		Count int    `json:"count"`
	}
	err := r.client.Fingerprint.Query().
		Where(fingerprint.ValueIn(values...)).
		GroupBy(fingerprint.FieldValue).
		Aggregate(ent.As(ent.Count(), "count")).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.Value] = row.Count
	}
	return out, nil
}

// ValueData returns the most recently updated payload carrying each of the
// given values. Values with no records, or records without payloads, are
// absent from the result.
func (r *Resolver) ValueData(ctx context.Context, values []string) (map[string]*string, error) {
	out := map[string]*string{}
	if len(values) == 0 {
		return out, nil
	}
	rows, err := r.client.Fingerprint.Query().
		Where(fingerprint.ValueIn(values...)).
		Order(ent.Desc(fingerprint.FieldUpdatedAt), ent.Desc(fingerprint.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, seen := out[row.Value]; seen {
			continue
		}
		out[row.Value] = row.Data
	}
	return out, nil
}

// UserReport builds the per-user view: the user's own records (hidden values
// excluded), each annotated with the other users sharing the same
// (name, value) pair minus the user's ignore set, plus the ignore set itself
// so the caller can render acknowledged pairs.
func (r *Resolver) UserReport(ctx context.Context, userID int) (*UserReport, error) {
	hidden, err := r.registry.HiddenValues(ctx)
	if err != nil {
		return nil, err
	}
	ignores, err := r.registry.Ignores(ctx, userID)
	if err != nil {
		return nil, err
	}

	q := r.client.Fingerprint.Query().Where(fingerprint.UserIDEQ(userID))
	if len(hidden) > 0 {
		q = q.Where(fingerprint.ValueNotIn(hidden...))
	}
	own, err := q.Order(ent.Desc(fingerprint.FieldUpdatedAt), ent.Desc(fingerprint.FieldID)).All(ctx)
	if err != nil {
		return nil, err
	}

	report := &UserReport{UserID: userID, Records: []UserRecord{}, Ignores: ignores}
	if len(own) == 0 {
		return report, nil
	}

	values := lo.Uniq(lo.Map(own, func(f *ent.Fingerprint, _ int) string { return f.Value }))
	others, err := r.client.Fingerprint.Query().
		Where(
			fingerprint.ValueIn(values...),
			fingerprint.UserIDNEQ(userID),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	type key struct{ name, value string }
	sharing := map[key][]int{}
	for _, o := range others {
		k := key{o.Name, o.Value}
		sharing[k] = append(sharing[k], o.UserID)
	}
	ignored := lo.SliceToMap(ignores, func(id int) (int, struct{}) { return id, struct{}{} })

	for _, f := range own {
		matched := lo.Filter(lo.Uniq(sharing[key{f.Name, f.Value}]), func(id int, _ int) bool {
			_, skip := ignored[id]
			return !skip
		})
		sort.Ints(matched)
		report.Records = append(report.Records, UserRecord{
			Name:           f.Name,
			Value:          f.Value,
			Data:           f.Data,
			CreatedAt:      f.CreatedAt,
			UpdatedAt:      f.UpdatedAt,
			MatchedUserIDs: matched,
		})
	}
	return report, nil
}
