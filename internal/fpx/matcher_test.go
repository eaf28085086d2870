package fpx

import (
	"context"
	"testing"
	"time"

	"forum-fingerprint-api/ent"
)

func seed(t *testing.T, store *Store, userID int, name, value string, at time.Time) {
	t.Helper()
	if _, err := store.CreateOrTouch(context.Background(), userID, name, value, nil, at); err != nil {
		t.Fatalf("seed %d/%s/%s: %v", userID, name, value, err)
	}
}

func setup(t *testing.T) (*ent.Client, *Store, *Registry, *Resolver) {
	t.Helper()
	client := newTestClient(t)
	reg := NewRegistry(client)
	return client, NewStore(client), reg, NewResolver(client, reg)
}

func TestResolver_LatestMatches(t *testing.T) {
	client, store, _, res := setup(t)
	ctx := context.Background()
	a := newTestUser(t, client, "a")
	b := newTestUser(t, client, "b")
	c := newTestUser(t, client, "c")

	base := time.Now().UTC().Add(-time.Hour)
	seed(t, store, a.ID, "ip", "10.0.0.1", base)
	seed(t, store, b.ID, "ip", "10.0.0.1", base.Add(time.Minute))
	// Same value under a different source name is a different group.
	seed(t, store, c.ID, "cookie", "10.0.0.1", base)
	// Unshared record, never a match.
	seed(t, store, c.ID, "ip", "10.0.0.9", base)

	groups, err := res.LatestMatches(ctx, 20)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %+v", len(groups), groups)
	}
	g := groups[0]
	if g.Name != "ip" || g.Value != "10.0.0.1" {
		t.Fatalf("unexpected group: %+v", g)
	}
	if len(g.UserIDs) != 2 || g.UserIDs[0] != a.ID || g.UserIDs[1] != b.ID {
		t.Fatalf("unexpected members: %v", g.UserIDs)
	}
}

func TestResolver_LatestMatches_HiddenExcluded(t *testing.T) {
	client, store, reg, res := setup(t)
	ctx := context.Background()
	a := newTestUser(t, client, "a")
	b := newTestUser(t, client, "b")

	now := time.Now().UTC()
	seed(t, store, a.ID, "ip", "10.0.0.1", now)
	seed(t, store, b.ID, "ip", "10.0.0.1", now)

	if _, err := reg.SetFlag(ctx, FlagHide, "10.0.0.1", true); err != nil {
		t.Fatalf("hide: %v", err)
	}
	groups, err := res.LatestMatches(ctx, 20)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("hidden value must not match: %+v", groups)
	}

	// Unhiding restores the match; no data was deleted.
	if _, err := reg.SetFlag(ctx, FlagHide, "10.0.0.1", false); err != nil {
		t.Fatalf("unhide: %v", err)
	}
	groups, err = res.LatestMatches(ctx, 20)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected restored match, got %d", len(groups))
	}
}

func TestResolver_LatestMatches_Ordering(t *testing.T) {
	client, store, _, res := setup(t)
	ctx := context.Background()
	a := newTestUser(t, client, "a")
	b := newTestUser(t, client, "b")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seed(t, store, a.ID, "ip", "old", base)
	seed(t, store, b.ID, "ip", "old", base)
	seed(t, store, a.ID, "ip", "new", base.Add(time.Hour))
	seed(t, store, b.ID, "ip", "new", base.Add(time.Hour))

	groups, err := res.LatestMatches(ctx, 20)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Value != "new" {
		t.Fatalf("most recent group must come first: %+v", groups)
	}

	limited, err := res.LatestMatches(ctx, 1)
	if err != nil {
		t.Fatalf("limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Value != "new" {
		t.Fatalf("limit must keep the most recent: %+v", limited)
	}
}

func TestResolver_UserReport(t *testing.T) {
	client, store, reg, res := setup(t)
	ctx := context.Background()
	a := newTestUser(t, client, "a")
	b := newTestUser(t, client, "b")
	c := newTestUser(t, client, "c")

	now := time.Now().UTC()
	seed(t, store, a.ID, "ip", "10.0.0.1", now)
	seed(t, store, b.ID, "ip", "10.0.0.1", now)
	seed(t, store, c.ID, "ip", "10.0.0.1", now)
	seed(t, store, a.ID, "cookie", "solo", now)

	report, err := res.UserReport(ctx, a.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.UserID != a.ID || len(report.Records) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
	var shared *UserRecord
	for i := range report.Records {
		if report.Records[i].Value == "10.0.0.1" {
			shared = &report.Records[i]
		}
	}
	if shared == nil || len(shared.MatchedUserIDs) != 2 {
		t.Fatalf("expected b and c matched: %+v", report.Records)
	}

	// Acknowledged pairs drop out of the matched lists but stay listed as
	// ignores.
	if err := reg.SetIgnore(ctx, a.ID, b.ID, true); err != nil {
		t.Fatalf("ignore: %v", err)
	}
	report, err = res.UserReport(ctx, a.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, r := range report.Records {
		for _, id := range r.MatchedUserIDs {
			if id == b.ID {
				t.Fatal("ignored user still matched")
			}
		}
	}
	if len(report.Ignores) != 1 || report.Ignores[0] != b.ID {
		t.Fatalf("ignore set missing: %v", report.Ignores)
	}
}

func TestResolver_UserReport_Empty(t *testing.T) {
	client, _, _, res := setup(t)
	u := newTestUser(t, client, "quiet")

	report, err := res.UserReport(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Records) != 0 || len(report.Ignores) != 0 {
		t.Fatalf("expected empty report: %+v", report)
	}
}

func TestResolver_ValueData(t *testing.T) {
	client, store, _, res := setup(t)
	ctx := context.Background()
	a := newTestUser(t, client, "a")
	b := newTestUser(t, client, "b")

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	older := `{"screen":"800x600"}`
	newer := `{"screen":"1920x1080"}`
	if _, err := store.CreateOrTouch(ctx, a.ID, "fingerprintjs2", "x", &older, base); err != nil {
		t.Fatalf("seed older: %v", err)
	}
	if _, err := store.CreateOrTouch(ctx, b.ID, "fingerprintjs2", "x", &newer, base.Add(time.Hour)); err != nil {
		t.Fatalf("seed newer: %v", err)
	}
	seed(t, store, a.ID, "ip", "bare", base)

	data, err := res.ValueData(ctx, []string{"x", "bare", "absent"})
	if err != nil {
		t.Fatalf("value data: %v", err)
	}
	if data["x"] == nil || *data["x"] != newer {
		t.Fatalf("expected the most recent payload, got %v", data["x"])
	}
	if got, ok := data["bare"]; !ok || got != nil {
		t.Fatalf("payload-less value must map to nil: %v %v", got, ok)
	}
	if _, ok := data["absent"]; ok {
		t.Fatal("unknown value must be absent")
	}
}

func TestResolver_ValueCounts(t *testing.T) {
	client, store, _, res := setup(t)
	ctx := context.Background()
	a := newTestUser(t, client, "a")
	b := newTestUser(t, client, "b")

	now := time.Now().UTC()
	seed(t, store, a.ID, "ip", "x", now)
	seed(t, store, b.ID, "ip", "x", now)
	seed(t, store, a.ID, "cookie", "y", now)

	counts, err := res.ValueCounts(ctx, []string{"x", "y", "absent"})
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["x"] != 2 || counts["y"] != 1 || counts["absent"] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
