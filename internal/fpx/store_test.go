package fpx

import (
	"context"
	"testing"
	"time"
)

func TestStore_CreateOrTouch_Dedup(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u := newTestUser(t, client, "alice")

	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	f1, err := store.CreateOrTouch(ctx, u.ID, "ip", "10.0.0.1", nil, first)
	if err != nil {
		t.Fatalf("first observation: %v", err)
	}
	f2, err := store.CreateOrTouch(ctx, u.ID, "ip", "10.0.0.1", nil, second)
	if err != nil {
		t.Fatalf("repeat observation: %v", err)
	}
	if f1.ID != f2.ID {
		t.Fatalf("repeat observation created a new row: %d vs %d", f1.ID, f2.ID)
	}
	if f2.CreatedAt.Unix() != first.Unix() {
		t.Fatalf("created_at must survive the touch: %v", f2.CreatedAt)
	}
	if f2.UpdatedAt.Unix() != second.Unix() {
		t.Fatalf("updated_at must advance: %v", f2.UpdatedAt)
	}

	n, err := client.Fingerprint.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
}

func TestStore_CreateOrTouch_ReplacesData(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u := newTestUser(t, client, "bob")

	now := time.Now().UTC()
	payload := `{"screen":"1920x1080"}`
	if _, err := store.CreateOrTouch(ctx, u.ID, "fingerprintjs2", "abc", &payload, now); err != nil {
		t.Fatalf("create: %v", err)
	}
	// A later submission without a payload clears the stored one.
	f, err := store.CreateOrTouch(ctx, u.ID, "fingerprintjs2", "abc", nil, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
	if f.Data != nil {
		t.Fatalf("payload should be cleared, got %q", *f.Data)
	}
}

func TestStore_FindByUser_Excluding(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u := newTestUser(t, client, "carol")

	base := time.Now().UTC().Add(-time.Hour)
	for i, v := range []string{"v1", "v2", "v3"} {
		if _, err := store.CreateOrTouch(ctx, u.ID, "ip", v, nil, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("seed %s: %v", v, err)
		}
	}

	all, err := store.FindByUser(ctx, u.ID, nil)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	// Most recently updated first.
	if all[0].Value != "v3" {
		t.Fatalf("expected v3 first, got %s", all[0].Value)
	}

	some, err := store.FindByUser(ctx, u.ID, []string{"v2"})
	if err != nil {
		t.Fatalf("find excluding: %v", err)
	}
	for _, f := range some {
		if f.Value == "v2" {
			t.Fatal("excluded value returned")
		}
	}
	if len(some) != 2 {
		t.Fatalf("expected 2 records, got %d", len(some))
	}
}
