package fpx

import (
	"context"
	"testing"
	"time"
)

func TestSweeper_AgeCutoff(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u := newTestUser(t, client, "old-timer")

	now := time.Now().UTC()
	seed(t, store, u.ID, "ip", "stale", now.Add(-200*24*time.Hour))
	seed(t, store, u.ID, "ip", "fresh", now.Add(-time.Hour))

	sw := NewSweeper(store, nil, SweeperConfig{MaxAge: 180 * 24 * time.Hour})
	if err := sw.RunOnce(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	left, err := store.FindByUser(ctx, u.ID, nil)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(left) != 1 || left[0].Value != "fresh" {
		t.Fatalf("expected only fresh record, got %+v", left)
	}
}

func TestSweeper_Orphans(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	keep := newTestUser(t, client, "keep")
	gone := newTestUser(t, client, "gone")

	now := time.Now().UTC()
	seed(t, store, keep.ID, "ip", "a", now)
	seed(t, store, gone.ID, "ip", "b", now)

	if err := client.User.DeleteOneID(gone.ID).Exec(ctx); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	sw := NewSweeper(store, nil, SweeperConfig{})
	if err := sw.RunOnce(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	n, err := client.Fingerprint.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("orphaned records must be removed, %d left", n)
	}
}

func TestSweeper_PerUserCap(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u := newTestUser(t, client, "chatty")

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 6; i++ {
		seed(t, store, u.ID, "cookie", string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
	}

	sw := NewSweeper(store, nil, SweeperConfig{MaxPerUser: 3})
	if err := sw.RunOnce(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	left, err := store.FindByUser(ctx, u.ID, nil)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(left) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(left))
	}
	// The most recently updated survive.
	if left[0].Value != "f" || left[2].Value != "d" {
		t.Fatalf("wrong survivors: %+v", left)
	}
}

func TestSweeper_CapDisabled(t *testing.T) {
	client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()
	u := newTestUser(t, client, "free")

	now := time.Now().UTC()
	for i := 0; i < 4; i++ {
		seed(t, store, u.ID, "cookie", string(rune('a'+i)), now)
	}

	sw := NewSweeper(store, nil, SweeperConfig{})
	if err := sw.RunOnce(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	n, _ := client.Fingerprint.Query().Count(ctx)
	if n != 4 {
		t.Fatalf("cap disabled must keep everything, got %d", n)
	}
}
