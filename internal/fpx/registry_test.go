package fpx

import (
	"context"
	"testing"
)

func TestRegistry_FlagToggle(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	st, err := reg.SetFlag(ctx, FlagHide, "abc", true)
	if err != nil {
		t.Fatalf("set hide: %v", err)
	}
	if !st.Hidden || st.Silenced {
		t.Fatalf("unexpected state: %+v", st)
	}

	st, err = reg.SetFlag(ctx, FlagSilence, "abc", true)
	if err != nil {
		t.Fatalf("set silence: %v", err)
	}
	if !st.Hidden || !st.Silenced {
		t.Fatalf("flags must accumulate on one row: %+v", st)
	}

	n, err := client.FlaggedFingerprint.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one row per value, got %d", n)
	}

	// Clearing both flags removes the row entirely.
	if _, err := reg.SetFlag(ctx, FlagHide, "abc", false); err != nil {
		t.Fatalf("clear hide: %v", err)
	}
	if _, err := reg.SetFlag(ctx, FlagSilence, "abc", false); err != nil {
		t.Fatalf("clear silence: %v", err)
	}
	n, err = client.FlaggedFingerprint.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("all-clear row must be deleted, got %d rows", n)
	}
}

func TestRegistry_ParseFlagKind(t *testing.T) {
	if _, err := ParseFlagKind("hide"); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if _, err := ParseFlagKind("silence"); err != nil {
		t.Fatalf("silence: %v", err)
	}
	if _, err := ParseFlagKind("ban"); err == nil {
		t.Fatal("unknown kind must error")
	}
}

func TestRegistry_AnySilenced(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	if _, err := reg.SetFlag(ctx, FlagSilence, "bad", true); err != nil {
		t.Fatalf("flag: %v", err)
	}
	if _, err := reg.SetFlag(ctx, FlagHide, "hidden-only", true); err != nil {
		t.Fatalf("flag: %v", err)
	}

	got, err := reg.AnySilenced(ctx, []string{"clean", "bad"})
	if err != nil {
		t.Fatalf("any silenced: %v", err)
	}
	if !got {
		t.Fatal("expected silenced match")
	}
	got, err = reg.AnySilenced(ctx, []string{"clean", "hidden-only"})
	if err != nil {
		t.Fatalf("any silenced: %v", err)
	}
	if got {
		t.Fatal("hidden flag must not silence")
	}
	got, err = reg.AnySilenced(ctx, nil)
	if err != nil || got {
		t.Fatalf("empty input must be false, nil: %v %v", got, err)
	}
}

func TestRegistry_IgnoreSymmetry(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()
	a := newTestUser(t, client, "ann")
	b := newTestUser(t, client, "ben")

	if err := reg.SetIgnore(ctx, a.ID, b.ID, true); err != nil {
		t.Fatalf("set ignore: %v", err)
	}
	// Re-enabling is idempotent.
	if err := reg.SetIgnore(ctx, a.ID, b.ID, true); err != nil {
		t.Fatalf("repeat ignore: %v", err)
	}

	forA, err := reg.Ignores(ctx, a.ID)
	if err != nil {
		t.Fatalf("ignores a: %v", err)
	}
	forB, err := reg.Ignores(ctx, b.ID)
	if err != nil {
		t.Fatalf("ignores b: %v", err)
	}
	if len(forA) != 1 || forA[0] != b.ID {
		t.Fatalf("a must ignore b: %v", forA)
	}
	if len(forB) != 1 || forB[0] != a.ID {
		t.Fatalf("b must ignore a: %v", forB)
	}

	if err := reg.SetIgnore(ctx, b.ID, a.ID, false); err != nil {
		t.Fatalf("unset ignore: %v", err)
	}
	forA, _ = reg.Ignores(ctx, a.ID)
	forB, _ = reg.Ignores(ctx, b.ID)
	if len(forA) != 0 || len(forB) != 0 {
		t.Fatalf("removal must clear both directions: %v %v", forA, forB)
	}
}

func TestRegistry_IgnoreSelfRejected(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	if err := reg.SetIgnore(context.Background(), 7, 7, true); err == nil {
		t.Fatal("self ignore must error")
	}
}
