package fpx

import (
	"context"
	"encoding/json"
	"testing"
)

type capturePublisher struct {
	keys   []string
	bodies [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, key string, body []byte) error {
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, body)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestShouldSilence(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	if _, err := reg.SetFlag(ctx, FlagSilence, "bad-hash", true); err != nil {
		t.Fatalf("flag: %v", err)
	}

	got, err := ShouldSilence(ctx, reg, false, []string{"clean", "bad-hash"})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if !got {
		t.Fatal("expected silence decision")
	}

	// Already restricted users are never re-silenced.
	got, err = ShouldSilence(ctx, reg, true, []string{"bad-hash"})
	if err != nil || got {
		t.Fatalf("already silenced must short-circuit: %v %v", got, err)
	}

	got, err = ShouldSilence(ctx, reg, false, nil)
	if err != nil || got {
		t.Fatalf("no hashes must short-circuit: %v %v", got, err)
	}
}

func TestEventSilencer(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u := newTestUser(t, client, "troubled")

	pub := &capturePublisher{}
	s := &EventSilencer{Client: client, MQ: pub}
	if err := s.Silence(ctx, u.ID, "matched silenced fingerprint"); err != nil {
		t.Fatalf("silence: %v", err)
	}

	reloaded, err := client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Silenced {
		t.Fatal("user row must be marked silenced")
	}

	if len(pub.keys) != 1 || pub.keys[0] != "user.silenced" {
		t.Fatalf("expected one user.silenced event, got %v", pub.keys)
	}
	var evt map[string]any
	if err := json.Unmarshal(pub.bodies[0], &evt); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if int(evt["user_id"].(float64)) != u.ID {
		t.Fatalf("wrong event payload: %v", evt)
	}
}
