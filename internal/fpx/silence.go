package fpx

import (
	"context"
	"encoding/json"
	"time"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/internal/mqx"
)

// ShouldSilence is the pure decision half of the auto-silence side effect: a
// user who is not already restricted and produced at least one silenced hash
// gets silenced. The actual account mutation lives behind Silencer.
func ShouldSilence(ctx context.Context, registry *Registry, alreadySilenced bool, hashes []string) (bool, error) {
	if alreadySilenced || len(hashes) == 0 {
		return false, nil
	}
	return registry.AnySilenced(ctx, hashes)
}

// Silencer applies the account restriction decided by ShouldSilence. Keeping
// it an interface lets the mutation be invoked, retried or mocked
// independently of the matching logic.
type Silencer interface {
	Silence(ctx context.Context, userID int, reason string) error
}

// EventSilencer marks the local user row and emits a user.silenced event for
// the forum platform, which performs the real account restriction.
type EventSilencer struct {
	Client *ent.Client
	MQ     mqx.Publisher
}

func (s *EventSilencer) Silence(ctx context.Context, userID int, reason string) error {
	if err := s.Client.User.UpdateOneID(userID).SetSilenced(true).Exec(ctx); err != nil {
		return err
	}
	if s.MQ == nil {
		return nil
	}
	evt := map[string]any{
		"type":        "user.silenced",
		"user_id":     userID,
		"reason":      reason,
		"silenced_at": time.Now().UTC().Format(time.RFC3339),
	}
	b, _ := json.Marshal(evt)
	return s.MQ.Publish(ctx, "user.silenced", b)
}
