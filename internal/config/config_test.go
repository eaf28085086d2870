package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, store, _, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Fingerprint.MaxAgeDays != 180 {
		t.Fatalf("max age default: %d", cfg.Fingerprint.MaxAgeDays)
	}
	if cfg.Fingerprint.MaxPerUser != 0 {
		t.Fatalf("cap should default to disabled, got %d", cfg.Fingerprint.MaxPerUser)
	}
	if !cfg.Fingerprint.CookieEnabled || !cfg.Fingerprint.IPEnabled {
		t.Fatalf("cookie/ip sources should default to enabled")
	}
	if store.Get() != cfg {
		t.Fatalf("store should hold loaded config")
	}
}

func TestStoreValidatorRejects(t *testing.T) {
	cfg := &Config{}
	cfg.Fingerprint.MaxPerUser = 5
	store := NewStore(cfg)
	store.AddValidator(func(newCfg *Config, changed map[string]bool) error {
		if newCfg.Fingerprint.MaxPerUser < 0 {
			return os.ErrInvalid
		}
		return nil
	})

	bad := *cfg
	bad.Fingerprint.MaxPerUser = -1
	if store.UpdateValidated(&bad, map[string]bool{"fp.max_per_user": true}) {
		t.Fatalf("negative cap should be rejected")
	}
	if store.Get().Fingerprint.MaxPerUser != 5 {
		t.Fatalf("rejected update must not be applied")
	}

	good := *cfg
	good.Fingerprint.MaxPerUser = 10
	if !store.UpdateValidated(&good, map[string]bool{"fp.max_per_user": true}) {
		t.Fatalf("valid update rejected")
	}
	if store.Get().Fingerprint.MaxPerUser != 10 {
		t.Fatalf("valid update not applied")
	}
}
