package auth

import (
	"testing"

	"forum-fingerprint-api/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "forum-fingerprint-api"
	cfg.JWT.Audience = "forum"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 14
	return cfg
}

func TestSignAndParseAccess(t *testing.T) {
	cfg := testConfig()
	token, jti, err := SignAccess(cfg, "user:42", "user", []string{"user", "admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if jti == "" {
		t.Fatal("expected a token id")
	}

	claims, err := ParseAndValidate(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user:42" || claims.Kind != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Roles) != 2 || claims.Roles[1] != "admin" {
		t.Fatalf("roles lost: %v", claims.Roles)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	token, _, err := SignAccess(cfg, "user:1", "user", nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	other := testConfig()
	other.JWT.HSSecret = "different"
	if _, err := ParseAndValidate(other, token); err == nil {
		t.Fatal("token signed with another secret must fail")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseAndValidate(testConfig(), "not.a.token"); err == nil {
		t.Fatal("garbage must fail")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("hunter2", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("hunter3", hash) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("hunter2", "not-an-encoded-hash") {
		t.Fatal("malformed hash accepted")
	}
}
