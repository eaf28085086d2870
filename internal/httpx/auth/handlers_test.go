package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/user"
	"forum-fingerprint-api/internal/httpx/kit/testutil"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return res
}

func TestRegisterAndLogin(t *testing.T) {
	client := newTestClient(t)
	cfg := testConfig()
	app := testutil.NewApp(
		func(a *fiber.App) { a.Post("/auth/register", RegisterHandler(cfg, client)) },
		func(a *fiber.App) { a.Post("/auth/login", LoginHandler(cfg, client)) },
	)

	res := postJSON(t, app, "/auth/register", map[string]string{"username": "alice", "password": "hunter2"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register status: %d", res.StatusCode)
	}

	// Duplicate username is rejected.
	res = postJSON(t, app, "/auth/register", map[string]string{"username": "alice", "password": "other"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register status: %d", res.StatusCode)
	}

	res = postJSON(t, app, "/auth/login", map[string]string{"username": "alice", "password": "hunter2"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status: %d", res.StatusCode)
	}
	var body struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.AccessToken == "" || body.Data.TokenType != "Bearer" {
		t.Fatalf("unexpected token response: %+v", body.Data)
	}
	var hasRefresh bool
	for _, c := range res.Cookies() {
		if c.Name == "refresh_token" && c.Value != "" {
			hasRefresh = true
		}
	}
	if !hasRefresh {
		t.Fatal("refresh cookie must be set")
	}

	claims, err := ParseAndValidate(cfg, body.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Kind != "user" || len(claims.Roles) != 1 || claims.Roles[0] != "user" {
		t.Fatalf("regular user claims wrong: %+v", claims)
	}

	res = postJSON(t, app, "/auth/login", map[string]string{"username": "alice", "password": "wrong"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password status: %d", res.StatusCode)
	}
}

func TestLogin_AdminRole(t *testing.T) {
	client := newTestClient(t)
	cfg := testConfig()
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, err = client.User.Create().
		SetUsername("root").
		SetPasswordHash(hash).
		SetType(user.TypeAdmin).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	app := testutil.NewApp(func(a *fiber.App) { a.Post("/auth/login", LoginHandler(cfg, client)) })
	res := postJSON(t, app, "/auth/login", map[string]string{"username": "root", "password": "s3cret"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status: %d", res.StatusCode)
	}
	var body struct {
		Data TokenResponse `json:"data"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	claims, err := ParseAndValidate(cfg, body.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var isAdmin bool
	for _, r := range claims.Roles {
		if r == "admin" {
			isAdmin = true
		}
	}
	if !isAdmin {
		t.Fatalf("admin role missing: %v", claims.Roles)
	}
}

func TestRefresh(t *testing.T) {
	cfg := testConfig()
	refresh, _, err := SignRefresh(cfg, "user:7", "user", []string{"user", "admin"})
	if err != nil {
		t.Fatalf("sign refresh: %v", err)
	}
	app := testutil.NewApp(func(a *fiber.App) { a.Post("/auth/refresh", RefreshHandler(cfg)) })

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("refresh status: %d", res.StatusCode)
	}

	// The refreshed access token keeps the roles granted at login.
	var body struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := ParseAndValidate(cfg, body.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse refreshed token: %v", err)
	}
	var isAdmin bool
	for _, r := range claims.Roles {
		if r == "admin" {
			isAdmin = true
		}
	}
	if !isAdmin {
		t.Fatalf("refreshed token lost the admin role: %v", claims.Roles)
	}

	// No cookie, no token.
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing cookie status: %d", res.StatusCode)
	}
}
