package httpx

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
	"forum-fingerprint-api/internal/config"
	"forum-fingerprint-api/internal/httpx/kit"
)

func newE2EApp(t *testing.T) (*fiber.App, *ent.Client) {
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

	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "forum-fingerprint-api"
	cfg.JWT.Audience = "forum"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 14
	cfg.Fingerprint.CookieEnabled = true
	cfg.Fingerprint.IPEnabled = true
	cfg.Fingerprint.RateWindowSec = 60
	cfg.Fingerprint.RateLimit = 100

	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	RegisterCommonMiddlewares(app)
	Register(app, client, &Providers{Cfg: config.NewStore(cfg)})
	return app, client
}

func TestE2E_Health(t *testing.T) {
	app, _ := newE2EApp(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var body struct {
		Code string         `json:"code"`
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "OK" || body.Data["status"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestE2E_NotFoundEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "E_NOT_FOUND" {
		t.Fatalf("unexpected body: %v", body)
	}
}

// Full round trip: register, login, submit a fingerprint with the issued
// token, and confirm the admin surface stays closed to regular users.
func TestE2E_SubmitFlow(t *testing.T) {
	app, client := newE2EApp(t)

	post := func(path, token string, payload any) *http.Response {
		b, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		return res
	}

	res := post("/auth/register", "", map[string]string{"username": "eve", "password": "pw12345"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register: %d", res.StatusCode)
	}
	res = post("/auth/login", "", map[string]string{"username": "eve", "password": "pw12345"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login: %d", res.StatusCode)
	}
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&login); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	// Unauthenticated submission is refused.
	res = post("/fingerprint", "", map[string]string{"visitor_id": "v1", "version": "1"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous submit: %d", res.StatusCode)
	}

	res = post("/fingerprint", login.Data.AccessToken, map[string]string{"visitor_id": "v1", "version": "1"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit: %d", res.StatusCode)
	}
	n, err := client.Fingerprint.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n == 0 {
		t.Fatal("submission stored no observations")
	}

	// Regular users cannot reach the admin surface.
	req := httptest.NewRequest(http.MethodGet, "/admin/fingerprint", nil)
	req.Header.Set("Authorization", "Bearer "+login.Data.AccessToken)
	adminRes, err := app.Test(req)
	if err != nil {
		t.Fatalf("admin request: %v", err)
	}
	if adminRes.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", adminRes.StatusCode)
	}
}
