package fingerprints

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"forum-fingerprint-api/ent"
	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/internal/config"
	"forum-fingerprint-api/internal/fpx"
	"forum-fingerprint-api/internal/httpx/kit/testutil"
	"forum-fingerprint-api/internal/httpx/mw"
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

type noopSilencer struct{ called bool }

func (s *noopSilencer) Silence(context.Context, int, string) error {
	s.called = true
	return nil
}

func newSubmitApp(t *testing.T, client *ent.Client, userID int, silencer fpx.Silencer) *fiber.App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Fingerprint.CookieEnabled = true
	cfg.Fingerprint.IPEnabled = true
	store := config.NewStore(cfg)
	deps := Deps{
		Cfg:      store,
		Client:   client,
		Store:    fpx.NewStore(client),
		Registry: fpx.NewRegistry(client),
		Silencer: silencer,
	}
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: fmt.Sprintf("user:%d", userID), Kind: "user"})
				return c.Next()
			})
		},
		func(app *fiber.App) { app.Post("/fingerprint", mw.RequireUser(), SubmitHandler(deps)) },
	)
}

func submit(t *testing.T, app *fiber.App, payload map[string]any, cookie string) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/fingerprint", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Accept-Language", "en-US")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "fp", Value: cookie})
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return res
}

func TestSubmit_CreatesObservations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, err := client.User.Create().SetUsername("alice").SetPasswordHash("x").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	app := newSubmitApp(t, client, u.ID, &noopSilencer{})

	res := submit(t, app, map[string]any{
		"visitor_id": "abc123",
		"version":    "2.1.0",
		"data":       map[string]any{"screen": "1920x1080"},
	}, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}

	// Cookie, ip, raw hash, augmented hash.
	rows, err := client.Fingerprint.Query().Where(fingerprint.UserIDEQ(u.ID)).All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	names := map[string]bool{}
	for _, r := range rows {
		names[r.Name] = true
	}
	for _, want := range []string{"cookie", "ip", "fingerprintjs2", "fingerprintjs2+"} {
		if !names[want] {
			t.Fatalf("missing %s observation, have %v", want, names)
		}
	}

	var fpCookie string
	for _, c := range res.Cookies() {
		if c.Name == "fp" {
			fpCookie = c.Value
		}
	}
	if fpCookie == "" {
		t.Fatal("fp cookie must be set")
	}

	// Resubmitting with the same cookie touches rather than duplicates.
	res = submit(t, app, map[string]any{"visitor_id": "abc123", "version": "2.1.0"}, fpCookie)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	n, _ := client.Fingerprint.Query().Where(fingerprint.UserIDEQ(u.ID)).Count(ctx)
	if n != len(rows) {
		t.Fatalf("resubmission duplicated rows: %d vs %d", n, len(rows))
	}
}

func TestSubmit_ValidationBeforeWrites(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, err := client.User.Create().SetUsername("bob").SetPasswordHash("x").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	app := newSubmitApp(t, client, u.ID, &noopSilencer{})

	res := submit(t, app, map[string]any{"version": "2.1.0"}, "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing visitor_id must 400, got %d", res.StatusCode)
	}
	var body map[string]any
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body["code"] != "E_INVALID_PARAM" {
		t.Fatalf("unexpected error code: %v", body)
	}

	n, _ := client.Fingerprint.Query().Count(ctx)
	if n != 0 {
		t.Fatalf("rejected submission must write nothing, got %d rows", n)
	}
}

func TestSubmit_MalformedDataDegrades(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, err := client.User.Create().SetUsername("carol").SetPasswordHash("x").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	app := newSubmitApp(t, client, u.ID, &noopSilencer{})

	// data is a JSON string, not an object; the record is still stored, just
	// without a payload.
	res := submit(t, app, map[string]any{"visitor_id": "v1", "version": "1", "data": "not-a-map"}, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	row, err := client.Fingerprint.Query().
		Where(fingerprint.UserIDEQ(u.ID), fingerprint.NameEQ("fingerprintjs2")).
		Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if row.Data != nil {
		t.Fatalf("malformed payload must store NULL, got %q", *row.Data)
	}
}

func TestSubmit_SilenceTrigger(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u, err := client.User.Create().SetUsername("sock").SetPasswordHash("x").Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	reg := fpx.NewRegistry(client)
	if _, err := reg.SetFlag(ctx, fpx.FlagSilence, "evil-visitor", true); err != nil {
		t.Fatalf("flag: %v", err)
	}

	sil := &noopSilencer{}
	app := newSubmitApp(t, client, u.ID, sil)
	res := submit(t, app, map[string]any{"visitor_id": "evil-visitor", "version": "1"}, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	if !sil.called {
		t.Fatal("silencer must fire on a silenced hash")
	}
	var body struct {
		Data SubmitResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Data.Success || !body.Data.Silenced {
		t.Fatalf("unexpected response: %+v", body.Data)
	}
}

func TestSubmit_Unauthenticated(t *testing.T) {
	client := newTestClient(t)
	deps := Deps{Cfg: config.NewStore(&config.Config{}), Client: client, Store: fpx.NewStore(client), Registry: fpx.NewRegistry(client)}
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/fingerprint", mw.RequireUser(), SubmitHandler(deps))
	})

	req := httptest.NewRequest(http.MethodPost, "/fingerprint", strings.NewReader(`{"visitor_id":"v","version":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}
