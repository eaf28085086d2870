package admin

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

func newAdminApp(t *testing.T, client *ent.Client) *fiber.App {
	t.Helper()
	reg := fpx.NewRegistry(client)
	d := Deps{Client: client, Resolver: fpx.NewResolver(client, reg), Registry: reg}
	staff := mw.RequireRoles("admin")
	return testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:1", Kind: "user", Roles: []string{"user", "admin"}})
				return c.Next()
			})
		},
		func(app *fiber.App) { app.Get("/admin/fingerprint", staff, IndexHandler(d)) },
		func(app *fiber.App) { app.Get("/admin/fingerprint/user_report", staff, UserReportHandler(d)) },
		func(app *fiber.App) { app.Put("/admin/fingerprint/flag", staff, FlagHandler(d)) },
		func(app *fiber.App) { app.Post("/admin/fingerprint/ignore", staff, IgnoreHandler(d)) },
		func(app *fiber.App) { app.Get("/admin/fingerprint/search", staff, SearchHandler(d)) },
	)
}

func seedUser(t *testing.T, client *ent.Client, name string) *ent.User {
	t.Helper()
	u, err := client.User.Create().SetUsername(name).SetPasswordHash("x").Save(context.Background())
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func seedRecord(t *testing.T, client *ent.Client, userID int, name, value string) {
	t.Helper()
	seedRecordData(t, client, userID, name, value, nil)
}

func seedRecordData(t *testing.T, client *ent.Client, userID int, name, value string, data *string) {
	t.Helper()
	if _, err := fpx.NewStore(client).CreateOrTouch(context.Background(), userID, name, value, data, time.Now().UTC()); err != nil {
		t.Fatalf("seed record: %v", err)
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res, out
}

func TestAdmin_IndexAndFlagFlow(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(t, client)
	a := seedUser(t, client, "alice")
	b := seedUser(t, client, "bob")
	seedRecord(t, client, a.ID, "ip", "10.0.0.1")
	seedRecord(t, client, b.ID, "ip", "10.0.0.1")

	res, body := doJSON(t, app, http.MethodGet, "/admin/fingerprint", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("index status: %d", res.StatusCode)
	}
	data := body["data"].(map[string]any)
	matches := data["fingerprints"].([]any)
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %v", matches)
	}
	m := matches[0].(map[string]any)
	users := m["users"].([]any)
	if len(users) != 2 {
		t.Fatalf("expected two members: %v", users)
	}
	if users[0].(map[string]any)["username"] != "alice" {
		t.Fatalf("expected resolved usernames: %v", users)
	}

	// Hide the value; the match disappears and the flagged list reports it.
	res, _ = doJSON(t, app, http.MethodPut, "/admin/fingerprint/flag",
		map[string]any{"type": "hide", "value": "10.0.0.1"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("flag status: %d", res.StatusCode)
	}

	_, body = doJSON(t, app, http.MethodGet, "/admin/fingerprint", nil)
	data = body["data"].(map[string]any)
	if got := data["fingerprints"].([]any); len(got) != 0 {
		t.Fatalf("hidden value still matching: %v", got)
	}
	flagged := data["flagged"].([]any)
	if len(flagged) != 1 {
		t.Fatalf("expected one flagged value: %v", flagged)
	}
	f := flagged[0].(map[string]any)
	if f["value"] != "10.0.0.1" || f["hidden"] != true || f["count"].(float64) != 2 {
		t.Fatalf("unexpected flagged entry: %v", f)
	}

	// Removing the flag restores the match.
	res, _ = doJSON(t, app, http.MethodPut, "/admin/fingerprint/flag",
		map[string]any{"type": "hide", "value": "10.0.0.1", "remove": true})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unflag status: %d", res.StatusCode)
	}
	_, body = doJSON(t, app, http.MethodGet, "/admin/fingerprint", nil)
	data = body["data"].(map[string]any)
	if got := data["fingerprints"].([]any); len(got) != 1 {
		t.Fatalf("match not restored: %v", got)
	}
}

func TestAdmin_FlagValidation(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(t, client)

	res, body := doJSON(t, app, http.MethodPut, "/admin/fingerprint/flag",
		map[string]any{"type": "hide", "value": ""})
	if res.StatusCode != http.StatusBadRequest || body["code"] != "E_INVALID_PARAM" {
		t.Fatalf("blank value must 400: %d %v", res.StatusCode, body)
	}

	res, _ = doJSON(t, app, http.MethodPut, "/admin/fingerprint/flag",
		map[string]any{"type": "ban", "value": "x"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown type must 400: %d", res.StatusCode)
	}
}

func TestAdmin_UserReport(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(t, client)
	a := seedUser(t, client, "alice")
	b := seedUser(t, client, "bob")
	seedRecord(t, client, a.ID, "cookie", "shared")
	seedRecord(t, client, b.ID, "cookie", "shared")

	res, body := doJSON(t, app, http.MethodGet, "/admin/fingerprint/user_report?username=alice", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("report status: %d", res.StatusCode)
	}
	data := body["data"].(map[string]any)
	if data["user"].(map[string]any)["username"] != "alice" {
		t.Fatalf("wrong subject: %v", data)
	}
	recs := data["fingerprints"].([]any)
	if len(recs) != 1 {
		t.Fatalf("expected one record: %v", recs)
	}
	matched := recs[0].(map[string]any)["matches"].([]any)
	if len(matched) != 1 || matched[0].(map[string]any)["username"] != "bob" {
		t.Fatalf("expected bob matched: %v", matched)
	}

	res, body = doJSON(t, app, http.MethodGet, "/admin/fingerprint/user_report?username=ghost", nil)
	if res.StatusCode != http.StatusNotFound || body["code"] != "E_NOT_FOUND" {
		t.Fatalf("unknown user must 404: %d %v", res.StatusCode, body)
	}

	res, _ = doJSON(t, app, http.MethodGet, "/admin/fingerprint/user_report", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing username must 400: %d", res.StatusCode)
	}
}

func TestAdmin_IgnoreFlow(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(t, client)
	a := seedUser(t, client, "alice")
	b := seedUser(t, client, "bob")
	seedRecord(t, client, a.ID, "ip", "both")
	seedRecord(t, client, b.ID, "ip", "both")

	res, _ := doJSON(t, app, http.MethodPost, "/admin/fingerprint/ignore",
		map[string]any{"username": "alice", "other_username": "bob"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("ignore status: %d", res.StatusCode)
	}

	// The ignored pair no longer appears in each other's matched lists.
	_, body := doJSON(t, app, http.MethodGet, "/admin/fingerprint/user_report?username=alice", nil)
	data := body["data"].(map[string]any)
	recs := data["fingerprints"].([]any)
	if got := recs[0].(map[string]any)["matches"].([]any); len(got) != 0 {
		t.Fatalf("ignored pair still matching: %v", got)
	}
	ignores := data["ignores"].([]any)
	if len(ignores) != 1 || ignores[0].(map[string]any)["username"] != "bob" {
		t.Fatalf("ignore set missing: %v", ignores)
	}

	res, _ = doJSON(t, app, http.MethodPost, "/admin/fingerprint/ignore",
		map[string]any{"username": "alice", "other_username": "alice"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("same usernames must 400: %d", res.StatusCode)
	}

	res, _ = doJSON(t, app, http.MethodPost, "/admin/fingerprint/ignore",
		map[string]any{"username": "alice", "other_username": "ghost"})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown user must 404: %d", res.StatusCode)
	}
}

func TestAdmin_PayloadAnnotations(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(t, client)
	a := seedUser(t, client, "alice")
	b := seedUser(t, client, "bob")

	safari := `{"navigator_platform":"iPhone","User-Agent":"Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) Mobile/15E148 Safari/604.1"}`
	seedRecordData(t, client, a.ID, "fingerprintjs2", "shared-hash", &safari)
	seedRecordData(t, client, b.ID, "fingerprintjs2", "shared-hash", &safari)
	seedRecord(t, client, a.ID, "ip", "10.0.0.1")

	// The user report annotates payload-bearing records and leaves bare ones
	// unannotated.
	_, body := doJSON(t, app, http.MethodGet, "/admin/fingerprint/user_report?username=alice", nil)
	recs := body["data"].(map[string]any)["fingerprints"].([]any)
	byValue := map[string]map[string]any{}
	for _, r := range recs {
		m := r.(map[string]any)
		byValue[m["value"].(string)] = m
	}
	hashRec := byValue["shared-hash"]
	if hashRec["is_common"] != true || hashRec["device_type"] != "mobile" {
		t.Fatalf("expected common mobile annotation: %v", hashRec)
	}
	bare := byValue["10.0.0.1"]
	if _, ok := bare["is_common"]; ok {
		t.Fatalf("bare record must not carry is_common: %v", bare)
	}
	if _, ok := bare["device_type"]; ok {
		t.Fatalf("bare record must not carry device_type: %v", bare)
	}

	// The match view carries the same annotations.
	_, body = doJSON(t, app, http.MethodGet, "/admin/fingerprint", nil)
	matches := body["data"].(map[string]any)["fingerprints"].([]any)
	if len(matches) != 1 {
		t.Fatalf("expected one match: %v", matches)
	}
	m := matches[0].(map[string]any)
	if m["is_common"] != true || m["device_type"] != "mobile" {
		t.Fatalf("match annotation missing: %v", m)
	}

	// Flagging the value surfaces is_common on the flagged entry too.
	res, _ := doJSON(t, app, http.MethodPut, "/admin/fingerprint/flag",
		map[string]any{"type": "silence", "value": "shared-hash"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("flag status: %d", res.StatusCode)
	}
	_, body = doJSON(t, app, http.MethodGet, "/admin/fingerprint", nil)
	flagged := body["data"].(map[string]any)["flagged"].([]any)
	if len(flagged) != 1 {
		t.Fatalf("expected one flagged entry: %v", flagged)
	}
	f := flagged[0].(map[string]any)
	if f["is_common"] != true {
		t.Fatalf("flagged entry must carry is_common: %v", f)
	}
}

func TestAdmin_SearchValidation(t *testing.T) {
	client := newTestClient(t)
	app := newAdminApp(t, client)

	res, _ := doJSON(t, app, http.MethodGet, "/admin/fingerprint/search", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing q must 400: %d", res.StatusCode)
	}

	// No ES configured degrades to an empty result set.
	res, body := doJSON(t, app, http.MethodGet, "/admin/fingerprint/search?q=abc", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("search status: %d", res.StatusCode)
	}
	data := body["data"].(map[string]any)
	if _, ok := data["hits"]; !ok {
		t.Fatalf("expected hits key: %v", data)
	}
}

func TestAdmin_RequiresRole(t *testing.T) {
	client := newTestClient(t)
	reg := fpx.NewRegistry(client)
	d := Deps{Client: client, Resolver: fpx.NewResolver(client, reg), Registry: reg}
	app := testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "user:1", Kind: "user", Roles: []string{"user"}})
				return c.Next()
			})
		},
		func(app *fiber.App) { app.Get("/admin/fingerprint", mw.RequireRoles("admin"), IndexHandler(d)) },
	)

	req := httptest.NewRequest(http.MethodGet, "/admin/fingerprint", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin must 403, got %d", res.StatusCode)
	}
}
