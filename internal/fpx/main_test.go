package fpx

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"forum-fingerprint-api/ent"
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

func newTestUser(t *testing.T, client *ent.Client, name string) *ent.User {
	t.Helper()
	u, err := client.User.Create().SetUsername(name).SetPasswordHash("x").Save(context.Background())
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}
