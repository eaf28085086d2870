//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"forum-fingerprint-api/internal/config"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("app"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/app?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	if _, err := c.User.Query().Count(ctx2); err != nil {
		t.Fatalf("ent ping: %v", err)
	}

	u, err := c.User.Create().
		SetUsername("test_user").
		SetPasswordHash("x").
		Save(ctx2)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Username != "test_user" {
		t.Errorf("expected user name 'test_user', got '%s'", u.Username)
	}

	// The unique (user_id, name, value) upsert must work on real Postgres,
	// not just the sqlite test dialect.
	first, err := c.Fingerprint.Create().
		SetUserID(u.ID).SetName("ip").SetValue("10.0.0.1").
		Save(ctx2)
	if err != nil {
		t.Fatalf("create fingerprint: %v", err)
	}
	err = c.Fingerprint.Create().
		SetUserID(u.ID).SetName("ip").SetValue("10.0.0.1").
		OnConflictColumns("user_id", "name", "value").
		UpdateUpdatedAt().
		Exec(ctx2)
	if err != nil {
		t.Fatalf("upsert fingerprint: %v", err)
	}
	count, err := c.Fingerprint.Query().Count(ctx2)
	if err != nil {
		t.Fatalf("count fingerprints: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 fingerprint after upsert, got %d (first id %d)", count, first.ID)
	}

	t.Logf("Database integration test passed successfully")
}
