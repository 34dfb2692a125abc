package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/caarlos0/env/v6"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers postgres support
	_ "github.com/golang-migrate/migrate/v4/source/file"       // registers file-based migrations support
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/akbarw/onlinebank/db/migrations"
	"github.com/akbarw/onlinebank/internal/persistence/postgres"
	"github.com/akbarw/onlinebank/pkg/random"
)

// PrepareTestDatabase connects to the database configured with DATABASE_URI
// and prepares a randomly named schema with migrations applied, so that
// concurrent tests' databases dont clash with each other.
// Tests that need a real database are skipped when DATABASE_URI is not set
func PrepareTestDatabase(t *testing.T) (*pgxpool.Pool, *postgres.Database, func()) {
	t.Helper()

	type config struct {
		DatabaseDSN string `env:"DATABASE_URI"`
	}
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}
	if cfg.DatabaseDSN == "" {
		t.Skip("set DATABASE_URI to run database tests")
	}

	if err := random.Seed(); err != nil {
		panic(err)
	}
	schema := random.String(5, "abcdefghijklmnopqrstuvwxyz")
	pg, err := pgx.Connect(context.TODO(), cfg.DatabaseDSN)
	if err != nil {
		panic(err)
	}
	if _, err := pg.Exec(context.TODO(), fmt.Sprintf("CREATE SCHEMA %s", schema)); err != nil {
		panic(err)
	}
	// use the prepared schema
	dsn := fmt.Sprintf("%s?sslmode=disable&search_path=%s", cfg.DatabaseDSN, schema)
	pool, err := pgxpool.Connect(context.TODO(), dsn)
	if err != nil {
		panic(err)
	}

	// run migrations
	src, err := iofs.New(migrations.Embed, ".")
	if err != nil {
		panic(err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		panic(err)
	}
	if err = m.Up(); err != nil {
		panic(err)
	}

	return pool, postgres.New(pool), func() {
		defer pool.Close()
		defer pg.Close(context.TODO()) // nolint: errcheck
		if _, err := pg.Exec(context.TODO(), fmt.Sprintf("DROP SCHEMA %s CASCADE", schema)); err != nil {
			panic(err)
		}
	}
}
