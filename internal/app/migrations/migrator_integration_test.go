//go:build integration

package migrations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func writeMigration(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing migration file: %v", err)
	}
}

func versionApplied(t *testing.T, pool *pgxpool.Pool, version string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("checking schema_migrations: %v", err)
	}
	return exists
}

func tableExists(t *testing.T, pool *pgxpool.Pool, table string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, table,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("checking table existence: %v", err)
	}
	return exists
}

func TestMigrateAppliesAndRecordsVersion(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	t.Cleanup(func() {
		pool.Exec(ctx, `DROP TABLE IF EXISTS migration_targets`)
		pool.Exec(ctx, `DELETE FROM schema_migrations WHERE version = '901'`)
	})

	dir := t.TempDir()
	writeMigration(t, dir, "901_create_targets.sql",
		`CREATE TABLE migration_targets (id BIGSERIAL PRIMARY KEY);`)

	m := NewMigrator(pool)
	if err := m.MigrateFromDirectory(dir); err != nil {
		t.Fatalf("MigrateFromDirectory: %v", err)
	}

	if !tableExists(t, pool, "migration_targets") {
		t.Error("migration table was not created")
	}
	if !versionApplied(t, pool, "901") {
		t.Error("version 901 not recorded in schema_migrations")
	}

	// A second run must be a no-op.
	if err := m.MigrateFromDirectory(dir); err != nil {
		t.Fatalf("re-running migrations: %v", err)
	}
}

func TestFailedMigrationLeavesNoRecord(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	t.Cleanup(func() {
		pool.Exec(ctx, `DROP TABLE IF EXISTS migration_rejects`)
		pool.Exec(ctx, `DELETE FROM schema_migrations WHERE version = '902'`)
	})

	dir := t.TempDir()
	writeMigration(t, dir, "902_broken.sql",
		`CREATE TABLE migration_rejects (id BIGSERIAL PRIMARY KEY);
		 THIS IS NOT SQL;`)

	if err := NewMigrator(pool).MigrateFromDirectory(dir); err == nil {
		t.Fatal("broken migration did not return an error")
	}

	// Neither the partial schema change nor the version record may
	// survive the rolled-back transaction; otherwise the migration
	// would be skipped forever on later startups.
	if tableExists(t, pool, "migration_rejects") {
		t.Error("partial schema change survived the failed migration")
	}
	if versionApplied(t, pool, "902") {
		t.Error("failed migration was recorded as applied")
	}
}
