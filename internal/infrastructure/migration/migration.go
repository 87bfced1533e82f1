package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name  string
	Query string
}

// Migrations lists every schema change in the order it is applied. Each
// statement is idempotent so the list can run on every startup.
var Migrations = []Migration{
	{
		Name: "create_resumes",
		Query: `CREATE TABLE IF NOT EXISTS resumes (
			user_id    TEXT PRIMARY KEY,
			document   JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
	{
		Name: "create_export_jobs",
		Query: `CREATE TABLE IF NOT EXISTS export_jobs (
			id         UUID PRIMARY KEY,
			user_id    TEXT NOT NULL,
			variant    TEXT NOT NULL,
			status     TEXT NOT NULL,
			file_name  TEXT NOT NULL DEFAULT '',
			metadata   JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name:  "index_export_jobs_user",
		Query: `CREATE INDEX IF NOT EXISTS export_jobs_user_created_idx ON export_jobs (user_id, created_at DESC);`,
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.Query); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}
