package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateCoreTables, downCreateCoreTables)
}

func upCreateCoreTables(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS challenges (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		start_name TEXT NOT NULL,
		start_lat DOUBLE PRECISION NOT NULL,
		start_lng DOUBLE PRECISION NOT NULL,
		end_name TEXT NOT NULL,
		end_lat DOUBLE PRECISION NOT NULL,
		end_lng DOUBLE PRECISION NOT NULL,
		total_distance DOUBLE PRECISION NOT NULL,
		conversion_rate DOUBLE PRECISION NOT NULL DEFAULT 1300,
		total_steps BIGINT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT false,
		min_team_size INT NOT NULL DEFAULT 1,
		max_team_size INT NOT NULL,
		milestones JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		challenge_id UUID NOT NULL REFERENCES challenges(id),
		total_steps BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT false,
		team_id UUID REFERENCES teams(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS step_entries (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		team_id UUID NOT NULL REFERENCES teams(id),
		challenge_id UUID NOT NULL REFERENCES challenges(id),
		entry_date DATE NOT NULL,
		steps BIGINT NOT NULL CHECK (steps >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, entry_date)
	);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_users_team ON users(team_id);
	`)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_teams_challenge ON teams(challenge_id);
	`)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_step_entries_team_date ON step_entries(team_id, entry_date);
	`)
	return err
}

func downCreateCoreTables(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS step_entries;`,
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_team_id_fkey;`,
		`DROP TABLE IF EXISTS users;`,
		`DROP TABLE IF EXISTS teams;`,
		`DROP TABLE IF EXISTS challenges;`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
