package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/config"
)

type tableSchema struct {
	name     string
	sqlite   string
	postgres string
	// extra statements (indexes), dialect neutral
	indexes []string
}

var schema = []tableSchema{
	{
		name: "users",
		sqlite: `CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			profile_picture TEXT NOT NULL DEFAULT '/uploads/default-profile.png',
			accent_color TEXT NOT NULL DEFAULT '#6366f1',
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			height INTEGER NOT NULL DEFAULT 0,
			age INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL DEFAULT 0
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			profile_picture TEXT NOT NULL DEFAULT '/uploads/default-profile.png',
			accent_color TEXT NOT NULL DEFAULT '#6366f1',
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			height INTEGER NOT NULL DEFAULT 0,
			age INTEGER NOT NULL DEFAULT 0,
			created_at BIGINT NOT NULL DEFAULT 0
		)`,
	},
	{
		name: "gym_entries",
		sqlite: `CREATE TABLE IF NOT EXISTS gym_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			exercise TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			weight REAL NOT NULL,
			reps INTEGER NOT NULL,
			user_id INTEGER NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS gym_entries (
			id BIGSERIAL PRIMARY KEY,
			date TEXT NOT NULL,
			exercise TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			weight DOUBLE PRECISION NOT NULL,
			reps INTEGER NOT NULL,
			user_id BIGINT NOT NULL
		)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_gym_entries_user_date ON gym_entries (user_id, date)`,
		},
	},
	{
		name: "body_weight",
		sqlite: `CREATE TABLE IF NOT EXISTS body_weight (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			weight REAL NOT NULL,
			user_id INTEGER NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS body_weight (
			id BIGSERIAL PRIMARY KEY,
			date TEXT NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			user_id BIGINT NOT NULL
		)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_body_weight_user_date ON body_weight (user_id, date)`,
		},
	},
	{
		name: "gym_targets",
		sqlite: `CREATE TABLE IF NOT EXISTS gym_targets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			exercise TEXT NOT NULL,
			target_weight REAL NOT NULL,
			user_id INTEGER NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS gym_targets (
			id BIGSERIAL PRIMARY KEY,
			exercise TEXT NOT NULL,
			target_weight DOUBLE PRECISION NOT NULL,
			user_id BIGINT NOT NULL
		)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_gym_targets_user ON gym_targets (user_id)`,
		},
	},
	{
		name: "gallery_items",
		sqlite: `CREATE TABLE IF NOT EXISTS gallery_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			filename TEXT NOT NULL,
			user_id INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS gallery_items (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			filename TEXT NOT NULL,
			user_id BIGINT NOT NULL,
			created_at BIGINT NOT NULL
		)`,
	},
}

// Migrate creates missing tables and indexes; safe to run on every start.
// Returns the names of the tables it ensured.
func Migrate(ctx context.Context, d *DB) ([]string, error) {
	var ensured []string
	for _, t := range schema {
		stmt := t.sqlite
		if d.Driver == config.DBDriverPostgres {
			stmt = t.postgres
		}
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return ensured, fmt.Errorf("create table %s: %w", t.name, err)
		}
		for _, idx := range t.indexes {
			if _, err := d.ExecContext(ctx, idx); err != nil {
				return ensured, fmt.Errorf("create index on %s: %w", t.name, err)
			}
		}
		log.Tracef("table ensured: %s", t.name)
		ensured = append(ensured, t.name)
	}
	return ensured, nil
}
