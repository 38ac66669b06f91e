// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package postgres

// Database schema migrations.  See
// https://github.com/rubenv/sql-migrate for the mechanics.  The
// schema is small enough to keep inline rather than generating asset
// files.

import (
	"database/sql"

	migrate "github.com/rubenv/sql-migrate"
)

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "001-initial-schema",
			Up: []string{
				`CREATE TABLE users (
					id SERIAL PRIMARY KEY,
					username VARCHAR NOT NULL UNIQUE,
					created TIMESTAMP WITH TIME ZONE NOT NULL
				)`,
				`CREATE TABLE rooms (
					id SERIAL PRIMARY KEY,
					location VARCHAR NOT NULL,
					capacity INTEGER NOT NULL,
					fenix_id VARCHAR NOT NULL UNIQUE,
					created TIMESTAMP WITH TIME ZONE NOT NULL
				)`,
				`CREATE TABLE checkins (
					id UUID PRIMARY KEY,
					user_id INTEGER NOT NULL REFERENCES users(id),
					room_id INTEGER NOT NULL REFERENCES rooms(id),
					created TIMESTAMP WITH TIME ZONE NOT NULL,
					UNIQUE (user_id, room_id)
				)`,
			},
			Down: []string{
				`DROP TABLE checkins`,
				`DROP TABLE rooms`,
				`DROP TABLE users`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in
// reverse, ultimately dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
