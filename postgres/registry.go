// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package postgres implements the rooms Registry on top of
// PostgreSQL.
package postgres

import (
	"database/sql"

	"github.com/asint/fenix-rooms/registry"
	"github.com/benbjohnson/clock"
	"github.com/lib/pq"
	"github.com/satori/go.uuid"
)

type pgRegistry struct {
	db    *sql.DB
	clock clock.Clock
}

// New creates a Registry using the provided PostgreSQL connection
// string.  The connection string may be an expanded PostgreSQL
// string, a "postgres:" URL, or a URL without a scheme:
//
//     "host=localhost user=postgres dbname=fenix_rooms"
//     "postgres://postgres@localhost/fenix_rooms"
//     "//postgres@localhost/fenix_rooms"
//
// See http://godoc.org/github.com/lib/pq for details; missing
// parameters can also come from the libpq environment variables.
//
// The returned Registry carries a connection pool with it and should
// be shared across the application; call New() sparingly, ideally
// exactly once.
func New(connectionString string) (registry.Registry, error) {
	return NewWithClock(connectionString, clock.New())
}

// NewWithClock creates a Registry with an explicit time source.  Most
// application code should call New(); this entry point is intended
// for tests that need to inject a mock time source.
func NewWithClock(connectionString string, clk clock.Clock) (registry.Registry, error) {
	// If the connection string is a destructured URL, turn it
	// back into a proper URL.
	if len(connectionString) >= 2 && connectionString[0] == '/' && connectionString[1] == '/' {
		connectionString = "postgres:" + connectionString
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if err = Upgrade(db); err != nil {
		return nil, err
	}
	return &pgRegistry{db: db, clock: clk}, nil
}

func (r *pgRegistry) CreateUser(username string) (*registry.User, error) {
	if username == "" {
		return nil, registry.ErrNoUsername
	}
	user := &registry.User{Username: username, Created: r.clock.Now()}
	err := withTx(r.db, func(tx *sql.Tx) error {
		row := tx.QueryRow("INSERT INTO users(username, created) VALUES ($1, $2) RETURNING id",
			username, user.Created)
		return row.Scan(&user.ID)
	})
	if isUniqueViolation(err) {
		return nil, registry.ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *pgRegistry) Users() (result []*registry.User, err error) {
	err = withTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, username, created FROM users ORDER BY id")
		if err != nil {
			return err
		}
		return scanRows(rows, func() error {
			user := &registry.User{}
			if err := rows.Scan(&user.ID, &user.Username, &user.Created); err != nil {
				return err
			}
			result = append(result, user)
			return nil
		})
	})
	return
}

func (r *pgRegistry) CreateRoom(location string, capacity int, fenixID string) (*registry.Room, error) {
	room := &registry.Room{
		Location: location,
		Capacity: capacity,
		FenixID:  fenixID,
		Created:  r.clock.Now(),
	}
	err := withTx(r.db, func(tx *sql.Tx) error {
		row := tx.QueryRow("INSERT INTO rooms(location, capacity, fenix_id, created) VALUES ($1, $2, $3, $4) RETURNING id",
			location, capacity, fenixID, room.Created)
		return row.Scan(&room.ID)
	})
	if isUniqueViolation(err) {
		return nil, registry.ErrRoomExists
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *pgRegistry) Rooms() (result []*registry.Room, err error) {
	err = withTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, location, capacity, fenix_id, created FROM rooms ORDER BY id")
		if err != nil {
			return err
		}
		return scanRows(rows, func() error {
			room := &registry.Room{}
			if err := rows.Scan(&room.ID, &room.Location, &room.Capacity, &room.FenixID, &room.Created); err != nil {
				return err
			}
			result = append(result, room)
			return nil
		})
	})
	return
}

func (r *pgRegistry) CheckIn(userID, roomID int) (*registry.Checkin, error) {
	checkin := &registry.Checkin{
		ID:      uuid.NewV4().String(),
		UserID:  userID,
		RoomID:  roomID,
		Created: r.clock.Now(),
	}
	err := withTx(r.db, func(tx *sql.Tx) error {
		if err := exists(tx, "SELECT 1 FROM users WHERE id=$1", userID, registry.ErrNoSuchUser); err != nil {
			return err
		}
		if err := exists(tx, "SELECT 1 FROM rooms WHERE id=$1", roomID, registry.ErrNoSuchRoom); err != nil {
			return err
		}
		_, err := tx.Exec("INSERT INTO checkins(id, user_id, room_id, created) VALUES ($1, $2, $3, $4)",
			checkin.ID, userID, roomID, checkin.Created)
		return err
	})
	if isUniqueViolation(err) {
		return nil, registry.ErrAlreadyCheckedIn
	}
	if err != nil {
		return nil, err
	}
	return checkin, nil
}

func (r *pgRegistry) CheckOut(userID, roomID int) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM checkins WHERE user_id=$1 AND room_id=$2", userID, roomID)
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if count == 0 {
			return registry.ErrNoSuchCheckin
		}
		return nil
	})
}

func (r *pgRegistry) Checkins() (result []*registry.Checkin, err error) {
	err = withTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, user_id, room_id, created FROM checkins ORDER BY created")
		if err != nil {
			return err
		}
		return scanRows(rows, func() error {
			checkin := &registry.Checkin{}
			if err := rows.Scan(&checkin.ID, &checkin.UserID, &checkin.RoomID, &checkin.Created); err != nil {
				return err
			}
			result = append(result, checkin)
			return nil
		})
	})
	return
}

func (r *pgRegistry) Summarize() (summary registry.Summary, err error) {
	err = withTx(r.db, func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM rooms), (SELECT COUNT(*) FROM checkins)")
		return row.Scan(&summary.Users, &summary.Rooms, &summary.Checkins)
	})
	return
}

// exists runs a single-value lookup query and converts an empty
// result into missing.
func exists(tx *sql.Tx, query string, id int, missing error) error {
	var one int
	err := tx.QueryRow(query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return missing
	}
	return err
}

// isUniqueViolation reports whether err is the PostgreSQL
// unique-constraint error class.
func isUniqueViolation(err error) bool {
	if pqerr, ok := err.(*pq.Error); ok {
		return pqerr.Code == "23505"
	}
	return false
}
