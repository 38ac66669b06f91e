// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package registry defines the bookkeeping side of Fenix Rooms: the
// users that log in, the rooms the administrator has made available,
// and the checkins binding one to the other.
//
// The package only defines the abstract interface and its well-known
// errors.  The memory package provides a reference in-process
// implementation, the postgres package a persistent one, and the
// regclient package one that forwards to an external bookkeeping
// service over REST.  The backend package picks between them from a
// command-line flag.
package registry

import (
	"time"
)

// User is a registered user.  IDs are assigned by the backend,
// starting at 1; id 0 is reserved for the administrator and never
// assigned.
type User struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Created  time.Time `json:"created"`
}

// Room is a space that has been opened for checkins.  FenixID names
// the corresponding leaf room in the upstream space directory; the
// proxy layer verifies that before the room ever reaches a Registry.
type Room struct {
	ID       int       `json:"id"`
	Location string    `json:"location"`
	Capacity int       `json:"capacity"`
	FenixID  string    `json:"fenix_id"`
	Created  time.Time `json:"created"`
}

// Checkin records one user being present in one room.  The ID is a
// random UUID assigned at creation.
type Checkin struct {
	ID      string    `json:"id"`
	UserID  int       `json:"user_id"`
	RoomID  int       `json:"room_id"`
	Created time.Time `json:"created"`
}

// Summary carries record counts for the metrics observer.
type Summary struct {
	Users    int `json:"users"`
	Rooms    int `json:"rooms"`
	Checkins int `json:"checkins"`
}

// Registry stores users, rooms, and checkins.  Implementations must
// be safe for concurrent use.
type Registry interface {
	// CreateUser registers a new user.  An empty username yields
	// ErrNoUsername; a duplicate yields ErrUserExists.
	CreateUser(username string) (*User, error)

	// Users lists all registered users.
	Users() ([]*User, error)

	// CreateRoom records a room as available for checkins.  A
	// fenix id already in use yields ErrRoomExists.  The registry
	// stores what it is given; validating that fenixID names a
	// real leaf room is the caller's job.
	CreateRoom(location string, capacity int, fenixID string) (*Room, error)

	// Rooms lists all rooms.
	Rooms() ([]*Room, error)

	// CheckIn records that a user is in a room.  Unknown ids
	// yield ErrNoSuchUser or ErrNoSuchRoom; a second checkin for
	// the same pair yields ErrAlreadyCheckedIn.
	CheckIn(userID, roomID int) (*Checkin, error)

	// CheckOut removes the checkin for the given pair, yielding
	// ErrNoSuchCheckin if there is none.
	CheckOut(userID, roomID int) error

	// Checkins lists all active checkins.
	Checkins() ([]*Checkin, error)

	// Summarize reports record counts.
	Summarize() (Summary, error)
}
