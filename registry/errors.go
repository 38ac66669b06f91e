// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package registry

import (
	"errors"
)

// ErrNoUsername is returned from CreateUser when the username is
// empty.
var ErrNoUsername = errors.New("A username must be provided")

// ErrUserExists is returned from CreateUser when the username is
// already registered.
var ErrUserExists = errors.New("Username already exists")

// ErrRoomExists is returned from CreateRoom when the fenix id is
// already registered.
var ErrRoomExists = errors.New("Room already exists")

// ErrNoSuchUser is returned from CheckIn when the user id is unknown.
var ErrNoSuchUser = errors.New("No such user")

// ErrNoSuchRoom is returned from CheckIn when the room id is unknown.
var ErrNoSuchRoom = errors.New("No such room")

// ErrAlreadyCheckedIn is returned from CheckIn when the user already
// has a checkin for that room.
var ErrAlreadyCheckedIn = errors.New("Already checked in to that room")

// ErrNoSuchCheckin is returned from CheckOut when there is no checkin
// for the given user and room.
var ErrNoSuchCheckin = errors.New("No such checkin")
