// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// the rooms Registry.  There is no persistence; restarting the
// process loses all users, rooms, and checkins.  The entire store is
// behind a single mutex, which limits throughput in the name of
// correctness.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of the REST
// layers, and for running the daemon without a database.
package memory

import (
	"sync"

	"github.com/asint/fenix-rooms/registry"
	"github.com/benbjohnson/clock"
	"github.com/satori/go.uuid"
)

type memRegistry struct {
	sem      sync.Mutex
	clock    clock.Clock
	users    []*registry.User
	rooms    []*registry.Room
	checkins []*registry.Checkin
	nextUser int
	nextRoom int
}

// New creates a new Registry that operates purely in memory, backed
// by real wall-clock time.
func New() registry.Registry {
	return NewWithClock(clock.New())
}

// NewWithClock creates a new in-memory Registry with an explicit time
// source.  Most application code should call New(); this entry point
// is intended for tests that need to inject a mock time source.
func NewWithClock(clk clock.Clock) registry.Registry {
	return &memRegistry{
		clock:    clk,
		nextUser: 1,
		nextRoom: 1,
	}
}

func (r *memRegistry) CreateUser(username string) (*registry.User, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	if username == "" {
		return nil, registry.ErrNoUsername
	}
	for _, user := range r.users {
		if user.Username == username {
			return nil, registry.ErrUserExists
		}
	}
	user := &registry.User{
		ID:       r.nextUser,
		Username: username,
		Created:  r.clock.Now(),
	}
	r.nextUser++
	r.users = append(r.users, user)
	return copyUser(user), nil
}

func (r *memRegistry) Users() ([]*registry.User, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	result := make([]*registry.User, len(r.users))
	for i, user := range r.users {
		result[i] = copyUser(user)
	}
	return result, nil
}

func (r *memRegistry) CreateRoom(location string, capacity int, fenixID string) (*registry.Room, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	for _, room := range r.rooms {
		if room.FenixID == fenixID {
			return nil, registry.ErrRoomExists
		}
	}
	room := &registry.Room{
		ID:       r.nextRoom,
		Location: location,
		Capacity: capacity,
		FenixID:  fenixID,
		Created:  r.clock.Now(),
	}
	r.nextRoom++
	r.rooms = append(r.rooms, room)
	return copyRoom(room), nil
}

func (r *memRegistry) Rooms() ([]*registry.Room, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	result := make([]*registry.Room, len(r.rooms))
	for i, room := range r.rooms {
		result[i] = copyRoom(room)
	}
	return result, nil
}

func (r *memRegistry) CheckIn(userID, roomID int) (*registry.Checkin, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	if r.findUser(userID) == nil {
		return nil, registry.ErrNoSuchUser
	}
	if r.findRoom(roomID) == nil {
		return nil, registry.ErrNoSuchRoom
	}
	if r.findCheckin(userID, roomID) >= 0 {
		return nil, registry.ErrAlreadyCheckedIn
	}
	checkin := &registry.Checkin{
		ID:      uuid.NewV4().String(),
		UserID:  userID,
		RoomID:  roomID,
		Created: r.clock.Now(),
	}
	r.checkins = append(r.checkins, checkin)
	result := *checkin
	return &result, nil
}

func (r *memRegistry) CheckOut(userID, roomID int) error {
	r.sem.Lock()
	defer r.sem.Unlock()

	i := r.findCheckin(userID, roomID)
	if i < 0 {
		return registry.ErrNoSuchCheckin
	}
	r.checkins = append(r.checkins[:i], r.checkins[i+1:]...)
	return nil
}

func (r *memRegistry) Checkins() ([]*registry.Checkin, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	result := make([]*registry.Checkin, len(r.checkins))
	for i, checkin := range r.checkins {
		c := *checkin
		result[i] = &c
	}
	return result, nil
}

func (r *memRegistry) Summarize() (registry.Summary, error) {
	r.sem.Lock()
	defer r.sem.Unlock()

	return registry.Summary{
		Users:    len(r.users),
		Rooms:    len(r.rooms),
		Checkins: len(r.checkins),
	}, nil
}

// Lookup helpers; the caller must hold the lock.

func (r *memRegistry) findUser(id int) *registry.User {
	for _, user := range r.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

func (r *memRegistry) findRoom(id int) *registry.Room {
	for _, room := range r.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

func (r *memRegistry) findCheckin(userID, roomID int) int {
	for i, checkin := range r.checkins {
		if checkin.UserID == userID && checkin.RoomID == roomID {
			return i
		}
	}
	return -1
}

// Records are copied on the way out so callers cannot mutate the
// store behind the lock's back.

func copyUser(user *registry.User) *registry.User {
	result := *user
	return &result
}

func copyRoom(room *registry.Room) *registry.Room {
	result := *room
	return &result
}
