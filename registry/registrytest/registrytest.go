// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package registrytest provides generic functional tests for the
// Registry interface.  A typical backend test module needs to wrap
// Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/asint/fenix-rooms/registry/registrytest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     type Suite struct {
//             registrytest.Suite
//     }
//
//     func (s *Suite) SetupTest() {
//             s.Registry = NewWithClock(s.Clock)
//     }
//
//     func TestRegistry(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package registrytest

import (
	"github.com/asint/fenix-rooms/registry"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic Registry backend test suite.
type Suite struct {
	suite.Suite

	// Clock contains the alternate time source to be used in
	// tests.  It is pre-initialized to a mock clock.
	Clock *clock.Mock

	// Registry contains the backend under test.  It is set by
	// importing packages, typically in SetupTest so that each test
	// starts from an empty store.
	Registry registry.Registry
}

// SetupSuite initializes the mock clock.
func (s *Suite) SetupSuite() {
	s.Clock = clock.NewMock()
}

// TestUserLifecycle creates a user and finds it in the user list.
func (s *Suite) TestUserLifecycle() {
	user, err := s.Registry.CreateUser("alice")
	if !s.NoError(err) {
		return
	}
	s.Equal("alice", user.Username)
	s.True(user.ID > 0, "user ids start at 1; 0 is the administrator")
	s.False(user.Created.IsZero())

	users, err := s.Registry.Users()
	if s.NoError(err) && s.Len(users, 1) {
		s.Equal(user.ID, users[0].ID)
		s.Equal("alice", users[0].Username)
	}
}

// TestUserConflict verifies the duplicate-username error.
func (s *Suite) TestUserConflict() {
	_, err := s.Registry.CreateUser("bob")
	s.NoError(err)
	_, err = s.Registry.CreateUser("bob")
	s.Equal(registry.ErrUserExists, err)
}

// TestUserEmpty verifies that an empty username is rejected.
func (s *Suite) TestUserEmpty() {
	_, err := s.Registry.CreateUser("")
	s.Equal(registry.ErrNoUsername, err)
}

// TestUserIDsDistinct verifies that ids are not reused across users.
func (s *Suite) TestUserIDsDistinct() {
	alice, err := s.Registry.CreateUser("alice")
	s.NoError(err)
	bob, err := s.Registry.CreateUser("bob")
	s.NoError(err)
	s.NotEqual(alice.ID, bob.ID)
}

// TestRoomLifecycle creates a room and finds it in the room list.
func (s *Suite) TestRoomLifecycle() {
	room, err := s.Registry.CreateRoom("Pavilhão Central, Piso 1", 30, "2448131365581")
	if !s.NoError(err) {
		return
	}
	s.True(room.ID > 0)
	s.Equal("2448131365581", room.FenixID)
	s.Equal(30, room.Capacity)

	rooms, err := s.Registry.Rooms()
	if s.NoError(err) && s.Len(rooms, 1) {
		s.Equal(room.ID, rooms[0].ID)
		s.Equal("Pavilhão Central, Piso 1", rooms[0].Location)
	}
}

// TestRoomConflict verifies the duplicate-fenix-id error.
func (s *Suite) TestRoomConflict() {
	_, err := s.Registry.CreateRoom("somewhere", 10, "f1")
	s.NoError(err)
	_, err = s.Registry.CreateRoom("elsewhere", 20, "f1")
	s.Equal(registry.ErrRoomExists, err)
}

// TestCheckinLifecycle walks a checkin from creation to checkout.
func (s *Suite) TestCheckinLifecycle() {
	user, err := s.Registry.CreateUser("carol")
	s.NoError(err)
	room, err := s.Registry.CreateRoom("sala", 8, "f2")
	s.NoError(err)

	checkin, err := s.Registry.CheckIn(user.ID, room.ID)
	if !s.NoError(err) {
		return
	}
	s.NotEmpty(checkin.ID)
	s.Equal(user.ID, checkin.UserID)
	s.Equal(room.ID, checkin.RoomID)

	checkins, err := s.Registry.Checkins()
	if s.NoError(err) {
		s.Len(checkins, 1)
	}

	err = s.Registry.CheckOut(user.ID, room.ID)
	s.NoError(err)

	checkins, err = s.Registry.Checkins()
	if s.NoError(err) {
		s.Len(checkins, 0)
	}
}

// TestCheckinValidation verifies the unknown-id and double-checkin
// errors.
func (s *Suite) TestCheckinValidation() {
	user, err := s.Registry.CreateUser("dave")
	s.NoError(err)
	room, err := s.Registry.CreateRoom("sala", 8, "f3")
	s.NoError(err)

	_, err = s.Registry.CheckIn(user.ID+100, room.ID)
	s.Equal(registry.ErrNoSuchUser, err)
	_, err = s.Registry.CheckIn(user.ID, room.ID+100)
	s.Equal(registry.ErrNoSuchRoom, err)

	_, err = s.Registry.CheckIn(user.ID, room.ID)
	s.NoError(err)
	_, err = s.Registry.CheckIn(user.ID, room.ID)
	s.Equal(registry.ErrAlreadyCheckedIn, err)
}

// TestCheckOutMissing verifies that removing an absent checkin is a
// not-found, not a crash.
func (s *Suite) TestCheckOutMissing() {
	user, err := s.Registry.CreateUser("erin")
	s.NoError(err)
	room, err := s.Registry.CreateRoom("sala", 8, "f4")
	s.NoError(err)

	err = s.Registry.CheckOut(user.ID, room.ID)
	s.Equal(registry.ErrNoSuchCheckin, err)

	// Checking out twice reports not-found the second time but
	// leaves the store consistent.
	_, err = s.Registry.CheckIn(user.ID, room.ID)
	s.NoError(err)
	s.NoError(s.Registry.CheckOut(user.ID, room.ID))
	s.Equal(registry.ErrNoSuchCheckin, s.Registry.CheckOut(user.ID, room.ID))
}

// TestSummarize verifies the record counts.
func (s *Suite) TestSummarize() {
	summary, err := s.Registry.Summarize()
	s.NoError(err)
	s.Equal(registry.Summary{}, summary)

	user, err := s.Registry.CreateUser("frank")
	s.NoError(err)
	room, err := s.Registry.CreateRoom("sala", 8, "f5")
	s.NoError(err)
	_, err = s.Registry.CheckIn(user.ID, room.ID)
	s.NoError(err)

	summary, err = s.Registry.Summarize()
	s.NoError(err)
	s.Equal(registry.Summary{Users: 1, Rooms: 1, Checkins: 1}, summary)
}
