// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"testing"
	"time"

	"github.com/asint/fenix-rooms/registry/registrytest"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic Registry tests against the in-memory
// backend.
type Suite struct {
	registrytest.Suite
}

// SetupTest creates a fresh empty store for every test.
func (s *Suite) SetupTest() {
	s.Registry = NewWithClock(s.Clock)
}

func TestRegistry(t *testing.T) {
	suite.Run(t, &Suite{})
}

// TestClockInjection verifies that record timestamps come from the
// injected time source.
func TestClockInjection(t *testing.T) {
	clk := clock.NewMock()
	clk.Add(12 * time.Hour)
	reg := NewWithClock(clk)

	user, err := reg.CreateUser("alice")
	if assert.NoError(t, err) {
		assert.True(t, user.Created.Equal(clk.Now()))
	}

	clk.Add(time.Minute)
	room, err := reg.CreateRoom("sala", 4, "f1")
	if assert.NoError(t, err) {
		assert.True(t, room.Created.Equal(clk.Now()))
		assert.True(t, room.Created.After(user.Created))
	}
}
