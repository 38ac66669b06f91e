// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"net/http/httptest"
	"testing"

	"github.com/asint/fenix-rooms/memory"
	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restclient"
	"github.com/asint/fenix-rooms/restdata"
	"github.com/asint/fenix-rooms/restserver"
	"github.com/asint/fenix-rooms/spaces"
	"github.com/asint/fenix-rooms/spaces/spacestest"
	"github.com/stretchr/testify/assert"
)

// newClient sets up an object stack where the REST client code talks
// to the REST server code, which points at a scripted directory and
// an in-memory registry.
func newClient(t *testing.T) (*restclient.Client, *httptest.Server) {
	dir := spacestest.New()
	room := dir.Add(&spaces.SpaceNode{
		ID:       "2448131361234",
		Name:     "Sala de Reuniões",
		Capacity: &spaces.Capacity{Normal: 12},
	})
	building := dir.Add(&spaces.SpaceNode{
		ID:       "2448131360897",
		Name:     "Pavilhão Central",
		Children: []spaces.ChildRef{room},
	})
	campus := dir.Add(&spaces.SpaceNode{
		ID:       "2448131360898",
		Name:     "Alameda",
		Children: []spaces.ChildRef{building},
	})
	dir.RootRefs = []spaces.ChildRef{campus}

	server := httptest.NewServer(restserver.NewRouter(dir, memory.New()))
	c, err := restclient.New(server.URL)
	if err != nil {
		server.Close()
		t.Fatalf("could not create client: %v", err)
	}
	return c, server
}

func TestSpaceQueries(t *testing.T) {
	c, server := newClient(t)
	defer server.Close()

	top, err := c.Spaces()
	assert.NoError(t, err)
	assert.Len(t, top, 1)

	// A container resolves to its child list, a room to an object.
	children, err := c.SpaceByPath([]string{"alameda", "pavilhao-central"})
	assert.NoError(t, err)
	assert.Len(t, children, 1)

	roomObj, err := c.SpaceByID("2448131361234")
	assert.NoError(t, err)
	assert.NotNil(t, roomObj)

	// The room endpoint also decodes into the typed shape.
	var room spaces.Room
	err = c.GetFrom("api/id{/id}",
		map[string]interface{}{"id": "2448131361234"}, &room)
	assert.NoError(t, err)
	assert.Equal(t, "Sala de Reuniões", room.Name)
	if assert.NotNil(t, room.Capacity) {
		assert.Equal(t, 12, room.Capacity.Normal)
	}

	_, err = c.SpaceByPath([]string{"alameda", "pavilhao-sul"})
	assert.Equal(t, spaces.ErrNoSuchSpace{Name: "pavilhao-sul"}, err)
}

func TestRegistryOperations(t *testing.T) {
	c, server := newClient(t)
	defer server.Close()

	user, err := c.CreateUser("alice")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "alice", user.Username)

	_, err = c.CreateUser("alice")
	assert.Equal(t, registry.ErrUserExists, err)

	_, err = c.CreateRoom(user.ID, "anywhere", 10, "2448131361234")
	assert.Equal(t, restdata.ErrUnauthorized{}, err)
	room, err := c.CreateRoom(0, "Pavilhão Central", 12, "2448131361234")
	if !assert.NoError(t, err) {
		return
	}

	checkin, err := c.CheckIn(user.ID, room.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, checkin.ID)

	checkins, err := c.Checkins()
	assert.NoError(t, err)
	assert.Len(t, checkins, 1)

	assert.NoError(t, c.CheckOut(user.ID, room.ID))
	assert.Equal(t, registry.ErrNoSuchCheckin, c.CheckOut(user.ID, room.ID))
}
