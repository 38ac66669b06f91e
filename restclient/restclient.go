// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP client for the rooms API served
// by the matching "restserver" package.
//
// The daemon in github.com/asint/fenix-rooms/cmd/fenix-roomsd runs a
// compatible server.  Call New() with the base URL of that service;
// for instance,
//
//     c, err := restclient.New("http://localhost:8888/")
//
// Space queries return untyped decoded JSON, since the server shapes
// its answer by what the path named: a leaf room is an object, any
// other space is a list of child references.  Registry operations
// return the typed records.  Server-side failures come back as the
// same spaces and registry errors the server saw.
package restclient

import (
	"net/url"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restdata"
)

// Client talks to a rooms API server.
type Client struct {
	Resource
}

// New creates a new rooms API client.  baseURL is the root of the
// server, above the /api prefix.
func New(baseURL string) (*Client, error) {
	if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{Resource: Resource{URL: u}}, nil
}

// Spaces lists the top level of the space hierarchy.
func (c *Client) Spaces() (interface{}, error) {
	var out interface{}
	err := c.GetFrom("api/spaces", nil, &out)
	return out, err
}

// SpaceByID fetches one space by its opaque upstream id.
func (c *Client) SpaceByID(id string) (interface{}, error) {
	var out interface{}
	err := c.GetFrom("api/id{/id}", map[string]interface{}{"id": id}, &out)
	return out, err
}

// SpaceByPath resolves a chain of space names.
func (c *Client) SpaceByPath(segments []string) (interface{}, error) {
	var out interface{}
	err := c.GetFrom("api/path{/segments*}",
		map[string]interface{}{"segments": segments}, &out)
	return out, err
}

// CreateUser registers a new user.
func (c *Client) CreateUser(username string) (*registry.User, error) {
	user := &registry.User{}
	in := restdata.CreateUserRequest{Username: username}
	err := c.PostTo("api/create_user", nil, in, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Users lists all registered users.
func (c *Client) Users() ([]*registry.User, error) {
	var users []*registry.User
	err := c.GetFrom("api/users", nil, &users)
	return users, err
}

// CreateRoom registers a new room.  userID must be the administrator
// id, and fenixID must name a leaf room in the upstream directory.
func (c *Client) CreateRoom(userID int, location string, capacity int, fenixID string) (*registry.Room, error) {
	room := &registry.Room{}
	in := restdata.CreateRoomRequest{
		UserID:   &userID,
		Location: location,
		Capacity: capacity,
		FenixID:  fenixID,
	}
	err := c.PostTo("api/create_room", nil, in, room)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Rooms lists all registered rooms.
func (c *Client) Rooms() ([]*registry.Room, error) {
	var rooms []*registry.Room
	err := c.GetFrom("api/rooms", nil, &rooms)
	return rooms, err
}

// CheckIn records a user as present in a room.
func (c *Client) CheckIn(userID, roomID int) (*registry.Checkin, error) {
	checkin := &registry.Checkin{}
	in := restdata.CheckinRequest{UserID: userID, RoomID: roomID}
	err := c.PostTo("api/check_in", nil, in, checkin)
	if err != nil {
		return nil, err
	}
	return checkin, nil
}

// CheckOut removes a user's presence in a room.
func (c *Client) CheckOut(userID, roomID int) error {
	in := restdata.CheckinRequest{UserID: userID, RoomID: roomID}
	return c.DeleteAt("api/check_out", nil, in)
}

// Checkins lists all active checkins.
func (c *Client) Checkins() ([]*registry.Checkin, error) {
	var checkins []*registry.Checkin
	err := c.GetFrom("api/checkins", nil, &checkins)
	return checkins, err
}
