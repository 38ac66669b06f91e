// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package regclient provides a Registry backed by an external REST
// bookkeeping service speaking the protocol in the "regserver"
// package.
//
// The daemon in github.com/asint/fenix-rooms/cmd/fenix-roomsd can run
// a compatible server.  Call New() with the base URL of that service;
// for instance,
//
//     reg, err := regclient.New("http://localhost:8888/db/")
package regclient

import (
	"net/url"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restclient"
	"github.com/asint/fenix-rooms/restdata"
)

// New creates a Registry that speaks to an external REST server.
func New(baseURL string) (registry.Registry, error) {
	if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &restRegistry{Resource: restclient.Resource{URL: u}}, nil
}

type restRegistry struct {
	restclient.Resource
}

func (r *restRegistry) CreateUser(username string) (*registry.User, error) {
	user := &registry.User{}
	in := restdata.CreateUserRequest{Username: username}
	err := r.PostTo("users", nil, in, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *restRegistry) Users() ([]*registry.User, error) {
	var users []*registry.User
	err := r.GetFrom("users", nil, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *restRegistry) CreateRoom(location string, capacity int, fenixID string) (*registry.Room, error) {
	room := &registry.Room{}
	in := restdata.RoomRequest{Location: location, Capacity: capacity, FenixID: fenixID}
	err := r.PostTo("rooms", nil, in, room)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *restRegistry) Rooms() ([]*registry.Room, error) {
	var rooms []*registry.Room
	err := r.GetFrom("rooms", nil, &rooms)
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *restRegistry) CheckIn(userID, roomID int) (*registry.Checkin, error) {
	checkin := &registry.Checkin{}
	in := restdata.CheckinRequest{UserID: userID, RoomID: roomID}
	err := r.PostTo("checkins", nil, in, checkin)
	if err != nil {
		return nil, err
	}
	return checkin, nil
}

func (r *restRegistry) CheckOut(userID, roomID int) error {
	in := restdata.CheckinRequest{UserID: userID, RoomID: roomID}
	return r.DeleteAt("checkins", nil, in)
}

func (r *restRegistry) Checkins() ([]*registry.Checkin, error) {
	var checkins []*registry.Checkin
	err := r.GetFrom("checkins", nil, &checkins)
	if err != nil {
		return nil, err
	}
	return checkins, nil
}

func (r *restRegistry) Summarize() (registry.Summary, error) {
	summary := registry.Summary{}
	err := r.GetFrom("summary", nil, &summary)
	return summary, err
}
