// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package restserver provides the public HTTP face of the rooms
// service: the read-only space directory proxied from FenixEDU, plus
// the user, room, and checkin bookkeeping routes.
package restserver

import (
	"net/http"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restdata"
	"github.com/asint/fenix-rooms/spaces"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP handler that serves the rooms API.
// All routes are under /api, e.g. /api/spaces.  For more control over
// this setup, create a mux.Router and call PopulateRouter instead.
func NewRouter(dir spaces.Directory, reg registry.Registry) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, dir, reg)
	return r
}

// PopulateRouter adds the rooms API routes to an existing
// github.com/gorilla/mux router object.
func PopulateRouter(r *mux.Router, dir spaces.Directory, reg registry.Registry) {
	api := &restAPI{
		Directory: dir,
		Resolver:  spaces.Resolver{Directory: dir},
		Registry:  reg,
	}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the rooms REST API.
type restAPI struct {
	Directory spaces.Directory
	Resolver  spaces.Resolver
	Registry  registry.Registry
}

// PopulateRouter adds all rooms API URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	s := r.PathPrefix("/api").Subrouter()

	s.Path("/spaces").Name("spaces").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.SpacesList,
	})
	s.Path("/id/{id}").Name("space").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.SpaceByID,
	})
	s.Path("/path/{path:.*}").Name("spacePath").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.SpaceByPath,
	})

	// The fixed-depth routes.  Every variable a route matches
	// becomes one more resolution step, so they all share one
	// handler; see Context.
	for _, pattern := range []string{
		"/campus/{campus}",
		"/campus/{campus}/building/{building}",
		"/campus/{campus}/building/{building}/room/{room}",
		"/campus/{campus}/building/{building}/floor/{floor}",
		"/campus/{campus}/building/{building}/floor/{floor}/room/{room}",
		"/campus/{campus}/building/{building}/floor/{floor}/{floor2}",
		"/campus/{campus}/building/{building}/floor/{floor}/{floor2}/room/{room}",
	} {
		s.Path(pattern).Handler(&resourceHandler{
			Context: api.Context,
			Get:     api.SpaceByPath,
		})
	}

	s.Path("/users").Name("users").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.UserList,
	})
	s.Path("/rooms").Name("rooms").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.RoomList,
	})
	s.Path("/checkins").Name("checkins").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.CheckinList,
	})
	s.Path("/create_user").Name("createUser").Handler(&resourceHandler{
		Representation: restdata.CreateUserRequest{},
		Context:        api.Context,
		Post:           api.CreateUser,
	})
	s.Path("/create_room").Name("createRoom").Handler(&resourceHandler{
		Representation: restdata.CreateRoomRequest{},
		Context:        api.Context,
		Post:           api.CreateRoom,
	})
	s.Path("/check_in").Name("checkIn").Handler(&resourceHandler{
		Representation: restdata.CheckinRequest{},
		Context:        api.Context,
		Post:           api.CheckIn,
	})
	s.Path("/check_out").Name("checkOut").Handler(&resourceHandler{
		Representation: restdata.CheckinRequest{},
		Context:        api.Context,
		Delete:         api.CheckOut,
	})
}
