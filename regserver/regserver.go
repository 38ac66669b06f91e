// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package regserver exposes a Registry as the bookkeeping REST
// service consumed by the proxy: the same protocol the original
// hosted service spoke, so the proxy's rest registry backend can
// point either here or at an external deployment.
//
// Routes, all JSON:
//
//     POST   /users     {"username": ...}            -> 201 user record
//     GET    /users                                  -> user list
//     POST   /rooms     {"location", "capacity", "fenix_id"} -> 201 room record
//     GET    /rooms                                  -> room list
//     POST   /checkins  {"user_id", "room_id"}       -> 201 checkin record
//     DELETE /checkins  {"user_id", "room_id"}       -> 204
//     GET    /checkins                               -> checkin list
//     GET    /summary                                -> record counts
//
// Errors come back as restdata.ErrorResponse with the status codes
// from restdata.StatusFor; in particular a duplicate username or
// fenix id is 422 and a missing checkin is 404.
package regserver

import (
	"net/http"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/restdata"
	"github.com/gorilla/mux"
)

// NewRouter creates an HTTP handler serving the bookkeeping protocol
// over reg.
func NewRouter(reg registry.Registry) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, reg)
	return r
}

// PopulateRouter adds the bookkeeping routes to an existing
// github.com/gorilla/mux router, which can be used to mount the
// service under a subpath:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/db").Subrouter()
//     regserver.PopulateRouter(s, reg)
func PopulateRouter(r *mux.Router, reg registry.Registry) {
	api := &regAPI{Registry: reg}
	r.Path("/users").Methods("POST").HandlerFunc(api.CreateUser)
	r.Path("/users").Methods("GET").HandlerFunc(api.Users)
	r.Path("/rooms").Methods("POST").HandlerFunc(api.CreateRoom)
	r.Path("/rooms").Methods("GET").HandlerFunc(api.Rooms)
	r.Path("/checkins").Methods("POST").HandlerFunc(api.CheckIn)
	r.Path("/checkins").Methods("DELETE").HandlerFunc(api.CheckOut)
	r.Path("/checkins").Methods("GET").HandlerFunc(api.Checkins)
	r.Path("/summary").Methods("GET").HandlerFunc(api.Summary)
}

type regAPI struct {
	Registry registry.Registry
}

func (api *regAPI) CreateUser(w http.ResponseWriter, req *http.Request) {
	var in restdata.CreateUserRequest
	if err := decodeRequest(req, &in); err != nil {
		writeError(w, err)
		return
	}
	user, err := api.Registry.CreateUser(in.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (api *regAPI) Users(w http.ResponseWriter, req *http.Request) {
	users, err := api.Registry.Users()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (api *regAPI) CreateRoom(w http.ResponseWriter, req *http.Request) {
	var in restdata.RoomRequest
	if err := decodeRequest(req, &in); err != nil {
		writeError(w, err)
		return
	}
	room, err := api.Registry.CreateRoom(in.Location, in.Capacity, in.FenixID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (api *regAPI) Rooms(w http.ResponseWriter, req *http.Request) {
	rooms, err := api.Registry.Rooms()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (api *regAPI) CheckIn(w http.ResponseWriter, req *http.Request) {
	var in restdata.CheckinRequest
	if err := decodeRequest(req, &in); err != nil {
		writeError(w, err)
		return
	}
	checkin, err := api.Registry.CheckIn(in.UserID, in.RoomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkin)
}

func (api *regAPI) CheckOut(w http.ResponseWriter, req *http.Request) {
	var in restdata.CheckinRequest
	if err := decodeRequest(req, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := api.Registry.CheckOut(in.UserID, in.RoomID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (api *regAPI) Checkins(w http.ResponseWriter, req *http.Request) {
	checkins, err := api.Registry.Checkins()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkins)
}

func (api *regAPI) Summary(w http.ResponseWriter, req *http.Request) {
	summary, err := api.Registry.Summarize()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func decodeRequest(req *http.Request, out interface{}) error {
	err := restdata.Decode(req.Header.Get("Content-Type"), req.Body, out)
	if err != nil {
		if _, unsupported := err.(restdata.ErrUnsupportedMediaType); unsupported {
			return err
		}
		return restdata.ErrBadRequest{Err: err}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", restdata.JSONMediaType)
	w.WriteHeader(status)
	restdata.MustEncode(w, body)
}

func writeError(w http.ResponseWriter, err error) {
	resp := restdata.ErrorResponse{}
	resp.FromError(err)
	writeJSON(w, restdata.StatusFor(err), resp)
}
